package presenta

// convertOptions holds configuration for a conversion. Fields are private;
// use the chainable methods on Converter to change them.
type convertOptions struct {
	theme            string
	baseDir          string
	includeImages    bool
	includeNotes     bool
	preserveColors   bool
	recoverImageText bool
}

// defaultOptions returns the options used when no chainable methods are
// called: the default theme, images and notes included, colors preserved,
// OCR recovery off.
func defaultOptions() convertOptions {
	return convertOptions{
		theme:          "default",
		includeImages:  true,
		includeNotes:   true,
		preserveColors: true,
	}
}

// clone creates a copy of convertOptions. All fields are value types, so a
// shallow copy is a full copy.
func (o convertOptions) clone() convertOptions {
	return o
}

package render

import (
	"fmt"

	"github.com/tsawler/presenta/model"
)

// Renderer writes a positioned document to an output target. Implementations
// must honor the Position and Size already present on each element; the
// theme and options affect fonts and colors, never placement.
type Renderer interface {
	Render(doc *model.Document, target string, opts Options) error
}

// Options configures a renderer. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// Theme names the visual theme to render with. Must match a registered
	// theme (see Themes).
	Theme string

	// PreserveColors keeps colors declared in the source document instead
	// of the theme's palette.
	PreserveColors bool

	// PreserveFonts keeps font hints declared on elements.
	PreserveFonts bool

	// PreserveLayouts keeps the per-frame layout kind rather than forcing
	// a uniform template.
	PreserveLayouts bool

	// IncludeImages embeds referenced images in the output.
	IncludeImages bool

	// IncludeNotes carries speaker notes into the output.
	IncludeNotes bool

	// Custom holds renderer-specific settings with no field of their own.
	Custom map[string]string
}

// DefaultOptions returns the option set most conversions want: the default
// theme, source fidelity preserved, images embedded, notes omitted.
func DefaultOptions() Options {
	return Options{
		Theme:           "default",
		PreserveColors:  true,
		PreserveFonts:   true,
		PreserveLayouts: true,
		IncludeImages:   true,
		IncludeNotes:    false,
	}
}

// Validate reports whether the options are usable: the named theme must be
// registered.
func (o Options) Validate() error {
	if o.Theme == "" {
		return fmt.Errorf("no theme specified")
	}
	if _, ok := ThemeByName(o.Theme); !ok {
		return fmt.Errorf("unknown theme %q (have %v)", o.Theme, ThemeNames())
	}
	return nil
}

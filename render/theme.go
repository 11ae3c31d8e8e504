package render

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/goccy/go-yaml"
)

// RGB is a color in 8-bit RGB components.
type RGB struct {
	R uint8 `yaml:"r" json:"r"`
	G uint8 `yaml:"g" json:"g"`
	B uint8 `yaml:"b" json:"b"`
}

// Theme is a named set of font sizes and colors. Slide dimensions are fixed
// across themes; position computation never consults a theme.
type Theme struct {
	Name            string  `yaml:"name" json:"name"`
	SlideWidth      float64 `yaml:"slide_width" json:"slide_width"`
	SlideHeight     float64 `yaml:"slide_height" json:"slide_height"`
	TitleFontSize   int     `yaml:"title_font_size" json:"title_font_size"`
	ContentFontSize int     `yaml:"content_font_size" json:"content_font_size"`
	TitleColor      RGB     `yaml:"title_color" json:"title_color"`
	ContentColor    RGB     `yaml:"content_color" json:"content_color"`
	Background      RGB     `yaml:"background" json:"background"`
}

var (
	themeMu sync.RWMutex
	themes  = builtinThemes()
)

// builtinThemes returns the predefined theme table. All built-ins share the
// standard 10 x 7.5 inch slide and a white background.
func builtinThemes() map[string]Theme {
	white := RGB{255, 255, 255}
	return map[string]Theme{
		"default": {
			Name:            "default",
			SlideWidth:      10.0,
			SlideHeight:     7.5,
			TitleFontSize:   44,
			ContentFontSize: 18,
			TitleColor:      RGB{0, 0, 0},
			ContentColor:    RGB{0, 0, 0},
			Background:      white,
		},
		"professional": {
			Name:            "professional",
			SlideWidth:      10.0,
			SlideHeight:     7.5,
			TitleFontSize:   40,
			ContentFontSize: 16,
			TitleColor:      RGB{0, 32, 96},
			ContentColor:    RGB{32, 32, 32},
			Background:      white,
		},
		"academic": {
			Name:            "academic",
			SlideWidth:      10.0,
			SlideHeight:     7.5,
			TitleFontSize:   42,
			ContentFontSize: 17,
			TitleColor:      RGB{0, 0, 128},
			ContentColor:    RGB{0, 0, 0},
			Background:      white,
		},
		"minimal": {
			Name:            "minimal",
			SlideWidth:      10.0,
			SlideHeight:     7.5,
			TitleFontSize:   36,
			ContentFontSize: 14,
			TitleColor:      RGB{64, 64, 64},
			ContentColor:    RGB{96, 96, 96},
			Background:      white,
		},
	}
}

// ThemeByName returns the registered theme with the given name.
func ThemeByName(name string) (Theme, bool) {
	themeMu.RLock()
	defer themeMu.RUnlock()
	t, ok := themes[name]
	return t, ok
}

// ThemeNames returns the names of all registered themes, sorted.
func ThemeNames() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a theme. A theme must be named; missing slide
// dimensions default to the standard slide.
func Register(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme has no name")
	}
	if t.SlideWidth == 0 {
		t.SlideWidth = 10.0
	}
	if t.SlideHeight == 0 {
		t.SlideHeight = 7.5
	}

	themeMu.Lock()
	defer themeMu.Unlock()
	themes[t.Name] = t
	return nil
}

// LoadThemeFile reads a YAML theme definition and registers it. The file
// holds one theme; its name field determines how it is selected via Options.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	if err := Register(t); err != nil {
		return Theme{}, err
	}

	t, _ = ThemeByName(t.Name)
	return t, nil
}

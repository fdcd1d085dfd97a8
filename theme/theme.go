// Package theme reads and writes ui.Style values as TOML files.
//
// A theme file overrides any subset of the default style:
//
//	[metrics]
//	padding = 6
//	title_height = 20
//
//	[colors]
//	windowbg = "#323232ff"
//	text = "#e6e6e6"
package theme

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/go-theft-auto/ui"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// ErrUnknownKey is returned for keys a theme file may not contain.
var ErrUnknownKey = errors.New("theme: unknown key")

// Metrics mirrors the scalar fields of ui.Style.
type Metrics struct {
	Width         int `toml:"width"`
	Height        int `toml:"height"`
	Padding       int `toml:"padding"`
	Spacing       int `toml:"spacing"`
	Indent        int `toml:"indent"`
	TitleHeight   int `toml:"title_height"`
	ScrollbarSize int `toml:"scrollbar_size"`
	ThumbSize     int `toml:"thumb_size"`
}

// File is the on-disk shape of a theme.
type File struct {
	Metrics Metrics           `toml:"metrics"`
	Colors  map[string]string `toml:"colors"`
}

// Load reads the theme file at path over ui.DefaultStyle.
func Load(path string) (ui.Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ui.Style{}, fmt.Errorf("read theme: %w", err)
	}
	style, err := Parse(string(data), ui.DefaultStyle())
	if err != nil {
		return ui.Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return style, nil
}

// Decode reads a theme from r over base.
func Decode(r io.Reader, base ui.Style) (ui.Style, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ui.Style{}, fmt.Errorf("read theme: %w", err)
	}
	return Parse(string(data), base)
}

// Parse applies the theme in data over base. Keys absent from data keep
// the value from base.
func Parse(data string, base ui.Style) (ui.Style, error) {
	f := fromStyle(base)
	md, err := toml.Decode(data, &f)
	if err != nil {
		return ui.Style{}, fmt.Errorf("parse theme: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return ui.Style{}, fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0])
	}
	return f.apply(base)
}

// Builtin returns one of the themes shipped with the package: "dark" or
// "light".
func Builtin(name string) (ui.Style, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".toml"))
	if err != nil {
		return ui.Style{}, fmt.Errorf("builtin theme %q: %w", name, err)
	}
	return Parse(string(data), ui.DefaultStyle())
}

// Names lists the builtin themes.
func Names() []string {
	entries, _ := builtinFS.ReadDir("builtin")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Encode writes style as a complete theme file.
func Encode(w io.Writer, style ui.Style) error {
	if err := toml.NewEncoder(w).Encode(fromStyle(style)); err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return nil
}

func fromStyle(s ui.Style) File {
	f := File{
		Metrics: Metrics{
			Width:         s.Size.X,
			Height:        s.Size.Y,
			Padding:       s.Padding,
			Spacing:       s.Spacing,
			Indent:        s.Indent,
			TitleHeight:   s.TitleHeight,
			ScrollbarSize: s.ScrollbarSize,
			ThumbSize:     s.ThumbSize,
		},
		Colors: make(map[string]string, ui.ColorMax),
	}
	for id := ui.ColorID(0); id < ui.ColorMax; id++ {
		f.Colors[id.String()] = FormatColor(s.Colors[id])
	}
	return f
}

func (f File) apply(base ui.Style) (ui.Style, error) {
	s := base
	s.Size = ui.Vec2{X: f.Metrics.Width, Y: f.Metrics.Height}
	s.Padding = f.Metrics.Padding
	s.Spacing = f.Metrics.Spacing
	s.Indent = f.Metrics.Indent
	s.TitleHeight = f.Metrics.TitleHeight
	s.ScrollbarSize = f.Metrics.ScrollbarSize
	s.ThumbSize = f.Metrics.ThumbSize
	for name, value := range f.Colors {
		id, ok := ui.ParseColorID(name)
		if !ok {
			return ui.Style{}, fmt.Errorf("%w: colors.%s", ErrUnknownKey, name)
		}
		c, err := ParseColor(value)
		if err != nil {
			return ui.Style{}, fmt.Errorf("colors.%s: %w", name, err)
		}
		s.Colors[id] = c
	}
	return s, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (ui.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return ui.Color{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ui.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return ui.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// FormatColor renders c as "#rrggbbaa".
func FormatColor(c ui.Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

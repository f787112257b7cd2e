// Package glyph renders the visual representation of key symbols as
// procedural SVG line drawings.
//
// Each glyph is a primary line (vertical or horizontal) with up to three
// intersecting extensions at controlled positions and angles. Rendering is
// deterministic per seed, so both parties of a key see identical glyphs.
// The codec core never reads glyphs back; this package is write-only
// presentation for key files and printed symbol references.
package glyph

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/arloliu/bigraph/internal/options"
)

// Renderer produces SVG glyphs for symbol indices.
type Renderer struct {
	seed int64

	size        int // SVG viewBox edge length
	strokeWidth int
	margin      int
	extLength   int // secondary line length
}

// Option configures a Renderer.
type Option = options.Option[*Renderer]

// WithSize sets the square viewBox edge length (default 100).
func WithSize(size int) Option {
	return options.New(func(r *Renderer) error {
		if size <= 0 {
			return fmt.Errorf("glyph size must be positive, got %d", size)
		}
		r.size = size

		return nil
	})
}

// WithStrokeWidth sets the line stroke width (default 4).
func WithStrokeWidth(width int) Option {
	return options.New(func(r *Renderer) error {
		if width <= 0 {
			return fmt.Errorf("stroke width must be positive, got %d", width)
		}
		r.strokeWidth = width

		return nil
	})
}

// NewRenderer creates a Renderer whose random fill phase is driven by the
// given seed. Key stores pass the key's own seed so rendered glyphs match on
// both sides.
func NewRenderer(seed int64, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		seed:        seed,
		size:        100,
		strokeWidth: 4,
		margin:      10,
		extLength:   30,
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// RenderAll renders count unique glyphs, one per symbol index.
//
// Configurations come from a fixed systematic enumeration first; when the
// symbol table is larger than the systematic space, seeded random variations
// fill the remainder. Uniqueness is tracked on the rendered SVG itself:
// different configurations can draw the same lines (a side "both" extension
// equals its two single-side halves), and visually identical symbols would
// defeat the glyphs' purpose. Every call with the same seed and count
// returns the same glyphs in the same order.
func (r *Renderer) RenderAll(count int) []string {
	glyphs := make([]string, 0, count)
	seen := make(map[string]struct{}, count)

	for _, c := range enumerateConfigs(count) {
		g := r.render(c)
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		glyphs = append(glyphs, g)
	}

	rng := rand.New(rand.NewSource(r.seed))
	for len(glyphs) < count {
		g := r.render(randomConfig(rng))
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		glyphs = append(glyphs, g)
	}

	return glyphs
}

// Render renders the glyph for a single symbol index.
func (r *Renderer) Render(symbol int) (string, error) {
	if symbol < 0 {
		return "", fmt.Errorf("symbol index must not be negative, got %d", symbol)
	}

	return r.RenderAll(symbol + 1)[symbol], nil
}

func (r *Renderer) render(c config) string {
	var lines []string

	if c.orientation == vertical {
		x := r.size / 2
		y1, y2 := r.margin, r.size-r.margin
		lines = append(lines, r.line(x, y1, x, y2))

		for _, ext := range c.extensions {
			lines = append(lines, r.verticalExtension(x, y1, y2, ext)...)
		}
	} else {
		y := r.size / 2
		x1, x2 := r.margin, r.size-r.margin
		lines = append(lines, r.line(x1, y, x2, y))

		for _, ext := range c.extensions {
			lines = append(lines, r.horizontalExtension(y, x1, x2, ext)...)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="100" height="100">`, r.size, r.size)
	sb.WriteByte('\n')
	for _, l := range lines {
		sb.WriteString("  ")
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>")

	return sb.String()
}

func (r *Renderer) line(x1, y1, x2, y2 int) string {
	return fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black" stroke-width="%d" stroke-linecap="round"/>`,
		x1, y1, x2, y2, r.strokeWidth)
}

// verticalExtension attaches secondary lines to a vertical primary line.
// "left"/"right" are literal horizontal directions; 45 angles up, -45 down.
func (r *Renderer) verticalExtension(x, y1, y2 int, ext extension) []string {
	var y int
	switch ext.position {
	case "start":
		y = y1
	case "middle":
		y = (y1 + y2) / 2
	default:
		y = y2
	}

	var lines []string
	l := r.extLength

	if ext.side == "left" || ext.side == "both" {
		switch ext.angle {
		case 90:
			lines = append(lines, r.line(x, y, x-l, y))
		case 45:
			lines = append(lines, r.line(x, y, x-l, y-l))
		case -45:
			lines = append(lines, r.line(x, y, x-l, y+l))
		}
	}

	if ext.side == "right" || ext.side == "both" {
		switch ext.angle {
		case 90:
			lines = append(lines, r.line(x, y, x+l, y))
		case 45:
			lines = append(lines, r.line(x, y, x+l, y-l))
		case -45:
			lines = append(lines, r.line(x, y, x+l, y+l))
		}
	}

	return lines
}

// horizontalExtension attaches secondary lines to a horizontal primary line.
// For a horizontal primary, "left" means up and "right" means down.
func (r *Renderer) horizontalExtension(y, x1, x2 int, ext extension) []string {
	var x int
	switch ext.position {
	case "start":
		x = x1
	case "middle":
		x = (x1 + x2) / 2
	default:
		x = x2
	}

	var lines []string
	l := r.extLength

	if ext.side == "left" || ext.side == "both" {
		switch ext.angle {
		case 90:
			lines = append(lines, r.line(x, y, x, y-l))
		case 45:
			lines = append(lines, r.line(x, y, x-l, y-l))
		case -45:
			lines = append(lines, r.line(x, y, x+l, y-l))
		}
	}

	if ext.side == "right" || ext.side == "both" {
		switch ext.angle {
		case 90:
			lines = append(lines, r.line(x, y, x, y+l))
		case 45:
			lines = append(lines, r.line(x, y, x-l, y+l))
		case -45:
			lines = append(lines, r.line(x, y, x+l, y+l))
		}
	}

	return lines
}

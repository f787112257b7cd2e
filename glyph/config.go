package glyph

import (
	"fmt"
	"math/rand"
	"strings"
)

type orientation uint8

const (
	vertical orientation = iota
	horizontal
)

func (o orientation) String() string {
	if o == vertical {
		return "vertical"
	}

	return "horizontal"
}

// extension describes one secondary line attached to a glyph's primary line.
type extension struct {
	position string // "start", "middle" or "end" along the primary line
	angle    int    // 90 (perpendicular), 45 or -45 (diagonals)
	side     string // "left", "right" or "both"
}

// config fully determines one glyph's geometry.
type config struct {
	orientation orientation
	extensions  []extension
}

// key returns a canonical string for uniqueness tracking.
func (c config) key() string {
	var sb strings.Builder
	sb.WriteString(c.orientation.String())
	for _, e := range c.extensions {
		fmt.Fprintf(&sb, "_%s%d%s", e.position, e.angle, e.side)
	}

	return sb.String()
}

var (
	positions = []string{"start", "middle", "end"}
	angles    = []int{90, 45, -45}
	sides     = []string{"left", "right", "both"}
)

// enumerateConfigs yields up to count unique configurations in a fixed
// systematic order: for each orientation, the bare primary line, then single
// extensions, then paired extensions on distinct positions (capped so the
// systematic phase stays bounded), then triple extensions spanning all
// positions.
func enumerateConfigs(count int) []config {
	configs := make([]config, 0, count)
	seen := make(map[string]struct{})

	add := func(c config) bool {
		if len(configs) >= count {
			return false
		}
		k := c.key()
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		configs = append(configs, c)

		return len(configs) < count
	}

	for _, o := range []orientation{vertical, horizontal} {
		if !add(config{orientation: o}) {
			return configs
		}

		for _, pos := range positions {
			for _, angle := range angles {
				for _, side := range sides {
					if !add(config{orientation: o, extensions: []extension{{pos, angle, side}}}) {
						return configs
					}
				}
			}
		}

		pairs := 0
	pairLoop:
		for _, pos1 := range positions {
			for _, pos2 := range positions {
				if pos1 == pos2 {
					continue
				}
				for _, angle := range angles {
					for _, side := range sides {
						opposite := "right"
						if side == "right" {
							opposite = "left"
						}
						c := config{orientation: o, extensions: []extension{
							{pos1, angle, side},
							{pos2, angle, opposite},
						}}
						if !add(c) {
							return configs
						}
						pairs++
						if pairs >= 50 {
							break pairLoop
						}
					}
				}
			}
		}

		for _, angle := range angles {
			for _, side := range sides {
				c := config{orientation: o, extensions: []extension{
					{"start", angle, side},
					{"middle", angle, side},
					{"end", angle, side},
				}}
				if !add(c) {
					return configs
				}
			}
		}
	}

	return configs
}

// randomConfig draws one configuration from the full geometry space.
func randomConfig(rng *rand.Rand) config {
	c := config{orientation: orientation(rng.Intn(2))}
	for i, n := 0, rng.Intn(4); i < n; i++ {
		c.extensions = append(c.extensions, extension{
			position: positions[rng.Intn(len(positions))],
			angle:    angles[rng.Intn(len(angles))],
			side:     sides[rng.Intn(len(sides))],
		})
	}

	return c
}

package fidelity

import (
	"fmt"
	"math"
	"strings"
)

// HexToHSL converts #RGB or #RRGGBB into the "H S% L%" form used by the
// generated stylesheets, each component rounded to the nearest integer.
func HexToHSL(hex string) (string, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return "", false
	}

	var ri, gi, bi int
	if _, err := fmt.Sscanf(strings.ToLower(hex), "%02x%02x%02x", &ri, &gi, &bi); err != nil {
		return "", false
	}

	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
	}

	return fmt.Sprintf("%d %d%% %d%%",
		int(math.Round(h)),
		int(math.Round(s*100)),
		int(math.Round(l*100))), true
}

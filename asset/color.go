package asset

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Hex parses "#RGB" or "#RRGGBB"; malformed input yields black
func Hex(s string) RGB {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3:
		r, g, b := nibble(s[0]), nibble(s[1]), nibble(s[2])
		return RGB{r * 17, g * 17, b * 17}
	case 6:
		return RGB{
			nibble(s[0])<<4 | nibble(s[1]),
			nibble(s[2])<<4 | nibble(s[3]),
			nibble(s[4])<<4 | nibble(s[5]),
		}
	default:
		return RGB{}
	}
}

func nibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// Palette
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Blue    = RGB{0, 0, 255}
	Gold    = RGB{255, 215, 0}
	Cyan    = RGB{0, 255, 255}
	Green   = RGB{0, 128, 0}
	Gray    = Hex("#888")
	Tether  = Hex("#EEE")
	Uplink  = Hex("#AAF")
	Shadow  = Hex("#333")
	Success = Hex("#5E5")
	Failure = Hex("#E55")
	Bonus   = Hex("#EE5")
)

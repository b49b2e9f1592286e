package bbcode

import (
	"strconv"
	"strings"
)

// namedColors maps the HTML basic color names to their canonical form.
var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"orange":  "#ffa500",
}

// canonicalizeColor converts a color attribute to "#rrggbb".
// Accepted forms are "#rgb", "#rrggbb" (any case) and the basic color names.
func canonicalizeColor(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))

	if c, ok := namedColors[value]; ok {
		return c, true
	}

	if len(value) == 0 || value[0] != '#' {
		return "", false
	}
	hex := value[1:]
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return "", false
		}
	}

	switch len(hex) {
	case 3:
		return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), true
	case 6:
		return "#" + hex, true
	}
	return "", false
}

// MaxSizeDelta is the largest accepted font size change in either direction.
const MaxSizeDelta = 8

// canonicalizeSize converts a size attribute to a signed delta "+N"/"-N".
// Unsigned values are absolute sizes relative to the default size 5.
func canonicalizeSize(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	signed := value[0] == '+' || value[0] == '-'
	n, err := strconv.Atoi(value)
	if err != nil {
		return "", false
	}
	if !signed {
		n -= 5
	}

	if n == 0 || n < -MaxSizeDelta || n > MaxSizeDelta {
		return "", false
	}
	if n > 0 {
		return "+" + strconv.Itoa(n), true
	}
	return strconv.Itoa(n), true
}

// canonicalizeFont validates a font name. Quotes, separators and slashes are rejected
// because the name ends up in a style attribute.
func canonicalizeFont(value string) (string, bool) {
	if strings.TrimSpace(value) == "" || strings.ContainsAny(value, "\"';\\/\n") {
		return "", false
	}
	return value, true
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f')
}

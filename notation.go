package twisty

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/SeamusWaldron/twisty/pkg/perm"
)

// ParseSequence splits a space-separated move sequence into move names.
//
// Besides plain names ("f", "fi", "a_tech_right") it accepts a prime
// suffix for the inverse and a 2 suffix for a double move:
//
//	"f r' u2 d2' fi'" -> ["f", "ri", "u", "u", "di", "di", "f"]
//
// Any other numeric suffix is rejected with ErrInvalidNotation.
//
// Names are not checked against a move table; Rotate does that.
func ParseSequence(s string) ([]string, error) {
	parts := strings.Fields(s)
	names := make([]string, 0, len(parts))

	for _, part := range parts {
		expanded, err := expandMove(part)
		if err != nil {
			return nil, err
		}
		names = append(names, expanded...)
	}

	return names, nil
}

func expandMove(token string) ([]string, error) {
	base := strings.TrimRight(token, "'`2")
	if base == "" || unicode.IsDigit(rune(base[len(base)-1])) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, token)
	}

	switch suffix := token[len(base):]; suffix {
	case "":
		return []string{base}, nil
	case "'", "`":
		return []string{inverseName(base)}, nil
	case "2":
		return []string{base, base}, nil
	case "2'", "2`":
		inv := inverseName(base)
		return []string{inv, inv}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, token)
	}
}

// inverseName follows the inverse labelling of perm: "f" <-> "fi".
func inverseName(name string) string {
	if name == perm.IdentityLabel {
		return name
	}
	if len(name) > 1 && strings.HasSuffix(name, "i") {
		return strings.TrimSuffix(name, "i")
	}
	return name + "i"
}

// FormatSequence joins move names with spaces.
func FormatSequence(names []string) string {
	return strings.Join(names, " ")
}

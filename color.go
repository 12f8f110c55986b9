package twisty

// Color represents a display color for a face.
type Color byte

const (
	Grey    Color = 0 // Unknown face
	Red     Color = 1
	Yellow  Color = 2
	Green   Color = 3
	White   Color = 4
	Blue    Color = 5
	Magenta Color = 6
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case White:
		return "white"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	default:
		return "grey"
	}
}

// Face names indexed by label / 10.
var faceNames = [...]string{"f", "u", "r", "d", "l", "b"}

// UnknownFace is returned for labels outside the face table.
const UnknownFace = "?"

// DefaultFaceName returns the face of a facelet label under the
// face*10 + slot encoding.
func DefaultFaceName(label int) string {
	face := label / 10
	if label < 0 || face >= len(faceNames) {
		return UnknownFace
	}
	return faceNames[face]
}

// Default face colors, shared by every definition that does not
// override them.
var defaultColors = map[string]Color{
	"f": Red,
	"u": Yellow,
	"r": Green,
	"d": White,
	"l": Blue,
	"b": Magenta,
}

// DefaultColor returns the default display color of a face.
func DefaultColor(face string) Color {
	if c, ok := defaultColors[face]; ok {
		return c
	}
	return Grey
}

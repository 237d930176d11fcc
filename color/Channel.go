package color

import "strings"

type Channel int

const (
	Red Channel = iota
	Green
	Blue
	White
)

// Channels lists every channel a measurement set must carry, in display order.
var Channels = []Channel{Red, Green, Blue, White}

// ParseChannel maps the colorimeter/CSV representation (R, G, B, W) onto a
// Channel. Surrounding whitespace and case are ignored.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "R":
		return Red, nil
	case "G":
		return Green, nil
	case "B":
		return Blue, nil
	case "W":
		return White, nil
	}
	return 0, &UnknownChannelError{Name: s}
}

func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case White:
		return "W"
	}
	return "?"
}

func (c Channel) Valid() bool {
	return c >= Red && c <= White
}

package chord

import (
	"fmt"
	"strings"

	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

// Hand controls whether the diagram is mirrored for left-handed players.
type Hand int

const (
	HandRight Hand = iota
	HandLeft
)

func (h Hand) String() string {
	switch h {
	case HandRight:
		return "right"
	case HandLeft:
		return "left"
	default:
		return fmt.Sprintf("hand(%d)", int(h))
	}
}

// Valid reports whether h is a known handedness.
func (h Hand) Valid() bool {
	return h == HandRight || h == HandLeft
}

// ParseHand resolves "right" or "left". An empty value selects right.
func ParseHand(name string) (Hand, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "right", "r":
		return HandRight, nil
	case "left", "l":
		return HandLeft, nil
	default:
		return HandRight, chorderrors.NewValidationError("hand", fmt.Sprintf("unknown hand %q (want right or left)", name), nil)
	}
}

// MarshalText encodes the hand by name.
func (h Hand) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", h)
	}
	return []byte(h.String()), nil
}

// UnmarshalText decodes "right" or "left".
func (h *Hand) UnmarshalText(text []byte) error {
	parsed, err := ParseHand(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

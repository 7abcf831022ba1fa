package mines

import (
	"fmt"
	"strings"
)

type Action uint8

const (
	Reveal Action = iota + 1
	Mark
)

func (a Action) String() string {
	switch a {
	case Reveal:
		return "free"
	case Mark:
		return "mine"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// ParseAction maps the command words "free" and "mine" to [Reveal] and
// [Mark].
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "free":
		return Reveal, nil
	case "mine":
		return Mark, nil
	default:
		return 0, fmt.Errorf("%w: must be mine or free, got %q", ErrInvalidAction, s)
	}
}

package particle

import (
	"fmt"
	"strings"
)

// Kind identifies the particle type occupying a cell.
type Kind uint8

const (
	// Empty marks a cell with no particle.
	Empty Kind = iota
	// Static particles never move.
	Static
	// Heavy particles fall.
	Heavy
	// Floaty particles rise.
	Floaty
)

var kindNames = [...]string{
	Empty:  "empty",
	Static: "static",
	Heavy:  "heavy",
	Floaty: "floaty",
}

// Kinds lists every kind in numeric order.
func Kinds() []Kind { return []Kind{Empty, Static, Heavy, Floaty} }

// Valid reports whether k is one of the four defined kinds.
func (k Kind) Valid() bool { return int(k) < len(kindNames) }

// Movable reports whether particles of this kind relocate during a step.
func (k Kind) Movable() bool { return k == Heavy || k == Floaty }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind converts a kind name such as "heavy" into a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

package gofac

import (
	"fmt"
	"strings"
)

type LifetimeScope int

const (
	Transient LifetimeScope = iota // Transient: creates new instance on each retrieval
	Singleton                      // Singleton: globally unique, cached in root container
	Scoped                         // Scoped: unique within scope, isolated between different scopes
)

var lifetimeNames = map[LifetimeScope]string{
	Transient: "Transient",
	Singleton: "Singleton",
	Scoped:    "Scoped",
}

func (l LifetimeScope) String() string {
	if name, ok := lifetimeNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LifetimeScope(%d)", int(l))
}

// ParseLifetimeScope parses a lifetime name, case-insensitively.
func ParseLifetimeScope(s string) (LifetimeScope, error) {
	for l, name := range lifetimeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLifetimeScope, s)
}

func (l LifetimeScope) MarshalText() ([]byte, error) {
	if _, ok := lifetimeNames[l]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLifetimeScope, int(l))
	}
	return []byte(l.String()), nil
}

func (l *LifetimeScope) UnmarshalText(text []byte) error {
	parsed, err := ParseLifetimeScope(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

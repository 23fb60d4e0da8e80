package gofac

import (
	"fmt"
	"strconv"
	"strings"
)

// RegistrationType selects which type identities a service is registered under.
// Flags combine with bitwise OR.
type RegistrationType uint8

const (
	Interfaces RegistrationType = 1 << iota // register under the interfaces the implementation satisfies
	Self                                    // register under the concrete type itself

	// All must stay the union of every flag above.
	All = Interfaces | Self
)

var registrationTypeNames = []struct {
	flag RegistrationType
	name string
}{
	{Interfaces, "Interfaces"},
	{Self, "Self"},
}

// Has reports whether every bit of flag is set. A zero flag is never contained.
func (r RegistrationType) Has(flag RegistrationType) bool {
	return flag != 0 && r&flag == flag
}

// HasInterfaces reports whether the Interfaces bit is set.
func (r RegistrationType) HasInterfaces() bool { return r.Has(Interfaces) }

// HasSelf reports whether the Self bit is set.
func (r RegistrationType) HasSelf() bool { return r.Has(Self) }

// IsValid reports whether r is non-zero and carries no reserved bits.
func (r RegistrationType) IsValid() bool {
	return r != 0 && r&^All == 0
}

// Flags decodes r into its named flags, lowest bit first. Reserved bits are dropped.
func (r RegistrationType) Flags() []RegistrationType {
	flags := make([]RegistrationType, 0, len(registrationTypeNames))
	for _, n := range registrationTypeNames {
		if r.Has(n.flag) {
			flags = append(flags, n.flag)
		}
	}
	return flags
}

func (r RegistrationType) String() string {
	switch {
	case r == 0:
		return "None"
	case r == All:
		return "All"
	case r&^All != 0:
		return fmt.Sprintf("RegistrationType(0x%02x)", uint8(r))
	}
	parts := make([]string, 0, len(registrationTypeNames))
	for _, n := range registrationTypeNames {
		if r.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseRegistrationType parses a flag name ("interfaces", "self", "all", "none"),
// a union of names separated by '|' or ',', or a decimal value.
func ParseRegistrationType(s string) (RegistrationType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrUnknownRegistrationType)
	}

	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		r := RegistrationType(n)
		if r&^All != 0 {
			return 0, fmt.Errorf("%w: %d sets reserved bits", ErrUnknownRegistrationType, n)
		}
		return r, nil
	}

	var r RegistrationType
	seen := false
	for _, part := range strings.FieldsFunc(s, func(c rune) bool { return c == '|' || c == ',' }) {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		seen = true
		switch name {
		case "interfaces":
			r |= Interfaces
		case "self":
			r |= Self
		case "all":
			r |= All
		case "none":
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownRegistrationType, part)
		}
	}
	if !seen {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRegistrationType, s)
	}
	return r, nil
}

func (r RegistrationType) MarshalText() ([]byte, error) {
	if r&^All != 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegistrationType, r)
	}
	return []byte(r.String()), nil
}

func (r *RegistrationType) UnmarshalText(text []byte) error {
	parsed, err := ParseRegistrationType(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

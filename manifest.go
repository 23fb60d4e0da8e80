package gofac

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Manifest is a declarative registration plan, usually loaded from YAML:
//
//	interfaces: [UserRepo, UserService]
//	services:
//	  - name: userRepo
//	    lifetime: singleton
//	    register: all
type Manifest struct {
	Interfaces []string          `yaml:"interfaces,omitempty"`
	Services   []ServiceManifest `yaml:"services"`
}

// ServiceManifest describes one constructor registration. A missing register
// field means Self; a missing lifetime means Transient.
type ServiceManifest struct {
	Name       string            `yaml:"name"`
	Lifetime   LifetimeScope     `yaml:"lifetime"`
	Register   *RegistrationType `yaml:"register,omitempty"`
	Interfaces []string          `yaml:"interfaces,omitempty"`
}

// RegistrationType returns the configured registration type, defaulting to Self.
func (s ServiceManifest) RegistrationType() RegistrationType {
	if s.Register == nil {
		return Self
	}
	return *s.Register
}

// Catalog maps manifest names to constructors and to interfaces given as (*I)(nil).
type Catalog struct {
	Constructors map[string]any
	Interfaces   map[string]any
}

// LoadManifest decodes a YAML manifest. Unknown fields are rejected.
func LoadManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	for i, svc := range m.Services {
		if svc.Name == "" {
			return nil, fmt.Errorf("manifest service #%d: %w", i, ErrEmptyName)
		}
	}
	return &m, nil
}

// Apply declares the manifest's interfaces and registers its services in order,
// stopping at the first failure.
func (c *Container) Apply(m *Manifest, cat Catalog) error {
	declared := make([]any, 0, len(m.Interfaces))
	for _, name := range m.Interfaces {
		iface, ok := cat.Interfaces[name]
		if !ok {
			return fmt.Errorf("%w: interface %q", ErrUnknownCatalogEntry, name)
		}
		declared = append(declared, iface)
	}
	if err := c.DeclareInterfaces(declared...); err != nil {
		return err
	}

	for _, svc := range m.Services {
		if err := c.applyService(svc, cat); err != nil {
			c.log.Warn("manifest registration failed",
				zap.String("service", svc.Name),
				zap.Stringer("registration", svc.RegistrationType()),
				zap.Error(err))
			return fmt.Errorf("service %q: %w", svc.Name, err)
		}
	}
	return nil
}

func (c *Container) applyService(svc ServiceManifest, cat Catalog) error {
	ctor, ok := cat.Constructors[svc.Name]
	if !ok {
		return fmt.Errorf("%w: constructor %q", ErrUnknownCatalogEntry, svc.Name)
	}
	ifaces := make([]any, 0, len(svc.Interfaces))
	for _, name := range svc.Interfaces {
		iface, ok := cat.Interfaces[name]
		if !ok {
			return fmt.Errorf("%w: interface %q", ErrUnknownCatalogEntry, name)
		}
		ifaces = append(ifaces, iface)
	}
	return c.RegisterType(ctor, svc.RegistrationType(), svc.Lifetime, ifaces...)
}

package gofac

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ServiceDef holds registration metadata and the cached instance of one service.
// Every identity a service is registered under points at the same ServiceDef, so
// Singleton and Scoped instances are shared across those identities.
type ServiceDef struct {
	implType   reflect.Type   // constructor return type or instance type
	scope      LifetimeScope  // lifetime
	ctor       reflect.Value  // zero for instance registrations
	paramTypes []reflect.Type // constructor parameter types, captured at registration
	isInstance bool           // pre-built instance, ctor is never called

	mu       sync.RWMutex
	instance reflect.Value // pre-registered instance or cached singleton
}

func (d *ServiceDef) cached() (reflect.Value, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.instance, d.instance.IsValid()
}

// store caches v unless another goroutine won the race, and returns the cached value.
func (d *ServiceDef) store(v reflect.Value) reflect.Value {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.instance.IsValid() {
		d.instance = v
	}
	return d.instance
}

// construct calls the constructor, turning a panic into ErrCreateInstanceFailed.
func (d *ServiceDef) construct(params []reflect.Value) (instance reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: constructor of %s panicked: %v", ErrCreateInstanceFailed, d.implType, r)
		}
	}()
	return d.ctor.Call(params)[0], nil
}

// Container is the DI container. It is safe for concurrent use.
type Container struct {
	services      map[reflect.Type]*ServiceDef            // default (unnamed) services
	namedServices map[string]map[reflect.Type]*ServiceDef // name -> type -> ServiceDef
	interfaces    []reflect.Type                          // declared interfaces, in declaration order
	pending       []any                                   // WithInterfaces entries, declared once every option ran
	log           *zap.Logger
	mu            sync.RWMutex
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// WithInterfaces declares interfaces up front, see DeclareInterfaces. Entries are
// declared after all options are applied; if any is invalid none are declared and the
// error is logged at warn level through the configured logger. Use DeclareInterfaces
// to get the error back.
func WithInterfaces(ifaces ...any) Option {
	return func(c *Container) {
		c.pending = append(c.pending, ifaces...)
	}
}

// NewContainer creates an empty container.
func NewContainer(opts ...Option) *Container {
	c := &Container{
		services:      make(map[reflect.Type]*ServiceDef),
		namedServices: make(map[string]map[reflect.Type]*ServiceDef),
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.pending) > 0 {
		if err := c.declareInterfaces(c.pending); err != nil {
			c.log.Warn("declare interfaces", zap.Error(err))
		}
		c.pending = nil
	}
	return c
}

// Global container for single-service programs.
var Global = NewContainer()

// DeclareInterfaces records interface types, given as (*I)(nil), that registrations
// with the Interfaces flag and no explicit interface list are matched against.
func (c *Container) DeclareInterfaces(ifaces ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.declareInterfaces(ifaces)
}

func (c *Container) declareInterfaces(ifaces []any) error {
	types := make([]reflect.Type, 0, len(ifaces))
	for _, iface := range ifaces {
		t, err := interfaceOf(iface)
		if err != nil {
			return err
		}
		types = append(types, t)
	}
	for _, t := range types {
		if !containsType(c.interfaces, t) {
			c.interfaces = append(c.interfaces, t)
		}
	}
	return nil
}

// Registered returns every default identity currently registered, sorted by name.
func (c *Container) Registered() []reflect.Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	types := make([]reflect.Type, 0, len(c.services))
	for t := range c.services {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })
	return types
}

// Reset clears all registrations, declared interfaces and cached instances.
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services = make(map[reflect.Type]*ServiceDef)
	c.namedServices = make(map[string]map[reflect.Type]*ServiceDef)
	c.interfaces = nil
}

// GlobalReset resets the global container (for tests).
func GlobalReset() { Global.Reset() }

func (c *Container) lookup(svcType reflect.Type) (*ServiceDef, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.services[svcType]
	return def, ok
}

func containsType(types []reflect.Type, t reflect.Type) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

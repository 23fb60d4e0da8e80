package gofac

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Register registers a constructor under its return type.
func (c *Container) Register(ctor any, scope LifetimeScope) error {
	return c.RegisterAs(ctor, nil, scope)
}

// RegisterAs registers a constructor under interfaceType, given as (*IInterface)(nil)
// or as a nil pointer of a compatible concrete type. A nil interfaceType registers
// under the constructor's return type.
func (c *Container) RegisterAs(ctor any, interfaceType any, scope LifetimeScope) error {
	def, err := newCtorDef(ctor, scope)
	if err != nil {
		return err
	}
	svcType, err := serviceTypeFor(def.implType, interfaceType)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.add(def, []reflect.Type{svcType}, Self)
}

// RegisterType registers a constructor under the identities selected by regType.
//
// With Interfaces set, the service is registered under each of ifaces, or, when none
// are given, under every declared interface its return type implements. With Self set,
// it is registered under its return type. All identities share one lifetime: a
// Singleton resolved through any of them is the same instance.
//
// Registration is all-or-nothing; a duplicate identity leaves the container unchanged.
func (c *Container) RegisterType(ctor any, regType RegistrationType, scope LifetimeScope, ifaces ...any) error {
	def, err := newCtorDef(ctor, scope)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	keys, err := c.identities(def.implType, regType, ifaces)
	if err != nil {
		return err
	}
	return c.add(def, keys, regType)
}

// RegisterInstance registers a pre-built instance under its own type.
// Transient is rejected since the instance cannot be recreated.
func (c *Container) RegisterInstance(instance any, scope LifetimeScope) error {
	return c.RegisterInstanceAs(instance, nil, scope)
}

// RegisterInstanceAs registers a pre-built instance under interfaceType.
func (c *Container) RegisterInstanceAs(instance any, interfaceType any, scope LifetimeScope) error {
	def, err := newInstanceDef(instance, scope)
	if err != nil {
		return err
	}
	svcType, err := serviceTypeFor(def.implType, interfaceType)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.add(def, []reflect.Type{svcType}, Self)
}

// RegisterInstanceType registers a pre-built instance under the identities selected
// by regType, following the rules of RegisterType.
func (c *Container) RegisterInstanceType(instance any, regType RegistrationType, scope LifetimeScope, ifaces ...any) error {
	def, err := newInstanceDef(instance, scope)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	keys, err := c.identities(def.implType, regType, ifaces)
	if err != nil {
		return err
	}
	return c.add(def, keys, regType)
}

// RegisterInstanceNamed registers a named instance; a type may have many named instances.
func (c *Container) RegisterInstanceNamed(name string, instance any, scope LifetimeScope) error {
	return c.RegisterInstanceAsNamed(name, instance, nil, scope)
}

// RegisterInstanceAsNamed registers a named instance under interfaceType.
func (c *Container) RegisterInstanceAsNamed(name string, instance any, interfaceType any, scope LifetimeScope) error {
	def, err := newInstanceDef(instance, scope)
	if err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}
	svcType, err := serviceTypeFor(def.implType, interfaceType)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	named := c.namedServices[name]
	if named == nil {
		named = make(map[reflect.Type]*ServiceDef)
		c.namedServices[name] = named
	}
	if _, exists := named[svcType]; exists {
		return fmt.Errorf("%w, name: %s, type: %s", ErrRegisterDuplicate, name, svcType)
	}
	named[svcType] = def
	c.log.Debug("named instance registered",
		zap.String("name", name),
		zap.Stringer("identity", svcType),
		zap.Stringer("lifetime", def.scope))
	return nil
}

// add must be called with c.mu held.
func (c *Container) add(def *ServiceDef, keys []reflect.Type, regType RegistrationType) error {
	for _, k := range keys {
		if _, exists := c.services[k]; exists {
			return fmt.Errorf("%w, type: %s", ErrRegisterDuplicate, k)
		}
	}
	for _, k := range keys {
		c.services[k] = def
	}
	c.log.Debug("service registered",
		zap.Stringer("service", def.implType),
		zap.Stringers("identities", keys),
		zap.Stringer("lifetime", def.scope),
		zap.Stringer("registration", regType))
	return nil
}

// identities computes the keys implType is registered under. Must be called with c.mu held.
func (c *Container) identities(implType reflect.Type, regType RegistrationType, ifaces []any) ([]reflect.Type, error) {
	if !regType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRegistrationType, regType)
	}
	if len(ifaces) > 0 && !regType.HasInterfaces() {
		return nil, fmt.Errorf("%w: interfaces listed but %s does not include Interfaces", ErrInvalidRegistrationType, regType)
	}

	var keys []reflect.Type
	if regType.HasInterfaces() {
		if len(ifaces) > 0 {
			for _, iface := range ifaces {
				t, err := interfaceOf(iface)
				if err != nil {
					return nil, err
				}
				if !implements(implType, t) {
					return nil, fmt.Errorf("%w: %s does not implement %s", ErrNotImplemented, implType, t)
				}
				if !containsType(keys, t) {
					keys = append(keys, t)
				}
			}
		} else {
			for _, t := range c.interfaces {
				if implements(implType, t) {
					keys = append(keys, t)
				}
			}
		}
	}
	if regType.HasSelf() {
		keys = append(keys, implType)
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s registered as %s", ErrNoRegistrableIdentity, implType, regType)
	}
	return keys, nil
}

func newCtorDef(ctor any, scope LifetimeScope) (*ServiceDef, error) {
	if ctor == nil {
		return nil, ErrNotFunc
	}
	ctorVal := reflect.ValueOf(ctor)
	ctorType := ctorVal.Type()
	if ctorType.Kind() != reflect.Func {
		return nil, ErrNotFunc
	}

	if n := ctorType.NumOut(); n != 1 {
		return nil, fmt.Errorf("%w, got %d return values", ErrNoReturn, n)
	}
	implType := ctorType.Out(0)
	if implType.Kind() == reflect.Interface {
		return nil, fmt.Errorf("%w, returns interface %s", ErrNotConcreteType, implType)
	}

	params := make([]reflect.Type, ctorType.NumIn())
	for i := range params {
		params[i] = ctorType.In(i)
	}
	return &ServiceDef{
		implType:   implType,
		scope:      scope,
		ctor:       ctorVal,
		paramTypes: params,
	}, nil
}

func newInstanceDef(instance any, scope LifetimeScope) (*ServiceDef, error) {
	if scope == Transient {
		return nil, ErrTransientInstance
	}
	if instance == nil {
		return nil, ErrNilInstance
	}
	v := reflect.ValueOf(instance)
	return &ServiceDef{
		implType:   v.Type(),
		scope:      scope,
		isInstance: true,
		instance:   v,
	}, nil
}

// serviceTypeFor resolves an explicit interfaceType argument against implType.
// A pointer to an interface yields the interface; a pointer to a concrete type yields
// the pointer type itself, which must be compatible with implType.
func serviceTypeFor(implType reflect.Type, interfaceType any) (reflect.Type, error) {
	if interfaceType == nil {
		return implType, nil
	}
	targetType := reflect.TypeOf(interfaceType)
	if targetType.Kind() != reflect.Ptr {
		return nil, ErrInvalidInterfaceType
	}

	if elem := targetType.Elem(); elem.Kind() == reflect.Interface {
		if !implements(implType, elem) {
			return nil, fmt.Errorf("%w: %s does not implement %s", ErrNotImplemented, implType, elem)
		}
		return elem, nil
	}

	// (*UserService)(nil) registers as *UserService
	if !isTypeCompatible(implType, targetType) {
		return nil, fmt.Errorf("%w: %s cannot be converted to %s", ErrNotImplemented, implType, targetType)
	}
	return targetType, nil
}

func interfaceOf(iface any) (reflect.Type, error) {
	t := reflect.TypeOf(iface)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Interface {
		return nil, ErrInvalidInterfaceType
	}
	return t.Elem(), nil
}

// implements requires the registered type itself to satisfy iface. A value type whose
// methods have pointer receivers does not: resolving it would hand out a new copy
// each time instead of the cached instance.
func implements(implType, iface reflect.Type) bool {
	return implType.Implements(iface)
}

// isTypeCompatible checks whether implType can be served as targetType. A pointer
// implementation may be served as its value type; a value is never promoted to a pointer.
func isTypeCompatible(implType, targetType reflect.Type) bool {
	if implType.AssignableTo(targetType) || implType.ConvertibleTo(targetType) {
		return true
	}
	return implType.Kind() == reflect.Ptr && implType.Elem().AssignableTo(targetType)
}

package gofac

import (
	"fmt"
	"reflect"
)

// Resolve fills out, a non-nil pointer, with the service registered for *out's type.
func (c *Container) Resolve(out any) error {
	return resolveInto(out, func(svcType reflect.Type) (reflect.Value, error) {
		return c.resolve(svcType, nil, make(map[reflect.Type]bool))
	})
}

// ResolveNamed fills out with the instance registered under name.
// Named services are instance registrations only.
func (c *Container) ResolveNamed(name string, out any) error {
	return resolveInto(out, func(svcType reflect.Type) (reflect.Value, error) {
		c.mu.RLock()
		named, exists := c.namedServices[name]
		var def *ServiceDef
		if exists {
			def, exists = named[svcType]
		}
		c.mu.RUnlock()

		if named == nil {
			return reflect.Value{}, fmt.Errorf("%w: %q", ErrNamedNotFound, name)
		}
		if !exists {
			return reflect.Value{}, fmt.Errorf("%w, name: %s, type: %s", ErrServiceNotRegistered, name, svcType)
		}
		return def.instance, nil
	})
}

// ResolveAll fills out, a pointer to a slice, with the default service of the element
// type followed by every named instance of it.
func (c *Container) ResolveAll(out any) error {
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Ptr || outVal.IsNil() {
		return ErrInvalidOutPtr
	}
	sliceType := outVal.Elem().Type()
	if sliceType.Kind() != reflect.Slice {
		return fmt.Errorf("%w, got %s", ErrNotSlicePtr, sliceType)
	}

	results, err := c.collect(sliceType, nil, make(map[reflect.Type]bool))
	if err != nil {
		return err
	}
	outVal.Elem().Set(results)
	return nil
}

func resolveInto(out any, resolve func(reflect.Type) (reflect.Value, error)) error {
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Ptr || outVal.IsNil() {
		return ErrInvalidOutPtr
	}
	svcType := outVal.Elem().Type()
	instance, err := resolve(svcType)
	if err != nil {
		return err
	}
	v, err := adapt(instance, svcType)
	if err != nil {
		return err
	}
	outVal.Elem().Set(v)
	return nil
}

// resolve is the recursive resolver shared by the root container (s == nil) and scopes.
func (c *Container) resolve(svcType reflect.Type, s *Scope, track map[reflect.Type]bool) (reflect.Value, error) {
	def, exists := c.lookup(svcType)
	if !exists {
		return reflect.Value{}, fmt.Errorf("%w, type: %s", ErrServiceNotRegistered, svcType)
	}

	if track[svcType] {
		return reflect.Value{}, fmt.Errorf("%w, chain includes: %s", ErrResolveCircularDependency, svcType)
	}
	track[svcType] = true
	defer delete(track, svcType)

	if def.scope == Scoped && s == nil {
		return reflect.Value{}, ErrScopedOnRootContainer
	}

	if def.isInstance {
		if def.scope == Scoped {
			return s.store(def, def.instance), nil
		}
		return def.instance, nil
	}

	switch def.scope {
	case Singleton:
		if inst, ok := def.cached(); ok {
			return inst, nil
		}
	case Scoped:
		if inst, ok := s.cached(def); ok {
			return inst, nil
		}
	}

	params := make([]reflect.Value, len(def.paramTypes))
	for i, pType := range def.paramTypes {
		p, err := c.resolveParam(pType, s, track)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("resolve dependency %s of %s: %w", pType, def.implType, err)
		}
		params[i] = p
	}

	instance, err := def.construct(params)
	if err != nil {
		return reflect.Value{}, err
	}

	switch def.scope {
	case Singleton:
		return def.store(instance), nil
	case Scoped:
		return s.store(def, instance), nil
	}
	return instance, nil
}

// resolveParam resolves one constructor parameter. Unregistered slices and
// map[string]T parameters are filled from the default and named registrations.
func (c *Container) resolveParam(pType reflect.Type, s *Scope, track map[reflect.Type]bool) (reflect.Value, error) {
	if _, registered := c.lookup(pType); !registered {
		switch {
		case pType.Kind() == reflect.Slice:
			return c.collect(pType, s, track)
		case pType.Kind() == reflect.Map && pType.Key().Kind() == reflect.String:
			return c.collectNamed(pType), nil
		}
	}

	inst, err := c.resolve(pType, s, track)
	if err != nil {
		return reflect.Value{}, err
	}
	return adapt(inst, pType)
}

// collect builds a slice of the default service of the element type plus every
// named instance of it. A failing default service is skipped.
func (c *Container) collect(sliceType reflect.Type, s *Scope, track map[reflect.Type]bool) (reflect.Value, error) {
	elemType := sliceType.Elem()
	results := reflect.MakeSlice(sliceType, 0, 0)

	if _, exists := c.lookup(elemType); exists {
		if inst, err := c.resolve(elemType, s, track); err == nil {
			v, err := adapt(inst, elemType)
			if err != nil {
				return reflect.Value{}, err
			}
			results = reflect.Append(results, v)
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, named := range c.namedServices {
		if def, exists := named[elemType]; exists && def.isInstance {
			v, err := adapt(def.instance, elemType)
			if err != nil {
				return reflect.Value{}, err
			}
			results = reflect.Append(results, v)
		}
	}
	return results, nil
}

func (c *Container) collectNamed(mapType reflect.Type) reflect.Value {
	valueType := mapType.Elem()
	results := reflect.MakeMap(mapType)

	c.mu.RLock()
	defer c.mu.RUnlock()
	for name, named := range c.namedServices {
		if def, exists := named[valueType]; exists && def.isInstance {
			if v, err := adapt(def.instance, valueType); err == nil {
				results.SetMapIndex(reflect.ValueOf(name).Convert(mapType.Key()), v)
			}
		}
	}
	return results
}

// adapt converts a resolved instance to the requested type, dereferencing it when
// only the value form matches.
func adapt(instance reflect.Value, target reflect.Type) (reflect.Value, error) {
	it := instance.Type()
	switch {
	case it.AssignableTo(target):
		return instance, nil
	case it.Kind() == reflect.Ptr && !instance.IsNil() && it.Elem().AssignableTo(target):
		return instance.Elem(), nil
	case it.ConvertibleTo(target):
		return instance.Convert(target), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: instance %s, target %s", ErrTypeConvertFailed, it, target)
}

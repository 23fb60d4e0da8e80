package gofac

import (
	"fmt"
	"reflect"
)

// Get resolves T from the global container.
func Get[T any]() (T, error) {
	return GetFrom[T](Global)
}

// MustGet resolves T from the global container, panicking on error.
func MustGet[T any]() T {
	inst, err := Get[T]()
	if err != nil {
		panic(err)
	}
	return inst
}

// GetFrom resolves T from c.
func GetFrom[T any](c *Container) (T, error) {
	svcType := reflect.TypeOf((*T)(nil)).Elem()
	instance, err := c.resolve(svcType, nil, make(map[reflect.Type]bool))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("[DI get failed] %w", err)
	}
	return getTyped[T](svcType, instance)
}

// ScopeGet resolves T within s, supporting Scoped lifetimes.
func ScopeGet[T any](s *Scope) (T, error) {
	svcType := reflect.TypeOf((*T)(nil)).Elem()
	instance, err := s.root.resolve(svcType, s, make(map[reflect.Type]bool))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("[DI scope get failed] %w", err)
	}
	return getTyped[T](svcType, instance)
}

// ScopeMustGet is ScopeGet, panicking on error.
func ScopeMustGet[T any](s *Scope) T {
	inst, err := ScopeGet[T](s)
	if err != nil {
		panic(err)
	}
	return inst
}

// Contains reports whether T is registered as a default service in c.
func Contains[T any](c *Container) bool {
	_, ok := c.lookup(reflect.TypeOf((*T)(nil)).Elem())
	return ok
}

func getTyped[T any](svcType reflect.Type, instance reflect.Value) (T, error) {
	var zero T
	v, err := adapt(instance, svcType)
	if err != nil {
		return zero, err
	}
	typed, ok := v.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("%w: instance %s, target %s", ErrTypeConvertFailed, v.Type(), svcType)
	}
	return typed, nil
}

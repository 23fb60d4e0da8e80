package gofac

import (
	"errors"
	"fmt"
	"testing"
)

var allErrors = []error{
	ErrNotFunc,
	ErrNoReturn,
	ErrRegisterDuplicate,
	ErrServiceNotRegistered,
	ErrCreateInstanceFailed,
	ErrNotConcreteType,
	ErrResolveCircularDependency,
	ErrInvalidInterfaceType,
	ErrNotImplemented,
	ErrInvalidOutPtr,
	ErrTypeConvertFailed,
	ErrScopedOnRootContainer,
	ErrTransientInstance,
	ErrNilInstance,
	ErrEmptyName,
	ErrNamedNotFound,
	ErrNotSlicePtr,
	ErrInvalidRegistrationType,
	ErrNoRegistrableIdentity,
	ErrUnknownRegistrationType,
	ErrUnknownLifetimeScope,
	ErrUnknownCatalogEntry,
}

// TestErrorMessages tests that error messages are defined and distinct
func TestErrorMessages(t *testing.T) {
	seen := make(map[string]bool)
	for _, err := range allErrors {
		if err == nil {
			t.Fatal("error constant is nil")
		}
		msg := err.Error()
		if msg == "" {
			t.Errorf("Error message should not be empty for error: %v", err)
		}
		if seen[msg] {
			t.Errorf("Duplicate error message: %s", msg)
		}
		seen[msg] = true
	}
}

// TestErrorEquality tests that errors can be compared
func TestErrorEquality(t *testing.T) {
	for i, a := range allErrors {
		for j, b := range allErrors {
			if (i == j) != errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = %v", a, b, errors.Is(a, b))
			}
		}
	}
}

// TestErrorWrapping tests that wrapped errors stay identifiable
func TestErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: %s", ErrNoRegistrableIdentity, "*gofac.TestService")
	if !errors.Is(wrapped, ErrNoRegistrableIdentity) {
		t.Error("Wrapped error should still be identifiable with errors.Is")
	}

	joined := errors.Join(ErrNotFunc, errors.New("additional context"))
	if !errors.Is(joined, ErrNotFunc) {
		t.Error("Joined error should still be identifiable with errors.Is")
	}
}

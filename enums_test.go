package gofac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLifetimeScopeConstants tests that the lifetime scope constants are defined correctly
func TestLifetimeScopeConstants(t *testing.T) {
	tests := []struct {
		name     string
		scope    LifetimeScope
		expected int
	}{
		{"Transient", Transient, 0},
		{"Singleton", Singleton, 1},
		{"Scoped", Scoped, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.scope) != tt.expected {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.expected, int(tt.scope))
			}
		})
	}
}

// TestLifetimeScopeComparison tests that lifetime scopes can be compared
func TestLifetimeScopeComparison(t *testing.T) {
	if Transient == Singleton {
		t.Error("Transient should not equal Singleton")
	}

	if Singleton == Scoped {
		t.Error("Singleton should not equal Scoped")
	}

	if Transient == Scoped {
		t.Error("Transient should not equal Scoped")
	}

	// Test equality
	var scope1 LifetimeScope = Singleton
	var scope2 LifetimeScope = Singleton
	if scope1 != scope2 {
		t.Error("Same lifetime scopes should be equal")
	}
}

// TestLifetimeScopeOrdering tests the ordering of lifetime scope values
func TestLifetimeScopeOrdering(t *testing.T) {
	if Transient >= Singleton {
		t.Error("Transient should be less than Singleton")
	}

	if Singleton >= Scoped {
		t.Error("Singleton should be less than Scoped")
	}

	if Transient >= Scoped {
		t.Error("Transient should be less than Scoped")
	}
}

// TestLifetimeScopeText tests the text form used by manifests
func TestLifetimeScopeText(t *testing.T) {
	for _, scope := range []LifetimeScope{Transient, Singleton, Scoped} {
		text, err := scope.MarshalText()
		require.NoError(t, err)

		var decoded LifetimeScope
		require.NoError(t, decoded.UnmarshalText(text))
		require.Equal(t, scope, decoded)
	}

	parsed, err := ParseLifetimeScope(" singleton ")
	require.NoError(t, err)
	require.Equal(t, Singleton, parsed)

	_, err = ParseLifetimeScope("request")
	require.ErrorIs(t, err, ErrUnknownLifetimeScope)

	_, err = LifetimeScope(9).MarshalText()
	require.ErrorIs(t, err, ErrUnknownLifetimeScope)
	require.Equal(t, "LifetimeScope(9)", LifetimeScope(9).String())
}

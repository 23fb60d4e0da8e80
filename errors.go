package gofac

import "errors"

// Framework core error definitions
var (
	ErrNotFunc                   = errors.New("registration must be a constructor function (function type)")
	ErrNoReturn                  = errors.New("constructor must have exactly one return value")
	ErrRegisterDuplicate         = errors.New("service type already registered, duplicate registration prohibited")
	ErrServiceNotRegistered      = errors.New("service not registered, cannot resolve")
	ErrCreateInstanceFailed      = errors.New("failed to create service instance")
	ErrNotConcreteType           = errors.New("constructor return value must be concrete type (not interface)")
	ErrResolveCircularDependency = errors.New("circular dependency detected during resolution")
	ErrInvalidInterfaceType      = errors.New("interfaceType must be a nil pointer to interface, e.g. (*IInterface)(nil)")
	ErrNotImplemented            = errors.New("implementation type does not satisfy the requested service type")
	ErrInvalidOutPtr             = errors.New("out must be a non-nil pointer type")
	ErrTypeConvertFailed         = errors.New("instance cannot be converted to target type")
	ErrScopedOnRootContainer     = errors.New("scoped lifetime services cannot be retrieved directly from root container, please use Scope")
	ErrTransientInstance         = errors.New("instance registration does not support Transient lifetime, please use Singleton or Scoped")
	ErrNilInstance               = errors.New("registered instance cannot be nil")
	ErrEmptyName                 = errors.New("named registration requires a non-empty name")
	ErrNamedNotFound             = errors.New("no services registered under name")
	ErrNotSlicePtr               = errors.New("out must be a pointer to a slice")

	// Registration type errors
	ErrInvalidRegistrationType = errors.New("registration type must set Interfaces, Self or both, and no other bits")
	ErrNoRegistrableIdentity   = errors.New("no registrable identity found for service")
	ErrUnknownRegistrationType = errors.New("unknown registration type")
	ErrUnknownLifetimeScope    = errors.New("unknown lifetime scope")
	ErrUnknownCatalogEntry     = errors.New("manifest references an entry missing from the catalog")
)

package gofac

import "fmt"

// ---------------------- Must helpers: panic on error ----------------------

func (c *Container) MustRegister(ctor any, scope LifetimeScope) {
	if err := c.Register(ctor, scope); err != nil {
		panic(fmt.Sprintf("[DI register failed] %v", err))
	}
}

func (c *Container) MustRegisterAs(ctor any, interfaceType any, scope LifetimeScope) {
	if err := c.RegisterAs(ctor, interfaceType, scope); err != nil {
		panic(fmt.Sprintf("[DI interface register failed] %v", err))
	}
}

func (c *Container) MustRegisterType(ctor any, regType RegistrationType, scope LifetimeScope, ifaces ...any) {
	if err := c.RegisterType(ctor, regType, scope, ifaces...); err != nil {
		panic(fmt.Sprintf("[DI %s register failed] %v", regType, err))
	}
}

func (c *Container) MustRegisterInstance(instance any, scope LifetimeScope) {
	if err := c.RegisterInstance(instance, scope); err != nil {
		panic(fmt.Sprintf("[DI instance register failed] %v", err))
	}
}

func (c *Container) MustRegisterInstanceAs(instance any, interfaceType any, scope LifetimeScope) {
	if err := c.RegisterInstanceAs(instance, interfaceType, scope); err != nil {
		panic(fmt.Sprintf("[DI instance interface register failed] %v", err))
	}
}

func (c *Container) MustRegisterInstanceType(instance any, regType RegistrationType, scope LifetimeScope, ifaces ...any) {
	if err := c.RegisterInstanceType(instance, regType, scope, ifaces...); err != nil {
		panic(fmt.Sprintf("[DI %s instance register failed] %v", regType, err))
	}
}

func (c *Container) MustRegisterInstanceNamed(name string, instance any, scope LifetimeScope) {
	if err := c.RegisterInstanceNamed(name, instance, scope); err != nil {
		panic(fmt.Sprintf("[DI named instance register failed] %v", err))
	}
}

func (c *Container) MustRegisterInstanceAsNamed(name string, instance any, interfaceType any, scope LifetimeScope) {
	if err := c.RegisterInstanceAsNamed(name, instance, interfaceType, scope); err != nil {
		panic(fmt.Sprintf("[DI named instance interface register failed] %v", err))
	}
}

func (c *Container) MustResolve(out any) {
	if err := c.Resolve(out); err != nil {
		panic(fmt.Sprintf("[DI resolve failed] %v", err))
	}
}

func (c *Container) MustResolveNamed(name string, out any) {
	if err := c.ResolveNamed(name, out); err != nil {
		panic(fmt.Sprintf("[DI named resolve failed] %v", err))
	}
}

func (c *Container) MustResolveAll(out any) {
	if err := c.ResolveAll(out); err != nil {
		panic(fmt.Sprintf("[DI resolve all failed] %v", err))
	}
}

func (s *Scope) MustResolve(out any) {
	if err := s.Resolve(out); err != nil {
		panic(fmt.Sprintf("[DI scope resolve failed] %v", err))
	}
}

// ---------------------- Global container shortcuts ----------------------

func MustRegister(ctor any, scope LifetimeScope) { Global.MustRegister(ctor, scope) }
func MustRegisterAs(ctor any, iface any, scope LifetimeScope) {
	Global.MustRegisterAs(ctor, iface, scope)
}
func MustRegisterType(ctor any, regType RegistrationType, scope LifetimeScope, ifaces ...any) {
	Global.MustRegisterType(ctor, regType, scope, ifaces...)
}
func MustRegisterInstance(instance any, scope LifetimeScope) {
	Global.MustRegisterInstance(instance, scope)
}
func MustRegisterInstanceAs(instance any, iface any, scope LifetimeScope) {
	Global.MustRegisterInstanceAs(instance, iface, scope)
}
func MustResolve(out any) { Global.MustResolve(out) }

package gofac_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Ngone6325/gofac/v2"
	"github.com/Ngone6325/gofac/v2/model"
)

const demoManifest = `
interfaces: [IUserRepo, IHealthChecker, IUserService, IUserLog]
services:
  - name: userRepo
    lifetime: singleton
    register: all
  - name: userService
    lifetime: transient
    register: interfaces
  - name: userLog
    lifetime: Scoped
    register: interfaces|self
`

func loadManifest(t *testing.T, doc string) *gofac.Manifest {
	t.Helper()
	m, err := gofac.LoadManifest(strings.NewReader(doc))
	require.NoError(t, err)
	return m
}

func TestLoadManifest(t *testing.T) {
	m := loadManifest(t, demoManifest)

	require.Len(t, m.Services, 3)
	assert.Equal(t, []string{"IUserRepo", "IHealthChecker", "IUserService", "IUserLog"}, m.Interfaces)
	assert.Equal(t, gofac.Singleton, m.Services[0].Lifetime)
	assert.Equal(t, gofac.All, m.Services[0].RegistrationType())
	assert.Equal(t, gofac.Interfaces, m.Services[1].RegistrationType())
	assert.Equal(t, gofac.Scoped, m.Services[2].Lifetime)
	assert.Equal(t, gofac.All, m.Services[2].RegistrationType())
}

func TestLoadManifestDefaults(t *testing.T) {
	m := loadManifest(t, "services:\n  - name: userRepo\n")

	require.Len(t, m.Services, 1)
	assert.Equal(t, gofac.Transient, m.Services[0].Lifetime)
	assert.Equal(t, gofac.Self, m.Services[0].RegistrationType())

	empty := loadManifest(t, "")
	assert.Empty(t, empty.Services)
}

func TestLoadManifestNumericRegistration(t *testing.T) {
	m := loadManifest(t, "services:\n  - name: userRepo\n    register: 3\n")
	assert.Equal(t, gofac.All, m.Services[0].RegistrationType())
}

func TestLoadManifestErrors(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want error
	}{
		"unknown registration": {"services:\n  - name: a\n    register: derived\n", gofac.ErrUnknownRegistrationType},
		"reserved bits":        {"services:\n  - name: a\n    register: 4\n", gofac.ErrUnknownRegistrationType},
		"unknown lifetime":     {"services:\n  - name: a\n    lifetime: request\n", gofac.ErrUnknownLifetimeScope},
		"missing name":         {"services:\n  - lifetime: singleton\n", gofac.ErrEmptyName},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := gofac.LoadManifest(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := gofac.LoadManifest(strings.NewReader("services:\n  - name: a\n    scope: singleton\n"))
	require.Error(t, err, "unknown fields are rejected")
}

func TestApplyManifest(t *testing.T) {
	c := gofac.NewContainer()
	require.NoError(t, c.Apply(loadManifest(t, demoManifest), model.Catalog()))

	assert.True(t, gofac.Contains[model.IUserRepo](c))
	assert.True(t, gofac.Contains[model.IHealthChecker](c))
	assert.True(t, gofac.Contains[*model.UserRepo](c))
	assert.True(t, gofac.Contains[model.IUserService](c))
	assert.False(t, gofac.Contains[*model.UserService](c))
	assert.True(t, gofac.Contains[model.IUserLog](c))
	assert.True(t, gofac.Contains[*model.UserLog](c))

	repo, err := gofac.GetFrom[model.IUserRepo](c)
	require.NoError(t, err)
	self, err := gofac.GetFrom[*model.UserRepo](c)
	require.NoError(t, err)
	health, err := gofac.GetFrom[model.IHealthChecker](c)
	require.NoError(t, err)
	assert.Equal(t, self.GetRepoUUID(), repo.GetRepoUUID())
	assert.True(t, health.Healthy())

	svc, err := gofac.GetFrom[model.IUserService](c)
	require.NoError(t, err)
	assert.Equal(t, "user_10086", svc.GetUserName())
	assert.Equal(t, self.GetRepoUUID(), svc.GetRepoUUID())

	scope := c.NewScope()
	log := gofac.ScopeMustGet[model.IUserLog](scope)
	assert.Same(t, gofac.ScopeMustGet[*model.UserLog](scope), log.(*model.UserLog))
	assert.Equal(t, "user_log: user_id=10086", log.LogUserID())
}

func TestApplyExplicitInterfaces(t *testing.T) {
	c := gofac.NewContainer()
	m := loadManifest(t, `
services:
  - name: userRepo
    lifetime: singleton
    register: interfaces
    interfaces: [IHealthChecker]
`)
	require.NoError(t, c.Apply(m, model.Catalog()))

	assert.True(t, gofac.Contains[model.IHealthChecker](c))
	assert.False(t, gofac.Contains[model.IUserRepo](c))
}

func TestApplyErrors(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := gofac.NewContainer(gofac.WithLogger(zap.New(core)))

	err := c.Apply(loadManifest(t, "interfaces: [IMissing]\n"), model.Catalog())
	require.ErrorIs(t, err, gofac.ErrUnknownCatalogEntry)

	err = c.Apply(loadManifest(t, "services:\n  - name: missing\n"), model.Catalog())
	require.ErrorIs(t, err, gofac.ErrUnknownCatalogEntry)
	assert.Contains(t, err.Error(), `service "missing"`)

	err = c.Apply(loadManifest(t, "services:\n  - name: userRepo\n    register: interfaces\n"), model.Catalog())
	require.ErrorIs(t, err, gofac.ErrNoRegistrableIdentity)

	err = c.Apply(loadManifest(t, "services:\n  - name: userRepo\n    register: none\n"), model.Catalog())
	require.ErrorIs(t, err, gofac.ErrInvalidRegistrationType)

	assert.Equal(t, 3, logs.FilterMessage("manifest registration failed").Len())
}

package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ngone6325/gofac/v2"
	"github.com/Ngone6325/gofac/v2/model"
)

//go:embed demo.yaml
var defaultManifest []byte

var manifestPath string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Register the model services from a manifest and show what is shared",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(verbose)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		var r io.Reader = bytes.NewReader(defaultManifest)
		if manifestPath != "" {
			f, err := os.Open(manifestPath)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		m, err := gofac.LoadManifest(r)
		if err != nil {
			return err
		}
		c := gofac.NewContainer(gofac.WithLogger(log))
		if err := c.Apply(m, model.Catalog()); err != nil {
			return err
		}
		return runDemo(cmd.OutOrStdout(), c)
	},
}

func init() {
	demoCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "",
		"registration manifest (default: built-in demo manifest)")
}

func runDemo(w io.Writer, c *gofac.Container) error {
	fmt.Fprintln(w, "registered identities:")
	for _, t := range c.Registered() {
		fmt.Fprintf(w, "  %s\n", t)
	}

	if gofac.Contains[model.IUserRepo](c) && gofac.Contains[*model.UserRepo](c) {
		repo, err := gofac.GetFrom[model.IUserRepo](c)
		if err != nil {
			return err
		}
		self, err := gofac.GetFrom[*model.UserRepo](c)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "repo shared across IUserRepo and *UserRepo: %t\n", repo.GetRepoUUID() == self.GetRepoUUID())
	}

	if gofac.Contains[model.IUserService](c) {
		a, err := gofac.GetFrom[model.IUserService](c)
		if err != nil {
			return err
		}
		b, err := gofac.GetFrom[model.IUserService](c)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s via repo %s\n", a.GetUserName(), a.GetRepoUUID())
		fmt.Fprintf(w, "user service same instance twice: %t\n", a == b)
	}

	if gofac.Contains[model.IUserLog](c) {
		for i := 1; i <= 2; i++ {
			scope := c.NewScope()
			first, err := gofac.ScopeGet[model.IUserLog](scope)
			if err != nil {
				return err
			}
			second, err := gofac.ScopeGet[model.IUserLog](scope)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "scope %d: %s log=%s reused=%t\n", i, first.LogUserID(), first.GetLogUUID(), first == second)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Ngone6325/gofac/v2"
)

var flagsCmd = &cobra.Command{
	Use:   "flags <value>...",
	Short: "Decode registration types",
	Long: `Decode registration types given as names ("interfaces", "self", "all"),
unions ("interfaces|self") or integers ("3").`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			if err := printRegistrationType(cmd.OutOrStdout(), arg); err != nil {
				return err
			}
		}
		return nil
	},
}

func printRegistrationType(w io.Writer, arg string) error {
	rt, err := gofac.ParseRegistrationType(arg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%-16s value=%d flags=%v interfaces=%t self=%t valid=%t\n",
		rt, uint8(rt), rt.Flags(), rt.HasInterfaces(), rt.HasSelf(), rt.IsValid())
	return err
}

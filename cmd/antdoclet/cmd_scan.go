package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aunkrig/antdoclet/decl"
	"github.com/aunkrig/antdoclet/javasrc"
)

func newScanCmd() *cobra.Command {
	var members bool

	cmd := &cobra.Command{
		Use:   "scan <dir>...",
		Short: "Scan source directories and list the declarations found",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := decl.NewStore()
			err := javasrc.ScanDirs(store, args, func(path string, err error) {
				fmt.Printf("skipping %s: %s\n", path, err)
			})
			if err != nil {
				return err
			}

			for _, d := range store.All() {
				fmt.Printf("%s %s", d.Kind, d.Name)
				if d.SuperClass != "" {
					fmt.Printf(" extends %s", d.SuperClass)
				}
				if len(d.Interfaces) > 0 {
					fmt.Printf(" implements %s", strings.Join(d.Interfaces, ", "))
				}
				fmt.Println()
				if !members {
					continue
				}
				for _, m := range d.Members {
					fmt.Printf("  %s %s\n", m.ReturnType, m.Signature())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&members, "members", "m", false, "List members as well")
	return cmd
}

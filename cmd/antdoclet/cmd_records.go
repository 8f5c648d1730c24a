package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aunkrig/antdoclet/antlib"
)

func newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records <antlib.xml>...",
		Short: "Parse registration files and dump their records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				records, err := antlib.ParseFile(path)
				if err != nil {
					return err
				}
				for _, rec := range records {
					fmt.Printf("%s: %s", rec.Pos, rec.Kind)
					switch {
					case rec.Name != "":
						fmt.Printf(" %s = %s", rec.Name, rec.ClassName)
						if rec.AdaptTo != "" {
							fmt.Printf(" (adapts to %s)", rec.AdaptTo)
						}
					case rec.File != "":
						fmt.Printf(" file %s", rec.File)
					case rec.Resource != "":
						fmt.Printf(" resource %s", rec.Resource)
					}
					fmt.Println()
				}
			}
			return nil
		},
	}
	return cmd
}

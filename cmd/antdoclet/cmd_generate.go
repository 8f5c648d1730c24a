package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/aunkrig/antdoclet/config"
	"github.com/aunkrig/antdoclet/decl"
	"github.com/aunkrig/antdoclet/doclet"
	"github.com/aunkrig/antdoclet/javasrc"
	"github.com/aunkrig/antdoclet/render"
)

func newGenerateCmd() *cobra.Command {
	var configPath string
	var outputDir string
	var verbosity int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the documentation page tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			cfg, err := config.LoadFromFile(configPath)
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Output = outputDir
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%s: %w", configPath, err)
			}

			log := commonlog.GetLogger("antdoclet")
			sink := doclet.NewLogSink("antdoclet")

			store := decl.NewStore()
			err = javasrc.ScanDirs(store, cfg.Source, func(path string, err error) {
				log.Warningf("skipping %s: %s", path, err.Error())
			})
			if err != nil {
				return err
			}

			builder := &doclet.Builder{Store: store, Sink: sink, SearchPath: cfg.SearchPath()}
			model, err := builder.Build(cfg.Antlibs...)
			if err != nil {
				return fmt.Errorf("build documentation model: %w", err)
			}

			resolver := &doclet.Resolver{Model: model, External: cfg.ExternalLinks(), Sink: sink}
			renderer, err := render.New(model, resolver, cfg.Title)
			if err != nil {
				return err
			}
			if err := renderer.RenderAll(cfg.Output); err != nil {
				return fmt.Errorf("write pages: %w", err)
			}

			components := 0
			for _, g := range model.Groups {
				components += len(g.Components)
			}
			fmt.Printf("Documented %d components in %s\n", components, cfg.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "antdoclet.yaml", "Configuration file")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Override the configured output directory")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity")
	return cmd
}

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/semtools/semmeta"
	"github.com/semtools/semmeta/internal/export"
	"github.com/semtools/semmeta/internal/view"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var (
		settings extractSettings
		features []string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "show <image|sidecar>",
		Short: "Display the key instrument settings of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			md, err := loadMetadata(ctx, settings, args[0])
			if err != nil {
				return err
			}

			opts := view.Options{
				Features:      cfg.View.Features,
				FallbackLimit: cfg.View.FallbackLimit,
			}
			if len(features) > 0 {
				opts.Features = features
			}
			rows := view.Select(md, opts)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", md.FileName)
			if len(rows) == 0 {
				fmt.Fprintln(out, "No instrument metadata found")
				return nil
			}
			colorize := !noColor && view.ShouldColorize(out)
			fmt.Fprintln(out, view.Render(rows, colorize))
			return nil
		},
	}

	settings.bind(cmd)
	cmd.Flags().StringSliceVar(&features, "feature", nil, "Feature to show (repeatable); overrides [view].features")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

// loadMetadata reads a JSON sidecar directly or extracts an image.
func loadMetadata(ctx *commandContext, settings extractSettings, path string) (semmeta.MergedMetadata, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return export.ReadSidecar(path)
	}
	opts, err := ctx.extractOptions(settings, ctx.baseLogger())
	if err != nil {
		return semmeta.MergedMetadata{}, err
	}
	res, err := semmeta.ExtractFile(path, opts...)
	if err != nil {
		return semmeta.MergedMetadata{}, err
	}
	return res.Metadata, nil
}

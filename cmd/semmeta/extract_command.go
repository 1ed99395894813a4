package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/semtools/semmeta"
	"github.com/semtools/semmeta/internal/export"
	"github.com/semtools/semmeta/internal/logging"
)

type extractJSONItem struct {
	Path     string                  `json:"path"`
	Metadata *semmeta.MergedMetadata `json:"metadata,omitempty"`
	Warnings []semmeta.Warning       `json:"warnings,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var (
		settings extractSettings
		asJSON   bool
		outDir   string
		clean    bool
	)

	cmd := &cobra.Command{
		Use:   "extract <image>...",
		Short: "Extract metadata and write JSON sidecars",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			logger := logging.NewComponentLogger(ctx.baseLogger(), "extract").With(logging.FieldRunID, runID)
			opts, err := ctx.extractOptions(settings, logger)
			if err != nil {
				return err
			}

			results := semmeta.ExtractMany(cmd.Context(), args, opts...)
			for _, r := range results {
				if r.Err != nil {
					logger.Error("extraction failed", logging.FieldFile, r.Path, logging.Error(r.Err))
				}
			}

			if asJSON {
				items := make([]extractJSONItem, 0, len(results))
				for _, r := range results {
					item := extractJSONItem{Path: r.Path}
					if r.Err != nil {
						item.Error = r.Err.Error()
					} else {
						md := r.Result.Metadata
						if clean || cfg.Output.Clean {
							md = export.Clean(md)
						}
						item.Metadata = &md
						item.Warnings = r.Result.Warnings
					}
					items = append(items, item)
				}
				if err := writeJSON(cmd, items); err != nil {
					return err
				}
				return batchError(results)
			}

			sidecarOpts := export.Options{
				Dir:    cfg.Output.Dir,
				Suffix: cfg.Output.Suffix,
				Indent: cfg.Output.Indent,
				Clean:  cfg.Output.Clean || clean,
			}
			if outDir != "" {
				dir, err := expandDir(outDir)
				if err != nil {
					return err
				}
				sidecarOpts.Dir = dir
			}

			rows := make([][]string, 0, len(results))
			for i, r := range results {
				if r.Err != nil {
					rows = append(rows, []string{r.Path, "", "", "failed: " + r.Err.Error()})
					continue
				}
				target, err := export.WriteSidecar(cmd.Context(), r.Result.Metadata, r.Path, sidecarOpts)
				if err != nil {
					results[i].Err = err
					rows = append(rows, []string{r.Path, "", "", "failed: " + err.Error()})
					continue
				}
				logger.Info("sidecar written", logging.FieldFile, r.Path, "sidecar", target)
				rows = append(rows, []string{r.Path, target, strconv.Itoa(len(r.Result.Warnings)), "ok"})
			}

			fmt.Fprint(cmd.OutOrStdout(), renderTable(
				[]string{"Image", "Sidecar", "Warnings", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintln(cmd.OutOrStdout())
			return batchError(results)
		},
	}

	settings.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print metadata as JSON instead of writing sidecars")
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Directory for JSON sidecars")
	cmd.Flags().BoolVar(&clean, "clean", false, "Drop null EXIF entries from the output")
	return cmd
}

// batchError summarizes failed images; nil when every image succeeded.
func batchError(results []semmeta.BatchResult) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d images failed", failed, len(results))
}

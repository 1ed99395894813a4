package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/semtools/semmeta"
	"github.com/semtools/semmeta/internal/index"
	"github.com/semtools/semmeta/internal/logging"
)

func (c *commandContext) openIndex(cmd *cobra.Command) (*index.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := index.Open(cmd.Context(), cfg.Index.Path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return store, nil
}

func newIndexCommand(ctx *commandContext) *cobra.Command {
	var settings extractSettings

	cmd := &cobra.Command{
		Use:   "index <image>...",
		Short: "Extract images and record them in the index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()
			logger := logging.NewComponentLogger(ctx.baseLogger(), "index").With(logging.FieldRunID, runID)
			opts, err := ctx.extractOptions(settings, logger)
			if err != nil {
				return err
			}

			store, err := ctx.openIndex(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			results := semmeta.ExtractMany(cmd.Context(), args, opts...)
			out := cmd.OutOrStdout()
			indexed := 0
			for i, r := range results {
				if r.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
					continue
				}
				source, err := filepath.Abs(r.Path)
				if err != nil {
					source = r.Path
				}
				if _, err := store.Put(cmd.Context(), source, runID, r.Result.Metadata); err != nil {
					results[i].Err = err
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, err)
					continue
				}
				indexed++
			}
			fmt.Fprintf(out, "Indexed %d of %d images into %s\n", indexed, len(results), store.Path())
			return batchError(results)
		},
	}

	settings.bind(cmd)
	return cmd
}

func newQueryCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "query <key>",
		Short: "List every indexed value of a metadata key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openIndex(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			hits, err := store.Query(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, hits)
			}

			out := cmd.OutOrStdout()
			if len(hits) == 0 {
				fmt.Fprintf(out, "No indexed values for %s\n", args[0])
				return nil
			}
			rows := make([][]string, 0, len(hits))
			for _, h := range hits {
				value := h.Value
				if h.Null {
					value = "null"
				}
				rows = append(rows, []string{h.SourcePath, h.Section, value})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Image", "Section", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

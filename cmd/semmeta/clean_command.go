package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semtools/semmeta/internal/export"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clean <sidecar>...",
		Short: "Write copies of JSON sidecars without null entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				written, err := export.CleanFile(cmd.Context(), path, cfg.Output.Indent)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(out, "%s -> %s\n", path, written)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d sidecars failed", failed, len(args))
			}
			return nil
		},
	}
}

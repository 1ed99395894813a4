package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semtools/semmeta"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), semmeta.GetVersionInfo().String())
			return nil
		},
	}
}

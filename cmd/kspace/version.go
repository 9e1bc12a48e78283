package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kspace"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kspace",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kspace version %s\n", kspace.Version)
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stego",
		Short:         "Hide and recover encrypted payloads inside JPEG covers",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newHideCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newDemoCmd())
	return root
}

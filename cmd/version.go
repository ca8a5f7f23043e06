package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oranolio956/qa-automation-framework-sub005/pkg/fingerprint"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version and fingerprint scheme version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stealthctl %s (fingerprint scheme v%d)\n", Version, fingerprint.SchemeVersion)
	},
}

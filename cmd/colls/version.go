package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build-time variables set by goreleaser or go build -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version, commit hash, and build date of colls.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// runVersion prints version information.
func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("colls %s\n", version)
	fmt.Printf("  %s %s\n", labelStyle.Render("commit: "), valueStyle.Render(commit))
	fmt.Printf("  %s %s\n", labelStyle.Render("built:  "), valueStyle.Render(date))
	fmt.Printf("  %s %s\n", labelStyle.Render("go:     "), valueStyle.Render(runtime.Version()))
	fmt.Printf("  %s %s\n", labelStyle.Render("os/arch:"), valueStyle.Render(runtime.GOOS+"/"+runtime.GOARCH))
}

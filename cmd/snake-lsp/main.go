package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	get_diagnostics "github.com/oloveluck/snake-lsp/cmd/snake-lsp/get-diagnostics"
	"github.com/oloveluck/snake-lsp/cmd/snake-lsp/locate"
	serve_lsp "github.com/oloveluck/snake-lsp/cmd/snake-lsp/serve-lsp"
	"github.com/oloveluck/snake-lsp/pkg/lsp"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:           "snake-lsp",
		Short:         "A language server for snake",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}
	lsp.Version = rootCmd.Version

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)
	rootCmd.AddCommand(serve_lsp.NewServeLSPCommand())
	rootCmd.AddCommand(get_diagnostics.NewGetDiagnosticsCommand())
	rootCmd.AddCommand(locate.NewLocateCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}

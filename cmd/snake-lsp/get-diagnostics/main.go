package get_diagnostics

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/oloveluck/snake-lsp/pkg/diagnostic"
	"github.com/oloveluck/snake-lsp/pkg/settings"
)

type Handler struct {
	fs afero.Fs

	maxProblems int
	format      string
}

func NewGetDiagnosticsCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "get-diagnostics <file>",
		Short: "print the diagnostics the server would publish for a file",
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().IntVar(&me.maxProblems, "max-problems", settings.DefaultMaxNumberOfProblems, "stop after this many problems")
	cmd.Flags().StringVar(&me.format, "format", "text", "output format: text or json")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.OutOrStdout(), args[0])
	}

	return cmd
}

func (me *Handler) Run(out io.Writer, path string) error {
	data, err := afero.ReadFile(me.fs, path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}

	diags := diagnostic.Generate(string(data), diagnostic.Options{MaxProblems: me.maxProblems})

	switch me.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "\t")
		if err := enc.Encode(diags); err != nil {
			return errors.Errorf("encoding diagnostics: %w", err)
		}
	case "text":
		for _, d := range diags {
			// editors number lines and columns from one
			fmt.Fprintf(out, "%s:%d:%d: %s: %s\n", path, d.Range.Start.Line+1, d.Range.Start.Character+1, d.Severity, d.Message)
		}
	default:
		return errors.Errorf("unknown format %q", me.format)
	}

	return nil
}

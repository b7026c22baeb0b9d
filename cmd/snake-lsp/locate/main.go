package locate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/oloveluck/snake-lsp/pkg/position"
	"github.com/oloveluck/snake-lsp/pkg/token"
)

type Handler struct {
	fs afero.Fs
}

func NewLocateCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	return &cobra.Command{
		Use:   "locate <file> <line> <column>",
		Short: "show the token at a zero based position and the span sent to the engine",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Errorf("line: %w", err)
			}
			column, err := strconv.Atoi(args[2])
			if err != nil {
				return errors.Errorf("column: %w", err)
			}
			return me.Run(cmd.OutOrStdout(), args[0], line, column)
		},
	}
}

func (me *Handler) Run(out io.Writer, path string, line, column int) error {
	data, err := afero.ReadFile(me.fs, path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}

	tok, ok := token.Locate(string(data), line, column)
	if !ok {
		return errors.Errorf("no token at %d:%d", line, column)
	}

	span := position.ToEngineSpan(position.Place{Line: line, Character: column}, tok.Offset, tok.Length())
	fmt.Fprintf(out, "token:  %q\noffset: %d\nspan:   %s\n", tok.Name, tok.Offset, span)
	return nil
}

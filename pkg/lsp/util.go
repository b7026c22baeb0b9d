package lsp

import (
	"io"
	"sync"

	"go.uber.org/multierr"

	"github.com/oloveluck/snake-lsp/pkg/lsp/protocol"
	"github.com/oloveluck/snake-lsp/pkg/position"
)

// ReadWriteCloser joins a reader and a writer, such as stdin and stdout,
// into one stream that closes both. Close is safe to call more than once.
type ReadWriteCloser struct {
	r  io.ReadCloser
	w  io.WriteCloser
	mu sync.Mutex

	closeOnce sync.Once
	closeErr  error
}

func NewReadWriteCloser(r io.ReadCloser, w io.WriteCloser) *ReadWriteCloser {
	return &ReadWriteCloser{r: r, w: w}
}

func (rwc *ReadWriteCloser) Read(p []byte) (int, error) {
	return rwc.r.Read(p)
}

func (rwc *ReadWriteCloser) Write(p []byte) (int, error) {
	rwc.mu.Lock()
	defer rwc.mu.Unlock()
	return rwc.w.Write(p)
}

func (rwc *ReadWriteCloser) Close() error {
	rwc.closeOnce.Do(func() {
		rwc.closeErr = multierr.Combine(rwc.r.Close(), rwc.w.Close())
	})
	return rwc.closeErr
}

func toPlace(p protocol.Position) position.Place {
	return position.Place{Line: int(p.Line), Character: int(p.Character)}
}

func fromProtocolRange(r protocol.Range) position.Range {
	return position.Range{Start: toPlace(r.Start), End: toPlace(r.End)}
}

func toPosition(p position.Place) protocol.Position {
	return protocol.Position{Line: uint32(max(p.Line, 0)), Character: uint32(max(p.Character, 0))}
}

func toProtocolRange(r position.Range) protocol.Range {
	return protocol.Range{Start: toPosition(r.Start), End: toPosition(r.End)}
}

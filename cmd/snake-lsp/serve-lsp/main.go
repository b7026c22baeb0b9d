package serve_lsp

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/creachadair/jrpc2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/oloveluck/snake-lsp/pkg/config"
	"github.com/oloveluck/snake-lsp/pkg/debug"
	"github.com/oloveluck/snake-lsp/pkg/engine"
	"github.com/oloveluck/snake-lsp/pkg/engine/luaengine"
	"github.com/oloveluck/snake-lsp/pkg/engine/procengine"
	"github.com/oloveluck/snake-lsp/pkg/lsp"
	"github.com/oloveluck/snake-lsp/pkg/lsp/protocol"
)

type Handler struct {
	fs afero.Fs

	configPath   string
	engineKind   string
	script       string
	command      []string
	timeout      string
	logLevel     string
	logFile      string
	color        bool
	evictOnClose bool
}

func NewServeLSPCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "serve-lsp",
		Short: "start the language server on stdin and stdout",
	}

	cmd.Flags().StringVar(&me.configPath, "config", "", "configuration file (HCL, or YAML when it ends in .yaml/.yml)")
	cmd.Flags().StringVar(&me.engineKind, "engine", "", "engine kind: lua or exec")
	cmd.Flags().StringVar(&me.script, "script", "", "lua engine script")
	cmd.Flags().StringSliceVar(&me.command, "command", nil, "exec engine command and arguments")
	cmd.Flags().StringVar(&me.timeout, "timeout", "", "bound on each engine call, 0 to disable")
	cmd.Flags().StringVar(&me.logLevel, "log-level", "", "log level")
	cmd.Flags().StringVar(&me.logFile, "log-file", "", "also write logs to this file instead of stderr")
	cmd.Flags().BoolVar(&me.color, "color", false, "color stderr logs")
	cmd.Flags().BoolVar(&me.evictOnClose, "evict-on-close", false, "forget the cached text of closed documents")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := me.Config(cmd.Flags().Changed)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return me.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	}

	return cmd
}

// Config loads the configuration file, if any, and applies the flags that
// were set on top of it.
func (me *Handler) Config(changed func(name string) bool) (*config.Config, error) {
	cfg := config.Default()
	if me.configPath != "" {
		loaded, err := config.Load(me.fs, me.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if changed("engine") {
		cfg.Engine.Kind = me.engineKind
	}
	if changed("script") {
		cfg.Engine.Script = me.script
	}
	if changed("command") {
		cfg.Engine.Command = me.command
	}
	if changed("timeout") {
		cfg.Engine.Timeout = me.timeout
	}
	if changed("log-level") {
		cfg.LogLevel = me.logLevel
	}
	if changed("evict-on-close") {
		cfg.Cache.EvictOnClose = me.evictOnClose
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

type RPCLogger struct{}

func (me *RPCLogger) LogRequest(ctx context.Context, req *jrpc2.Request) {
	zerolog.Ctx(ctx).Trace().Str("rpc_params", req.ParamString()).Str("rpc_id", req.ID()).Str("rpc_method", req.Method()).Msg("client request")
}

func (me *RPCLogger) LogResponse(ctx context.Context, res *jrpc2.Response) {
	zerolog.Ctx(ctx).Trace().Str("rpc_result", res.ResultString()).Str("rpc_id", res.ID()).Msg("server response")
}

func (me *Handler) logOutput(stderr io.Writer) (io.Writer, func() error, error) {
	if me.logFile == "" {
		return stderr, func() error { return nil }, nil
	}
	f, err := me.fs.OpenFile(me.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}

// NewEngine builds the engine named by cfg. The returned closer releases it.
func NewEngine(ctx context.Context, fs afero.Fs, cfg *config.Config) (engine.Engine, io.Closer, error) {
	switch cfg.Engine.Kind {
	case config.EngineLua:
		eng, err := luaengine.New(ctx, fs, cfg.Engine.Script)
		if err != nil {
			return nil, nil, errors.Errorf("starting lua engine: %w", err)
		}
		return eng, eng, nil
	case config.EngineExec:
		eng, err := procengine.New(procengine.Options{Command: cfg.Engine.Command})
		if err != nil {
			return nil, nil, errors.Errorf("starting exec engine: %w", err)
		}
		return eng, eng, nil
	default:
		return nil, nil, errors.Errorf("unknown engine kind %q", cfg.Engine.Kind)
	}
}

func (me *Handler) Run(ctx context.Context, cfg *config.Config, stdin io.ReadCloser, stdout io.WriteCloser, stderr io.Writer) error {
	out, closeLog, err := me.logOutput(stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := debug.NewLogger(out, debug.LoggerOptions{
		Level:   cfg.Level(),
		Console: me.logFile == "",
		Color:   me.color,
	})
	ctx = logger.WithContext(ctx)

	eng, closer, err := NewEngine(ctx, me.fs, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	server := lsp.NewServer(ctx, lsp.Options{
		Engine:       engine.WithTimeout(eng, cfg.Timeout()),
		EvictOnClose: cfg.Cache.EvictOnClose,
		Watch:        cfg.Engine.Matches,
	})

	instance := protocol.NewServerInstance(ctx, server, &jrpc2.ServerOptions{
		RPCLog: &RPCLogger{},
	}, protocol.WithLogWriter(out))

	stdio := lsp.NewReadWriteCloser(stdin, stdout)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if err := instance.StartAndWait(stdio, stdio); err != nil {
			return errors.Errorf("error running language server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		instance.Stop()
		return nil
	})

	zerolog.Ctx(ctx).Info().Str("engine", cfg.Engine.Kind).Dur("timeout", cfg.Timeout()).Msg("serving lsp")

	if err := g.Wait(); err != nil {
		return err
	}
	return stdio.Close()
}

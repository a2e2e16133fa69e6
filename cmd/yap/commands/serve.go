package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/yap/cmd/yap/opts"
	"github.com/walteh/yap/pkg/config"
	"github.com/walteh/yap/pkg/lifecycle"
	"github.com/walteh/yap/pkg/server"
	"gitlab.com/tozd/go/errors"
)

// NewServeCmd creates a new serve command
func NewServeCmd(opts *opts.RootOpts) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the yap HTTP front-end",
		Long: `Serve starts the HTTP front-end on the configured port.
It exposes GET / and GET /yap, transforms the message from the query
parameters, runs the integration sender and responds with a JSON envelope.
The bot heartbeat runs alongside until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "serve").Logger().WithContext(ctx)
			return Serve(ctx, opts, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")

	return cmd
}

// Serve runs the HTTP front-end until the context is cancelled or an
// interrupt arrives. The root command's --server flag takes this path too.
func Serve(ctx context.Context, opts *opts.RootOpts, port int) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := opts.Config.Merge(&config.Config{Port: port})
	bot := lifecycle.NewBot(cfg)

	srv := server.New(server.Options{
		Config:      cfg,
		Transformer: opts.Transformer,
		Sender:      opts.Sender,
		Bot:         bot,
	})

	opts.Console.Header("serving")
	opts.Console.Infof("listening on port %d", cfg.EffectivePort())

	if err := srv.Start(ctx); err != nil {
		return errors.Errorf("running server: %w", err)
	}

	opts.Console.Success("server stopped")
	return nil
}

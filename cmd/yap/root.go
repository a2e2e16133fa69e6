package main

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/yap/cmd/yap/commands"
	"github.com/walteh/yap/cmd/yap/opts"
	"github.com/walteh/yap/pkg/config"
	"github.com/walteh/yap/pkg/integration"
	"github.com/walteh/yap/pkg/log"
	"github.com/walteh/yap/pkg/transform"
)

var (
	// Flags
	configFile string
	debug      bool
	serverMode bool
	serverPort int

	countFlag  string
	sepFlag    string
	modeFlag   string
	prefixFlag string
	suffixFlag string
)

// newRootCmd creates the root command. The returned RootOpts is a shell
// that PersistentPreRun fills in per run, after cobra has parsed flags, so
// --config is honored when the configuration is loaded.
func newRootCmd() (*cobra.Command, *opts.RootOpts) {
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "yap <message...>",
		Short: "Repeat and transform text, then pretend to send it somewhere",
		Long: `yap repeats a message a number of times, transforms each copy
(echo, caps, shuffle or funny), joins the copies and hands the result to a
stubbed integration sender. With --server it exposes the same thing over HTTP.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			*rootOpts = *newRootOpts(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverMode {
				return commands.Serve(cmd.Context(), rootOpts, serverPort)
			}
			return runOneShot(cmd, rootOpts, args)
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewServeCmd(rootOpts),
	)

	return rootCmd, rootOpts
}

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) *opts.RootOpts {
	path := configFile
	if path == "" {
		path = config.Discover(".")
	}
	cfg := config.Load(ctx, path)

	return &opts.RootOpts{
		Config:      cfg,
		Transformer: transform.New(),
		Sender:      integration.NewStub(),
		Console:     log.New(os.Stdout, zerolog.InfoLevel),
		UserLogger:  log.NewUserLogger(*zerolog.Ctx(ctx)),
	}
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: discovered .yaprc.*)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	// Count is a string on purpose: non-numeric input falls back to the
	// default instead of failing flag parsing.
	cmd.Flags().StringVarP(&countFlag, "count", "n", "", "number of repeated copies (1-200)")
	cmd.Flags().StringVar(&sepFlag, "sep", "", "separator between copies")
	cmd.Flags().StringVar(&modeFlag, "mode", "", "transform mode: echo|caps|shuffle|funny")
	cmd.Flags().StringVar(&prefixFlag, "prefix", "", "prefix wrapped around each copy")
	cmd.Flags().StringVar(&suffixFlag, "suffix", "", "suffix wrapped around each copy")
	cmd.Flags().BoolVar(&serverMode, "server", false, "run the HTTP front-end instead of one-shot")
	cmd.Flags().IntVar(&serverPort, "port", 0, "port for --server mode (overrides config)")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

// runOneShot transforms the positional message, prints the payload and runs
// the integration sender.
func runOneShot(cmd *cobra.Command, rootOpts *opts.RootOpts, args []string) error {
	ctx := cmd.Context()
	message := strings.Join(args, " ")

	cfg := rootOpts.Config.Merge(&config.Config{
		Separator: sepFlag,
		Mode:      modeFlag,
		Prefix:    prefixFlag,
		Suffix:    suffixFlag,
	})

	fallback := transform.DefaultCLICount
	if cfg.Count != 0 {
		fallback = cfg.Count
	}
	count := transform.ParseCount(countFlag, fallback)

	payload := rootOpts.Transformer.Apply(message, transform.Options{
		Count:     count,
		Separator: cfg.Separator,
		Mode:      transform.ParseMode(cfg.Mode),
		Prefix:    cfg.Prefix,
		Suffix:    cfg.Suffix,
	})

	rootOpts.Console.Payload(payload)

	res := rootOpts.Sender.Send(ctx, payload, cfg)
	rootOpts.UserLogger.LogSendResult(res)

	return nil
}

package main

import (
	"context"
	"fmt"
	"io"

	"fare-validator/config"
	"fare-validator/internal/adapter/transport/memory"
	"fare-validator/internal/app"
	"fare-validator/internal/core/ports"
	"fare-validator/pkg/logger"

	"github.com/spf13/cobra"
)

var Version = "dev"

// cli carries the global flags and the service factory shared by commands.
type cli struct {
	configPath string
	memoryPath string
	out        io.Writer

	// open connects the ticketing service; tests replace it.
	open func(ctx context.Context, c *cli) (ports.TicketingService, func(), error)
}

func newCLI(out io.Writer) *cli {
	return &cli{out: out, open: connect}
}

func (c *cli) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// connect runs the same bootstrap as the server. --memory swaps the card
// transport for a local card file.
func connect(ctx context.Context, c *cli) (ports.TicketingService, func(), error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New("farectl", cfg.Log.Level, cfg.Log.Pretty)

	var transport ports.TicketTransport
	if c.memoryPath != "" {
		t, err := memory.Open(c.memoryPath)
		if err != nil {
			return nil, nil, err
		}
		transport = t
	}

	a, err := app.Connect(ctx, cfg, log, transport)
	if err != nil {
		return nil, nil, err
	}
	return a.Ticketing, a.Close, nil
}

// withTicketing opens the service for the duration of fn.
func (c *cli) withTicketing(cmd *cobra.Command, fn func(ctx context.Context, svc ports.TicketingService) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, closeFn, err := c.open(ctx, c)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(ctx, svc)
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "farectl",
		Short:         "farectl - issue, top up and validate fare cards",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.out)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to the config file")
	root.PersistentFlags().StringVar(&c.memoryPath, "memory", "", "use a card file instead of the configured transport")

	root.AddCommand(tiersCmd(c))
	root.AddCommand(issueCmd(c))
	root.AddCommand(topupCmd(c))
	root.AddCommand(tapCmd(c))
	root.AddCommand(showCmd(c))
	root.AddCommand(historyCmd(c))
	root.AddCommand(hashPasswordCmd(c))

	return root
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"fare-validator/internal/app"
	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"
	"fare-validator/internal/service"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func tiersCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the configured fare tiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			catalog, err := app.BuildCatalog(cfg.Fares)
			if err != nil {
				return err
			}
			printTiers(c.out, catalog)
			return nil
		},
	}
}

func issueCmd(c *cli) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "issue <card>",
		Short: "Write a fresh ticket to a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := domain.ParseCardID(args[0])
			if err != nil {
				return err
			}
			return c.withTicketing(cmd, func(ctx context.Context, svc ports.TicketingService) error {
				ticket, err := svc.IssueTicket(ctx, cardID, force)
				if err != nil {
					return err
				}
				printTicket(c.out, ticket)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing or unreadable ticket")
	return cmd
}

func topupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "topup <card> <amount>",
		Short: "Add credit to a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := domain.ParseCardID(args[0])
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			return c.withTicketing(cmd, func(ctx context.Context, svc ports.TicketingService) error {
				ticket, err := svc.AddCredit(ctx, cardID, amount)
				if err != nil {
					return err
				}
				printTicket(c.out, ticket)
				return nil
			})
		},
	}
}

func tapCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tap <card>",
		Short: "Validate a card as a gate would",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := domain.ParseCardID(args[0])
			if err != nil {
				return err
			}
			return c.withTicketing(cmd, func(ctx context.Context, svc ports.TicketingService) error {
				result, err := svc.ValidateTicket(ctx, cardID)
				if err != nil {
					return err
				}
				printTap(c.out, result)
				return nil
			})
		},
	}
}

func showCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <card>",
		Short: "Decode and print the ticket on a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := domain.ParseCardID(args[0])
			if err != nil {
				return err
			}
			return c.withTicketing(cmd, func(ctx context.Context, svc ports.TicketingService) error {
				ticket, err := svc.ReadTicket(ctx, cardID)
				if err != nil {
					return err
				}
				printTicket(c.out, ticket)
				return nil
			})
		},
	}
}

func historyCmd(c *cli) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <card>",
		Short: "Print the validations and top-ups recorded for a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := domain.ParseCardID(args[0])
			if err != nil {
				return err
			}
			return c.withTicketing(cmd, func(ctx context.Context, svc ports.TicketingService) error {
				history, err := svc.History(ctx, cardID, limit)
				if err != nil {
					return err
				}
				printHistory(c.out, history)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries per list")
	return cmd
}

func hashPasswordCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print an argon2id hash for an operators entry",
		Long:  "Print an argon2id hash for an operators entry. Reads the password from stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errors.New("empty password")
			}

			hash, err := service.NewArgon2HashService().Hash(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, hash)
			return nil
		},
	}
}

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"
)

func printTiers(w io.Writer, catalog *domain.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDURATION\tCOST\tUPGRADE")
	for _, t := range catalog.Tiers() {
		next := "-"
		if t.NextUpgrade != nil {
			next = t.NextUpgrade.Name
		}
		name := t.Name
		if t == catalog.Base() {
			name += " (base)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, t.Duration(), t.Cost.StringFixed(2), next)
	}
	_ = tw.Flush()
}

func printTicket(w io.Writer, t *domain.TicketState) {
	tier := "-"
	if t.Tier != nil {
		tier = t.Tier.Name
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "card\t%s\n", t.CardID)
	fmt.Fprintf(tw, "credit\t%s\n", t.Credit.StringFixed(2))
	fmt.Fprintf(tw, "tier\t%s\n", tier)
	fmt.Fprintf(tw, "session start\t%s\n", formatOptional(t.SessionValidation))
	fmt.Fprintf(tw, "last validation\t%s\n", formatOptional(t.CurrentValidation))
	fmt.Fprintf(tw, "session expense\t%s\n", t.SessionExpense.StringFixed(2))
	fmt.Fprintf(tw, "last usage\t%s\n", t.LastUsage.UTC().Format(time.RFC3339))
	_ = tw.Flush()
}

func printTap(w io.Writer, r *ports.TapResult) {
	fmt.Fprintf(w, "%s at %s: charged %s\n", r.Outcome, r.Location, r.Charged.StringFixed(2))
	printTicket(w, r.Ticket)
}

func printHistory(w io.Writer, h *ports.TicketHistory) {
	if s := h.Snapshot; s != nil {
		fmt.Fprintf(w, "last known: credit %s, tier %s, updated %s\n",
			s.Credit.StringFixed(2), s.TierName, s.UpdatedAt.UTC().Format(time.RFC3339))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tTIME\tLOCATION\tDETAIL")
	for _, v := range h.Validations {
		fmt.Fprintf(tw, "validation\t%s\t%s\t%s\n", v.Time.UTC().Format(time.RFC3339), v.Location, shortDigest(v.EncryptedStateDigest))
	}
	for _, tx := range h.Transactions {
		fmt.Fprintf(tw, "top-up\t%s\t%s\t+%s\n", tx.Time.UTC().Format(time.RFC3339), tx.Location, tx.Amount.StringFixed(2))
	}
	_ = tw.Flush()
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}

package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FareTier is an immutable fare level. Tiers form a singly linked upgrade chain
// from the base tier to progressively longer ones.
type FareTier struct {
	Name            string          `json:"name"`
	DurationMinutes int             `json:"duration_minutes"`
	Cost            decimal.Decimal `json:"cost"` // total session cost at this tier, not incremental
	NextUpgrade     *FareTier       `json:"-"`
}

// Duration returns the tier validity window.
func (t *FareTier) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}

// MoneyScale is the number of fractional digits stored for amounts.
const MoneyScale = 2

// WholeCents reports whether d fits the stored money scale without rounding.
func WholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}

// TierDefinition describes a tier before the chain is linked.
type TierDefinition struct {
	Name            string
	DurationMinutes int
	Cost            decimal.Decimal
	Next            string // empty when the tier has no upgrade
}

// Catalog is the read-only set of fare tiers known to a validator.
type Catalog struct {
	base  *FareTier
	tiers []*FareTier
	index map[string]*FareTier
}

// NewCatalog links the definitions into an upgrade chain and checks its invariants.
func NewCatalog(defs []TierDefinition, base string) (*Catalog, error) {
	c := &Catalog{index: make(map[string]*FareTier, len(defs))}

	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: empty tier name", ErrInvalidFareTier)
		}
		if _, dup := c.index[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate tier %q", ErrInvalidFareTier, d.Name)
		}
		if d.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: tier %q duration must be positive", ErrInvalidFareTier, d.Name)
		}
		if d.Cost.IsNegative() {
			return nil, fmt.Errorf("%w: tier %q cost must not be negative", ErrInvalidFareTier, d.Name)
		}
		if !WholeCents(d.Cost) {
			return nil, fmt.Errorf("%w: tier %q cost %s has more than %d decimal places", ErrInvalidFareTier, d.Name, d.Cost, MoneyScale)
		}
		tier := &FareTier{Name: d.Name, DurationMinutes: d.DurationMinutes, Cost: d.Cost}
		c.index[d.Name] = tier
		c.tiers = append(c.tiers, tier)
	}

	for _, d := range defs {
		if d.Next == "" {
			continue
		}
		next, ok := c.index[d.Next]
		if !ok {
			return nil, fmt.Errorf("%w: %q (upgrade of %q)", ErrUnknownFareTier, d.Next, d.Name)
		}
		tier := c.index[d.Name]
		// Strictly increasing durations also rule out cycles.
		if next.DurationMinutes <= tier.DurationMinutes {
			return nil, fmt.Errorf("%w: upgrade %q must last longer than %q", ErrInvalidFareTier, next.Name, tier.Name)
		}
		// Upgrade cost is a session total, so it cannot drop below the current tier.
		if next.Cost.LessThan(tier.Cost) {
			return nil, fmt.Errorf("%w: upgrade %q must cost at least as much as %q", ErrInvalidFareTier, next.Name, tier.Name)
		}
		tier.NextUpgrade = next
	}

	b, ok := c.index[base]
	if !ok {
		return nil, fmt.Errorf("%w: base tier %q", ErrUnknownFareTier, base)
	}
	c.base = b

	return c, nil
}

// Resolve returns the tier with the given name.
func (c *Catalog) Resolve(name string) (*FareTier, error) {
	t, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFareTier, name)
	}
	return t, nil
}

// Base returns the entry tier every new session starts from.
func (c *Catalog) Base() *FareTier {
	return c.base
}

// Tiers returns all tiers in definition order.
func (c *Catalog) Tiers() []*FareTier {
	out := make([]*FareTier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelpay/topup/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownCatalog  = errors.New("no catalog for region and game")
)

// Catalog resolves product codes to validated products. Built once at startup
// from the static tables in data.go; immutable afterwards.
type Catalog struct {
	products map[domain.Region]map[domain.Game]map[string]*domain.Product
}

// New compiles the static tables, rejecting malformed entries so a bad
// definition fails the process at start instead of at purchase time.
func New() (*Catalog, error) {
	c := &Catalog{
		products: make(map[domain.Region]map[domain.Game]map[string]*domain.Product),
	}

	for region, games := range catalogData {
		c.products[region] = make(map[domain.Game]map[string]*domain.Product)
		for game, entries := range games {
			c.products[region][game] = make(map[string]*domain.Product, len(entries))
			for code, e := range entries {
				product, err := buildProduct(code, e)
				if err != nil {
					return nil, fmt.Errorf("catalog %s/%s/%s: %w", region, game, code, err)
				}
				c.products[region][game][code] = product
			}
		}
	}

	return c, nil
}

func buildProduct(code string, e entry) (*domain.Product, error) {
	if len(e.components) == 0 {
		return nil, errors.New("no components")
	}

	rate, err := decimal.NewFromString(e.rate)
	if err != nil {
		return nil, fmt.Errorf("bad rate %q: %w", e.rate, err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("rate %s is not positive", rate)
	}

	product := &domain.Product{
		Code:       code,
		Components: e.components,
		Rate:       rate,
	}

	if e.uniform != "" {
		uniform, err := decimal.NewFromString(e.uniform)
		if err != nil {
			return nil, fmt.Errorf("bad component rate %q: %w", e.uniform, err)
		}
		product.ComponentRefund = &uniform
	}

	if e.perComponent != nil {
		rates := make(map[string]decimal.Decimal, len(e.perComponent))
		for id, raw := range e.perComponent {
			rate, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("bad rate %q for component %s: %w", raw, id, err)
			}
			rates[id] = rate
		}
		// The map must cover every component that can fail on its own,
		// otherwise a failed component would silently refund nothing.
		for _, id := range e.components {
			if _, ok := rates[id]; !ok {
				return nil, fmt.Errorf("component %s missing from refund rates", id)
			}
		}
		product.RefundPerComponent = rates
	}

	return product, nil
}

// Lookup resolves a user-typed product code within a region+game catalog.
func (c *Catalog) Lookup(region domain.Region, game domain.Game, code string) (*domain.Product, error) {
	games, ok := c.products[region]
	if !ok {
		return nil, ErrUnknownCatalog
	}
	entries, ok := games[game]
	if !ok {
		return nil, ErrUnknownCatalog
	}
	product, ok := entries[code]
	if !ok {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Codes lists the known product codes for one region+game catalog.
func (c *Catalog) Codes(region domain.Region, game domain.Game) []string {
	entries, ok := c.products[region][game]
	if !ok {
		return nil
	}
	codes := make([]string, 0, len(entries))
	for code := range entries {
		codes = append(codes, code)
	}
	return codes
}

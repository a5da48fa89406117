package orderservice

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/angelpay/topup/internal/catalog"
	"github.com/angelpay/topup/internal/domain"
)

// Bulk order lines name a target account, a zone for games that have one,
// and one or more product codes joined with '+'. The zone may be wrapped in
// parentheses, a habit carried over from how resellers paste account info.
var (
	linePattern     = regexp.MustCompile(`(\d+)\s*\(?(\d+)\)?\s*(\S+)`)
	bigoLinePattern = regexp.MustCompile(`([a-zA-Z0-9]+)\s+(\S+)`)
)

// Compose parses free-form bulk text into order requests, one per product
// code. Lines or codes that cannot be resolved become rejections instead of
// stopping the batch.
func (s *Service) Compose(region domain.Region, game domain.Game, text string) ([]domain.OrderRequest, []domain.Rejection) {
	var requests []domain.OrderRequest
	var rejections []domain.Rejection

	for _, item := range parseItems(game, text) {
		for _, code := range splitCodes(item.codes) {
			product, err := s.catalog.Lookup(region, game, code)
			if err != nil {
				rejections = append(rejections, domain.Rejection{
					TargetID: item.target,
					ZoneID:   item.zone,
					Code:     code,
					Reason:   rejectionReason(code, err),
				})
				continue
			}
			requests = append(requests, domain.OrderRequest{
				TargetID: item.target,
				ZoneID:   item.zone,
				Region:   region,
				Game:     game,
				Product:  product,
			})
		}
	}
	return requests, rejections
}

type parsedItem struct {
	target string
	zone   string
	codes  string
}

func parseItems(game domain.Game, text string) []parsedItem {
	if !game.UsesZone() {
		matches := bigoLinePattern.FindAllStringSubmatch(text, -1)
		items := make([]parsedItem, 0, len(matches))
		for _, m := range matches {
			items = append(items, parsedItem{target: m[1], codes: m[2]})
		}
		return items
	}

	matches := linePattern.FindAllStringSubmatch(text, -1)
	items := make([]parsedItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, parsedItem{target: m[1], zone: m[2], codes: m[3]})
	}
	return items
}

func splitCodes(field string) []string {
	var codes []string
	for _, code := range strings.Split(field, "+") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

func rejectionReason(code string, err error) string {
	if errors.Is(err, catalog.ErrProductNotFound) {
		return fmt.Sprintf("Invalid Product Name: '%s'", code)
	}
	return err.Error()
}

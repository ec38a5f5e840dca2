package usecase

import (
	"fmt"

	"github.com/anporsh/printery/internal/domain/model"
)

// BuildLineItems maps wishes to payment line items, one per wish,
// preserving order. Prices are taken from the stored wish fields as-is;
// both components are already in minor currency units.
func BuildLineItems(wishes []model.Wish) []model.LineItem {
	items := make([]model.LineItem, 0, len(wishes))
	for _, w := range wishes {
		items = append(items, model.LineItem{
			Name:        w.Material,
			Description: fmt.Sprintf("Print on %s", w.Material),
			UnitAmount:  w.UnitAmount(),
			Quantity:    w.Amount,
		})
	}
	return items
}

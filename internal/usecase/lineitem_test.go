package usecase

import (
	"testing"

	"github.com/anporsh/printery/internal/domain/model"
)

func TestBuildLineItems(t *testing.T) {
	wishes := []model.Wish{
		{ID: 1, Material: "Canvas", SizePrice: 1000, PhotoPrice: 500, Amount: 2},
		{ID: 2, Material: "Mug", SizePrice: 0, PhotoPrice: 250, Amount: 1},
	}

	items := BuildLineItems(wishes)
	if len(items) != len(wishes) {
		t.Fatalf("expected %d items, got %d", len(wishes), len(items))
	}

	if items[0].Name != "Canvas" || items[0].Description != "Print on Canvas" {
		t.Fatalf("unexpected first item naming: %+v", items[0])
	}
	if items[0].UnitAmount != 1500 || items[0].Quantity != 2 {
		t.Fatalf("unexpected first item pricing: %+v", items[0])
	}
	if items[1].UnitAmount != 250 || items[1].Quantity != 1 {
		t.Fatalf("unexpected second item pricing: %+v", items[1])
	}

	for i, w := range wishes {
		want := (w.SizePrice + w.PhotoPrice) * int64(w.Amount)
		got := items[i].UnitAmount * int64(items[i].Quantity)
		if got != want {
			t.Fatalf("item %d total %d does not match wish total %d", i, got, want)
		}
	}
}

func TestBuildLineItemsEmpty(t *testing.T) {
	if items := BuildLineItems(nil); len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

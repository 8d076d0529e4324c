package cart

import (
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestAddMergesMatchingVariant(t *testing.T) {
	productID := uuid.New()
	entries := []Entry{{ProductID: productID, SelectedColor: strPtr("red"), SelectedSize: strPtr("M"), Quantity: 1}}

	entries = Add(entries, Entry{ProductID: productID, SelectedColor: strPtr("red"), SelectedSize: strPtr("M"), Quantity: 2})
	if len(entries) != 1 {
		t.Fatalf("expected 1 line, got %d", len(entries))
	}
	if entries[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", entries[0].Quantity)
	}
}

func TestAddKeepsDistinctVariantsApart(t *testing.T) {
	productID := uuid.New()
	entries := []Entry{{ProductID: productID, SelectedColor: strPtr("red"), Quantity: 1}}

	entries = Add(entries, Entry{ProductID: productID, SelectedColor: strPtr("blue"), Quantity: 1})
	if len(entries) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(entries))
	}

	entries = Add(entries, Entry{ProductID: productID, Quantity: 1})
	if len(entries) != 3 {
		t.Fatalf("expected nil-variant line to be its own entry, got %d lines", len(entries))
	}
}

func TestAddDoesNotMutateInput(t *testing.T) {
	productID := uuid.New()
	original := []Entry{{ProductID: productID, Quantity: 1}}

	_ = Add(original, Entry{ProductID: productID, Quantity: 5})
	if original[0].Quantity != 1 {
		t.Fatalf("input slice mutated: quantity %d", original[0].Quantity)
	}
}

func TestSetQuantityReplacesAndRemoves(t *testing.T) {
	productID := uuid.New()
	entries := []Entry{{ProductID: productID, Quantity: 2}}

	entries = SetQuantity(entries, productID, nil, nil, 5)
	if entries[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", entries[0].Quantity)
	}

	entries = SetQuantity(entries, productID, nil, nil, 0)
	if len(entries) != 0 {
		t.Fatalf("expected zero quantity to remove the line, got %d lines", len(entries))
	}
}

func TestSetQuantityIgnoresUnknownLine(t *testing.T) {
	entries := []Entry{{ProductID: uuid.New(), Quantity: 2}}

	updated := SetQuantity(entries, uuid.New(), nil, nil, 4)
	if len(updated) != 1 || updated[0].Quantity != 2 {
		t.Fatalf("unexpected result: %+v", updated)
	}
}

func TestRemoveWithSelectorDropsOnlyMatchingVariant(t *testing.T) {
	productID := uuid.New()
	entries := []Entry{
		{ProductID: productID, SelectedColor: strPtr("red"), Quantity: 1},
		{ProductID: productID, SelectedColor: strPtr("blue"), Quantity: 1},
	}

	entries = Remove(entries, productID, strPtr("red"), nil)
	if len(entries) != 1 {
		t.Fatalf("expected 1 line, got %d", len(entries))
	}
	if *entries[0].SelectedColor != "blue" {
		t.Fatalf("wrong line removed: %+v", entries[0])
	}
}

func TestRemoveWithoutSelectorDropsEveryVariant(t *testing.T) {
	productID := uuid.New()
	other := uuid.New()
	entries := []Entry{
		{ProductID: productID, SelectedColor: strPtr("red"), Quantity: 1},
		{ProductID: productID, SelectedColor: strPtr("blue"), Quantity: 1},
		{ProductID: other, Quantity: 1},
	}

	entries = Remove(entries, productID, nil, nil)
	if len(entries) != 1 {
		t.Fatalf("expected 1 line, got %d", len(entries))
	}
	if entries[0].ProductID != other {
		t.Fatalf("wrong line survived: %+v", entries[0])
	}
}

func TestCountSumsQuantities(t *testing.T) {
	entries := []Entry{
		{ProductID: uuid.New(), Quantity: 2},
		{ProductID: uuid.New(), Quantity: 3},
	}
	if got := Count(entries); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
	if got := Count(nil); got != 0 {
		t.Fatalf("expected empty count 0, got %d", got)
	}
}

func TestContainsMatchesAnyVariant(t *testing.T) {
	productID := uuid.New()
	entries := []Entry{{ProductID: productID, SelectedColor: strPtr("red"), Quantity: 1}}

	if !Contains(entries, productID) {
		t.Fatal("expected product to be in the cart")
	}
	if Contains(entries, uuid.New()) {
		t.Fatal("unexpected match for unknown product")
	}
}

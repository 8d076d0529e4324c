package cart

import "github.com/google/uuid"

// The transition functions below are pure: they never mutate their input
// slice and carry no I/O, so every cart rule is testable in isolation.

// Add merges the entry into the cart. A line with the same product and
// variant selection absorbs the quantity; otherwise the entry is appended.
func Add(entries []Entry, entry Entry) []Entry {
	out := append([]Entry(nil), entries...)
	for i := range out {
		if sameVariant(out[i], entry.ProductID, entry.SelectedColor, entry.SelectedSize) {
			out[i].Quantity += entry.Quantity
			return out
		}
	}
	return append(out, entry)
}

// SetQuantity replaces the quantity of the matching line. A quantity below
// one removes the line. Unknown lines are left untouched.
func SetQuantity(entries []Entry, productID uuid.UUID, color, size *string, quantity int) []Entry {
	if quantity < 1 {
		return Remove(entries, productID, color, size)
	}
	out := append([]Entry(nil), entries...)
	for i := range out {
		if sameVariant(out[i], productID, color, size) {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

// Remove drops cart lines for the product. With a color or size supplied
// only the matching variant line goes; without any selector every variant
// of the product is removed.
func Remove(entries []Entry, productID uuid.UUID, color, size *string) []Entry {
	removeAllVariants := color == nil && size == nil
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if removeAllVariants {
			if entry.ProductID == productID {
				continue
			}
		} else if sameVariant(entry, productID, color, size) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Count sums the quantities across all lines.
func Count(entries []Entry) int {
	total := 0
	for _, entry := range entries {
		total += entry.Quantity
	}
	return total
}

// Contains reports whether any variant of the product is in the cart.
func Contains(entries []Entry, productID uuid.UUID) bool {
	for _, entry := range entries {
		if entry.ProductID == productID {
			return true
		}
	}
	return false
}

package model

// Wishlist is a set of products keyed by id.
type Wishlist struct {
	Items []Product `json:"items"`
}

// Add inserts the product unless its id is already present.
func (w *Wishlist) Add(p Product) {
	if w.Contains(p.ID) {
		return
	}
	w.Items = append(w.Items, p)
}

// Remove drops the product with the given id.
func (w *Wishlist) Remove(productID int) {
	items := w.Items[:0]
	for _, item := range w.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}
	w.Items = items
}

// Refresh replaces every product with the current one from lookup and drops the
// products that no longer exist.
func (w *Wishlist) Refresh(lookup func(id int) (Product, bool)) {
	items := w.Items[:0]
	for _, item := range w.Items {
		if p, ok := lookup(item.ID); ok {
			items = append(items, p)
		}
	}
	w.Items = items
}

// Contains reports whether the product id is wishlisted.
func (w Wishlist) Contains(productID int) bool {
	for _, item := range w.Items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

package model

import "github.com/shopspring/decimal"

// CartItem is a product line in the cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price * quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds at most one line per product id, in insertion order.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add appends the product with quantity 1 or increments the existing line.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// Remove drops the line for the given product id, if any.
func (c *Cart) Remove(productID int) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
}

// UpdateQuantity sets the quantity of an existing line. A zero quantity keeps the line.
// It returns false when no line exists for the product id.
func (c *Cart) UpdateQuantity(productID, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Refresh replaces every line's product with the current one from lookup and drops
// lines whose product no longer exists. Quantities are kept.
func (c *Cart) Refresh(lookup func(id int) (Product, bool)) {
	items := c.Items[:0]
	for _, item := range c.Items {
		p, ok := lookup(item.ID)
		if !ok {
			continue
		}
		item.Product = p
		items = append(items, item)
	}
	c.Items = items
}

// Payable returns a copy of the cart without zero-quantity lines.
func (c Cart) Payable() Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}
	return Cart{Items: items}
}

// Total returns the sum of all line subtotals rounded to cents.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total.Round(2)
}

// Count returns the total number of units in the cart.
func (c Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

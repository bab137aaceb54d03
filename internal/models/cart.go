package models

// CartItem is a single product line in a cart. The JSON field names match
// the checkout payload, so a cart serialized at checkout time parses back
// into the same items.
type CartItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// Cart is an ordered collection of line items, at most one per product id.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add appends the product as a new line with quantity 1, or increments the
// existing line's quantity if the product is already in the cart.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// Remove drops the line for the given product id. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID int64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// AdjustQuantity applies a signed delta to a line's quantity. A resulting
// quantity of zero or less removes the line.
func (c *Cart) AdjustQuantity(productID int64, delta int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += delta
			if c.Items[i].Quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return
		}
	}
}

// Subtotal is the sum of price x quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count is the total unit count across all lines.
func (c *Cart) Count() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

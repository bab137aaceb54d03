package cart

import (
	"encoding/json"
	"fmt"

	"storefront/internal/models"
)

// decodeCart parses a stored cart blob and validates its schema. A blob
// that fails to decode yields ErrMalformedCart. Individually invalid items
// inside a decodable blob are repaired by dropping them; the count of
// dropped items is returned so the caller can log it.
func decodeCart(data []byte) (*models.Cart, int, error) {
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedCart, err)
	}

	valid := cart.Items[:0]
	dropped := 0
	seen := make(map[int64]bool, len(cart.Items))
	for _, item := range cart.Items {
		if !validItem(item) || seen[item.ProductID] {
			dropped++
			continue
		}
		seen[item.ProductID] = true
		valid = append(valid, item)
	}
	cart.Items = valid
	return &cart, dropped, nil
}

func validItem(item models.CartItem) bool {
	return item.ProductID > 0 && item.Name != "" && item.Quantity >= 1 && item.Price >= 0
}

package orders

import (
	"encoding/json"
	"fmt"
	"strings"

	"storefront/internal/models"
)

// Orders store their line items and shipping address as JSON text, exactly
// as the checkout submitted them. The blobs must round-trip losslessly;
// malformed stored data is tolerated at read time and degrades to a
// placeholder instead of failing the listing.

func EncodeItems(items []models.CartItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode items: %w", err)
	}
	return string(data), nil
}

func DecodeItems(blob string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

// EncodeAddress returns "" for a nil address; the order then stores no
// address at all.
func EncodeAddress(addr *models.ShippingAddress) (string, error) {
	if addr == nil {
		return "", nil
	}
	data, err := json.Marshal(addr)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	return string(data), nil
}

func DecodeAddress(blob string) (*models.ShippingAddress, error) {
	if blob == "" {
		return nil, nil
	}
	var addr models.ShippingAddress
	if err := json.Unmarshal([]byte(blob), &addr); err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	return &addr, nil
}

// ItemsSummary renders an items blob as "Name (x2), Other (x1)" for the
// admin listing. A blob that fails to parse renders as a placeholder.
func ItemsSummary(blob string) string {
	if blob == "" {
		return ""
	}

	items, err := DecodeItems(blob)
	if err != nil {
		return "Error parsing items"
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

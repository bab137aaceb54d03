// Package orders validates, persists and administers storefront orders.
package orders

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/shipping"
)

// totalTolerance absorbs float rounding when cross-checking the submitted
// total against the recomputed one.
const totalTolerance = 0.01

// PlaceOrderRequest carries everything a checkout submits.
type PlaceOrderRequest struct {
	CustomerName    string
	CustomerEmail   string
	ShippingAddress *models.ShippingAddress
	TotalAmount     float64
	Items           []models.CartItem
	PaymentStatus   string
	PaymentMethod   string
	TransactionID   string
}

type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db}
}

// Place validates the request, assigns the next order id and persists the
// order with status pending. A returned id means the order is durably
// stored; only then may the caller clear its cart.
func (s *Service) Place(ctx context.Context, req PlaceOrderRequest) (int64, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}

	itemsBlob, err := EncodeItems(req.Items)
	if err != nil {
		return 0, err
	}
	addressBlob, err := EncodeAddress(req.ShippingAddress)
	if err != nil {
		return 0, err
	}

	id, err := database.NextSequence(ctx, s.db, database.SequenceOrders)
	if err != nil {
		return 0, fmt.Errorf("assign order id: %w", err)
	}

	order := models.Order{
		ID:              id,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		ShippingAddress: addressBlob,
		TotalAmount:     req.TotalAmount,
		Items:           itemsBlob,
		Status:          models.StatusPending,
		PaymentStatus:   defaultString(req.PaymentStatus, "Pending"),
		PaymentMethod:   defaultString(req.PaymentMethod, "Unknown"),
		TransactionID:   req.TransactionID,
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := s.db.Collection("orders").InsertOne(ctx, order); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	return id, nil
}

func validateRequest(req PlaceOrderRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return &ValidationError{Reason: "customer_name is required"}
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return &ValidationError{Reason: "customer_email is required"}
	}
	if len(req.Items) == 0 {
		return &ValidationError{Reason: "at least one item is required"}
	}

	var subtotal float64
	for _, item := range req.Items {
		if item.ProductID <= 0 || item.Name == "" {
			return &ValidationError{Reason: "invalid item in order"}
		}
		if item.Quantity <= 0 {
			return &ValidationError{Reason: "item quantity must be greater than zero"}
		}
		if item.Price < 0 {
			return &ValidationError{Reason: "item price must not be negative"}
		}
		subtotal += item.Price * float64(item.Quantity)
	}

	return validateTotal(req, subtotal)
}

// validateTotal recomputes the subtotal from the submitted items and checks
// the claimed total against it. With a usable pincode the shipping fee is
// re-quoted and the total must match exactly; otherwise the implied fee must
// be one of the published tiers, and zero above the free-shipping threshold.
func validateTotal(req PlaceOrderRequest, subtotal float64) error {
	impliedFee := req.TotalAmount - subtotal

	if req.ShippingAddress != nil && req.ShippingAddress.Pincode != "" {
		quote, err := shipping.Calculate(subtotal, req.ShippingAddress.Pincode)
		if err == nil {
			if !near(impliedFee, quote.Fee) {
				return &ValidationError{Reason: "total_amount does not match items plus shipping"}
			}
			return nil
		}
		// Fall through to the tier check for an unquotable pincode.
	}

	if subtotal > shipping.FreeShippingThreshold {
		if !near(impliedFee, 0) {
			return &ValidationError{Reason: "total_amount does not match items plus shipping"}
		}
		return nil
	}

	for _, fee := range []float64{0, shipping.MetroFee, shipping.NationalFee} {
		if near(impliedFee, fee) {
			return nil
		}
	}
	return &ValidationError{Reason: "total_amount does not match items plus shipping"}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= totalTolerance
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

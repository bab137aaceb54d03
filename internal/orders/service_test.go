package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

// Validation runs before any storage access, so a nil database is enough to
// exercise every rejection path; an accepted request would panic instead of
// returning a ValidationError.

func validPlaceRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Items: []models.CartItem{
			{ProductID: 2, Name: "85% Dark Intense", Price: 450, Quantity: 4},
		},
		TotalAmount: 450*4 + 100,
	}
}

func assertRejected(t *testing.T, req PlaceOrderRequest) {
	t.Helper()
	svc := NewService(nil)

	_, err := svc.Place(context.Background(), req)
	require.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestPlaceRejectsMissingCustomerFields(t *testing.T) {
	req := validPlaceRequest()
	req.CustomerName = "  "
	assertRejected(t, req)

	req = validPlaceRequest()
	req.CustomerEmail = ""
	assertRejected(t, req)
}

func TestPlaceRejectsEmptyItems(t *testing.T) {
	req := validPlaceRequest()
	req.Items = nil
	assertRejected(t, req)
}

func TestPlaceRejectsInvalidItems(t *testing.T) {
	req := validPlaceRequest()
	req.Items[0].Quantity = 0
	assertRejected(t, req)

	req = validPlaceRequest()
	req.Items[0].Price = -1
	assertRejected(t, req)

	req = validPlaceRequest()
	req.Items[0].Name = ""
	assertRejected(t, req)
}

func TestValidateTotalWithQuotablePincode(t *testing.T) {
	// Subtotal 1800, metro pincode: fee must be exactly 50.
	base := PlaceOrderRequest{
		CustomerName:    "Asha Rao",
		CustomerEmail:   "asha@example.com",
		ShippingAddress: &models.ShippingAddress{Street: "12 Marine Drive", City: "Mumbai", Pincode: "400001"},
		Items: []models.CartItem{
			{ProductID: 2, Name: "85% Dark Intense", Price: 450, Quantity: 4},
		},
	}

	accepted := base
	accepted.TotalAmount = 1850
	assert.NoError(t, validateRequest(accepted))

	rejected := base
	rejected.TotalAmount = 1900
	assertRejected(t, rejected)

	undercharged := base
	undercharged.TotalAmount = 1800
	assertRejected(t, undercharged)
}

func TestValidateTotalWithoutPincodeAcceptsPublishedTiers(t *testing.T) {
	base := validPlaceRequest() // subtotal 1800, no address

	for _, fee := range []float64{0, 50, 100} {
		req := base
		req.TotalAmount = 1800 + fee
		assert.NoError(t, validateRequest(req), "fee %v", fee)
	}

	req := base
	req.TotalAmount = 1800 + 75
	assertRejected(t, req)
}

func TestValidateTotalFreeShippingAboveThreshold(t *testing.T) {
	req := PlaceOrderRequest{
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Items: []models.CartItem{
			{ProductID: 6, Name: "Golden Signature Box", Price: 3499, Quantity: 1},
		},
		TotalAmount: 3499,
	}
	assert.NoError(t, validateRequest(req))

	req.TotalAmount = 3499 + 100
	assertRejected(t, req)
}

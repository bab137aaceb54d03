package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/models"
	"storefront/internal/orders"
)

/* =========================
   REQUEST DTOs
========================= */

type orderItemRequest struct {
	ID       int64   `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required"`
	Image    string  `json:"image"`
}

type shippingAddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

type createOrderRequest struct {
	CustomerName    string                  `json:"customer_name" binding:"required"`
	CustomerEmail   string                  `json:"customer_email" binding:"required"`
	ShippingAddress *shippingAddressRequest `json:"shipping_address"`
	TotalAmount     float64                 `json:"total_amount" binding:"required"`
	Items           []orderItemRequest      `json:"items" binding:"required"`
	PaymentStatus   string                  `json:"payment_status"`
	TransactionID   string                  `json:"transaction_id"`
	PaymentMethod   string                  `json:"payment_method"`
}

// OrderPlacer is what the checkout route needs from the order service.
type OrderPlacer interface {
	Place(ctx context.Context, req orders.PlaceOrderRequest) (int64, error)
}

/* =========================
   CREATE ORDER
========================= */

func CreateOrder(svc OrderPlacer, carts cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "missing required fields")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		id, err := svc.Place(ctx, buildPlaceRequest(req))
		if err != nil {
			var vErr *orders.ValidationError
			if errors.As(err, &vErr) {
				respondWithError(c, http.StatusBadRequest, route, vErr.Reason)
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// The order is durably stored; now the session cart can go.
		if sessionID, err := c.Cookie(sessionCookieName); err == nil && sessionID != "" {
			if err := carts.Clear(ctx, sessionID); err != nil {
				log.Printf("[%s] cart clear failed for session %s: %v", route, sessionID, err)
			}
		}

		log.Printf("[%s] order %d created for %s", route, id, req.CustomerEmail)
		c.JSON(http.StatusCreated, gin.H{
			"message": "success",
			"id":      id,
		})
	}
}

func buildPlaceRequest(req createOrderRequest) orders.PlaceOrderRequest {
	items := make([]models.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.CartItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	var addr *models.ShippingAddress
	if req.ShippingAddress != nil {
		addr = &models.ShippingAddress{
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			Pincode: req.ShippingAddress.Pincode,
		}
	}

	return orders.PlaceOrderRequest{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: addr,
		TotalAmount:     req.TotalAmount,
		Items:           items,
		PaymentStatus:   req.PaymentStatus,
		PaymentMethod:   req.PaymentMethod,
		TransactionID:   req.TransactionID,
	}
}

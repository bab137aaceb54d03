package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/orders"
)

// OrderAdmin is what the admin routes need from the order service.
type OrderAdmin interface {
	List(ctx context.Context) ([]orders.AdminOrder, error)
	UpdateStatus(ctx context.Context, id int64, newStatus string) (int64, error)
	ResetAll(ctx context.Context) (int64, error)
}

func AdminListOrders(svc OrderAdmin) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/orders"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := svc.List(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d orders", route, len(result))
		c.JSON(http.StatusOK, gin.H{
			"message": "success",
			"data":    result,
		})
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func AdminUpdateOrderStatus(svc OrderAdmin) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/admin/orders/:id"
		defer handlePanic(c, route)

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "status is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		changes, err := svc.UpdateStatus(ctx, id, req.Status)
		switch {
		case errors.Is(err, orders.ErrInvalidStatus):
			respondWithError(c, http.StatusBadRequest, route, "status must be pending, Shipped or Cancelled")
			return
		case errors.Is(err, orders.ErrInvalidTransition):
			respondWithError(c, http.StatusConflict, route, "order status does not permit this transition")
			return
		case err != nil:
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// changes stays 0 for an unknown order id; the caller decides what
		// that means.
		log.Printf("[%s] order %d -> %s (%d affected)", route, id, req.Status, changes)
		c.JSON(http.StatusOK, gin.H{
			"message": "success",
			"changes": changes,
		})
	}
}

func AdminResetOrders(svc OrderAdmin) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/admin/orders/reset"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		changes, err := svc.ResetAll(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] deleted %d orders, sequence reset", route, changes)
		c.JSON(http.StatusOK, gin.H{
			"message": "success",
			"changes": changes,
		})
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/shipping"
)

// GetShippingQuote quotes a shipping fee for a subtotal and destination
// pincode. The quote is synchronous and never persisted.
func GetShippingQuote() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/shipping/quote"
		defer handlePanic(c, route)

		subtotal, err := strconv.ParseFloat(c.Query("subtotal"), 64)
		if err != nil || subtotal < 0 {
			respondWithError(c, http.StatusBadRequest, route, "invalid subtotal")
			return
		}

		pincode := strings.TrimSpace(c.Query("pincode"))

		quote, err := shipping.Calculate(subtotal, pincode)
		if errors.Is(err, shipping.ErrInvalidDestination) {
			if pincode == "" {
				respondWithError(c, http.StatusBadRequest, route, "pincode is required to calculate shipping")
				return
			}
			respondWithError(c, http.StatusBadRequest, route, "please enter a valid 6-digit pincode")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "quote error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "success",
			"data":    quote,
		})
	}
}

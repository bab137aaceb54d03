package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/cart"
	"storefront/internal/models"
)

const sessionCookieName = "cart_session"

// cartSessionID returns the session id from the cart cookie, issuing a new
// one when the client has none yet. Carts are keyed by this id and are
// never shared across sessions.
func cartSessionID(c *gin.Context, maxAge time.Duration) string {
	if id, err := c.Cookie(sessionCookieName); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	c.SetCookie(sessionCookieName, id, int(maxAge.Seconds()), "/", "", false, true)
	return id
}

func loadOrEmptyCart(ctx context.Context, store cart.Store, sessionID string) (*models.Cart, error) {
	loaded, err := store.Load(ctx, sessionID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return &models.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

func respondWithCart(c *gin.Context, loaded *models.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "success",
		"data":     loaded,
		"count":    loaded.Count(),
		"subtotal": loaded.Subtotal(),
	})
}

func respondCartError(c *gin.Context, route string, err error) {
	if errors.Is(err, cart.ErrMalformedCart) {
		respondWithError(c, http.StatusConflict, route, "stored cart is corrupted; clear the cart to start over")
		return
	}
	respondWithError(c, http.StatusInternalServerError, route, "cart storage error")
}

func GetCart(store cart.Store, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/cart"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		loaded, err := loadOrEmptyCart(ctx, store, cartSessionID(c, sessionTTL))
		if err != nil {
			respondCartError(c, route, err)
			return
		}
		respondWithCart(c, loaded)
	}
}

type addCartItemRequest struct {
	ID    int64   `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

func AddCartItem(store cart.Store, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/cart/items"
		defer handlePanic(c, route)

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if req.Price < 0 {
			respondWithError(c, http.StatusBadRequest, route, "price must not be negative")
			return
		}

		sessionID := cartSessionID(c, sessionTTL)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		loaded, err := loadOrEmptyCart(ctx, store, sessionID)
		if err != nil {
			respondCartError(c, route, err)
			return
		}

		loaded.Add(models.CartItem{
			ProductID: req.ID,
			Name:      req.Name,
			Price:     req.Price,
			Image:     req.Image,
		})

		if err := store.Save(ctx, sessionID, loaded); err != nil {
			respondCartError(c, route, err)
			return
		}
		respondWithCart(c, loaded)
	}
}

type adjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func UpdateCartItem(store cart.Store, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /api/cart/items/:id"
		defer handlePanic(c, route)

		productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req adjustQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "delta is required")
			return
		}

		sessionID := cartSessionID(c, sessionTTL)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		loaded, err := loadOrEmptyCart(ctx, store, sessionID)
		if err != nil {
			respondCartError(c, route, err)
			return
		}

		loaded.AdjustQuantity(productID, req.Delta)

		if err := store.Save(ctx, sessionID, loaded); err != nil {
			respondCartError(c, route, err)
			return
		}
		respondWithCart(c, loaded)
	}
}

func RemoveCartItem(store cart.Store, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/cart/items/:id"
		defer handlePanic(c, route)

		productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		sessionID := cartSessionID(c, sessionTTL)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		loaded, err := loadOrEmptyCart(ctx, store, sessionID)
		if err != nil {
			respondCartError(c, route, err)
			return
		}

		loaded.Remove(productID)

		if err := store.Save(ctx, sessionID, loaded); err != nil {
			respondCartError(c, route, err)
			return
		}
		respondWithCart(c, loaded)
	}
}

func ClearCart(store cart.Store, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/cart"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		// Works on malformed carts too: the key is deleted, not decoded.
		if err := store.Clear(ctx, cartSessionID(c, sessionTTL)); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "cart storage error")
			return
		}
		respondWithCart(c, &models.Cart{})
	}
}

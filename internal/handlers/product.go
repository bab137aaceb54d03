package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
)

// Price bucket labels as the storefront filter sidebar sends them.
var priceRangeFilters = map[string]bson.M{
	"Under ₹500":    {"$lt": 500},
	"₹500 - ₹1000":  {"$gte": 500, "$lte": 1000},
	"₹1000 - ₹2000": {"$gte": 1000, "$lte": 2000},
	"Above ₹2000":   {"$gt": 2000},
}

func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		filter := bson.M{}

		if category := strings.TrimSpace(c.Query("category")); category != "" && category != "All Products" {
			filter["category"] = category
		}

		if priceRange := strings.TrimSpace(c.Query("priceRange")); priceRange != "" {
			if rangeFilter, ok := priceRangeFilters[priceRange]; ok {
				filter["price"] = rangeFilter
			}
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "_id", Value: 1}})

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("products").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, gin.H{
			"message": "success",
			"data":    products,
		})
	}
}

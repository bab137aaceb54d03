package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"storefront/internal/cart"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/orders"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.SeedProducts(db); err != nil {
		log.Printf("product seed warning: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: config.AppEnv.RedisAddr})
	cartStore := cart.NewRedisStore(rdb, config.AppEnv.CartTTL)
	orderService := orders.NewService(db)

	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/products", handlers.GetProducts(db))
		api.GET("/shipping/quote", handlers.GetShippingQuote())

		api.GET("/cart", handlers.GetCart(cartStore, config.AppEnv.CartTTL))
		api.POST("/cart/items", handlers.AddCartItem(cartStore, config.AppEnv.CartTTL))
		api.PATCH("/cart/items/:id", handlers.UpdateCartItem(cartStore, config.AppEnv.CartTTL))
		api.DELETE("/cart/items/:id", handlers.RemoveCartItem(cartStore, config.AppEnv.CartTTL))
		api.DELETE("/cart", handlers.ClearCart(cartStore, config.AppEnv.CartTTL))

		api.POST("/orders", handlers.CreateOrder(orderService, cartStore))
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(config.AppEnv.AdminToken))
	{
		admin.GET("/orders", handlers.AdminListOrders(orderService))
		admin.PUT("/orders/:id", handlers.AdminUpdateOrderStatus(orderService))
		admin.DELETE("/orders/reset", handlers.AdminResetOrders(orderService))
	}

	r.Run(":" + config.AppEnv.Port)
}

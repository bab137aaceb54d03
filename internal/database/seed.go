package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/models"
)

var seedProducts = []models.Product{
	{
		ID:          1,
		Name:        "Royal Truffle Collection",
		Category:    "Gift Boxes",
		Price:       1299,
		Image:       "https://images.unsplash.com/photo-1548907040-4baa42d10919?auto=format&fit=crop&q=80&w=800",
		Description: "An exquisite assortment of our finest truffles.",
	},
	{
		ID:          2,
		Name:        "85% Dark Intense",
		Category:    "Bars",
		Price:       450,
		Image:       "https://images.unsplash.com/photo-1511381978829-2c3a7e937b46?auto=format&fit=crop&q=80&w=800",
		Description: "Pure, intense cocoa experience for dark chocolate lovers.",
	},
	{
		ID:          3,
		Name:        "Family Celebration Pack",
		Category:    "Assorted",
		Price:       2499,
		Image:       "https://images.unsplash.com/photo-1621939514649-28b12e81156d?auto=format&fit=crop&q=80&w=800",
		Description: "Something for everyone in this grand box of happiness.",
	},
	{
		ID:          4,
		Name:        "Rakhi Love Hamper",
		Category:    "Festive",
		Price:       1500,
		Image:       "https://images.unsplash.com/photo-1549007994-cb92caebd54b?auto=format&fit=crop&q=80&w=800",
		Description: "Celebrate the bond of love with this special hamper.",
	},
	{
		ID:          5,
		Name:        "Caramel Almonds",
		Category:    "Snacks",
		Price:       650,
		Image:       "https://images.unsplash.com/photo-1526081347589-7fa3cb41b4b2?auto=format&fit=crop&q=80&w=800",
		Description: "Crunchy almonds coated in rich caramel and chocolate.",
	},
	{
		ID:          6,
		Name:        "Golden Signature Box",
		Category:    "Gift Boxes",
		Price:       3499,
		Image:       "https://images.unsplash.com/photo-1606312619070-d48b706521bf?auto=format&fit=crop&q=80&w=800",
		Description: "The ultimate luxury gift statement.",
	},
}

// SeedProducts inserts the starter catalog when the products collection is
// empty. Re-running against a populated collection is a no-op.
func SeedProducts(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.Collection("products").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("SeedProducts: seeding product catalog")
	docs := make([]interface{}, 0, len(seedProducts))
	for _, p := range seedProducts {
		docs = append(docs, p)
	}

	_, err = db.Collection("products").InsertMany(ctx, docs)
	if err != nil {
		log.Println("SeedProducts: insert error:", err)
		return err
	}
	log.Printf("SeedProducts: seeded %d products", len(seedProducts))
	return nil
}

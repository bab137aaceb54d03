package models

// Product is a catalog entry. The catalog is seeded at startup and read-only
// at runtime; orders snapshot product data into their items blob instead of
// referencing it.
type Product struct {
	ID          int64   `bson:"_id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Category    string  `bson:"category" json:"category"`
	Price       float64 `bson:"price" json:"price"`
	Image       string  `bson:"image" json:"image"`
	Description string  `bson:"description" json:"description"`
}

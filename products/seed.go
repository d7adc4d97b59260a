package products

import (
	"context"
	"log"

	"mandi/db"
	"mandi/models"

	"go.mongodb.org/mongo-driver/bson"
)

// demo catalog, inserted once when the collection is empty
var seedListings = []models.Product{
	{
		ProductID:   "1",
		Title:       "Premium Organic Tomatoes",
		Description: "Fresh, ripe tomatoes sourced directly from local farms.",
		PriceRange:  models.PriceRange{Min: 40, Max: 60},
		Location:    "Mumbai, Maharashtra",
		SellerID:    "seller1",
		SellerName:  "Green Valley Farms",
		QualityTier: "gold",
		Rating:      4.8,
		Category:    "vegetable",
		Unit:        "kg",
	},
	{
		ProductID:   "2",
		Title:       "Red Brand Spice Pack",
		Description: "Premium quality spice mix in sealed packaging. Various flavors available.",
		PriceRange:  models.PriceRange{Min: 150, Max: 200},
		Location:    "Delhi, NCR",
		SellerID:    "seller2",
		SellerName:  "Spice Masters",
		QualityTier: "gold",
		Rating:      4.6,
		Category:    "packaged",
		Unit:        "pieces",
	},
	{
		ProductID:   "3",
		Title:       "Fresh Green Onions",
		Description: "Crisp green onions, perfect for chaat and garnishing.",
		PriceRange:  models.PriceRange{Min: 20, Max: 35},
		Location:    "Pune, Maharashtra",
		SellerID:    "seller3",
		SellerName:  "Local Farm Co-op",
		QualityTier: "verified",
		Rating:      4.2,
		Category:    "vegetable",
		Unit:        "kg",
	},
	{
		ProductID:   "4",
		Title:       "Instant Noodles Bulk Pack",
		Description: "Wholesale pack of instant noodles for street food vendors.",
		PriceRange:  models.PriceRange{Min: 300, Max: 450},
		Location:    "Mumbai, Maharashtra",
		SellerID:    "seller4",
		SellerName:  "Food Distributors Ltd",
		QualityTier: "gold",
		Rating:      4.4,
		Category:    "packaged",
		Unit:        "pieces",
	},
	{
		ProductID:   "5",
		Title:       "Fresh Coriander Leaves",
		Description: "Aromatic coriander leaves, harvested daily.",
		PriceRange:  models.PriceRange{Min: 15, Max: 25},
		Location:    "Nashik, Maharashtra",
		SellerID:    "seller5",
		SellerName:  "Herb Gardens",
		QualityTier: "verified",
		Rating:      4.1,
		Category:    "vegetable",
		Unit:        "kg",
	},
	{
		ProductID:   "6",
		Title:       "Cooking Oil Multi-Pack",
		Description: "High-quality cooking oil in sealed bottles. Multiple brands available.",
		PriceRange:  models.PriceRange{Min: 180, Max: 250},
		Location:    "Chennai, Tamil Nadu",
		SellerID:    "seller6",
		SellerName:  "Oil Traders",
		QualityTier: "gold",
		Rating:      4.5,
		Category:    "packaged",
		Unit:        "pieces",
	},
}

// SeedCatalog inserts the demo listings when the catalog is empty so a
// fresh install has something to browse.
func SeedCatalog() {
	ctx := context.Background()

	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("SeedCatalog count error:", err)
		return
	}
	if count > 0 {
		return
	}

	docs := make([]interface{}, 0, len(seedListings))
	for _, p := range seedListings {
		docs = append(docs, p)
	}
	if _, err := db.ProductCollection.InsertMany(ctx, docs); err != nil {
		log.Println("SeedCatalog insert error:", err)
		return
	}
	log.Printf("Seeded catalog with %d listings", len(seedListings))
}

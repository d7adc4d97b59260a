package models

import "time"

// PriceRange is the seller's quoted min/max unit price. Min <= Max, both >= 0.
type PriceRange struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// Product is a catalog listing owned by a seller. Immutable once listed.
type Product struct {
	ProductID   string     `json:"id" bson:"productid"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	PriceRange  PriceRange `json:"priceRange" bson:"pricerange"`
	Location    string     `json:"location" bson:"location"`
	SellerID    string     `json:"sellerId" bson:"sellerid"`
	SellerName  string     `json:"sellerName" bson:"sellername"`
	Image       string     `json:"image,omitempty" bson:"image,omitempty"`
	QualityTier string     `json:"quality" bson:"quality"` // "gold", "verified", "standard"
	Rating      float64    `json:"rating" bson:"rating"`
	Category    string     `json:"category" bson:"category"` // "vegetable", "packaged"
	Unit        string     `json:"unit" bson:"unit"`         // e.g. "kg", "pieces"
	CreatedAt   time.Time  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

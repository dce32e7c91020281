package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PriceRange struct {
	Min float64 `bson:"min" json:"min" validate:"required"`
	Max float64 `bson:"max" json:"max" validate:"required"`
}

type Price struct {
	Current float64    `bson:"current" json:"current" validate:"required"`
	Range   PriceRange `bson:"range" json:"range" validate:"required"`
}

type ProductDetails struct {
	Name               string `bson:"name" json:"name" validate:"required"`
	Product            string `bson:"product" json:"product" validate:"required"`
	Origin             string `bson:"origin" json:"origin" validate:"required"`
	ProductionCapacity string `bson:"productionCapacity" json:"productionCapacity" validate:"required"`
	ExportVolume       string `bson:"exportVolume" json:"exportVolume" validate:"required"`
	FormAndCut         string `bson:"formAndCut" json:"formAndCut" validate:"required"`
	Color              string `bson:"color" json:"color" validate:"required"`
	CultivationType    string `bson:"cultivationType" json:"cultivationType" validate:"required"`
	Moisture           string `bson:"moisture,omitempty" json:"moisture,omitempty"`
	Forecast           string `bson:"forecast,omitempty" json:"forecast,omitempty"`
}

type Shipping struct {
	HsCode        string `bson:"hsCode" json:"hsCode" validate:"required"`
	MinQuantity   string `bson:"minQuantity" json:"minQuantity" validate:"required"`
	Packaging     string `bson:"packaging" json:"packaging" validate:"required"`
	TransportMode string `bson:"transportMode" json:"transportMode" validate:"required"`
	Incoterms     string `bson:"incoterms" json:"incoterms" validate:"required"`
	ShelfLife     string `bson:"shelfLife" json:"shelfLife" validate:"required"`
}

// Product is a tradable listing addressed externally by ProductID. SellerID
// references Profile.ProfileID but is not enforced as a foreign key; the feed
// substitutes a placeholder seller when the reference is dangling.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProductID   string             `bson:"productId" json:"productId" validate:"required"`
	ProductName string             `bson:"productName" json:"productName" validate:"required"`
	Images      []string           `bson:"images" json:"images" validate:"required"`
	SellerID    string             `bson:"sellerId" json:"sellerId" validate:"required"`
	Price       Price              `bson:"price" json:"price"`
	Details     ProductDetails     `bson:"details" json:"details"`
	Shipping    Shipping           `bson:"shipping" json:"shipping"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FeedItem is a product with its seller profile attached for the home feed.
type FeedItem struct {
	Product
	Seller *Profile `json:"seller,omitempty"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is the catalog entry as customers and admins submit and read it.
// It deliberately has no identity field: public listings never expose one.
// Price is a pointer so that a zero price still satisfies "required".
type Product struct {
	Title       string   `json:"title" bson:"title" binding:"required"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64 `json:"price" bson:"price" binding:"required,gte=0"`
	Category    string   `json:"category" bson:"category" binding:"required"`
	InStock     *bool    `json:"in_stock" bson:"in_stock"`
	ImageURL    string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// Normalize applies defaults for fields the client may omit.
func (p *Product) Normalize() {
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
}

// StoredProduct is a product as it lives in the store, identity included.
type StoredProduct struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Product `bson:",inline"`
}

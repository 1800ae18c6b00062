package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Business is the single storefront profile. At most one document of this
// shape exists in the store; the upsert in the business repository preserves
// that invariant.
type Business struct {
	Name         string `json:"name" bson:"name" binding:"required"`
	Email        string `json:"email" bson:"email" binding:"required,email"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	AddressLine1 string `json:"address_line1,omitempty" bson:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty" bson:"address_line2,omitempty"`
	City         string `json:"city,omitempty" bson:"city,omitempty"`
	State        string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	Country      string `json:"country,omitempty" bson:"country,omitempty"`
}

type StoredBusiness struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Business `bson:",inline"`
}

package models

// InkOrder is a customer-submitted ink order. Orders are append-only: they
// are written once at submission time and never read back through the API.
// Color is an open string on purpose; "Red" and "Blue" are the usual values
// but the field is not a closed enumeration.
type InkOrder struct {
	CustomerName    string  `json:"customer_name" bson:"customer_name" binding:"required"`
	CustomerEmail   string  `json:"customer_email" bson:"customer_email" binding:"required,email"`
	CustomerPhone   string  `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	Color           string  `json:"color" bson:"color" binding:"required"`
	QuantityLiters  float64 `json:"quantity_liters" bson:"quantity_liters" binding:"required,gt=0"`
	Message         string  `json:"message,omitempty" bson:"message,omitempty"`
	DeliveryAddress string  `json:"delivery_address,omitempty" bson:"delivery_address,omitempty"`
}

package models

type Review struct {
	Name    string `bson:"name" json:"name" validate:"required"`
	Rating  int    `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment string `bson:"comment" json:"comment" validate:"required"`
	// Opaque reference, not checked against the product collection
	ProductID string `bson:"product_id" json:"product_id"`
}

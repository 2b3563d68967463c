package models

import (
	slug2 "github.com/gosimple/slug"
)

// Collection is a product line, not a database collection.
type Collection struct {
	Name        string `bson:"name" json:"name" validate:"required"`
	Description string `bson:"description" json:"description"`
	Banner      string `bson:"banner" json:"banner"`
	Slug        string `bson:"slug" json:"slug"`
}

func (col *Collection) Normalize() {
	if col.Slug == "" {
		col.Slug = slug2.Make(col.Name)
	}
}

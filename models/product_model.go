package models

import (
	slug2 "github.com/gosimple/slug"
)

// DefaultSizes is the size run applied when a product is created
// without an explicit size list.
var DefaultSizes = []string{"XS", "S", "M", "L", "XL"}

type Product struct {
	Title       string   `bson:"title" json:"title" validate:"required"`
	Description string   `bson:"description" json:"description"`
	Price       *float64 `bson:"price" json:"price" validate:"required,gte=0"`
	Category    string   `bson:"category" json:"category" validate:"required"`
	Images      []string `bson:"images" json:"images"`
	Sizes       []string `bson:"sizes" json:"sizes"`
	Fabrics     []string `bson:"fabrics" json:"fabrics"`
	InStock     *bool    `bson:"in_stock" json:"in_stock"`
	Featured    *bool    `bson:"featured" json:"featured"`
	Slug        string   `bson:"slug" json:"slug"`
}

// Normalize applies catalog defaults before the product is persisted.
// Pointer fields distinguish an omitted value from an explicit zero.
func (p *Product) Normalize() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = append([]string{}, DefaultSizes...)
	}
	if p.Fabrics == nil {
		p.Fabrics = []string{}
	}
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
	if p.Featured == nil {
		featured := false
		p.Featured = &featured
	}
	if p.Slug == "" {
		p.Slug = slug2.Make(p.Title)
	}
}

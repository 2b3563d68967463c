package models

import (
	"encoding/json"
	"testing"
)

func TestProductNormalizeDefaults(t *testing.T) {
	price := 120.0
	p := Product{Title: "Linen Summer Set", Price: &price, Category: "Casual"}
	p.Normalize()

	if len(p.Sizes) != 5 || p.Sizes[0] != "XS" || p.Sizes[4] != "XL" {
		t.Errorf("expected the default size run, got %v", p.Sizes)
	}
	if p.InStock == nil || !*p.InStock {
		t.Error("in_stock should default to true")
	}
	if p.Featured == nil || *p.Featured {
		t.Error("featured should default to false")
	}
	if p.Images == nil || p.Fabrics == nil {
		t.Error("array fields should default to empty, not nil")
	}
	if p.Slug != "linen-summer-set" {
		t.Errorf("slug should derive from title, got %q", p.Slug)
	}
}

func TestProductNormalizeKeepsExplicitValues(t *testing.T) {
	var p Product
	payload := `{"title":"Wool Coat","price":300,"category":"Outerwear","sizes":[],"in_stock":false}`
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatal(err)
	}
	p.Normalize()

	if len(p.Sizes) != 0 {
		t.Errorf("an explicit empty size list must stay empty, got %v", p.Sizes)
	}
	if p.InStock == nil || *p.InStock {
		t.Error("an explicit in_stock=false must survive normalization")
	}
}

func TestDefaultSizesNotAliased(t *testing.T) {
	price := 1.0
	p := Product{Title: "A", Price: &price, Category: "c"}
	p.Normalize()
	p.Sizes[0] = "XXS"

	if DefaultSizes[0] != "XS" {
		t.Error("normalization must copy the default size run, not alias it")
	}
}

func TestCollectionNormalizeSlug(t *testing.T) {
	col := Collection{Name: "Autumn / Winter '25"}
	col.Normalize()
	if col.Slug == "" {
		t.Error("slug should derive from name")
	}

	col = Collection{Name: "Bridal", Slug: "custom-slug"}
	col.Normalize()
	if col.Slug != "custom-slug" {
		t.Errorf("an explicit slug must survive, got %q", col.Slug)
	}
}

func TestOrderNormalizeQuantityDefault(t *testing.T) {
	price := 10.0
	explicit := 3
	o := Order{Items: []OrderItem{
		{ProductID: "p1", Title: "Dress", Price: &price},
		{ProductID: "p2", Title: "Scarf", Price: &price, Quantity: &explicit},
	}}
	o.Normalize()

	if o.Items[0].Quantity == nil || *o.Items[0].Quantity != 1 {
		t.Error("omitted quantity should default to 1")
	}
	if *o.Items[1].Quantity != 3 {
		t.Error("explicit quantity must survive normalization")
	}
}

func TestGalleryNormalizeTags(t *testing.T) {
	g := GalleryItem{ImageURL: "https://cdn.example.com/1.jpg"}
	g.Normalize()
	if g.Tags == nil {
		t.Error("tags should default to an empty slice")
	}
}

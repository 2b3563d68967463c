package models

type GalleryItem struct {
	ImageURL string   `bson:"image_url" json:"image_url" validate:"required"`
	Caption  string   `bson:"caption" json:"caption"`
	Tags     []string `bson:"tags" json:"tags"`
}

func (g *GalleryItem) Normalize() {
	if g.Tags == nil {
		g.Tags = []string{}
	}
}

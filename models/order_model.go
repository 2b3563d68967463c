package models

type OrderItem struct {
	ProductID string   `bson:"product_id" json:"product_id" validate:"required"`
	Title     string   `bson:"title" json:"title" validate:"required"`
	Size      string   `bson:"size" json:"size"`
	Quantity  *int     `bson:"quantity" json:"quantity" validate:"omitempty,min=1"`
	Price     *float64 `bson:"price" json:"price" validate:"required"`
}

type Order struct {
	CustomerName string      `bson:"customer_name" json:"customer_name" validate:"required"`
	Email        string      `bson:"email" json:"email" validate:"required,email"`
	Phone        string      `bson:"phone" json:"phone"`
	Address      string      `bson:"address" json:"address"`
	Items        []OrderItem `bson:"items" json:"items" validate:"required,dive"`
	// Supplied by the client; not reconciled against the item lines
	Total *float64 `bson:"total" json:"total" validate:"required,gte=0"`
	Notes string   `bson:"notes" json:"notes"`
}

func (o *Order) Normalize() {
	for i := range o.Items {
		if o.Items[i].Quantity == nil {
			quantity := 1
			o.Items[i].Quantity = &quantity
		}
	}
}

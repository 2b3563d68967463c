package models

// Booking is a tailoring appointment request. Dates and times are kept
// as the plain strings the frontend submits; measurements are an open
// key/value mapping.
type Booking struct {
	Name          string                 `bson:"name" json:"name" validate:"required"`
	Email         string                 `bson:"email" json:"email" validate:"required,email"`
	Phone         string                 `bson:"phone" json:"phone" validate:"required"`
	ServiceType   string                 `bson:"service_type" json:"service_type" validate:"required"`
	PreferredDate string                 `bson:"preferred_date" json:"preferred_date"`
	PreferredTime string                 `bson:"preferred_time" json:"preferred_time"`
	Measurements  map[string]interface{} `bson:"measurements" json:"measurements"`
	Notes         string                 `bson:"notes" json:"notes"`
}

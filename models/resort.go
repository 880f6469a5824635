package models

import "time"

// Resort is a property operated by a vendor.
type Resort struct {
	ID          FlexibleID `bson:"id" json:"id"`
	VendorID    string     `bson:"vendor_id" json:"vendor_id"`
	Name        string     `bson:"name" json:"name"`
	Location    string     `bson:"location" json:"location"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Slug        string     `bson:"slug" json:"slug"`
	Images      []string   `bson:"images,omitempty" json:"images,omitempty"`
	Amenities   []string   `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Status      string     `bson:"status" json:"status"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// ResortInput is the request body for creating a resort.
type ResortInput struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Status      string   `json:"status"`
}

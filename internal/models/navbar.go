package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NavLink is one entry of the public site navigation.
type NavLink struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Label     string             `bson:"label" json:"label"`
	URL       string             `bson:"url" json:"url"`
	Order     int                `bson:"order" json:"order"`
	Visible   bool               `bson:"visible" json:"visible"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// NavbarFilter narrows navbar listings.
type NavbarFilter struct {
	Search string
	Page   int
	Limit  int
}

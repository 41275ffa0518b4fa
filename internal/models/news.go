package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsCategory enumerates news article categories.
type NewsCategory string

const (
	NewsCategoryIslamicWorld  NewsCategory = "islamic-world"
	NewsCategoryBangladesh    NewsCategory = "bangladesh"
	NewsCategoryInternational NewsCategory = "international"
	NewsCategoryEducation     NewsCategory = "education"
	NewsCategoryCommunity     NewsCategory = "community"
)

// Valid reports whether the category is supported.
func (c NewsCategory) Valid() bool {
	switch c {
	case NewsCategoryIslamicWorld, NewsCategoryBangladesh,
		NewsCategoryInternational, NewsCategoryEducation, NewsCategoryCommunity:
		return true
	default:
		return false
	}
}

// News represents one news article document.
type News struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Content    string             `bson:"content" json:"content"`
	Excerpt    string             `bson:"excerpt" json:"excerpt"`
	Image      string             `bson:"image" json:"image"`
	Category   NewsCategory       `bson:"category" json:"category"`
	AuthorID   primitive.ObjectID `bson:"author_id,omitempty" json:"author_id,omitempty"`
	AuthorName string             `bson:"author_name" json:"author_name"`
	Featured   bool               `bson:"featured" json:"featured"`
	Views      int64              `bson:"views" json:"views"`
	Tags       []string           `bson:"tags" json:"tags"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewsFilter narrows news listings.
type NewsFilter struct {
	Category string
	Featured *bool
	Search   string
	Page     int
	Limit    int
}

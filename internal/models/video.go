package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoCategory enumerates video categories.
type VideoCategory string

const (
	VideoCategoryLecture     VideoCategory = "lecture"
	VideoCategoryRecitation  VideoCategory = "recitation"
	VideoCategoryDocumentary VideoCategory = "documentary"
	VideoCategoryKids        VideoCategory = "kids"
)

// Valid reports whether the category is supported.
func (c VideoCategory) Valid() bool {
	switch c {
	case VideoCategoryLecture, VideoCategoryRecitation,
		VideoCategoryDocumentary, VideoCategoryKids:
		return true
	default:
		return false
	}
}

// Video represents one video document.
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	VideoURL    string             `bson:"video_url" json:"video_url"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Category    VideoCategory      `bson:"category" json:"category"`
	Duration    string             `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// VideoFilter narrows video listings.
type VideoFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

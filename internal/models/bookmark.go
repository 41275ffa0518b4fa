package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookmarkContentType identifies what kind of record a bookmark points to.
type BookmarkContentType string

const (
	BookmarkQuran   BookmarkContentType = "quran"
	BookmarkHadith  BookmarkContentType = "hadith"
	BookmarkNews    BookmarkContentType = "news"
	BookmarkVideo   BookmarkContentType = "video"
	BookmarkProduct BookmarkContentType = "product"
)

// Valid reports whether the content type is supported.
func (t BookmarkContentType) Valid() bool {
	switch t {
	case BookmarkQuran, BookmarkHadith, BookmarkNews, BookmarkVideo, BookmarkProduct:
		return true
	default:
		return false
	}
}

// Bookmark pins a content record for a user. (UserID, ContentType,
// ContentID) is unique across the store.
type Bookmark struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID  `bson:"user_id" json:"user_id"`
	ContentType BookmarkContentType `bson:"content_type" json:"content_type"`
	ContentID   primitive.ObjectID  `bson:"content_id" json:"content_id"`
	Note        string              `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
}

// BookmarkFilter narrows bookmark listings.
type BookmarkFilter struct {
	UserID      string
	ContentType string
	Page        int
	Limit       int
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HadithCollection enumerates the supported hadith collections.
type HadithCollection string

const (
	CollectionBukhari  HadithCollection = "bukhari"
	CollectionMuslim   HadithCollection = "muslim"
	CollectionTirmidhi HadithCollection = "tirmidhi"
	CollectionAbuDawud HadithCollection = "abudawud"
	CollectionNasai    HadithCollection = "nasai"
	CollectionIbnMajah HadithCollection = "ibnmajah"
)

// Valid reports whether the collection name is supported.
func (c HadithCollection) Valid() bool {
	switch c {
	case CollectionBukhari, CollectionMuslim, CollectionTirmidhi,
		CollectionAbuDawud, CollectionNasai, CollectionIbnMajah:
		return true
	default:
		return false
	}
}

// Hadith represents one hadith document. (Collection, HadithNumber) is
// unique across the store.
type Hadith struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Collection         HadithCollection   `bson:"collection" json:"collection"`
	HadithNumber       int                `bson:"hadith_number" json:"hadith_number"`
	ArabicText         string             `bson:"arabic_text" json:"arabic_text"`
	EnglishTranslation string             `bson:"english_translation" json:"english_translation"`
	BanglaTranslation  string             `bson:"bangla_translation" json:"bangla_translation"`
	Narrator           string             `bson:"narrator" json:"narrator"`
	Chapter            string             `bson:"chapter" json:"chapter"`
	Book               string             `bson:"book" json:"book"`
	Volume             int                `bson:"volume,omitempty" json:"volume,omitempty"`
	Page               int                `bson:"page,omitempty" json:"page,omitempty"`
	Tags               []string           `bson:"tags" json:"tags"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// HadithFilter narrows hadith listings.
type HadithFilter struct {
	Collection string
	Book       string
	Search     string
	Page       int
	Limit      int
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RevelationPlace identifies where a surah was revealed.
type RevelationPlace string

const (
	RevelationMakkah  RevelationPlace = "makkah"
	RevelationMadinah RevelationPlace = "madinah"
)

// Valid reports whether the value is a supported revelation place.
func (p RevelationPlace) Valid() bool {
	return p == RevelationMakkah || p == RevelationMadinah
}

// Ayah is a single verse with its translations.
type Ayah struct {
	AyahNumber         int    `bson:"ayah_number" json:"ayah_number"`
	ArabicText         string `bson:"arabic_text" json:"arabic_text"`
	EnglishTranslation string `bson:"english_translation" json:"english_translation"`
	BanglaTranslation  string `bson:"bangla_translation" json:"bangla_translation"`
	AudioURL           string `bson:"audio_url,omitempty" json:"audio_url,omitempty"`
}

// Surah represents one Quran chapter document.
type Surah struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SurahNumber     int                `bson:"surah_number" json:"surah_number"`
	NameArabic      string             `bson:"name_arabic" json:"name_arabic"`
	NameEnglish     string             `bson:"name_english" json:"name_english"`
	NameBangla      string             `bson:"name_bangla" json:"name_bangla"`
	TotalAyahs      int                `bson:"total_ayahs" json:"total_ayahs"`
	RevelationPlace RevelationPlace    `bson:"revelation_place" json:"revelation_place"`
	Ayahs           []Ayah             `bson:"ayahs" json:"ayahs"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// QuranFilter narrows surah listings.
type QuranFilter struct {
	RevelationPlace string
	Search          string
	Page            int
	Limit           int
}

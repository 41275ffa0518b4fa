package fallback

import "github.com/azharul-dev/islamichub-api/internal/models"

// Videos returns the sample video catalog.
func Videos() []models.Video {
	return []models.Video{
		{
			ID:          oid("65f0a1b2c3d4e5f605000001"),
			Title:       "Surah Ar-Rahman: Beautiful Recitation",
			Description: "Full recitation of Surah Ar-Rahman with English subtitles.",
			VideoURL:    "https://videos.example.com/recitation/ar-rahman",
			Thumbnail:   "/images/videos/ar-rahman.jpg",
			Category:    models.VideoCategoryRecitation,
			Duration:    "11:42",
			Views:       15400,
			Tags:        []string{"recitation", "surah rahman"},
			CreatedAt:   ts(5, 9),
			UpdatedAt:   ts(5, 9),
		},
		{
			ID:          oid("65f0a1b2c3d4e5f605000002"),
			Title:       "The Life of the Prophet, Part 1: Early Years",
			Description: "First lecture of a seerah series covering the Prophet's early life in Makkah.",
			VideoURL:    "https://videos.example.com/lectures/seerah-part-1",
			Thumbnail:   "/images/videos/seerah-1.jpg",
			Category:    models.VideoCategoryLecture,
			Duration:    "48:15",
			Views:       8900,
			Tags:        []string{"seerah", "lecture"},
			CreatedAt:   ts(5, 10),
			UpdatedAt:   ts(5, 10),
		},
		{
			ID:          oid("65f0a1b2c3d4e5f605000003"),
			Title:       "Inside the Great Mosques of the World",
			Description: "Documentary exploring the architecture and history of famous mosques across four continents.",
			VideoURL:    "https://videos.example.com/documentary/great-mosques",
			Thumbnail:   "/images/videos/great-mosques.jpg",
			Category:    models.VideoCategoryDocumentary,
			Duration:    "52:30",
			Views:       4300,
			Tags:        []string{"documentary", "architecture"},
			CreatedAt:   ts(5, 11),
			UpdatedAt:   ts(5, 11),
		},
		{
			ID:          oid("65f0a1b2c3d4e5f605000004"),
			Title:       "Learn the Arabic Alphabet with Zaky",
			Description: "Animated alphabet lesson for young children.",
			VideoURL:    "https://videos.example.com/kids/arabic-alphabet",
			Thumbnail:   "/images/videos/arabic-alphabet.jpg",
			Category:    models.VideoCategoryKids,
			Duration:    "14:05",
			Views:       22100,
			Tags:        []string{"kids", "arabic"},
			CreatedAt:   ts(5, 12),
			UpdatedAt:   ts(5, 12),
		},
	}
}

package fallback

import "github.com/azharul-dev/islamichub-api/internal/models"

// NewsArticles returns the sample news catalog.
func NewsArticles() []models.News {
	return []models.News{
		{
			ID:         oid("65f0a1b2c3d4e5f603000001"),
			Title:      "Grand Mosque Expansion Project Enters Final Phase",
			Content:    "The multi-year expansion of the Grand Mosque has entered its final construction phase, adding prayer space for an additional 300,000 worshippers ahead of the next Hajj season.",
			Excerpt:    "Expansion adds prayer space for 300,000 more worshippers.",
			Image:      "/images/news/grand-mosque-expansion.jpg",
			Category:   models.NewsCategoryIslamicWorld,
			AuthorName: "Islamic Hub Desk",
			Featured:   true,
			Views:      1250,
			Tags:       []string{"hajj", "makkah", "infrastructure"},
			CreatedAt:  ts(3, 9),
			UpdatedAt:  ts(3, 9),
		},
		{
			ID:         oid("65f0a1b2c3d4e5f603000002"),
			Title:      "National Quran Recitation Competition Announces Winners",
			Content:    "Young reciters from all sixty-four districts competed in the national finals held in Dhaka, with the champion earning a scholarship to continue advanced tajweed studies abroad.",
			Excerpt:    "District champions gathered in Dhaka for the national finals.",
			Image:      "/images/news/recitation-competition.jpg",
			Category:   models.NewsCategoryBangladesh,
			AuthorName: "Staff Correspondent",
			Featured:   false,
			Views:      640,
			Tags:       []string{"quran", "competition", "dhaka"},
			CreatedAt:  ts(3, 10),
			UpdatedAt:  ts(3, 10),
		},
		{
			ID:         oid("65f0a1b2c3d4e5f603000003"),
			Title:      "New Islamic Studies Curriculum Launched for Secondary Schools",
			Content:    "The education board unveiled a revised Islamic studies curriculum emphasising comparative fiqh, Arabic comprehension and digital literacy for madrasa students.",
			Excerpt:    "Revised curriculum emphasises fiqh, Arabic and digital literacy.",
			Image:      "/images/news/curriculum-launch.jpg",
			Category:   models.NewsCategoryEducation,
			AuthorName: "Education Reporter",
			Featured:   false,
			Views:      410,
			Tags:       []string{"education", "curriculum"},
			CreatedAt:  ts(3, 11),
			UpdatedAt:  ts(3, 11),
		},
		{
			ID:         oid("65f0a1b2c3d4e5f603000004"),
			Title:      "Community Iftar Programme Serves Ten Thousand Meals",
			Content:    "Volunteers across the city distributed more than ten thousand iftar meals during the last week of Ramadan, supported by donations collected through local mosques.",
			Excerpt:    "Volunteers distributed over ten thousand iftar meals.",
			Image:      "/images/news/community-iftar.jpg",
			Category:   models.NewsCategoryCommunity,
			AuthorName: "Islamic Hub Desk",
			Featured:   true,
			Views:      890,
			Tags:       []string{"ramadan", "iftar", "charity"},
			CreatedAt:  ts(3, 12),
			UpdatedAt:  ts(3, 12),
		},
	}
}

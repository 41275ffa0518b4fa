package fallback

import "github.com/azharul-dev/islamichub-api/internal/models"

// Products returns the sample product catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:            oid("65f0a1b2c3d4e5f604000001"),
			Name:          "The Noble Quran (English Translation)",
			Description:   "Hardcover edition of the Noble Quran with side-by-side Arabic text and English translation, including a topical index.",
			Price:         24.99,
			OriginalPrice: 29.99,
			Images:        []string{"/images/products/noble-quran-1.jpg", "/images/products/noble-quran-2.jpg"},
			Category:      models.ProductCategoryBooks,
			Stock:         120,
			SKU:           "BK-QURAN-EN-01",
			Featured:      true,
			Active:        true,
			CreatedAt:     ts(4, 9),
			UpdatedAt:     ts(4, 9),
		},
		{
			ID:            oid("65f0a1b2c3d4e5f604000002"),
			Name:          "Sahih al-Bukhari (9 Volume Set)",
			Description:   "Complete nine-volume set of Sahih al-Bukhari with Arabic text, English translation and scholarly commentary.",
			Price:         149.00,
			OriginalPrice: 179.00,
			Images:        []string{"/images/products/bukhari-set.jpg"},
			Category:      models.ProductCategoryBooks,
			Stock:         35,
			SKU:           "BK-BUKHARI-SET",
			Featured:      false,
			Active:        true,
			CreatedAt:     ts(4, 10),
			UpdatedAt:     ts(4, 10),
		},
		{
			ID:            oid("65f0a1b2c3d4e5f604000003"),
			Name:          "Premium Velvet Prayer Mat",
			Description:   "Thick velvet prayer mat with memory-foam padding and a woven mihrab motif. Machine washable.",
			Price:         34.50,
			OriginalPrice: 34.50,
			Images:        []string{"/images/products/prayer-mat-velvet.jpg"},
			Category:      models.ProductCategoryPrayerItems,
			Stock:         200,
			SKU:           "PR-MAT-VELVET",
			Featured:      true,
			Active:        true,
			CreatedAt:     ts(4, 11),
			UpdatedAt:     ts(4, 11),
		},
		{
			ID:            oid("65f0a1b2c3d4e5f604000004"),
			Name:          "Digital Tasbih Counter",
			Description:   "Rechargeable digital tasbih with vibration feedback and a 99-count reset mode.",
			Price:         9.99,
			OriginalPrice: 12.99,
			Images:        []string{"/images/products/digital-tasbih.jpg"},
			Category:      models.ProductCategoryAccessories,
			Stock:         500,
			SKU:           "AC-TASBIH-DGT",
			Featured:      false,
			Active:        true,
			CreatedAt:     ts(4, 12),
			UpdatedAt:     ts(4, 12),
		},
		{
			ID:            oid("65f0a1b2c3d4e5f604000005"),
			Name:          "Men's Embroidered Panjabi",
			Description:   "Cotton panjabi with traditional embroidery, available in white and navy.",
			Price:         42.00,
			OriginalPrice: 55.00,
			Images:        []string{"/images/products/panjabi-white.jpg", "/images/products/panjabi-navy.jpg"},
			Category:      models.ProductCategoryClothing,
			Stock:         80,
			SKU:           "CL-PANJABI-EMB",
			Featured:      false,
			Active:        true,
			CreatedAt:     ts(4, 13),
			UpdatedAt:     ts(4, 13),
		},
	}
}

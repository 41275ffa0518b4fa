package fallback

import "github.com/azharul-dev/islamichub-api/internal/models"

// NavLinks returns the sample navigation catalog.
func NavLinks() []models.NavLink {
	return []models.NavLink{
		{ID: oid("65f0a1b2c3d4e5f606000001"), Label: "Home", URL: "/", Order: 1, Visible: true, CreatedAt: ts(6, 9), UpdatedAt: ts(6, 9)},
		{ID: oid("65f0a1b2c3d4e5f606000002"), Label: "Quran", URL: "/quran", Order: 2, Visible: true, CreatedAt: ts(6, 9), UpdatedAt: ts(6, 9)},
		{ID: oid("65f0a1b2c3d4e5f606000003"), Label: "Hadith", URL: "/hadith", Order: 3, Visible: true, CreatedAt: ts(6, 9), UpdatedAt: ts(6, 9)},
		{ID: oid("65f0a1b2c3d4e5f606000004"), Label: "News", URL: "/news", Order: 4, Visible: true, CreatedAt: ts(6, 9), UpdatedAt: ts(6, 9)},
		{ID: oid("65f0a1b2c3d4e5f606000005"), Label: "Videos", URL: "/videos", Order: 5, Visible: true, CreatedAt: ts(6, 9), UpdatedAt: ts(6, 9)},
		{ID: oid("65f0a1b2c3d4e5f606000006"), Label: "Shop", URL: "/shop", Order: 6, Visible: true, CreatedAt: ts(6, 9), UpdatedAt: ts(6, 9)},
	}
}

package listings

import (
	"time"

	"nadlan-backend/internal/domain"

	"gorm.io/datatypes"
)

// DemoProperties returns the showcase listings, newest first, with listing
// times relative to now.
func DemoProperties(now time.Time) []domain.Property {
	return []domain.Property{
		{
			ID:          "1",
			Title:       "פנטהאוז מודרני עם נוף לעיר",
			Price:       3850000,
			Address:     "רוטשילד 45",
			City:        "תל אביב",
			Type:        domain.TypeApartment,
			Bedrooms:    4,
			Bathrooms:   2,
			Area:        120,
			Description: "פנטהאוז משופץ ומעוצב בלב העיר. קנייה ישירה מהבעלים וחוסכים מעל 70,000 ש״ח בעמלות תיווך! מרפסת שמש גדולה ונוף פנורמי.",
			Images: datatypes.JSONSlice[string]{
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1493809842364-78817add7ffb?auto=format&fit=crop&w=800&q=80",
			},
			SellerName:  "יוסי כהן",
			SellerPhone: "054-1234567",
			ListedAt:    now,
			IsPremium:   true,
		},
		{
			ID:          "2",
			Title:       "בית משפחתי מרווח עם גינה",
			Price:       4625000,
			Address:     "האורנים 12",
			City:        "רעננה",
			Type:        domain.TypeHouse,
			Bedrooms:    5,
			Bathrooms:   3,
			Area:        185,
			Description: "בית מושלם למשפחה עם גינה ענקית. מכירה ישירה ללא מתווכים. הבית עבר שיפוץ מקיף ב-2023.",
			Images: datatypes.JSONSlice[string]{
				"https://images.unsplash.com/photo-1568605114967-8130f3a36994?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?auto=format&fit=crop&w=800&q=80",
			},
			SellerName:  "מיכל לוי",
			SellerPhone: "052-8765432",
			ListedAt:    now.Add(-24 * time.Hour),
		},
	}
}

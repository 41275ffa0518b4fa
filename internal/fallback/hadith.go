package fallback

import "github.com/azharul-dev/islamichub-api/internal/models"

// Hadiths returns the sample hadith catalog.
func Hadiths() []models.Hadith {
	return []models.Hadith{
		{
			ID:                 oid("65f0a1b2c3d4e5f602000001"),
			Collection:         models.CollectionBukhari,
			HadithNumber:       1,
			ArabicText:         "إِنَّمَا الأَعْمَالُ بِالنِّيَّاتِ وَإِنَّمَا لِكُلِّ امْرِئٍ مَا نَوَى",
			EnglishTranslation: "Actions are but by intentions, and every man shall have only that which he intended.",
			BanglaTranslation:  "সমস্ত কাজ নিয়তের উপর নির্ভরশীল, আর প্রত্যেক ব্যক্তি তাই পাবে যা সে নিয়ত করেছে।",
			Narrator:           "Umar ibn al-Khattab",
			Chapter:            "Revelation",
			Book:               "Book of Revelation",
			Volume:             1,
			Page:               1,
			Tags:               []string{"intention", "sincerity", "deeds"},
			CreatedAt:          ts(2, 9),
			UpdatedAt:          ts(2, 9),
		},
		{
			ID:                 oid("65f0a1b2c3d4e5f602000002"),
			Collection:         models.CollectionBukhari,
			HadithNumber:       13,
			ArabicText:         "لاَ يُؤْمِنُ أَحَدُكُمْ حَتَّى يُحِبَّ لأَخِيهِ مَا يُحِبُّ لِنَفْسِهِ",
			EnglishTranslation: "None of you truly believes until he loves for his brother what he loves for himself.",
			BanglaTranslation:  "তোমাদের কেউ ততক্ষণ পর্যন্ত মুমিন হতে পারবে না, যতক্ষণ না সে তার ভাইয়ের জন্য তাই পছন্দ করে যা সে নিজের জন্য পছন্দ করে।",
			Narrator:           "Anas ibn Malik",
			Chapter:            "Belief",
			Book:               "Book of Belief",
			Volume:             1,
			Page:               12,
			Tags:               []string{"faith", "brotherhood"},
			CreatedAt:          ts(2, 10),
			UpdatedAt:          ts(2, 10),
		},
		{
			ID:                 oid("65f0a1b2c3d4e5f602000003"),
			Collection:         models.CollectionMuslim,
			HadithNumber:       2699,
			ArabicText:         "مَنْ سَلَكَ طَرِيقًا يَلْتَمِسُ فِيهِ عِلْمًا سَهَّلَ اللَّهُ لَهُ بِهِ طَرِيقًا إِلَى الْجَنَّةِ",
			EnglishTranslation: "Whoever travels a path in search of knowledge, Allah makes easy for him a path to Paradise.",
			BanglaTranslation:  "যে ব্যক্তি জ্ঞান অন্বেষণের জন্য কোনো পথ অবলম্বন করে, আল্লাহ তার জন্য জান্নাতের পথ সহজ করে দেন।",
			Narrator:           "Abu Hurairah",
			Chapter:            "Knowledge",
			Book:               "Book of Remembrance",
			Volume:             4,
			Page:               2074,
			Tags:               []string{"knowledge", "paradise"},
			CreatedAt:          ts(2, 11),
			UpdatedAt:          ts(2, 11),
		},
		{
			ID:                 oid("65f0a1b2c3d4e5f602000004"),
			Collection:         models.CollectionTirmidhi,
			HadithNumber:       1924,
			ArabicText:         "الرَّاحِمُونَ يَرْحَمُهُمُ الرَّحْمَنُ ارْحَمُوا مَنْ فِي الأَرْضِ يَرْحَمْكُمْ مَنْ فِي السَّمَاءِ",
			EnglishTranslation: "The merciful are shown mercy by the Most Merciful. Be merciful to those on earth, and the One above the heavens will be merciful to you.",
			BanglaTranslation:  "দয়াশীলদের প্রতি পরম করুণাময় দয়া করেন। তোমরা পৃথিবীবাসীর প্রতি দয়া করো, আসমানের অধিপতি তোমাদের প্রতি দয়া করবেন।",
			Narrator:           "Abdullah ibn Amr",
			Chapter:            "Righteousness",
			Book:               "Book of Righteousness and Maintaining Ties",
			Volume:             4,
			Page:               323,
			Tags:               []string{"mercy", "kindness"},
			CreatedAt:          ts(2, 12),
			UpdatedAt:          ts(2, 12),
		},
		{
			ID:                 oid("65f0a1b2c3d4e5f602000005"),
			Collection:         models.CollectionAbuDawud,
			HadithNumber:       4941,
			ArabicText:         "مَنْ لاَ يَرْحَمِ النَّاسَ لاَ يَرْحَمْهُ اللَّهُ",
			EnglishTranslation: "He who does not show mercy to the people, Allah does not show mercy to him.",
			BanglaTranslation:  "যে মানুষের প্রতি দয়া করে না, আল্লাহ তার প্রতি দয়া করেন না।",
			Narrator:           "Jarir ibn Abdullah",
			Chapter:            "General Behavior",
			Book:               "Book of General Behavior",
			Volume:             5,
			Page:               203,
			Tags:               []string{"mercy"},
			CreatedAt:          ts(2, 13),
			UpdatedAt:          ts(2, 13),
		},
		{
			ID:                 oid("65f0a1b2c3d4e5f602000006"),
			Collection:         models.CollectionNasai,
			HadithNumber:       2438,
			ArabicText:         "الصَّدَقَةُ تُطْفِئُ الْخَطِيئَةَ كَمَا يُطْفِئُ الْمَاءُ النَّارَ",
			EnglishTranslation: "Charity extinguishes sin as water extinguishes fire.",
			BanglaTranslation:  "দান-সদকা গুনাহকে এমনভাবে নিভিয়ে দেয় যেমন পানি আগুনকে নিভিয়ে দেয়।",
			Narrator:           "Muadh ibn Jabal",
			Chapter:            "Zakah",
			Book:               "Book of Zakah",
			Volume:             3,
			Page:               87,
			Tags:               []string{"charity", "zakah"},
			CreatedAt:          ts(2, 14),
			UpdatedAt:          ts(2, 14),
		},
	}
}

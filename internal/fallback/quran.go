package fallback

import "github.com/azharul-dev/islamichub-api/internal/models"

// Surahs returns the sample Quran catalog. Al-Fatiha carries its full
// seven ayahs; the shorter Makkan surahs are complete as well.
func Surahs() []models.Surah {
	return []models.Surah{
		{
			ID:              oid("65f0a1b2c3d4e5f601000001"),
			SurahNumber:     1,
			NameArabic:      "الفاتحة",
			NameEnglish:     "Al-Fatiha",
			NameBangla:      "আল-ফাতিহা",
			TotalAyahs:      7,
			RevelationPlace: models.RevelationMakkah,
			Ayahs: []models.Ayah{
				{AyahNumber: 1, ArabicText: "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ", EnglishTranslation: "In the name of Allah, the Entirely Merciful, the Especially Merciful.", BanglaTranslation: "পরম করুণাময় অসীম দয়ালু আল্লাহর নামে।"},
				{AyahNumber: 2, ArabicText: "الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ", EnglishTranslation: "All praise is due to Allah, Lord of the worlds.", BanglaTranslation: "সমস্ত প্রশংসা আল্লাহর, যিনি সকল সৃষ্টি জগতের পালনকর্তা।"},
				{AyahNumber: 3, ArabicText: "الرَّحْمَٰنِ الرَّحِيمِ", EnglishTranslation: "The Entirely Merciful, the Especially Merciful.", BanglaTranslation: "যিনি পরম করুণাময়, অসীম দয়ালু।"},
				{AyahNumber: 4, ArabicText: "مَالِكِ يَوْمِ الدِّينِ", EnglishTranslation: "Sovereign of the Day of Recompense.", BanglaTranslation: "যিনি বিচার দিনের মালিক।"},
				{AyahNumber: 5, ArabicText: "إِيَّاكَ نَعْبُدُ وَإِيَّاكَ نَسْتَعِينُ", EnglishTranslation: "It is You we worship and You we ask for help.", BanglaTranslation: "আমরা একমাত্র তোমারই ইবাদত করি এবং শুধুমাত্র তোমারই সাহায্য প্রার্থনা করি।"},
				{AyahNumber: 6, ArabicText: "اهْدِنَا الصِّرَاطَ الْمُسْتَقِيمَ", EnglishTranslation: "Guide us to the straight path.", BanglaTranslation: "আমাদের সরল পথ দেখাও।"},
				{AyahNumber: 7, ArabicText: "صِرَاطَ الَّذِينَ أَنْعَمْتَ عَلَيْهِمْ غَيْرِ الْمَغْضُوبِ عَلَيْهِمْ وَلَا الضَّالِّينَ", EnglishTranslation: "The path of those upon whom You have bestowed favor, not of those who have evoked anger or of those who are astray.", BanglaTranslation: "সে সমস্ত লোকের পথ, যাদেরকে তুমি নেয়ামত দান করেছ; তাদের পথ নয় যাদের প্রতি গজব নাজিল হয়েছে এবং যারা পথভ্রষ্ট।"},
			},
			CreatedAt: ts(1, 9),
			UpdatedAt: ts(1, 9),
		},
		{
			ID:              oid("65f0a1b2c3d4e5f601000002"),
			SurahNumber:     112,
			NameArabic:      "الإخلاص",
			NameEnglish:     "Al-Ikhlas",
			NameBangla:      "আল-ইখলাস",
			TotalAyahs:      4,
			RevelationPlace: models.RevelationMakkah,
			Ayahs: []models.Ayah{
				{AyahNumber: 1, ArabicText: "قُلْ هُوَ اللَّهُ أَحَدٌ", EnglishTranslation: "Say, He is Allah, the One.", BanglaTranslation: "বলুন, তিনি আল্লাহ, এক।"},
				{AyahNumber: 2, ArabicText: "اللَّهُ الصَّمَدُ", EnglishTranslation: "Allah, the Eternal Refuge.", BanglaTranslation: "আল্লাহ অমুখাপেক্ষী।"},
				{AyahNumber: 3, ArabicText: "لَمْ يَلِدْ وَلَمْ يُولَدْ", EnglishTranslation: "He neither begets nor is born.", BanglaTranslation: "তিনি কাউকে জন্ম দেননি এবং কেউ তাকে জন্ম দেয়নি।"},
				{AyahNumber: 4, ArabicText: "وَلَمْ يَكُن لَّهُ كُفُوًا أَحَدٌ", EnglishTranslation: "Nor is there to Him any equivalent.", BanglaTranslation: "এবং তার সমতুল্য কেউ নেই।"},
			},
			CreatedAt: ts(1, 10),
			UpdatedAt: ts(1, 10),
		},
		{
			ID:              oid("65f0a1b2c3d4e5f601000003"),
			SurahNumber:     114,
			NameArabic:      "الناس",
			NameEnglish:     "An-Nas",
			NameBangla:      "আন-নাস",
			TotalAyahs:      6,
			RevelationPlace: models.RevelationMakkah,
			Ayahs: []models.Ayah{
				{AyahNumber: 1, ArabicText: "قُلْ أَعُوذُ بِرَبِّ النَّاسِ", EnglishTranslation: "Say, I seek refuge in the Lord of mankind.", BanglaTranslation: "বলুন, আমি আশ্রয় চাই মানুষের পালনকর্তার।"},
				{AyahNumber: 2, ArabicText: "مَلِكِ النَّاسِ", EnglishTranslation: "The Sovereign of mankind.", BanglaTranslation: "মানুষের অধিপতির।"},
				{AyahNumber: 3, ArabicText: "إِلَٰهِ النَّاسِ", EnglishTranslation: "The God of mankind.", BanglaTranslation: "মানুষের উপাস্যের।"},
				{AyahNumber: 4, ArabicText: "مِن شَرِّ الْوَسْوَاسِ الْخَنَّاسِ", EnglishTranslation: "From the evil of the retreating whisperer.", BanglaTranslation: "আত্মগোপনকারী কুমন্ত্রণাদাতার অনিষ্ট থেকে।"},
				{AyahNumber: 5, ArabicText: "الَّذِي يُوَسْوِسُ فِي صُدُورِ النَّاسِ", EnglishTranslation: "Who whispers into the breasts of mankind.", BanglaTranslation: "যে মানুষের অন্তরে কুমন্ত্রণা দেয়।"},
				{AyahNumber: 6, ArabicText: "مِنَ الْجِنَّةِ وَالنَّاسِ", EnglishTranslation: "From among the jinn and mankind.", BanglaTranslation: "জিন ও মানুষের মধ্য থেকে।"},
			},
			CreatedAt: ts(1, 11),
			UpdatedAt: ts(1, 11),
		},
	}
}

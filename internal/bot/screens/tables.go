package screens

import "Nadi/internal/core/domain"

var categoryIcons = map[domain.GrievanceCategory]string{
	domain.CategoryRoads:       "🚧",
	domain.CategoryElectricity: "⚡",
	domain.CategoryWater:       "💧",
	domain.CategorySanitation:  "🧹",
	domain.CategoryCorruption:  "🚫",
	domain.CategoryOther:       "📝",
}

var statusBadges = map[domain.GrievanceStatus]string{
	domain.StatusSubmitted: "⚪",
	domain.StatusInReview:  "🟠",
	domain.StatusAssigned:  "🔵",
	domain.StatusResolved:  "🟢",
}

// CategoryIcon returns the emoji shown next to a category.
func CategoryIcon(c domain.GrievanceCategory) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return categoryIcons[domain.CategoryOther]
}

// StatusBadge returns the coloured dot shown next to a status.
func StatusBadge(s domain.GrievanceStatus) string {
	if badge, ok := statusBadges[s]; ok {
		return badge
	}
	return statusBadges[domain.StatusSubmitted]
}

type marketingItem struct {
	Title map[domain.Language]string
	Image string
	Date  string
}

var marketingUpdates = []marketingItem{
	{
		Title: map[domain.Language]string{
			domain.LanguageEnglish:  "New bridge over the Brahmaputra opens to traffic",
			domain.LanguageAssamese: "ব্ৰহ্মপুত্ৰৰ ওপৰত নতুন দলং মুকলি",
		},
		Image: "https://picsum.photos/seed/bridge/300/200",
		Date:  "2 days ago",
	},
	{
		Title: map[domain.Language]string{
			domain.LanguageEnglish:  "Free health camp in Dispur this Sunday",
			domain.LanguageAssamese: "দিশপুৰত দেওবাৰে বিনামূলীয়া স্বাস্থ্য শিবিৰ",
		},
		Image: "https://picsum.photos/seed/health/300/200",
		Date:  "5 days ago",
	},
	{
		Title: map[domain.Language]string{
			domain.LanguageEnglish:  "Smart city roads project enters phase two",
			domain.LanguageAssamese: "স্মাৰ্ট চিটি পথ প্ৰকল্পৰ দ্বিতীয় পৰ্যায় আৰম্ভ",
		},
		Image: "https://picsum.photos/seed/roads/300/200",
		Date:  "1 week ago",
	},
}

func (m marketingItem) title(lang domain.Language) string {
	if t, ok := m.Title[lang]; ok {
		return t
	}
	return m.Title[domain.LanguageEnglish]
}

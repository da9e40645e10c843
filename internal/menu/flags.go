package menu

// countryFlags covers the countries Mullvad operates exit nodes in.
var countryFlags = map[string]string{
	"Albania":        "🇦🇱",
	"Australia":      "🇦🇺",
	"Austria":        "🇦🇹",
	"Belgium":        "🇧🇪",
	"Brazil":         "🇧🇷",
	"Bulgaria":       "🇧🇬",
	"Canada":         "🇨🇦",
	"Chile":          "🇨🇱",
	"Colombia":       "🇨🇴",
	"Croatia":        "🇭🇷",
	"Czech Republic": "🇨🇿",
	"Denmark":        "🇩🇰",
	"Estonia":        "🇪🇪",
	"Finland":        "🇫🇮",
	"France":         "🇫🇷",
	"Germany":        "🇩🇪",
	"Greece":         "🇬🇷",
	"Hong Kong":      "🇭🇰",
	"Hungary":        "🇭🇺",
	"Indonesia":      "🇮🇩",
	"Ireland":        "🇮🇪",
	"Israel":         "🇮🇱",
	"Italy":          "🇮🇹",
	"Japan":          "🇯🇵",
	"Latvia":         "🇱🇻",
	"Mexico":         "🇲🇽",
	"Netherlands":    "🇳🇱",
	"New Zealand":    "🇳🇿",
	"Norway":         "🇳🇴",
	"Poland":         "🇵🇱",
	"Portugal":       "🇵🇹",
	"Romania":        "🇷🇴",
	"Serbia":         "🇷🇸",
	"Singapore":      "🇸🇬",
	"Slovakia":       "🇸🇰",
	"Slovenia":       "🇸🇮",
	"South Africa":   "🇿🇦",
	"Spain":          "🇪🇸",
	"Sweden":         "🇸🇪",
	"Switzerland":    "🇨🇭",
	"Thailand":       "🇹🇭",
	"Turkey":         "🇹🇷",
	"UK":             "🇬🇧",
	"Ukraine":        "🇺🇦",
	"USA":            "🇺🇸",
}

// CountryFlag returns the flag glyph for an exact country name, or a
// placeholder for countries not in the table.
func CountryFlag(country string) string {
	if flag, ok := countryFlags[country]; ok {
		return flag
	}
	return IconFlagMiss
}

package rankings

// countryLabels maps supported alpha-3 country codes to a display label.
// Loaded once; never mutated.
var countryLabels = map[string]string{
	"EGY": "🇪🇬 Egypt",
	"NZL": "🇳🇿 New Zealand",
	"ENG": "🇬🇧 England",
	"PER": "🇵🇪 Peru",
	"FRA": "🇫🇷 France",
	"WAL": "🏴󠁧󠁢󠁷󠁬󠁳󠁿 Wales",
	"COL": "🇨🇴 Colombia",
	"IND": "🇮🇳 India",
	"SUI": "🇨🇭 Switzerland",
	"GER": "🇩🇪 Germany",
	"USA": "🇺🇸 United States",
	"QAT": "🇶🇦 Qatar",
	"SCO": "🏴󠁧󠁢󠁳󠁣󠁴󠁿 Scotland",
	"MEX": "🇲🇽 Mexico",
	"ESP": "🇪🇸 Spain",
	"HKG": "🇭🇰 Hong-Kong",
	"PAK": "🇵🇰 Pakistan",
	"HUN": "🇭🇺 Hungary",
	"POR": "🇵🇹 Portugal",
	"ARG": "🇦🇷 Argentina",
	"CAN": "🇨🇦 Canada",
	"MAS": "🇲🇾 Malaysia",
	"JPN": "🇯🇵 Japan",
	"GUA": "🇬🇹 Guatemala",
	"BEL": "🇧🇪 Belgium",
	"RSA": "🇿🇦 South Africa",
}

// EmojiForRank returns the icon emoji for a player at the given rank. Ranks
// outside the podium (including zero and negative values) share one icon.
func EmojiForRank(rank int) string {
	switch rank {
	case 1:
		return "🏅"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "👤"
	}
}

// CountryLabel returns a flag-and-name label for a supported alpha-3 country
// code. Unknown codes are returned unchanged.
func CountryLabel(code string) string {
	if label, ok := countryLabels[code]; ok {
		return label
	}
	return code
}

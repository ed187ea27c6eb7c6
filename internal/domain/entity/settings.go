package entity

// Settings are the global site toggles persisted in db/settings.json.
type Settings struct {
	ShowPrices bool `json:"showPrices"`
}

// DefaultSettings applies when settings.json is missing or unreadable.
func DefaultSettings() Settings {
	return Settings{ShowPrices: true}
}

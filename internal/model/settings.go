package model

// Settings is the single global settings document. Created once with
// defaults when absent remotely, then mutated via merge-patch.
type Settings struct {
	Language       string `json:"language"`
	Currency       string `json:"currency"`
	Theme          string `json:"theme"` // light | dark
	DashboardTheme string `json:"dashboardTheme"`
}

// DefaultSettings is the bundled baseline used to seed a fresh store.
func DefaultSettings() Settings {
	return Settings{
		Language:       "uz",
		Currency:       "UZS",
		Theme:          "light",
		DashboardTheme: "classic",
	}
}

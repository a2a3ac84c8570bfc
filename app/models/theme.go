package models

// ThemeSettings is the per-tenant visual theme, a singleton like
// SiteSettings. MenuOpacity is a string encoded float between 0 and 1 and
// BorderRadius is a CSS length, both passed through to the client untouched.
type ThemeSettings struct {
	ID            int    `json:"id,omitempty"`
	PrimaryColor  string `json:"primaryColor"`
	FontFamily    string `json:"fontFamily"`
	MenuTextColor string `json:"menuTextColor"`
	MenuBgColor   string `json:"menuBgColor"`
	MenuOpacity   string `json:"menuOpacity"`
	BorderRadius  string `json:"borderRadius"`
	Appearance    string `json:"appearance"`
}

type InsertThemeSettings struct {
	PrimaryColor  string `json:"primaryColor" validate:"required"`
	FontFamily    string `json:"fontFamily" validate:"required"`
	MenuTextColor string `json:"menuTextColor" validate:"required"`
	MenuBgColor   string `json:"menuBgColor" validate:"required"`
	MenuOpacity   string `json:"menuOpacity" validate:"required"`
	BorderRadius  string `json:"borderRadius" validate:"required"`
	Appearance    string `json:"appearance" validate:"required,oneof=light dark system"`
}

// DefaultThemeSettings is served until an admin saves a theme.
func DefaultThemeSettings() ThemeSettings {
	return ThemeSettings{
		PrimaryColor:  "#007AFF",
		FontFamily:    "system-ui",
		MenuTextColor: "#FFFFFF",
		MenuBgColor:   "#000000",
		MenuOpacity:   "0.8",
		BorderRadius:  "0.5rem",
		Appearance:    "system",
	}
}

package domain

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no theme has been persisted yet.
const DefaultTheme = ThemeLight

// Toggle switches between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsValid returns true if the theme is a known value.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

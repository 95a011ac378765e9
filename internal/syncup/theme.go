package syncup

import "strings"

// Theme is the cosmetic color tag attached to a sync-up. Serialized as its
// string name.
type Theme string

const (
	ThemeAppIndigo  Theme = "appIndigo"
	ThemeAppMagenta Theme = "appMagenta"
	ThemeAppOrange  Theme = "appOrange"
	ThemeAppPurple  Theme = "appPurple"
	ThemeAppTeal    Theme = "appTeal"
	ThemeAppYellow  Theme = "appYellow"
	ThemeBubblegum  Theme = "bubblegum"
	ThemeButtercup  Theme = "buttercup"
	ThemeLavender   Theme = "lavender"
	ThemeNavy       Theme = "navy"
	ThemeOxblood    Theme = "oxblood"
	ThemePeriwinkle Theme = "periwinkle"
	ThemePoppy      Theme = "poppy"
	ThemeSeafoam    Theme = "seafoam"
	ThemeSky        Theme = "sky"
	ThemeTan        Theme = "tan"
)

// Themes lists every theme in display order.
func Themes() []Theme {
	return []Theme{
		ThemeAppIndigo, ThemeAppMagenta, ThemeAppOrange, ThemeAppPurple,
		ThemeAppTeal, ThemeAppYellow, ThemeBubblegum, ThemeButtercup,
		ThemeLavender, ThemeNavy, ThemeOxblood, ThemePeriwinkle,
		ThemePoppy, ThemeSeafoam, ThemeSky, ThemeTan,
	}
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	for _, known := range Themes() {
		if t == known {
			return true
		}
	}
	return false
}

// Name is the human-readable form: "appOrange" renders as "Orange",
// "bubblegum" as "Bubblegum".
func (t Theme) Name() string {
	s := string(t)
	if rest, ok := strings.CutPrefix(s, "app"); ok {
		return rest
	}
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

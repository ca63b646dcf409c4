package ui

import "testing"

func TestGetThemeFallsBackToDefault(t *testing.T) {
	theme := GetTheme("NoSuchTheme")
	if theme.Name != "Nightfox" {
		t.Errorf("unknown theme should fall back to Nightfox, got %q", theme.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	if len(names) < 2 {
		t.Fatalf("expected multiple themes, got %d", len(names))
	}

	seen := map[string]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}

	if current != names[0] {
		t.Errorf("cycle should wrap back to %q, got %q", names[0], current)
	}
	for _, name := range names {
		if !seen[name] {
			t.Errorf("cycle never visited theme %q", name)
		}
	}
}

func TestNextThemeUnknownResetsToFirst(t *testing.T) {
	if got := NextTheme("NoSuchTheme"); got != ThemeNames()[0] {
		t.Errorf("NextTheme(unknown) = %q, want %q", got, ThemeNames()[0])
	}
}

func TestThemesCoverCatalogCategories(t *testing.T) {
	categories := []string{"electronics", "jewelery", "men's clothing", "women's clothing"}

	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, category := range categories {
			if theme.CategoryColors[category] == "" {
				t.Errorf("theme %q missing color for category %q", name, category)
			}
		}
	}
}

func TestCategoryStyleFallsBackToMuted(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()
	if got := styles.CategoryColor("groceries"); got != GetTheme("Nightfox").Muted {
		t.Errorf("unknown category color = %q, want muted %q", got, GetTheme("Nightfox").Muted)
	}
	if got := styles.CategoryColor("Electronics"); got == GetTheme("Nightfox").Muted {
		t.Errorf("category lookup should be case-insensitive")
	}
}

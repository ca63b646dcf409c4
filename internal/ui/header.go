package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the navigation bar: app name, view tabs, the live
// wishlist count, and the catalog host.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var parts []string

	parts = append(parts, bg.Render("wishlet", styles.Logo))

	productsLabel := "Products"
	wishlistLabel := "Wishlist"
	// The count appears only once the persisted wishlist has loaded, so
	// the first paint never shows a number the snapshot may contradict.
	if n := m.wishCount(); n > 0 {
		wishlistLabel = fmt.Sprintf("Wishlist (%d)", n)
	}

	parts = append(parts, m.renderTab(productsLabel, m.currentView == ViewProducts, styles, bg))
	parts = append(parts, m.renderTab(wishlistLabel, m.currentView == ViewWishlist, styles, bg))
	if m.currentView == ViewDetail {
		parts = append(parts, bg.Render("Detail", styles.AccentText.Bold(true)))
	}

	if m.apiHost != "" {
		parts = append(parts, bg.Render(m.apiHost, styles.FaintText))
	}

	content := bg.Join(parts, "  ")
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Space() + content)
}

func (m Model) renderTab(label string, active bool, styles Styles, bg BgStyle) string {
	if active {
		return bg.Render(label, styles.AccentText.Bold(true))
	}
	return bg.Render(label, styles.MutedText)
}

// renderCommandBar renders context-sensitive key hints below the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.filterMode {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.Surface)).
			Width(m.width).
			Render(bg.Space() + m.filterInput.View())
	}

	var hints string
	switch m.currentView {
	case ViewProducts:
		hints = "j/k move  enter detail  space ♥  / filter  w wishlist  h help  q quit"
	case ViewDetail:
		hints = "j/k scroll  space ♥  r reload  esc back  h help  q quit"
	case ViewWishlist:
		hints = "j/k move  enter detail  x remove  p products  h help  q quit"
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Render(bg.Space() + bg.Render(hints, styles.FaintText))
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderWishlist renders the saved-products view. It reads only the store;
// nothing is fetched.
func (m Model) renderWishlist() string {
	styles := m.theme.Styles()

	if !m.hydrated {
		// Mirror the listing's loading treatment while the persisted
		// snapshot is being restored.
		return m.renderCentered(m.spinner.View() + " " + styles.MutedText.Render("Loading wishlist..."))
	}

	items := m.wishlistItems()
	if len(items) == 0 {
		return m.renderCentered(lipgloss.JoinVertical(lipgloss.Center,
			styles.FaintText.Render("♥"),
			"",
			styles.Text.Bold(true).Render("Your wishlist is empty"),
			styles.MutedText.Render("Add some products to your wishlist to see them here."),
			"",
			styles.FaintText.Render("p browse products"),
		))
	}

	var b strings.Builder
	title := styles.Text.Bold(true).Render("My Wishlist") + " " +
		styles.MutedText.Render(fmt.Sprintf("(%d %s)", len(items), pluralize(len(items), "item", "items")))
	b.WriteString(" " + title)
	b.WriteString("\n")

	visible := max(m.contentHeight()-1, 1)
	start := m.scrollOffset(m.wishRow, len(items), visible)
	for i := start; i < len(items) && i < start+visible; i++ {
		b.WriteString(m.renderProductRow(items[i], i == m.wishRow))
		if i < len(items)-1 && i < start+visible-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mzsombor/wishlet/internal/catalog"
)

// renderProducts renders the product listing view.
func (m Model) renderProducts() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	switch m.listState {
	case fetchLoading:
		return m.renderCentered(m.spinner.View() + " " + styles.MutedText.Render("Loading products..."))

	case fetchError:
		return m.renderCentered(lipgloss.JoinVertical(lipgloss.Center,
			styles.DangerText.Render("Error: failed to load products"),
			"",
			styles.MutedText.Render("r reload"),
		))
	}

	products := m.filteredProducts()
	if len(products) == 0 {
		if m.filter != "" {
			return m.renderCentered(lipgloss.JoinVertical(lipgloss.Center,
				styles.MutedText.Render(fmt.Sprintf("No products match %q", m.filter)),
				"",
				styles.FaintText.Render("esc clear filter"),
			))
		}
		return m.renderCentered(styles.MutedText.Render("No products"))
	}

	var b strings.Builder
	b.WriteString(m.renderListTitle(len(products), len(m.products)))
	b.WriteString("\n")

	visible := max(height-1, 1)
	start := m.scrollOffset(m.selectedRow, len(products), visible)
	for i := start; i < len(products) && i < start+visible; i++ {
		b.WriteString(m.renderProductRow(products[i], i == m.selectedRow))
		if i < len(products)-1 && i < start+visible-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderListTitle renders the "Products (n)" heading with an optional
// filter indicator.
func (m Model) renderListTitle(visible, total int) string {
	styles := m.theme.Styles()

	count := fmt.Sprintf("(%d)", visible)
	if total > 0 && visible != total {
		count = fmt.Sprintf("(%d/%d)", visible, total)
	}

	title := styles.Text.Bold(true).Render("Products") + " " + styles.MutedText.Render(count)
	if pattern := strings.TrimSpace(m.filter); pattern != "" {
		title += "  " + styles.AccentText.Render("/"+truncate(pattern, 18))
	}
	return " " + title
}

// renderProductRow renders one product line: wishlist gutter, id, title,
// category, and price.
func (m Model) renderProductRow(p catalog.Product, selected bool) string {
	styles := m.theme.Styles()

	heart := " "
	if m.wishlisted(p.ID) {
		heart = "♥"
	}

	priceWidth := 10
	categoryWidth := 18
	titleWidth := max(m.width-priceWidth-categoryWidth-9, 10)

	id := fmt.Sprintf("#%-4d", p.ID)
	title := padRight(truncate(p.Title, titleWidth), titleWidth)
	category := padRight(truncate(titleCase(p.Category), categoryWidth), categoryWidth)
	price := fmt.Sprintf("%*s", priceWidth, formatPrice(p.Price))

	if selected {
		content := fmt.Sprintf(" %s %s %s %s %s", heart, id, title, category, price)
		return styles.Selected.Width(m.width).Render(content)
	}

	heartStyled := ternary(heart == "♥", styles.DangerText.Render(heart), " ")
	categoryStyled := lipgloss.NewStyle().
		Foreground(lipgloss.Color(styles.CategoryColor(p.Category))).
		Render(category)

	return " " + heartStyled + " " +
		styles.FaintText.Render(id) + " " +
		styles.Text.Render(title) + " " +
		categoryStyled + " " +
		styles.Text.Bold(true).Render(price)
}

// scrollOffset returns the first visible row index so the cursor stays in
// the window.
func (m Model) scrollOffset(cursor, total, visible int) int {
	if total <= visible {
		return 0
	}
	start := cursor - visible + 1
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start
}

// renderCentered places content in the middle of the content area.
func (m Model) renderCentered(content string) string {
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, content)
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDetail renders the product detail view.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()

	switch m.detailState {
	case fetchLoading:
		return m.renderCentered(m.spinner.View() + " " + styles.MutedText.Render("Loading product..."))

	case fetchError:
		if m.detailNotFound {
			back := "esc back to products"
			if m.returnView == ViewWishlist {
				back = "esc back to wishlist"
			}
			return m.renderCentered(lipgloss.JoinVertical(lipgloss.Center,
				styles.DangerText.Render("Product not found"),
				"",
				styles.MutedText.Render(back),
			))
		}
		return m.renderCentered(lipgloss.JoinVertical(lipgloss.Center,
			styles.DangerText.Render("Error: failed to load product"),
			"",
			styles.MutedText.Render("r reload  esc back"),
		))
	}

	if m.product == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.detailViewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderDetailFooter())
	return b.String()
}

// updateDetailViewport rebuilds the scrollable detail body.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	m.detailViewport.Width = m.width
	m.detailViewport.Height = max(m.contentHeight()-1, 1)
	if m.product != nil {
		m.detailViewport.SetContent(m.renderDetailContent())
	}
}

// renderDetailContent formats the product body: category badge, title,
// rating, price, and description.
func (m Model) renderDetailContent() string {
	styles := m.theme.Styles()
	p := m.product
	width := max(m.width-4, 20)

	badge := styles.CategoryStyle(p.Category).Render(titleCase(p.Category))

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Text)).
		Bold(true).
		Width(width).
		Render(p.Title)

	rating := styles.WarningText.Render(renderStars(p.Rating.Rate)) + " " +
		styles.MutedText.Render(fmt.Sprintf("%.1f (%d %s)",
			p.Rating.Rate, p.Rating.Count, pluralize(p.Rating.Count, "review", "reviews")))

	price := styles.Text.Bold(true).Render(formatPrice(p.Price))

	description := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Muted)).
		Width(width).
		Render(p.Description)

	body := lipgloss.JoinVertical(lipgloss.Left,
		badge,
		"",
		title,
		"",
		rating,
		price,
		"",
		description,
	)

	return lipgloss.NewStyle().Padding(0, 2).Render(body)
}

// renderDetailFooter renders the wishlist toggle line.
func (m Model) renderDetailFooter() string {
	styles := m.theme.Styles()

	if m.product == nil {
		return ""
	}
	if m.wishlisted(m.product.ID) {
		return " " + styles.DangerText.Render("♥ In wishlist") + "  " +
			styles.FaintText.Render("space remove from wishlist")
	}
	return " " + styles.FaintText.Render("space add to wishlist")
}

// renderStars renders a five-star rating bar, filled to the whole stars of
// the average score.
func renderStars(rate float64) string {
	filled := int(rate)
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

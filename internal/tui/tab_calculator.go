package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgetsplit/internal/cli"
	"github.com/theirongolddev/budgetsplit/internal/model"
	"github.com/theirongolddev/budgetsplit/internal/tui/components"
	"github.com/theirongolddev/budgetsplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCalculatorTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	// Header + input
	var head strings.Builder
	head.WriteString(titleStyle.Render("Kalkulator Keuangan Pribadi"))
	head.WriteString("\n")
	head.WriteString(subtitleStyle.Render("Kelola pendapatan Anda dengan aturan 50/30/20"))
	head.WriteString("\n\n")
	head.WriteString(labelStyle.Render("Pendapatan Bulanan (Rp)"))
	head.WriteString("\n")
	head.WriteString(a.input.View())
	head.WriteString("  ")
	head.WriteString(keyStyle.Render("[Enter]"))
	head.WriteString(hintStyle.Render(" Hitung"))
	b.WriteString(components.ContentCard("", head.String(), cw))
	b.WriteString("\n")

	if !a.state.Visible {
		b.WriteString(components.ContentCard("",
			hintStyle.Render("💡 Masukkan pendapatan untuk melihat hasil alokasinya."), cw))
		return b.String()
	}

	alloc := a.state.Result()

	// Row 1: allocation cards
	cards := make([]components.AllocationCard, 0, 3)
	for _, bucket := range alloc.Buckets() {
		cards = append(cards, components.AllocationCard{
			Title:    fmt.Sprintf("%s (%s)", bucket.Title, cli.FormatPercent(bucket.Percent)),
			Subtitle: bucket.Subtitle,
			Value:    cli.FormatCurrency(bucket.Amount),
			Percent:  bucket.Percent,
			Color:    theme.Active.Bucket(bucket.Category),
		})
	}
	if a.isCompactLayout() {
		for _, c := range cards {
			b.WriteString(components.RenderAllocationCard(c, cw))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(components.AllocationCardRow(cards, cw))
		b.WriteString("\n")
	}

	// Row 2: breakdown
	b.WriteString(components.ContentCard("Rincian Detail", a.renderBreakdown(alloc, cw), cw))

	return b.String()
}

// renderBreakdown lists each bucket's fixed sub-lines, in columns when the
// terminal is wide enough.
func (a App) renderBreakdown(alloc model.Allocation, cw int) string {
	t := theme.Active
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.Amount).Background(t.Surface)

	buckets := alloc.Buckets()
	innerW := components.CardInnerWidth(cw)

	cols := len(buckets)
	if a.isCompactLayout() {
		cols = 1
	}
	colWidths := components.LayoutRow(innerW, cols)

	blocks := make([]string, 0, len(buckets))
	for i, bucket := range buckets {
		colW := colWidths[i%cols]
		headStyle := lipgloss.NewStyle().Foreground(theme.Active.Bucket(bucket.Category)).Background(t.Surface).Bold(true)

		var col strings.Builder
		col.WriteString(headStyle.Render(bucket.Title))
		for _, l := range bucket.Lines {
			col.WriteString("\n")
			col.WriteString(rowStyle.Render(l.Label + ": "))
			col.WriteString(amountStyle.Render(cli.FormatCurrency(l.Amount)))
		}
		blocks = append(blocks, lipgloss.NewStyle().Width(colW).Background(t.Surface).Render(col.String()))
	}

	if cols == 1 {
		return strings.Join(blocks, "\n\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

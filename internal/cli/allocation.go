package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/budgetsplit/internal/model"
	"github.com/theirongolddev/budgetsplit/internal/pipeline"

	"gopkg.in/yaml.v3"
)

const shareBarWidth = 20

// Output formats accepted by WriteAllocation.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// RenderAllocation renders the three buckets and their breakdown as tables.
func RenderAllocation(a model.Allocation) string {
	var b strings.Builder

	rows := make([][]string, 0, 5)
	for _, bucket := range a.Buckets() {
		rows = append(rows, []string{
			fmt.Sprintf("%s (%s)", bucket.Title, FormatPercent(bucket.Percent)),
			FormatCurrency(bucket.Amount),
			RenderShareBar(bucket.Percent, shareBarWidth),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Pendapatan", FormatCurrency(a.Income), ""})

	b.WriteString(RenderTable(Table{
		Title:   "Alokasi",
		Headers: []string{"Kategori", "Jumlah", "Porsi"},
		Rows:    rows,
	}))
	b.WriteString("\n")

	var detail [][]string
	for i, bucket := range a.Buckets() {
		if i > 0 {
			detail = append(detail, []string{"---"})
		}
		for _, l := range bucket.Lines {
			detail = append(detail, []string{bucket.Title, l.Label, FormatCurrency(l.Amount)})
		}
	}

	b.WriteString(RenderTable(Table{
		Title:   "Rincian Detail",
		Headers: []string{"Kategori", "Pos", "Jumlah"},
		Rows:    detail,
	}))

	return b.String()
}

// RuleSummary is the one-line rule reminder, e.g. "50% Kebutuhan | 30% Keinginan | 20% Tabungan".
func RuleSummary() string {
	parts := make([]string, 0, len(pipeline.Plan))
	for _, p := range pipeline.Plan {
		parts = append(parts, FormatPercent(p.Percent)+" "+pipeline.ShortTitle(p.Category))
	}
	return strings.Join(parts, " | ")
}

// WriteAllocation writes a in the requested output format.
func WriteAllocation(w io.Writer, a model.Allocation, format string) error {
	switch strings.ToLower(format) {
	case OutputTable, "":
		_, err := io.WriteString(w, RenderAllocation(a))
		return err
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

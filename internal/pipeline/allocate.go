// Package pipeline turns raw income input into a 50/30/20 allocation.
package pipeline

import (
	"github.com/theirongolddev/budgetsplit/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Allocate splits income into needs, wants and savings plus their breakdown
// lines. Every amount is truncated toward zero. Breakdown lines are taken
// from the untruncated bucket value, so a line never loses precision twice.
// Negative income is treated as zero.
func Allocate(income int64) model.Allocation {
	if income < 0 {
		income = 0
	}

	base := decimal.NewFromInt(income)
	out := model.Allocation{Income: income}

	for _, p := range Plan {
		share := percentOf(base, p.Percent)
		b := model.Bucket{
			Category: p.Category,
			Title:    p.Title,
			Subtitle: p.Subtitle,
			Percent:  p.Percent,
			Amount:   share.IntPart(),
			Lines:    make([]model.Line, 0, len(p.Lines)),
		}
		for _, lp := range p.Lines {
			b.Lines = append(b.Lines, model.Line{
				Key:     lp.Key,
				Label:   lp.Label,
				Percent: lp.Percent,
				Amount:  percentOf(share, lp.Percent).IntPart(),
			})
		}

		switch p.Category {
		case model.CategoryNeeds:
			out.Needs = b
		case model.CategoryWants:
			out.Wants = b
		case model.CategorySavings:
			out.Savings = b
		}
	}

	return out
}

// percentOf returns d * pct / 100 without rounding.
func percentOf(d decimal.Decimal, pct int) decimal.Decimal {
	return d.Mul(decimal.NewFromInt(int64(pct))).Div(hundred)
}

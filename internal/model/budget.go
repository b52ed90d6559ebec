// Package model defines domain types for the 50/30/20 budget split.
package model

// Category identifies one of the three top-level budget buckets.
type Category string

const (
	CategoryNeeds   Category = "needs"
	CategoryWants   Category = "wants"
	CategorySavings Category = "savings"
)

// Line is one named sub-portion of a bucket.
type Line struct {
	Key     string `json:"key" yaml:"key"`
	Label   string `json:"label" yaml:"label"`
	Percent int    `json:"percent" yaml:"percent"` // share of the parent bucket
	Amount  int64  `json:"amount" yaml:"amount"`
}

// Bucket is one top-level allocation with its breakdown lines.
type Bucket struct {
	Category Category `json:"category" yaml:"category"`
	Title    string   `json:"title" yaml:"title"`
	Subtitle string   `json:"subtitle" yaml:"subtitle"`
	Percent  int      `json:"percent" yaml:"percent"` // share of income
	Amount   int64    `json:"amount" yaml:"amount"`
	Lines    []Line   `json:"lines" yaml:"lines"`
}

// Allocation is the derived split of one income figure.
// It is a value: recompute it rather than mutating it.
type Allocation struct {
	Income  int64  `json:"income" yaml:"income"`
	Needs   Bucket `json:"needs" yaml:"needs"`
	Wants   Bucket `json:"wants" yaml:"wants"`
	Savings Bucket `json:"savings" yaml:"savings"`
}

// Buckets returns the three buckets in display order.
func (a Allocation) Buckets() []Bucket {
	return []Bucket{a.Needs, a.Wants, a.Savings}
}

// Allocated returns the sum of the three bucket amounts. It can fall short
// of Income by up to two units because each bucket truncates independently.
func (a Allocation) Allocated() int64 {
	return a.Needs.Amount + a.Wants.Amount + a.Savings.Amount
}


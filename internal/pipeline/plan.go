package pipeline

import "github.com/theirongolddev/budgetsplit/internal/model"

// linePlan is a fixed sub-portion of a bucket, as a percent of the bucket.
type linePlan struct {
	Key     string
	Label   string
	Percent int
}

// bucketPlan is a fixed top-level split, as a percent of income.
type bucketPlan struct {
	Category model.Category
	Title    string
	Subtitle string
	Percent  int
	Lines    []linePlan
}

// Plan is the 50/30/20 rule. Sub-lines intentionally do not sum to 100%;
// the remainder of each bucket is left unassigned.
var Plan = [3]bucketPlan{
	{
		Category: model.CategoryNeeds,
		Title:    "Kebutuhan Pokok",
		Subtitle: "Perumahan, makanan, utilitas, transportasi",
		Percent:  50,
		Lines: []linePlan{
			{Key: "housing", Label: "Perumahan", Percent: 35},
			{Key: "food", Label: "Makanan", Percent: 25},
			{Key: "transport", Label: "Transportasi", Percent: 15},
		},
	},
	{
		Category: model.CategoryWants,
		Title:    "Keinginan",
		Subtitle: "Makan di luar, hiburan, hobi, liburan",
		Percent:  30,
		Lines: []linePlan{
			{Key: "dining_out", Label: "Makan di luar", Percent: 35},
			{Key: "entertainment", Label: "Hiburan", Percent: 30},
		},
	},
	{
		Category: model.CategorySavings,
		Title:    "Tabungan",
		Subtitle: "Dana darurat, investasi, pelunasan utang",
		Percent:  20,
		Lines: []linePlan{
			{Key: "emergency_fund", Label: "Dana Darurat", Percent: 40},
			{Key: "investment", Label: "Investasi", Percent: 40},
		},
	},
}

// ShortTitle returns the footer label for a category
// ("Kebutuhan" rather than "Kebutuhan Pokok").
func ShortTitle(c model.Category) string {
	switch c {
	case model.CategoryNeeds:
		return "Kebutuhan"
	case model.CategoryWants:
		return "Keinginan"
	case model.CategorySavings:
		return "Tabungan"
	default:
		return string(c)
	}
}

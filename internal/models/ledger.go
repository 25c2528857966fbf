package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	EntryTypeExpense = "expense"
	EntryTypeIncome  = "income"
)

// SplitCategoryTags splits a denormalized comma-joined categories column
// into tag names. An empty column yields an empty list, never [""].
func SplitCategoryTags(categories string) []string {
	if categories == "" {
		return []string{}
	}
	return strings.Split(categories, ",")
}

// JoinCategoryTags is the inverse of SplitCategoryTags
func JoinCategoryTags(tags []string) string {
	return strings.Join(tags, ",")
}

// SanitizeAmount strips every character outside [0-9.] from a free-form
// amount field. "1,234.56abc" becomes "1234.56". No currency or locale
// parsing happens beyond this.
func SanitizeAmount(amount string) string {
	var b strings.Builder
	b.Grow(len(amount))
	for _, r := range amount {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAmount converts a stored decimal-as-string to a decimal value.
// Unparseable amounts count as zero, matching how the original coerced
// malformed strings during summation.
func ParseAmount(amount string) decimal.Decimal {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return d
}

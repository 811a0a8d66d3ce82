package engine

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// kr formats a kronur amount with thousands separators for narration.
func kr(v int64) string {
	return humanize.Comma(v)
}

// pct formats a rate like 0.42 as "42%".
func pct(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}

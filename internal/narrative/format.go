package narrative

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// missingMarker is what prompts show for an absent figure. The model is
// instructed to acknowledge these rather than invent numbers.
const missingMarker = "정보없음"

var won = message.NewPrinter(language.Korean)

// formatWon renders an amount with thousand separators, or the missing
// marker when absent.
func formatWon(v *int64) string {
	if v == nil {
		return missingMarker
	}
	return won.Sprintf("%d", *v)
}

// formatApprox renders an amount in units of 조 (trillion) or 억 (hundred
// million) won, falling back to separators below 1억 and to the missing
// marker for absent or zero values.
func formatApprox(v *int64) string {
	if v == nil || *v == 0 {
		return missingMarker
	}
	abs := math.Abs(float64(*v))
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%.1f조", float64(*v)/1e12)
	case abs >= 1e8:
		return fmt.Sprintf("%.0f억", float64(*v)/1e8)
	default:
		return won.Sprintf("%d", *v)
	}
}

// formatRatio renders a percentage ratio, or the missing marker.
func formatRatio(v *float64) string {
	if v == nil {
		return missingMarker
	}
	return fmt.Sprintf("%.2f", *v)
}

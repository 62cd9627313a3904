// Package countdown converts the delta between a target instant and "now"
// into a display value for a selected unit.
package countdown

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrijs2005/timeflux/internal/client/models"
)

// Projection is the presentation-ready remaining time for one card.
//
// Value is formatted per unit: days and hours with one decimal place,
// minutes and seconds as locale-grouped integers. IsPast is computed from
// the unclamped delta, so a target exactly at "now" already counts as ended
// even though Value never goes negative.
type Projection struct {
	Value  string
	IsPast bool
}

// printer groups integers per the display locale (e.g. 90,061).
var printer = message.NewPrinter(language.SimplifiedChinese)

// Project converts target-now into a Projection for the given unit. All
// cards rendered in one pass must share the same now snapshot to avoid
// visible skew between them.
func Project(target, now time.Time, unit models.TimeUnit) Projection {
	delta := target.Sub(now).Milliseconds()
	isPast := delta <= 0
	if delta < 0 {
		delta = 0
	}

	var value string
	switch unit {
	case models.UnitDays:
		value = fmt.Sprintf("%.1f", float64(delta)/86_400_000)
	case models.UnitHours:
		value = fmt.Sprintf("%.1f", float64(delta)/3_600_000)
	case models.UnitMinutes:
		value = printer.Sprintf("%d", delta/60_000)
	case models.UnitSeconds:
		value = printer.Sprintf("%d", delta/1_000)
	default:
		value = "0"
	}

	return Projection{Value: value, IsPast: isPast}
}

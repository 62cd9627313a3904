// Package timeline merges the holiday and custom event collections into one
// ordered view. View is a pure function; it never mutates its inputs.
package timeline

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/timeflux/internal/client/models"
)

// View concatenates both collections and sorts the result under the selected
// comparator. The sort is stable: ties preserve relative input order
// (holidays first, then customs, each in input order).
//
// Comparators:
//   - DateAscending: target instant, earliest first. An unparseable date
//     sorts as the zero instant.
//   - TitleAscending: simplified-Chinese collation of titles.
//   - CreatedDescending: createdAt, newest first. Legacy records share
//     createdAt 0 and keep input order; see the package tests.
func View(holidays, customs []models.Event, sortBy models.SortOption) []models.Event {
	merged := make([]models.Event, 0, len(holidays)+len(customs))
	merged = append(merged, holidays...)
	merged = append(merged, customs...)

	switch sortBy {
	case models.SortTitleAscending:
		c := collate.New(language.SimplifiedChinese)
		sort.SliceStable(merged, func(i, j int) bool {
			return c.CompareString(merged[i].Title, merged[j].Title) < 0
		})
	case models.SortCreatedDesc:
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].CreatedAt > merged[j].CreatedAt
		})
	default: // models.SortDateAscending
		type dated struct {
			ev     models.Event
			target time.Time
		}
		items := make([]dated, len(merged))
		for i, e := range merged {
			// Unparseable dates sort as the zero instant.
			t, _ := e.Target()
			items[i] = dated{ev: e, target: t}
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].target.Before(items[j].target)
		})
		for i := range items {
			merged[i] = items[i].ev
		}
	}
	return merged
}

package provider

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/timeflux/internal/client/models"
)

// springFestivalDates maps a calendar year to the lunar new year start date
// ("MM-DD"). The festival moves with the lunar calendar, so it cannot be
// derived arithmetically here.
var springFestivalDates = map[int]string{
	2024: "02-10",
	2025: "01-29",
	2026: "02-17",
	2027: "02-06",
}

// FallbackHolidays returns a fixed set of five well-known holidays, each
// projected to its next occurrence after now and sorted ascending by date.
// It needs no external dependencies and is fully determined by now.
func FallbackHolidays(now time.Time) []models.Event {
	created := now.UnixMilli()

	events := []models.Event{
		{
			ID:          "mock-sf",
			Title:       "春节",
			Date:        nextSpringFestival(now),
			Kind:        models.KindHoliday,
			Color:       ColorFor("春节"),
			Description: "中国农历新年，是中华民族最重要的传统节日",
			CreatedAt:   created,
			Category:    models.CategoryPublic,
			DaysOff:     7,
			Traditions:  []string{"贴春联", "放鞭炮", "吃年夜饭", "发红包"},
			Greeting:    "恭喜发财，新年快乐！",
		},
		{
			ID:          "mock-ld",
			Title:       "劳动节",
			Date:        nextFixedDate(now, 5, 1),
			Kind:        models.KindHoliday,
			Color:       ColorFor("劳动节"),
			Description: "国际劳动节，纪念全世界劳动人民的节日",
			CreatedAt:   created,
			Category:    models.CategoryPublic,
			DaysOff:     5,
			Traditions:  []string{"休假出游", "劳动表彰"},
			Greeting:    "劳动节快乐！",
		},
		{
			ID:          "mock-nd",
			Title:       "国庆节",
			Date:        nextFixedDate(now, 10, 1),
			Kind:        models.KindHoliday,
			Color:       ColorFor("国庆节"),
			Description: "中华人民共和国国庆节，庆祝新中国成立",
			CreatedAt:   created,
			Category:    models.CategoryPublic,
			DaysOff:     7,
			Traditions:  []string{"升国旗", "阅兵", "国庆出游"},
			Greeting:    "国庆节快乐，祖国万岁！",
		},
		{
			ID:          "mock-zq",
			Title:       "中秋节",
			Date:        nextFixedDate(now, 9, 17), // approximate, moves with the lunar calendar
			Kind:        models.KindHoliday,
			Color:       ColorFor("中秋节"),
			Description: "团圆佳节，寄托着对家人团聚的美好祝愿",
			CreatedAt:   created,
			Category:    models.CategoryPublic,
			DaysOff:     3,
			Traditions:  []string{"赏月", "吃月饼", "猜灯谜"},
			Greeting:    "中秋快乐，阖家团圆！",
		},
		{
			ID:          "mock-dw",
			Title:       "端午节",
			Date:        nextFixedDate(now, 5, 31), // approximate, moves with the lunar calendar
			Kind:        models.KindHoliday,
			Color:       ColorFor("端午节"),
			Description: "纪念屈原的传统节日，驱邪避瘟保健康",
			CreatedAt:   created,
			Category:    models.CategoryPublic,
			DaysOff:     3,
			Traditions:  []string{"赛龙舟", "吃粽子", "挂艾草"},
			Greeting:    "端午安康！",
		},
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	return events
}

// nextFixedDate returns the next occurrence of month/day after now, as an
// Event.Date value at midnight.
func nextFixedDate(now time.Time, month, day int) string {
	year := now.Year()
	candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if !candidate.After(now) {
		year++
	}
	return fmt.Sprintf("%04d-%02d-%02dT00:00:00", year, month, day)
}

// nextSpringFestival returns the next lunar new year date after now, falling
// back to an approximate late-January date for years beyond the table.
func nextSpringFestival(now time.Time) string {
	year := now.Year()
	if md, ok := springFestivalDates[year]; ok {
		candidate, err := time.ParseInLocation("2006-01-02", fmt.Sprintf("%04d-%s", year, md), now.Location())
		if err == nil && candidate.After(now) {
			return fmt.Sprintf("%04d-%sT00:00:00", year, md)
		}
	}
	md, ok := springFestivalDates[year+1]
	if !ok {
		md = "01-29"
	}
	return fmt.Sprintf("%04d-%sT00:00:00", year+1, md)
}

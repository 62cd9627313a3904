package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/timeflux/internal/client/countdown"
	"github.com/dmitrijs2005/timeflux/internal/client/models"
)

func unitLabel(u models.TimeUnit) string {
	switch u {
	case models.UnitHours:
		return "小时"
	case models.UnitMinutes:
		return "分钟"
	case models.UnitSeconds:
		return "秒"
	default:
		return "天"
	}
}

func kindLabel(k models.Kind) string {
	if k == models.KindHoliday {
		return "节假日"
	}
	return "个人"
}

func categoryLabel(c models.HolidayCategory) string {
	switch c {
	case models.CategoryPublic:
		return "法定假日"
	case models.CategoryTraditional:
		return "传统节日"
	case models.CategoryMemorial:
		return "纪念日"
	default:
		return ""
	}
}

// renderEvent formats one countdown card as text. All cards in a pass must
// share the same now snapshot.
func renderEvent(e models.Event, now time.Time, unit models.TimeUnit) string {
	remaining := "?"
	if target, err := e.Target(); err == nil {
		p := countdown.Project(target, now, unit)
		if p.IsPast {
			remaining = "已结束"
		} else {
			remaining = p.Value + " " + unitLabel(unit)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s  %s  %s  (%s)", kindLabel(e.Kind), e.Title, e.Date, remaining, e.ID)

	if e.Kind == models.KindHoliday {
		var details []string
		if label := categoryLabel(e.Category); label != "" {
			details = append(details, label)
		}
		if e.DaysOff > 0 {
			details = append(details, fmt.Sprintf("放假 %d 天", e.DaysOff))
		}
		if len(e.Traditions) > 0 {
			details = append(details, strings.Join(e.Traditions, "、"))
		}
		if e.Greeting != "" {
			details = append(details, "“"+e.Greeting+"”")
		}
		if len(details) > 0 {
			fmt.Fprintf(&b, "\n    %s", strings.Join(details, " | "))
		}
	}
	if e.Kind == models.KindCustom && e.Description != "" {
		fmt.Fprintf(&b, "\n    %s", e.Description)
	}

	return b.String()
}

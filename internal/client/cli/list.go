package cli

import (
	"context"

	"github.com/dmitrijs2005/timeflux/internal/client/timeline"
)

func (a *App) List(ctx context.Context) error {
	holidays := a.holidaySvc.GetHolidays(ctx, false)
	customs := a.eventSvc.Load(ctx)
	sortBy, unit := a.viewOptions()

	view := timeline.View(holidays, customs, sortBy)
	if len(view) == 0 {
		printlnFn("暂无倒计时，使用 add 创建第一个")
		return nil
	}

	now := a.Now()
	for _, e := range view {
		printlnFn(renderEvent(e, now, unit))
	}
	return nil
}

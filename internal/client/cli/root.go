package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	sortBy, unit := a.viewOptions()
	return fmt.Sprintf("(%s/%s)", sortBy, unit)
}

func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to TimeFlux CLI (type 'help' for commands)")

	if err := a.StartBackgroundTasks(ctx); err != nil {
		a.log.Error(ctx, "background tasks not started", "error", err)
	}

	// Warm the holiday cache before the first prompt; a fresh cache makes
	// this a local read.
	a.holidaySvc.GetHolidays(ctx, false)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

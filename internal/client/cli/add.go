package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dmitrijs2005/timeflux/internal/common"
)

// eventColors maps the color names offered to the user to presentation
// tokens. Tokens are opaque to the core.
var eventColors = map[string]string{
	"sunset": "from-orange-500 to-red-500",
	"ocean":  "from-blue-500 to-cyan-500",
	"forest": "from-emerald-500 to-green-500",
	"berry":  "from-pink-500 to-rose-500",
	"royal":  "from-violet-500 to-purple-500",
	"gold":   "from-yellow-400 to-amber-500",
}

const defaultEventColor = "sunset"

func colorNames() string {
	names := make([]string, 0, len(eventColors))
	for name := range eventColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "/")
}

func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	date, err := GetSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	timeOfDay, err := GetSimpleText(a.reader, "Time (HH:MM, empty for midnight)", os.Stdout)
	if err != nil {
		return err
	}
	colorName, err := GetSimpleText(a.reader, fmt.Sprintf("Color (%s, empty for %s)", colorNames(), defaultEventColor), os.Stdout)
	if err != nil {
		return err
	}

	if colorName == "" {
		colorName = defaultEventColor
	}
	color, ok := eventColors[colorName]
	if !ok {
		printlnFn("Unknown color: " + colorName)
		return nil
	}

	event, err := a.eventSvc.Add(ctx, title, date, timeOfDay, color)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			printlnFn("Rejected: " + err.Error())
			return nil
		}
		a.log.Error(ctx, "adding event", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Created %s (%s)", event.Title, event.ID))
	return nil
}

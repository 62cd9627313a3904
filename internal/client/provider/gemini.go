package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/dmitrijs2005/timeflux/internal/client/models"
	"github.com/dmitrijs2005/timeflux/internal/common"
	"github.com/dmitrijs2005/timeflux/internal/timex"
)

// Gemini fetches upcoming holidays from the Gemini API using a structured
// JSON response schema, so the reply can be unmarshalled directly.
type Gemini struct {
	client *genai.Client
	model  string
	clock  timex.Clock
}

// holidayRecord mirrors the response schema requested from the model.
type holidayRecord struct {
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	HolidayType string   `json:"holidayType"`
	DaysOff     int      `json:"daysOff"`
	Traditions  []string `json:"traditions"`
	Greetings   string   `json:"greetings"`
}

// NewGemini creates the remote provider. model is e.g. "gemini-2.5-flash".
func NewGemini(ctx context.Context, apiKey, model string, clock timex.Clock) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Gemini{client: client, model: model, clock: clock}, nil
}

func (g *Gemini) Fetch(ctx context.Context) ([]models.Event, error) {
	now := g.clock.Now()
	today := now.Format("2006-01-02")

	prompt := fmt.Sprintf(`You are a helpful Chinese calendar expert. Identify the next 5 major Chinese holidays (public holidays and traditional festivals) occurring strictly after today's date: %s.

For each holiday, provide:
- name: Official Chinese name (Simplified Chinese)
- date: The start date in YYYY-MM-DD format
- description: A brief description explaining the significance (in Chinese, 20-40 characters)
- holidayType: One of "public", "traditional", or "memorial"
- daysOff: Number of official days off (0 if not a public holiday)
- traditions: Array of 2-3 key traditions/customs (in Chinese, each 4-8 characters)
- greetings: A common greeting/blessing phrase for this holiday (in Chinese)

Return a JSON array sorted by date.`, today)

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"date":        {Type: genai.TypeString, Description: "YYYY-MM-DD format"},
					"description": {Type: genai.TypeString},
					"holidayType": {Type: genai.TypeString, Description: "public, traditional, or memorial"},
					"daysOff":     {Type: genai.TypeNumber},
					"traditions":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"greetings":   {Type: genai.TypeString},
				},
				Required: []string{"name", "date", "description", "holidayType", "daysOff", "traditions", "greetings"},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrProviderUnavailable, err)
	}

	var records []holidayRecord
	if err := json.Unmarshal([]byte(resp.Text()), &records); err != nil {
		return nil, fmt.Errorf("%w: unparseable response: %w", common.ErrProviderUnavailable, err)
	}

	return recordsToEvents(records, now), nil
}

// recordsToEvents maps remote records to holiday events. IDs embed the fetch
// instant; holiday events are wholesale-replaced on each refresh, so they
// only need to be unique within one response.
func recordsToEvents(records []holidayRecord, now time.Time) []models.Event {
	events := make([]models.Event, 0, len(records))
	for i, r := range records {
		events = append(events, models.Event{
			ID:          fmt.Sprintf("holiday-%d-%d", i, now.UnixMilli()),
			Title:       r.Name,
			Date:        r.Date + "T00:00:00",
			Description: r.Description,
			Kind:        models.KindHoliday,
			Color:       ColorFor(r.Name),
			CreatedAt:   now.UnixMilli(),
			Category:    models.HolidayCategory(r.HolidayType),
			DaysOff:     r.DaysOff,
			Traditions:  r.Traditions,
			Greeting:    r.Greetings,
		})
	}
	return events
}

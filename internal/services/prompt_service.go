package services

import (
	"fmt"
	"sort"
	"strings"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/request_models"
)

// emotionToStyles is the fixed many-to-many lookup from user emotions to soft
// style tags. Styles bias generation; they are never a hard filter.
var emotionToStyles = map[string][]string{
	"joyful":    {"activity", "hotplace", "photo", "shopping"},
	"excited":   {"date", "culture", "exotic", "landmark", "photo"},
	"ordinary":  {"nature", "healing", "quiet", "traditional"},
	"surprised": {"exotic", "landmark", "activity", "hotplace"},
	"annoyed":   {"healing", "quiet", "nature", "view"},
	"fearful":   {"culture", "traditional", "team"},
	"sad":       {"healing", "nature", "family", "culture", "quiet"},
	"angry":     {"activity", "shopping", "team", "photo"},
	"healing":   {"healing", "nature", "quiet"},
}

const scheduleSystemPrompt = "You are a helpful travel itinerary planner."

// CatalogSample is the bounded slice of catalog places embedded in the prompt.
type CatalogSample struct {
	Attractions []db_models.Place
	Meals       []db_models.Place
	Lodgings    []db_models.Place
}

func (s CatalogSample) Empty() bool {
	return len(s.Attractions) == 0 && len(s.Meals) == 0 && len(s.Lodgings) == 0
}

type PromptServiceInterface interface {
	MapEmotionsToStyles(emotions []string) []string
	BuildSchedulePrompt(req request_models.ScheduleCreateRequest, sample CatalogSample, dayCount int) string
	BuildEntryFeePrompt(placeName string) string
	BuildBudgetCommentPrompt(totalBudget int, regions []string, days, peopleCount int) string
	BuildQuickBudgetPrompt(startCity, endCity string, days, peopleCount int) string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// MapEmotionsToStyles unions the style sets of every supplied emotion.
// Unknown emotions contribute nothing. Output is sorted for stable prompts.
func (p *PromptService) MapEmotionsToStyles(emotions []string) []string {
	seen := make(map[string]bool)
	for _, emotion := range emotions {
		for _, style := range emotionToStyles[strings.ToLower(strings.TrimSpace(emotion))] {
			seen[style] = true
		}
	}

	styles := make([]string, 0, len(seen))
	for style := range seen {
		styles = append(styles, style)
	}
	sort.Strings(styles)
	return styles
}

func writePlaceBlock(b *strings.Builder, label string, places []db_models.Place) {
	fmt.Fprintf(b, "%s:\n", label)
	if len(places) == 0 {
		b.WriteString("- (none available)\n")
		return
	}
	for _, place := range places {
		fmt.Fprintf(b, "- PLACE_ID: %s | Name: %s | Area: %s | Rating: %.1f (%d reviews)\n",
			place.PlaceID, place.Name, place.Area, place.Rating, place.ReviewCount)
	}
}

// BuildSchedulePrompt composes the full generation instruction: trip metadata,
// derived style tags, the serialized catalog sample, and the hard output rules.
// Pure string construction; an empty sample still yields a prompt and downstream
// reconciliation discards whatever the model invents.
func (p *PromptService) BuildSchedulePrompt(req request_models.ScheduleCreateRequest, sample CatalogSample, dayCount int) string {
	styles := p.MapEmotionsToStyles(req.Emotions)

	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Departure city: %s\n", req.StartCity)
	fmt.Fprintf(&prompt, "Destination city: %s\n", req.EndCity)
	fmt.Fprintf(&prompt, "Trip dates: %s to %s (%d days)\n", req.StartDate, req.EndDate, dayCount)
	fmt.Fprintf(&prompt, "Traveler emotions: %s\n", strings.Join(req.Emotions, ", "))
	fmt.Fprintf(&prompt, "Companions: %s\n", strings.Join(req.Companions, ", "))
	if len(styles) > 0 {
		fmt.Fprintf(&prompt, "Preferred travel styles (soft guidance): %s\n", strings.Join(styles, ", "))
	}

	prompt.WriteString("\nPlan a personalized itinerary for this trip using ONLY the places listed below.\n\n")

	writePlaceBlock(&prompt, "Attractions", sample.Attractions)
	prompt.WriteString("\n")
	writePlaceBlock(&prompt, "Restaurants", sample.Meals)
	prompt.WriteString("\n")
	writePlaceBlock(&prompt, "Accommodations", sample.Lodgings)

	prompt.WriteString("\nHARD RULES:\n")
	fmt.Fprintf(&prompt, "1. Produce exactly %d days, keyed day1..day%d.\n", dayCount, dayCount)
	prompt.WriteString("2. Copy placeId values verbatim from the PLACE_ID fields above. NEVER invent a placeId.\n")
	prompt.WriteString("3. Each day must contain one attraction, one lunch restaurant, one dinner restaurant and, except on the final day, one accommodation as the last entry.\n")
	prompt.WriteString("4. Keep each day's schedule in chronological order by the time field.\n")
	prompt.WriteString("5. Never repeat a placeId anywhere in the whole trip.\n")
	prompt.WriteString("6. Respond with ONLY a JSON code block matching the example schema. No prose outside the block, no duplicate keys, no syntax errors.\n\n")

	prompt.WriteString("Example response:\n")
	prompt.WriteString("```json\n")
	prompt.WriteString(`{
  "aiEmpathy": "A short empathetic sentence about the traveler's mood.",
  "tags": ["healing", "nature"],
  "plans": [
    {
      "day": 1,
      "schedule": [
        {"time": "09:00", "place": "Attraction name", "placeId": "abcd1234", "aiComment": "Why this fits the mood"},
        {"time": "12:00", "place": "Lunch restaurant", "placeId": "efgh5678", "aiComment": "..."},
        {"time": "18:00", "place": "Dinner restaurant", "placeId": "ijkl9012", "aiComment": "..."},
        {"time": "21:00", "place": "Accommodation name", "placeId": "mnop3456", "aiComment": "..."}
      ]
    }
  ]
}
`)
	prompt.WriteString("```\n")

	return prompt.String()
}

func (p *PromptService) BuildEntryFeePrompt(placeName string) string {
	shortName := placeName
	if len([]rune(shortName)) > 20 {
		shortName = string([]rune(shortName)[:20])
	}
	return fmt.Sprintf(
		"What is the average entry fee (or experience cost) for '%s' in Korean won? Reply with a single integer only, no units. Example: 15000. Reply 0 if it is free.",
		shortName)
}

func (p *PromptService) BuildBudgetCommentPrompt(totalBudget int, regions []string, days, peopleCount int) string {
	return fmt.Sprintf(
		"A %d-day trip around %s for %d people is estimated to cost %d won in total. "+
			"In one or two friendly sentences, say whether that feels expensive, reasonable or cheap for the area, and briefly why. "+
			"Write casually, like talking to a friend, with a tasteful emoji or two.",
		days, strings.Join(regions, ", "), peopleCount, totalBudget)
}

func (p *PromptService) BuildQuickBudgetPrompt(startCity, endCity string, days, peopleCount int) string {
	return fmt.Sprintf(
		"Estimate the average travel cost for a %d-day trip from %s to %s for %d people.\n"+
			"- Categories: food, entry fees / experiences, local transport.\n"+
			"- Give the average cost per person per day in Korean won, integers only.\n"+
			"- Respond with JSON exactly like this:\n\n"+
			`{"food": 10000, "entry": 12000, "transport": 7000}`,
		days, startCity, endCity, peopleCount)
}

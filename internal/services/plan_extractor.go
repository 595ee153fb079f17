package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"moodtrip/internal/models/response_models"
	"moodtrip/pkg/utils"
)

// PlanExtractor turns raw model text into the canonical PlanResponse. The
// model is asked for a fenced JSON block but the extractor tolerates bare
// JSON, surrounding prose and trailing commas; anything less recoverable is
// reported as an ExtractionError carrying a snippet of the raw reply.
type PlanExtractorInterface interface {
	ExtractPlan(raw string) (*response_models.PlanResponse, error)
}

type PlanExtractor struct{}

func NewPlanExtractor() PlanExtractorInterface {
	return &PlanExtractor{}
}

var fencedJSONPattern = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(\\{.*?\\})\\s*```")

// extractJSONCandidate returns the JSON object text inside the first fenced
// code block, or the first balanced top-level object when no fence is present.
func extractJSONCandidate(raw string) (string, error) {
	if match := fencedJSONPattern.FindStringSubmatch(raw); match != nil {
		return strings.TrimSpace(match[1]), nil
	}

	start := strings.Index(raw, "{")
	if start == -1 {
		return "", utils.NewExtractionError(raw, fmt.Errorf("no JSON object in response"))
	}
	end := findMatchingBrace(raw, start)
	if end == -1 {
		return "", utils.NewExtractionError(raw, fmt.Errorf("unbalanced JSON object in response"))
	}
	return raw[start : end+1], nil
}

// findMatchingBrace locates the closing brace for the opening brace at start,
// skipping braces inside string literals and escape sequences.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stripTrailingCommas removes commas that directly precede a closing brace or
// bracket, outside string literals. Models emit these often enough to matter.
func stripTrailingCommas(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			out.WriteByte(char)
			continue
		}
		if char == '\\' && inString {
			escaped = true
			out.WriteByte(char)
			continue
		}
		if char == '"' {
			inString = !inString
			out.WriteByte(char)
			continue
		}
		if !inString && char == ',' {
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}
		out.WriteByte(char)
	}
	return out.String()
}

func (e *PlanExtractor) ExtractPlan(raw string) (*response_models.PlanResponse, error) {
	candidate, err := extractJSONCandidate(raw)
	if err != nil {
		return nil, err
	}
	candidate = stripTrailingCommas(candidate)

	var root map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &root); err != nil {
		return nil, utils.NewExtractionError(raw, err)
	}

	plan, err := normalizePlan(root)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// normalizePlan maps the several plan shapes models actually produce onto the
// canonical one. Supported inputs:
//   - canonical: {"aiEmpathy":..., "tags":[...], "plans":[{"day":1,"schedule":[...]}]}
//   - keyed days under plans: {"plans": {"day1": <day>, "day2": <day>}}
//   - keyed days at the top level: {"day1": <day>, ...}
//
// where <day> is either a schedule list, an object with a "schedule" list, or
// an object of named segments ("sights", "lunch", "dinner", ...) each holding
// a list. Days are renumbered contiguously from 1 in ascending key order.
func normalizePlan(root map[string]interface{}) (*response_models.PlanResponse, error) {
	plan := &response_models.PlanResponse{
		AiEmpathy: asString(root["aiEmpathy"]),
		Tags:      asStringSlice(root["tags"]),
	}

	rawPlans, ok := root["plans"]
	if !ok {
		// Original map-of-days shape: day keys live at the top level.
		keyed := map[string]interface{}{}
		for key, value := range root {
			if dayKeyNumber(key) > 0 {
				keyed[key] = value
			}
		}
		if len(keyed) == 0 {
			return nil, &utils.MalformedPlanError{Reason: "response has no plans field and no day keys"}
		}
		rawPlans = keyed
	}

	var days []response_models.DayPlan
	switch typed := rawPlans.(type) {
	case []interface{}:
		for i, entry := range typed {
			day, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			number := i + 1
			if n, ok := asInt(day["day"]); ok && n > 0 {
				number = n
			}
			schedule := normalizeDay(day)
			if len(schedule) == 0 {
				continue
			}
			days = append(days, response_models.DayPlan{Day: number, Schedule: schedule})
		}
	case map[string]interface{}:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			return dayKeyNumber(keys[i]) < dayKeyNumber(keys[j])
		})
		for _, key := range keys {
			number := dayKeyNumber(key)
			if number == 0 {
				continue
			}
			schedule := normalizeDayValue(typed[key])
			if len(schedule) == 0 {
				continue
			}
			days = append(days, response_models.DayPlan{Day: number, Schedule: schedule})
		}
	default:
		return nil, &utils.MalformedPlanError{Reason: "plans field is neither a list nor a map"}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	for i := range days {
		days[i].Day = i + 1
	}
	plan.Plans = days
	return plan, nil
}

func normalizeDayValue(value interface{}) []response_models.ScheduleItem {
	switch typed := value.(type) {
	case []interface{}:
		return normalizeItemList(typed)
	case map[string]interface{}:
		return normalizeDay(typed)
	default:
		return nil
	}
}

// segmentOrder keeps a morning-to-evening ordering when the model answers
// with named segments instead of a flat schedule.
var segmentOrder = []string{"morning", "sights", "attractions", "lunch", "afternoon", "dinner", "evening", "accommodation", "lodging"}

func normalizeDay(day map[string]interface{}) []response_models.ScheduleItem {
	if rawSchedule, ok := day["schedule"].([]interface{}); ok {
		return normalizeItemList(rawSchedule)
	}

	var items []response_models.ScheduleItem
	seenSegments := map[string]bool{}
	for _, segment := range segmentOrder {
		if list, ok := day[segment].([]interface{}); ok {
			items = append(items, normalizeItemList(list)...)
			seenSegments[segment] = true
		}
	}
	// Any remaining list-valued keys, in sorted order for determinism.
	var rest []string
	for key, value := range day {
		if _, ok := value.([]interface{}); ok && !seenSegments[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		items = append(items, normalizeItemList(day[key].([]interface{}))...)
	}
	return items
}

func normalizeItemList(list []interface{}) []response_models.ScheduleItem {
	items := make([]response_models.ScheduleItem, 0, len(list))
	for _, entry := range list {
		raw, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		item := response_models.ScheduleItem{
			Time:      asString(raw["time"]),
			Place:     firstString(raw, "place", "name"),
			PlaceID:   firstString(raw, "placeId", "place_id", "placeID"),
			AiComment: firstString(raw, "aiComment", "ai_comment", "comment"),
			Latitude:  asFloatPtr(raw["latitude"]),
			Longitude: asFloatPtr(raw["longitude"]),
		}
		if item.Place == "" && item.PlaceID == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// dayKeyNumber extracts the numeric part of keys like "day1", "Day 3" or "2".
// Returns 0 when the key carries no digits.
func dayKeyNumber(key string) int {
	digits := strings.Builder{}
	for _, r := range key {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

func asString(value interface{}) string {
	s, _ := value.(string)
	return s
}

func firstString(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := raw[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func asStringSlice(value interface{}) []string {
	list, ok := value.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asFloatPtr(value interface{}) *float64 {
	f, ok := value.(float64)
	if !ok {
		return nil
	}
	return &f
}

func asInt(value interface{}) (int, bool) {
	switch typed := value.(type) {
	case float64:
		return int(typed), true
	case string:
		n, err := strconv.Atoi(typed)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

package response_models

// BudgetBreakdown is always recomputed from a reconciled plan, never served as
// authoritative cached data.
type BudgetBreakdown struct {
	FoodCost          int    `json:"foodCost"`
	EntryFees         int    `json:"entryFees"`
	TransportCost     int    `json:"transportCost"`
	AccommodationCost int    `json:"accommodationCost"`
	TotalBudget       int    `json:"totalBudget"`
	Comment           string `json:"comment"`
}

type BudgetResponse struct {
	TotalBudget       int              `json:"totalBudget"`
	CategoryBreakdown []map[string]int `json:"categoryBreakdown"`
	AiComment         string           `json:"aiComment"`
}

func (b BudgetBreakdown) ToResponse() BudgetResponse {
	categories := []map[string]int{}
	for _, entry := range []struct {
		name   string
		amount int
	}{
		{"transport", b.TransportCost},
		{"accommodation", b.AccommodationCost},
		{"food", b.FoodCost},
		{"entry", b.EntryFees},
	} {
		if entry.amount > 0 {
			categories = append(categories, map[string]int{entry.name: entry.amount})
		}
	}
	return BudgetResponse{
		TotalBudget:       b.TotalBudget,
		CategoryBreakdown: categories,
		AiComment:         b.Comment,
	}
}

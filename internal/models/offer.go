package models

// Offer represents a product or value proposition that leads are scored
// against. Offers are immutable once created.
type Offer struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ValueProps    []string `json:"value_props"`
	IdealUseCases []string `json:"ideal_use_cases"`
}

package repository

// Repositories aggregates the in-memory stores. One instance per process (or
// per test) keeps ownership explicit; nothing here survives a restart.
type Repositories struct {
	Offers  *OfferRepository
	Leads   *LeadRepository
	Results *ResultRepository
}

// NewRepositories creates a fresh set of empty stores
func NewRepositories() *Repositories {
	return &Repositories{
		Offers:  NewOfferRepository(),
		Leads:   NewLeadRepository(),
		Results: NewResultRepository(),
	}
}

package usecase

import "context"

// SeedReport counts what a seed run wrote.
type SeedReport struct {
	Categories int
	Products   int
	Ads        int
	Notices    int
}

// SeedUsecase loads the default storefront catalog.
type SeedUsecase interface {
	// Seed writes the default catalog in one transaction. With drop, the stored
	// category tree and home section are removed first.
	Seed(ctx context.Context, drop bool) (*SeedReport, error)
}

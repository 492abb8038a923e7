// Package listing provides access to property listings with a built-in demo fallback.
// Remote failures never reach the caller, they are logged and replaced by demo data.
package listing

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/realtor/pkg/domain"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source

// Source is a remote provider of listings
type Source interface {
	Featured(ctx context.Context) ([]domain.Listing, error)
	Search(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Listing, error)
}

// Repository returns listings from the source, falling back to the demo set
type Repository struct {
	source Source
}

// NewRepository makes a listing repository. Nil source means demo data only.
func NewRepository(source Source) *Repository {
	return &Repository{source: source}
}

// FetchFeatured returns featured listings from the source or the demo set on failure
func (r *Repository) FetchFeatured(ctx context.Context) []domain.Listing {
	if r.source == nil {
		return DemoListings()
	}

	listings, err := r.source.Featured(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't load featured listings, using demo data: %v", err)
		return DemoListings()
	}
	return listings
}

// Search returns listings matching criteria. On source failure the demo set is filtered locally.
func (r *Repository) Search(ctx context.Context, criteria domain.FilterCriteria) []domain.Listing {
	if r.source == nil {
		return Filter(DemoListings(), criteria)
	}

	listings, err := r.source.Search(ctx, criteria)
	if err != nil {
		lgr.Printf("[WARN] can't search listings, filtering demo data: %v", err)
		return Filter(DemoListings(), criteria)
	}
	return listings
}

// Filter keeps listings matching every specified criterion, preserving order
func Filter(listings []domain.Listing, criteria domain.FilterCriteria) []domain.Listing {
	res := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if criteria.Matches(l) {
			res = append(res, l)
		}
	}
	return res
}

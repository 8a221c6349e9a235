package interfaces

import (
	"context"

	"costwatch/internal/domain/entities"
)

// ISiteRepository abstracts persistence for Site.
//
// The service must be able to:
//   - register a site with an optional budget limit
//   - update status (free-form) and budget limit independently
//   - list all sites for site-level rollups and budget alerts

type ISiteRepository interface {
	Create(ctx context.Context, s entities.Site) (entities.Site, error)
	GetByID(ctx context.Context, id string) (entities.Site, error)
	List(ctx context.Context) ([]entities.Site, error)
	UpdateStatus(ctx context.Context, id string, status entities.SiteStatus) (entities.Site, error)
	UpdateBudgetLimit(ctx context.Context, id string, limit *float64) (entities.Site, error)
}

package interfaces

import (
	"context"

	"costwatch/internal/domain/entities"
)

// IEstimateRepository abstracts persistence for Estimate.
//
// CreateWithItems must be atomic: either the estimate and its full item set
// are written or nothing is. The duplication service depends on this to keep
// total_estimated consistent with the visible item list.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	CreateWithItems(ctx context.Context, e entities.Estimate, items []entities.EstimateItem) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListBySiteID(ctx context.Context, siteID string) ([]entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
}

// IEstimateItemRepository abstracts persistence for EstimateItem.
//
// UpdateWithActuals must write the item and the recomputed actual-cost
// records in one transaction so no reader observes an item whose attached
// variances were derived from the previous quantity/price.

type IEstimateItemRepository interface {
	Create(ctx context.Context, it entities.EstimateItem) (entities.EstimateItem, error)
	GetByID(ctx context.Context, id string) (entities.EstimateItem, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateItem, error)
	UpdateWithActuals(ctx context.Context, it entities.EstimateItem, actuals []entities.ActualCost) (entities.EstimateItem, error)
}

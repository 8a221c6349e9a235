package interfaces

import (
	"context"

	"costwatch/internal/domain/entities"
)

// IActualCostRepository abstracts persistence for ActualCost.
//
// Upsert must be atomic with respect to the parent item: the write fails if
// the referenced estimate item no longer exists, and the record lands with
// its derived fields already populated (derive-and-write in one unit).

type IActualCostRepository interface {
	Upsert(ctx context.Context, ac entities.ActualCost) (entities.ActualCost, error)
	GetByID(ctx context.Context, id string) (entities.ActualCost, error)
	ListByItemID(ctx context.Context, itemID string) ([]entities.ActualCost, error)
}

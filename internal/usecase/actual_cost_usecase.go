package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrActualCostNotFound     = errors.New("actual cost not found")
	ErrInvalidActualCostID    = errors.New("invalid actual cost id")
	ErrInvalidItemID          = errors.New("invalid item id")
	ErrItemReferenceMissing   = errors.New("referenced estimate item does not exist")
	ErrNegativeActualPrice    = errors.New("actual unit price must not be negative")
	ErrNegativeActualQuantity = errors.New("actual quantity must not be negative")
)

// RecordActualCostInput captures a cost recorded in the field against one
// estimate item. ActualQuantity nil means "use the item's estimated
// quantity". RecordedAt nil means "now".
type RecordActualCostInput struct {
	ItemID          string
	ActualUnitPrice float64
	ActualQuantity  *float64
	RecordedAt      *time.Time
}

// CorrectActualCostInput is a partial correction of an existing record. Nil
// pointers leave the current value unchanged; ClearActualQuantity resets the
// record back to the item's estimated quantity.
type CorrectActualCostInput struct {
	ActualUnitPrice     *float64
	ActualQuantity      *float64
	ClearActualQuantity bool
}

// IActualCostUseCase is the variance recalculation engine: every path that
// introduces or edits an actual-cost record flows through here so the derived
// fields are recomputed atomically with the write.

type IActualCostUseCase interface {
	Record(ctx context.Context, input RecordActualCostInput) (entities.ActualCost, error)
	Correct(ctx context.Context, id string, input CorrectActualCostInput) (entities.ActualCost, error)
	GetByID(ctx context.Context, id string) (entities.ActualCost, error)
	ListByItemID(ctx context.Context, itemID string) ([]entities.ActualCost, error)
}

type ActualCostUseCase struct {
	repo     interfaces.IActualCostRepository
	itemRepo interfaces.IEstimateItemRepository
}

var _ IActualCostUseCase = (*ActualCostUseCase)(nil)

func NewActualCostUseCase(repo interfaces.IActualCostRepository, itemRepo interfaces.IEstimateItemRepository) *ActualCostUseCase {
	return &ActualCostUseCase{repo: repo, itemRepo: itemRepo}
}

func (u *ActualCostUseCase) Record(ctx context.Context, input RecordActualCostInput) (entities.ActualCost, error) {
	itemID := strings.TrimSpace(input.ItemID)
	if itemID == "" {
		return entities.ActualCost{}, ErrInvalidItemID
	}
	if input.ActualUnitPrice < 0 {
		return entities.ActualCost{}, ErrNegativeActualPrice
	}
	if input.ActualQuantity != nil && *input.ActualQuantity < 0 {
		return entities.ActualCost{}, ErrNegativeActualQuantity
	}

	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return entities.ActualCost{}, err
	}
	if item.ID == "" {
		log.Printf("[actual][usecase] record rejected: item %s missing", itemID)
		return entities.ActualCost{}, ErrItemReferenceMissing
	}

	now := time.Now().UTC()
	recordedAt := now
	if input.RecordedAt != nil {
		recordedAt = input.RecordedAt.UTC()
	}

	ac := entities.ActualCost{
		ID:              uuid.NewString(),
		ItemID:          item.ID,
		ActualUnitPrice: roundCurrency(input.ActualUnitPrice),
		RecordedAt:      recordedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.ActualQuantity != nil {
		q := roundQuantity(*input.ActualQuantity)
		ac.ActualQuantity = &q
	}

	// Derive from the normalized values being persisted, so stored price and
	// quantity always reproduce the stored totals.
	ac.TotalActual, ac.VarianceAmount, ac.VariancePercentage = ComputeVariance(
		item.Quantity, item.UnitPrice, ac.ActualUnitPrice, ac.ActualQuantity,
	)

	saved, err := u.repo.Upsert(ctx, ac)
	if err != nil {
		return entities.ActualCost{}, err
	}
	if saved.ID == "" {
		// Parent item vanished between the read and the transactional write.
		return entities.ActualCost{}, ErrItemReferenceMissing
	}
	return saved, nil
}

func (u *ActualCostUseCase) Correct(ctx context.Context, id string, input CorrectActualCostInput) (entities.ActualCost, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ActualCost{}, ErrInvalidActualCostID
	}
	if input.ActualUnitPrice != nil && *input.ActualUnitPrice < 0 {
		return entities.ActualCost{}, ErrNegativeActualPrice
	}
	if input.ActualQuantity != nil && *input.ActualQuantity < 0 {
		return entities.ActualCost{}, ErrNegativeActualQuantity
	}

	ac, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ActualCost{}, err
	}
	if ac.ID == "" {
		return entities.ActualCost{}, ErrActualCostNotFound
	}

	item, err := u.itemRepo.GetByID(ctx, ac.ItemID)
	if err != nil {
		return entities.ActualCost{}, err
	}
	if item.ID == "" {
		return entities.ActualCost{}, ErrItemReferenceMissing
	}

	if input.ActualUnitPrice != nil {
		ac.ActualUnitPrice = roundCurrency(*input.ActualUnitPrice)
	}
	switch {
	case input.ClearActualQuantity:
		ac.ActualQuantity = nil
	case input.ActualQuantity != nil:
		q := roundQuantity(*input.ActualQuantity)
		ac.ActualQuantity = &q
	}

	ac.TotalActual, ac.VarianceAmount, ac.VariancePercentage = ComputeVariance(
		item.Quantity, item.UnitPrice, ac.ActualUnitPrice, ac.ActualQuantity,
	)
	ac.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Upsert(ctx, ac)
	if err != nil {
		return entities.ActualCost{}, err
	}
	if saved.ID == "" {
		return entities.ActualCost{}, ErrItemReferenceMissing
	}
	return saved, nil
}

func (u *ActualCostUseCase) GetByID(ctx context.Context, id string) (entities.ActualCost, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ActualCost{}, ErrInvalidActualCostID
	}

	ac, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ActualCost{}, err
	}
	if ac.ID == "" {
		return entities.ActualCost{}, ErrActualCostNotFound
	}
	return ac, nil
}

func (u *ActualCostUseCase) ListByItemID(ctx context.Context, itemID string) ([]entities.ActualCost, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidItemID
	}

	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.ID == "" {
		return nil, ErrItemReferenceMissing
	}
	return u.repo.ListByItemID(ctx, itemID)
}

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
	ErrEstimateNotFound       = errors.New("estimate not found")
	ErrInvalidEstimateID      = errors.New("invalid estimate id")
	ErrInvalidEstimateTitle   = errors.New("invalid estimate title")
	ErrEstimateTitleConflict  = errors.New("estimate title already in use for this site")
	ErrInvalidEstimateStatus  = errors.New("invalid estimate status")
	ErrInvalidSiteID          = errors.New("invalid site id")
	ErrSiteNotFound           = errors.New("site not found")
	ErrItemNotFound           = errors.New("estimate item not found")
	ErrInvalidCategoryID      = errors.New("invalid category id")
	ErrNegativeQuantity       = errors.New("quantity must not be negative")
	ErrNegativeUnitPrice      = errors.New("unit price must not be negative")
)

// EstimateItemInput is one priced line to add to an estimate.
type EstimateItemInput struct {
	CategoryID  string
	Description string
	Quantity    float64
	Unit        string
	UnitPrice   float64
}

// UpdateEstimateItemInput is a partial edit; nil fields stay unchanged.
type UpdateEstimateItemInput struct {
	CategoryID  *string
	Description *string
	Quantity    *float64
	Unit        *string
	UnitPrice   *float64
}

// IEstimateUseCase exposes estimate and estimate-item operations, including
// the versioning service (Duplicate).
//
// Reads never trust the stored total_estimated: GetByID/ListBySiteID recompute
// it from the item set so the denormalized figure cannot drift.

type IEstimateUseCase interface {
	Create(ctx context.Context, siteID, title string) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, []entities.EstimateItem, error)
	ListBySiteID(ctx context.Context, siteID string) ([]entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
	Duplicate(ctx context.Context, estimateID, newTitle string) (entities.Estimate, error)
	AddItem(ctx context.Context, estimateID string, input EstimateItemInput) (entities.EstimateItem, error)
	UpdateItem(ctx context.Context, itemID string, input UpdateEstimateItemInput) (entities.EstimateItem, error)
	GetItem(ctx context.Context, itemID string) (entities.EstimateItem, error)
}

type EstimateUseCase struct {
	repo         interfaces.IEstimateRepository
	itemRepo     interfaces.IEstimateItemRepository
	siteRepo     interfaces.ISiteRepository
	acRepo       interfaces.IActualCostRepository
	categoryRepo interfaces.ICategoryRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	itemRepo interfaces.IEstimateItemRepository,
	siteRepo interfaces.ISiteRepository,
	acRepo interfaces.IActualCostRepository,
	categoryRepo interfaces.ICategoryRepository,
) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, itemRepo: itemRepo, siteRepo: siteRepo, acRepo: acRepo, categoryRepo: categoryRepo}
}

func (u *EstimateUseCase) Create(ctx context.Context, siteID, title string) (entities.Estimate, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		return entities.Estimate{}, ErrInvalidSiteID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Estimate{}, ErrInvalidEstimateTitle
	}

	site, err := u.siteRepo.GetByID(ctx, siteID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if site.ID == "" {
		return entities.Estimate{}, ErrSiteNotFound
	}

	if err := u.checkTitleAvailable(ctx, siteID, title); err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:        uuid.NewString(),
		SiteID:    siteID,
		Title:     title,
		Version:   1,
		Status:    entities.EstimateStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, []entities.EstimateItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, nil, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	if e.ID == "" {
		return entities.Estimate{}, nil, ErrEstimateNotFound
	}

	items, err := u.itemRepo.ListByEstimateID(ctx, id)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	e.TotalEstimated = recomputeEstimateTotal(items)
	for i := range items {
		items[i].TotalEstimated = roundCurrency(items[i].Quantity * items[i].UnitPrice)
	}
	return e, items, nil
}

func (u *EstimateUseCase) ListBySiteID(ctx context.Context, siteID string) ([]entities.Estimate, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		return nil, ErrInvalidSiteID
	}

	site, err := u.siteRepo.GetByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if site.ID == "" {
		return nil, ErrSiteNotFound
	}

	estimates, err := u.repo.ListBySiteID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	for i := range estimates {
		items, err := u.itemRepo.ListByEstimateID(ctx, estimates[i].ID)
		if err != nil {
			return nil, err
		}
		estimates[i].TotalEstimated = recomputeEstimateTotal(items)
	}
	return estimates, nil
}

func (u *EstimateUseCase) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if !isValidEstimateStatus(status) {
		return entities.Estimate{}, ErrInvalidEstimateStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

// Duplicate creates a clean planning baseline: a new draft estimate under the
// same site, version source+1, with a deep copy of the item tree and no
// actual-cost records. The copy is written in one atomic batch.
func (u *EstimateUseCase) Duplicate(ctx context.Context, estimateID, newTitle string) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return entities.Estimate{}, ErrInvalidEstimateTitle
	}

	source, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if source.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	if err := u.checkTitleAvailable(ctx, source.SiteID, newTitle); err != nil {
		return entities.Estimate{}, err
	}

	sourceItems, err := u.itemRepo.ListByEstimateID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	dup := entities.Estimate{
		ID:        uuid.NewString(),
		SiteID:    source.SiteID,
		Title:     newTitle,
		Version:   source.Version + 1,
		Status:    entities.EstimateStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	copies := make([]entities.EstimateItem, 0, len(sourceItems))
	for _, it := range sourceItems {
		copies = append(copies, entities.EstimateItem{
			ID:             uuid.NewString(),
			EstimateID:     dup.ID,
			CategoryID:     it.CategoryID,
			Description:    it.Description,
			Quantity:       it.Quantity,
			Unit:           it.Unit,
			UnitPrice:      it.UnitPrice,
			TotalEstimated: roundCurrency(it.Quantity * it.UnitPrice),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	dup.TotalEstimated = recomputeEstimateTotal(copies)

	log.Printf("[estimate][usecase] duplicating %s -> %s (%d items)", source.ID, dup.ID, len(copies))
	return u.repo.CreateWithItems(ctx, dup, copies)
}

func (u *EstimateUseCase) AddItem(ctx context.Context, estimateID string, input EstimateItemInput) (entities.EstimateItem, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.EstimateItem{}, ErrInvalidEstimateID
	}
	if strings.TrimSpace(input.CategoryID) == "" {
		return entities.EstimateItem{}, ErrInvalidCategoryID
	}
	if input.Quantity < 0 {
		return entities.EstimateItem{}, ErrNegativeQuantity
	}
	if input.UnitPrice < 0 {
		return entities.EstimateItem{}, ErrNegativeUnitPrice
	}

	e, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.EstimateItem{}, err
	}
	if e.ID == "" {
		return entities.EstimateItem{}, ErrEstimateNotFound
	}
	if err := u.checkCategoryExists(ctx, strings.TrimSpace(input.CategoryID)); err != nil {
		return entities.EstimateItem{}, err
	}

	now := time.Now().UTC()
	it := entities.EstimateItem{
		ID:             uuid.NewString(),
		EstimateID:     estimateID,
		CategoryID:     strings.TrimSpace(input.CategoryID),
		Description:    strings.TrimSpace(input.Description),
		Quantity:       roundQuantity(input.Quantity),
		Unit:           strings.TrimSpace(input.Unit),
		UnitPrice:      roundCurrency(input.UnitPrice),
		TotalEstimated: roundCurrency(input.Quantity * input.UnitPrice),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.itemRepo.Create(ctx, it)
}

// UpdateItem edits an item's inputs and retroactively recomputes the derived
// fields of every actual cost recorded against it. Item and actuals land in
// one transaction so no reader sees variances derived from the old inputs.
func (u *EstimateUseCase) UpdateItem(ctx context.Context, itemID string, input UpdateEstimateItemInput) (entities.EstimateItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.EstimateItem{}, ErrInvalidItemID
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return entities.EstimateItem{}, ErrNegativeQuantity
	}
	if input.UnitPrice != nil && *input.UnitPrice < 0 {
		return entities.EstimateItem{}, ErrNegativeUnitPrice
	}

	it, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return entities.EstimateItem{}, err
	}
	if it.ID == "" {
		return entities.EstimateItem{}, ErrItemNotFound
	}

	if input.CategoryID != nil {
		if strings.TrimSpace(*input.CategoryID) == "" {
			return entities.EstimateItem{}, ErrInvalidCategoryID
		}
		if err := u.checkCategoryExists(ctx, strings.TrimSpace(*input.CategoryID)); err != nil {
			return entities.EstimateItem{}, err
		}
		it.CategoryID = strings.TrimSpace(*input.CategoryID)
	}
	if input.Description != nil {
		it.Description = strings.TrimSpace(*input.Description)
	}
	if input.Unit != nil {
		it.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.Quantity != nil {
		it.Quantity = roundQuantity(*input.Quantity)
	}
	if input.UnitPrice != nil {
		it.UnitPrice = roundCurrency(*input.UnitPrice)
	}
	it.TotalEstimated = roundCurrency(it.Quantity * it.UnitPrice)
	it.UpdatedAt = time.Now().UTC()

	actuals, err := u.acRepo.ListByItemID(ctx, itemID)
	if err != nil {
		return entities.EstimateItem{}, err
	}
	for i := range actuals {
		actuals[i].TotalActual, actuals[i].VarianceAmount, actuals[i].VariancePercentage = ComputeVariance(
			it.Quantity, it.UnitPrice, actuals[i].ActualUnitPrice, actuals[i].ActualQuantity,
		)
		actuals[i].UpdatedAt = it.UpdatedAt
	}

	return u.itemRepo.UpdateWithActuals(ctx, it, actuals)
}

func (u *EstimateUseCase) GetItem(ctx context.Context, itemID string) (entities.EstimateItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.EstimateItem{}, ErrInvalidItemID
	}

	it, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return entities.EstimateItem{}, err
	}
	if it.ID == "" {
		return entities.EstimateItem{}, ErrItemNotFound
	}
	it.TotalEstimated = roundCurrency(it.Quantity * it.UnitPrice)
	return it, nil
}

// checkTitleAvailable enforces the uniqueness policy: a title may not collide
// with a non-archived estimate under the same site. Archived estimates free
// their title for reuse.
func (u *EstimateUseCase) checkTitleAvailable(ctx context.Context, siteID, title string) error {
	existing, err := u.repo.ListBySiteID(ctx, siteID)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.Status != entities.EstimateStatusArchived && strings.EqualFold(e.Title, title) {
			return ErrEstimateTitleConflict
		}
	}
	return nil
}

func (u *EstimateUseCase) checkCategoryExists(ctx context.Context, categoryID string) error {
	c, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCategoryNotFound
	}
	return nil
}

func recomputeEstimateTotal(items []entities.EstimateItem) float64 {
	total := 0.0
	for _, it := range items {
		total += roundCurrency(it.Quantity * it.UnitPrice)
	}
	return roundCurrency(total)
}

func isValidEstimateStatus(s entities.EstimateStatus) bool {
	switch s {
	case entities.EstimateStatusDraft, entities.EstimateStatusSubmitted, entities.EstimateStatusApproved,
		entities.EstimateStatusRejected, entities.EstimateStatusArchived:
		return true
	}
	return false
}

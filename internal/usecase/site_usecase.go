package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSiteName     = errors.New("invalid site name")
	ErrInvalidSiteStatus   = errors.New("invalid site status")
	ErrNegativeBudgetLimit = errors.New("budget limit must not be negative")
)

// ISiteUseCase exposes site management. Status transitions are free-form;
// the budget limit is optional and only feeds budget alerting.

type ISiteUseCase interface {
	Create(ctx context.Context, name string, budgetLimit *float64) (entities.Site, error)
	GetByID(ctx context.Context, id string) (entities.Site, error)
	List(ctx context.Context) ([]entities.Site, error)
	UpdateStatus(ctx context.Context, id string, status entities.SiteStatus) (entities.Site, error)
	SetBudgetLimit(ctx context.Context, id string, limit *float64) (entities.Site, error)
}

type SiteUseCase struct {
	repo interfaces.ISiteRepository
}

var _ ISiteUseCase = (*SiteUseCase)(nil)

func NewSiteUseCase(repo interfaces.ISiteRepository) *SiteUseCase {
	return &SiteUseCase{repo: repo}
}

func (u *SiteUseCase) Create(ctx context.Context, name string, budgetLimit *float64) (entities.Site, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Site{}, ErrInvalidSiteName
	}
	if budgetLimit != nil && *budgetLimit < 0 {
		return entities.Site{}, ErrNegativeBudgetLimit
	}

	now := time.Now().UTC()
	s := entities.Site{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    entities.SiteStatusPlanning,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if budgetLimit != nil {
		limit := roundCurrency(*budgetLimit)
		s.BudgetLimit = &limit
	}
	return u.repo.Create(ctx, s)
}

func (u *SiteUseCase) GetByID(ctx context.Context, id string) (entities.Site, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Site{}, ErrInvalidSiteID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Site{}, err
	}
	if s.ID == "" {
		return entities.Site{}, ErrSiteNotFound
	}
	return s, nil
}

func (u *SiteUseCase) List(ctx context.Context) ([]entities.Site, error) {
	return u.repo.List(ctx)
}

func (u *SiteUseCase) UpdateStatus(ctx context.Context, id string, status entities.SiteStatus) (entities.Site, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Site{}, ErrInvalidSiteID
	}
	if !isValidSiteStatus(status) {
		return entities.Site{}, ErrInvalidSiteStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Site{}, err
	}
	if updated.ID == "" {
		return entities.Site{}, ErrSiteNotFound
	}
	return updated, nil
}

func (u *SiteUseCase) SetBudgetLimit(ctx context.Context, id string, limit *float64) (entities.Site, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Site{}, ErrInvalidSiteID
	}
	if limit != nil && *limit < 0 {
		return entities.Site{}, ErrNegativeBudgetLimit
	}
	if limit != nil {
		rounded := roundCurrency(*limit)
		limit = &rounded
	}

	updated, err := u.repo.UpdateBudgetLimit(ctx, id, limit)
	if err != nil {
		return entities.Site{}, err
	}
	if updated.ID == "" {
		return entities.Site{}, ErrSiteNotFound
	}
	return updated, nil
}

func isValidSiteStatus(s entities.SiteStatus) bool {
	switch s {
	case entities.SiteStatusPlanning, entities.SiteStatusActive, entities.SiteStatusOnHold,
		entities.SiteStatusCompleted, entities.SiteStatusCancelled:
		return true
	}
	return false
}

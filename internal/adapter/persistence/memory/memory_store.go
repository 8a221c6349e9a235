// Package memory provides an in-memory implementation of every repository
// interface. It backs tests and local development; the production adapter
// lives in adapter/persistence/repository.
package memory

import (
	"context"
	"sort"
	"sync"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase/interfaces"
)

// Store holds all entities behind one mutex and hands out per-entity
// repository views. The multi-entity writes (CreateWithItems,
// UpdateWithActuals) hold the lock for the whole batch, mirroring the
// transactional guarantee of the DynamoDB adapter.
type Store struct {
	mu          sync.RWMutex
	sites       map[string]entities.Site
	estimates   map[string]entities.Estimate
	items       map[string]entities.EstimateItem
	actualCosts map[string]entities.ActualCost
	categories  map[string]entities.Category
}

func NewStore() *Store {
	return &Store{
		sites:       map[string]entities.Site{},
		estimates:   map[string]entities.Estimate{},
		items:       map[string]entities.EstimateItem{},
		actualCosts: map[string]entities.ActualCost{},
		categories:  map[string]entities.Category{},
	}
}

func (s *Store) Sites() interfaces.ISiteRepository             { return siteRepo{s} }
func (s *Store) Estimates() interfaces.IEstimateRepository     { return estimateRepo{s} }
func (s *Store) Items() interfaces.IEstimateItemRepository     { return itemRepo{s} }
func (s *Store) ActualCosts() interfaces.IActualCostRepository { return actualCostRepo{s} }
func (s *Store) Categories() interfaces.ICategoryRepository    { return categoryRepo{s} }

type siteRepo struct{ s *Store }

var _ interfaces.ISiteRepository = siteRepo{}

func (r siteRepo) Create(ctx context.Context, site entities.Site) (entities.Site, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sites[site.ID] = site
	return site, nil
}

func (r siteRepo) GetByID(ctx context.Context, id string) (entities.Site, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.sites[id], nil
}

func (r siteRepo) List(ctx context.Context) ([]entities.Site, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Site, 0, len(r.s.sites))
	for _, v := range r.s.sites {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r siteRepo) UpdateStatus(ctx context.Context, id string, status entities.SiteStatus) (entities.Site, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	site, ok := r.s.sites[id]
	if !ok {
		return entities.Site{}, nil
	}
	site.Status = status
	r.s.sites[id] = site
	return site, nil
}

func (r siteRepo) UpdateBudgetLimit(ctx context.Context, id string, limit *float64) (entities.Site, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	site, ok := r.s.sites[id]
	if !ok {
		return entities.Site{}, nil
	}
	site.BudgetLimit = limit
	r.s.sites[id] = site
	return site, nil
}

type estimateRepo struct{ s *Store }

var _ interfaces.IEstimateRepository = estimateRepo{}

func (r estimateRepo) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.estimates[e.ID] = e
	return e, nil
}

func (r estimateRepo) CreateWithItems(ctx context.Context, e entities.Estimate, items []entities.EstimateItem) (entities.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.estimates[e.ID] = e
	for _, it := range items {
		r.s.items[it.ID] = it
	}
	return e, nil
}

func (r estimateRepo) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.estimates[id], nil
}

func (r estimateRepo) ListBySiteID(ctx context.Context, siteID string) ([]entities.Estimate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.Estimate{}
	for _, e := range r.s.estimates {
		if e.SiteID == siteID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r estimateRepo) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.estimates[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	e.Status = status
	r.s.estimates[id] = e
	return e, nil
}

type itemRepo struct{ s *Store }

var _ interfaces.IEstimateItemRepository = itemRepo{}

func (r itemRepo) Create(ctx context.Context, it entities.EstimateItem) (entities.EstimateItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[it.ID] = it
	return it, nil
}

func (r itemRepo) GetByID(ctx context.Context, id string) (entities.EstimateItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.items[id], nil
}

func (r itemRepo) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.EstimateItem{}
	for _, it := range r.s.items {
		if it.EstimateID == estimateID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r itemRepo) UpdateWithActuals(ctx context.Context, it entities.EstimateItem, actuals []entities.ActualCost) (entities.EstimateItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[it.ID]; !ok {
		return entities.EstimateItem{}, nil
	}
	r.s.items[it.ID] = it
	for _, ac := range actuals {
		r.s.actualCosts[ac.ID] = ac
	}
	return it, nil
}

type actualCostRepo struct{ s *Store }

var _ interfaces.IActualCostRepository = actualCostRepo{}

func (r actualCostRepo) Upsert(ctx context.Context, ac entities.ActualCost) (entities.ActualCost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[ac.ItemID]; !ok {
		return entities.ActualCost{}, nil
	}
	r.s.actualCosts[ac.ID] = ac
	return ac, nil
}

func (r actualCostRepo) GetByID(ctx context.Context, id string) (entities.ActualCost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.actualCosts[id], nil
}

func (r actualCostRepo) ListByItemID(ctx context.Context, itemID string) ([]entities.ActualCost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.ActualCost{}
	for _, ac := range r.s.actualCosts {
		if ac.ItemID == itemID {
			out = append(out, ac)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type categoryRepo struct{ s *Store }

var _ interfaces.ICategoryRepository = categoryRepo{}

func (r categoryRepo) Create(ctx context.Context, c entities.Category) (entities.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.categories[c.ID] = c
	return c, nil
}

func (r categoryRepo) GetByID(ctx context.Context, id string) (entities.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.categories[id], nil
}

func (r categoryRepo) List(ctx context.Context) ([]entities.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

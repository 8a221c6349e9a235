package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase/interfaces"
)

var ErrInvalidDateRange = errors.New("date_from must not be after date_to")

// AggregationFilter scopes a rollup. Empty string / nil fields mean "no
// constraint". The date range applies to actual-cost records (by RecordedAt);
// items stay counted regardless so item_count reflects the estimate, not the
// recording activity.
type AggregationFilter struct {
	SiteID     string
	EstimateID string
	CategoryID string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// IAggregationUseCase produces variance rollups and time-series trends. Every
// method is a pure function of the current record set: identical inputs yield
// identical output, with explicit sort orders and no hidden state.

type IAggregationUseCase interface {
	ByCategory(ctx context.Context, f AggregationFilter) ([]entities.VarianceRollup, error)
	BySite(ctx context.Context, f AggregationFilter) ([]entities.VarianceRollup, error)
	Trends(ctx context.Context, f AggregationFilter) (daily []entities.TrendPoint, cumulative []entities.CumulativePoint, err error)
	ItemVariances(ctx context.Context, f AggregationFilter) ([]entities.ItemVariance, error)
}

type AggregationUseCase struct {
	siteRepo     interfaces.ISiteRepository
	estimateRepo interfaces.IEstimateRepository
	itemRepo     interfaces.IEstimateItemRepository
	acRepo       interfaces.IActualCostRepository
	categoryRepo interfaces.ICategoryRepository
}

var _ IAggregationUseCase = (*AggregationUseCase)(nil)

func NewAggregationUseCase(
	siteRepo interfaces.ISiteRepository,
	estimateRepo interfaces.IEstimateRepository,
	itemRepo interfaces.IEstimateItemRepository,
	acRepo interfaces.IActualCostRepository,
	categoryRepo interfaces.ICategoryRepository,
) *AggregationUseCase {
	return &AggregationUseCase{
		siteRepo:     siteRepo,
		estimateRepo: estimateRepo,
		itemRepo:     itemRepo,
		acRepo:       acRepo,
		categoryRepo: categoryRepo,
	}
}

// snapshot is the in-memory join the rollups are computed from. Aggregation
// reads are not transactionally isolated from concurrent writes; a snapshot
// is read once per call and all figures derive from it.
type snapshot struct {
	sites    []entities.Site
	items    []entities.EstimateItem
	itemSite map[string]string // item id -> site id
	actuals  map[string][]entities.ActualCost
}

func (u *AggregationUseCase) load(ctx context.Context, f AggregationFilter) (snapshot, error) {
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return snapshot{}, ErrInvalidDateRange
	}

	allSites, err := u.siteRepo.List(ctx)
	if err != nil {
		return snapshot{}, err
	}
	sort.Slice(allSites, func(i, j int) bool { return allSites[i].ID < allSites[j].ID })

	snap := snapshot{
		itemSite: map[string]string{},
		actuals:  map[string][]entities.ActualCost{},
	}

	var estimates []entities.Estimate
	switch {
	case f.EstimateID != "":
		e, err := u.estimateRepo.GetByID(ctx, f.EstimateID)
		if err != nil {
			return snapshot{}, err
		}
		if e.ID != "" {
			estimates = append(estimates, e)
		}
	case f.SiteID != "":
		estimates, err = u.estimateRepo.ListBySiteID(ctx, f.SiteID)
		if err != nil {
			return snapshot{}, err
		}
	default:
		for _, s := range allSites {
			es, err := u.estimateRepo.ListBySiteID(ctx, s.ID)
			if err != nil {
				return snapshot{}, err
			}
			estimates = append(estimates, es...)
		}
	}

	for _, s := range allSites {
		if f.SiteID == "" || s.ID == f.SiteID {
			snap.sites = append(snap.sites, s)
		}
	}

	for _, e := range estimates {
		if f.SiteID != "" && e.SiteID != f.SiteID {
			continue
		}
		items, err := u.itemRepo.ListByEstimateID(ctx, e.ID)
		if err != nil {
			return snapshot{}, err
		}
		for _, it := range items {
			if f.CategoryID != "" && it.CategoryID != f.CategoryID {
				continue
			}
			snap.items = append(snap.items, it)
			snap.itemSite[it.ID] = e.SiteID

			acs, err := u.acRepo.ListByItemID(ctx, it.ID)
			if err != nil {
				return snapshot{}, err
			}
			for _, ac := range acs {
				if !inDateRange(ac.RecordedAt, f.DateFrom, f.DateTo) {
					continue
				}
				snap.actuals[it.ID] = append(snap.actuals[it.ID], ac)
			}
			sort.Slice(snap.actuals[it.ID], func(a, b int) bool {
				return snap.actuals[it.ID][a].ID < snap.actuals[it.ID][b].ID
			})
		}
	}
	sort.Slice(snap.items, func(i, j int) bool { return snap.items[i].ID < snap.items[j].ID })
	return snap, nil
}

// group accumulates unrounded sums; rounding happens once at the rollup
// boundary so summed percentages are computed from true totals
// (summation-then-ratio, never an average of per-item percentages).
type group struct {
	estimated        float64
	actual           float64
	itemCount        int
	itemsWithActuals int
}

func (g group) rollup(key, name string) entities.VarianceRollup {
	variance := g.actual - g.estimated
	pct := 0.0
	if g.estimated != 0 {
		pct = variance / g.estimated * 100
	}
	return entities.VarianceRollup{
		Key:                key,
		Name:               name,
		TotalEstimated:     roundCurrency(g.estimated),
		TotalActual:        roundCurrency(g.actual),
		VarianceAmount:     roundCurrency(variance),
		VariancePercentage: roundPercent(pct),
		ItemCount:          g.itemCount,
		ItemsWithActuals:   g.itemsWithActuals,
	}
}

func (u *AggregationUseCase) ByCategory(ctx context.Context, f AggregationFilter) ([]entities.VarianceRollup, error) {
	snap, err := u.load(ctx, f)
	if err != nil {
		return nil, err
	}
	cats, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := map[string]*group{}
	for _, it := range snap.items {
		g := groups[it.CategoryID]
		if g == nil {
			g = &group{}
			groups[it.CategoryID] = g
		}
		accumulate(g, it, snap.actuals[it.ID])
	}
	// A filtered category with no matching items still yields a zero row.
	if f.CategoryID != "" && groups[f.CategoryID] == nil {
		groups[f.CategoryID] = &group{}
	}

	names := map[string]string{}
	order := map[string]int{}
	for _, c := range cats {
		names[c.ID] = c.Name
		order[c.ID] = c.SortOrder
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if order[keys[i]] != order[keys[j]] {
			return order[keys[i]] < order[keys[j]]
		}
		return keys[i] < keys[j]
	})

	out := make([]entities.VarianceRollup, 0, len(keys))
	for _, k := range keys {
		out = append(out, groups[k].rollup(k, names[k]))
	}
	return out, nil
}

func (u *AggregationUseCase) BySite(ctx context.Context, f AggregationFilter) ([]entities.VarianceRollup, error) {
	snap, err := u.load(ctx, f)
	if err != nil {
		return nil, err
	}

	groups := map[string]*group{}
	for _, s := range snap.sites {
		groups[s.ID] = &group{}
	}
	for _, it := range snap.items {
		siteID := snap.itemSite[it.ID]
		g := groups[siteID]
		if g == nil {
			g = &group{}
			groups[siteID] = g
		}
		accumulate(g, it, snap.actuals[it.ID])
	}

	out := make([]entities.VarianceRollup, 0, len(snap.sites))
	for _, s := range snap.sites {
		out = append(out, groups[s.ID].rollup(s.ID, s.Name))
	}
	return out, nil
}

// Trends buckets recorded costs per calendar day (UTC). The estimated delta
// of a day is the planned cost of the work recorded that day: effective
// quantity × the item's estimated unit price, making the two series
// apples-to-apples. The cumulative series is a running sum re-derived from
// stored records on every call.
func (u *AggregationUseCase) Trends(ctx context.Context, f AggregationFilter) ([]entities.TrendPoint, []entities.CumulativePoint, error) {
	snap, err := u.load(ctx, f)
	if err != nil {
		return nil, nil, err
	}

	itemByID := map[string]entities.EstimateItem{}
	for _, it := range snap.items {
		itemByID[it.ID] = it
	}

	type bucket struct{ estimated, actual float64 }
	buckets := map[time.Time]*bucket{}
	for itemID, acs := range snap.actuals {
		it := itemByID[itemID]
		for _, ac := range acs {
			day := ac.RecordedAt.UTC().Truncate(24 * time.Hour)
			b := buckets[day]
			if b == nil {
				b = &bucket{}
				buckets[day] = b
			}
			qty := it.Quantity
			if ac.ActualQuantity != nil {
				qty = *ac.ActualQuantity
			}
			b.estimated += qty * it.UnitPrice
			b.actual += qty * ac.ActualUnitPrice
		}
	}

	days := make([]time.Time, 0, len(buckets))
	for d := range buckets {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	daily := make([]entities.TrendPoint, 0, len(days))
	cumulative := make([]entities.CumulativePoint, 0, len(days))
	runEstimated, runActual := 0.0, 0.0
	for _, d := range days {
		b := buckets[d]
		daily = append(daily, entities.TrendPoint{
			Date:                d,
			TotalEstimatedDelta: roundCurrency(b.estimated),
			TotalActualDelta:    roundCurrency(b.actual),
		})
		runEstimated += b.estimated
		runActual += b.actual
		cumulative = append(cumulative, entities.CumulativePoint{
			Date:           d,
			TotalEstimated: roundCurrency(runEstimated),
			TotalActual:    roundCurrency(runActual),
		})
	}
	return daily, cumulative, nil
}

// ItemVariances flattens the snapshot into one variance view per item,
// summing multiple actual-cost records before comparing against the item's
// recomputed estimated total. Output is ordered by item id.
func (u *AggregationUseCase) ItemVariances(ctx context.Context, f AggregationFilter) ([]entities.ItemVariance, error) {
	snap, err := u.load(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ItemVariance, 0, len(snap.items))
	for _, it := range snap.items {
		estimated := it.Quantity * it.UnitPrice
		acs := snap.actuals[it.ID]

		iv := entities.ItemVariance{
			ItemID:         it.ID,
			EstimateID:     it.EstimateID,
			SiteID:         snap.itemSite[it.ID],
			CategoryID:     it.CategoryID,
			Description:    it.Description,
			TotalEstimated: roundCurrency(estimated),
		}
		if len(acs) == 0 {
			iv.Status = entities.VarianceStatusNoActual
			out = append(out, iv)
			continue
		}

		actual := 0.0
		for _, ac := range acs {
			actual += ac.TotalActual
		}
		variance := actual - estimated
		pct := 0.0
		if estimated != 0 {
			pct = variance / estimated * 100
		}
		iv.TotalActual = roundCurrency(actual)
		iv.VarianceAmount = roundCurrency(variance)
		iv.VariancePercentage = roundPercent(pct)
		iv.Status = entities.VarianceStatusFor(true, iv.VariancePercentage)
		out = append(out, iv)
	}
	return out, nil
}

func accumulate(g *group, it entities.EstimateItem, acs []entities.ActualCost) {
	g.itemCount++
	g.estimated += it.Quantity * it.UnitPrice
	if len(acs) == 0 {
		return
	}
	g.itemsWithActuals++
	for _, ac := range acs {
		g.actual += ac.TotalActual
	}
}

func inDateRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

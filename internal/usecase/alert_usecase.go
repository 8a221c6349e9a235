package usecase

import (
	"context"
	"errors"
	"math"
	"sort"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase/interfaces"
)

var (
	ErrInvalidDirection = errors.New("direction must be over, under or both")
	ErrInvalidThreshold = errors.New("threshold must not be negative")
)

// Direction selects which side of the budget a ranking looks at.

type Direction string

const (
	DirectionOver  Direction = "over"
	DirectionUnder Direction = "under"
	DirectionBoth  Direction = "both"
)

const defaultTopLimit = 10

// AlertOptions configures the alerting engine. IncludeUnderBudget switches
// variance alerts from the signed comparison (variance_percentage > threshold,
// over-budget only) to the absolute one (|variance_percentage| > threshold).
type AlertOptions struct {
	DefaultLimit       int
	IncludeUnderBudget bool
}

// IAlertUseCase ranks per-item variances and produces threshold alerts. Both
// are pure queries over the current record set: no persisted alert state, no
// cross-call deduplication.

type IAlertUseCase interface {
	TopVariances(ctx context.Context, f AggregationFilter, limit int, direction Direction) ([]entities.ItemVariance, error)
	Alerts(ctx context.Context, threshold float64) (entities.AlertSet, error)
}

type AlertUseCase struct {
	agg      IAggregationUseCase
	siteRepo interfaces.ISiteRepository
	opts     AlertOptions
}

var _ IAlertUseCase = (*AlertUseCase)(nil)

func NewAlertUseCase(agg IAggregationUseCase, siteRepo interfaces.ISiteRepository, opts AlertOptions) *AlertUseCase {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = defaultTopLimit
	}
	return &AlertUseCase{agg: agg, siteRepo: siteRepo, opts: opts}
}

// TopVariances returns the items most over or under budget. Items without
// any recorded actual cost have no variance and are excluded. Ordering:
//
//	both:  |variance_percentage| descending
//	over:  variance_percentage descending
//	under: variance_percentage ascending (most negative first)
//
// Ties break by variance_amount descending, then item id ascending, so the
// result is fully deterministic.
func (u *AlertUseCase) TopVariances(ctx context.Context, f AggregationFilter, limit int, direction Direction) ([]entities.ItemVariance, error) {
	switch direction {
	case DirectionOver, DirectionUnder, DirectionBoth:
	case "":
		direction = DirectionBoth
	default:
		return nil, ErrInvalidDirection
	}
	if limit <= 0 {
		limit = u.opts.DefaultLimit
	}

	variances, err := u.agg.ItemVariances(ctx, f)
	if err != nil {
		return nil, err
	}

	ranked := make([]entities.ItemVariance, 0, len(variances))
	for _, v := range variances {
		if v.Status == entities.VarianceStatusNoActual {
			continue
		}
		ranked = append(ranked, v)
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		var less, equal bool
		switch direction {
		case DirectionOver:
			less, equal = a.VariancePercentage > b.VariancePercentage, a.VariancePercentage == b.VariancePercentage
		case DirectionUnder:
			less, equal = a.VariancePercentage < b.VariancePercentage, a.VariancePercentage == b.VariancePercentage
		default:
			absA, absB := math.Abs(a.VariancePercentage), math.Abs(b.VariancePercentage)
			less, equal = absA > absB, absA == absB
		}
		if !equal {
			return less
		}
		if a.VarianceAmount != b.VarianceAmount {
			return a.VarianceAmount > b.VarianceAmount
		}
		return a.ItemID < b.ItemID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Alerts evaluates the whole record set against the threshold. Variance
// alerts compare signed percentage by default (over-budget only); budget
// alerts flag sites whose aggregated actual cost exceeds their limit, and
// only sites carrying a limit are evaluated.
func (u *AlertUseCase) Alerts(ctx context.Context, threshold float64) (entities.AlertSet, error) {
	if threshold < 0 {
		return entities.AlertSet{}, ErrInvalidThreshold
	}

	variances, err := u.agg.ItemVariances(ctx, AggregationFilter{})
	if err != nil {
		return entities.AlertSet{}, err
	}

	varianceAlerts := make([]entities.ItemVariance, 0)
	for _, v := range variances {
		if v.Status == entities.VarianceStatusNoActual {
			continue
		}
		flagged := v.VariancePercentage > threshold
		if u.opts.IncludeUnderBudget {
			flagged = math.Abs(v.VariancePercentage) > threshold
		}
		if flagged {
			varianceAlerts = append(varianceAlerts, v)
		}
	}
	sort.Slice(varianceAlerts, func(i, j int) bool {
		a, b := varianceAlerts[i], varianceAlerts[j]
		absA, absB := math.Abs(a.VariancePercentage), math.Abs(b.VariancePercentage)
		if absA != absB {
			return absA > absB
		}
		if a.VarianceAmount != b.VarianceAmount {
			return a.VarianceAmount > b.VarianceAmount
		}
		return a.ItemID < b.ItemID
	})

	rollups, err := u.agg.BySite(ctx, AggregationFilter{})
	if err != nil {
		return entities.AlertSet{}, err
	}
	sites, err := u.siteRepo.List(ctx)
	if err != nil {
		return entities.AlertSet{}, err
	}
	limits := map[string]*float64{}
	names := map[string]string{}
	for _, s := range sites {
		limits[s.ID] = s.BudgetLimit
		names[s.ID] = s.Name
	}

	budgetAlerts := make([]entities.BudgetAlert, 0)
	for _, r := range rollups {
		limit := limits[r.Key]
		if limit == nil || r.TotalActual <= *limit {
			continue
		}
		budgetAlerts = append(budgetAlerts, entities.BudgetAlert{
			SiteID:      r.Key,
			SiteName:    names[r.Key],
			BudgetLimit: *limit,
			TotalActual: r.TotalActual,
			Overrun:     roundCurrency(r.TotalActual - *limit),
		})
	}
	sort.Slice(budgetAlerts, func(i, j int) bool {
		if budgetAlerts[i].Overrun != budgetAlerts[j].Overrun {
			return budgetAlerts[i].Overrun > budgetAlerts[j].Overrun
		}
		return budgetAlerts[i].SiteID < budgetAlerts[j].SiteID
	})

	return entities.AlertSet{VarianceAlerts: varianceAlerts, BudgetAlerts: budgetAlerts}, nil
}

package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase/interfaces"
)

var ErrRendererNotConfigured = errors.New("report renderer not configured")

// IReportUseCase assembles aggregation and alerting outputs plus entity
// metadata into renderer-ready payloads. It performs no rendering itself;
// Render hands a payload to the external document renderer.
//
// A missing root entity is a hard failure; an existing entity with no
// items/actuals produces an empty-but-well-formed payload (zero rows, zero
// totals). Assembly is all-or-nothing: any read failure aborts the whole
// report rather than returning a partially populated one.

type IReportUseCase interface {
	BuildEstimateReport(ctx context.Context, estimateID string) (entities.ReportPayload, error)
	BuildVarianceReport(ctx context.Context, siteID string) (entities.ReportPayload, error)
	BuildSiteReport(ctx context.Context, siteID string) (entities.ReportPayload, error)
	Render(ctx context.Context, payload entities.ReportPayload) (artifact []byte, filename string, err error)
}

type ReportUseCase struct {
	estimateRepo interfaces.IEstimateRepository
	itemRepo     interfaces.IEstimateItemRepository
	siteRepo     interfaces.ISiteRepository
	categoryRepo interfaces.ICategoryRepository
	agg          IAggregationUseCase
	alerts       IAlertUseCase
	renderer     interfaces.IReportRenderer
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	estimateRepo interfaces.IEstimateRepository,
	itemRepo interfaces.IEstimateItemRepository,
	siteRepo interfaces.ISiteRepository,
	categoryRepo interfaces.ICategoryRepository,
	agg IAggregationUseCase,
	alerts IAlertUseCase,
	renderer interfaces.IReportRenderer,
) *ReportUseCase {
	return &ReportUseCase{
		estimateRepo: estimateRepo,
		itemRepo:     itemRepo,
		siteRepo:     siteRepo,
		categoryRepo: categoryRepo,
		agg:          agg,
		alerts:       alerts,
		renderer:     renderer,
	}
}

// BuildEstimateReport lists every item of one estimate with its variance
// figures, ordered by category sort order then item id.
func (u *ReportUseCase) BuildEstimateReport(ctx context.Context, estimateID string) (entities.ReportPayload, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.ReportPayload{}, ErrInvalidEstimateID
	}

	e, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.ReportPayload{}, err
	}
	if e.ID == "" {
		return entities.ReportPayload{}, ErrEstimateNotFound
	}

	variances, err := u.agg.ItemVariances(ctx, AggregationFilter{EstimateID: estimateID})
	if err != nil {
		return entities.ReportPayload{}, err
	}
	categoryNames, categoryOrder, err := u.categoryLookup(ctx)
	if err != nil {
		return entities.ReportPayload{}, err
	}

	ordered := make([]entities.ItemVariance, len(variances))
	copy(ordered, variances)
	sortItemVariances(ordered, categoryOrder)

	rows := make([][]string, 0, len(ordered))
	totalEstimated, totalActual := 0.0, 0.0
	for _, v := range ordered {
		rows = append(rows, []string{
			v.Description,
			categoryNames[v.CategoryID],
			formatMoney(v.TotalEstimated),
			formatMoney(v.TotalActual),
			formatMoney(v.VarianceAmount),
			formatPercent(v.VariancePercentage),
			string(v.Status),
		})
		totalEstimated += v.TotalEstimated
		totalActual += v.TotalActual
	}

	payload := entities.ReportPayload{
		Title:       "Estimate Report - " + e.Title + " (v" + strconv.Itoa(e.Version) + ")",
		GeneratedAt: time.Now().UTC(),
		Columns:     []string{"Item", "Category", "Estimated", "Actual", "Variance", "Variance %", "Status"},
		Rows:        rows,
		Totals:      varianceTotals(totalEstimated, totalActual),
	}
	return payload, nil
}

// BuildVarianceReport ranks every item of one site by absolute variance, the
// rows the alerting engine would surface first.
func (u *ReportUseCase) BuildVarianceReport(ctx context.Context, siteID string) (entities.ReportPayload, error) {
	site, err := u.requireSite(ctx, siteID)
	if err != nil {
		return entities.ReportPayload{}, err
	}

	// The report lists every item, worst first; math.MaxInt32 disables the
	// ranking engine's truncation.
	filter := AggregationFilter{SiteID: site.ID}
	ranked, err := u.alerts.TopVariances(ctx, filter, math.MaxInt32, DirectionBoth)
	if err != nil {
		return entities.ReportPayload{}, err
	}
	categoryNames, _, err := u.categoryLookup(ctx)
	if err != nil {
		return entities.ReportPayload{}, err
	}

	rows := make([][]string, 0, len(ranked))
	totalEstimated, totalActual := 0.0, 0.0
	for _, v := range ranked {
		rows = append(rows, []string{
			v.Description,
			categoryNames[v.CategoryID],
			formatMoney(v.TotalEstimated),
			formatMoney(v.TotalActual),
			formatMoney(v.VarianceAmount),
			formatPercent(v.VariancePercentage),
			string(v.Status),
		})
		totalEstimated += v.TotalEstimated
		totalActual += v.TotalActual
	}

	payload := entities.ReportPayload{
		Title:       "Variance Report - " + site.Name,
		GeneratedAt: time.Now().UTC(),
		Columns:     []string{"Item", "Category", "Estimated", "Actual", "Variance", "Variance %", "Status"},
		Rows:        rows,
		Totals:      varianceTotals(totalEstimated, totalActual),
	}
	return payload, nil
}

// BuildSiteReport summarizes every estimate under one site.
func (u *ReportUseCase) BuildSiteReport(ctx context.Context, siteID string) (entities.ReportPayload, error) {
	site, err := u.requireSite(ctx, siteID)
	if err != nil {
		return entities.ReportPayload{}, err
	}

	estimates, err := u.estimateRepo.ListBySiteID(ctx, site.ID)
	if err != nil {
		return entities.ReportPayload{}, err
	}
	variances, err := u.agg.ItemVariances(ctx, AggregationFilter{SiteID: site.ID})
	if err != nil {
		return entities.ReportPayload{}, err
	}

	type estTotals struct{ estimated, actual float64 }
	perEstimate := map[string]*estTotals{}
	for _, v := range variances {
		t := perEstimate[v.EstimateID]
		if t == nil {
			t = &estTotals{}
			perEstimate[v.EstimateID] = t
		}
		t.estimated += v.TotalEstimated
		t.actual += v.TotalActual
	}

	sortEstimates(estimates)

	rows := make([][]string, 0, len(estimates))
	totalEstimated, totalActual := 0.0, 0.0
	for _, e := range estimates {
		t := perEstimate[e.ID]
		if t == nil {
			t = &estTotals{}
		}
		rows = append(rows, []string{
			e.Title,
			"v" + strconv.Itoa(e.Version),
			string(e.Status),
			formatMoney(roundCurrency(t.estimated)),
			formatMoney(roundCurrency(t.actual)),
			formatMoney(roundCurrency(t.actual - t.estimated)),
		})
		totalEstimated += t.estimated
		totalActual += t.actual
	}

	payload := entities.ReportPayload{
		Title:       "Site Report - " + site.Name,
		GeneratedAt: time.Now().UTC(),
		Columns:     []string{"Estimate", "Version", "Status", "Estimated", "Actual", "Variance"},
		Rows:        rows,
		Totals:      varianceTotals(totalEstimated, totalActual),
	}
	return payload, nil
}

func (u *ReportUseCase) Render(ctx context.Context, payload entities.ReportPayload) ([]byte, string, error) {
	if u.renderer == nil {
		return nil, "", ErrRendererNotConfigured
	}
	log.Printf("[report][usecase] rendering %q rows=%d", payload.Title, len(payload.Rows))
	return u.renderer.Render(ctx, payload)
}

func (u *ReportUseCase) requireSite(ctx context.Context, siteID string) (entities.Site, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		return entities.Site{}, ErrInvalidSiteID
	}
	site, err := u.siteRepo.GetByID(ctx, siteID)
	if err != nil {
		return entities.Site{}, err
	}
	if site.ID == "" {
		return entities.Site{}, ErrSiteNotFound
	}
	return site, nil
}

func (u *ReportUseCase) categoryLookup(ctx context.Context) (names map[string]string, order map[string]int, err error) {
	cats, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	names = map[string]string{}
	order = map[string]int{}
	for _, c := range cats {
		names[c.ID] = c.Name
		order[c.ID] = c.SortOrder
	}
	return names, order, nil
}

func varianceTotals(estimated, actual float64) map[string]float64 {
	variance := actual - estimated
	pct := 0.0
	if estimated != 0 {
		pct = variance / estimated * 100
	}
	return map[string]float64{
		"total_estimated":     roundCurrency(estimated),
		"total_actual":        roundCurrency(actual),
		"variance_amount":     roundCurrency(variance),
		"variance_percentage": roundPercent(pct),
	}
}

func sortItemVariances(vs []entities.ItemVariance, categoryOrder map[string]int) {
	sort.Slice(vs, func(i, j int) bool {
		if categoryOrder[vs[i].CategoryID] != categoryOrder[vs[j].CategoryID] {
			return categoryOrder[vs[i].CategoryID] < categoryOrder[vs[j].CategoryID]
		}
		return vs[i].ItemID < vs[j].ItemID
	})
}

func sortEstimates(es []entities.Estimate) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].Version != es[j].Version {
			return es[i].Version < es[j].Version
		}
		return es[i].ID < es[j].ID
	})
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestAlertUseCase_TopVariances(t *testing.T) {
	store := seedPortfolio(t)
	uc := NewAlertUseCase(aggregationOver(store), store.Sites(), AlertOptions{})

	t.Run("over direction ranks by signed percentage", func(t *testing.T) {
		top, err := uc.TopVariances(context.Background(), AggregationFilter{}, 2, DirectionOver)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(top) != 2 {
			t.Fatalf("expected 2, got %d", len(top))
		}
		if top[0].ItemID != "item-3" || top[0].VariancePercentage != 20 {
			t.Fatalf("unexpected first: %+v", top[0])
		}
		if top[1].ItemID != "item-1" || top[1].VariancePercentage != 6.67 {
			t.Fatalf("unexpected second: %+v", top[1])
		}
	})

	t.Run("both direction ranks by magnitude", func(t *testing.T) {
		top, err := uc.TopVariances(context.Background(), AggregationFilter{}, 3, DirectionBoth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"item-3", "item-2", "item-1"}
		if len(top) != 3 {
			t.Fatalf("expected 3, got %d", len(top))
		}
		for i, id := range want {
			if top[i].ItemID != id {
				t.Fatalf("position %d: want %s, got %+v", i, id, top[i])
			}
		}
	})

	t.Run("under direction surfaces savings first", func(t *testing.T) {
		top, err := uc.TopVariances(context.Background(), AggregationFilter{}, 1, DirectionUnder)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(top) != 1 || top[0].ItemID != "item-2" || top[0].VariancePercentage != -10 {
			t.Fatalf("unexpected: %+v", top)
		}
	})

	t.Run("items without actuals never rank", func(t *testing.T) {
		top, err := uc.TopVariances(context.Background(), AggregationFilter{}, 100, DirectionBoth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, v := range top {
			if v.ItemID == "item-5" {
				t.Fatalf("no_actual item ranked: %+v", v)
			}
		}
		if len(top) != 4 {
			t.Fatalf("expected 4 ranked items, got %d", len(top))
		}
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		uc := NewAlertUseCase(aggregationOver(store), store.Sites(), AlertOptions{DefaultLimit: 1})
		top, err := uc.TopVariances(context.Background(), AggregationFilter{}, 0, DirectionBoth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(top) != 1 {
			t.Fatalf("expected default limit 1, got %d", len(top))
		}
	})

	t.Run("invalid direction", func(t *testing.T) {
		_, err := uc.TopVariances(context.Background(), AggregationFilter{}, 2, "sideways")
		if !errors.Is(err, ErrInvalidDirection) {
			t.Fatalf("expected ErrInvalidDirection, got %v", err)
		}
	})
}

func TestAlertUseCase_Alerts(t *testing.T) {
	t.Run("signed threshold flags over-budget only", func(t *testing.T) {
		store := seedPortfolio(t)
		uc := NewAlertUseCase(aggregationOver(store), store.Sites(), AlertOptions{})

		set, err := uc.Alerts(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(set.VarianceAlerts) != 2 {
			t.Fatalf("expected 2 variance alerts, got %+v", set.VarianceAlerts)
		}
		if set.VarianceAlerts[0].ItemID != "item-3" || set.VarianceAlerts[1].ItemID != "item-1" {
			t.Fatalf("unexpected alert order: %+v", set.VarianceAlerts)
		}
		// -10% stays silent under the signed comparison; 3% is below threshold.
		for _, v := range set.VarianceAlerts {
			if v.ItemID == "item-2" || v.ItemID == "item-4" {
				t.Fatalf("unexpected alert: %+v", v)
			}
		}
	})

	t.Run("absolute threshold includes under-budget", func(t *testing.T) {
		store := seedPortfolio(t)
		uc := NewAlertUseCase(aggregationOver(store), store.Sites(), AlertOptions{IncludeUnderBudget: true})

		set, err := uc.Alerts(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"item-3", "item-2", "item-1"}
		if len(set.VarianceAlerts) != 3 {
			t.Fatalf("expected 3 variance alerts, got %+v", set.VarianceAlerts)
		}
		for i, id := range want {
			if set.VarianceAlerts[i].ItemID != id {
				t.Fatalf("position %d: want %s, got %+v", i, id, set.VarianceAlerts[i])
			}
		}
	})

	t.Run("budget alerts only for sites carrying a limit", func(t *testing.T) {
		store := seedPortfolio(t)
		tight := 15000.0
		if _, err := store.Sites().UpdateBudgetLimit(context.Background(), "site-1", &tight); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc := NewAlertUseCase(aggregationOver(store), store.Sites(), AlertOptions{})

		set, err := uc.Alerts(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(set.BudgetAlerts) != 1 {
			t.Fatalf("expected 1 budget alert, got %+v", set.BudgetAlerts)
		}
		ba := set.BudgetAlerts[0]
		if ba.SiteID != "site-1" || ba.SiteName != "Harbor Tower" {
			t.Fatalf("unexpected alert: %+v", ba)
		}
		if ba.TotalActual != 16900 || ba.Overrun != 1900 {
			t.Fatalf("unexpected figures: %+v", ba)
		}
	})

	t.Run("negative threshold rejected", func(t *testing.T) {
		store := seedPortfolio(t)
		uc := NewAlertUseCase(aggregationOver(store), store.Sites(), AlertOptions{})
		_, err := uc.Alerts(context.Background(), -1)
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Fatalf("expected ErrInvalidThreshold, got %v", err)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"costwatch/internal/domain/entities"
	mock_interfaces "costwatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestActualCostUseCase_Record(t *testing.T) {
	item := entities.EstimateItem{
		ID:         "item-1",
		EstimateID: "est-1",
		Quantity:   50,
		UnitPrice:  300,
	}

	t.Run("invalid item id", func(t *testing.T) {
		uc := NewActualCostUseCase(nil, nil)
		_, err := uc.Record(context.Background(), RecordActualCostInput{ItemID: "  ", ActualUnitPrice: 10})
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewActualCostUseCase(nil, nil)
		_, err := uc.Record(context.Background(), RecordActualCostInput{ItemID: "item-1", ActualUnitPrice: -1})
		if !errors.Is(err, ErrNegativeActualPrice) {
			t.Fatalf("expected ErrNegativeActualPrice, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		uc := NewActualCostUseCase(nil, nil)
		q := -2.0
		_, err := uc.Record(context.Background(), RecordActualCostInput{ItemID: "item-1", ActualUnitPrice: 10, ActualQuantity: &q})
		if !errors.Is(err, ErrNegativeActualQuantity) {
			t.Fatalf("expected ErrNegativeActualQuantity, got %v", err)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewActualCostUseCase(nil, itemRepo)

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-x").Return(entities.EstimateItem{}, nil)

		_, err := uc.Record(context.Background(), RecordActualCostInput{ItemID: "item-x", ActualUnitPrice: 10})
		if !errors.Is(err, ErrItemReferenceMissing) {
			t.Fatalf("expected ErrItemReferenceMissing, got %v", err)
		}
	})

	t.Run("derives variance with defaulted quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActualCostRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewActualCostUseCase(repo, itemRepo)

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(item, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.ActualCost{})).DoAndReturn(
			func(_ context.Context, ac entities.ActualCost) (entities.ActualCost, error) {
				if ac.ID == "" || ac.ItemID != "item-1" {
					t.Fatalf("unexpected record: %+v", ac)
				}
				if ac.ActualQuantity != nil {
					t.Fatalf("expected nil actual quantity")
				}
				if ac.TotalActual != 16000 || ac.VarianceAmount != 1000 || ac.VariancePercentage != 6.67 {
					t.Fatalf("unexpected variance: %+v", ac)
				}
				if ac.RecordedAt.IsZero() || ac.CreatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return ac, nil
			},
		)

		res, err := uc.Record(context.Background(), RecordActualCostInput{ItemID: "item-1", ActualUnitPrice: 320})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.VarianceAmount != 1000 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("derives from the normalized stored inputs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActualCostRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewActualCostUseCase(repo, itemRepo)

		wide := entities.EstimateItem{ID: "item-1", EstimateID: "est-1", Quantity: 100, UnitPrice: 10}

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(wide, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ac entities.ActualCost) (entities.ActualCost, error) {
				if ac.ActualUnitPrice != 10.02 {
					t.Fatalf("expected normalized price 10.02: %+v", ac)
				}
				// Stored figures must reproduce from the stored price, not the
				// raw input, or a later no-op correction would shift them.
				if ac.TotalActual != 1002 || ac.VarianceAmount != 2 || ac.VariancePercentage != 0.2 {
					t.Fatalf("unexpected variance: %+v", ac)
				}
				return ac, nil
			},
		)

		if _, err := uc.Record(context.Background(), RecordActualCostInput{ItemID: "item-1", ActualUnitPrice: 10.018}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("honours explicit quantity and recorded_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActualCostRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewActualCostUseCase(repo, itemRepo)

		recordedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		qty := 45.0

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(item, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ac entities.ActualCost) (entities.ActualCost, error) {
				if ac.ActualQuantity == nil || *ac.ActualQuantity != 45 {
					t.Fatalf("expected actual quantity 45: %+v", ac)
				}
				if !ac.RecordedAt.Equal(recordedAt) {
					t.Fatalf("expected recorded_at preserved: %v", ac.RecordedAt)
				}
				if ac.TotalActual != 14400 || ac.VarianceAmount != -600 || ac.VariancePercentage != -4 {
					t.Fatalf("unexpected variance: %+v", ac)
				}
				return ac, nil
			},
		)

		if _, err := uc.Record(context.Background(), RecordActualCostInput{
			ItemID: "item-1", ActualUnitPrice: 320, ActualQuantity: &qty, RecordedAt: &recordedAt,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("item deleted mid-flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActualCostRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewActualCostUseCase(repo, itemRepo)

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(item, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.ActualCost{}, nil)

		_, err := uc.Record(context.Background(), RecordActualCostInput{ItemID: "item-1", ActualUnitPrice: 320})
		if !errors.Is(err, ErrItemReferenceMissing) {
			t.Fatalf("expected ErrItemReferenceMissing, got %v", err)
		}
	})
}

func TestActualCostUseCase_Correct(t *testing.T) {
	item := entities.EstimateItem{ID: "item-1", Quantity: 50, UnitPrice: 300}
	existingQty := 45.0
	existing := entities.ActualCost{
		ID:              "ac-1",
		ItemID:          "item-1",
		ActualUnitPrice: 320,
		ActualQuantity:  &existingQty,
		RecordedAt:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewActualCostUseCase(nil, nil)
		_, err := uc.Correct(context.Background(), " ", CorrectActualCostInput{})
		if !errors.Is(err, ErrInvalidActualCostID) {
			t.Fatalf("expected ErrInvalidActualCostID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActualCostRepository(ctrl)
		uc := NewActualCostUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ac-x").Return(entities.ActualCost{}, nil)

		_, err := uc.Correct(context.Background(), "ac-x", CorrectActualCostInput{})
		if !errors.Is(err, ErrActualCostNotFound) {
			t.Fatalf("expected ErrActualCostNotFound, got %v", err)
		}
	})

	t.Run("clearing quantity falls back to estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActualCostRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewActualCostUseCase(repo, itemRepo)

		repo.EXPECT().GetByID(gomock.Any(), "ac-1").Return(existing, nil)
		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(item, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ac entities.ActualCost) (entities.ActualCost, error) {
				if ac.ActualQuantity != nil {
					t.Fatalf("expected cleared quantity: %+v", ac)
				}
				if ac.TotalActual != 16000 || ac.VarianceAmount != 1000 || ac.VariancePercentage != 6.67 {
					t.Fatalf("unexpected variance: %+v", ac)
				}
				return ac, nil
			},
		)

		if _, err := uc.Correct(context.Background(), "ac-1", CorrectActualCostInput{ClearActualQuantity: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("price correction recomputes variance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActualCostRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewActualCostUseCase(repo, itemRepo)

		newPrice := 300.0

		repo.EXPECT().GetByID(gomock.Any(), "ac-1").Return(existing, nil)
		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(item, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ac entities.ActualCost) (entities.ActualCost, error) {
				// 45 × 300 = 13500 vs 15000 estimated.
				if ac.TotalActual != 13500 || ac.VarianceAmount != -1500 || ac.VariancePercentage != -10 {
					t.Fatalf("unexpected variance: %+v", ac)
				}
				return ac, nil
			},
		)

		if _, err := uc.Correct(context.Background(), "ac-1", CorrectActualCostInput{ActualUnitPrice: &newPrice}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestActualCostUseCase_Queries(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActualCostRepository(ctrl)
		uc := NewActualCostUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ac-x").Return(entities.ActualCost{}, nil)

		_, err := uc.GetByID(context.Background(), "ac-x")
		if !errors.Is(err, ErrActualCostNotFound) {
			t.Fatalf("expected ErrActualCostNotFound, got %v", err)
		}
	})

	t.Run("list requires existing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewActualCostUseCase(nil, itemRepo)

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-x").Return(entities.EstimateItem{}, nil)

		_, err := uc.ListByItemID(context.Background(), "item-x")
		if !errors.Is(err, ErrItemReferenceMissing) {
			t.Fatalf("expected ErrItemReferenceMissing, got %v", err)
		}
	})

	t.Run("list passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIActualCostRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewActualCostUseCase(repo, itemRepo)

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.EstimateItem{ID: "item-1"}, nil)
		repo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return([]entities.ActualCost{{ID: "ac-1"}}, nil)

		costs, err := uc.ListByItemID(context.Background(), "item-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(costs) != 1 || costs[0].ID != "ac-1" {
			t.Fatalf("unexpected costs: %+v", costs)
		}
	})
}

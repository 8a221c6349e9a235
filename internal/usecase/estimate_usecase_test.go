package usecase

import (
	"context"
	"errors"
	"testing"

	"costwatch/internal/domain/entities"
	mock_interfaces "costwatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("invalid site id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "  ", "Foundation v1")
		if !errors.Is(err, ErrInvalidSiteID) {
			t.Fatalf("expected ErrInvalidSiteID, got %v", err)
		}
	})

	t.Run("invalid title", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "site-1", "   ")
		if !errors.Is(err, ErrInvalidEstimateTitle) {
			t.Fatalf("expected ErrInvalidEstimateTitle, got %v", err)
		}
	})

	t.Run("site missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		siteRepo := mock_interfaces.NewMockISiteRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, siteRepo, nil, nil)

		siteRepo.EXPECT().GetByID(gomock.Any(), "site-x").Return(entities.Site{}, nil)

		_, err := uc.Create(context.Background(), "site-x", "Foundation v1")
		if !errors.Is(err, ErrSiteNotFound) {
			t.Fatalf("expected ErrSiteNotFound, got %v", err)
		}
	})

	t.Run("title conflict ignores case and archived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		siteRepo := mock_interfaces.NewMockISiteRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, siteRepo, nil, nil)

		siteRepo.EXPECT().GetByID(gomock.Any(), "site-1").Return(entities.Site{ID: "site-1"}, nil)
		repo.EXPECT().ListBySiteID(gomock.Any(), "site-1").Return([]entities.Estimate{
			{ID: "est-1", Title: "FOUNDATION V1", Status: entities.EstimateStatusApproved},
		}, nil)

		_, err := uc.Create(context.Background(), "site-1", "foundation v1")
		if !errors.Is(err, ErrEstimateTitleConflict) {
			t.Fatalf("expected ErrEstimateTitleConflict, got %v", err)
		}
	})

	t.Run("archived title is reusable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		siteRepo := mock_interfaces.NewMockISiteRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, siteRepo, nil, nil)

		siteRepo.EXPECT().GetByID(gomock.Any(), "site-1").Return(entities.Site{ID: "site-1"}, nil)
		repo.EXPECT().ListBySiteID(gomock.Any(), "site-1").Return([]entities.Estimate{
			{ID: "est-1", Title: "Foundation v1", Status: entities.EstimateStatusArchived},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.Version != 1 || e.Status != entities.EstimateStatusDraft {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				return e, nil
			},
		)

		if _, err := uc.Create(context.Background(), "site-1", "Foundation v1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_Duplicate(t *testing.T) {
	source := entities.Estimate{
		ID:      "est-1",
		SiteID:  "site-1",
		Title:   "Foundation v1",
		Version: 3,
		Status:  entities.EstimateStatusApproved,
	}
	sourceItems := []entities.EstimateItem{
		{ID: "item-1", EstimateID: "est-1", CategoryID: "cat-1", Description: "Concrete", Quantity: 50, Unit: "m3", UnitPrice: 300},
		{ID: "item-2", EstimateID: "est-1", CategoryID: "cat-2", Description: "Rebar", Quantity: 2, Unit: "t", UnitPrice: 1200},
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-x").Return(entities.Estimate{}, nil)

		_, err := uc.Duplicate(context.Background(), "est-x", "Foundation v2")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("title conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(source, nil)
		repo.EXPECT().ListBySiteID(gomock.Any(), "site-1").Return([]entities.Estimate{source}, nil)

		_, err := uc.Duplicate(context.Background(), "est-1", "Foundation v1")
		if !errors.Is(err, ErrEstimateTitleConflict) {
			t.Fatalf("expected ErrEstimateTitleConflict, got %v", err)
		}
	})

	t.Run("deep copy with bumped version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewEstimateUseCase(repo, itemRepo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(source, nil)
		repo.EXPECT().ListBySiteID(gomock.Any(), "site-1").Return([]entities.Estimate{source}, nil)
		itemRepo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(sourceItems, nil)
		repo.EXPECT().CreateWithItems(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, dup entities.Estimate, copies []entities.EstimateItem) (entities.Estimate, error) {
				if dup.ID == "" || dup.ID == source.ID {
					t.Fatalf("expected fresh id: %+v", dup)
				}
				if dup.Version != 4 || dup.Status != entities.EstimateStatusDraft || dup.SiteID != "site-1" {
					t.Fatalf("unexpected duplicate: %+v", dup)
				}
				if dup.TotalEstimated != 17400 {
					t.Fatalf("expected total 17400, got %v", dup.TotalEstimated)
				}
				if len(copies) != 2 {
					t.Fatalf("expected 2 items, got %d", len(copies))
				}
				for i, cp := range copies {
					if cp.ID == sourceItems[i].ID || cp.EstimateID != dup.ID {
						t.Fatalf("expected re-keyed item: %+v", cp)
					}
					if cp.Quantity != sourceItems[i].Quantity || cp.UnitPrice != sourceItems[i].UnitPrice {
						t.Fatalf("expected copied inputs: %+v", cp)
					}
				}
				return dup, nil
			},
		)

		dup, err := uc.Duplicate(context.Background(), "est-1", "Foundation v2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dup.Title != "Foundation v2" {
			t.Fatalf("unexpected title: %s", dup.Title)
		}
	})
}

func TestEstimateUseCase_UpdateItem(t *testing.T) {
	item := entities.EstimateItem{ID: "item-1", EstimateID: "est-1", CategoryID: "cat-1", Quantity: 50, UnitPrice: 300}

	t.Run("negative quantity", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil, nil)
		q := -1.0
		_, err := uc.UpdateItem(context.Background(), "item-1", UpdateEstimateItemInput{Quantity: &q})
		if !errors.Is(err, ErrNegativeQuantity) {
			t.Fatalf("expected ErrNegativeQuantity, got %v", err)
		}
	})

	t.Run("item missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewEstimateUseCase(nil, itemRepo, nil, nil, nil)

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-x").Return(entities.EstimateItem{}, nil)

		_, err := uc.UpdateItem(context.Background(), "item-x", UpdateEstimateItemInput{})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("price edit retro-recomputes actuals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		acRepo := mock_interfaces.NewMockIActualCostRepository(ctrl)
		uc := NewEstimateUseCase(nil, itemRepo, nil, acRepo, nil)

		newPrice := 250.0

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(item, nil)
		acRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return([]entities.ActualCost{
			{ID: "ac-1", ItemID: "item-1", ActualUnitPrice: 320},
		}, nil)
		itemRepo.EXPECT().UpdateWithActuals(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.EstimateItem, actuals []entities.ActualCost) (entities.EstimateItem, error) {
				if it.UnitPrice != 250 || it.TotalEstimated != 12500 {
					t.Fatalf("unexpected item: %+v", it)
				}
				if len(actuals) != 1 {
					t.Fatalf("expected 1 actual, got %d", len(actuals))
				}
				// 50 × 320 = 16000 against the new 12500 estimate.
				ac := actuals[0]
				if ac.TotalActual != 16000 || ac.VarianceAmount != 3500 || ac.VariancePercentage != 28 {
					t.Fatalf("unexpected recompute: %+v", ac)
				}
				return it, nil
			},
		)

		if _, err := uc.UpdateItem(context.Background(), "item-1", UpdateEstimateItemInput{UnitPrice: &newPrice}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_StatusAndQueries(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "est-1", "finished")
		if !errors.Is(err, ErrInvalidEstimateStatus) {
			t.Fatalf("expected ErrInvalidEstimateStatus, got %v", err)
		}
	})

	t.Run("get recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		uc := NewEstimateUseCase(repo, itemRepo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		itemRepo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.EstimateItem{
			{ID: "item-1", Quantity: 50, UnitPrice: 300},
			{ID: "item-2", Quantity: 2, UnitPrice: 1200},
		}, nil)

		e, items, err := uc.GetByID(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.TotalEstimated != 17400 {
			t.Fatalf("expected 17400, got %v", e.TotalEstimated)
		}
		if items[0].TotalEstimated != 15000 || items[1].TotalEstimated != 2400 {
			t.Fatalf("unexpected item totals: %+v", items)
		}
	})

	t.Run("add item requires category", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil, nil)
		_, err := uc.AddItem(context.Background(), "est-1", EstimateItemInput{Quantity: 1, UnitPrice: 1})
		if !errors.Is(err, ErrInvalidCategoryID) {
			t.Fatalf("expected ErrInvalidCategoryID, got %v", err)
		}
	})

	t.Run("add item rejects unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		categoryRepo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil, categoryRepo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-x").Return(entities.Category{}, nil)

		_, err := uc.AddItem(context.Background(), "est-1", EstimateItemInput{CategoryID: "cat-x", Quantity: 1, UnitPrice: 1})
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("add item with known category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		categoryRepo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewEstimateUseCase(repo, itemRepo, nil, nil, categoryRepo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(entities.Category{ID: "cat-1"}, nil)
		itemRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.EstimateItem) (entities.EstimateItem, error) {
				if it.CategoryID != "cat-1" || it.TotalEstimated != 15000 {
					t.Fatalf("unexpected item: %+v", it)
				}
				return it, nil
			},
		)

		if _, err := uc.AddItem(context.Background(), "est-1", EstimateItemInput{
			CategoryID: "cat-1", Description: "Concrete", Quantity: 50, Unit: "m3", UnitPrice: 300,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("item category change rejects unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIEstimateItemRepository(ctrl)
		categoryRepo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewEstimateUseCase(nil, itemRepo, nil, nil, categoryRepo)

		newCat := "cat-x"

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.EstimateItem{ID: "item-1", CategoryID: "cat-1"}, nil)
		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-x").Return(entities.Category{}, nil)

		_, err := uc.UpdateItem(context.Background(), "item-1", UpdateEstimateItemInput{CategoryID: &newCat})
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

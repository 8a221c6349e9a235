package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"costwatch/internal/adapter/http/handlers/mocks"
	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestActualCostHandler_RecordActualCost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActualCostUseCase(ctrl)
		h := NewActualCostHandler(uc)

		r := gin.New()
		r.POST("/v1/items/:item_id/actuals", h.RecordActualCost)

		req := httptest.NewRequest(http.MethodPost, "/v1/items/item-1/actuals", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero price binds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActualCostUseCase(ctrl)
		h := NewActualCostHandler(uc)

		r := gin.New()
		r.POST("/v1/items/:item_id/actuals", h.RecordActualCost)

		uc.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input usecase.RecordActualCostInput) (entities.ActualCost, error) {
				if input.ItemID != "item-1" || input.ActualUnitPrice != 0 {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.ActualCost{ID: "ac-1", ItemID: "item-1"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/items/item-1/actuals", bytes.NewBufferString(`{"actual_unit_price":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("missing item maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActualCostUseCase(ctrl)
		h := NewActualCostHandler(uc)

		r := gin.New()
		r.POST("/v1/items/:item_id/actuals", h.RecordActualCost)

		uc.EXPECT().Record(gomock.Any(), gomock.Any()).Return(entities.ActualCost{}, usecase.ErrItemReferenceMissing)

		req := httptest.NewRequest(http.MethodPost, "/v1/items/item-x/actuals", bytes.NewBufferString(`{"actual_unit_price":320}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("response carries derived fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActualCostUseCase(ctrl)
		h := NewActualCostHandler(uc)

		r := gin.New()
		r.POST("/v1/items/:item_id/actuals", h.RecordActualCost)

		uc.EXPECT().Record(gomock.Any(), gomock.Any()).Return(entities.ActualCost{
			ID: "ac-1", ItemID: "item-1", ActualUnitPrice: 320,
			TotalActual: 16000, VarianceAmount: 1000, VariancePercentage: 6.67,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/items/item-1/actuals", bytes.NewBufferString(`{"actual_unit_price":320}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["variance_amount"] != float64(1000) || body["variance_status"] != "over_budget" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestActualCostHandler_CorrectActualCost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActualCostUseCase(ctrl)
		h := NewActualCostHandler(uc)

		r := gin.New()
		r.PATCH("/v1/actuals/:actual_cost_id", h.CorrectActualCost)

		uc.EXPECT().Correct(gomock.Any(), "ac-x", gomock.Any()).Return(entities.ActualCost{}, usecase.ErrActualCostNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/actuals/ac-x", bytes.NewBufferString(`{"actual_unit_price":300}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("clear quantity flag forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActualCostUseCase(ctrl)
		h := NewActualCostHandler(uc)

		r := gin.New()
		r.PATCH("/v1/actuals/:actual_cost_id", h.CorrectActualCost)

		uc.EXPECT().Correct(gomock.Any(), "ac-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, input usecase.CorrectActualCostInput) (entities.ActualCost, error) {
				if !input.ClearActualQuantity {
					t.Fatalf("expected clear flag: %+v", input)
				}
				return entities.ActualCost{ID: "ac-1"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/actuals/ac-1", bytes.NewBufferString(`{"clear_actual_quantity":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

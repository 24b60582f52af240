package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"vehicle_quotation/internal/adapter/http/handlers/mocks"
	"vehicle_quotation/internal/domain"
	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/money"
	"vehicle_quotation/internal/usecase"
)

func newQuotationRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuotationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	h := NewQuotationHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/quotations", h.ListQuotations)
	r.GET("/v1/quotations/search", h.SearchQuotations)
	r.GET("/v1/quotations/:id", h.GetQuotation)
	r.GET("/v1/quotations/:id/pdf", h.GetQuotationDocument)
	r.POST("/v1/quotations", h.CreateQuotation)
	r.PUT("/v1/quotations/:id", h.UpdateQuotation)
	return r, uc
}

func pricedQuotation(id string) entities.PricedQuotation {
	return entities.PricedQuotation{
		Quotation: entities.Quotation{
			ID:         id,
			FinalPrice: money.MustParse("24018.592"),
			Vehicle:    &entities.Vehicle{ID: "v-1", BasePrice: money.FromInt(25000)},
			Customer:   &entities.Customer{ID: "c-1", Name: "Mario", Surname: "Rossi", Email: "mario@example.com"},
			Version:    1,
		},
		Adjustments: []entities.Adjustment{{Label: "Sconto Benvenuto (Primo Preventivo)", Amount: money.MustParse("-490.176")}},
	}
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuotationRouter(t)
		w := serve(r, http.MethodPost, "/v1/quotations", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		r, _ := newQuotationRouter(t)
		w := serve(r, http.MethodPost, "/v1/quotations", `{"customer_email":"not-an-email"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown reference", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PricedQuotation{}, domain.NewNotFoundError("vehicle", "v-404"))

		w := serve(r, http.MethodPost, "/v1/quotations", `{"vehicle_id":"v-404"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.QuotationInput) (entities.PricedQuotation, error) {
			if in.VehicleID == nil || *in.VehicleID != "v-1" {
				t.Fatalf("unexpected vehicle id: %v", in.VehicleID)
			}
			if in.Customer == nil || in.Customer.Email != "mario@example.com" {
				t.Fatalf("unexpected customer input: %+v", in.Customer)
			}
			return pricedQuotation("q-1"), nil
		})

		w := serve(r, http.MethodPost, "/v1/quotations", `{"vehicle_id":"v-1","customer_email":"mario@example.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "q-1" || body["final_price"] != 24018.592 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if adj, _ := body["adjustments"].([]any); len(adj) != 1 {
			t.Fatalf("expected one adjustment, got %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_UpdateQuotation(t *testing.T) {
	t.Run("stale version", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).Return(entities.PricedQuotation{}, domain.NewConflictError("quotation", "modified by another request, reload and retry"))

		w := serve(r, http.MethodPut, "/v1/quotations/q-1", `{"option_ids":[]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("options only", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.QuotationInput) (entities.PricedQuotation, error) {
			if in.VehicleID != nil || in.VariationID != nil || in.Customer != nil {
				t.Fatalf("expected only options in update input, got %+v", in)
			}
			if in.OptionIDs == nil || len(*in.OptionIDs) != 1 || (*in.OptionIDs)[0] != "o-1" {
				t.Fatalf("unexpected option ids: %v", in.OptionIDs)
			}
			return pricedQuotation("q-1"), nil
		})

		w := serve(r, http.MethodPut, "/v1/quotations/q-1", `{"option_ids":["o-1"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing quotation", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Update(gomock.Any(), "q-404", gomock.Any()).Return(entities.PricedQuotation{}, domain.NewNotFoundError("quotation", "q-404"))

		w := serve(r, http.MethodPut, "/v1/quotations/q-404", `{}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Reads(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().ListAll(gomock.Any()).Return([]entities.PricedQuotation{pricedQuotation("q-1"), pricedQuotation("q-2")}, nil)

		w := serve(r, http.MethodGet, "/v1/quotations", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("expected two quotations, got %s", w.Body.String())
		}
	})

	t.Run("list storage failure", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("dynamo down"))

		w := serve(r, http.MethodGet, "/v1/quotations", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("dynamo down")) {
			t.Fatalf("internal cause leaked: %s", w.Body.String())
		}
	})

	t.Run("get", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuotation("q-1"), nil)

		w := serve(r, http.MethodGet, "/v1/quotations/q-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["user_name"] != "Mario Rossi" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_SearchQuotations(t *testing.T) {
	t.Run("blank email", func(t *testing.T) {
		r, _ := newQuotationRouter(t)
		w := serve(r, http.MethodGet, "/v1/quotations/search?email=%20%20", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		r, _ := newQuotationRouter(t)
		w := serve(r, http.MethodGet, "/v1/quotations/search", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mail alias", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().ListByCustomerEmail(gomock.Any(), "mario@example.com").Return([]entities.PricedQuotation{pricedQuotation("q-1")}, nil)

		w := serve(r, http.MethodGet, "/v1/quotations/search?mail=mario@example.com", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().ListByCustomerEmail(gomock.Any(), "nobody@example.com").Return([]entities.PricedQuotation{}, nil)

		w := serve(r, http.MethodGet, "/v1/quotations/search?email=nobody@example.com", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with empty list, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestQuotationHandler_GetQuotationDocument(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().RenderDocument(gomock.Any(), "q-404").Return(usecase.Document{}, domain.NewNotFoundError("quotation", "q-404"))

		w := serve(r, http.MethodGet, "/v1/quotations/q-404/pdf", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().RenderDocument(gomock.Any(), "q-1").Return(usecase.Document{
			Content:     []byte("%PDF-1.3 test"),
			Filename:    "quote_Mario_Rossi_q-1.pdf",
			ContentType: "application/pdf",
		}, nil)

		w := serve(r, http.MethodGet, "/v1/quotations/q-1/pdf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("unexpected content type %q", got)
		}
		if got := w.Header().Get("Content-Disposition"); got != `inline; filename="quote_Mario_Rossi_q-1.pdf"` {
			t.Fatalf("unexpected content disposition %q", got)
		}
		if w.Body.String() != "%PDF-1.3 test" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})
}

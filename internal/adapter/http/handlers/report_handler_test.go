package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mixto_gestao/internal/adapter/http/handlers/mocks"
	"mixto_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReportRouter(uc usecase.IReportUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReportHandler(uc)
	r := gin.New()
	r.GET("/v1/budgets/:seq/:year/summary", h.Summary)
	r.GET("/v1/budgets/:seq/:year/share-link", h.ShareLink)
	r.GET("/v1/budgets/:seq/:year/pdf", h.BudgetPDF)
	r.GET("/v1/reports/budgets.xlsx", h.BudgetsSpreadsheet)
	return r
}

func TestReportHandler_Summary(t *testing.T) {
	t.Run("plain text by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().Summary(gomock.Any(), "001/2026").Return("*Orçamento #001/2026*", nil)

		w := doJSON(newReportRouter(uc), http.MethodGet, "/v1/budgets/001/2026/summary", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "*Orçamento #001/2026*" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("json when requested", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().Summary(gomock.Any(), "001/2026").Return("resumo", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/001/2026/summary", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		newReportRouter(uc).ServeHTTP(w, req)

		if got := decode[map[string]string](t, w); got["text"] != "resumo" {
			t.Fatalf("unexpected body %+v", got)
		}
	})

	t.Run("unknown budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().Summary(gomock.Any(), "404/2026").Return("", usecase.ErrBudgetNotFound)

		w := doJSON(newReportRouter(uc), http.MethodGet, "/v1/budgets/404/2026/summary", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReportHandler_Files(t *testing.T) {
	t.Run("pdf attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().BudgetPDF(gomock.Any(), "001/2026").Return([]byte("%PDF-1.3"), nil)

		w := doJSON(newReportRouter(uc), http.MethodGet, "/v1/budgets/001/2026/pdf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != contentTypePDF {
			t.Fatalf("expected %s, got %s", contentTypePDF, ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="orcamento_001-2026.pdf"` {
			t.Fatalf("unexpected Content-Disposition %q", cd)
		}
	})

	t.Run("pdf failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().BudgetPDF(gomock.Any(), "001/2026").Return(nil, usecase.ErrReportFailed)

		w := doJSON(newReportRouter(uc), http.MethodGet, "/v1/budgets/001/2026/pdf", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("spreadsheet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().BudgetsSpreadsheet(gomock.Any()).Return([]byte("PK"), nil)

		w := doJSON(newReportRouter(uc), http.MethodGet, "/v1/reports/budgets.xlsx", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != contentTypeXLSX {
			t.Fatalf("unexpected content type %s", ct)
		}
	})

	t.Run("share link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().ShareLink(gomock.Any(), "001/2026").Return(usecase.ShareLink{BudgetID: "001/2026", URL: "https://wa.me/5592?text=x"}, nil)

		w := doJSON(newReportRouter(uc), http.MethodGet, "/v1/budgets/001/2026/share-link", "")
		if got := decode[usecase.ShareLink](t, w); got.URL != "https://wa.me/5592?text=x" {
			t.Fatalf("unexpected link %+v", got)
		}
	})
}

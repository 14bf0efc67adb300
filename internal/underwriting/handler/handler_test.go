package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nbfc-gateway/internal/customer"
	"nbfc-gateway/internal/underwriting"
)

type stubService struct {
	lastReq underwriting.Request
	outcome underwriting.Outcome
	err     error
}

func (s *stubService) Underwrite(_ context.Context, req underwriting.Request) (underwriting.Outcome, error) {
	s.lastReq = req
	return s.outcome, s.err
}

func newRouter(svc Service) chi.Router {
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func doUnderwrite(t *testing.T, router chi.Router, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/call/underwrite_loan", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHandleUnderwrite(t *testing.T) {
	emi := 9964.29
	approved := underwriting.Outcome{
		Decision: underwriting.DecisionApprove,
		Reason:   underwriting.ReasonWithinPreApprovedLimit,
		EMI:      &emi,
	}

	t.Run("ok envelope with outcome", func(t *testing.T) {
		svc := &stubService{outcome: approved}
		rec, body := doUnderwrite(t, newRouter(svc),
			`{"customer_id":"CUST001","requested_amount":300000}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", body["status"])
		result, ok := body["result"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "approve", result["decision"])
		assert.Equal(t, "within_pre_approved_limit", result["reason"])
		assert.InDelta(t, emi, result["emi"], 0.001)
	})

	t.Run("defaults applied when tenure and rate omitted", func(t *testing.T) {
		svc := &stubService{outcome: approved}
		doUnderwrite(t, newRouter(svc),
			`{"customer_id":"CUST001","requested_amount":300000}`)

		assert.Equal(t, 36, svc.lastReq.TenureMonths)
		assert.Equal(t, 12.0, svc.lastReq.AnnualRate)
	})

	t.Run("explicit values pass through", func(t *testing.T) {
		svc := &stubService{outcome: approved}
		doUnderwrite(t, newRouter(svc),
			`{"customer_id":"CUST001","requested_amount":300000,"tenure_months":24,"annual_rate":0,"salary_provided":60000,"salary_slip_resource":"resource://x.pdf"}`)

		assert.Equal(t, 24, svc.lastReq.TenureMonths)
		assert.Equal(t, 0.0, svc.lastReq.AnnualRate, "explicit zero rate must not be replaced by the default")
		assert.Equal(t, int64(60000), svc.lastReq.SalaryProvided)
		assert.Equal(t, "resource://x.pdf", svc.lastReq.SalarySlipResource)
	})

	t.Run("missing customer_id is a 400", func(t *testing.T) {
		svc := &stubService{}
		rec, body := doUnderwrite(t, newRouter(svc), `{"requested_amount":300000}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_error", body["error"])
		assert.Equal(t, underwriting.Request{}, svc.lastReq, "service must not be called")
	})

	t.Run("missing requested_amount is a 400", func(t *testing.T) {
		rec, body := doUnderwrite(t, newRouter(&stubService{}), `{"customer_id":"CUST001"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_error", body["error"])
	})

	t.Run("zero tenure is a 400, not the default", func(t *testing.T) {
		rec, _ := doUnderwrite(t, newRouter(&stubService{}),
			`{"customer_id":"CUST001","requested_amount":300000,"tenure_months":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		rec, body := doUnderwrite(t, newRouter(&stubService{}), `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", body["error"])
	})

	t.Run("unknown customer surfaces as 404", func(t *testing.T) {
		svc := &stubService{err: customer.ErrNotFound}
		rec, body := doUnderwrite(t, newRouter(svc),
			`{"customer_id":"CUST999","requested_amount":300000}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", body["error"])
	})
}

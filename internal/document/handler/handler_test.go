package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nbfc-gateway/internal/customer"
	"nbfc-gateway/internal/document"
)

type stubService struct {
	uploadRef  string
	letterRef  string
	err        error
	lastName   string
	lastBytes  []byte
	lastTerms  document.LetterTerms
	lastCustID string
}

func (s *stubService) StoreSalarySlip(_ context.Context, customerID, uploadName string, data []byte) (string, error) {
	s.lastCustID, s.lastName, s.lastBytes = customerID, uploadName, data
	return s.uploadRef, s.err
}

func (s *stubService) IssueSanctionLetter(_ context.Context, customerID string, terms document.LetterTerms) (string, error) {
	s.lastCustID, s.lastTerms = customerID, terms
	return s.letterRef, s.err
}

func newRouter(t *testing.T, svc Service) (chi.Router, *document.FSStore) {
	t.Helper()
	store, err := document.NewFSStore(t.TempDir())
	require.NoError(t, err)
	r := chi.NewRouter()
	New(svc, store, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, store
}

func multipartBody(t *testing.T, customerID, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if customerID != "" {
		require.NoError(t, mw.WriteField("customer_id", customerID))
	}
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandleUpload(t *testing.T) {
	t.Run("stores the upload and returns the reference", func(t *testing.T) {
		svc := &stubService{uploadRef: "resource://salary_CUST001_ff.pdf"}
		router, _ := newRouter(t, svc)

		body, contentType := multipartBody(t, "CUST001", "slip.pdf", []byte("slip-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/call/upload_salary_slip", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
		result := decoded["result"].(map[string]any)
		assert.Equal(t, svc.uploadRef, result["resource"])
		assert.Equal(t, "CUST001", svc.lastCustID)
		assert.Equal(t, "slip.pdf", svc.lastName)
		assert.Equal(t, []byte("slip-bytes"), svc.lastBytes)
	})

	t.Run("customer_id may arrive as a query parameter", func(t *testing.T) {
		svc := &stubService{uploadRef: "resource://x.pdf"}
		router, _ := newRouter(t, svc)

		body, contentType := multipartBody(t, "", "slip.pdf", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/call/upload_salary_slip?customer_id=CUST002", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "CUST002", svc.lastCustID)
	})

	t.Run("missing customer_id is a 400", func(t *testing.T) {
		router, _ := newRouter(t, &stubService{})
		body, contentType := multipartBody(t, "", "slip.pdf", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/call/upload_salary_slip", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown customer surfaces as 404", func(t *testing.T) {
		router, _ := newRouter(t, &stubService{err: customer.ErrNotFound})
		body, contentType := multipartBody(t, "CUST999", "slip.pdf", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/call/upload_salary_slip", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleGenerateLetter(t *testing.T) {
	t.Run("defaults tenure and rate", func(t *testing.T) {
		svc := &stubService{letterRef: "resource://sanction_CUST001_aa.pdf"}
		router, _ := newRouter(t, svc)

		req := httptest.NewRequest(http.MethodPost, "/call/generate_sanction_letter",
			strings.NewReader(`{"customer_id":"CUST001","amount":300000}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, document.LetterTerms{Amount: 300000, TenureMonths: 36, AnnualRate: 12.0}, svc.lastTerms)
	})

	t.Run("missing amount is a 400", func(t *testing.T) {
		router, _ := newRouter(t, &stubService{})
		req := httptest.NewRequest(http.MethodPost, "/call/generate_sanction_letter",
			strings.NewReader(`{"customer_id":"CUST001"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleFetchResource(t *testing.T) {
	router, store := newRouter(t, &stubService{})
	_, err := store.Save(context.Background(), "sanction_CUST001_aa.pdf", []byte("%PDF-1.4 demo"))
	require.NoError(t, err)

	t.Run("serves stored bytes with the pdf content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/resource/sanction_CUST001_aa.pdf", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		data, err := io.ReadAll(rec.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 demo"), data)
	})

	t.Run("missing resource is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/resource/absent.pdf", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

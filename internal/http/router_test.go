package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/aqari/internal/app"
	"github.com/MrJamesThe3rd/aqari/internal/fixture"
	aqariHttp "github.com/MrJamesThe3rd/aqari/internal/http"
	"github.com/MrJamesThe3rd/aqari/internal/preference/store"
)

func newServer(t *testing.T) (*app.App, http.Handler) {
	t.Helper()

	cfg := app.DefaultConfig()
	cfg.LoadDelay = time.Millisecond
	cfg.SaveLatency = time.Millisecond
	cfg.AuthLatency = time.Millisecond
	cfg.DeleteLatency = time.Millisecond
	cfg.TokenSecret = "test"

	a := app.New(cfg, store.NewMemory())
	t.Cleanup(a.Close)

	set, err := fixture.Default()
	require.NoError(t, err)
	require.NoError(t, a.Load(context.Background(), set))

	return a, aqariHttp.New(aqariHttp.HandlersFor(a), []string{"http://localhost:5173"})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func TestRouter_PropertyLifecycle(t *testing.T) {
	a, h := newServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/properties",
		`{"name":"برج النخيل","city":"الدمام","unitCount":"12","occupancyRate":140}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[map[string]any](t, rec)
	assert.Equal(t, "برج النخيل", created["name"])
	assert.EqualValues(t, 12, created["unitCount"])
	assert.EqualValues(t, 100, created["occupancyRate"])
	assert.EqualValues(t, 4, created["id"])

	rec = do(t, h, http.MethodPatch, "/api/v1/properties/4", `{"city":"الخبر"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "الخبر", decode[map[string]any](t, rec)["city"])

	rec = do(t, h, http.MethodGet, "/api/v1/properties/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "برج النخيل", decode[map[string]any](t, rec)["name"])

	rec = do(t, h, http.MethodDelete, "/api/v1/properties/4", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/properties/4", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Len(t, a.Properties.List(context.Background()), 3)
}

func TestRouter_Errors(t *testing.T) {
	_, h := newServer(t)

	type testCase struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}

	tests := []testCase{
		{name: "MissingRequired", method: http.MethodPost, target: "/api/v1/properties", body: `{"name":"x"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "UnknownField", method: http.MethodPost, target: "/api/v1/notes", body: `{"title":"x","colour":"red"}`, wantStatus: http.StatusBadRequest},
		{name: "BadChoice", method: http.MethodPost, target: "/api/v1/transactions", body: `{"type":"gift","category":"x","amount":"1","date":"2024-01-01"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "NestedValue", method: http.MethodPost, target: "/api/v1/tenants", body: `{"name":{"first":"x"}}`, wantStatus: http.StatusBadRequest},
		{name: "UpdateMissing", method: http.MethodPatch, target: "/api/v1/tenants/99", body: `{"name":"x"}`, wantStatus: http.StatusNotFound},
		{name: "GetMissing", method: http.MethodGet, target: "/api/v1/notes/99", wantStatus: http.StatusNotFound},
		{name: "BadID", method: http.MethodGet, target: "/api/v1/notes/abc", wantStatus: http.StatusBadRequest},
		{name: "WrongContentType", method: http.MethodPost, target: "/api/v1/notes", body: "title=x", wantStatus: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec *httptest.ResponseRecorder

			if tt.name == "WrongContentType" {
				req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

				rec = httptest.NewRecorder()
				h.ServeHTTP(rec, req)
			} else {
				rec = do(t, h, tt.method, tt.target, tt.body)
			}

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_ValidationBody(t *testing.T) {
	_, h := newServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/tenants", `{"name":"سعد"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode[struct {
		Fields []string `json:"fields"`
	}](t, rec)
	assert.Contains(t, body.Fields, "nationalId")
}

func TestRouter_ListSearchAndSort(t *testing.T) {
	_, h := newServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/properties?q=%D8%AC%D8%AF%D8%A9", "")
	require.Equal(t, http.StatusOK, rec.Code)

	found := decode[[]map[string]any](t, rec)
	require.Len(t, found, 1)
	assert.EqualValues(t, 2, found[0]["id"])

	rec = do(t, h, http.MethodGet, "/api/v1/properties?sort=units-desc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	sorted := decode[[]map[string]any](t, rec)
	require.Len(t, sorted, 3)

	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1]["unitCount"], sorted[i]["unitCount"])
	}
}

func TestRouter_RemindersAndNotifications(t *testing.T) {
	_, h := newServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/reminders/1/paid", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/reminders/1/paid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/reminders", "")
	assert.Len(t, decode[[]map[string]any](t, rec), 2)

	rec = do(t, h, http.MethodGet, "/api/v1/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)

	toasts := decode[[]struct {
		ID      string `json:"id"`
		Message string `json:"message"`
		Kind    string `json:"kind"`
	}](t, rec)
	require.Len(t, toasts, 1)
	assert.Equal(t, "تم تحديد الفاتورة كمدفوعة", toasts[0].Message)
	assert.Equal(t, "success", toasts[0].Kind)

	rec = do(t, h, http.MethodDelete, "/api/v1/notifications/"+toasts[0].ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/notifications/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ThemeAndStatus(t *testing.T) {
	_, h := newServer(t)

	rec := do(t, h, http.MethodPut, "/api/v1/preferences/theme", `{"theme":"dark"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/v1/preferences/theme", `{"theme":"sepia"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	status := decode[struct {
		Loading bool   `json:"loading"`
		Theme   string `json:"theme"`
	}](t, rec)
	assert.False(t, status.Loading)
	assert.Equal(t, "dark", status.Theme)
}

func TestRouter_AuthAndSummary(t *testing.T) {
	_, h := newServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/auth/login", `{"email":"owner@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decode[map[string]any](t, rec)["token"])

	rec = do(t, h, http.MethodPost, "/api/v1/auth/login", `{"email":"","password":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/auth/account", `{"confirmation":"نعم"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/reports/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	summary := decode[map[string]any](t, rec)
	assert.Equal(t, "7650", summary["netProfit"])
	assert.EqualValues(t, 91, summary["occupancyRate"])
}

func TestRouter_CORSPreflight(t *testing.T) {
	_, h := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/properties", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ImportAndExport(t *testing.T) {
	a, h := newServer(t)

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "statement.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("التاريخ,الوصف,المبلغ\n2023-12-01,إيجار ديسمبر,5000\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	imported := decode[struct {
		Imported     int              `json:"imported"`
		Transactions []map[string]any `json:"transactions"`
	}](t, rec)
	assert.Equal(t, 1, imported.Imported)
	require.Len(t, imported.Transactions, 1)
	assert.Contains(t, imported.Transactions[0], "propertyId")
	assert.Equal(t, "5000", imported.Transactions[0]["amount"])
	assert.Len(t, a.Transactions.List(context.Background()), 8)

	rec = do(t, h, http.MethodGet, "/api/v1/export/transactions.csv?q=%D8%AF%D9%8A%D8%B3%D9%85%D8%A8%D8%B1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Export-Count"))
	assert.Contains(t, rec.Body.String(), "إيجار ديسمبر")

	rec = do(t, h, http.MethodGet, "/api/v1/export/transactions.csv?encoding=latin1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_WritesWaitForLoad(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.LoadDelay = time.Millisecond
	cfg.SaveLatency = time.Millisecond

	a := app.New(cfg, store.NewMemory())
	t.Cleanup(a.Close)

	h := aqariHttp.New(aqariHttp.HandlersFor(a), nil)

	type testCase struct {
		name   string
		method string
		target string
		body   string
	}

	tests := []testCase{
		{name: "Create", method: http.MethodPost, target: "/api/v1/properties", body: `{"name":"برج","city":"جدة"}`},
		{name: "Update", method: http.MethodPatch, target: "/api/v1/notes/1", body: `{"title":"x"}`},
		{name: "Delete", method: http.MethodDelete, target: "/api/v1/tenants/1"},
		{name: "MarkPaid", method: http.MethodPost, target: "/api/v1/reminders/1/paid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		})
	}

	rec := do(t, h, http.MethodGet, "/api/v1/properties", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, a.Notifications.List())

	set, err := fixture.Default()
	require.NoError(t, err)
	require.NoError(t, a.Load(context.Background(), set))

	rec = do(t, h, http.MethodPost, "/api/v1/properties", `{"name":"برج","city":"جدة"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.EqualValues(t, 4, decode[map[string]any](t, rec)["id"])
}

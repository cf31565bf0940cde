package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/MikeRez0/studiodesk/docs"
	"github.com/MikeRez0/studiodesk/internal/adapter/config"
	"github.com/MikeRez0/studiodesk/internal/adapter/metrics"
	"github.com/MikeRez0/studiodesk/internal/adapter/storage/memory"
	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/service"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()

	catalog := memory.NewCatalog()
	catalog.PutClient(domain.Client{ID: 4, Name: "Zoë Studio", Phone: "+33 1 23 45 67 89"})
	catalog.PutService(domain.Service{ID: 1, Title: "Mixing", Unit: "track"})
	catalog.PutService(domain.Service{ID: 2, Title: "Mastering", Unit: "track"})

	repo := memory.NewRepository()

	observer, err := metrics.NewOrderMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	clock := func() time.Time { return time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC) }
	svc, err := service.NewService(repo, catalog, observer, logger, service.WithClock(clock))
	require.NoError(t, err)

	orderHandler, err := NewOrderHandler(svc, logger)
	require.NoError(t, err)
	lineHandler, err := NewLineHandler(svc, logger)
	require.NoError(t, err)
	invoiceHandler, err := NewInvoiceHandler(svc, logger)
	require.NoError(t, err)
	healthHandler, err := NewHealthHandler(repo, logger)
	require.NoError(t, err)

	r, err := NewRouter(&config.HTTP{HostString: "localhost:0"},
		orderHandler, lineHandler, invoiceHandler, healthHandler, logger)
	require.NoError(t, err)

	return r
}

func doRequest(t *testing.T, r *Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createOrder(t *testing.T, r *Router, body any) OrderResp {
	t.Helper()

	rec := doRequest(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp OrderResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestOrderHandler_CapacityScenario(t *testing.T) {
	r := newTestRouter(t)

	for i := 0; i < domain.MaxOrdersPerRealisationDate; i++ {
		createOrder(t, r, map[string]any{
			"realisationDate": "2025-06-01",
			"deliveryDate":    fmt.Sprintf("2025-06-%02d", 10+i),
			"clientId":        4,
		})
	}

	rec := doRequest(t, r, http.MethodGet, "/api/capacity?realisationDate=2025-06-01&deliveryDate=2025-06-30", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var capacity CapacityResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &capacity))
	assert.Equal(t, CapacityResp{
		Admitted:             false,
		Reason:               "realisation-capacity",
		RealisationRemaining: 0,
		DeliveryRemaining:    domain.MaxOrdersPerDeliveryDate,
	}, capacity)

	rec = doRequest(t, r, http.MethodPost, "/api/orders", map[string]any{
		"realisationDate": "2025-06-01",
		"deliveryDate":    "2025-06-30",
		"clientId":        4,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	var errResp ErrorResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "realisation-capacity", errResp.Reason)

	order := createOrder(t, r, map[string]any{
		"realisationDate": "2025-06-02",
		"deliveryDate":    "2025-06-30",
		"clientId":        4,
	})
	assert.NotZero(t, order.ID)
	assert.Equal(t, "2025-05-20", order.OrderDate)

	rec = doRequest(t, r, http.MethodGet, "/api/orders?realisationDate=2025-06-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []OrderResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, domain.MaxOrdersPerRealisationDate)
	assert.Equal(t, "Zoë Studio", list[0].ClientName)
}

func TestOrderHandler_CreateErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name      string
		body      any
		expStatus int
	}{
		{"malformed json", `{"realisationDate":`, http.StatusBadRequest},
		{"missing delivery date", map[string]any{"realisationDate": "2025-06-01", "clientId": 4}, http.StatusBadRequest},
		{"bad date", map[string]any{"realisationDate": "01/06/2025", "deliveryDate": "2025-06-05", "clientId": 4}, http.StatusBadRequest},
		{"past date", map[string]any{"realisationDate": "2025-05-19", "deliveryDate": "2025-06-05", "clientId": 4}, http.StatusBadRequest},
		{"unknown client", map[string]any{"realisationDate": "2025-06-01", "deliveryDate": "2025-06-05", "clientId": 77}, http.StatusNotFound},
		{"bad price", map[string]any{
			"realisationDate": "2025-06-01", "deliveryDate": "2025-06-05", "clientId": 4,
			"lines": []map[string]any{{"serviceId": 1, "quantity": 1, "unitPrice": "cheap"}},
		}, http.StatusBadRequest},
		{"duplicate service", map[string]any{
			"realisationDate": "2025-06-01", "deliveryDate": "2025-06-05", "clientId": 4,
			"lines": []map[string]any{
				{"serviceId": 1, "quantity": 1, "unitPrice": 10},
				{"serviceId": 1, "quantity": 2, "unitPrice": 10},
			},
		}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, r, http.MethodPost, "/api/orders", tt.body)
			assert.Equal(t, tt.expStatus, rec.Code, rec.Body.String())
		})
	}

	// nothing above may leave a trace
	rec := doRequest(t, r, http.MethodGet, "/api/order-lines", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestOrderHandler_UpdateAndDelete(t *testing.T) {
	r := newTestRouter(t)

	order := createOrder(t, r, map[string]any{
		"realisationDate": "2025-06-01",
		"deliveryDate":    "2025-06-05",
		"clientId":        4,
	})
	path := fmt.Sprintf("/api/orders/%d", order.ID)

	rec := doRequest(t, r, http.MethodPut, path, map[string]any{"deliveryDate": "2025-06-07"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated OrderResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "2025-06-07", updated.DeliveryDate)
	assert.Equal(t, "2025-06-01", updated.RealisationDate)

	rec = doRequest(t, r, http.MethodPut, path, map[string]any{"orderDate": "2025-05-20"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, http.MethodPut, path, map[string]any{"orderDate": "2025-05-21"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodPut, path, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodPut, "/api/orders/999", map[string]any{"clientId": 4})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, r, http.MethodPut, "/api/orders/abc", map[string]any{"clientId": 4})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLineHandler(t *testing.T) {
	r := newTestRouter(t)

	order := createOrder(t, r, map[string]any{
		"realisationDate": "2025-06-01",
		"deliveryDate":    "2025-06-05",
		"clientId":        4,
	})

	rec := doRequest(t, r, http.MethodPost, "/api/order-lines", map[string]any{
		"orderId": order.ID, "serviceId": 1, "quantity": 2, "unitPrice": "12.50",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var line struct {
		Quantity   int64       `json:"quantity"`
		LineAmount json.Number `json:"lineAmount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &line))
	assert.Equal(t, 0, decimal.MustParse(line.LineAmount.String()).Cmp(decimal.MustParse("25")))

	path := fmt.Sprintf("/api/order-lines/%d/1", order.ID)
	rec = doRequest(t, r, http.MethodPut, path, map[string]any{"quantity": 3, "unitPrice": 10})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &line))
	assert.Equal(t, int64(3), line.Quantity)

	// posting an existing (order, service) pair overwrites it
	rec = doRequest(t, r, http.MethodPost, "/api/order-lines", map[string]any{
		"orderId": order.ID, "serviceId": 1, "quantity": 4, "unitPrice": "10",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &line))
	assert.Equal(t, int64(4), line.Quantity)

	rec = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/order-lines?orderId=%d", order.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lines []LineReq
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	assert.Len(t, lines, 1)

	rec = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/order-lines/%d/2", order.ID),
		map[string]any{"quantity": 1, "unitPrice": "99.90"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	tests := []struct {
		name      string
		body      map[string]any
		expStatus int
	}{
		{"unknown order", map[string]any{"orderId": 999, "serviceId": 1, "quantity": 1, "unitPrice": 1}, http.StatusNotFound},
		{"unknown service", map[string]any{"orderId": order.ID, "serviceId": 9, "quantity": 1, "unitPrice": 1}, http.StatusNotFound},
		{"zero quantity", map[string]any{"orderId": order.ID, "serviceId": 1, "quantity": 0, "unitPrice": 1}, http.StatusBadRequest},
		{"negative price", map[string]any{"orderId": order.ID, "serviceId": 1, "quantity": 1, "unitPrice": -1}, http.StatusBadRequest},
		{"missing price", map[string]any{"orderId": order.ID, "serviceId": 1, "quantity": 1}, http.StatusBadRequest},
		{"sub-cent price", map[string]any{"orderId": order.ID, "serviceId": 1, "quantity": 1, "unitPrice": "10.555"}, http.StatusBadRequest},
		{"price out of range", map[string]any{"orderId": order.ID, "serviceId": 1, "quantity": 1, "unitPrice": "10000000000000000"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, r, http.MethodPost, "/api/order-lines", tt.body)
			assert.Equal(t, tt.expStatus, rec.Code, rec.Body.String())
		})
	}

	rec = doRequest(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvoiceHandler(t *testing.T) {
	r := newTestRouter(t)

	order := createOrder(t, r, map[string]any{
		"realisationDate": "2025-06-01",
		"deliveryDate":    "2025-06-05",
		"clientId":        4,
		"lines": []map[string]any{
			{"serviceId": 2, "quantity": 1, "unitPrice": "120000"},
			{"serviceId": 1, "quantity": 2, "unitPrice": 50000},
		},
	})
	createOrder(t, r, map[string]any{
		"realisationDate": "2025-06-02",
		"deliveryDate":    "2025-06-05",
		"clientId":        4,
	})

	path := fmt.Sprintf("/api/invoices/%d", order.ID)
	first := doRequest(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	second := doRequest(t, r, http.MethodGet, path, nil)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())

	var inv struct {
		ClientName string `json:"clientName"`
		Lines      []struct {
			ServiceID   uint64      `json:"serviceId"`
			Description string      `json:"description"`
			Amount      json.Number `json:"amount"`
		} `json:"lines"`
		Total json.Number `json:"total"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &inv))
	assert.Equal(t, "Zoë Studio", inv.ClientName)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, "Mixing", inv.Lines[0].Description)
	assert.Equal(t, 0, decimal.MustParse(inv.Lines[0].Amount.String()).Cmp(decimal.MustParse("100000")))
	assert.Equal(t, 0, decimal.MustParse(inv.Lines[1].Amount.String()).Cmp(decimal.MustParse("120000")))
	assert.Equal(t, 0, decimal.MustParse(inv.Total.String()).Cmp(decimal.MustParse("220000")))

	rec := doRequest(t, r, http.MethodGet, "/api/invoices/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// the second order has no lines and is left out of the list
	rec = doRequest(t, r, http.MethodGet, "/api/invoices?q=zoe", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []InvoiceResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, order.ID, list[0].OrderID)

	rec = doRequest(t, r, http.MethodGet, "/api/invoices?q=violin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doRequest(t, r, http.MethodGet, "/api/statistics/revenue", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var revenue []struct {
		Year    int         `json:"year"`
		Month   int         `json:"month"`
		Revenue json.Number `json:"revenue"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &revenue))
	require.Len(t, revenue, 1)
	assert.Equal(t, 2025, revenue[0].Year)
	assert.Equal(t, 5, revenue[0].Month)
	assert.Equal(t, 0, decimal.MustParse(revenue[0].Revenue.String()).Cmp(decimal.MustParse("220000")))
}

func TestRouter_Ambient(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceHeaderKey))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceHeaderKey, "6f1c1a1e-7a4b-4c55-9a57-1f0a3f1f2b10")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "6f1c1a1e-7a4b-4c55-9a57-1f0a3f1f2b10", rec.Header().Get(traceHeaderKey))

	rec = doRequest(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/docs/doc.json", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/order-lines/{orderId}/{serviceId}")
}

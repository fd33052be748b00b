package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/autoserve360/pos/internal/session"
	"github.com/autoserve360/pos/pkg/apperror"
	"github.com/autoserve360/pos/pkg/money"
)

func newTestStore(t *testing.T, token, tenant string) *session.Store {
	t.Helper()
	s, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	if token != "" {
		require.NoError(t, s.SetToken(token))
	}
	if tenant != "" {
		require.NoError(t, s.SetTenant(tenant))
	}
	return s
}

func TestCreateInvoiceSendsAuthHeaders(t *testing.T) {
	var gotAuth, gotTenant string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/invoices", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotTenant = r.Header.Get("X-Tenant-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"` + uuid.NewString() + `","invoice_no":"INV-1","customer_name":"Asha","subtotal":2500.00,"tax":450.00,"total":2950.00,"status":"PAID","date":"2026-08-30T10:00:00Z"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, newTestStore(t, "tok", "tenant-1"), zap.NewNop())

	created, err := c.CreateInvoice(context.Background(), CreateInvoiceInput{
		CustomerName: "Asha",
		Items: []CreateInvoiceItem{
			{Name: "Engine Oil 5W-30", Quantity: 2, Rate: money.FromRupees(500), TaxRate: 18},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "tenant-1", gotTenant)
	assert.Equal(t, "Asha", gotBody["customer_name"])
	assert.Equal(t, "INV-1", created.InvoiceNo)
	assert.Equal(t, money.FromRupees(2950), created.Total)

	items, ok := gotBody["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.Nil(t, line["product_id"])
	assert.Equal(t, float64(2), line["qty"])
	assert.Equal(t, float64(500), line["rate"])
}

func TestCreateInvoiceRequiresTenant(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, newTestStore(t, "tok", ""), zap.NewNop())

	_, err := c.CreateInvoice(context.Background(), CreateInvoiceInput{CustomerName: "Asha"})
	assert.ErrorIs(t, err, session.ErrMissingTenant)
	assert.False(t, requested, "no request may be constructed without a tenant")
}

func TestListInvoicesDateWindow(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, newTestStore(t, "tok", "tenant-1"), zap.NewNop())

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	_, err := c.ListInvoices(context.Background(), ListInvoicesOptions{Limit: 50, From: &from, To: &to})
	require.NoError(t, err)

	assert.Equal(t, []string{"50"}, gotQuery["limit"])
	assert.Equal(t, []string{from.Format(time.RFC3339)}, gotQuery["from"])
	assert.Equal(t, []string{to.Format(time.RFC3339)}, gotQuery["to"])
}

func TestErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"server message", `{"message":"Invoice not found"}`, "Invoice not found"},
		{"raw body", `catalog unavailable`, "catalog unavailable"},
		{"empty body", ``, http.StatusText(http.StatusBadGateway)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := New(srv.URL, time.Second, newTestStore(t, "tok", "tenant-1"), zap.NewNop())
			err := c.DeleteInvoice(context.Background(), uuid.New())
			require.Error(t, err)

			appErr := apperror.GetAppError(err)
			assert.Equal(t, http.StatusBadGateway, appErr.Code)
			assert.Equal(t, tc.want, appErr.Message)
		})
	}
}

func TestListInventory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/inventory", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"` + uuid.NewString() + `","name":"Brake Pad Set","sku":"BP-204","price":1200.50,"stock":8}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, newTestStore(t, "tok", "tenant-1"), zap.NewNop())

	items, err := c.ListInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Brake Pad Set", items[0].Name)
	assert.Equal(t, money.Paise(120050), items[0].Price)
	assert.Equal(t, 8, items[0].Stock)
}

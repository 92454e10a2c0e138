package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonemechanic-system/internal/catalog"
	"phonemechanic-system/internal/directory"
	"phonemechanic-system/internal/gateway/middleware"
	"phonemechanic-system/internal/pos"
	"phonemechanic-system/internal/receipt"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewOrderHTTPHandler(
		pos.NewSessionStore(),
		pos.NewHistory(),
		pos.NewFactory(),
		catalog.DefaultCatalog(),
		directory.DefaultDirectory(),
		receipt.NewRenderer(receipt.ShopInfo{
			Name:            "PHONE MECHANIC",
			DefaultLocation: "Eastwood",
			Addresses:       map[string]string{"Eastwood": "123 Rowe Street, Eastwood NSW 2122"},
		}),
		nil,
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextStaffName, "Sarah")
		c.Set(middleware.ContextLocation, "Eastwood")
	})

	orders := r.Group("/orders")
	{
		orders.POST("/drafts", handler.CreateDraft)
		orders.GET("/drafts/:id", handler.GetDraft)
		orders.PATCH("/drafts/:id", handler.UpdateDraft)
		orders.DELETE("/drafts/:id", handler.AbandonDraft)
		orders.PATCH("/drafts/:id/customer", handler.UpdateDraftCustomer)
		orders.POST("/drafts/:id/items", handler.AddItem)
		orders.POST("/drafts/:id/items/bulk", handler.BulkAddItems)
		orders.PATCH("/drafts/:id/items/:index", handler.UpdateItem)
		orders.DELETE("/drafts/:id/items/:index", handler.RemoveItem)
		orders.POST("/drafts/:id/submit", handler.SubmitDraft)
		orders.GET("", handler.ListOrders)
		orders.GET("/export", handler.ExportOrders)
		orders.GET("/:id", handler.GetOrder)
		orders.GET("/:id/receipt", handler.GetReceipt)
		orders.GET("/:id/share", handler.GetShareSummary)
	}
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success, w.Body.String())
	return resp.Data
}

func createDraft(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/orders/drafts", "")
	require.Equal(t, http.StatusCreated, w.Code)
	id, ok := decodeData(t, w)["id"].(string)
	require.True(t, ok)
	return id
}

func TestDraftLifecycle(t *testing.T) {
	r := testRouter()
	id := createDraft(t, r)

	w := do(t, r, http.MethodGet, "/orders/drafts/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "REPAIR", data["type"])
	assert.Equal(t, "CASH", data["payment_method"])

	w = do(t, r, http.MethodDelete, "/orders/drafts/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/orders/drafts/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkAddAndUpdateItems(t *testing.T) {
	r := testRouter()
	id := createDraft(t, r)

	w := do(t, r, http.MethodPost, "/orders/drafts/"+id+"/items/bulk",
		`{"service_ids":["sp-1","bat-2"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	items := data["items"].([]interface{})
	require.Len(t, items, 2)

	totals := data["totals"].(map[string]interface{})
	assert.Equal(t, "90", fmt.Sprint(totals["subtotal"]))

	w = do(t, r, http.MethodPatch, "/orders/drafts/"+id+"/items/0",
		`{"field":"quantity","value":"3"}`)
	require.Equal(t, http.StatusOK, w.Code)
	totals = decodeData(t, w)["totals"].(map[string]interface{})
	assert.Equal(t, "110", fmt.Sprint(totals["subtotal"]))

	w = do(t, r, http.MethodDelete, "/orders/drafts/"+id+"/items/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	items = decodeData(t, w)["items"].([]interface{})
	assert.Len(t, items, 1)
}

func TestCustomerAutofillOnPhoneEdit(t *testing.T) {
	r := testRouter()
	id := createDraft(t, r)

	w := do(t, r, http.MethodPatch, "/orders/drafts/"+id+"/customer",
		`{"phone":"012-345"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)

	assert.Equal(t, true, data["match_found"])
	customer := data["customer"].(map[string]interface{})
	assert.Equal(t, "Alice Tan", customer["name"])
	assert.Equal(t, true, customer["is_member"])

	// No match clears the advisory state but keeps the typed fields.
	w = do(t, r, http.MethodPatch, "/orders/drafts/"+id+"/customer",
		`{"phone":"000-000"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, false, data["match_found"])
	customer = data["customer"].(map[string]interface{})
	assert.Equal(t, "Alice Tan", customer["name"])
	assert.Equal(t, "000-000", customer["phone"])
}

func TestSubmitRequiresCustomer(t *testing.T) {
	r := testRouter()
	id := createDraft(t, r)

	w := do(t, r, http.MethodPost, "/orders/drafts/"+id+"/submit", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	r := testRouter()
	id := createDraft(t, r)

	do(t, r, http.MethodPatch, "/orders/drafts/"+id+"/customer",
		`{"name":"Walk In","phone":"012-0000000"}`)

	w := do(t, r, http.MethodPost, "/orders/drafts/"+id+"/submit", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSubmitCreatesOrder(t *testing.T) {
	r := testRouter()
	id := createDraft(t, r)

	do(t, r, http.MethodPost, "/orders/drafts/"+id+"/items/bulk", `{"service_ids":["scr-2"]}`)
	do(t, r, http.MethodPatch, "/orders/drafts/"+id+"/customer", `{"phone":"012-3456789"}`)
	do(t, r, http.MethodPatch, "/orders/drafts/"+id, `{"imei":"356789012345678"}`)

	w := do(t, r, http.MethodPost, "/orders/drafts/"+id+"/submit", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeData(t, w)

	// Alice is a member, so 180 becomes 162.
	assert.Equal(t, "162", fmt.Sprint(order["total_amount"]))
	assert.Equal(t, "PENDING", order["status"])
	assert.Equal(t, "Sarah", order["staff_name"])
	assert.Equal(t, "Eastwood", order["location"])
	device := order["device_details"].(map[string]interface{})
	assert.Equal(t, "356789012345678", device["imei"])

	// The session is consumed by submission.
	w = do(t, r, http.MethodGet, "/orders/drafts/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The order is now in history and renderable.
	orderID := order["id"].(string)
	w = do(t, r, http.MethodGet, "/orders/"+orderID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/orders/"+orderID+"/receipt?format=formal", "")
	require.Equal(t, http.StatusOK, w.Code)
	layout := decodeData(t, w)
	assert.Equal(t, "FORMAL", layout["format"])

	w = do(t, r, http.MethodGet, "/orders/"+orderID+"/share", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "INVOICE: "+orderID))
}

func TestReceiptRejectsUnknownFormat(t *testing.T) {
	r := testRouter()
	id := createDraft(t, r)

	do(t, r, http.MethodPost, "/orders/drafts/"+id+"/items/bulk", `{"service_ids":["sp-1"]}`)
	do(t, r, http.MethodPatch, "/orders/drafts/"+id+"/customer", `{"name":"Walk In","phone":"012-0000000"}`)
	w := do(t, r, http.MethodPost, "/orders/drafts/"+id+"/submit", "")
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeData(t, w)["id"].(string)

	w = do(t, r, http.MethodGet, "/orders/"+orderID+"/receipt?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportCSVResponse(t *testing.T) {
	r := testRouter()
	id := createDraft(t, r)

	do(t, r, http.MethodPost, "/orders/drafts/"+id+"/items/bulk", `{"service_ids":["sp-1"]}`)
	do(t, r, http.MethodPatch, "/orders/drafts/"+id+"/customer", `{"name":"Walk In","phone":"012-0000000"}`)
	do(t, r, http.MethodPost, "/orders/drafts/"+id+"/submit", "")

	w := do(t, r, http.MethodGet, "/orders/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, strings.HasPrefix(w.Body.String(), "Order ID,Date,Customer Name"))
	assert.Contains(t, w.Body.String(), `"Walk In"`)
}

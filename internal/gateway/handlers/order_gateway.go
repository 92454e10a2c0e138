package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"phonemechanic-system/internal/catalog"
	"phonemechanic-system/internal/directory"
	"phonemechanic-system/internal/events"
	"phonemechanic-system/internal/gateway/middleware"
	"phonemechanic-system/internal/pos"
	"phonemechanic-system/internal/receipt"
)

type OrderHTTPHandler struct {
	sessions  *pos.SessionStore
	history   *pos.History
	factory   *pos.Factory
	catalog   *catalog.Catalog
	matcher   *directory.Matcher
	renderer  *receipt.Renderer
	publisher *events.Publisher
}

func NewOrderHTTPHandler(
	sessions *pos.SessionStore,
	history *pos.History,
	factory *pos.Factory,
	cat *catalog.Catalog,
	dir *directory.Directory,
	renderer *receipt.Renderer,
	publisher *events.Publisher,
) *OrderHTTPHandler {
	return &OrderHTTPHandler{
		sessions:  sessions,
		history:   history,
		factory:   factory,
		catalog:   cat,
		matcher:   directory.NewMatcher(dir),
		renderer:  renderer,
		publisher: publisher,
	}
}

// Request structs
type UpdateDraftRequest struct {
	Type          *string `json:"type,omitempty"`
	DepositInput  *string `json:"deposit,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	IMEI          *string `json:"imei,omitempty"`
	Passcode      *string `json:"passcode,omitempty"`
}

type UpdateDraftCustomerRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	IsMember    *bool   `json:"is_member,omitempty"`
	DeviceModel *string `json:"device_model,omitempty"`
}

type BulkAddItemsRequest struct {
	ServiceIDs []string `json:"service_ids" binding:"required,min=1"`
}

type UpdateItemRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// Query structs
type ListOrdersQuery struct {
	PendingOnly bool   `form:"pending_only"`
	Location    string `form:"location"`
	Period      string `form:"period"`
	Search      string `form:"search"`
}

// DraftView is the full state of an order-entry session plus the derived
// totals, recomputed from scratch on every read.
type DraftView struct {
	ID            string            `json:"id"`
	Type          pos.OrderType     `json:"type"`
	Customer      pos.Customer      `json:"customer"`
	Items         []pos.OrderItem   `json:"items"`
	DepositInput  string            `json:"deposit"`
	PaymentMethod pos.PaymentMethod `json:"payment_method"`
	Notes         string            `json:"notes,omitempty"`
	Device        pos.DeviceDetails `json:"device"`
	MatchFound    bool              `json:"match_found"`
	VisitSummary  string            `json:"visit_summary,omitempty"`
	Totals        pos.Totals        `json:"totals"`
}

func draftView(session *pos.EntrySession) DraftView {
	return DraftView{
		ID:            session.ID,
		Type:          session.Type,
		Customer:      session.Customer,
		Items:         session.Cart.Items(),
		DepositInput:  session.DepositInput,
		PaymentMethod: session.PaymentMethod,
		Notes:         session.Notes,
		Device:        session.Device,
		MatchFound:    session.MatchFound,
		VisitSummary:  session.VisitSummary,
		Totals:        session.Totals(),
	}
}

func (h *OrderHTTPHandler) session(c *gin.Context) (*pos.EntrySession, bool) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse("Order entry session not found"))
		return nil, false
	}
	return session, true
}

// --- Draft lifecycle ---

func (h *OrderHTTPHandler) CreateDraft(c *gin.Context) {
	session := h.sessions.Create()
	c.JSON(http.StatusCreated, successResponse("Order entry session created", draftView(session)))
}

func (h *OrderHTTPHandler) GetDraft(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, successResponse("Order entry session retrieved", draftView(session)))
}

func (h *OrderHTTPHandler) UpdateDraft(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	if req.Type != nil {
		orderType, valid := pos.ParseOrderType(*req.Type)
		if !valid {
			c.JSON(http.StatusBadRequest, errorResponse("Invalid order type"))
			return
		}
		session.Type = orderType
	}
	if req.PaymentMethod != nil {
		method, valid := pos.ParsePaymentMethod(*req.PaymentMethod)
		if !valid {
			c.JSON(http.StatusBadRequest, errorResponse("Invalid payment method"))
			return
		}
		session.PaymentMethod = method
	}
	if req.DepositInput != nil {
		// Free-text field; unparseable input counts as zero at calculation
		// time rather than being rejected here.
		session.DepositInput = *req.DepositInput
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}
	if req.IMEI != nil {
		session.Device.IMEI = *req.IMEI
	}
	if req.Passcode != nil {
		session.Device.Passcode = *req.Passcode
	}

	c.JSON(http.StatusOK, successResponse("Order entry session updated", draftView(session)))
}

// UpdateDraftCustomer applies manual edits to the draft customer. A phone
// edit re-runs the directory lookup; on a match the directory record is
// autofilled into the draft, on a miss the advisory state is cleared and
// the operator's fields are left exactly as typed.
func (h *OrderHTTPHandler) UpdateDraftCustomer(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req UpdateDraftCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	if req.Name != nil {
		session.Customer.Name = *req.Name
	}
	if req.Email != nil {
		session.Customer.Email = *req.Email
	}
	if req.IsMember != nil {
		session.Customer.IsMember = *req.IsMember
	}
	if req.DeviceModel != nil {
		session.Customer.DeviceModel = *req.DeviceModel
	}

	if req.Phone != nil {
		session.Customer.Phone = *req.Phone

		if result, found := h.matcher.Match(session.Customer.Phone); found {
			result.Autofill(&session.Customer)
			session.MatchFound = true
			session.VisitSummary = result.VisitSummary()
		} else {
			session.MatchFound = false
			session.VisitSummary = ""
		}
	}

	c.JSON(http.StatusOK, successResponse("Customer draft updated", draftView(session)))
}

func (h *OrderHTTPHandler) AbandonDraft(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	h.sessions.Delete(session.ID)
	c.JSON(http.StatusOK, successResponse("Order entry session discarded", nil))
}

// --- Cart rows ---

func (h *OrderHTTPHandler) AddItem(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.Cart.AddBlank()
	c.JSON(http.StatusOK, successResponse("Item row added", draftView(session)))
}

func (h *OrderHTTPHandler) BulkAddItems(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req BulkAddItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("service_ids required"))
		return
	}

	services := h.catalog.ByIDs(req.ServiceIDs)
	if len(services) == 0 {
		c.JSON(http.StatusNotFound, errorResponse("No matching services found"))
		return
	}

	session.Cart.AddFromCatalog(services)
	c.JSON(http.StatusOK, successResponse("Services added to cart", draftView(session)))
}

func (h *OrderHTTPHandler) itemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid item index"))
		return 0, false
	}
	return index, true
}

func (h *OrderHTTPHandler) UpdateItem(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	index, ok := h.itemIndex(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("field required"))
		return
	}

	if !session.Cart.UpdateField(index, pos.ItemField(req.Field), req.Value) {
		c.JSON(http.StatusBadRequest, errorResponse("Unknown field or item index out of range"))
		return
	}

	c.JSON(http.StatusOK, successResponse("Item updated", draftView(session)))
}

func (h *OrderHTTPHandler) RemoveItem(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	index, ok := h.itemIndex(c)
	if !ok {
		return
	}

	// Removing the last row is a silent no-op; the cart keeps one row open.
	session.Cart.RemoveAt(index)
	c.JSON(http.StatusOK, successResponse("Item removed", draftView(session)))
}

// --- Submission ---

// SubmitDraft finalizes the session into an immutable order. Required-field
// enforcement lives here at the boundary; the core never raises for user
// input.
func (h *OrderHTTPHandler) SubmitDraft(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if session.Customer.Name == "" || session.Customer.Phone == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Customer name and phone are required"))
		return
	}

	device := session.Device
	order, err := h.factory.Create(pos.CreateOrderParams{
		Items:         session.Cart.Items(),
		Customer:      session.Customer,
		Type:          session.Type,
		DepositInput:  session.DepositInput,
		PaymentMethod: session.PaymentMethod,
		StaffName:     c.GetString(middleware.ContextStaffName),
		Location:      c.GetString(middleware.ContextLocation),
		Notes:         session.Notes,
		Device:        &device,
	})
	if err != nil {
		if errors.Is(err, pos.ErrEmptyOrder) || errors.Is(err, pos.ErrNegativeTotal) {
			c.JSON(http.StatusUnprocessableEntity, errorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create order"))
		return
	}

	h.history.Add(order)
	h.sessions.Delete(session.ID)

	if err := h.publisher.OrderCreated(c.Request.Context(), order); err != nil {
		log.Printf("Warning: failed to publish order event for %s: %v", order.ID, err)
	}

	c.JSON(http.StatusCreated, successResponse("Order created successfully", order))
}

// --- Order history ---

func (h *OrderHTTPHandler) ListOrders(c *gin.Context) {
	var query ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	orders := h.history.List(pos.HistoryFilter{
		PendingOnly: query.PendingOnly,
		Location:    query.Location,
		Period:      query.Period,
		Search:      query.Search,
	})

	c.JSON(http.StatusOK, successWithMetaResponse("Orders retrieved successfully", orders, gin.H{
		"total_count": len(orders),
	}))
}

func (h *OrderHTTPHandler) ExportOrders(c *gin.Context) {
	var query ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	csv := h.history.ExportCSV(pos.HistoryFilter{
		PendingOnly: query.PendingOnly,
		Location:    query.Location,
		Period:      query.Period,
		Search:      query.Search,
	})

	filename := fmt.Sprintf("orders_export_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

func (h *OrderHTTPHandler) order(c *gin.Context) (pos.Order, bool) {
	order, found := h.history.Get(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, errorResponse("Order not found"))
		return pos.Order{}, false
	}
	return order, true
}

func (h *OrderHTTPHandler) GetOrder(c *gin.Context) {
	order, ok := h.order(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, successResponse("Order retrieved successfully", order))
}

// --- Receipts ---

func (h *OrderHTTPHandler) GetReceipt(c *gin.Context) {
	order, ok := h.order(c)
	if !ok {
		return
	}

	format := receipt.FormatThermal
	if raw := c.Query("format"); raw != "" {
		parsed, valid := receipt.ParseFormat(raw)
		if !valid {
			c.JSON(http.StatusBadRequest, errorResponse("format must be thermal or formal"))
			return
		}
		format = parsed
	}

	c.JSON(http.StatusOK, successResponse("Receipt rendered successfully", h.renderer.Render(order, format)))
}

func (h *OrderHTTPHandler) GetShareSummary(c *gin.Context) {
	order, ok := h.order(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, receipt.ShareSummary(order))
}

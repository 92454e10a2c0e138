package pos

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PeriodThisMonth = "THIS_MONTH"
	PeriodLastMonth = "LAST_MONTH"
)

type HistoryFilter struct {
	PendingOnly bool
	Location    string
	Period      string
	Search      string
}

// History is the in-memory order log, newest first. Orders are stored by
// value and never modified after Add.
type History struct {
	mu     sync.RWMutex
	orders []Order
	now    func() time.Time
}

func NewHistory() *History {
	return &History{now: time.Now}
}

func (h *History) Add(order Order) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orders = append([]Order{order}, h.orders...)
}

func (h *History) Get(id string) (Order, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, order := range h.orders {
		if order.ID == id {
			return order, true
		}
	}
	return Order{}, false
}

// List returns the orders matching the filter, sorted by creation date
// descending.
func (h *History) List(filter HistoryFilter) []Order {
	h.mu.RLock()
	defer h.mu.RUnlock()

	matched := make([]Order, 0, len(h.orders))
	for _, order := range h.orders {
		if h.matches(order, filter) {
			matched = append(matched, order)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched
}

func (h *History) matches(order Order, filter HistoryFilter) bool {
	if filter.PendingOnly && order.Status == StatusCompleted {
		return false
	}
	if filter.Location != "" && order.Location != filter.Location {
		return false
	}

	switch filter.Period {
	case PeriodThisMonth:
		now := h.now()
		if order.CreatedAt.Month() != now.Month() || order.CreatedAt.Year() != now.Year() {
			return false
		}
	case PeriodLastMonth:
		last := h.now().AddDate(0, -1, 0)
		if order.CreatedAt.Month() != last.Month() || order.CreatedAt.Year() != last.Year() {
			return false
		}
	}

	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(order.Customer.Name), term) &&
			!strings.Contains(order.Customer.Phone, filter.Search) &&
			!strings.Contains(strings.ToLower(order.ID), term) &&
			!strings.Contains(strings.ToLower(order.Customer.DeviceModel), term) {
			return false
		}
	}
	return true
}

// ExportCSV serializes the filtered orders. The layout is fixed by the
// export contract: only the customer name is quoted, and a missing location
// exports as N/A.
func (h *History) ExportCSV(filter HistoryFilter) string {
	rows := []string{"Order ID,Date,Customer Name,Phone,Email,Type,Status,Total,Balance,Location"}

	for _, order := range h.List(filter) {
		location := order.Location
		if location == "" {
			location = "N/A"
		}
		row := []string{
			order.ID,
			order.CreatedAt.Format("02/01/2006"),
			fmt.Sprintf("%q", order.Customer.Name),
			order.Customer.Phone,
			order.Customer.Email,
			string(order.Type),
			string(order.Status),
			order.TotalAmount.String(),
			order.BalanceDue.String(),
			location,
		}
		rows = append(rows, strings.Join(row, ","))
	}
	return strings.Join(rows, "\n")
}

// SeedOrders returns the demo order book loaded at startup.
func SeedOrders() []Order {
	now := time.Now()
	return []Order{
		{
			ID:        "ORD-2023-001",
			CreatedAt: now.Add(-24 * time.Hour),
			Type:      OrderRepair,
			Customer: Customer{
				ID: "C001", Name: "Alice Tan", Phone: "012-3456789",
				Email: "alice.t@example.com", IsMember: true,
				DeviceModel: "iPhone 13 Pro",
				TotalSpent:  decimal.NewFromInt(450), VisitCount: 3,
			},
			Items: []OrderItem{
				{ID: "1", Name: "Screen Replacement (OLED)", UnitPrice: decimal.NewFromInt(180), Quantity: 1},
			},
			Subtotal:    decimal.NewFromInt(180),
			Discount:    decimal.NewFromInt(18),
			Deposit:     decimal.Zero,
			TotalAmount: decimal.NewFromInt(162),
			BalanceDue:  decimal.Zero,
			Status:      StatusCompleted,
			Location:    "Eastwood",
		},
		{
			ID:        "ORD-2023-002",
			CreatedAt: now.Add(-time.Hour),
			Type:      OrderPreorder,
			Customer: Customer{
				ID: "C002", Name: "Bob Smith", Phone: "019-8765432",
				Email: "bob.smith@test.com", IsMember: false,
				DeviceModel: "Samsung S24",
				TotalSpent:  decimal.NewFromInt(50), VisitCount: 1,
			},
			Items: []OrderItem{
				{ID: "2", Name: "Special Case Import", UnitPrice: decimal.NewFromInt(50), Quantity: 1},
			},
			Subtotal:    decimal.NewFromInt(50),
			Discount:    decimal.Zero,
			Deposit:     decimal.NewFromInt(20),
			TotalAmount: decimal.NewFromInt(50),
			BalanceDue:  decimal.NewFromInt(30),
			Status:      StatusPending,
			Location:    "Parramatta",
		},
	}
}

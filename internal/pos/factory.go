package pos

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Structural contract violations. These can only occur when a caller
// bypasses the cart's invariants; they are programming errors, not
// recoverable input problems.
var (
	ErrEmptyOrder    = errors.New("order must have at least one item")
	ErrNegativeTotal = errors.New("order total must not be negative")
)

type CreateOrderParams struct {
	Items         []OrderItem
	Customer      Customer
	Type          OrderType
	DepositInput  string
	PaymentMethod PaymentMethod
	StaffName     string
	Location      string
	Notes         string
	Device        *DeviceDetails
}

// Factory assembles finalized, immutable orders. The clock and identifier
// source are injectable for tests.
type Factory struct {
	now   func() time.Time
	newID func() string
}

func NewFactory() *Factory {
	return &Factory{
		now:   time.Now,
		newID: func() string { return fmt.Sprintf("INV-%04d", rand.Intn(10000)) },
	}
}

// Create snapshots the draft customer and cart rows by value and computes
// every derived field once. Subsequent cart or draft edits never alter the
// returned order; status is fixed at creation and not revisited.
func (f *Factory) Create(params CreateOrderParams) (Order, error) {
	if len(params.Items) == 0 {
		return Order{}, ErrEmptyOrder
	}
	if len(params.Items) == 1 && params.Items[0].Name == "" && params.Items[0].UnitPrice.IsZero() {
		return Order{}, ErrEmptyOrder
	}

	totals := Calculate(params.Items, params.Customer.IsMember, params.DepositInput)
	if totals.Total.IsNegative() {
		return Order{}, ErrNegativeTotal
	}

	items := make([]OrderItem, len(params.Items))
	copy(items, params.Items)

	order := Order{
		ID:            f.newID(),
		CreatedAt:     f.now(),
		Type:          params.Type,
		Customer:      params.Customer,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Deposit:       totals.Deposit,
		TotalAmount:   totals.Total,
		BalanceDue:    totals.BalanceDue,
		Status:        totals.Status,
		StaffName:     params.StaffName,
		Location:      params.Location,
		PaymentMethod: params.PaymentMethod,
		Notes:         params.Notes,
	}

	// Device intake only travels with repairs; other order types carry no
	// device block at all.
	if params.Type == OrderRepair && params.Device != nil {
		device := *params.Device
		order.DeviceDetails = &device
	}

	return order, nil
}

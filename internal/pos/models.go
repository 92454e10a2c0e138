package pos

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderRepair   OrderType = "REPAIR"
	OrderSales    OrderType = "SALES"
	OrderPreorder OrderType = "PREORDER"
)

func ParseOrderType(s string) (OrderType, bool) {
	switch OrderType(s) {
	case OrderRepair, OrderSales, OrderPreorder:
		return OrderType(s), true
	}
	return "", false
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusPickedUp   OrderStatus = "PICKED_UP"
	StatusCancelled  OrderStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return PaymentMethod(s), true
	}
	return "", false
}

// Customer is the working record edited during order entry and snapshotted
// into an Order at submission. The authoritative copy lives in the customer
// directory and is never mutated here.
type Customer struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email,omitempty"`
	IsMember    bool            `json:"is_member"`
	DeviceModel string          `json:"device_model,omitempty"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	VisitCount  int             `json:"visit_count"`
}

type OrderItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type DeviceDetails struct {
	IMEI     string `json:"imei,omitempty"`
	Passcode string `json:"passcode,omitempty"`
}

// Order is immutable once created. Derived monetary fields are computed at
// creation time and never re-derived afterwards.
type Order struct {
	ID            string          `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	Type          OrderType       `json:"type"`
	Customer      Customer        `json:"customer"`
	Items         []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Deposit       decimal.Decimal `json:"deposit"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
	Status        OrderStatus     `json:"status"`
	StaffName     string          `json:"staff_name,omitempty"`
	Location      string          `json:"location,omitempty"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	DeviceDetails *DeviceDetails  `json:"device_details,omitempty"`
}

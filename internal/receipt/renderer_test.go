package receipt

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonemechanic-system/internal/pos"
)

func testShop() ShopInfo {
	return ShopInfo{
		Name:            "PHONE MECHANIC",
		Tagline:         "Technology Specialists",
		ABN:             "12 345 678 901",
		Phone:           "(02) 9999 8888",
		Email:           "support@phonemechanic.com.au",
		Website:         "www.phonemechanic.com.au",
		DefaultLocation: "Eastwood",
		Addresses: map[string]string{
			"Eastwood":   "123 Rowe Street, Eastwood NSW 2122",
			"Parramatta": "456 Church St, Parramatta NSW 2150",
		},
	}
}

func repairOrder() pos.Order {
	return pos.Order{
		ID:        "INV-0042",
		CreatedAt: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		Type:      pos.OrderRepair,
		Customer: pos.Customer{
			Name: "Alice Tan", Phone: "012-3456789",
			Email: "alice.t@example.com", IsMember: true, DeviceModel: "iPhone 13 Pro",
		},
		Items: []pos.OrderItem{
			{ID: "1", Name: "Screen Repair (Soft OLED)", UnitPrice: decimal.NewFromInt(180), Quantity: 1},
		},
		Subtotal:      decimal.NewFromInt(180),
		Discount:      decimal.NewFromInt(18),
		Deposit:       decimal.NewFromInt(162),
		TotalAmount:   decimal.NewFromInt(162),
		BalanceDue:    decimal.Zero,
		Status:        pos.StatusCompleted,
		StaffName:     "Sarah",
		Location:      "Eastwood",
		PaymentMethod: pos.PaymentCard,
		DeviceDetails: &pos.DeviceDetails{IMEI: "356789012345678"},
	}
}

func preorder() pos.Order {
	return pos.Order{
		ID:        "INV-0077",
		CreatedAt: time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC),
		Type:      pos.OrderPreorder,
		Customer:  pos.Customer{Name: "Bob Smith", Phone: "019-8765432"},
		Items: []pos.OrderItem{
			{ID: "1", Name: "Special Case Import", UnitPrice: decimal.NewFromInt(50), Quantity: 1},
		},
		Subtotal:      decimal.NewFromInt(50),
		Deposit:       decimal.NewFromInt(20),
		TotalAmount:   decimal.NewFromInt(50),
		BalanceDue:    decimal.NewFromInt(30),
		Status:        pos.StatusPending,
		PaymentMethod: pos.PaymentCash,
		Location:      "Parramatta",
	}
}

func findLine(t *testing.T, layout Layout, section, label string) Line {
	t.Helper()
	sec, ok := layout.Section(section)
	require.True(t, ok, "section %s", section)
	for _, line := range sec.Lines {
		if line.Label == label {
			return line
		}
	}
	t.Fatalf("no line labeled %q in section %s", label, section)
	return Line{}
}

func TestParseFormat(t *testing.T) {
	format, ok := ParseFormat("thermal")
	assert.True(t, ok)
	assert.Equal(t, FormatThermal, format)

	format, ok = ParseFormat("FORMAL")
	assert.True(t, ok)
	assert.Equal(t, FormatFormal, format)

	_, ok = ParseFormat("pdf")
	assert.False(t, ok)
}

func TestThermalSections(t *testing.T) {
	layout := NewRenderer(testShop()).Render(repairOrder(), FormatThermal)

	assert.Equal(t, FormatThermal, layout.Format)
	for _, name := range []string{"header", "meta", "customer", "items", "totals", "payment", "footer"} {
		_, ok := layout.Section(name)
		assert.True(t, ok, name)
	}

	header, _ := layout.Section("header")
	assert.Equal(t, "PHONE MECHANIC", header.Lines[0].Value)
	assert.Equal(t, "TAX INVOICE", header.Lines[4].Value)

	assert.Equal(t, "15/03/2024 10:30", findLine(t, layout, "meta", "Date:").Value)
	assert.Equal(t, "INV-0042", findLine(t, layout, "meta", "Inv #:").Value)
	assert.Equal(t, "Sarah", findLine(t, layout, "meta", "Staff:").Value)
}

func TestThermalTotalsAndDiscount(t *testing.T) {
	layout := NewRenderer(testShop()).Render(repairOrder(), FormatThermal)

	assert.Equal(t, "$180.00", findLine(t, layout, "totals", "Subtotal").Value)
	assert.Equal(t, "-$18.00", findLine(t, layout, "totals", "Discount").Value)
	assert.Equal(t, "$162.00", findLine(t, layout, "totals", "TOTAL").Value)

	// Fully paid orders show the payment method, not a balance block.
	payment, _ := layout.Section("payment")
	require.Len(t, payment.Lines, 1)
	assert.Equal(t, "PAID: CARD", payment.Lines[0].Value)
}

func TestThermalPreorderBalanceBlock(t *testing.T) {
	layout := NewRenderer(testShop()).Render(preorder(), FormatThermal)

	header, _ := layout.Section("header")
	assert.Equal(t, "PRE-ORDER", header.Lines[4].Value)

	assert.Equal(t, "$20.00", findLine(t, layout, "payment", "DEPOSIT (CASH)").Value)
	assert.Equal(t, "$30.00", findLine(t, layout, "payment", "BALANCE DUE").Value)
}

func TestFormalGSTIsTotalOverEleven(t *testing.T) {
	layout := NewRenderer(testShop()).Render(repairOrder(), FormatFormal)

	// 162 / 11 = 14.73 tax-inclusive component, never 162 x 0.10.
	assert.Equal(t, "$14.73", findLine(t, layout, "totals", "GST (Included 10%)").Value)
	assert.Equal(t, "$162.00", findLine(t, layout, "totals", "Total").Value)
}

func TestFormalDeviceNoteOnRepairs(t *testing.T) {
	layout := NewRenderer(testShop()).Render(repairOrder(), FormatFormal)

	items, _ := layout.Section("items")
	var note string
	for _, line := range items.Lines {
		if line.Style == StyleNote {
			note = line.Value
		}
	}
	assert.Equal(t, "Device: iPhone 13 Pro (IMEI: 356789012345678)", note)
}

func TestFormalPreorderTotals(t *testing.T) {
	layout := NewRenderer(testShop()).Render(preorder(), FormatFormal)

	assert.Equal(t, "-$20.00", findLine(t, layout, "totals", "Deposit Paid (CASH)").Value)
	assert.Equal(t, "$30.00", findLine(t, layout, "totals", "Balance Due").Value)

	from, _ := layout.Section("from")
	assert.Equal(t, "PHONE MECHANIC Parramatta", from.Lines[0].Value)
	assert.Equal(t, "456 Church St, Parramatta NSW 2150", from.Lines[1].Value)
}

func TestFormatsAgreeOnAmounts(t *testing.T) {
	renderer := NewRenderer(testShop())
	order := preorder()

	thermal := renderer.Render(order, FormatThermal)
	formal := renderer.Render(order, FormatFormal)

	assert.Equal(t, findLine(t, thermal, "totals", "Subtotal").Value, findLine(t, formal, "totals", "Subtotal").Value)
	assert.Equal(t, findLine(t, thermal, "totals", "TOTAL").Value, findLine(t, formal, "totals", "Total").Value)
	assert.Equal(t, findLine(t, thermal, "payment", "BALANCE DUE").Value, findLine(t, formal, "totals", "Balance Due").Value)
}

func TestRenderIsPure(t *testing.T) {
	renderer := NewRenderer(testShop())
	order := repairOrder()

	first := renderer.Render(order, FormatThermal)
	second := renderer.Render(order, FormatThermal)

	assert.Equal(t, first, second)
}

func TestUnknownLocationFallsBackToDefault(t *testing.T) {
	order := repairOrder()
	order.Location = "Chatswood"

	layout := NewRenderer(testShop()).Render(order, FormatFormal)

	from, _ := layout.Section("from")
	assert.Equal(t, "123 Rowe Street, Eastwood NSW 2122", from.Lines[1].Value)
}

func TestShareSummary(t *testing.T) {
	assert.Equal(t,
		"INVOICE: INV-0042\nAmt: $162\nDate: 15/03/2024",
		ShareSummary(repairOrder()))
}

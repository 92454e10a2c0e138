package receipt

import (
	"fmt"

	"github.com/shopspring/decimal"

	"phonemechanic-system/internal/pos"
)

// gstDivisor derives the tax-inclusive GST figure from an order total. The
// shop's totals already include 10% GST, so the tax component is total/11
// (pre-tax x 1.10 = total, hence tax = total/11). Both layouts must derive
// it from this divisor, never as total x 0.10.
var gstDivisor = decimal.NewFromInt(11)

type ShopInfo struct {
	Name            string
	Tagline         string
	ABN             string
	Phone           string
	Email           string
	Website         string
	DefaultLocation string
	Addresses       map[string]string
}

func (s ShopInfo) address(location string) string {
	if addr, ok := s.Addresses[location]; ok {
		return addr
	}
	return s.Addresses[s.DefaultLocation]
}

// Renderer projects one immutable Order into either physical layout. It is
// pure and keeps no state between calls: rendering the same order twice
// yields structurally identical output.
type Renderer struct {
	shop ShopInfo
}

func NewRenderer(shop ShopInfo) *Renderer {
	return &Renderer{shop: shop}
}

func (r *Renderer) Render(order pos.Order, format Format) Layout {
	// Both formats branch on this one predicate, so they can never disagree
	// about whether a balance is owed.
	isPreorder := order.Type == pos.OrderPreorder

	if format == FormatFormal {
		return r.renderFormal(order, isPreorder)
	}
	return r.renderThermal(order, isPreorder)
}

func gstComponent(total decimal.Decimal) decimal.Decimal {
	return total.DivRound(gstDivisor, 2)
}

func money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func negMoney(amount decimal.Decimal) string {
	return "-$" + amount.StringFixed(2)
}

func (r *Renderer) location(order pos.Order) string {
	if order.Location != "" {
		return order.Location
	}
	return r.shop.DefaultLocation
}

func (r *Renderer) renderThermal(order pos.Order, isPreorder bool) Layout {
	location := r.location(order)

	title := "TAX INVOICE"
	if isPreorder {
		title = "PRE-ORDER"
	}

	staff := order.StaffName
	if staff == "" {
		staff = "Admin"
	}

	header := Section{Name: "header", Lines: []Line{
		{Value: r.shop.Name, Style: StyleEmphasis},
		{Value: location},
		{Value: "ABN: " + r.shop.ABN},
		{Value: "Ph: " + r.shop.Phone},
		{Value: title, Style: StyleEmphasis},
	}}

	meta := Section{Name: "meta", Lines: []Line{
		{Label: "Date:", Value: order.CreatedAt.Format("02/01/2006 15:04")},
		{Label: "Inv #:", Value: order.ID},
		{Label: "Staff:", Value: staff},
	}}

	customer := Section{Name: "customer", Lines: []Line{
		{Label: "Customer:", Value: order.Customer.Name},
		{Label: "Phone:", Value: order.Customer.Phone},
	}}
	if order.Customer.Email != "" {
		customer.Lines = append(customer.Lines, Line{Label: "Email:", Value: order.Customer.Email})
	}

	items := Section{Name: "items", Lines: []Line{
		{Label: "Item", Value: "Amt", Style: StyleEmphasis},
	}}
	for _, item := range order.Items {
		items.Lines = append(items.Lines,
			Line{Value: item.Name, Style: StyleEmphasis},
			Line{
				Label: fmt.Sprintf("%d x %s", item.Quantity, money(item.UnitPrice)),
				Value: money(item.LineTotal()),
			},
		)
	}

	totals := Section{Name: "totals", Lines: []Line{
		{Label: "Subtotal", Value: money(order.Subtotal)},
	}}
	if order.Discount.IsPositive() {
		totals.Lines = append(totals.Lines, Line{Label: "Discount", Value: negMoney(order.Discount)})
	}
	totals.Lines = append(totals.Lines,
		Line{Label: "TOTAL", Value: money(order.TotalAmount), Style: StyleEmphasis},
		Line{Value: "Inc GST", Style: StyleNote},
	)

	payment := Section{Name: "payment"}
	if isPreorder {
		payment.Lines = []Line{
			{Label: fmt.Sprintf("DEPOSIT (%s)", order.PaymentMethod), Value: money(order.Deposit)},
			{Style: StyleRule},
			{Label: "BALANCE DUE", Value: money(order.BalanceDue), Style: StyleEmphasis},
		}
	} else {
		payment.Lines = []Line{
			{Value: fmt.Sprintf("PAID: %s", order.PaymentMethod), Style: StyleEmphasis},
		}
	}

	footer := Section{Name: "footer", Lines: []Line{
		{Value: "Thank you for your business!"},
		{Value: r.shop.Website},
		{Style: StyleRule},
		{Value: "Terms & Conditions Apply"},
		{Value: "90 Day Warranty on Parts"},
		{Label: "barcode", Value: order.ID, Style: StyleNote},
	}}

	return Layout{
		Format:   FormatThermal,
		Sections: []Section{header, meta, customer, items, totals, payment, footer},
	}
}

func (r *Renderer) renderFormal(order pos.Order, isPreorder bool) Layout {
	location := r.location(order)

	staff := order.StaffName
	if staff == "" {
		staff = "Staff"
	}

	header := Section{Name: "header", Lines: []Line{
		{Value: r.shop.Name, Style: StyleEmphasis},
		{Value: r.shop.Tagline, Style: StyleNote},
		{Value: "TAX INVOICE", Style: StyleEmphasis},
		{Value: "#" + order.ID},
	}}

	from := Section{Name: "from", Lines: []Line{
		{Value: fmt.Sprintf("%s %s", r.shop.Name, location), Style: StyleEmphasis},
		{Value: r.shop.address(location)},
		{Value: "ABN: " + r.shop.ABN},
		{Value: "Ph: " + r.shop.Phone},
		{Value: r.shop.Email},
	}}

	billTo := Section{Name: "bill_to", Lines: []Line{
		{Value: order.Customer.Name, Style: StyleEmphasis},
		{Value: order.Customer.Phone},
	}}
	if order.Customer.Email != "" {
		billTo.Lines = append(billTo.Lines, Line{Value: order.Customer.Email})
	}
	billTo.Lines = append(billTo.Lines,
		Line{Label: "Date", Value: order.CreatedAt.Format("02/01/2006")},
		Line{Label: "Staff", Value: staff},
	)

	items := Section{Name: "items", Lines: []Line{
		{Columns: []string{"Description", "Qty", "Unit Price", "Total"}, Style: StyleEmphasis},
	}}
	for i, item := range order.Items {
		items.Lines = append(items.Lines, Line{Columns: []string{
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			money(item.UnitPrice),
			money(item.LineTotal()),
		}})
		if i == 0 && order.Type == pos.OrderRepair && order.DeviceDetails != nil {
			detail := "Device: " + order.Customer.DeviceModel
			if order.DeviceDetails.IMEI != "" {
				detail += fmt.Sprintf(" (IMEI: %s)", order.DeviceDetails.IMEI)
			}
			items.Lines = append(items.Lines, Line{Value: detail, Style: StyleNote})
		}
	}

	totals := Section{Name: "totals", Lines: []Line{
		{Label: "Subtotal", Value: money(order.Subtotal)},
	}}
	if order.Discount.IsPositive() {
		totals.Lines = append(totals.Lines, Line{Label: "Discount", Value: negMoney(order.Discount)})
	}
	totals.Lines = append(totals.Lines,
		Line{Label: "GST (Included 10%)", Value: money(gstComponent(order.TotalAmount))},
		Line{Label: "Total", Value: money(order.TotalAmount), Style: StyleEmphasis},
	)
	if isPreorder {
		totals.Lines = append(totals.Lines,
			Line{Label: fmt.Sprintf("Deposit Paid (%s)", order.PaymentMethod), Value: negMoney(order.Deposit)},
			Line{Label: "Balance Due", Value: money(order.BalanceDue), Style: StyleEmphasis},
		)
	} else {
		totals.Lines = append(totals.Lines,
			Line{Value: fmt.Sprintf("PAID IN FULL via %s", order.PaymentMethod), Style: StyleNote},
		)
	}

	footer := Section{Name: "footer", Lines: []Line{
		{Value: "Payment Terms", Style: StyleEmphasis},
		{Value: "Standard repair warranty is 90 days on parts only."},
		{Value: "Physical or liquid damage voids all warranties."},
		{Value: "Goods not collected within 60 days may be disposed of."},
		{Label: "qr", Value: "Scan for Invoice", Style: StyleNote},
	}}

	return Layout{
		Format:   FormatFormal,
		Sections: []Section{header, from, billTo, items, totals, footer},
	}
}

// ShareSummary is the one-line plain-text summary handed to the share
// collaborator.
func ShareSummary(order pos.Order) string {
	return fmt.Sprintf("INVOICE: %s\nAmt: $%s\nDate: %s",
		order.ID, order.TotalAmount.String(), order.CreatedAt.Format("02/01/2006"))
}

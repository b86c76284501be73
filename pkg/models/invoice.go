package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Invoice is an immutable billing record for one order. The total is
// snapshotted at construction and never changes, even if the referenced
// order's items are mutated afterwards.
type Invoice struct {
	number       int
	order        *Order
	customerName string
	issuedAt     time.Time
	total        float64
}

// NewInvoice bills an order for a customer. The customer name is trimmed and
// must be non-empty; the order must be non-nil. As a side effect the order's
// status is forced to completed.
func NewInvoice(number int, order *Order, customerName string) (*Invoice, error) {
	if order == nil {
		return nil, fmt.Errorf("%w: order is required", ErrInvalidArgument)
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, fmt.Errorf("%w: customer name cannot be empty", ErrInvalidArgument)
	}

	inv := &Invoice{
		number:       number,
		order:        order,
		customerName: customerName,
		issuedAt:     time.Now(),
		total:        order.Total(),
	}
	order.SetStatus(StatusCompleted)
	return inv, nil
}

func (i *Invoice) Number() int { return i.number }
func (i *Invoice) Order() *Order { return i.order }
func (i *Invoice) CustomerName() string { return i.customerName }
func (i *Invoice) IssuedAt() time.Time { return i.issuedAt }
func (i *Invoice) Total() float64 { return i.total }

// Receipt renders the invoice as a printable text block.
func (i *Invoice) Receipt() string {
	rule := strings.Repeat("=", 50)
	thin := strings.Repeat("-", 50)

	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "           FACTURA #%d\n", i.number)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Cliente: %s\n", i.customerName)
	fmt.Fprintf(&b, "Fecha: %s\n", i.issuedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "Pedido #: %d\n", i.order.ID())
	b.WriteString(thin + "\n")
	for _, p := range i.order.Items() {
		fmt.Fprintf(&b, "- %s\n", p.Line())
	}
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "TOTAL: $%.2f\n", i.total)
	b.WriteString(rule + "\n")
	return b.String()
}

// Summary returns a one-line description of the invoice.
func (i *Invoice) Summary() string {
	return fmt.Sprintf("Factura #%d | Cliente: %s | Pedido: #%d | Total: $%.2f",
		i.number, i.customerName, i.order.ID(), i.total)
}

func (i *Invoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Number       int       `json:"number"`
		OrderID      int       `json:"order_id"`
		CustomerName string    `json:"customer_name"`
		IssuedAt     time.Time `json:"issued_at"`
		Total        float64   `json:"total"`
	}{i.number, i.order.ID(), i.customerName, i.issuedAt, i.total})
}

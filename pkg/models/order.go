package models

import (
	"encoding/json"
	"time"
)

// OrderStatus tracks the order lifecycle. Any status is reachable from any
// other; transitions are not validated.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderOrigin records who started the order.
type OrderOrigin string

const (
	OriginStaff    OrderOrigin = "staff"
	OriginCustomer OrderOrigin = "customer"
)

// Order is a mutable cart of product references with a lifecycle status.
// Products are shared: the same product object may appear in several orders.
type Order struct {
	id           int
	items        []Product
	createdAt    time.Time
	status       OrderStatus
	customerName string
	origin       OrderOrigin
}

// NewOrder creates a staff-originated order with no customer name.
func NewOrder(id int) *Order {
	return &Order{
		id:        id,
		items:     []Product{},
		createdAt: time.Now(),
		status:    StatusPending,
		origin:    OriginStaff,
	}
}

// NewCustomerOrder creates a customer-originated order.
func NewCustomerOrder(id int, customerName string) *Order {
	o := NewOrder(id)
	o.customerName = customerName
	o.origin = OriginCustomer
	return o
}

func (o *Order) ID() int { return o.id }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Status() OrderStatus { return o.status }
func (o *Order) CustomerName() string { return o.customerName }
func (o *Order) Origin() OrderOrigin { return o.origin }

// AddItem appends a product to the order. Nil products are ignored.
func (o *Order) AddItem(p Product) {
	if p != nil {
		o.items = append(o.items, p)
	}
}

// Items returns a copy of the order's product list in insertion order.
func (o *Order) Items() []Product {
	items := make([]Product, len(o.items))
	copy(items, o.items)
	return items
}

// Total sums the final prices of the current items. An empty order totals
// zero. The result reflects later mutation of contained combos.
func (o *Order) Total() float64 {
	total := 0.0
	for _, item := range o.items {
		total += item.FinalPrice()
	}
	return total
}

func (o *Order) IsEmpty() bool { return len(o.items) == 0 }
func (o *Order) ItemCount() int { return len(o.items) }

// SetStatus overwrites the order status unconditionally.
func (o *Order) SetStatus(status OrderStatus) {
	o.status = status
}

func (o *Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           int         `json:"id"`
		Items        []Product   `json:"items"`
		Total        float64     `json:"total"`
		CreatedAt    time.Time   `json:"created_at"`
		Status       OrderStatus `json:"status"`
		CustomerName string      `json:"customer_name,omitempty"`
		Origin       OrderOrigin `json:"origin"`
	}{o.id, o.Items(), o.Total(), o.createdAt, o.status, o.customerName, o.origin})
}

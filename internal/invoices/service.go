package invoices

import (
	"fmt"
	"strings"
	"sync"

	"github.com/restomesa/restomesa/pkg/models"
	"github.com/sirupsen/logrus"
)

// OrderLookup is the read-only view of the order service that invoicing
// depends on.
type OrderLookup interface {
	FindByID(id int) (*models.Order, bool)
	CanBeInvoiced(id int) bool
}

// Service owns the list of issued invoices and assigns their numbers.
// Numbers are monotonic per service instance, starting at 1.
type Service struct {
	mu         sync.RWMutex
	invoices   []*models.Invoice
	nextNumber int
	orders     OrderLookup
	logger     *logrus.Logger
}

func NewService(orders OrderLookup, logger *logrus.Logger) *Service {
	return &Service{
		invoices:   []*models.Invoice{},
		nextNumber: 1,
		orders:     orders,
		logger:     logger,
	}
}

// Issue bills a pending, non-empty order for a customer. All validation
// happens before any state is mutated; on success the order is marked
// completed and the invoice's total is frozen.
func (s *Service) Issue(orderID int, customerName string) (*models.Invoice, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, fmt.Errorf("%w: customer name cannot be empty", models.ErrInvalidArgument)
	}

	order, ok := s.orders.FindByID(orderID)
	if !ok {
		return nil, fmt.Errorf("%w: order %d does not exist", models.ErrInvalidArgument, orderID)
	}

	if !s.orders.CanBeInvoiced(orderID) {
		return nil, fmt.Errorf("%w: order %d cannot be invoiced, it must be pending and contain products",
			models.ErrInvalidState, orderID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	invoice, err := models.NewInvoice(s.nextNumber, order, customerName)
	if err != nil {
		return nil, err
	}
	s.nextNumber++
	s.invoices = append(s.invoices, invoice)

	s.logger.WithFields(logrus.Fields{
		"invoice_number": invoice.Number(),
		"order_id":       orderID,
		"customer_name":  invoice.CustomerName(),
		"total":          invoice.Total(),
	}).Info("Invoice issued")

	return invoice, nil
}

// FindByNumber returns the invoice with the given number.
func (s *Service) FindByNumber(number int) (*models.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.invoices {
		if inv.Number() == number {
			return inv, true
		}
	}
	return nil, false
}

// ListAll returns a copy of the full invoice list.
func (s *Service) ListAll() []*models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoices := make([]*models.Invoice, len(s.invoices))
	copy(invoices, s.invoices)
	return invoices
}

// ListByCustomer returns the invoices issued to a customer, matched
// case-insensitively.
func (s *Service) ListByCustomer(customerName string) []*models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*models.Invoice{}
	for _, inv := range s.invoices {
		if strings.EqualFold(inv.CustomerName(), customerName) {
			result = append(result, inv)
		}
	}
	return result
}

// TotalBilled sums the totals of every issued invoice.
func (s *Service) TotalBilled() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, inv := range s.invoices {
		total += inv.Total()
	}
	return total
}

// TotalBilledFor sums the totals of the invoices issued to a customer.
func (s *Service) TotalBilledFor(customerName string) float64 {
	total := 0.0
	for _, inv := range s.ListByCustomer(customerName) {
		total += inv.Total()
	}
	return total
}

// Highest returns the invoice with the largest total, or nil when none have
// been issued. Ties resolve to the earliest issued.
func (s *Service) Highest() *models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.invoices) == 0 {
		return nil
	}
	highest := s.invoices[0]
	for _, inv := range s.invoices {
		if inv.Total() > highest.Total() {
			highest = inv
		}
	}
	return highest
}

// Lowest returns the invoice with the smallest total, or nil when none have
// been issued. Ties resolve to the earliest issued.
func (s *Service) Lowest() *models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.invoices) == 0 {
		return nil
	}
	lowest := s.invoices[0]
	for _, inv := range s.invoices {
		if inv.Total() < lowest.Total() {
			lowest = inv
		}
	}
	return lowest
}

// ExistsForOrder reports whether any invoice references the given order id.
func (s *Service) ExistsForOrder(orderID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.invoices {
		if inv.Order().ID() == orderID {
			return true
		}
	}
	return false
}

// Count returns the number of issued invoices.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.invoices)
}

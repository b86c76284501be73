package orders

import (
	"sync"

	"github.com/restomesa/restomesa/pkg/models"
	"github.com/sirupsen/logrus"
)

// Service owns the list of orders and assigns their ids. Ids are monotonic
// per service instance, starting at 1.
type Service struct {
	mu     sync.RWMutex
	orders []*models.Order
	nextID int
	logger *logrus.Logger
}

func NewService(logger *logrus.Logger) *Service {
	return &Service{
		orders: []*models.Order{},
		nextID: 1,
		logger: logger,
	}
}

// Create allocates a new pending staff order.
func (s *Service) Create() *models.Order {
	s.mu.Lock()
	order := models.NewOrder(s.nextID)
	s.nextID++
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"order_id": order.ID(),
		"origin":   order.Origin(),
	}).Info("Order created")

	return order
}

// CreateForCustomer allocates a new pending customer order.
func (s *Service) CreateForCustomer(customerName string) *models.Order {
	s.mu.Lock()
	order := models.NewCustomerOrder(s.nextID, customerName)
	s.nextID++
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"order_id":      order.ID(),
		"customer_name": customerName,
		"origin":        order.Origin(),
	}).Info("Order created")

	return order
}

// AddProduct appends a product to an order. It reports false when the order
// or the product is missing; the order's status is deliberately not checked.
func (s *Service) AddProduct(orderID int, p models.Product) bool {
	if p == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findLocked(orderID)
	if order == nil {
		return false
	}
	order.AddItem(p)

	s.logger.WithFields(logrus.Fields{
		"order_id":   orderID,
		"product":    p.Name(),
		"item_count": order.ItemCount(),
	}).Info("Product added to order")

	return true
}

// FindByID returns the order with the given id.
func (s *Service) FindByID(id int) (*models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.findLocked(id)
	return order, order != nil
}

// ListPending returns pending orders in insertion order.
func (s *Service) ListPending() []*models.Order {
	return s.listByStatus(models.StatusPending)
}

// ListCompleted returns completed orders in insertion order.
func (s *Service) ListCompleted() []*models.Order {
	return s.listByStatus(models.StatusCompleted)
}

// ListAll returns a copy of the full order list.
func (s *Service) ListAll() []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// OrderTotal returns the current total of an order, or 0 when it is missing.
func (s *Service) OrderTotal(id int) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if order := s.findLocked(id); order != nil {
		return order.Total()
	}
	return 0
}

// CanBeInvoiced reports whether the order exists, is pending and has items.
func (s *Service) CanBeInvoiced(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.findLocked(id)
	return order != nil && order.Status() == models.StatusPending && !order.IsEmpty()
}

// SetStatus overwrites the status of an order. It reports false when the
// order is missing.
func (s *Service) SetStatus(id int, status models.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findLocked(id)
	if order == nil {
		return false
	}
	order.SetStatus(status)

	s.logger.WithFields(logrus.Fields{
		"order_id": id,
		"status":   status,
	}).Info("Order status changed")

	return true
}

// Count returns the total number of orders.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// PendingCount returns the number of pending orders.
func (s *Service) PendingCount() int {
	return len(s.ListPending())
}

func (s *Service) listByStatus(status models.OrderStatus) []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*models.Order{}
	for _, order := range s.orders {
		if order.Status() == status {
			result = append(result, order)
		}
	}
	return result
}

func (s *Service) findLocked(id int) *models.Order {
	for _, order := range s.orders {
		if order.ID() == id {
			return order
		}
	}
	return nil
}

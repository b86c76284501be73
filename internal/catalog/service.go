package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/restomesa/restomesa/pkg/models"
	"github.com/sirupsen/logrus"
)

// Service owns the list of products available for ordering.
type Service struct {
	mu       sync.RWMutex
	products []models.Product
	logger   *logrus.Logger
}

func NewService(logger *logrus.Logger) *Service {
	return &Service{
		products: []models.Product{},
		logger:   logger,
	}
}

// Seed loads the demonstration catalog: 4 foods, 3 drinks and 1 combo.
func (s *Service) Seed() {
	s.AddFood("Hamburguesa Clásica", 12.99, models.KindPrincipal, false)
	s.AddFood("Ensalada César", 8.50, models.KindEntrada, true)
	s.AddFood("Pizza Margarita", 15.99, models.KindPrincipal, true)
	s.AddFood("Tiramisú", 6.99, models.KindPostre, true)

	s.AddDrink("Coca-Cola", 2.50, models.SizeMediano, false)
	s.AddDrink("Cerveza Artesanal", 5.99, models.SizeGrande, true)
	s.AddDrink("Agua Mineral", 1.50, models.SizePequeno, false)

	combo, _ := s.AddCombo("Combo Familiar", 15)
	combo.AddItem(models.NewFood("Pizza Familiar", 25.99, models.KindPrincipal, true))
	combo.AddItem(models.NewDrink("Refresco", 3.50, models.SizeGrande, false))
	combo.AddItem(models.NewFood("Helado", 4.99, models.KindPostre, true))

	s.logger.WithField("product_count", s.Count()).Info("Catalog seeded with demo products")
}

// AddFood validates and inserts a new food item.
func (s *Service) AddFood(name string, price float64, kind models.FoodKind, vegetarian bool) (*models.Food, error) {
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}

	food := models.NewFood(name, price, kind, vegetarian)

	s.mu.Lock()
	s.products = append(s.products, food)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"name":  name,
		"price": price,
		"kind":  kind,
	}).Info("Food added to catalog")

	return food, nil
}

// AddDrink validates and inserts a new drink.
func (s *Service) AddDrink(name string, price float64, size models.DrinkSize, hasAlcohol bool) (*models.Drink, error) {
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}

	drink := models.NewDrink(name, price, size, hasAlcohol)

	s.mu.Lock()
	s.products = append(s.products, drink)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"name":  name,
		"price": price,
		"size":  size,
	}).Info("Drink added to catalog")

	return drink, nil
}

// AddCombo validates and inserts a new combo. The returned combo starts empty;
// callers attach contents via Combo.AddItem.
func (s *Service) AddCombo(name string, discountPercent float64) (*models.Combo, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", models.ErrInvalidArgument)
	}
	if discountPercent < 0 || discountPercent > 100 {
		return nil, fmt.Errorf("%w: discount must be between 0 and 100", models.ErrInvalidArgument)
	}

	combo := models.NewCombo(name, discountPercent)

	s.mu.Lock()
	s.products = append(s.products, combo)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"name":     name,
		"discount": discountPercent,
	}).Info("Combo added to catalog")

	return combo, nil
}

// FindByName returns the first product whose name matches case-insensitively.
func (s *Service) FindByName(name string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if strings.EqualFold(p.Name(), name) {
			return p, true
		}
	}
	return nil, false
}

// ListByType returns the products carrying the given variant tag, preserving
// catalog order. An unknown tag yields an empty list.
func (s *Service) ListByType(t models.ProductType) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Product{}
	for _, p := range s.products {
		if p.Type() == t {
			result = append(result, p)
		}
	}
	return result
}

// List returns a copy of the full catalog.
func (s *Service) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

// Count returns the number of products in the catalog.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func validateProduct(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", models.ErrInvalidArgument)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be positive", models.ErrInvalidArgument)
	}
	return nil
}

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProductType tags the closed set of product variants.
type ProductType string

const (
	TypeFood  ProductType = "food"
	TypeDrink ProductType = "drink"
	TypeCombo ProductType = "combo"
)

// FoodKind classifies a food item within the menu.
type FoodKind string

const (
	KindEntrada   FoodKind = "entrada"
	KindPrincipal FoodKind = "principal"
	KindPostre    FoodKind = "postre"
)

// DrinkSize selects the surcharge multiplier applied to a drink's base price.
type DrinkSize string

const (
	SizePequeno DrinkSize = "pequeno"
	SizeMediano DrinkSize = "mediano"
	SizeGrande  DrinkSize = "grande"
)

// Product is the pricing contract shared by all catalog entries. Variants are
// immutable after construction, except that a Combo's item list may grow.
type Product interface {
	// Name returns the display name of the product.
	Name() string
	// BasePrice returns the price before variant-specific adjustments.
	BasePrice() float64
	// FinalPrice computes the effective price of the product.
	FinalPrice() float64
	// Type returns the variant tag.
	Type() ProductType
	// Line renders the product as a single receipt line.
	Line() string
}

// Food is a plate with no price adjustment.
type Food struct {
	name       string
	basePrice  float64
	kind       FoodKind
	vegetarian bool
}

func NewFood(name string, basePrice float64, kind FoodKind, vegetarian bool) *Food {
	return &Food{
		name:       name,
		basePrice:  basePrice,
		kind:       kind,
		vegetarian: vegetarian,
	}
}

func (f *Food) Name() string { return f.name }
func (f *Food) BasePrice() float64 { return f.basePrice }
func (f *Food) Kind() FoodKind { return f.kind }
func (f *Food) Vegetarian() bool { return f.vegetarian }
func (f *Food) Type() ProductType { return TypeFood }

// FinalPrice returns the base price unchanged; foods carry no surcharge.
func (f *Food) FinalPrice() float64 { return f.basePrice }

func (f *Food) Line() string {
	veg := ""
	if f.vegetarian {
		veg = " (Vegetariano)"
	}
	return fmt.Sprintf("%s [%s] - $%.2f%s", f.name, f.kind, f.FinalPrice(), veg)
}

func (f *Food) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       ProductType `json:"type"`
		Name       string      `json:"name"`
		BasePrice  float64     `json:"base_price"`
		Kind       FoodKind    `json:"kind"`
		Vegetarian bool        `json:"vegetarian"`
		FinalPrice float64     `json:"final_price"`
	}{TypeFood, f.name, f.basePrice, f.kind, f.vegetarian, f.FinalPrice()})
}

// Drink applies a size surcharge on top of the base price.
type Drink struct {
	name       string
	basePrice  float64
	size       DrinkSize
	hasAlcohol bool
}

func NewDrink(name string, basePrice float64, size DrinkSize, hasAlcohol bool) *Drink {
	return &Drink{
		name:       name,
		basePrice:  basePrice,
		size:       size,
		hasAlcohol: hasAlcohol,
	}
}

func (d *Drink) Name() string { return d.name }
func (d *Drink) BasePrice() float64 { return d.basePrice }
func (d *Drink) Size() DrinkSize { return d.size }
func (d *Drink) HasAlcohol() bool { return d.hasAlcohol }
func (d *Drink) Type() ProductType { return TypeDrink }

// FinalPrice applies the size surcharge: mediano +20%, grande +40%. Size
// matching is case-insensitive; unrecognized sizes price at base.
func (d *Drink) FinalPrice() float64 {
	switch DrinkSize(strings.ToLower(string(d.size))) {
	case SizeMediano:
		return d.basePrice * 1.2
	case SizeGrande:
		return d.basePrice * 1.4
	default:
		return d.basePrice
	}
}

func (d *Drink) Line() string {
	alcohol := " (Sin Alcohol)"
	if d.hasAlcohol {
		alcohol = " (Con Alcohol)"
	}
	return fmt.Sprintf("%s [%s] - $%.2f%s", d.name, d.size, d.FinalPrice(), alcohol)
}

func (d *Drink) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       ProductType `json:"type"`
		Name       string      `json:"name"`
		BasePrice  float64     `json:"base_price"`
		Size       DrinkSize   `json:"size"`
		HasAlcohol bool        `json:"has_alcohol"`
		FinalPrice float64     `json:"final_price"`
	}{TypeDrink, d.name, d.basePrice, d.size, d.hasAlcohol, d.FinalPrice()})
}

// Combo bundles other products (including nested combos, shared by reference)
// and discounts their combined price.
type Combo struct {
	name            string
	discountPercent float64
	items           []Product
}

func NewCombo(name string, discountPercent float64) *Combo {
	return &Combo{
		name:            name,
		discountPercent: discountPercent,
		items:           []Product{},
	}
}

func (c *Combo) Name() string { return c.name }
func (c *Combo) BasePrice() float64 { return 0 }
func (c *Combo) DiscountPercent() float64 { return c.discountPercent }
func (c *Combo) Type() ProductType { return TypeCombo }

// AddItem appends a product to the combo. Nil products are ignored.
func (c *Combo) AddItem(p Product) {
	if p != nil {
		c.items = append(c.items, p)
	}
}

// Items returns a copy of the combo's contents.
func (c *Combo) Items() []Product {
	items := make([]Product, len(c.items))
	copy(items, c.items)
	return items
}

// FinalPrice sums the current contents and applies the discount. An empty
// combo prices at zero.
func (c *Combo) FinalPrice() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.FinalPrice()
	}
	return total * (1 - c.discountPercent/100)
}

func (c *Combo) Line() string {
	return fmt.Sprintf("%s [Combo - %.0f%% descuento] - $%.2f", c.name, c.discountPercent, c.FinalPrice())
}

func (c *Combo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type            ProductType `json:"type"`
		Name            string      `json:"name"`
		DiscountPercent float64     `json:"discount_percent"`
		Items           []Product   `json:"items"`
		FinalPrice      float64     `json:"final_price"`
	}{TypeCombo, c.name, c.discountPercent, c.Items(), c.FinalPrice()})
}

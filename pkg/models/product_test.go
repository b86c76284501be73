package models

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFoodFinalPriceEqualsBase(t *testing.T) {
	food := NewFood("Sopa", 5.00, KindEntrada, true)
	if !almostEqual(food.FinalPrice(), 5.00) {
		t.Errorf("Expected final price 5.00, got %f", food.FinalPrice())
	}
	if food.Type() != TypeFood {
		t.Errorf("Expected type %q, got %q", TypeFood, food.Type())
	}
}

func TestDrinkSizeSurcharges(t *testing.T) {
	tests := []struct {
		size     DrinkSize
		expected float64
	}{
		{SizePequeno, 10.0},
		{SizeMediano, 12.0},
		{SizeGrande, 14.0},
		{DrinkSize("MEDIANO"), 12.0},
		{DrinkSize("Grande"), 14.0},
		{DrinkSize("venti"), 10.0}, // unknown size prices at base
		{DrinkSize(""), 10.0},
	}

	for _, tt := range tests {
		drink := NewDrink("Refresco", 10.0, tt.size, false)
		if !almostEqual(drink.FinalPrice(), tt.expected) {
			t.Errorf("Size %q: expected %f, got %f", tt.size, tt.expected, drink.FinalPrice())
		}
	}
}

func TestComboFinalPrice(t *testing.T) {
	combo := NewCombo("Combo Pareja", 10)
	combo.AddItem(NewFood("Pizza", 20.0, KindPrincipal, true))
	combo.AddItem(NewDrink("Refresco", 5.0, SizeGrande, false))

	// (20 + 5*1.4) * 0.9
	expected := (20.0 + 7.0) * 0.9
	if !almostEqual(combo.FinalPrice(), expected) {
		t.Errorf("Expected %f, got %f", expected, combo.FinalPrice())
	}
}

func TestEmptyComboPricesAtZero(t *testing.T) {
	combo := NewCombo("Combo Vacío", 50)
	if !almostEqual(combo.FinalPrice(), 0) {
		t.Errorf("Expected 0, got %f", combo.FinalPrice())
	}
}

func TestNestedCombo(t *testing.T) {
	inner := NewCombo("Combo Niños", 20)
	inner.AddItem(NewFood("Nuggets", 10.0, KindPrincipal, false))

	outer := NewCombo("Combo Familiar", 50)
	outer.AddItem(inner)
	outer.AddItem(NewFood("Postre", 4.0, KindPostre, true))

	// inner: 10 * 0.8 = 8; outer: (8 + 4) * 0.5 = 6
	if !almostEqual(outer.FinalPrice(), 6.0) {
		t.Errorf("Expected 6.0, got %f", outer.FinalPrice())
	}
}

func TestComboIgnoresNilItems(t *testing.T) {
	combo := NewCombo("Combo", 0)
	combo.AddItem(nil)
	if len(combo.Items()) != 0 {
		t.Errorf("Expected 0 items, got %d", len(combo.Items()))
	}
}

func TestComboItemsAreShared(t *testing.T) {
	pizza := NewFood("Pizza", 20.0, KindPrincipal, true)
	combo := NewCombo("Combo", 0)
	combo.AddItem(pizza)
	combo.AddItem(pizza)
	if !almostEqual(combo.FinalPrice(), 40.0) {
		t.Errorf("Expected 40.0, got %f", combo.FinalPrice())
	}
}

func TestProductLines(t *testing.T) {
	food := NewFood("Ensalada", 8.50, KindEntrada, true)
	if got := food.Line(); got != "Ensalada [entrada] - $8.50 (Vegetariano)" {
		t.Errorf("Unexpected food line: %q", got)
	}

	drink := NewDrink("Cerveza", 5.00, SizeGrande, true)
	if got := drink.Line(); got != "Cerveza [grande] - $7.00 (Con Alcohol)" {
		t.Errorf("Unexpected drink line: %q", got)
	}

	combo := NewCombo("Combo Solo", 15)
	combo.AddItem(NewFood("Plato", 10.0, KindPrincipal, false))
	if got := combo.Line(); !strings.Contains(got, "[Combo - 15% descuento]") {
		t.Errorf("Unexpected combo line: %q", got)
	}
}

package models

import "testing"

func TestEmptyOrderTotalsZero(t *testing.T) {
	order := NewOrder(1)
	if !almostEqual(order.Total(), 0) {
		t.Errorf("Expected 0, got %f", order.Total())
	}
	if !order.IsEmpty() {
		t.Error("Expected new order to be empty")
	}
	if order.ItemCount() != 0 {
		t.Errorf("Expected 0 items, got %d", order.ItemCount())
	}
	if order.Status() != StatusPending {
		t.Errorf("Expected pending status, got %q", order.Status())
	}
}

func TestOrderOrigins(t *testing.T) {
	staff := NewOrder(1)
	if staff.Origin() != OriginStaff {
		t.Errorf("Expected staff origin, got %q", staff.Origin())
	}
	if staff.CustomerName() != "" {
		t.Errorf("Expected empty customer name, got %q", staff.CustomerName())
	}

	customer := NewCustomerOrder(2, "Ana")
	if customer.Origin() != OriginCustomer {
		t.Errorf("Expected customer origin, got %q", customer.Origin())
	}
	if customer.CustomerName() != "Ana" {
		t.Errorf("Expected customer name Ana, got %q", customer.CustomerName())
	}
}

func TestOrderTotalSumsFinalPrices(t *testing.T) {
	order := NewOrder(1)
	order.AddItem(NewFood("Sopa", 5.00, KindEntrada, true))
	order.AddItem(NewDrink("Cola", 2.00, SizeGrande, false))

	if !almostEqual(order.Total(), 7.80) {
		t.Errorf("Expected 7.80, got %f", order.Total())
	}
	if order.ItemCount() != 2 {
		t.Errorf("Expected 2 items, got %d", order.ItemCount())
	}
}

func TestOrderIgnoresNilItems(t *testing.T) {
	order := NewOrder(1)
	order.AddItem(nil)
	if !order.IsEmpty() {
		t.Error("Expected order to stay empty after nil AddItem")
	}
}

func TestOrderTotalReflectsComboMutation(t *testing.T) {
	combo := NewCombo("Combo", 0)
	combo.AddItem(NewFood("Pizza", 10.0, KindPrincipal, true))

	order := NewOrder(1)
	order.AddItem(combo)
	if !almostEqual(order.Total(), 10.0) {
		t.Errorf("Expected 10.0, got %f", order.Total())
	}

	// The combo is shared by reference; growing it changes the order total.
	combo.AddItem(NewFood("Postre", 5.0, KindPostre, true))
	if !almostEqual(order.Total(), 15.0) {
		t.Errorf("Expected 15.0 after combo mutation, got %f", order.Total())
	}
}

func TestSetStatusIsUnconditional(t *testing.T) {
	order := NewOrder(1)
	order.SetStatus(StatusCancelled)
	order.SetStatus(StatusCompleted)
	order.SetStatus(StatusPending)
	if order.Status() != StatusPending {
		t.Errorf("Expected pending, got %q", order.Status())
	}
}

func TestOrderItemsReturnsCopy(t *testing.T) {
	order := NewOrder(1)
	order.AddItem(NewFood("Sopa", 5.00, KindEntrada, true))

	items := order.Items()
	items[0] = nil
	if order.Items()[0] == nil {
		t.Error("Mutating the returned slice must not affect the order")
	}
}

// Command caja runs a short cashier session against the in-memory services:
// it seeds the demo catalog, builds a customer order, issues the invoice and
// prints the receipt.
package main

import (
	"fmt"
	"os"

	"github.com/restomesa/restomesa/internal/catalog"
	"github.com/restomesa/restomesa/internal/invoices"
	"github.com/restomesa/restomesa/internal/orders"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	catalogSvc := catalog.NewService(logger)
	catalogSvc.Seed()
	orderSvc := orders.NewService(logger)
	invoiceSvc := invoices.NewService(orderSvc, logger)

	fmt.Println("Catálogo:")
	for _, p := range catalogSvc.List() {
		fmt.Printf("  %s\n", p.Line())
	}

	order := orderSvc.CreateForCustomer("Ana")
	for _, name := range []string{"Hamburguesa Clásica", "Coca-Cola", "Combo Familiar"} {
		product, ok := catalogSvc.FindByName(name)
		if !ok {
			logger.WithField("product", name).Fatal("Seeded product missing")
		}
		orderSvc.AddProduct(order.ID(), product)
	}

	fmt.Printf("\nPedido #%d (%d productos) - Total: $%.2f\n",
		order.ID(), order.ItemCount(), order.Total())

	invoice, err := invoiceSvc.Issue(order.ID(), "Ana")
	if err != nil {
		logger.WithError(err).Error("Failed to issue invoice")
		os.Exit(1)
	}

	fmt.Print(invoice.Receipt())
	fmt.Printf("\n%s\n", invoice.Summary())
	fmt.Printf("Total facturado: $%.2f\n", invoiceSvc.TotalBilled())
}

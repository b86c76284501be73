package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/restomesa/restomesa/internal/events"
	"github.com/restomesa/restomesa/internal/websocket"
	"github.com/restomesa/restomesa/pkg/models"
)

type issueInvoiceRequest struct {
	OrderID      int    `json:"order_id"`
	CustomerName string `json:"customer_name"`
}

func (h *Handler) IssueInvoice(w http.ResponseWriter, r *http.Request) {
	var req issueInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode invoice request")
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoice, err := h.invoices.Issue(req.OrderID, req.CustomerName)
	if err != nil {
		h.respondWithDomainError(w, err)
		return
	}

	event := events.InvoiceIssuedEvent{
		InvoiceNumber: invoice.Number(),
		OrderID:       req.OrderID,
		CustomerName:  invoice.CustomerName(),
		Total:         invoice.Total(),
		IssuedAt:      invoice.IssuedAt(),
	}
	if err := h.producer.PublishInvoiceIssued(event); err != nil {
		h.logger.WithError(err).Error("Failed to publish invoice issued event")
	}

	h.broadcast(websocket.InvoiceIssued, invoice)
	h.broadcast(websocket.OrderUpdated, invoice.Order())
	h.respondWithJSON(w, http.StatusCreated, invoice)
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	var list []*models.Invoice
	if customer := r.URL.Query().Get("customer"); customer != "" {
		list = h.invoices.ListByCustomer(customer)
	} else {
		list = h.invoices.ListAll()
	}
	h.respondWithJSON(w, http.StatusOK, list)
}

func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid invoice number")
		return
	}

	invoice, ok := h.invoices.FindByNumber(number)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Invoice %d not found", number))
		return
	}
	h.respondWithJSON(w, http.StatusOK, invoice)
}

// GetReceipt renders the printable receipt as plain text.
func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid invoice number")
		return
	}

	invoice, ok := h.invoices.FindByNumber(number)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Invoice %d not found", number))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(invoice.Receipt()))
}

// InvoiceSummary reports billing aggregates across all issued invoices.
func (h *Handler) InvoiceSummary(w http.ResponseWriter, r *http.Request) {
	summary := map[string]interface{}{
		"count":        h.invoices.Count(),
		"total_billed": h.invoices.TotalBilled(),
	}
	if highest := h.invoices.Highest(); highest != nil {
		summary["highest"] = highest
	}
	if lowest := h.invoices.Lowest(); lowest != nil {
		summary["lowest"] = lowest
	}
	h.respondWithJSON(w, http.StatusOK, summary)
}

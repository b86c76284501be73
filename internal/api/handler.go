package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/restomesa/restomesa/internal/catalog"
	"github.com/restomesa/restomesa/internal/events"
	"github.com/restomesa/restomesa/internal/invoices"
	"github.com/restomesa/restomesa/internal/orders"
	"github.com/restomesa/restomesa/pkg/models"
	"github.com/sirupsen/logrus"
)

// Broadcaster pushes change notifications to connected UI clients.
type Broadcaster interface {
	Broadcast(messageType string, data interface{}, source string)
}

// Handler exposes the catalog, order and invoice services over HTTP. It is
// the collaborator surface the original desktop forms occupied: clients issue
// validated create/update requests and re-render from the list endpoints and
// the websocket feed.
type Handler struct {
	catalog  *catalog.Service
	orders   *orders.Service
	invoices *invoices.Service
	producer *events.Producer
	hub      Broadcaster
	logger   *logrus.Logger
}

func NewHandler(catalogSvc *catalog.Service, orderSvc *orders.Service, invoiceSvc *invoices.Service, logger *logrus.Logger) *Handler {
	return &Handler{
		catalog:  catalogSvc,
		orders:   orderSvc,
		invoices: invoiceSvc,
		logger:   logger,
	}
}

// SetProducer attaches an optional Kafka producer for domain events.
func (h *Handler) SetProducer(p *events.Producer) {
	h.producer = p
}

// SetHub attaches an optional websocket hub for UI change notifications.
func (h *Handler) SetHub(hub Broadcaster) {
	h.hub = hub
}

// Router builds the route table.
func (h *Handler) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	router.HandleFunc("/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/products/food", h.CreateFood).Methods("POST")
	router.HandleFunc("/products/drink", h.CreateDrink).Methods("POST")
	router.HandleFunc("/products/combo", h.CreateCombo).Methods("POST")
	router.HandleFunc("/products/{name}", h.GetProduct).Methods("GET")

	router.HandleFunc("/orders", h.CreateOrder).Methods("POST")
	router.HandleFunc("/orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/orders/{id}", h.GetOrder).Methods("GET")
	router.HandleFunc("/orders/{id}/items", h.AddOrderItem).Methods("POST")
	router.HandleFunc("/orders/{id}/status", h.UpdateOrderStatus).Methods("PUT")

	router.HandleFunc("/invoices", h.IssueInvoice).Methods("POST")
	router.HandleFunc("/invoices", h.ListInvoices).Methods("GET")
	router.HandleFunc("/invoices/summary", h.InvoiceSummary).Methods("GET")
	router.HandleFunc("/invoices/{number}", h.GetInvoice).Methods("GET")
	router.HandleFunc("/invoices/{number}/receipt", h.GetReceipt).Methods("GET")

	return router
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "restomesa",
	})
}

func (h *Handler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func (h *Handler) respondWithError(w http.ResponseWriter, code int, message string) {
	h.respondWithJSON(w, code, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// respondWithDomainError maps service errors onto HTTP statuses:
// InvalidArgument becomes 400 and InvalidState becomes 409.
func (h *Handler) respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		h.respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidState):
		h.respondWithError(w, http.StatusConflict, err.Error())
	default:
		h.respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) broadcast(messageType string, data interface{}) {
	if h.hub != nil {
		h.hub.Broadcast(messageType, data, "api")
	}
}

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
	"github.com/sirupsen/logrus"
)

type createOrderRequest struct {
	CustomerName string `json:"customer_name"`
}

type addOrderItemRequest struct {
	Product string `json:"product"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.WithError(err).Error("Failed to decode order request")
			h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	var order *models.Order
	if req.CustomerName != "" {
		order = h.orders.CreateForCustomer(req.CustomerName)
	} else {
		order = h.orders.Create()
	}

	event := events.OrderCreatedEvent{
		OrderID:      order.ID(),
		CustomerName: order.CustomerName(),
		Origin:       string(order.Origin()),
		CreatedAt:    order.CreatedAt(),
	}
	if err := h.producer.PublishOrderCreated(event); err != nil {
		// The order is already committed; log and move on.
		h.logger.WithError(err).Error("Failed to publish order created event")
	}

	h.broadcast(websocket.OrderUpdated, order)
	h.respondWithJSON(w, http.StatusCreated, order)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var list []*models.Order
	switch models.OrderStatus(r.URL.Query().Get("status")) {
	case models.StatusPending:
		list = h.orders.ListPending()
	case models.StatusCompleted:
		list = h.orders.ListCompleted()
	default:
		list = h.orders.ListAll()
	}
	h.respondWithJSON(w, http.StatusOK, list)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, ok := h.orders.FindByID(id)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Order %d not found", id))
		return
	}
	h.respondWithJSON(w, http.StatusOK, order)
}

// AddOrderItem attaches a catalog product to an order. The order's status is
// not checked, matching the permissive service contract.
func (h *Handler) AddOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req addOrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode order item request")
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, ok := h.catalog.FindByName(req.Product)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Product %q not found", req.Product))
		return
	}

	if !h.orders.AddProduct(id, product) {
		h.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Order %d not found", id))
		return
	}

	order, _ := h.orders.FindByID(id)
	h.broadcast(websocket.OrderUpdated, order)
	h.respondWithJSON(w, http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode status request")
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.orders.SetStatus(id, models.OrderStatus(req.Status)) {
		h.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Order %d not found", id))
		return
	}

	h.logger.WithFields(logrus.Fields{
		"order_id": id,
		"status":   req.Status,
	}).Info("Order status updated via API")

	order, _ := h.orders.FindByID(id)
	h.broadcast(websocket.OrderUpdated, order)
	h.respondWithJSON(w, http.StatusOK, order)
}

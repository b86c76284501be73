package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/restomesa/restomesa/internal/websocket"
	"github.com/restomesa/restomesa/pkg/models"
	"github.com/sirupsen/logrus"
)

type createFoodRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Kind       string  `json:"kind"`
	Vegetarian bool    `json:"vegetarian"`
}

type createDrinkRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Size       string  `json:"size"`
	HasAlcohol bool    `json:"has_alcohol"`
}

type createComboRequest struct {
	Name            string   `json:"name"`
	DiscountPercent float64  `json:"discount_percent"`
	Items           []string `json:"items"`
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if t := r.URL.Query().Get("type"); t != "" {
		products = h.catalog.ListByType(models.ProductType(t))
	} else {
		products = h.catalog.List()
	}
	h.respondWithJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	product, ok := h.catalog.FindByName(name)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Product %q not found", name))
		return
	}
	h.respondWithJSON(w, http.StatusOK, product)
}

func (h *Handler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var req createFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode food request")
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	food, err := h.catalog.AddFood(req.Name, req.Price, models.FoodKind(req.Kind), req.Vegetarian)
	if err != nil {
		h.respondWithDomainError(w, err)
		return
	}

	h.broadcast(websocket.CatalogUpdated, food)
	h.respondWithJSON(w, http.StatusCreated, food)
}

func (h *Handler) CreateDrink(w http.ResponseWriter, r *http.Request) {
	var req createDrinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode drink request")
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	drink, err := h.catalog.AddDrink(req.Name, req.Price, models.DrinkSize(req.Size), req.HasAlcohol)
	if err != nil {
		h.respondWithDomainError(w, err)
		return
	}

	h.broadcast(websocket.CatalogUpdated, drink)
	h.respondWithJSON(w, http.StatusCreated, drink)
}

// CreateCombo resolves the requested item names against the catalog before
// inserting anything, so a bad item list leaves the catalog untouched.
func (h *Handler) CreateCombo(w http.ResponseWriter, r *http.Request) {
	var req createComboRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode combo request")
		h.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items := make([]models.Product, 0, len(req.Items))
	for _, name := range req.Items {
		product, ok := h.catalog.FindByName(name)
		if !ok {
			h.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Unknown combo item %q", name))
			return
		}
		items = append(items, product)
	}

	combo, err := h.catalog.AddCombo(req.Name, req.DiscountPercent)
	if err != nil {
		h.respondWithDomainError(w, err)
		return
	}
	for _, item := range items {
		combo.AddItem(item)
	}

	h.logger.WithFields(logrus.Fields{
		"name":       req.Name,
		"item_count": len(items),
	}).Info("Combo created via API")

	h.broadcast(websocket.CatalogUpdated, combo)
	h.respondWithJSON(w, http.StatusCreated, combo)
}

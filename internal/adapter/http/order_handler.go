package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/domain"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
)

type OrderHandler struct {
	service interfaces.CatalogService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.CatalogService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := RequestID(r.Context())

	var req domain.Order
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	// Валидация входных данных
	if validationErrors := validateCreateOrderRequest(req); len(validationErrors) > 0 {
		h.logger.Error("validation_failed", "Order validation failed", requestID, map[string]interface{}{
			"errors": validationErrors,
		}, fmt.Errorf("validation failed"))

		respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	order, err := h.service.PlaceOrder(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		h.logger.Error("order_creation_failed", "Failed to create order", requestID, map[string]interface{}{
			"order_id": req.ID,
		}, err)
		respondError(w, errorMessage(err, status), status, nil)
		return
	}

	h.logger.Info("order_created", fmt.Sprintf("Order %d created", order.ID), requestID, map[string]interface{}{
		"product_id": order.ProductID,
		"total":      order.Total.String(),
	})
	respondJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("order_list_failed", "Failed to list orders", RequestID(r.Context()), nil, err)
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func validateCreateOrderRequest(req domain.Order) []ValidationError {
	var errors []ValidationError

	if req.ID <= 0 {
		errors = append(errors, ValidationError{
			Field:   "id",
			Message: "order id must be positive",
		})
	}

	if req.ProductID <= 0 {
		errors = append(errors, ValidationError{
			Field:   "product_id",
			Message: "product id must be positive",
		})
	}

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: "product name is required",
		})
	}

	if req.Quantity < 1 {
		errors = append(errors, ValidationError{
			Field:   "quantity",
			Message: "quantity must be at least 1",
		})
	}

	if req.Price.IsNegative() {
		errors = append(errors, ValidationError{
			Field:   "price",
			Message: "price must not be negative",
		})
	}

	seen := make(map[int]bool, len(req.Extras))
	for i, extra := range req.Extras {
		prefix := fmt.Sprintf("extras[%d]", i)

		if seen[extra.ID] {
			errors = append(errors, ValidationError{
				Field:   prefix + ".id",
				Message: fmt.Sprintf("extra %d listed twice", extra.ID),
			})
		}
		seen[extra.ID] = true

		if extra.Quantity < 1 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".quantity",
				Message: "extra quantity must be at least 1",
			})
		}

		if extra.Value.IsNegative() {
			errors = append(errors, ValidationError{
				Field:   prefix + ".value",
				Message: "extra value must not be negative",
			})
		}
	}

	return errors
}

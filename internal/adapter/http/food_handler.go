package http

import (
	"net/http"

	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
)

type FoodHandler struct {
	service interfaces.CatalogService
	logger  logger.Logger
}

func NewFoodHandler(service interfaces.CatalogService, logger logger.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger,
	}
}

func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, "Invalid food id", http.StatusBadRequest, nil)
		return
	}

	item, err := h.service.GetFood(r.Context(), id)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("food_lookup_failed", "Failed to load food", RequestID(r.Context()), map[string]interface{}{
				"food_id": id,
			}, err)
		}
		respondError(w, errorMessage(err, status), status, nil)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

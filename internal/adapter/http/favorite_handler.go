package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/domain"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
)

type FavoriteHandler struct {
	service interfaces.CatalogService
	logger  logger.Logger
}

func NewFavoriteHandler(service interfaces.CatalogService, logger logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		logger:  logger,
	}
}

func (h *FavoriteHandler) GetFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, "Invalid favorite id", http.StatusBadRequest, nil)
		return
	}

	fav, err := h.service.GetFavorite(r.Context(), id)
	if err != nil {
		h.fail(w, r, "favorite_lookup_failed", err)
		return
	}

	respondJSON(w, http.StatusOK, fav)
}

func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var fav domain.Favorite
	if err := json.NewDecoder(r.Body).Decode(&fav); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	fav.Name = strings.TrimSpace(fav.Name)

	stored, err := h.service.AddFavorite(r.Context(), fav)
	if err != nil {
		h.fail(w, r, "favorite_add_failed", err)
		return
	}

	h.logger.Debug("favorite_added", "Favorite stored", RequestID(r.Context()), map[string]interface{}{
		"food_id": stored.ID,
	})
	respondJSON(w, http.StatusCreated, stored)
}

func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, "Invalid favorite id", http.StatusBadRequest, nil)
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), id); err != nil {
		h.fail(w, r, "favorite_remove_failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FavoriteHandler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(action, "Favorite request failed", RequestID(r.Context()), nil, err)
	}
	respondError(w, errorMessage(err, status), status, nil)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/tdejong/Trading-Journal-Backend/internal/api/request"
	"github.com/tdejong/Trading-Journal-Backend/internal/api/response"
	"github.com/tdejong/Trading-Journal-Backend/internal/apperrors"
	"github.com/tdejong/Trading-Journal-Backend/internal/service"
	"github.com/tdejong/Trading-Journal-Backend/internal/validation"
)

// StrategyHandler handles HTTP requests for strategy endpoints.
type StrategyHandler struct {
	strategyService *service.StrategyService
}

// NewStrategyHandler creates a new StrategyHandler with the provided service dependency.
func NewStrategyHandler(strategyService *service.StrategyService) *StrategyHandler {
	return &StrategyHandler{
		strategyService: strategyService,
	}
}

// AllStrategies handles GET requests to retrieve all strategies.
//
// Endpoint: GET /api/strategy
// Response: 200 OK with array of Strategy
// Error: 500 Internal Server Error if retrieval fails
func (h *StrategyHandler) AllStrategies(w http.ResponseWriter, _ *http.Request) {
	strategies, err := h.strategyService.GetStrategies()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveStrategies.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, strategies)
}

// GetStrategy handles GET requests to retrieve a single strategy by ID.
//
// Endpoint: GET /api/strategy/{id}
// Response: 200 OK with Strategy
// Error: 400 Bad Request if strategy ID is invalid (validated by middleware)
// Error: 404 Not Found if strategy not found
// Error: 500 Internal Server Error if retrieval fails
func (h *StrategyHandler) GetStrategy(w http.ResponseWriter, r *http.Request) {
	strategy, err := h.strategyService.GetStrategy(idParam(r))
	if err != nil {
		if errors.Is(err, apperrors.ErrStrategyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStrategyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveStrategy.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, strategy)
}

// CreateStrategy handles POST requests to create a new strategy.
//
// Endpoint: POST /api/strategy
// Request Body: CreateStrategyRequest (name, description, imageReferences)
// Response: 201 Created with Strategy
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *StrategyHandler) CreateStrategy(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateStrategyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateStrategy(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	strategy, err := h.strategyService.CreateStrategy(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create strategy", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, strategy)
}

// UpdateStrategy handles PUT requests to update an existing strategy.
//
// Endpoint: PUT /api/strategy/{id}
// Request Body: UpdateStrategyRequest (all fields optional)
// Response: 200 OK with updated Strategy
// Error: 400 Bad Request if strategy ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if strategy not found
// Error: 500 Internal Server Error if update fails
func (h *StrategyHandler) UpdateStrategy(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateStrategyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateStrategy(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	strategy, err := h.strategyService.UpdateStrategy(r.Context(), idParam(r), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStrategyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStrategyNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to update strategy", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, strategy)
}

// DeleteStrategy handles DELETE requests to remove a strategy.
// Trades referencing the strategy keep existing with the reference cleared.
//
// Endpoint: DELETE /api/strategy/{id}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if strategy ID is invalid (validated by middleware)
// Error: 404 Not Found if strategy not found
// Error: 500 Internal Server Error if deletion fails
func (h *StrategyHandler) DeleteStrategy(w http.ResponseWriter, r *http.Request) {
	err := h.strategyService.DeleteStrategy(r.Context(), idParam(r))
	if err != nil {
		if errors.Is(err, apperrors.ErrStrategyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStrategyNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete strategy", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

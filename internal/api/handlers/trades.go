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

// TradeHandler handles HTTP requests for trade endpoints.
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new TradeHandler with the provided service dependency.
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// AllTrades handles GET requests to retrieve all trades.
// Each trade carries its joined strategy name, status, and computed P&L
// (null while the trade is open).
//
// Endpoint: GET /api/trade
// Response: 200 OK with array of TradeResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) AllTrades(w http.ResponseWriter, _ *http.Request) {
	trades, err := h.tradeService.GetTrades()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// GetTrade handles GET requests to retrieve a single trade by ID.
//
// Endpoint: GET /api/trade/{id}
// Response: 200 OK with TradeResponse
// Error: 400 Bad Request if trade ID is invalid (validated by middleware)
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) GetTrade(w http.ResponseWriter, r *http.Request) {
	trade, err := h.tradeService.GetTrade(idParam(r))
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trade)
}

// CreateTrade handles POST requests to create a new trade.
//
// Endpoint: POST /api/trade
// Request Body: CreateTradeRequest
// Response: 201 Created with TradeResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if a referenced strategy does not exist
// Error: 500 Internal Server Error if creation fails
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.CreateTrade(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStrategyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStrategyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create trade", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, trade)
}

// UpdateTrade handles PUT requests to update an existing trade.
// Supplying a closePrice closes the trade and its P&L becomes available.
//
// Endpoint: PUT /api/trade/{id}
// Request Body: UpdateTradeRequest (all fields optional)
// Response: 200 OK with updated TradeResponse
// Error: 400 Bad Request if trade ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if trade or referenced strategy not found
// Error: 500 Internal Server Error if update fails
func (h *TradeHandler) UpdateTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.UpdateTrade(r.Context(), idParam(r), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrStrategyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStrategyNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to update trade", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trade)
}

// DeleteTrade handles DELETE requests to remove a trade.
//
// Endpoint: DELETE /api/trade/{id}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if trade ID is invalid (validated by middleware)
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if deletion fails
func (h *TradeHandler) DeleteTrade(w http.ResponseWriter, r *http.Request) {
	err := h.tradeService.DeleteTrade(r.Context(), idParam(r))
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete trade", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// PreviewResponse carries the result of a what-if P&L calculation.
// Profit is null when no figure can be computed (zero open price).
type PreviewResponse struct {
	Profit *float64 `json:"profit"`
}

// PreviewTrade handles POST requests for a what-if P&L calculation with a
// provisional close price. Nothing is persisted.
//
// Endpoint: POST /api/trade/preview
// Request Body: PreviewTradeRequest (openPrice, closePrice, direction, level, volume)
// Response: 200 OK with PreviewResponse
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *TradeHandler) PreviewTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.PreviewTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateTradePreview(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, PreviewResponse{
		Profit: h.tradeService.PreviewProfit(req),
	})
}

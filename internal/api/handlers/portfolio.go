package handlers

import (
	"net/http"
	"time"

	"github.com/tdejong/Trading-Journal-Backend/internal/api/response"
	"github.com/tdejong/Trading-Journal-Backend/internal/apperrors"
	"github.com/tdejong/Trading-Journal-Backend/internal/service"
)

// PortfolioHandler handles HTTP requests for the derived portfolio views:
// per-asset positions, the account summary, allocation chart data and the
// snapshot history.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	snapshotService  *service.SnapshotService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependencies.
func NewPortfolioHandler(portfolioService *service.PortfolioService, snapshotService *service.SnapshotService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		snapshotService:  snapshotService,
	}
}

// Positions handles GET requests for the per-asset position aggregates.
// Everything is recomputed from the full transaction ledger on each call.
//
// Endpoint: GET /api/portfolio/positions
// Response: 200 OK with array of AssetPosition
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Positions(w http.ResponseWriter, _ *http.Request) {
	positions, err := h.portfolioService.GetPositions()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetPositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, positions)
}

// Summary handles GET requests for the account-level roll-up.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with PortfolioSummary
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	summary, err := h.portfolioService.GetSummary()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetPortfolioSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Allocation handles GET requests for the pie-chart allocation slices.
//
// Endpoint: GET /api/portfolio/allocation
// Response: 200 OK with array of AllocationSlice
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Allocation(w http.ResponseWriter, _ *http.Request) {
	allocation, err := h.portfolioService.GetAllocation()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetAllocation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, allocation)
}

// History handles GET requests for the persisted daily summary snapshots.
// Accepts optional start_date and end_date query parameters (YYYY-MM-DD,
// inclusive).
//
// Endpoint: GET /api/portfolio/history?start_date=...&end_date=...
// Response: 200 OK with array of SummarySnapshot
// Error: 400 Bad Request if a date parameter is malformed or the range is inverted
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) History(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	for _, date := range []string{startDate, endDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid date parameter", err.Error())
			return
		}
	}
	if startDate != "" && endDate != "" && startDate > endDate {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), "start_date is after end_date")
		return
	}

	history, err := h.snapshotService.GetHistory(startDate, endDate)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummaryHistory.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	model "plate-auction/internal/models"
	"plate-auction/services/auction/helpers"
	"plate-auction/utils"

	"github.com/gin-gonic/gin"
)

var errMissingPrincipal = errors.New("no authenticated principal on request")

type BidServiceInterface interface {
	PlaceBid(ctx context.Context, plateID, userID int64, amount float64) (model.Bid, error)
	ReviseBid(ctx context.Context, bidID, userID int64, amount float64) (model.Bid, error)
	WithdrawBid(ctx context.Context, bidID, userID int64) error
	GetBid(ctx context.Context, bidID, userID int64) (model.Bid, error)
	ListUserBids(ctx context.Context, userID int64, skip, limit int) ([]model.Bid, error)
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidHandler handles POST /bids (non-staff only)
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	principal, ok := helpers.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errMissingPrincipal, "authentication required")
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), req.PlateID, principal.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"plate_id": req.PlateID,
			"user_id":  principal.UserID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":   bid.ID,
		"plate_id": bid.PlateID,
		"user_id":  bid.UserID,
		"amount":   bid.Amount,
	})
}

// ListUserBidsHandler handles GET /bids (non-staff only)
func (h *BidHandler) ListUserBidsHandler(c *gin.Context) {
	principal, ok := helpers.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errMissingPrincipal, "authentication required")
		return
	}

	bidList, err := h.service.ListUserBids(c.Request.Context(), principal.UserID,
		intQuery(c, "skip", 0), intQuery(c, "limit", 100))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListUserBidsHandler: error retrieving bids", map[string]any{
			"user_id": principal.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponses(bidList), "bids retrieved successfully")
	helpers.LogSuccess("ListUserBidsHandler", "bids retrieved successfully", map[string]any{
		"user_id": principal.UserID,
		"count":   len(bidList),
	})
}

// GetBidHandler handles GET /bids/:bid_id (owner only)
func (h *BidHandler) GetBidHandler(c *gin.Context) {
	principal, ok := helpers.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errMissingPrincipal, "authentication required")
		return
	}

	bidID, ok := pathID(c, "bid_id")
	if !ok {
		return
	}

	bid, err := h.service.GetBid(c.Request.Context(), bidID, principal.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{
			"bid_id":  bidID,
			"user_id": principal.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "bid retrieved successfully")
	helpers.LogSuccess("GetBidHandler", "bid retrieved successfully", map[string]any{
		"bid_id":  bid.ID,
		"user_id": principal.UserID,
	})
}

// ReviseBidHandler handles PUT /bids/:bid_id (owner only)
func (h *BidHandler) ReviseBidHandler(c *gin.Context) {
	principal, ok := helpers.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errMissingPrincipal, "authentication required")
		return
	}

	bidID, ok := pathID(c, "bid_id")
	if !ok {
		return
	}

	var req helpers.ReviseBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReviseBidHandler", err)
		return
	}

	bid, err := h.service.ReviseBid(c.Request.Context(), bidID, principal.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ReviseBidHandler: failed to revise bid", map[string]any{
			"bid_id":  bidID,
			"user_id": principal.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "bid revised successfully")
	helpers.LogSuccess("ReviseBidHandler", "bid revised successfully", map[string]any{
		"bid_id":  bid.ID,
		"user_id": principal.UserID,
		"amount":  bid.Amount,
	})
}

// WithdrawBidHandler handles DELETE /bids/:bid_id (owner only)
func (h *BidHandler) WithdrawBidHandler(c *gin.Context) {
	principal, ok := helpers.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errMissingPrincipal, "authentication required")
		return
	}

	bidID, ok := pathID(c, "bid_id")
	if !ok {
		return
	}

	if err := h.service.WithdrawBid(c.Request.Context(), bidID, principal.UserID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("WithdrawBidHandler: failed to withdraw bid", map[string]any{
			"bid_id":  bidID,
			"user_id": principal.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid withdrawn successfully")
	helpers.LogSuccess("WithdrawBidHandler", "bid withdrawn successfully", map[string]any{
		"bid_id":  bidID,
		"user_id": principal.UserID,
	})
}

func toBidResponse(b model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		ID:        b.ID,
		Amount:    b.Amount,
		UserID:    b.UserID,
		PlateID:   b.PlateID,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toBidResponses(bids []model.Bid) []helpers.BidResponse {
	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, toBidResponse(b))
	}
	return resp
}

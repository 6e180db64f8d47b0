package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	model "plate-auction/internal/models"
	plates "plate-auction/internal/plateService"
	"plate-auction/services/auction/helpers"
	"plate-auction/utils"

	"github.com/gin-gonic/gin"
)

type PlateServiceInterface interface {
	CreatePlate(ctx context.Context, plateNumber, description string, deadline time.Time, staffID int64) (model.Plate, error)
	UpdatePlate(ctx context.Context, plateID int64, upd plates.PlateUpdate) (model.Plate, error)
	DeletePlate(ctx context.Context, plateID int64) error
	ListPlates(ctx context.Context, q plates.ListQuery) ([]plates.PlateWithHighestBid, error)
	GetPlateDetail(ctx context.Context, plateID int64) (plates.PlateDetail, error)
}

type PlateHandler struct {
	service PlateServiceInterface
}

func NewPlateHandler(service PlateServiceInterface) *PlateHandler {
	return &PlateHandler{service: service}
}

// ListPlatesHandler handles GET /plates
func (h *PlateHandler) ListPlatesHandler(c *gin.Context) {
	q := plates.ListQuery{
		Skip:                intQuery(c, "skip", 0),
		Limit:               intQuery(c, "limit", 100),
		Ordering:            c.Query("ordering"),
		PlateNumberContains: c.Query("plate_number__contains"),
	}

	list, err := h.service.ListPlates(c.Request.Context(), q)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListPlatesHandler: error listing plates", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.PlateResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, toPlateResponse(p.Plate, p.HighestBid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "plates retrieved successfully")
	helpers.LogSuccess("ListPlatesHandler", "plates retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// GetPlateDetailHandler handles GET /plates/:plate_id
func (h *PlateHandler) GetPlateDetailHandler(c *gin.Context) {
	plateID, ok := pathID(c, "plate_id")
	if !ok {
		return
	}

	detail, err := h.service.GetPlateDetail(c.Request.Context(), plateID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPlateDetailHandler: error retrieving plate", map[string]any{"plate_id": plateID, "error": err.Error()})
		return
	}

	resp := helpers.PlateDetailResponse{
		PlateResponse: toPlateResponse(detail.Plate, detail.HighestBid),
		Bids:          toBidResponses(detail.Bids),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "plate retrieved successfully")
	helpers.LogSuccess("GetPlateDetailHandler", "plate retrieved successfully", map[string]any{
		"plate_id":  detail.ID,
		"bid_count": len(detail.Bids),
	})
}

// CreatePlateHandler handles POST /plates (staff only)
func (h *PlateHandler) CreatePlateHandler(c *gin.Context) {
	principal, ok := helpers.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errMissingPrincipal, "authentication required")
		return
	}

	var req helpers.CreatePlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreatePlateHandler", err)
		return
	}

	plate, err := h.service.CreatePlate(c.Request.Context(), req.PlateNumber, req.Description, req.Deadline, principal.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreatePlateHandler: failed to create plate", map[string]any{
			"plate_number": req.PlateNumber,
			"staff_id":     principal.UserID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toPlateResponse(plate, nil), "plate created successfully")
	helpers.LogSuccess("CreatePlateHandler", "plate created successfully", map[string]any{
		"plate_id":     plate.ID,
		"plate_number": plate.PlateNumber,
		"staff_id":     principal.UserID,
	})
}

// UpdatePlateHandler handles PUT /plates/:plate_id (staff only)
func (h *PlateHandler) UpdatePlateHandler(c *gin.Context) {
	plateID, ok := pathID(c, "plate_id")
	if !ok {
		return
	}

	var req helpers.UpdatePlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePlateHandler", err)
		return
	}

	plate, err := h.service.UpdatePlate(c.Request.Context(), plateID, plates.PlateUpdate{
		PlateNumber: req.PlateNumber,
		Description: req.Description,
		Deadline:    req.Deadline,
		IsActive:    req.IsActive,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdatePlateHandler: failed to update plate", map[string]any{
			"plate_id": plateID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toPlateResponse(plate, nil), "plate updated successfully")
	helpers.LogSuccess("UpdatePlateHandler", "plate updated successfully", map[string]any{
		"plate_id": plate.ID,
	})
}

// DeletePlateHandler handles DELETE /plates/:plate_id (staff only)
func (h *PlateHandler) DeletePlateHandler(c *gin.Context) {
	plateID, ok := pathID(c, "plate_id")
	if !ok {
		return
	}

	if err := h.service.DeletePlate(c.Request.Context(), plateID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeletePlateHandler: failed to delete plate", map[string]any{
			"plate_id": plateID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "plate deleted successfully")
	helpers.LogSuccess("DeletePlateHandler", "plate deleted successfully", map[string]any{
		"plate_id": plateID,
	})
}

func toPlateResponse(p model.Plate, highest *float64) helpers.PlateResponse {
	return helpers.PlateResponse{
		ID:          p.ID,
		PlateNumber: p.PlateNumber,
		Description: p.Description,
		Deadline:    p.Deadline.UTC().Format(time.RFC3339),
		IsActive:    p.IsActive,
		CreatedByID: p.CreatedByID,
		HighestBid:  highest,
	}
}

// pathID parses a positive integer path parameter, replying 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid %s", name), "invalid "+name)
		return 0, false
	}
	return id, true
}

// intQuery parses an integer query parameter with a default.
func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/registrotec/equipos-api/internal/api/metrics"
	"github.com/registrotec/equipos-api/internal/api/middleware"
	"github.com/registrotec/equipos-api/internal/core/ports"
)

// EquipmentHandler serves the client and admin equipment routes.
type EquipmentHandler struct {
	equipmentService ports.EquipmentService
}

func NewEquipmentHandler(equipmentService ports.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService}
}

// Create registers new equipment for the calling client. The owner is the
// verified caller, never a payload field, and the status always starts
// pendiente.
//
// @Summary      Register new equipment
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEquipmentRequest  true  "Equipment details"
// @Success      201   {object}  createEquipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/equipos [post]
func (h *EquipmentHandler) Create(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}

	var req createEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.equipmentService.Register(c.Request().Context(), identity, ports.RegisterEquipmentInput{
		Name:            req.Name,
		Description:     req.Description,
		SerialNumber:    req.SerialNumber,
		Location:        req.Location,
		ManufactureYear: req.ManufactureYear,
	})
	if err != nil {
		return err
	}

	metrics.EquipmentCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createEquipmentResponse{
		ID:      id,
		Message: "equipment registered, pending validation",
	})
}

// ListByOwner returns a client's own equipment. The path id must match the
// caller.
//
// @Summary      List a client's equipment
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client id"
// @Success      200  {array}   domain.Equipment
// @Failure      403  {object}  errorResponse
// @Router       /api/equipos/cliente/{id} [get]
func (h *EquipmentHandler) ListByOwner(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}
	ownerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.equipmentService.ListByOwner(c.Request().Context(), identity, ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateDescription edits the description of equipment owned by the caller.
//
// @Summary      Update equipment description
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Equipment id"
// @Param        body  body      updateDescriptionRequest  true  "New description"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/equipos/{id} [put]
func (h *EquipmentHandler) UpdateDescription(c echo.Context) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.equipmentService.UpdateDescription(c.Request().Context(), identity, id, req.Description); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "description updated"})
}

// ListAll returns every equipment joined with its owner. Admin only.
//
// @Summary      List all equipment
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Equipment
// @Failure      403  {object}  errorResponse
// @Router       /api/equipos/admin [get]
func (h *EquipmentHandler) ListAll(c echo.Context) error {
	items, err := h.equipmentService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateStatus sets the validation state of an equipment. Admin only; the
// value is checked against the fixed enum before any write.
//
// @Summary      Update equipment status
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Equipment id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/equipos/admin/{id} [put]
func (h *EquipmentHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.equipmentService.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return err
	}

	metrics.EquipmentStatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "status updated"})
}

// Delete removes an equipment record. Admin only.
//
// @Summary      Delete equipment
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Equipment id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/equipos/admin/{id} [delete]
func (h *EquipmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.equipmentService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "equipment deleted"})
}

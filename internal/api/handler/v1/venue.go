package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/request"
	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/response"
	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/service"
)

type VenueService interface {
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	Get(ctx context.Context, id uint) (domain.Venue, []domain.Event, error)
	Update(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter domain.VenueFilter, page domain.PageQuery) ([]domain.Venue, int64, error)
}

type VenueHandler struct {
	svc VenueService
}

func NewVenueHandler(svc VenueService) *VenueHandler {
	return &VenueHandler{
		svc: svc,
	}
}

// HandleListVenues godoc
// @Summary      List venues
// @Tags         venues
// @Produce      json
// @Param        name     query      string false "name substring"
// @Param        status   query      string false "venue status"
// @Success      200      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /venues [get]
func (h *VenueHandler) HandleListVenues(ctx *gin.Context) {
	filter := domain.VenueFilter{
		Name:   ctx.Query("name"),
		Status: ctx.Query("status"),
	}
	page := request.ParsePageQuery(ctx)

	venues, total, err := h.svc.List(ctx.Request.Context(), filter, page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListVenues -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "venues listed", response.Paged{
		List:        venues,
		Total:       total,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
	})
}

// HandleGetVenue godoc
// @Summary      Get a venue with its events
// @Tags         venues
// @Produce      json
// @Param        venueID  path       int true "venue ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /venues/{venueID} [get]
func (h *VenueHandler) HandleGetVenue(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "venueID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	venue, events, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetVenue -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "venue found", gin.H{
		"venue":  venue,
		"events": events,
	})
}

// HandleCreateVenue godoc
// @Summary      Create a venue
// @Tags         venues
// @Produce      json
// @Param        request   body      request.CreateVenueRequest true "request body"
// @Success      201      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /venues [post]
func (h *VenueHandler) HandleCreateVenue(ctx *gin.Context) {
	var req request.CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	venue, err := h.svc.Create(ctx.Request.Context(), venueFromRequest(req))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateVenue -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Created(ctx, "venue created", venue)
}

// HandleUpdateVenue godoc
// @Summary      Update a venue
// @Tags         venues
// @Produce      json
// @Param        venueID  path       int true "venue ID"
// @Param        request   body      request.UpdateVenueRequest true "request body"
// @Success      200      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /venues/{venueID} [put]
func (h *VenueHandler) HandleUpdateVenue(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "venueID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	venue := venueFromRequest(req.CreateVenueRequest)
	venue.ID = id

	updated, err := h.svc.Update(ctx.Request.Context(), venue)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateVenue -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "venue updated", updated)
}

// HandleDeleteVenue godoc
// @Summary      Delete a venue
// @Tags         venues
// @Produce      json
// @Param        venueID  path       int true "venue ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /venues/{venueID} [delete]
func (h *VenueHandler) HandleDeleteVenue(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "venueID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteVenue -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "venue deleted", nil)
}

func venueFromRequest(req request.CreateVenueRequest) domain.Venue {
	return domain.Venue{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Cover:       req.Cover,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		Status:      req.Status,
	}
}

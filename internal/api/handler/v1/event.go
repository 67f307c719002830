package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/request"
	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/response"
	"github.com/sportsmate/sportsmate-api/internal/api/middleware"
	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/service"
)

type EventService interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Get(ctx context.Context, id uint) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter domain.EventFilter, page domain.PageQuery) ([]domain.Event, int64, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        title       query   string false "title substring"
// @Param        venueId     query   int    false "venue ID"
// @Param        difficulty  query   int    false "difficulty 0-5"
// @Param        type        query   string false "event type"
// @Param        feeType     query   string false "fee type"
// @Success      200      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	filter := domain.EventFilter{
		Title:   ctx.Query("title"),
		Type:    ctx.Query("type"),
		FeeType: ctx.Query("feeType"),
	}
	if v, err := strconv.ParseUint(ctx.Query("venueId"), 10, 64); err == nil {
		filter.VenueID = uint(v)
	}
	if v, err := strconv.Atoi(ctx.Query("difficulty")); err == nil {
		filter.Difficulty = &v
	}
	page := request.ParsePageQuery(ctx)

	events, total, err := h.svc.List(ctx.Request.Context(), filter, page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "events listed", response.Paged{
		List:        events,
		Total:       total,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
	})
}

// HandleGetEvent godoc
// @Summary      Get an event by ID
// @Tags         events
// @Produce      json
// @Param        eventID  path       int true "event ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "event found", event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Produce      json
// @Param        request   body      request.CreateEventRequest true "request body"
// @Success      201      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event := eventFromRequest(req)
	event.CreatorID = middleware.CurrentUserID(ctx)

	created, err := h.svc.Create(ctx.Request.Context(), event)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Created(ctx, "event created", created)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Produce      json
// @Param        eventID  path       int true "event ID"
// @Param        request   body      request.UpdateEventRequest true "request body"
// @Success      200      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /events/{eventID} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event := eventFromRequest(req.CreateEventRequest)
	event.ID = id

	updated, err := h.svc.Update(ctx.Request.Context(), event)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) || errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "event updated", updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event and its groups
// @Tags         events
// @Produce      json
// @Param        eventID  path       int true "event ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "event deleted", nil)
}

func eventFromRequest(req request.CreateEventRequest) domain.Event {
	return domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Cover:       req.Cover,
		Type:        req.Type,
		Difficulty:  req.Difficulty,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		RegStart:    req.RegistrationStart,
		RegEnd:      req.RegistrationEnd,
		Capacity:    req.Capacity,
		FeeType:     req.FeeType,
		FeeAmount:   req.FeeAmount,
		Status:      req.Status,
		VenueID:     req.VenueID,
	}
}

package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/request"
	"github.com/sportsmate/sportsmate-api/internal/api/handler/v1/response"
	"github.com/sportsmate/sportsmate-api/internal/api/middleware"
	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/service"
)

type CommentService interface {
	Create(ctx context.Context, comment domain.EventComment) (domain.EventComment, error)
	ListByEvent(ctx context.Context, eventID uint, page domain.PageQuery) ([]domain.EventComment, int64, error)
	Delete(ctx context.Context, id uint, requester domain.User) error
}

type CommentHandler struct {
	svc CommentService
}

func NewCommentHandler(svc CommentService) *CommentHandler {
	return &CommentHandler{
		svc: svc,
	}
}

// HandleCreateComment godoc
// @Summary      Comment on an event
// @Tags         comments
// @Produce      json
// @Param        eventID  path       int true "event ID"
// @Param        request   body      request.CreateCommentRequest true "request body"
// @Success      201      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /events/{eventID}/comments [post]
func (h *CommentHandler) HandleCreateComment(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	comment, err := h.svc.Create(ctx.Request.Context(), domain.EventComment{
		Content: req.Content,
		EventID: eventID,
		UserID:  middleware.CurrentUserID(ctx),
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateComment -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Created(ctx, "comment created", comment)
}

// HandleListComments godoc
// @Summary      List an event's comments
// @Tags         comments
// @Produce      json
// @Param        eventID  path       int true "event ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /events/{eventID}/comments [get]
func (h *CommentHandler) HandleListComments(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	page := request.ParsePageQuery(ctx)

	comments, total, err := h.svc.ListByEvent(ctx.Request.Context(), eventID, page)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleListComments -> h.svc.ListByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "comments listed", response.Paged{
		List:        comments,
		Total:       total,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
	})
}

// HandleDeleteComment godoc
// @Summary      Delete a comment
// @Description  Only the comment's author or an admin may delete it.
// @Tags         comments
// @Produce      json
// @Param        eventID    path     int true "event ID"
// @Param        commentID  path     int true "comment ID"
// @Success      200      {object}   response.Envelope
// @Failure      403      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /events/{eventID}/comments/{commentID} [delete]
func (h *CommentHandler) HandleDeleteComment(ctx *gin.Context) {
	commentID, err := parseIDParam(ctx, "commentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	requester := domain.User{
		ID:   middleware.CurrentUserID(ctx),
		Role: middleware.CurrentUserRole(ctx),
	}

	if err := h.svc.Delete(ctx.Request.Context(), commentID, requester); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrNotCommentAuthor):
			response.RenderErr(ctx, response.ErrForbidden(err))
		default:
			err = fmt.Errorf("v1.HandleDeleteComment -> h.svc.Delete -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	response.Success(ctx, "comment deleted", nil)
}

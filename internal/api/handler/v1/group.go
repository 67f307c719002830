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

type GroupService interface {
	Create(ctx context.Context, group domain.Group) (domain.Group, error)
	Get(ctx context.Context, id uint) (domain.Group, []domain.UserSummary, error)
	Toggle(ctx context.Context, groupID, userID uint) (domain.MembershipChange, error)
	Update(ctx context.Context, group domain.Group) (domain.Group, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter domain.GroupFilter, page domain.PageQuery) ([]domain.Group, int64, error)
	ListMembers(ctx context.Context, groupID uint, page domain.PageQuery) ([]domain.UserSummary, int64, error)
	AddMember(ctx context.Context, groupID, userID uint) (domain.GroupMember, error)
	RemoveMember(ctx context.Context, groupID, userID uint) error
}

type GroupHandler struct {
	svc GroupService
}

func NewGroupHandler(svc GroupService) *GroupHandler {
	return &GroupHandler{
		svc: svc,
	}
}

// HandleCreateGroup godoc
// @Summary      Create a group under an event
// @Tags         groups
// @Produce      json
// @Param        request   body      request.CreateGroupRequest true "request body"
// @Success      201      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /groups [post]
func (h *GroupHandler) HandleCreateGroup(ctx *gin.Context) {
	var req request.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	group, err := h.svc.Create(ctx.Request.Context(), domain.Group{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Status:      req.Status,
		EventID:     req.EventID,
		CreatorID:   middleware.CurrentUserID(ctx),
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateGroup -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Created(ctx, "group created", group)
}

// HandleGetGroup godoc
// @Summary      Get a group with its members
// @Tags         groups
// @Produce      json
// @Param        groupID  path       int true "group ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /groups/{groupID} [get]
func (h *GroupHandler) HandleGetGroup(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	group, members, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetGroup -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "group found", gin.H{
		"group":   group,
		"members": members,
	})
}

// HandleToggleMembership godoc
// @Summary      Join, leave or switch to a group
// @Description  Joining while a member of a sibling group switches; joining
// @Description  the same group again leaves it.
// @Tags         groups
// @Produce      json
// @Param        groupID  path       int true "group ID"
// @Success      200      {object}   response.Envelope "left the group"
// @Success      201      {object}   response.Envelope "joined or switched"
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /groups/{groupID}/join [post]
func (h *GroupHandler) HandleToggleMembership(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	change, err := h.svc.Toggle(ctx.Request.Context(), id, middleware.CurrentUserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) ||
			errors.Is(err, service.ErrUserNotFound) ||
			errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleToggleMembership -> h.svc.Toggle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	// Leaving answers 200; joining and switching create a membership, 201.
	if change.Action == domain.MembershipLeft {
		response.Success(ctx, membershipMessage(change), change)

		return
	}

	response.Created(ctx, membershipMessage(change), change)
}

// HandleListGroups godoc
// @Summary      List groups
// @Tags         admin
// @Produce      json
// @Param        name     query      string false "name substring"
// @Success      200      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/groups [get]
func (h *GroupHandler) HandleListGroups(ctx *gin.Context) {
	filter := domain.GroupFilter{
		Name: ctx.Query("name"),
	}
	page := request.ParsePageQuery(ctx)

	groups, total, err := h.svc.List(ctx.Request.Context(), filter, page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListGroups -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "groups listed", response.Paged{
		List:        groups,
		Total:       total,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
	})
}

// HandleUpdateGroup godoc
// @Summary      Update a group
// @Tags         admin
// @Produce      json
// @Param        groupID  path       int true "group ID"
// @Param        request   body      request.UpdateGroupRequest true "request body"
// @Success      200      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/groups/{groupID} [put]
func (h *GroupHandler) HandleUpdateGroup(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), domain.Group{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateGroup -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "group updated", updated)
}

// HandleDeleteGroup godoc
// @Summary      Delete a group and its members
// @Tags         admin
// @Produce      json
// @Param        groupID  path       int true "group ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/groups/{groupID} [delete]
func (h *GroupHandler) HandleDeleteGroup(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteGroup -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "group deleted", nil)
}

// HandleListMembers godoc
// @Summary      List a group's members
// @Tags         admin
// @Produce      json
// @Param        groupID  path       int true "group ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/groups/{groupID}/members [get]
func (h *GroupHandler) HandleListMembers(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	page := request.ParsePageQuery(ctx)

	members, total, err := h.svc.ListMembers(ctx.Request.Context(), id, page)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleListMembers -> h.svc.ListMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "members listed", response.Paged{
		List:        members,
		Total:       total,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
	})
}

// HandleAddMember godoc
// @Summary      Add a user to a group
// @Tags         admin
// @Produce      json
// @Param        groupID  path       int true "group ID"
// @Param        request   body      request.AddMemberRequest true "request body"
// @Success      201      {object}   response.Envelope
// @Failure      400      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      409      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/groups/{groupID}/members [post]
func (h *GroupHandler) HandleAddMember(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.AddMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	member, err := h.svc.AddMember(ctx.Request.Context(), id, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound) || errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrMemberExists):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleAddMember -> h.svc.AddMember -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	response.Created(ctx, "member added", member)
}

// HandleRemoveMember godoc
// @Summary      Remove a user from a group
// @Tags         admin
// @Produce      json
// @Param        groupID  path       int true "group ID"
// @Param        userID   path       int true "user ID"
// @Success      200      {object}   response.Envelope
// @Failure      404      {object}   response.Envelope
// @Failure      500      {object}   response.Envelope
// @Router       /admin/groups/{groupID}/members/{userID} [delete]
func (h *GroupHandler) HandleRemoveMember(ctx *gin.Context) {
	groupID, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.RemoveMember(ctx.Request.Context(), groupID, userID); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) || errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleRemoveMember -> h.svc.RemoveMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.Success(ctx, "member removed", nil)
}

func membershipMessage(change domain.MembershipChange) string {
	switch change.Action {
	case domain.MembershipLeft:
		return fmt.Sprintf("left group %q", change.GroupName)
	case domain.MembershipSwitched:
		return fmt.Sprintf("switched from group %q to group %q", change.FromGroupName, change.GroupName)
	default:
		return fmt.Sprintf("joined group %q", change.GroupName)
	}
}

package repository

import (
	"context"
	"fmt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository/dao"
)

var (
	ErrGroupNotFound  = dao.ErrGroupNotFound
	ErrMemberNotFound = dao.ErrMemberNotFound
	ErrMemberExists   = dao.ErrMemberExists
)

type GroupDAO interface {
	Insert(ctx context.Context, group dao.Group) (dao.Group, error)
	FindByID(ctx context.Context, id uint) (dao.Group, error)
	Update(ctx context.Context, group dao.Group) (dao.Group, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query dao.GroupListQuery) ([]dao.Group, int64, error)
	FindMembers(ctx context.Context, groupID uint, offset, limit int) ([]dao.GroupMember, int64, error)
	FindMember(ctx context.Context, groupID, userID uint) (dao.GroupMember, error)
	FindMemberInEvent(ctx context.Context, eventID, userID uint) (dao.GroupMember, error)
	InsertMemberCounted(ctx context.Context, member dao.GroupMember, eventID uint) error
	DeleteMemberCounted(ctx context.Context, memberID, eventID uint) error
	MoveMember(ctx context.Context, memberID, toGroupID, userID uint) error
	InsertMember(ctx context.Context, member dao.GroupMember) (dao.GroupMember, error)
	DeleteMember(ctx context.Context, groupID, userID uint) error
}

type GroupRepository struct {
	dao GroupDAO
}

func NewGroupRepository(dao GroupDAO) *GroupRepository {
	return &GroupRepository{
		dao: dao,
	}
}

// Create inserts the group and adds its capacity to the parent event
// atomically. Returns ErrEventNotFound when the event id does not resolve.
func (r *GroupRepository) Create(ctx context.Context, group domain.Group) (domain.Group, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(group))
	if err != nil {
		return domain.Group{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint) (domain.Group, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GroupRepository) Update(ctx context.Context, group domain.Group) (domain.Group, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(group))
	if err != nil {
		return domain.Group{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *GroupRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *GroupRepository) List(ctx context.Context, filter domain.GroupFilter, page domain.PageQuery) ([]domain.Group, int64, error) {
	found, total, err := r.dao.List(ctx, dao.GroupListQuery{
		Name:   filter.Name,
		Offset: page.Offset(),
		Limit:  page.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	groups := make([]domain.Group, 0, len(found))
	for _, g := range found {
		groups = append(groups, r.daoToDomain(g))
	}

	return groups, total, nil
}

// FindMembers returns member user summaries. A non-positive page size returns
// all members (the group detail view).
func (r *GroupRepository) FindMembers(ctx context.Context, groupID uint, page domain.PageQuery) ([]domain.UserSummary, int64, error) {
	found, total, err := r.dao.FindMembers(ctx, groupID, page.Offset(), page.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindMembers -> %w", err)
	}

	members := make([]domain.UserSummary, 0, len(found))
	for _, m := range found {
		if s := userSummary(m.User); s != nil {
			members = append(members, *s)
		}
	}

	return members, total, nil
}

func (r *GroupRepository) FindMember(ctx context.Context, groupID, userID uint) (domain.GroupMember, error) {
	found, err := r.dao.FindMember(ctx, groupID, userID)
	if err != nil {
		return domain.GroupMember{}, fmt.Errorf("r.dao.FindMember -> %w", err)
	}

	return memberDAOToDomain(found), nil
}

func (r *GroupRepository) FindMemberInEvent(ctx context.Context, eventID, userID uint) (domain.GroupMember, error) {
	found, err := r.dao.FindMemberInEvent(ctx, eventID, userID)
	if err != nil {
		return domain.GroupMember{}, fmt.Errorf("r.dao.FindMemberInEvent -> %w", err)
	}

	return memberDAOToDomain(found), nil
}

func (r *GroupRepository) AddMemberCounted(ctx context.Context, groupID, userID, eventID uint) error {
	member := dao.GroupMember{GroupID: groupID, UserID: userID}
	if err := r.dao.InsertMemberCounted(ctx, member, eventID); err != nil {
		return fmt.Errorf("r.dao.InsertMemberCounted -> %w", err)
	}

	return nil
}

func (r *GroupRepository) RemoveMemberCounted(ctx context.Context, memberID, eventID uint) error {
	if err := r.dao.DeleteMemberCounted(ctx, memberID, eventID); err != nil {
		return fmt.Errorf("r.dao.DeleteMemberCounted -> %w", err)
	}

	return nil
}

func (r *GroupRepository) MoveMember(ctx context.Context, memberID, toGroupID, userID uint) error {
	if err := r.dao.MoveMember(ctx, memberID, toGroupID, userID); err != nil {
		return fmt.Errorf("r.dao.MoveMember -> %w", err)
	}

	return nil
}

func (r *GroupRepository) AddMember(ctx context.Context, groupID, userID uint) (domain.GroupMember, error) {
	created, err := r.dao.InsertMember(ctx, dao.GroupMember{GroupID: groupID, UserID: userID})
	if err != nil {
		return domain.GroupMember{}, fmt.Errorf("r.dao.InsertMember -> %w", err)
	}

	return memberDAOToDomain(created), nil
}

func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, userID uint) error {
	if err := r.dao.DeleteMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("r.dao.DeleteMember -> %w", err)
	}

	return nil
}

func (r *GroupRepository) domainToDAO(g domain.Group) dao.Group {
	return dao.Group{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Capacity:    g.Capacity,
		Status:      g.Status,
		EventID:     g.EventID,
		CreatorID:   g.CreatorID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (r *GroupRepository) daoToDomain(g dao.Group) domain.Group {
	return domain.Group{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Capacity:    g.Capacity,
		Status:      g.Status,
		EventID:     g.EventID,
		CreatorID:   g.CreatorID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
		Creator:     userSummary(g.Creator),
	}
}

func memberDAOToDomain(m dao.GroupMember) domain.GroupMember {
	return domain.GroupMember{
		ID:       m.ID,
		GroupID:  m.GroupID,
		UserID:   m.UserID,
		JoinedAt: m.JoinedAt,
	}
}

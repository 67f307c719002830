package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository"
)

var (
	ErrGroupNotFound  = repository.ErrGroupNotFound
	ErrMemberNotFound = repository.ErrMemberNotFound
	ErrMemberExists   = repository.ErrMemberExists
)

type GroupRepository interface {
	Create(ctx context.Context, group domain.Group) (domain.Group, error)
	FindByID(ctx context.Context, id uint) (domain.Group, error)
	Update(ctx context.Context, group domain.Group) (domain.Group, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter domain.GroupFilter, page domain.PageQuery) ([]domain.Group, int64, error)
	FindMembers(ctx context.Context, groupID uint, page domain.PageQuery) ([]domain.UserSummary, int64, error)
	FindMember(ctx context.Context, groupID, userID uint) (domain.GroupMember, error)
	FindMemberInEvent(ctx context.Context, eventID, userID uint) (domain.GroupMember, error)
	AddMemberCounted(ctx context.Context, groupID, userID, eventID uint) error
	RemoveMemberCounted(ctx context.Context, memberID, eventID uint) error
	MoveMember(ctx context.Context, memberID, toGroupID, userID uint) error
	AddMember(ctx context.Context, groupID, userID uint) (domain.GroupMember, error)
	RemoveMember(ctx context.Context, groupID, userID uint) error
}

type GroupUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type GroupEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

// GroupService owns group CRUD and the membership engine: one membership per
// user per event, toggle join/leave semantics, and the registered-count
// bookkeeping on the parent event.
type GroupService struct {
	repo      GroupRepository
	userRepo  GroupUserRepository
	eventRepo GroupEventRepository
}

func NewGroupService(repo GroupRepository, userRepo GroupUserRepository, eventRepo GroupEventRepository) *GroupService {
	return &GroupService{
		repo:      repo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
	}
}

// Create inserts the group under an existing event and adds the group's
// capacity to the event's capacity. The event's capacity is additive once
// groups exist; it is not independently settable or re-validated.
func (s *GroupService) Create(ctx context.Context, group domain.Group) (domain.Group, error) {
	if group.Capacity == 0 {
		group.Capacity = domain.GroupDefaultCapacity
	}
	if group.Status == "" {
		group.Status = domain.GroupStatusPublic
	}

	created, err := s.repo.Create(ctx, group)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Get returns the group with its member summaries.
func (s *GroupService) Get(ctx context.Context, id uint) (domain.Group, []domain.UserSummary, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	members, _, err := s.repo.FindMembers(ctx, id, domain.PageQuery{})
	if err != nil {
		return domain.Group{}, nil, fmt.Errorf("s.repo.FindMembers -> %w", err)
	}

	return group, members, nil
}

// Toggle is the membership state transition. Per user and event the states
// are "not registered" and "member of exactly one group"; this call moves
// between them:
//
//   - already a member of this group: leave, registered count -1
//   - member of another group of the same event: switch, count unchanged
//   - not registered anywhere in the event: join, registered count +1
//
// Calling it twice in a row returns the user to not-registered. Capacity is
// not checked against the current member count; a full group still accepts
// joins.
func (s *GroupService) Toggle(ctx context.Context, groupID, userID uint) (domain.MembershipChange, error) {
	group, err := s.repo.FindByID(ctx, groupID)
	if err != nil {
		return domain.MembershipChange{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if _, err = s.userRepo.FindByID(ctx, userID); err != nil {
		return domain.MembershipChange{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	event, err := s.eventRepo.FindByID(ctx, group.EventID)
	if err != nil {
		return domain.MembershipChange{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	member, err := s.repo.FindMember(ctx, groupID, userID)
	switch {
	case err == nil:
		// Already in this group, so the toggle means leave.
		if err = s.repo.RemoveMemberCounted(ctx, member.ID, event.ID); err != nil {
			return domain.MembershipChange{}, fmt.Errorf("s.repo.RemoveMemberCounted -> %w", err)
		}

		return domain.MembershipChange{
			Action:    domain.MembershipLeft,
			GroupName: group.Name,
		}, nil

	case !errors.Is(err, repository.ErrMemberNotFound):
		return domain.MembershipChange{}, fmt.Errorf("s.repo.FindMember -> %w", err)
	}

	other, err := s.repo.FindMemberInEvent(ctx, event.ID, userID)
	switch {
	case err == nil:
		// Member of a sibling group: one leave plus one join, count unchanged.
		fromGroup, err := s.repo.FindByID(ctx, other.GroupID)
		if err != nil {
			return domain.MembershipChange{}, fmt.Errorf("s.repo.FindByID -> %w", err)
		}

		if err = s.repo.MoveMember(ctx, other.ID, groupID, userID); err != nil {
			return domain.MembershipChange{}, fmt.Errorf("s.repo.MoveMember -> %w", err)
		}

		return domain.MembershipChange{
			Action:        domain.MembershipSwitched,
			GroupName:     group.Name,
			FromGroupName: fromGroup.Name,
		}, nil

	case !errors.Is(err, repository.ErrMemberNotFound):
		return domain.MembershipChange{}, fmt.Errorf("s.repo.FindMemberInEvent -> %w", err)
	}

	if err = s.repo.AddMemberCounted(ctx, groupID, userID, event.ID); err != nil {
		return domain.MembershipChange{}, fmt.Errorf("s.repo.AddMemberCounted -> %w", err)
	}

	return domain.MembershipChange{
		Action:    domain.MembershipJoined,
		GroupName: group.Name,
	}, nil
}

func (s *GroupService) Update(ctx context.Context, group domain.Group) (domain.Group, error) {
	existing, err := s.repo.FindByID(ctx, group.ID)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	existing.Name = group.Name
	existing.Description = group.Description
	existing.Status = group.Status
	existing.Creator = nil

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *GroupService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *GroupService) List(ctx context.Context, filter domain.GroupFilter, page domain.PageQuery) ([]domain.Group, int64, error) {
	groups, total, err := s.repo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.List -> %w", err)
	}

	return groups, total, nil
}

func (s *GroupService) ListMembers(ctx context.Context, groupID uint, page domain.PageQuery) ([]domain.UserSummary, int64, error) {
	if _, err := s.repo.FindByID(ctx, groupID); err != nil {
		return nil, 0, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	members, total, err := s.repo.FindMembers(ctx, groupID, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.FindMembers -> %w", err)
	}

	return members, total, nil
}

// AddMember is the admin path: explicit, no exclusivity search across the
// event's sibling groups, no registered-count bookkeeping.
func (s *GroupService) AddMember(ctx context.Context, groupID, userID uint) (domain.GroupMember, error) {
	if _, err := s.repo.FindByID(ctx, groupID); err != nil {
		return domain.GroupMember{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return domain.GroupMember{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	member, err := s.repo.AddMember(ctx, groupID, userID)
	if err != nil {
		return domain.GroupMember{}, fmt.Errorf("s.repo.AddMember -> %w", err)
	}

	return member, nil
}

// RemoveMember is the admin path: explicit removal by pair.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, userID uint) error {
	if err := s.repo.RemoveMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("s.repo.RemoveMember -> %w", err)
	}

	return nil
}

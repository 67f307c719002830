package service

import (
	"context"
	"strings"

	"github.com/sportsmate/sportsmate-api/internal/domain"
	"github.com/sportsmate/sportsmate-api/internal/repository"
)

// In-memory stands-in for the repositories, so the services can be exercised
// without a database.

type fakeUserStore struct {
	users  map[uint]domain.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:  map[uint]domain.User{},
		nextID: 1,
	}
}

func (f *fakeUserStore) Create(_ context.Context, user domain.User) (domain.User, error) {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return domain.User{}, repository.ErrUsernameExists
		}
		if existing.Email == user.Email {
			return domain.User{}, repository.ErrUserEmailExists
		}
	}

	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user

	return user, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserStore) FindByLogin(_ context.Context, login string) (domain.User, error) {
	for _, user := range f.users {
		if user.Email == login || user.Username == login {
			return user, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) Update(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.users[user.ID]; !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	f.users[user.ID] = user

	return user, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)

	return nil
}

func (f *fakeUserStore) List(_ context.Context, filter domain.UserFilter, page domain.PageQuery) ([]domain.User, int64, error) {
	var users []domain.User
	for _, user := range f.users {
		if filter.Username != "" && !strings.Contains(user.Username, filter.Username) {
			continue
		}
		users = append(users, user)
	}

	return users, int64(len(users)), nil
}

type fakeVenueStore struct {
	venues map[uint]domain.Venue
}

func (f *fakeVenueStore) FindByID(_ context.Context, id uint) (domain.Venue, error) {
	venue, ok := f.venues[id]
	if !ok {
		return domain.Venue{}, repository.ErrVenueNotFound
	}

	return venue, nil
}

type fakeEventStore struct {
	events map[uint]domain.Event
}

func newFakeEventStore(events ...domain.Event) *fakeEventStore {
	f := &fakeEventStore{events: map[uint]domain.Event{}}
	for _, event := range events {
		f.events[event.ID] = event
	}

	return f
}

func (f *fakeEventStore) FindByID(_ context.Context, id uint) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return event, nil
}

type fakeGroupStore struct {
	groups       map[uint]domain.Group
	members      []domain.GroupMember
	events       *fakeEventStore
	nextID       uint
	nextMemberID uint
}

func newFakeGroupStore(events *fakeEventStore) *fakeGroupStore {
	return &fakeGroupStore{
		groups:       map[uint]domain.Group{},
		events:       events,
		nextID:       1,
		nextMemberID: 1,
	}
}

func (f *fakeGroupStore) Create(_ context.Context, group domain.Group) (domain.Group, error) {
	event, ok := f.events.events[group.EventID]
	if !ok {
		return domain.Group{}, repository.ErrEventNotFound
	}

	event.Capacity += group.Capacity
	f.events.events[event.ID] = event

	group.ID = f.nextID
	f.nextID++
	f.groups[group.ID] = group

	return group, nil
}

func (f *fakeGroupStore) FindByID(_ context.Context, id uint) (domain.Group, error) {
	group, ok := f.groups[id]
	if !ok {
		return domain.Group{}, repository.ErrGroupNotFound
	}

	return group, nil
}

func (f *fakeGroupStore) Update(_ context.Context, group domain.Group) (domain.Group, error) {
	if _, ok := f.groups[group.ID]; !ok {
		return domain.Group{}, repository.ErrGroupNotFound
	}
	f.groups[group.ID] = group

	return group, nil
}

func (f *fakeGroupStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.groups[id]; !ok {
		return repository.ErrGroupNotFound
	}
	delete(f.groups, id)

	kept := f.members[:0]
	for _, member := range f.members {
		if member.GroupID != id {
			kept = append(kept, member)
		}
	}
	f.members = kept

	return nil
}

func (f *fakeGroupStore) List(_ context.Context, filter domain.GroupFilter, page domain.PageQuery) ([]domain.Group, int64, error) {
	var groups []domain.Group
	for _, group := range f.groups {
		if filter.Name != "" && !strings.Contains(group.Name, filter.Name) {
			continue
		}
		groups = append(groups, group)
	}

	return groups, int64(len(groups)), nil
}

func (f *fakeGroupStore) FindMembers(_ context.Context, groupID uint, page domain.PageQuery) ([]domain.UserSummary, int64, error) {
	var summaries []domain.UserSummary
	for _, member := range f.members {
		if member.GroupID == groupID {
			summaries = append(summaries, domain.UserSummary{ID: member.UserID})
		}
	}

	return summaries, int64(len(summaries)), nil
}

func (f *fakeGroupStore) FindMember(_ context.Context, groupID, userID uint) (domain.GroupMember, error) {
	for _, member := range f.members {
		if member.GroupID == groupID && member.UserID == userID {
			return member, nil
		}
	}

	return domain.GroupMember{}, repository.ErrMemberNotFound
}

func (f *fakeGroupStore) FindMemberInEvent(_ context.Context, eventID, userID uint) (domain.GroupMember, error) {
	for _, member := range f.members {
		group, ok := f.groups[member.GroupID]
		if ok && group.EventID == eventID && member.UserID == userID {
			return member, nil
		}
	}

	return domain.GroupMember{}, repository.ErrMemberNotFound
}

func (f *fakeGroupStore) AddMemberCounted(_ context.Context, groupID, userID, eventID uint) error {
	f.appendMember(groupID, userID)

	event := f.events.events[eventID]
	event.RegisteredCount++
	f.events.events[eventID] = event

	return nil
}

func (f *fakeGroupStore) RemoveMemberCounted(_ context.Context, memberID, eventID uint) error {
	if !f.removeMemberByID(memberID) {
		return repository.ErrMemberNotFound
	}

	event := f.events.events[eventID]
	event.RegisteredCount--
	f.events.events[eventID] = event

	return nil
}

func (f *fakeGroupStore) MoveMember(_ context.Context, memberID, toGroupID, userID uint) error {
	for i, member := range f.members {
		if member.ID == memberID {
			f.members[i].GroupID = toGroupID

			return nil
		}
	}

	return repository.ErrMemberNotFound
}

func (f *fakeGroupStore) AddMember(_ context.Context, groupID, userID uint) (domain.GroupMember, error) {
	for _, member := range f.members {
		if member.GroupID == groupID && member.UserID == userID {
			return domain.GroupMember{}, repository.ErrMemberExists
		}
	}

	return f.appendMember(groupID, userID), nil
}

func (f *fakeGroupStore) RemoveMember(_ context.Context, groupID, userID uint) error {
	for _, member := range f.members {
		if member.GroupID == groupID && member.UserID == userID {
			f.removeMemberByID(member.ID)

			return nil
		}
	}

	return repository.ErrMemberNotFound
}

func (f *fakeGroupStore) appendMember(groupID, userID uint) domain.GroupMember {
	member := domain.GroupMember{
		ID:      f.nextMemberID,
		GroupID: groupID,
		UserID:  userID,
	}
	f.nextMemberID++
	f.members = append(f.members, member)

	return member
}

func (f *fakeGroupStore) removeMemberByID(memberID uint) bool {
	for i, member := range f.members {
		if member.ID == memberID {
			f.members = append(f.members[:i], f.members[i+1:]...)

			return true
		}
	}

	return false
}

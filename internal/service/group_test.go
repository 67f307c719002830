package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsmate/sportsmate-api/internal/domain"
)

func newGroupTestFixture(t *testing.T) (*GroupService, *fakeGroupStore, *fakeEventStore, *fakeUserStore) {
	t.Helper()

	events := newFakeEventStore(domain.Event{ID: 1, Title: "pickup game", Capacity: 10})
	groups := newFakeGroupStore(events)

	users := newFakeUserStore()
	_, err := users.Create(context.Background(), domain.User{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	return NewGroupService(groups, users, events), groups, events, users
}

func TestGroupServiceCreate(t *testing.T) {
	t.Run("adds the group capacity to the event", func(t *testing.T) {
		svc, _, events, _ := newGroupTestFixture(t)

		group, err := svc.Create(context.Background(), domain.Group{
			Name:     "team red",
			EventID:  1,
			Capacity: 6,
			Status:   domain.GroupStatusPublic,
		})
		require.NoError(t, err)
		assert.Equal(t, 6, group.Capacity)
		assert.Equal(t, 16, events.events[1].Capacity)

		_, err = svc.Create(context.Background(), domain.Group{
			Name:     "team blue",
			EventID:  1,
			Capacity: 6,
			Status:   domain.GroupStatusPublic,
		})
		require.NoError(t, err)
		assert.Equal(t, 22, events.events[1].Capacity)
	})

	t.Run("applies defaults", func(t *testing.T) {
		svc, _, _, _ := newGroupTestFixture(t)

		group, err := svc.Create(context.Background(), domain.Group{
			Name:    "team red",
			EventID: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.GroupDefaultCapacity, group.Capacity)
		assert.Equal(t, domain.GroupStatusPublic, group.Status)
	})

	t.Run("fails when the event does not exist", func(t *testing.T) {
		svc, _, _, _ := newGroupTestFixture(t)

		_, err := svc.Create(context.Background(), domain.Group{
			Name:    "orphans",
			EventID: 99,
		})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestGroupServiceToggle(t *testing.T) {
	t.Run("join then leave", func(t *testing.T) {
		svc, _, events, _ := newGroupTestFixture(t)

		group, err := svc.Create(context.Background(), domain.Group{Name: "team red", EventID: 1})
		require.NoError(t, err)

		change, err := svc.Toggle(context.Background(), group.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.MembershipJoined, change.Action)
		assert.Equal(t, "team red", change.GroupName)
		assert.Equal(t, 1, events.events[1].RegisteredCount)

		change, err = svc.Toggle(context.Background(), group.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.MembershipLeft, change.Action)
		assert.Equal(t, 0, events.events[1].RegisteredCount)
	})

	t.Run("joining a sibling group switches", func(t *testing.T) {
		svc, groups, events, _ := newGroupTestFixture(t)

		red, err := svc.Create(context.Background(), domain.Group{Name: "team red", EventID: 1})
		require.NoError(t, err)
		blue, err := svc.Create(context.Background(), domain.Group{Name: "team blue", EventID: 1})
		require.NoError(t, err)

		_, err = svc.Toggle(context.Background(), red.ID, 1)
		require.NoError(t, err)

		change, err := svc.Toggle(context.Background(), blue.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.MembershipSwitched, change.Action)
		assert.Equal(t, "team blue", change.GroupName)
		assert.Equal(t, "team red", change.FromGroupName)

		// One membership, count untouched by the switch.
		assert.Equal(t, 1, events.events[1].RegisteredCount)
		_, err = groups.FindMember(context.Background(), blue.ID, 1)
		assert.NoError(t, err)
		_, err = groups.FindMember(context.Background(), red.ID, 1)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})

	t.Run("toggling twice is a no-op overall", func(t *testing.T) {
		svc, groups, events, _ := newGroupTestFixture(t)

		group, err := svc.Create(context.Background(), domain.Group{Name: "team red", EventID: 1})
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			_, err = svc.Toggle(context.Background(), group.ID, 1)
			require.NoError(t, err)
		}

		assert.Equal(t, 0, events.events[1].RegisteredCount)
		assert.Empty(t, groups.members)
	})

	t.Run("unknown group", func(t *testing.T) {
		svc, _, _, _ := newGroupTestFixture(t)

		_, err := svc.Toggle(context.Background(), 42, 1)
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _, _ := newGroupTestFixture(t)

		group, err := svc.Create(context.Background(), domain.Group{Name: "team red", EventID: 1})
		require.NoError(t, err)

		_, err = svc.Toggle(context.Background(), group.ID, 42)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestGroupServiceMembers(t *testing.T) {
	t.Run("list members requires an existing group", func(t *testing.T) {
		svc, _, _, _ := newGroupTestFixture(t)

		_, _, err := svc.ListMembers(context.Background(), 42, domain.PageQuery{})
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("admin add does not touch the registered count", func(t *testing.T) {
		svc, _, events, _ := newGroupTestFixture(t)

		group, err := svc.Create(context.Background(), domain.Group{Name: "team red", EventID: 1})
		require.NoError(t, err)

		member, err := svc.AddMember(context.Background(), group.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, group.ID, member.GroupID)
		assert.Equal(t, 0, events.events[1].RegisteredCount)

		_, err = svc.AddMember(context.Background(), group.ID, 1)
		assert.ErrorIs(t, err, ErrMemberExists)
	})

	t.Run("admin remove of an absent member", func(t *testing.T) {
		svc, _, _, _ := newGroupTestFixture(t)

		group, err := svc.Create(context.Background(), domain.Group{Name: "team red", EventID: 1})
		require.NoError(t, err)

		err = svc.RemoveMember(context.Background(), group.ID, 1)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestGroupServiceGet(t *testing.T) {
	svc, _, _, _ := newGroupTestFixture(t)

	created, err := svc.Create(context.Background(), domain.Group{Name: "team red", EventID: 1})
	require.NoError(t, err)

	_, err = svc.Toggle(context.Background(), created.ID, 1)
	require.NoError(t, err)

	group, members, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "team red", group.Name)
	require.Len(t, members, 1)
	assert.Equal(t, uint(1), members[0].ID)
}

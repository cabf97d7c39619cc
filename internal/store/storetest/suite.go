// Package storetest holds a behavioral test suite that every store.UserStore
// implementation must pass. Backend packages call RunUserStoreSuite from
// their integration tests with a factory that yields an empty store.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
)

// Factory returns a UserStore backed by an empty collection.
type Factory func(t *testing.T) store.UserStore

// RunUserStoreSuite runs the UserStore contract against stores from newStore.
// missingID must be well formed for the backend but name no document;
// malformedID must not be in the backend's identifier format.
func RunUserStoreSuite(t *testing.T, newStore Factory, missingID, malformedID string) {
	t.Helper()

	t.Run("list_empty", func(t *testing.T) {
		s := newStore(t)

		users, err := s.List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, users, "empty collection must yield an empty slice, not nil")
		assert.Empty(t, users)
	})

	t.Run("create_assigns_unique_ids", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		first, err := s.Create(ctx, domain.NewUserFields("Ann", "Lee", 30))
		require.NoError(t, err)
		second, err := s.Create(ctx, domain.NewUserFields("Bob", "Ray", 0))
		require.NoError(t, err)

		assert.NotEmpty(t, first.ID)
		assert.NotEmpty(t, second.ID)
		assert.NotEqual(t, first.ID, second.ID)
		require.NotNil(t, second.Age)
		assert.Equal(t, 0.0, *second.Age, "zero age must be stored as zero")

		users, err := s.List(ctx)
		require.NoError(t, err)
		ids := make([]string, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
	})

	t.Run("get_round_trip", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		created, err := s.Create(ctx, domain.NewUserFields("Ann", "Lee", 30))
		require.NoError(t, err)

		got, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("update_overwrites_omitted_fields_with_null", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		created, err := s.Create(ctx, domain.NewUserFields("Ann", "Lee", 30))
		require.NoError(t, err)

		updated, err := s.Update(ctx, created.ID, domain.UserFields{Age: domain.Some(31.0).Ptr()})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Nil(t, updated.Name)
		assert.Nil(t, updated.Surname)
		require.NotNil(t, updated.Age)
		assert.Equal(t, 31.0, *updated.Age)

		got, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got, "update must return the post-update record")
	})

	t.Run("delete_returns_prior_state", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		created, err := s.Create(ctx, domain.NewUserFields("Ann", "Lee", 30))
		require.NoError(t, err)

		deleted, err := s.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, deleted)

		_, err = s.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		_, err = s.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	for _, id := range []struct {
		name  string
		value string
	}{
		{name: "missing_id", value: missingID},
		{name: "malformed_id", value: malformedID},
	} {
		t.Run(id.name+"_is_not_found", func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)

			_, err := s.GetByID(ctx, id.value)
			assert.ErrorIs(t, err, store.ErrUserNotFound)

			_, err = s.Update(ctx, id.value, domain.NewUserFields("Ann", "Lee", 30))
			assert.ErrorIs(t, err, store.ErrUserNotFound)

			_, err = s.Delete(ctx, id.value)
			assert.ErrorIs(t, err, store.ErrUserNotFound)
		})
	}
}

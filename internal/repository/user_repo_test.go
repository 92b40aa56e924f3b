package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreateAndLookup(t *testing.T) {
	repo := NewUserRepository(NewStore())

	alice := repo.Create(newTestUser("alice"))
	bob := repo.Create(newTestUser("bob"))

	require.Equal(t, int64(1), alice.ID)
	require.Equal(t, int64(2), bob.ID)
	require.False(t, alice.IsAdmin)
	require.False(t, alice.IsVerified)

	byEmail, err := repo.GetByEmail("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, byEmail.ID)

	byName, err := repo.GetByUsername("bob")
	require.NoError(t, err)
	require.Equal(t, bob.ID, byName.ID)

	_, err = repo.GetByEmail("nobody@example.com")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByID(99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryUpdateKeepsUnsetFields(t *testing.T) {
	repo := NewUserRepository(NewStore())
	alice := repo.Create(newTestUser("alice"))

	bio := "hello there"
	updated, err := repo.Update(alice.ID, UserUpdates{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, "alice", updated.Username)
	require.Equal(t, "alice@example.com", updated.Email)
	require.NotNil(t, updated.Bio)
	require.Equal(t, "hello there", *updated.Bio)

	_, err = repo.Update(99, UserUpdates{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryReturnsCopies(t *testing.T) {
	repo := NewUserRepository(NewStore())
	alice := repo.Create(newTestUser("alice"))

	got, err := repo.GetByID(alice.ID)
	require.NoError(t, err)
	got.Username = "mutated"

	again, err := repo.GetByID(alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", again.Username)
}

func TestUserRepositoryTopCreators(t *testing.T) {
	store := NewStore()
	userRepo := NewUserRepository(store)
	followRepo := NewFollowRepository(store)

	_ = userRepo.Create(newTestUser("alice"))
	bob := userRepo.Create(newTestUser("bob"))
	carol := userRepo.Create(newTestUser("carol"))

	admin := newTestUser("admin")
	created := userRepo.Create(admin)
	// 直接标记为管理员，创建接口不暴露该字段
	store.mu.Lock()
	store.users[created.ID].IsAdmin = true
	store.mu.Unlock()

	fans := []int64{10, 11, 12}
	for _, uid := range fans[:3] {
		_, err := followRepo.Create(uid, bob.ID)
		require.NoError(t, err)
	}
	for _, uid := range fans[:1] {
		_, err := followRepo.Create(uid, carol.ID)
		require.NoError(t, err)
	}
	for _, uid := range fans[:2] {
		_, err := followRepo.Create(uid, created.ID)
		require.NoError(t, err)
	}

	creators := userRepo.TopCreators(10)
	require.Len(t, creators, 3)
	require.Equal(t, "bob", creators[0].Username)
	require.Equal(t, "carol", creators[1].Username)
	require.Equal(t, "alice", creators[2].Username)

	require.Len(t, userRepo.TopCreators(1), 1)
	require.Empty(t, userRepo.TopCreators(0))
}

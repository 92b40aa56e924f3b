package service

import (
	"testing"

	"byfort-go/internal/model"
	"byfort-go/internal/repository"

	"github.com/stretchr/testify/require"
)

func testUserModel(username string) *model.User {
	return &model.User{
		Username:    username,
		Email:       username + "@example.com",
		Password:    "hashed",
		DisplayName: username,
	}
}

func newFollowFixture(t *testing.T) (*FollowService, int64, int64) {
	t.Helper()
	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	svc := NewFollowService(repository.NewFollowRepository(store), userRepo)

	alice := userRepo.Create(testUserModel("alice"))
	bob := userRepo.Create(testUserModel("bob"))
	return svc, alice.ID, bob.ID
}

func TestFollowServiceFollowAndUnfollow(t *testing.T) {
	svc, aliceID, bobID := newFollowFixture(t)

	info, err := svc.Follow(aliceID, bobID)
	require.NoError(t, err)
	require.Equal(t, aliceID, info.FollowerID)
	require.Equal(t, bobID, info.FollowingID)

	followers, err := svc.GetFollowers(bobID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	require.Equal(t, "alice", followers[0].Username)

	require.NoError(t, svc.Unfollow(aliceID, bobID))

	followers, err = svc.GetFollowers(bobID)
	require.NoError(t, err)
	require.Empty(t, followers)
}

func TestFollowServiceSelfFollowRejected(t *testing.T) {
	svc, aliceID, _ := newFollowFixture(t)

	_, err := svc.Follow(aliceID, aliceID)
	require.ErrorIs(t, err, ErrCannotFollowSelf)
}

func TestFollowServiceDuplicateFollow(t *testing.T) {
	svc, aliceID, bobID := newFollowFixture(t)

	_, err := svc.Follow(aliceID, bobID)
	require.NoError(t, err)
	_, err = svc.Follow(aliceID, bobID)
	require.ErrorIs(t, err, ErrAlreadyFollowing)
}

func TestFollowServiceUnknownTarget(t *testing.T) {
	svc, aliceID, _ := newFollowFixture(t)

	_, err := svc.Follow(aliceID, 999)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetFollowing(999)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowServiceUnfollowWithoutFollow(t *testing.T) {
	svc, aliceID, bobID := newFollowFixture(t)

	require.ErrorIs(t, svc.Unfollow(aliceID, bobID), ErrNotFollowing)
}

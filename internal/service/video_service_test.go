package service

import (
	"testing"

	"byfort-go/internal/api/dto"
	"byfort-go/internal/repository"

	"github.com/stretchr/testify/require"
)

func newVideoFixture(t *testing.T) (*VideoService, int64) {
	t.Helper()
	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	svc := NewVideoService(repository.NewVideoRepository(store), userRepo)

	owner := userRepo.Create(testUserModel("owner"))
	return svc, owner.ID
}

func TestVideoServiceCreateDefaultsToPublic(t *testing.T) {
	svc, ownerID := newVideoFixture(t)

	info := svc.Create(ownerID, &dto.VideoCreateRequest{
		Title:    "my clip",
		VideoURL: "https://example.com/clip.mp4",
	})
	require.True(t, info.IsPublic)
	require.Equal(t, ownerID, info.UserID)

	hidden := false
	info = svc.Create(ownerID, &dto.VideoCreateRequest{
		Title:    "secret",
		VideoURL: "https://example.com/secret.mp4",
		IsPublic: &hidden,
	})
	require.False(t, info.IsPublic)
}

func TestVideoServiceDetailCountsViews(t *testing.T) {
	svc, ownerID := newVideoFixture(t)

	created := svc.Create(ownerID, &dto.VideoCreateRequest{
		Title:    "watched",
		VideoURL: "https://example.com/w.mp4",
	})

	first, err := svc.GetDetail(created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ViewsCount)
	require.NotNil(t, first.User)
	require.Equal(t, "owner", first.User.Username)

	second, err := svc.GetDetail(created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ViewsCount)
}

func TestVideoServiceDetailNotFound(t *testing.T) {
	svc, _ := newVideoFixture(t)

	_, err := svc.GetDetail(404)
	require.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoServiceUpdateRequiresOwner(t *testing.T) {
	svc, ownerID := newVideoFixture(t)

	created := svc.Create(ownerID, &dto.VideoCreateRequest{
		Title:    "mine",
		VideoURL: "https://example.com/m.mp4",
	})

	newTitle := "stolen"
	_, err := svc.Update(created.ID, ownerID+1, &dto.VideoUpdateRequest{Title: &newTitle})
	require.ErrorIs(t, err, ErrVideoNoPermission)

	updated, err := svc.Update(created.ID, ownerID, &dto.VideoUpdateRequest{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "stolen", updated.Title)
}

func TestVideoServiceDeleteRequiresOwner(t *testing.T) {
	svc, ownerID := newVideoFixture(t)

	created := svc.Create(ownerID, &dto.VideoCreateRequest{
		Title:    "mine",
		VideoURL: "https://example.com/m.mp4",
	})

	require.ErrorIs(t, svc.Delete(created.ID, ownerID+1), ErrVideoNoPermission)
	require.NoError(t, svc.Delete(created.ID, ownerID))
	require.ErrorIs(t, svc.Delete(created.ID, ownerID), ErrVideoNotFound)
}

package repository

import (
	"testing"

	"byfort-go/internal/model"

	"github.com/stretchr/testify/require"
)

func TestStatsRepositoryTotalsAreLive(t *testing.T) {
	store := NewStore()
	userRepo := NewUserRepository(store)
	videoRepo := NewVideoRepository(store)
	likeRepo := NewLikeRepository(store)
	commentRepo := NewCommentRepository(store)
	followRepo := NewFollowRepository(store)
	statsRepo := NewStatsRepository(store)

	require.Equal(t, Stats{}, statsRepo.Totals())

	alice := userRepo.Create(newTestUser("alice"))
	bob := userRepo.Create(newTestUser("bob"))
	video := videoRepo.Create(newTestVideo(alice.ID, "clip", true))
	_, err := likeRepo.Create(bob.ID, video.ID)
	require.NoError(t, err)
	commentRepo.Create(&model.Comment{UserID: bob.ID, VideoID: video.ID, Content: "hi"})
	_, err = followRepo.Create(bob.ID, alice.ID)
	require.NoError(t, err)

	totals := statsRepo.Totals()
	require.Equal(t, 2, totals.TotalUsers)
	require.Equal(t, 1, totals.TotalVideos)
	require.Equal(t, 1, totals.TotalLikes)
	require.Equal(t, 1, totals.TotalComments)
	require.Equal(t, 1, totals.TotalFollows)

	// 删除后统计同步下降
	require.True(t, likeRepo.Delete(bob.ID, video.ID))
	require.Zero(t, statsRepo.Totals().TotalLikes)
}

func TestStoreSeedWritesDemoData(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Seed())

	statsRepo := NewStatsRepository(store)
	totals := statsRepo.Totals()
	require.Equal(t, 4, totals.TotalUsers)
	require.Equal(t, 3, totals.TotalVideos)

	userRepo := NewUserRepository(store)
	admin, err := userRepo.GetByEmail("admin@byfort.com")
	require.NoError(t, err)
	require.True(t, admin.IsAdmin)

	// 演示数据之后的新实体 ID 接在序列之后
	next := userRepo.Create(newTestUser("newcomer"))
	require.Equal(t, int64(5), next.ID)
}

package repository

import (
	"testing"
	"time"

	"byfort-go/internal/model"

	"github.com/stretchr/testify/require"
)

func TestCommentRepositoryCreateUpdatesVideoCounter(t *testing.T) {
	store := NewStore()
	videoRepo := NewVideoRepository(store)
	commentRepo := NewCommentRepository(store)

	video := videoRepo.Create(newTestVideo(1, "clip", true))

	comment := commentRepo.Create(&model.Comment{UserID: 2, VideoID: video.ID, Content: "first"})
	require.Equal(t, int64(1), comment.ID)
	require.False(t, comment.CreatedAt.IsZero())

	got, err := videoRepo.GetByID(video.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.CommentsCount)
}

func TestCommentRepositoryListNewestFirst(t *testing.T) {
	store := NewStore()
	videoRepo := NewVideoRepository(store)
	commentRepo := NewCommentRepository(store)

	video := videoRepo.Create(newTestVideo(1, "clip", true))
	other := videoRepo.Create(newTestVideo(1, "other", true))

	commentRepo.Create(&model.Comment{UserID: 2, VideoID: video.ID, Content: "oldest"})
	time.Sleep(2 * time.Millisecond)
	commentRepo.Create(&model.Comment{UserID: 3, VideoID: other.ID, Content: "elsewhere"})
	time.Sleep(2 * time.Millisecond)
	commentRepo.Create(&model.Comment{UserID: 3, VideoID: video.ID, Content: "newest"})

	comments := commentRepo.ListByVideo(video.ID)
	require.Len(t, comments, 2)
	require.Equal(t, "newest", comments[0].Content)
	require.Equal(t, "oldest", comments[1].Content)
}

func TestCommentRepositoryDeleteRestoresCounter(t *testing.T) {
	store := NewStore()
	videoRepo := NewVideoRepository(store)
	commentRepo := NewCommentRepository(store)

	video := videoRepo.Create(newTestVideo(1, "clip", true))
	comment := commentRepo.Create(&model.Comment{UserID: 2, VideoID: video.ID, Content: "bye"})

	require.True(t, commentRepo.Delete(comment.ID))
	require.False(t, commentRepo.Delete(comment.ID))

	got, err := videoRepo.GetByID(video.ID)
	require.NoError(t, err)
	require.Zero(t, got.CommentsCount)

	_, err = commentRepo.GetByID(comment.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCommentRepositoryOrphanCommentAllowed(t *testing.T) {
	store := NewStore()
	commentRepo := NewCommentRepository(store)

	// 视频不存在时评论仍然写入，计数无处可加
	comment := commentRepo.Create(&model.Comment{UserID: 2, VideoID: 99, Content: "ghost"})
	require.Equal(t, int64(1), comment.ID)

	require.Len(t, commentRepo.ListByVideo(99), 1)
}

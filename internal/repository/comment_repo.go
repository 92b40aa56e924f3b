package repository

import (
	"sort"
	"time"

	"byfort-go/internal/model"
)

type CommentRepository struct {
	store *Store
}

func NewCommentRepository(store *Store) *CommentRepository {
	return &CommentRepository{store: store}
}

// GetByID 根据 ID 查询评论
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	comment, ok := r.store.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *comment
	return &c, nil
}

// ListByVideo 获取视频的全部评论，按评论时间降序
func (r *CommentRepository) ListByVideo(videoID int64) []model.Comment {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	comments := make([]*model.Comment, 0)
	for _, comment := range r.store.commentsByInsertion() {
		if comment.VideoID == videoID {
			comments = append(comments, comment)
		}
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	result := make([]model.Comment, 0, len(comments))
	for _, comment := range comments {
		result = append(result, *comment)
	}
	return result
}

// Create 创建评论并在同一临界区内把视频评论数 +1
func (r *CommentRepository) Create(comment *model.Comment) *model.Comment {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	comment.ID = nextID(&r.store.commentSeq)
	comment.LikesCount = 0
	comment.CreatedAt = time.Now()

	stored := *comment
	r.store.comments[comment.ID] = &stored

	if video, ok := r.store.videos[comment.VideoID]; ok {
		video.CommentsCount++
	}

	return comment
}

// Delete 删除评论并把所属视频评论数 -1（不低于 0），返回是否删除了记录
func (r *CommentRepository) Delete(id int64) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	comment, ok := r.store.comments[id]
	if !ok {
		return false
	}
	delete(r.store.comments, id)

	if video, ok := r.store.videos[comment.VideoID]; ok && video.CommentsCount > 0 {
		video.CommentsCount--
	}
	return true
}

package repository

import (
	"errors"
	"sort"
	"sync"

	"byfort-go/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// likeKey 点赞组合键，(用户, 视频) 组合唯一
type likeKey struct {
	UserID  int64
	VideoID int64
}

// followKey 关注组合键，(粉丝, 被关注者) 组合唯一
type followKey struct {
	FollowerID  int64
	FollowingID int64
}

// Store 内存实体存储，持有全部集合和各实体的自增 ID 序列。
// 进程重启即清空，不做任何持久化。
// HTTP 处理器并发执行，所有仓储操作都必须在 mu 的临界区内完成：
// 重复检测、行变更和冗余计数调整共享同一个锁，保证逻辑上的原子性。
type Store struct {
	mu sync.RWMutex

	users    map[int64]*model.User
	videos   map[int64]*model.Video
	likes    map[likeKey]*model.Like
	comments map[int64]*model.Comment
	follows  map[followKey]*model.Follow

	userSeq    int64
	videoSeq   int64
	likeSeq    int64
	commentSeq int64
	followSeq  int64
}

// NewStore 创建一个空的实体存储
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]*model.User),
		videos:   make(map[int64]*model.Video),
		likes:    make(map[likeKey]*model.Like),
		comments: make(map[int64]*model.Comment),
		follows:  make(map[followKey]*model.Follow),
	}
}

// nextID 返回下一个自增 ID，从 1 开始，删除后不复用
func nextID(seq *int64) int64 {
	*seq++
	return *seq
}

// usersByInsertion 按插入顺序（ID 升序）返回全部用户，需在锁内调用
func (s *Store) usersByInsertion() []*model.User {
	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// videosByInsertion 按插入顺序（ID 升序）返回全部视频，需在锁内调用
func (s *Store) videosByInsertion() []*model.Video {
	videos := make([]*model.Video, 0, len(s.videos))
	for _, v := range s.videos {
		videos = append(videos, v)
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })
	return videos
}

// commentsByInsertion 按插入顺序（ID 升序）返回全部评论，需在锁内调用
func (s *Store) commentsByInsertion() []*model.Comment {
	comments := make([]*model.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		comments = append(comments, c)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments
}

// followsByInsertion 按插入顺序（ID 升序）返回全部关注关系，需在锁内调用
func (s *Store) followsByInsertion() []*model.Follow {
	follows := make([]*model.Follow, 0, len(s.follows))
	for _, f := range s.follows {
		follows = append(follows, f)
	}
	sort.Slice(follows, func(i, j int) bool { return follows[i].ID < follows[j].ID })
	return follows
}

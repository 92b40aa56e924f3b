package repository

type StatsRepository struct {
	store *Store
}

func NewStatsRepository(store *Store) *StatsRepository {
	return &StatsRepository{store: store}
}

// Stats 各实体集合的实时总量
type Stats struct {
	TotalUsers    int `json:"total_users"`
	TotalVideos   int `json:"total_videos"`
	TotalLikes    int `json:"total_likes"`
	TotalComments int `json:"total_comments"`
	TotalFollows  int `json:"total_follows"`
}

// Totals 返回调用时各集合的数量，不做缓存
func (r *StatsRepository) Totals() Stats {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return Stats{
		TotalUsers:    len(r.store.users),
		TotalVideos:   len(r.store.videos),
		TotalLikes:    len(r.store.likes),
		TotalComments: len(r.store.comments),
		TotalFollows:  len(r.store.follows),
	}
}

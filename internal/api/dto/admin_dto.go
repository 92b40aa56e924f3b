package dto

// StatsData 管理后台的平台实时统计
type StatsData struct {
	TotalUsers    int `json:"total_users"`
	TotalVideos   int `json:"total_videos"`
	TotalLikes    int `json:"total_likes"`
	TotalComments int `json:"total_comments"`
	TotalFollows  int `json:"total_follows"`
}

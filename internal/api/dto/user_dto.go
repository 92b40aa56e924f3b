package dto

// UserUpdateRequest 用户资料更新请求，未提供的字段保持不变
type UserUpdateRequest struct {
	Username    *string `json:"username" binding:"omitempty,min=1,max=255"`
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	Password    *string `json:"password" binding:"omitempty,min=6,max=255"`
	DisplayName *string `json:"display_name" binding:"omitempty,min=1,max=255"`
	Bio         *string `json:"bio" binding:"omitempty,max=500"`
	Avatar      *string `json:"avatar" binding:"omitempty,max=500"`
}

package models

type UserModel struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:varchar(255);not null;uniqueIndex"`
	Password string `json:"-" gorm:"type:varchar(100);not null"`
	IsStaff  bool   `json:"is_staff" gorm:"default:false;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsStaff  bool   `json:"is_staff"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
}

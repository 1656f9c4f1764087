package domain

import "time"

// Submission 表示一条用户投稿。创建后只会被读取或删除，不会更新。
type Submission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(120)" json:"name"`  // 可选
	Title     string    `gorm:"type:varchar(200)" json:"title"` // 可选
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

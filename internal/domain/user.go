package domain

// User 表示应用程序中的用户。
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"type:varchar(80);uniqueIndex:idx_username;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(200);not null" json:"-"` // 存储的是哈希后的密码，绝不以明文出现
}

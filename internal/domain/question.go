// Package domain 定义了应用程序中使用的数据结构 (数据库模型)。
package domain

// Category 表示内容板块，取值固定为 employment / study / daily。
type Category string

const (
	CategoryEmployment Category = "employment"
	CategoryStudy      Category = "study"
	CategoryDaily      Category = "daily"
)

// ParseCategory 将 URL 路径中的板块名解析为 Category。
// 未知板块返回 ok=false，由调用方映射为 404。
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryEmployment, CategoryStudy, CategoryDaily:
		return Category(s), true
	}
	return "", false
}

// TableName 返回该板块对应的数据表名。
func (c Category) TableName() string {
	switch c {
	case CategoryEmployment:
		return "employment_questions"
	case CategoryStudy:
		return "study_questions"
	case CategoryDaily:
		return "daily_questions"
	}
	return ""
}

// Question 表示某个板块下的一条问答内容。
// 三个板块使用同构的独立表，具体表名由 Category 决定。
type Question struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Slug    string `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	Title   string `gorm:"type:varchar(200);not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"` // HTML 片段
}

package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"student-helper/internal/domain"
)

// 各板块的示例内容。仅在表为空时写入，重复启动不会产生重复数据。
var seedQuestions = map[domain.Category][]domain.Question{
	domain.CategoryEmployment: {
		{Slug: "how", Title: "如何就业", Content: "<p>投递简历、面试准备与职业定位建议。</p>"},
		{Slug: "intern", Title: "怎么找实习", Content: "<p>实习渠道与简历投递小技巧。</p>"},
		{Slug: "experience", Title: "学长学姐经验", Content: "<p>往届学长学姐的经验分享与建议。</p>"},
	},
	domain.CategoryStudy: {
		{Slug: "correct", Title: "正确学习", Content: "<p>基础打牢与系统性学习方法。</p>"},
		{Slug: "efficient", Title: "高效学习", Content: "<p>时间规划、专注技巧与复习策略。</p>"},
		{Slug: "experience", Title: "学长学姐经验", Content: "<p>课程选择与学习资源推荐。</p>"},
	},
	domain.CategoryDaily: {
		{Slug: "school", Title: "学校问题", Content: "<p>校园常见问题与解答。</p>"},
		{Slug: "resources", Title: "高效利用学校资源", Content: "<p>图书馆、实验室、导师沟通等资源利用建议。</p>"},
		{Slug: "experience", Title: "学长经验", Content: "<p>生活小技巧与校园适应经验。</p>"},
	},
}

// SeedDB 在表为空时插入示例内容和默认用户。幂等。
func SeedDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot seed database with nil DB connection")
	}

	for category, questions := range seedQuestions {
		if err := seedCategory(db, category, questions); err != nil {
			return err
		}
	}

	if err := seedDefaultUser(db); err != nil {
		return err
	}

	logrus.Info("Database seeding completed")
	return nil
}

func seedCategory(db *gorm.DB, category domain.Category, questions []domain.Question) error {
	table := category.TableName()

	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	if count > 0 {
		return nil
	}

	if err := db.Table(table).Create(&questions).Error; err != nil {
		return fmt.Errorf("failed to seed %s: %w", table, err)
	}
	logrus.Infof("Seeded %d rows into %s", len(questions), table)
	return nil
}

// seedDefaultUser 在没有任何用户时创建 admin/admin 示例账号。
func seedDefaultUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default user password: %w", err)
	}
	user := domain.User{Username: "admin", PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create default user: %w", err)
	}
	logrus.Info("Default user 'admin' created")
	return nil
}

// Package setup 负责数据库基础设施的初始化：建库、建连接池、迁移和种子数据。
package setup

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	// 直接使用底层驱动执行 CREATE DATABASE
	_ "github.com/go-sql-driver/mysql"
)

// EnsureDatabase 尽力确保目标数据库存在（MySQL 可达时）。
// 失败只记录警告，不中断启动；此时需要手动创建数据库。
func EnsureDatabase(user, password, host, port, name string) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4", user, password, host, port)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		logrus.Warnf("Could not open MySQL connection to create database '%s': %v", name, err)
		return
	}
	defer db.Close()

	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` DEFAULT CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci", name)
	if _, err := db.Exec(stmt); err != nil {
		logrus.Warnf("Could not create database '%s' automatically (ensure MySQL is reachable or create it manually): %v", name, err)
		return
	}
	logrus.Infof("Database '%s' ensured", name)
}

// InitDB 初始化 GORM 连接池。
func InitDB(user, password, host, port, name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, name)

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logrus.Info("MySQL connected")
	return db, nil
}

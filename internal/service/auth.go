package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"student-helper/internal/domain"
	"student-helper/internal/repository"
)

// AuthService 负责用户认证相关的业务逻辑。
// 会话是无状态的：一个携带 user_id/username 的签名 token，放在 cookie 中。
type AuthService struct {
	userRepo      repository.UserRepository
	sessionSecret []byte
	sessionExpiry time.Duration
}

// NewAuthService 创建 AuthService 实例。
// sessionSecretKey 应从配置中获取；sessionExpiryHours 定义会话过期的小时数。
func NewAuthService(userRepo repository.UserRepository, sessionSecretKey string, sessionExpiryHours int) (*AuthService, error) {
	if userRepo == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if sessionSecretKey == "" {
		return nil, fmt.Errorf("session secret key cannot be empty")
	}
	if sessionExpiryHours <= 0 {
		sessionExpiryHours = 24
	}
	return &AuthService{
		userRepo:      userRepo,
		sessionSecret: []byte(sessionSecretKey),
		sessionExpiry: time.Duration(sessionExpiryHours) * time.Hour,
	}, nil
}

// Register 处理用户注册。注册成功即视为已登录，返回会话 token。
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, string, error) {
	logCtx := logrus.WithField("username", username)

	if username == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, "", ErrInternalServer
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	// 唯一性由数据库约束保证，避免先查后写的竞态
	if err := s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Registration failed: username already exists")
			return nil, "", ErrUsernameTaken
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, "", ErrInternalServer
	}

	token, err := s.issueSessionToken(user)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue session token after registration")
		return nil, "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	return user, token, nil
}

// Login 处理用户登录。
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	logCtx := logrus.WithField("username", username)

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login attempt failed: user not found")
		} else {
			logCtx.WithError(err).Warn("Login attempt failed: error finding user")
		}
		// 对调用方统一返回认证失败，不暴露用户是否存在
		return nil, "", ErrAuthenticationFailed
	}
	if user == nil {
		logCtx.Warn("Login attempt failed: repository returned nil user without error")
		return nil, "", ErrAuthenticationFailed
	}

	if !checkPassword(password, user.PasswordHash) {
		logCtx.Warn("Login attempt failed: invalid password")
		return nil, "", ErrAuthenticationFailed
	}

	token, err := s.issueSessionToken(user)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue session token during login")
		return nil, "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	return user, token, nil
}

// --- 私有辅助函数 ---

// hashPassword 使用 bcrypt 对密码进行哈希处理
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

// checkPassword 验证提供的密码是否与存储的哈希匹配
func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// issueSessionToken 为用户签发会话 token。
// 会话中只携带 user_id 和 username，服务端不保存任何会话状态。
func (s *AuthService) issueSessionToken(user *domain.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.sessionExpiry).Unix(),
		"iat":      time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.sessionSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

package service

import "errors"

// 业务层错误。Handler 依据这些错误决定 HTTP 状态码或页面提示。
var (
	ErrInvalidInput         = errors.New("required field is missing")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNotFound             = errors.New("not found")
	ErrInternalServer       = errors.New("internal server error")
)

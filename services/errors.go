package services

import "errors"

var (
	// ErrNotFound 未找到错误
	ErrNotFound = errors.New("not found")

	// ErrValidation 必填字段缺失等校验失败
	ErrValidation = errors.New("validation failed")

	// ErrAuthFailed 认证失败（邮箱不存在和密码错误返回同一个错误，不区分）
	ErrAuthFailed = errors.New("authentication failed")

	// ErrAuthInProgress 同一会话已有认证请求在进行中
	ErrAuthInProgress = errors.New("authentication already in progress")
)

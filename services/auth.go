package services

import (
	"context"
	"sync"
	"time"

	"dispatch-service/models"
)

// Authenticator 会话认证器
//
// 按邮箱精确匹配账号（区分大小写），密码为全系统共用的固定口令。
// 演示用途的占位实现：没有哈希、限流和锁定，真实部署必须替换。
//
// 一次登录尝试的状态流转: Idle → Authenticating → {Authenticated | Rejected}。
// Authenticating 期间同一认证器上的新尝试直接拒绝，不允许并发。
type Authenticator struct {
	repo     *Repository
	password string
	delay    time.Duration

	mu       sync.Mutex
	inFlight bool
}

// NewAuthenticator 创建认证器
func NewAuthenticator(repo *Repository, password string, delay time.Duration) *Authenticator {
	return &Authenticator{
		repo:     repo,
		password: password,
		delay:    delay,
	}
}

// Authenticate 验证邮箱和密码
//
// 模拟远端调用，短暂延迟后出结果。邮箱不存在和密码错误返回
// 同一个 ErrAuthFailed，调用方无法区分，避免用户枚举。
// context 取消时放弃本次尝试，不留部分状态。
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	a.mu.Lock()
	if a.inFlight {
		a.mu.Unlock()
		return models.Account{}, ErrAuthInProgress
	}
	a.inFlight = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.inFlight = false
		a.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return models.Account{}, ctx.Err()
	case <-time.After(a.delay):
	}

	account, err := a.repo.AccountByEmail(email)
	if err != nil || password != a.password {
		return models.Account{}, ErrAuthFailed
	}

	a.repo.TouchLastLogin(account.ID)
	return account, nil
}

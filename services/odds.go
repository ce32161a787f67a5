package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"dispatch-service/models"
)

// OddsService 赔率服务
//
// 仓库里保存的是每家博彩公司的基准报价。每次选中比赛时在基准值上
// 加一个 [-jitter, +jitter] 的独立随机扰动，模拟实时行情；扰动不做
// 累积，下一次刷新仍然从基准值出发。Available 标志不受刷新影响。
type OddsService struct {
	repo   *Repository
	delay  time.Duration
	jitter float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewOddsService 创建赔率服务
func NewOddsService(repo *Repository, delay time.Duration, jitter float64) *OddsService {
	return &OddsService{
		repo:   repo,
		delay:  delay,
		jitter: jitter,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Current 返回当前基准报价（含操作员改过的注额）
func (s *OddsService) Current() []models.BookmakerOdds {
	return s.repo.BookmakerOdds()
}

// RefreshForMatch 为选中的比赛刷新报价
//
// 模拟远端行情接口：短暂延迟后返回扰动值。调用方取消 context
// 时直接丢弃本次结果，没有需要清理的中间状态。
func (s *OddsService) RefreshForMatch(ctx context.Context, matchID string) ([]models.BookmakerOdds, error) {
	if _, err := s.repo.MatchByID(matchID); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
	}

	base := s.repo.BookmakerOdds()
	out := make([]models.BookmakerOdds, len(base))
	s.mu.Lock()
	for i, b := range base {
		b.Odds += (s.rng.Float64() - 0.5) * 2 * s.jitter
		out[i] = b
	}
	s.mu.Unlock()
	return out, nil
}

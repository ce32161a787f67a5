package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"dispatch-service/models"
)

// Notifier 派票消息通道
//
// 把渲染好的消息投递到店铺配置的通道。默认实现只做模拟投递，
// 真实通道（Telegram）在配置了 bot token 时才会启用。
type Notifier interface {
	Notify(shop models.Shop, text string) error
}

// SimulatedNotifier 模拟通道，只记日志不发网络请求
type SimulatedNotifier struct {
	logger zerolog.Logger
}

// NewSimulatedNotifier 创建模拟通道
func NewSimulatedNotifier(logger zerolog.Logger) *SimulatedNotifier {
	return &SimulatedNotifier{logger: logger}
}

// Notify 模拟投递，立即成功
func (n *SimulatedNotifier) Notify(shop models.Shop, text string) error {
	n.logger.Info().
		Str("shop", shop.Name).
		Str("chat_id", shop.TelegramChatID).
		Int("length", len(text)).
		Msg("simulated dispatch")
	return nil
}

// RenderTemplate 渲染消息模板
//
// 支持且仅支持这五个占位符:
// {match} {odds} {stake} {potential_win} {ticket_id}
func RenderTemplate(content string, t models.Ticket) string {
	r := strings.NewReplacer(
		"{match}", t.Match,
		"{odds}", fmt.Sprintf("%.2f", t.Odds),
		"{stake}", strconv.FormatFloat(t.Stake, 'f', -1, 64),
		"{potential_win}", fmt.Sprintf("%.2f", t.PotentialWin()),
		"{ticket_id}", t.ID,
	)
	return r.Replace(content)
}

// DispatchRequest 派票请求
type DispatchRequest struct {
	MatchID     string  `json:"matchId"`
	BookmakerID string  `json:"bookmakerId"`
	ShopID      string  `json:"shopId"`
	TemplateID  string  `json:"templateId,omitempty"` // 缺省用第一个 telegram 模板
	Stake       float64 `json:"stake,omitempty"`      // 缺省用报价行当前注额
	Odds        float64 `json:"odds,omitempty"`       // 刷新后的报价快照，缺省用基准值
}

// DispatchResult 派票结果
type DispatchResult struct {
	Ticket  models.Ticket `json:"ticket"`
	Shop    models.Shop   `json:"shop"`
	Message string        `json:"message"`
}

// DispatchService 派票服务
//
// 快照选中的比赛和报价生成 pending 票据，追加到内存历史，
// 渲染模板后经 Notifier 投递。store 配置了数据库时同步落一份，
// 落库失败只记日志，内存集合仍是唯一数据源。
type DispatchService struct {
	repo     *Repository
	notifier Notifier
	store    *TicketStore
	logger   zerolog.Logger
}

// NewDispatchService 创建派票服务
func NewDispatchService(repo *Repository, notifier Notifier, store *TicketStore, logger zerolog.Logger) *DispatchService {
	return &DispatchService{
		repo:     repo,
		notifier: notifier,
		store:    store,
		logger:   logger,
	}
}

// Dispatch 执行一次派票
func (s *DispatchService) Dispatch(ctx context.Context, req DispatchRequest) (DispatchResult, error) {
	match, err := s.repo.MatchByID(req.MatchID)
	if err != nil {
		return DispatchResult{}, err
	}
	bookmaker, err := s.repo.BookmakerByID(req.BookmakerID)
	if err != nil {
		return DispatchResult{}, err
	}
	shop, err := s.repo.ShopByID(req.ShopID)
	if err != nil {
		return DispatchResult{}, err
	}

	if !bookmaker.Available {
		return DispatchResult{}, ErrValidation
	}

	odds := bookmaker.Odds
	if req.Odds > 0 {
		odds = req.Odds
	}
	stake := bookmaker.Stake
	if req.Stake > 0 {
		stake = req.Stake
	}
	if stake <= 0 {
		return DispatchResult{}, ErrValidation
	}

	template, err := s.resolveTemplate(req.TemplateID)
	if err != nil {
		return DispatchResult{}, err
	}

	ticket := s.repo.AppendTicket(models.Ticket{
		MatchID:   match.ID,
		Match:     match.DisplayName(),
		Bookmaker: bookmaker.Name,
		Odds:      odds,
		Stake:     stake,
		Status:    models.TicketPending,
		SentAt:    time.Now().UTC().Format(time.RFC3339),
	})

	message := RenderTemplate(template.Content, ticket)

	if err := s.notifier.Notify(shop, message); err != nil {
		s.logger.Error().Err(err).Str("shop", shop.Name).Msg("notify failed")
		return DispatchResult{}, err
	}

	if s.store != nil {
		if err := s.store.SaveTicket(ctx, ticket); err != nil {
			s.logger.Error().Err(err).Str("ticket", ticket.ID).Msg("persist ticket failed")
		}
	}

	s.logger.Info().
		Str("ticket", ticket.ID).
		Str("match", ticket.Match).
		Str("bookmaker", ticket.Bookmaker).
		Float64("stake", ticket.Stake).
		Msg("ticket dispatched")

	return DispatchResult{Ticket: ticket, Shop: shop, Message: message}, nil
}

// resolveTemplate 选择消息模板，未指定时取第一个 telegram 模板
func (s *DispatchService) resolveTemplate(id string) (models.MessageTemplate, error) {
	if id != "" {
		return s.repo.TemplateByID(id)
	}
	for _, t := range s.repo.Templates() {
		if t.Type == models.TemplateTelegram {
			return t, nil
		}
	}
	templates := s.repo.Templates()
	if len(templates) > 0 {
		return templates[0], nil
	}
	return models.MessageTemplate{}, ErrNotFound
}

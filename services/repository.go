package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"dispatch-service/models"
)

// Repository 内存数据仓库
//
// 持有固定种子集合，进程生命周期内为唯一数据源。
// 管理页面的增删改只作用于内存集合，重启后丢失。
// 显式构造后注入各服务，不使用包级单例。
type Repository struct {
	mu        sync.RWMutex
	matches   []models.Match
	odds      []models.BookmakerOdds
	tickets   []models.Ticket
	accounts  []models.Account
	shops     []models.Shop
	templates []models.MessageTemplate
	ticketSeq int
}

// NewRepository 创建空仓库
func NewRepository() *Repository {
	return &Repository{}
}

// NewSeedRepository 创建并加载种子数据的仓库
func NewSeedRepository() *Repository {
	tickets := SeedTickets()
	return &Repository{
		matches:   SeedMatches(),
		odds:      SeedBookmakerOdds(),
		tickets:   tickets,
		accounts:  SeedAccounts(),
		shops:     SeedShops(),
		templates: SeedTemplates(),
		ticketSeq: len(tickets),
	}
}

// Matches 返回全部比赛（按插入顺序）
func (r *Repository) Matches() []models.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Match, len(r.matches))
	copy(out, r.matches)
	return out
}

// MatchByID 按ID查找比赛
func (r *Repository) MatchByID(id string) (models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Match{}, ErrNotFound
}

// BookmakerOdds 返回全部博彩公司报价
func (r *Repository) BookmakerOdds() []models.BookmakerOdds {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.BookmakerOdds, len(r.odds))
	copy(out, r.odds)
	return out
}

// BookmakerByID 按ID查找博彩公司
func (r *Repository) BookmakerByID(id string) (models.BookmakerOdds, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.odds {
		if b.ID == id {
			return b, nil
		}
	}
	return models.BookmakerOdds{}, ErrNotFound
}

// UpdateStake 修改某博彩公司的注额（仅会话内存，不持久化）
func (r *Repository) UpdateStake(bookmakerID string, stake float64) error {
	if stake < 0 {
		return ErrValidation
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.odds {
		if r.odds[i].ID == bookmakerID {
			r.odds[i].Stake = stake
			return nil
		}
	}
	return ErrNotFound
}

// Tickets 返回全部票据（按插入顺序）
func (r *Repository) Tickets() []models.Ticket {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out
}

// AppendTicket 追加一条派票记录并分配 "TKT-NNN" 编号
func (r *Repository) AppendTicket(t models.Ticket) models.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticketSeq++
	t.ID = fmt.Sprintf("TKT-%03d", r.ticketSeq)
	r.tickets = append(r.tickets, t)
	return t
}

// Accounts 返回全部账号
func (r *Repository) Accounts() []models.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// AccountByEmail 按邮箱精确查找账号（区分大小写）
func (r *Repository) AccountByEmail(email string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Account{}, ErrNotFound
}

// AddAccount 新增账号，姓名和邮箱必填
func (r *Repository) AddAccount(name, email string, role models.Role) (models.Account, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return models.Account{}, ErrValidation
	}
	if role != models.RoleAdmin && role != models.RoleOperator {
		role = models.RoleOperator
	}
	a := models.Account{
		ID:        newID(),
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    models.AccountActive,
		LastLogin: "Never",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = append(r.accounts, a)
	return a, nil
}

// DeleteAccount 删除账号
func (r *Repository) DeleteAccount(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ToggleAccountStatus 切换账号的 active/inactive 状态
func (r *Repository) ToggleAccountStatus(id string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			if r.accounts[i].Status == models.AccountActive {
				r.accounts[i].Status = models.AccountInactive
			} else {
				r.accounts[i].Status = models.AccountActive
			}
			return r.accounts[i], nil
		}
	}
	return models.Account{}, ErrNotFound
}

// TouchLastLogin 登录成功后刷新最近登录时间
func (r *Repository) TouchLastLogin(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			r.accounts[i].LastLogin = time.Now().UTC().Format(time.RFC3339)
			return
		}
	}
}

// Shops 返回全部店铺
func (r *Repository) Shops() []models.Shop {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Shop, len(r.shops))
	copy(out, r.shops)
	return out
}

// ShopByID 按ID查找店铺
func (r *Repository) ShopByID(id string) (models.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shops {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Shop{}, ErrNotFound
}

// AddShop 新增店铺，名称和 Telegram Chat ID 必填
func (r *Repository) AddShop(name, telegramChatID, whatsappNumber string, defaultStake float64) (models.Shop, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(telegramChatID) == "" {
		return models.Shop{}, ErrValidation
	}
	s := models.Shop{
		ID:             newID(),
		Name:           name,
		TelegramChatID: telegramChatID,
		WhatsAppNumber: whatsappNumber,
		DefaultStake:   defaultStake,
		IsActive:       true,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops = append(r.shops, s)
	return s, nil
}

// DeleteShop 删除店铺
func (r *Repository) DeleteShop(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.shops {
		if s.ID == id {
			r.shops = append(r.shops[:i], r.shops[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ToggleShop 切换店铺启用状态
func (r *Repository) ToggleShop(id string) (models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shops {
		if r.shops[i].ID == id {
			r.shops[i].IsActive = !r.shops[i].IsActive
			return r.shops[i], nil
		}
	}
	return models.Shop{}, ErrNotFound
}

// Templates 返回全部消息模板
func (r *Repository) Templates() []models.MessageTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.MessageTemplate, len(r.templates))
	copy(out, r.templates)
	return out
}

// TemplateByID 按ID查找模板
func (r *Repository) TemplateByID(id string) (models.MessageTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return models.MessageTemplate{}, ErrNotFound
}

// AddTemplate 新增模板，名称和内容必填
func (r *Repository) AddTemplate(name, content string, typ models.TemplateType) (models.MessageTemplate, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(content) == "" {
		return models.MessageTemplate{}, ErrValidation
	}
	if typ != models.TemplateTelegram && typ != models.TemplateWhatsApp {
		typ = models.TemplateTelegram
	}
	t := models.MessageTemplate{
		ID:      newID(),
		Name:    name,
		Content: content,
		Type:    typ,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = append(r.templates, t)
	return t, nil
}

// DeleteTemplate 删除模板
func (r *Repository) DeleteTemplate(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.templates {
		if t.ID == id {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// newID 生成时间戳ID（前端原来用 Date.now()，这里取纳秒避免同毫秒撞号）
func newID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

package models

// TicketStatus 票据状态
type TicketStatus string

const (
	// TicketPending 已派发，等待结算
	TicketPending TicketStatus = "pending"

	// TicketWon 已结算，赢
	TicketWon TicketStatus = "won"

	// TicketLost 已结算，输
	TicketLost TicketStatus = "lost"

	// TicketCancelled 已取消（比赛延期等）
	TicketCancelled TicketStatus = "cancelled"
)

// AllTicketStatuses 全部票据状态（前端下拉框和徽章渲染依赖这四个字面值）
var AllTicketStatuses = []TicketStatus{TicketPending, TicketWon, TicketLost, TicketCancelled}

// Valid 检查是否为合法状态值
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketPending, TicketWon, TicketLost, TicketCancelled:
		return true
	}
	return false
}

// Settled 是否已出结果（won 或 lost）
func (s TicketStatus) Settled() bool {
	return s == TicketWon || s == TicketLost
}

// Ticket 派票记录
//
// Result 和 Profit 仅在已结算时存在，用指针区分"缺失"和零值：
// cancelled/pending 票据的 Profit 为 nil。
type Ticket struct {
	ID        string       `json:"id"`      // 展示格式 "TKT-NNN"
	MatchID   string       `json:"matchId"` // 弱引用，不强制外键完整性
	Match     string       `json:"match"`   // 冗余展示串 "Home vs Away"
	Bookmaker string       `json:"bookmaker"`
	Odds      float64      `json:"odds"`
	Stake     float64      `json:"stake"`
	Status    TicketStatus `json:"status"`
	SentAt    string       `json:"sentAt"` // ISO-8601
	Result    *string      `json:"result,omitempty"`
	Profit    *float64     `json:"profit,omitempty"`
}

// ProfitValue 返回利润，缺失按 0 计
func (t Ticket) ProfitValue() float64 {
	if t.Profit == nil {
		return 0
	}
	return *t.Profit
}

// PotentialWin 潜在赢利（派发时的赔付额）
func (t Ticket) PotentialWin() float64 {
	return t.Odds * t.Stake
}

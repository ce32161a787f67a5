package models

// Match 比赛信息，静态种子数据，创建后不可变
type Match struct {
	ID       string `json:"id"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	League   string `json:"league"`
	Date     string `json:"date"` // 日历日期 "2025-09-25"
	Time     string `json:"time"` // 当地开赛时间 "20:00"
}

// DisplayName 展示串 "Home vs Away"（派票时冗余写入 Ticket.Match）
func (m Match) DisplayName() string {
	return m.HomeTeam + " vs " + m.AwayTeam
}

// BookmakerOdds 博彩公司对当前选中比赛的报价
//
// Stake 可由操作员编辑，Available 表示是否允许派发；
// 两者都只存在于会话内存中，不做持久化。
type BookmakerOdds struct {
	ID        string  `json:"id"`   // 每个博彩公司固定
	Name      string  `json:"name"`
	Logo      string  `json:"logo"` // 前端图片路径
	Odds      float64 `json:"odds"` // 最低赔付倍数，正数
	Stake     float64 `json:"stake"`
	Available bool    `json:"available"`
}

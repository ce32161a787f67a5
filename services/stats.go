package services

import (
	"sort"
	"strings"

	"dispatch-service/models"
)

// 票据聚合函数。全部函数对空集合安全，返回 0 或空切片，不会报错。

// TicketsByStatus 过滤出指定状态的票据，保持原始插入顺序
func TicketsByStatus(tickets []models.Ticket, status models.TicketStatus) []models.Ticket {
	out := []models.Ticket{}
	for _, t := range tickets {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// TotalProfit 利润总和，缺失的利润按 0 计
func TotalProfit(tickets []models.Ticket) float64 {
	var total float64
	for _, t := range tickets {
		total += t.ProfitValue()
	}
	return total
}

// SuccessRate 胜率百分比 [0,100]
//
// 分母为已结算票据（won+lost），已结算为空时返回 0，不做除零。
func SuccessRate(tickets []models.Ticket) float64 {
	var won, completed int
	for _, t := range tickets {
		if t.Status.Settled() {
			completed++
			if t.Status == models.TicketWon {
				won++
			}
		}
	}
	if completed == 0 {
		return 0
	}
	return float64(won) / float64(completed) * 100
}

// TicketsByDateRange 按 sentAt 的日期部分做闭区间过滤
//
// sentAt 是 ISO-8601 时间戳，截取日期后直接做字典序比较。
func TicketsByDateRange(tickets []models.Ticket, startDate, endDate string) []models.Ticket {
	out := []models.Ticket{}
	for _, t := range tickets {
		date := t.SentAt
		if len(date) >= 10 {
			date = date[:10]
		}
		if date >= startDate && date <= endDate {
			out = append(out, t)
		}
	}
	return out
}

// FilterTickets 历史页面的票据过滤
//
// 两个过滤器独立、按交集组合：
// (a) 搜索词非空时保留比赛、博彩公司或票号包含该词的票据（不区分大小写，OR 语义）；
// (b) statusFilter 不为 "all" 时只保留该状态。
func FilterTickets(tickets []models.Ticket, searchQuery, statusFilter string) []models.Ticket {
	filtered := tickets

	if searchQuery != "" {
		q := strings.ToLower(searchQuery)
		matched := []models.Ticket{}
		for _, t := range filtered {
			if strings.Contains(strings.ToLower(t.Match), q) ||
				strings.Contains(strings.ToLower(t.Bookmaker), q) ||
				strings.Contains(strings.ToLower(t.ID), q) {
				matched = append(matched, t)
			}
		}
		filtered = matched
	}

	if statusFilter != "all" && statusFilter != "" {
		matched := []models.Ticket{}
		for _, t := range filtered {
			if t.Status == models.TicketStatus(statusFilter) {
				matched = append(matched, t)
			}
		}
		filtered = matched
	}

	if filtered == nil {
		filtered = []models.Ticket{}
	}
	return filtered
}

// HistorySummary 历史页面对当前过滤结果集的汇总指标
type HistorySummary struct {
	Total    int     `json:"total"`
	WinRate  float64 `json:"winRate"`  // 分母排除 pending 和 cancelled
	TotalPnL float64 `json:"totalPnl"` // 过滤集利润总和
}

// SummarizeTickets 对过滤后的票据集合重新计算汇总指标
func SummarizeTickets(tickets []models.Ticket) HistorySummary {
	return HistorySummary{
		Total:    len(tickets),
		WinRate:  SuccessRate(tickets),
		TotalPnL: TotalProfit(tickets),
	}
}

// DashboardStats 看板首页统计
type DashboardStats struct {
	TodayTickets int     `json:"todayTickets"`
	ActiveShops  int     `json:"activeShops"`
	SuccessRate  float64 `json:"successRate"`
	TotalProfit  float64 `json:"totalProfit"`
}

// BookmakerStats 分析页面按博彩公司的汇总
type BookmakerStats struct {
	Name        string  `json:"name"`
	Tickets     int     `json:"tickets"`
	SuccessRate float64 `json:"successRate"`
	Profit      float64 `json:"profit"`
}

// StatsService 统计服务，绑定仓库供 HTTP 层使用
type StatsService struct {
	repo *Repository
}

// NewStatsService 创建统计服务
func NewStatsService(repo *Repository) *StatsService {
	return &StatsService{repo: repo}
}

// Dashboard 计算看板首页统计
//
// 当日派票量 = pending + won + lost，不含 cancelled。
// 这个不对称是前端原有口径，保留不改。
func (s *StatsService) Dashboard() DashboardStats {
	tickets := s.repo.Tickets()

	today := len(TicketsByStatus(tickets, models.TicketPending)) +
		len(TicketsByStatus(tickets, models.TicketWon)) +
		len(TicketsByStatus(tickets, models.TicketLost))

	active := 0
	for _, shop := range s.repo.Shops() {
		if shop.IsActive {
			active++
		}
	}

	return DashboardStats{
		TodayTickets: today,
		ActiveShops:  active,
		SuccessRate:  SuccessRate(tickets),
		TotalProfit:  TotalProfit(tickets),
	}
}

// Bookmakers 按博彩公司汇总票数、胜率和盈亏，按票数降序
func (s *StatsService) Bookmakers() []BookmakerStats {
	byName := map[string][]models.Ticket{}
	order := []string{}
	for _, t := range s.repo.Tickets() {
		if _, ok := byName[t.Bookmaker]; !ok {
			order = append(order, t.Bookmaker)
		}
		byName[t.Bookmaker] = append(byName[t.Bookmaker], t)
	}

	out := make([]BookmakerStats, 0, len(order))
	for _, name := range order {
		group := byName[name]
		out = append(out, BookmakerStats{
			Name:        name,
			Tickets:     len(group),
			SuccessRate: SuccessRate(group),
			Profit:      TotalProfit(group),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Tickets > out[j].Tickets
	})
	return out
}

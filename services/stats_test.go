package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch-service/models"
)

func TestTicketsByStatus_Seed(t *testing.T) {
	tickets := SeedTickets()

	won := TicketsByStatus(tickets, models.TicketWon)
	require.Len(t, won, 8)

	wantIDs := []string{"TKT-001", "TKT-004", "TKT-006", "TKT-007", "TKT-011", "TKT-013", "TKT-014", "TKT-015"}
	for i, ticket := range won {
		assert.Equal(t, wantIDs[i], ticket.ID)
	}

	assert.Len(t, TicketsByStatus(tickets, models.TicketLost), 4)
	assert.Len(t, TicketsByStatus(tickets, models.TicketPending), 2)
	assert.Len(t, TicketsByStatus(tickets, models.TicketCancelled), 1)
}

func TestTicketsByStatus_Empty(t *testing.T) {
	got := TicketsByStatus(nil, models.TicketWon)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestTotalProfit_Seed(t *testing.T) {
	// 135 - 150 + 140 + 190 + 78 - 80 - 110 + 140 - 60 + 165.6 + 125.4 + 95.2
	got := TotalProfit(SeedTickets())
	assert.InDelta(t, 669.2, got, 1e-9)
}

func TestTotalProfit_MissingProfitCountsAsZero(t *testing.T) {
	tickets := []models.Ticket{
		{ID: "TKT-900", Status: models.TicketPending},
		{ID: "TKT-901", Status: models.TicketCancelled},
		{ID: "TKT-902", Status: models.TicketWon, Profit: ptr(50.0)},
	}
	assert.InDelta(t, 50.0, TotalProfit(tickets), 1e-9)
}

func TestTotalProfit_Empty(t *testing.T) {
	assert.Zero(t, TotalProfit(nil))
	assert.Zero(t, TotalProfit([]models.Ticket{}))
}

func TestSuccessRate_Seed(t *testing.T) {
	// 8 won / 12 settled
	got := SuccessRate(SeedTickets())
	assert.InDelta(t, 100.0*8.0/12.0, got, 1e-9)
}

func TestSuccessRate_NoSettledTickets(t *testing.T) {
	assert.Zero(t, SuccessRate(nil))

	onlyOpen := []models.Ticket{
		{ID: "TKT-900", Status: models.TicketPending},
		{ID: "TKT-901", Status: models.TicketCancelled},
	}
	assert.Zero(t, SuccessRate(onlyOpen))
}

func TestTicketsByDateRange(t *testing.T) {
	tickets := SeedTickets()

	got := TicketsByDateRange(tickets, "2025-09-24", "2025-09-24")
	require.Len(t, got, 4)
	for _, ticket := range got {
		assert.Equal(t, "2025-09-24", ticket.SentAt[:10])
	}

	// 闭区间：边界日期都包含
	got = TicketsByDateRange(tickets, "2025-09-20", "2025-09-28")
	assert.Len(t, got, 15)

	got = TicketsByDateRange(tickets, "2030-01-01", "2030-12-31")
	assert.Empty(t, got)
}

func TestFilterTickets_Identity(t *testing.T) {
	tickets := SeedTickets()

	got := FilterTickets(tickets, "", "all")
	assert.Equal(t, tickets, got)
}

func TestFilterTickets_Idempotent(t *testing.T) {
	tickets := SeedTickets()

	once := FilterTickets(tickets, "eurobet", "won")
	twice := FilterTickets(once, "eurobet", "won")
	assert.Equal(t, once, twice)
}

func TestFilterTickets_SearchAndStatusIntersect(t *testing.T) {
	tickets := SeedTickets()

	// "Eurobet" 大小写不敏感，与 won 状态做交集
	got := FilterTickets(tickets, "Eurobet", "won")
	require.Len(t, got, 2)
	assert.Equal(t, "TKT-001", got[0].ID)
	assert.Equal(t, "TKT-015", got[1].ID)

	// 过滤顺序不影响结果：先按状态再搜索等价
	byStatus := FilterTickets(tickets, "", "won")
	assert.Equal(t, got, FilterTickets(byStatus, "Eurobet", "all"))
}

func TestFilterTickets_MatchesIDAndMatchName(t *testing.T) {
	tickets := SeedTickets()

	byID := FilterTickets(tickets, "tkt-003", "all")
	require.Len(t, byID, 1)
	assert.Equal(t, "TKT-003", byID[0].ID)

	byMatch := FilterTickets(tickets, "real madrid", "all")
	assert.Len(t, byMatch, 3)
}

func TestFilterTickets_NoMatchReturnsEmptyNotNil(t *testing.T) {
	got := FilterTickets(SeedTickets(), "nonexistent-xyz", "all")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSummarizeTickets_FilteredSet(t *testing.T) {
	tickets := SeedTickets()

	// 汇总指标针对过滤后的集合，不是全量
	filtered := FilterTickets(tickets, "eurobet", "all")
	require.Len(t, filtered, 4)

	summary := SummarizeTickets(filtered)
	assert.Equal(t, 4, summary.Total)
	// Eurobet: won TKT-001(+135), TKT-015(+95.2); lost TKT-010(-110); cancelled TKT-005
	assert.InDelta(t, 135.0-110.0+95.2, summary.TotalPnL, 1e-9)
	// winRate 分母排除 cancelled: 2 won / 3 settled
	assert.InDelta(t, 100.0*2.0/3.0, summary.WinRate, 1e-9)
}

func TestSummarizeTickets_Empty(t *testing.T) {
	summary := SummarizeTickets(nil)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.WinRate)
	assert.Zero(t, summary.TotalPnL)
}

func TestStatsService_Dashboard(t *testing.T) {
	stats := NewStatsService(NewSeedRepository())

	got := stats.Dashboard()

	// 当日派票量不含 cancelled：2 pending + 8 won + 4 lost
	assert.Equal(t, 14, got.TodayTickets)
	assert.Equal(t, 2, got.ActiveShops)
	assert.InDelta(t, 100.0*8.0/12.0, got.SuccessRate, 1e-9)
	assert.InDelta(t, 669.2, got.TotalProfit, 1e-9)
}

func TestStatsService_Bookmakers(t *testing.T) {
	stats := NewStatsService(NewSeedRepository())

	got := stats.Bookmakers()
	require.NotEmpty(t, got)

	// Eurobet 票数最多（4），排第一
	assert.Equal(t, "Eurobet", got[0].Name)
	assert.Equal(t, 4, got[0].Tickets)
	assert.InDelta(t, 135.0-110.0+95.2, got[0].Profit, 1e-9)
	assert.InDelta(t, 100.0*2.0/3.0, got[0].SuccessRate, 1e-9)

	total := 0
	for _, b := range got {
		total += b.Tickets
	}
	assert.Equal(t, 15, total)
}

package services

import "dispatch-service/models"

// 种子数据：与看板前端原有的演示数据保持一致。
// 进程启动时加载一次，比赛和票据历史不再变动。

func ptr[T any](v T) *T { return &v }

// SeedMatches 比赛种子数据
func SeedMatches() []models.Match {
	return []models.Match{
		{ID: "1", HomeTeam: "Real Madrid", AwayTeam: "Barcelona", League: "La Liga", Date: "2025-09-25", Time: "20:00"},
		{ID: "2", HomeTeam: "Juventus", AwayTeam: "Inter Milan", League: "Serie A", Date: "2025-09-25", Time: "18:00"},
		{ID: "3", HomeTeam: "AC Milan", AwayTeam: "Napoli", League: "Serie A", Date: "2025-09-26", Time: "21:00"},
		{ID: "4", HomeTeam: "Manchester United", AwayTeam: "Liverpool", League: "Premier League", Date: "2025-09-26", Time: "16:30"},
		{ID: "5", HomeTeam: "Bayern Munich", AwayTeam: "Borussia Dortmund", League: "Bundesliga", Date: "2025-09-27", Time: "18:30"},
		{ID: "6", HomeTeam: "Paris Saint-Germain", AwayTeam: "Olympique Marseille", League: "Ligue 1", Date: "2025-09-27", Time: "20:45"},
		{ID: "7", HomeTeam: "Atalanta", AwayTeam: "AS Roma", League: "Serie A", Date: "2025-09-28", Time: "15:00"},
		{ID: "8", HomeTeam: "Chelsea", AwayTeam: "Arsenal", League: "Premier League", Date: "2025-09-28", Time: "17:30"},
	}
}

// SeedBookmakerOdds 博彩公司报价种子数据
func SeedBookmakerOdds() []models.BookmakerOdds {
	return []models.BookmakerOdds{
		{ID: "eurobet", Name: "Eurobet", Logo: "/eurobet-logo.jpg", Odds: 2.35, Stake: 100, Available: true},
		{ID: "snai", Name: "Snai", Logo: "/snai-logo.jpg", Odds: 2.32, Stake: 100, Available: true},
		{ID: "sisal", Name: "Sisal", Logo: "/sisal-logo.jpg", Odds: 2.30, Stake: 100, Available: true},
		{ID: "goldbet", Name: "Goldbet", Logo: "/goldbet-logo.jpg", Odds: 2.27, Stake: 100, Available: false},
		{ID: "lottomatica", Name: "Lottomatica", Logo: "/lottomatica-logo.jpg", Odds: 2.40, Stake: 100, Available: true},
		{ID: "betflag", Name: "Betflag", Logo: "/placeholder-logo.png", Odds: 2.38, Stake: 100, Available: true},
		{ID: "planetwin365", Name: "PlanetWin365", Logo: "/placeholder-logo.png", Odds: 2.33, Stake: 100, Available: true},
		{ID: "bwin", Name: "Bwin", Logo: "/placeholder-logo.png", Odds: 2.29, Stake: 100, Available: false},
	}
}

// SeedTickets 派票历史种子数据
func SeedTickets() []models.Ticket {
	return []models.Ticket{
		{ID: "TKT-001", MatchID: "1", Match: "Real Madrid vs Barcelona", Bookmaker: "Eurobet", Odds: 2.35, Stake: 100,
			Status: models.TicketWon, SentAt: "2025-09-24T14:30:00Z", Result: ptr("Real Madrid Win"), Profit: ptr(135.0)},
		{ID: "TKT-002", MatchID: "2", Match: "Juventus vs Inter Milan", Bookmaker: "Snai", Odds: 1.85, Stake: 150,
			Status: models.TicketLost, SentAt: "2025-09-24T16:15:00Z", Result: ptr("Inter Milan Win"), Profit: ptr(-150.0)},
		{ID: "TKT-003", MatchID: "3", Match: "AC Milan vs Napoli", Bookmaker: "Sisal", Odds: 2.10, Stake: 75,
			Status: models.TicketPending, SentAt: "2025-09-24T18:45:00Z"},
		{ID: "TKT-004", MatchID: "1", Match: "Real Madrid vs Barcelona", Bookmaker: "Lottomatica", Odds: 2.40, Stake: 100,
			Status: models.TicketWon, SentAt: "2025-09-24T14:32:00Z", Result: ptr("Real Madrid Win"), Profit: ptr(140.0)},
		{ID: "TKT-005", MatchID: "4", Match: "Manchester United vs Liverpool", Bookmaker: "Eurobet", Odds: 3.20, Stake: 50,
			Status: models.TicketCancelled, SentAt: "2025-09-23T20:10:00Z", Result: ptr("Match Postponed")},
		{ID: "TKT-006", MatchID: "5", Match: "Bayern Munich vs Borussia Dortmund", Bookmaker: "Snai", Odds: 1.95, Stake: 200,
			Status: models.TicketWon, SentAt: "2025-09-23T19:20:00Z", Result: ptr("Bayern Munich Win"), Profit: ptr(190.0)},
		{ID: "TKT-007", MatchID: "6", Match: "Paris Saint-Germain vs Olympique Marseille", Bookmaker: "Sisal", Odds: 1.65, Stake: 120,
			Status: models.TicketWon, SentAt: "2025-09-23T17:45:00Z", Result: ptr("PSG Win"), Profit: ptr(78.0)},
		{ID: "TKT-008", MatchID: "7", Match: "Atalanta vs AS Roma", Bookmaker: "Goldbet", Odds: 2.80, Stake: 80,
			Status: models.TicketLost, SentAt: "2025-09-22T16:30:00Z", Result: ptr("AS Roma Win"), Profit: ptr(-80.0)},
		{ID: "TKT-009", MatchID: "8", Match: "Chelsea vs Arsenal", Bookmaker: "Lottomatica", Odds: 2.15, Stake: 90,
			Status: models.TicketPending, SentAt: "2025-09-22T15:15:00Z"},
		{ID: "TKT-010", MatchID: "2", Match: "Juventus vs Inter Milan", Bookmaker: "Eurobet", Odds: 1.88, Stake: 110,
			Status: models.TicketLost, SentAt: "2025-09-22T14:00:00Z", Result: ptr("Inter Milan Win"), Profit: ptr(-110.0)},
		{ID: "TKT-011", MatchID: "3", Match: "AC Milan vs Napoli", Bookmaker: "Betflag", Odds: 2.12, Stake: 125,
			Status: models.TicketWon, SentAt: "2025-09-21T19:30:00Z", Result: ptr("AC Milan Win"), Profit: ptr(140.0)},
		{ID: "TKT-012", MatchID: "4", Match: "Manchester United vs Liverpool", Bookmaker: "PlanetWin365", Odds: 3.15, Stake: 60,
			Status: models.TicketLost, SentAt: "2025-09-21T16:45:00Z", Result: ptr("Liverpool Win"), Profit: ptr(-60.0)},
		{ID: "TKT-013", MatchID: "5", Match: "Bayern Munich vs Borussia Dortmund", Bookmaker: "Sisal", Odds: 1.92, Stake: 180,
			Status: models.TicketWon, SentAt: "2025-09-21T14:20:00Z", Result: ptr("Bayern Munich Win"), Profit: ptr(165.6)},
		{ID: "TKT-014", MatchID: "1", Match: "Real Madrid vs Barcelona", Bookmaker: "Snai", Odds: 2.32, Stake: 95,
			Status: models.TicketWon, SentAt: "2025-09-20T18:15:00Z", Result: ptr("Real Madrid Win"), Profit: ptr(125.4)},
		{ID: "TKT-015", MatchID: "6", Match: "Paris Saint-Germain vs Olympique Marseille", Bookmaker: "Eurobet", Odds: 1.68, Stake: 140,
			Status: models.TicketWon, SentAt: "2025-09-20T15:30:00Z", Result: ptr("PSG Win"), Profit: ptr(95.2)},
	}
}

// SeedAccounts 账号种子数据（前两条为基准登录账号）
func SeedAccounts() []models.Account {
	return []models.Account{
		{ID: "1", Name: "Admin User", Email: "admin@bettingdispatch.com", Role: models.RoleAdmin,
			Status: models.AccountActive, LastLogin: "2025-09-24T10:30:00Z", CreatedAt: "2025-01-15T09:00:00Z"},
		{ID: "2", Name: "Operator User", Email: "operator@bettingdispatch.com", Role: models.RoleOperator,
			Status: models.AccountActive, LastLogin: "2025-09-24T14:15:00Z", CreatedAt: "2025-02-01T11:30:00Z"},
		{ID: "3", Name: "John Smith", Email: "john.smith@bettingdispatch.com", Role: models.RoleOperator,
			Status: models.AccountActive, LastLogin: "2025-09-23T16:45:00Z", CreatedAt: "2025-03-10T14:20:00Z"},
		{ID: "4", Name: "Sarah Johnson", Email: "sarah.johnson@bettingdispatch.com", Role: models.RoleOperator,
			Status: models.AccountInactive, LastLogin: "2025-09-20T09:30:00Z", CreatedAt: "2025-04-05T10:15:00Z"},
	}
}

// SeedShops 店铺种子数据
func SeedShops() []models.Shop {
	return []models.Shop{
		{ID: "1", Name: "Shop Milano Centro", TelegramChatID: "@shop_milano_centro", WhatsAppNumber: "+39 123 456 7890", DefaultStake: 100, IsActive: true},
		{ID: "2", Name: "Shop Roma Termini", TelegramChatID: "@shop_roma_termini", WhatsAppNumber: "+39 123 456 7891", DefaultStake: 150, IsActive: true},
		{ID: "3", Name: "Shop Napoli Centro", TelegramChatID: "@shop_napoli_centro", WhatsAppNumber: "+39 123 456 7892", DefaultStake: 75, IsActive: false},
	}
}

// SeedTemplates 消息模板种子数据
func SeedTemplates() []models.MessageTemplate {
	return []models.MessageTemplate{
		{ID: "1", Name: "Standard Ticket", Type: models.TemplateTelegram,
			Content: "🎯 New Ticket\n\nMatch: {match}\nOdds: {odds}\nStake: €{stake}\nPotential Win: €{potential_win}\n\nTicket ID: {ticket_id}"},
		{ID: "2", Name: "WhatsApp Ticket", Type: models.TemplateWhatsApp,
			Content: "New betting ticket:\n\n📊 Match: {match}\n💰 Odds: {odds}\n💵 Stake: €{stake}\n🎯 Potential: €{potential_win}\n\nID: {ticket_id}"},
	}
}

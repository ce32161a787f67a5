package services

import (
	"context"
	"database/sql"

	"dispatch-service/models"
)

// TicketStore 票据的数据库存档
//
// 可选的持久化层：配置了 DATABASE_URL 时派票会同步落库。
// 内存仓库始终是聚合计算的数据源，这里只做留档。
type TicketStore struct {
	db *sql.DB
}

// NewTicketStore 创建票据存档
func NewTicketStore(db *sql.DB) *TicketStore {
	return &TicketStore{db: db}
}

// SaveTicket 保存一条派票记录
func (s *TicketStore) SaveTicket(ctx context.Context, t models.Ticket) error {
	query := `
		INSERT INTO tickets (id, match_id, match_name, bookmaker, odds, stake, status, sent_at, result, profit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET status = $7, result = $9, profit = $10
	`

	var result sql.NullString
	if t.Result != nil {
		result = sql.NullString{String: *t.Result, Valid: true}
	}
	var profit sql.NullFloat64
	if t.Profit != nil {
		profit = sql.NullFloat64{Float64: *t.Profit, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		t.ID, t.MatchID, t.Match, t.Bookmaker, t.Odds, t.Stake, string(t.Status), t.SentAt, result, profit)
	return err
}

// LoadTickets 按派发时间顺序读取全部存档票据
func (s *TicketStore) LoadTickets(ctx context.Context) ([]models.Ticket, error) {
	query := `
		SELECT id, match_id, match_name, bookmaker, odds, stake, status, sent_at, result, profit
		FROM tickets
		ORDER BY sent_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		var status string
		var result sql.NullString
		var profit sql.NullFloat64

		if err := rows.Scan(&t.ID, &t.MatchID, &t.Match, &t.Bookmaker, &t.Odds, &t.Stake,
			&status, &t.SentAt, &result, &profit); err != nil {
			return nil, err
		}

		t.Status = models.TicketStatus(status)
		if result.Valid {
			t.Result = &result.String
		}
		if profit.Valid {
			t.Profit = &profit.Float64
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

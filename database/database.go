package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Connect 连接到数据库
func Connect(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// 测试连接
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// 设置连接池
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// Migrate 运行数据库迁移
func Migrate(db *sql.DB) error {
	migrations := []string{
		// 派票存档表
		`CREATE TABLE IF NOT EXISTS tickets (
			id VARCHAR(20) PRIMARY KEY,
			match_id VARCHAR(50) NOT NULL,
			match_name VARCHAR(200) NOT NULL,
			bookmaker VARCHAR(100) NOT NULL,
			odds NUMERIC(8,3) NOT NULL,
			stake NUMERIC(12,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			sent_at VARCHAR(30) NOT NULL,
			result VARCHAR(200),
			profit NUMERIC(12,2),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tickets_status ON tickets(status)`,
		`CREATE INDEX IF NOT EXISTS idx_tickets_match_id ON tickets(match_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tickets_sent_at ON tickets(sent_at)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

//go:build sqlite

package recorder

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"spatial-pd/internal/sims/dilemma"
)

type sqliteSink struct {
	db *sql.DB
}

func newSQLiteSink(path string) (Sink, error) {
	if path == "" {
		return nil, fmt.Errorf("recorder: sqlite sink requires a database path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("recorder: open %s: %w", path, err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("recorder: ping %s: %w", path, err)
	}
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS rounds (
			round INTEGER PRIMARY KEY,
			total_agents INTEGER NOT NULL,
			cooperators INTEGER NOT NULL,
			defectors INTEGER NOT NULL,
			cooperation_rate REAL NOT NULL,
			average_score REAL NOT NULL,
			clustering_cooperators REAL NOT NULL,
			average_neighbors REAL NOT NULL,
			score_variance REAL NOT NULL
		)
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("recorder: create table: %w", err)
	}
	return &sqliteSink{db: db}, nil
}

func (s *sqliteSink) WriteRound(m dilemma.Metrics) error {
	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO rounds (
			round, total_agents, cooperators, defectors,
			cooperation_rate, average_score, clustering_cooperators,
			average_neighbors, score_variance
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(round) DO UPDATE SET
			total_agents = excluded.total_agents,
			cooperators = excluded.cooperators,
			defectors = excluded.defectors,
			cooperation_rate = excluded.cooperation_rate,
			average_score = excluded.average_score,
			clustering_cooperators = excluded.clustering_cooperators,
			average_neighbors = excluded.average_neighbors,
			score_variance = excluded.score_variance
	`, m.Round, m.TotalAgents, m.Cooperators, m.Defectors,
		m.CooperationRate, m.AverageScore, m.ClusteringCooperators,
		m.AverageNeighbors, m.ScoreVariance)
	if err != nil {
		return fmt.Errorf("recorder: insert round %d: %w", m.Round, err)
	}
	return nil
}

func (s *sqliteSink) Close() error {
	return s.db.Close()
}

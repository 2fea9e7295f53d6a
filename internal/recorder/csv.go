package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"spatial-pd/internal/sims/dilemma"
)

var csvHeader = []string{
	"round",
	"total_agents",
	"cooperators",
	"defectors",
	"cooperation_rate",
	"average_score",
	"clustering_cooperators",
	"average_neighbors",
	"score_variance",
}

type csvSink struct {
	f *os.File
	w *csv.Writer
}

func newCSVSink(path string) (*csvSink, error) {
	if path == "" {
		return nil, fmt.Errorf("recorder: csv sink requires an output path")
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("recorder: create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("recorder: write header: %w", err)
	}
	return &csvSink{f: f, w: w}, nil
}

func (s *csvSink) WriteRound(m dilemma.Metrics) error {
	row := []string{
		strconv.Itoa(m.Round),
		strconv.Itoa(m.TotalAgents),
		strconv.Itoa(m.Cooperators),
		strconv.Itoa(m.Defectors),
		strconv.FormatFloat(m.CooperationRate, 'f', -1, 64),
		strconv.FormatFloat(m.AverageScore, 'f', -1, 64),
		strconv.FormatFloat(m.ClusteringCooperators, 'f', -1, 64),
		strconv.FormatFloat(m.AverageNeighbors, 'f', -1, 64),
		strconv.FormatFloat(m.ScoreVariance, 'f', -1, 64),
	}
	if err := s.w.Write(row); err != nil {
		return fmt.Errorf("recorder: write round %d: %w", m.Round, err)
	}
	return nil
}

func (s *csvSink) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		_ = s.f.Close()
		return err
	}
	return s.f.Close()
}

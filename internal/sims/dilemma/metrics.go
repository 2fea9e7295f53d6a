package dilemma

// Metrics holds the population statistics computed once per completed round
// from the committed agent states. All ratios are 0 for an empty population.
type Metrics struct {
	Round       int     `json:"round"`
	TotalAgents int     `json:"total_agents"`
	Cooperators int     `json:"cooperators"`
	Defectors   int     `json:"defectors"`

	CooperationRate       float64 `json:"cooperation_rate"`
	AverageScore          float64 `json:"average_score"`
	ClusteringCooperators float64 `json:"clustering_cooperators"`
	AverageNeighbors      float64 `json:"average_neighbors"`
	ScoreVariance         float64 `json:"score_variance"`
}

// Metrics returns the statistics for the most recently completed round.
func (w *World) Metrics() Metrics { return w.metrics }

// CooperationRate returns the cooperator fraction of the population.
func (w *World) CooperationRate() float64 { return w.metrics.CooperationRate }

// AverageScore returns the mean per-round score across all agents.
func (w *World) AverageScore() float64 { return w.metrics.AverageScore }

// TotalAgents returns the number of occupied cells.
func (w *World) TotalAgents() int { return w.metrics.TotalAgents }

// CooperatorsCount returns the number of agents currently cooperating.
func (w *World) CooperatorsCount() int { return w.metrics.Cooperators }

// DefectorsCount returns the number of agents currently defecting.
func (w *World) DefectorsCount() int { return w.metrics.Defectors }

// ClusteringCooperators returns, averaged over cooperators, the fraction of
// each cooperator's occupied neighbors that also cooperate.
func (w *World) ClusteringCooperators() float64 { return w.metrics.ClusteringCooperators }

func (w *World) collectMetrics() Metrics {
	m := Metrics{Round: w.round, TotalAgents: len(w.occupiedIdx)}
	if m.TotalAgents == 0 {
		return m
	}

	var scoreSum float64
	var neighborSum int
	var clusteringSum float64
	for _, idx := range w.occupiedIdx {
		if w.strategy[idx] == Cooperate {
			m.Cooperators++
		}
		scoreSum += w.score[idx]

		x := idx % w.w
		y := idx / w.w
		occ, coop := 0, 0
		for _, n := range w.candidateNeighbors(x, y) {
			if !w.occupied[n] {
				continue
			}
			occ++
			if w.strategy[n] == Cooperate {
				coop++
			}
		}
		neighborSum += occ
		if w.strategy[idx] == Cooperate && occ > 0 {
			clusteringSum += float64(coop) / float64(occ)
		}
	}
	m.Defectors = m.TotalAgents - m.Cooperators

	total := float64(m.TotalAgents)
	m.CooperationRate = float64(m.Cooperators) / total
	m.AverageScore = scoreSum / total
	m.AverageNeighbors = float64(neighborSum) / total
	if m.Cooperators > 0 {
		m.ClusteringCooperators = clusteringSum / float64(m.Cooperators)
	}

	var varSum float64
	for _, idx := range w.occupiedIdx {
		d := w.score[idx] - m.AverageScore
		varSum += d * d
	}
	m.ScoreVariance = varSum / total

	return m
}

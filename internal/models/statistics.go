package models

// PlayerStatistics summarizes performance across a set of scorecards. It is
// recomputed from scratch on every call and has no identity or persistence
// of its own. Incomplete rounds count toward TotalRounds but are excluded
// from every scoring figure.
type PlayerStatistics struct {
	TotalRounds     int      `json:"total_rounds"`
	CompletedRounds int      `json:"completed_rounds"`
	AverageScore    *float64 `json:"average_score,omitempty"`
	BestScore       *int     `json:"best_score,omitempty"`
	WorstScore      *int     `json:"worst_score,omitempty"`
	TotalUnderPar   int      `json:"total_under_par"`
	TotalOverPar    int      `json:"total_over_par"`
	Eagles          int      `json:"eagles"`
	Birdies         int      `json:"birdies"`
	Pars            int      `json:"pars"`
	Bogeys          int      `json:"bogeys"`
	DoubleBogeys    int      `json:"double_bogeys"`
}

// StatisticsFromScorecards aggregates a snapshot of scorecards. The input is
// never mutated and the result depends only on the set of cards, not on
// their order. TotalUnderPar stays at or below zero, TotalOverPar at or
// above; even-par rounds contribute to neither.
func StatisticsFromScorecards(scorecards []*Scorecard) PlayerStatistics {
	stats := PlayerStatistics{TotalRounds: len(scorecards)}

	var completed []*Scorecard
	for _, sc := range scorecards {
		if sc.IsComplete() {
			completed = append(completed, sc)
		}
	}
	stats.CompletedRounds = len(completed)

	var sum float64
	for _, sc := range completed {
		total, _ := sc.TotalStrokes()
		sum += float64(total)

		if stats.BestScore == nil || total < *stats.BestScore {
			best := total
			stats.BestScore = &best
		}
		if stats.WorstScore == nil || total > *stats.WorstScore {
			worst := total
			stats.WorstScore = &worst
		}

		relative, _ := sc.ScoreRelativeToPar()
		switch {
		case relative < 0:
			stats.TotalUnderPar += relative
		case relative > 0:
			stats.TotalOverPar += relative
		}

		for hole := 1; hole <= sc.MaxHoles(); hole++ {
			strokes, ok := sc.Score(hole)
			if !ok {
				continue
			}
			par, ok := sc.Par(hole)
			if !ok {
				continue
			}
			switch diff := strokes - par; {
			case diff <= -2:
				stats.Eagles++
			case diff == -1:
				stats.Birdies++
			case diff == 0:
				stats.Pars++
			case diff == 1:
				stats.Bogeys++
			default:
				stats.DoubleBogeys++
			}
		}
	}

	if stats.CompletedRounds > 0 {
		avg := sum / float64(stats.CompletedRounds)
		stats.AverageScore = &avg
	}
	return stats
}

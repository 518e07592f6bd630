package engine

import "othello/experiments/metrics"

type Engine interface {
	// Run plays a game till neither side can move or a max number of turns is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

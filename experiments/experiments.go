package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Options controls where and how long experiments run.
type Options struct {
	OutputDir string
	NumGames  int // per match-up
}

var baseline = metrics.AgentConfig{ID: 0, Kind: "random", Seed: 1}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "search", Depth: 1, Evaluation: "positional"},
	{ID: 2, Kind: "search", Depth: 2, Evaluation: "positional"},
	{ID: 3, Kind: "search", Depth: 3, Evaluation: "positional"},
}

var weightConfigs = []metrics.AgentConfig{
	{ID: 4, Kind: "search", Depth: 2, Evaluation: "positional"},
	{ID: 5, Kind: "search", Depth: 2, Evaluation: "unified"},
	{ID: 6, Kind: "search", Depth: 2, Evaluation: "count"},
}

// RunDepthExperiment pits every search depth against the random baseline, on both colors.
func RunDepthExperiment(opts Options) error {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline}, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment("depth", opts, append(depthConfigs, baseline), matchUps)
}

// RunWeightsExperiment compares the legacy asymmetric weights with unified
// weights and plain stone counting.
func RunWeightsExperiment(opts Options) error {
	legacy := weightConfigs[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range weightConfigs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{legacy, config}, []metrics.AgentConfig{config, legacy})
	}
	return runExperiment("weights", opts, weightConfigs, matchUps)
}

func runExperiment(name string, opts Options, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between black=%+v and white=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < opts.NumGames; i++ {
			// Vary random agents between games of the same match-up
			winner, gameMetric, moveMetrics, err := runGame(reseed(config1, i), reseed(config2, i))
			if err != nil {
				return err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q (%d-%d)",
				mi+1, len(matchUps), i+1, winner, gameMetric.BlackStones, gameMetric.WhiteStones)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(opts.OutputDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}

func reseed(config metrics.AgentConfig, i int) metrics.AgentConfig {
	config.Seed += uint64(i)
	return config
}

func runGame(black, white metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	blackAgent, err := createAgent(black)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	whiteAgent, err := createAgent(white)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(blackAgent, whiteAgent)
	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(config.Seed), nil
	case "search":
		evaluate, err := game.EvaluationByName(config.Evaluation)
		if err != nil {
			return nil, err
		}
		if config.Depth < 1 {
			return nil, fmt.Errorf("agent %d: %w", config.ID, searcher.ErrInvalidDepth)
		}
		s := searcher.NewSearcher(
			searcher.WithDepth(config.Depth),
			searcher.WithEvaluationFn(evaluate),
			searcher.WithMetrics(),
		)
		return agent.NewSearchAgent(s), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

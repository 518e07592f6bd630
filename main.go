package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"othello/communication"
	"othello/communication/server"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play (referee protocol on stdin/stdout), match (experiments), serve (HTTP agent) or remote (game between two agent servers)")
	side := flag.String("side", "black", "Side to play in play mode")
	depth := flag.Int("depth", meta.DEFAULT_DEPTH, "Own-move/reply pairs searched per turn")
	evaluation := flag.String("eval", "positional", "Evaluation: positional, unified or count")
	experiment := flag.String("experiment", "depth", "Experiment to run in match mode: depth or weights")
	games := flag.Int("games", meta.NUM_GAMES, "Games per match-up in match mode")
	out := flag.String("out", "experiments", "Directory for experiment results")
	addr := flag.String("addr", ":8080", "Listen address in serve mode")
	blackURL := flag.String("black", "http://localhost:8080", "Black's agent server in remote mode")
	whiteURL := flag.String("white", "http://localhost:8081", "White's agent server in remote mode")
	verbose := flag.Bool("verbose", false, "Log every search decision")
	flag.Parse()

	// stdout belongs to the referee
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *mode == "remote" {
		winner, gameMetric, _ := engine.RemoteEngine(*blackURL, *whiteURL).Run()
		log.Info().Msgf("winner: %q, black %d, white %d", winner, gameMetric.BlackStones, gameMetric.WhiteStones)
		return
	}

	if err := run(*mode, *side, *depth, *evaluation, *experiment, *games, *out, *addr, *verbose); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func run(mode, sideName string, depth int, evaluation, experiment string, games int, out, addr string, verbose bool) error {
	if depth < 1 {
		return fmt.Errorf("-depth %d: %w", depth, searcher.ErrInvalidDepth)
	}
	evaluate, err := game.EvaluationByName(evaluation)
	if err != nil {
		return err
	}

	switch mode {
	case "play":
		side, err := game.ParseSide(sideName)
		if err != nil {
			return err
		}
		options := []searcher.Option{searcher.WithEvaluationFn(evaluate)}
		if verbose {
			options = append(options, searcher.WithObserver(searcher.NewLogObserver(log.Logger)))
		}
		p := player.NewPlayer(side, player.WithDepth(depth), player.WithSearcherOptions(options...))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return communication.Serve(ctx, os.Stdin, os.Stdout, p)

	case "match":
		opts := experiments.Options{OutputDir: out, NumGames: games}
		switch experiment {
		case "depth":
			return experiments.RunDepthExperiment(opts)
		case "weights":
			return experiments.RunWeightsExperiment(opts)
		default:
			return fmt.Errorf("unknown experiment %q", experiment)
		}

	case "serve":
		return server.NewAgentServer(depth, evaluate).ListenAndServe(addr)

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

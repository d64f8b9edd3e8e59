package application

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, stdin io.Reader, stdout io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			// a second signal gets the default behaviour, even while blocked on console input
			signal.Stop(sigs)
			cancel()
		case <-ctx.Done():
		}
	}()

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	input := bufio.NewReader(stdin)
	deps := service.Deps{
		Logger: logger,
		Input:  input,
		Output: stdout,
		Random: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}

	oPlayer, err := service.NewPlayer(conf.Players.O, entity.PlayerO, deps)
	if err != nil {
		return fmt.Errorf("could not create player O: %w", err)
	}

	xPlayer, err := service.NewPlayer(conf.Players.X, entity.PlayerX, deps)
	if err != nil {
		return fmt.Errorf("could not create player X: %w", err)
	}

	log.Info("Starting match",
		"player_o", conf.Players.O, "player_x", conf.Players.X, "rounds", conf.Rounds, "seed", seed)

	gameController := tictactoe.NewGameController(logger, stdout, oPlayer, xPlayer)
	matchUseCase := usecase.NewMatchUseCase(logger, gameController)

	tally, err := matchUseCase.Play(ctx, conf.Rounds)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if _, err = fmt.Fprintf(stdout, "\no_wins: %d, x_wins: %d, ties: %d\n", tally.OWins, tally.XWins, tally.Ties); err != nil {
		return fmt.Errorf("could not write results: %w", err)
	}

	if !conf.SkipPause {
		waitForExit(input, stdout)
	}

	return nil
}

// waitForExit - blocks until one more number is typed. Any read error ends the wait too.
func waitForExit(input *bufio.Reader, stdout io.Writer) {
	_, _ = fmt.Fprint(stdout, "Enter any number to exit: ")

	var n int
	_, _ = fmt.Fscan(input, &n)
}

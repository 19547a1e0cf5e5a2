// cmd/stgsim/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"go-stg-engine/internal/app"
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/state"
	"go-stg-engine/internal/system"
)

func main() {
	packFlag := flag.String("pack", "Collision Lab", "builtin pack name or path to a pack .json file")
	ticks := flag.Int("ticks", 3600, "ticks to simulate per session")
	sessions := flag.Int("sessions", 1, "independent sessions to run in parallel")
	seed := flag.Int64("seed", 0, "base seed, 0 = from clock; session i uses seed+i")
	verbose := flag.Bool("v", false, "debug logging")
	list := flag.Bool("list", false, "list builtin packs and exit")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	builtin, err := defs.BuiltinPacks()
	if err != nil {
		slog.Error("load builtin packs", "err", err)
		os.Exit(1)
	}
	if *list {
		for _, name := range defs.PackNames(builtin) {
			fmt.Printf("%s\t%s\n", name, builtin[name].Description)
		}
		return
	}

	pack, err := resolvePack(*packFlag, builtin)
	if err != nil {
		slog.Error("load pack", "pack", *packFlag, "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		mu      sync.Mutex
		hiscore int
	)
	eg, ctx := errgroup.WithContext(ctx)
	for i := range *sessions {
		eg.Go(func() error {
			var s int64
			if *seed != 0 {
				s = *seed + int64(i)
			}
			score, err := runSession(ctx, pack, *ticks, s, logger.With("worker", i))
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			mu.Lock()
			hiscore = max(hiscore, score)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}
	slog.Info("all sessions finished", "sessions", *sessions, "hiscore", hiscore)
}

func resolvePack(name string, builtin map[string]*defs.Pack) (*defs.Pack, error) {
	if strings.HasSuffix(name, ".json") {
		return defs.LoadPack(name)
	}
	if p, ok := builtin[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("pack %q (have %s): %w", name, strings.Join(defs.PackNames(builtin), ", "), defs.ErrUnknownArchetype)
}

func runSession(ctx context.Context, pack *defs.Pack, ticks int, seed int64, logger *slog.Logger) (int, error) {
	g, err := app.NewGame(pack, app.WithLogger(logger), app.WithSeed(seed))
	if err != nil {
		return 0, err
	}
	sm := state.NewStateMachine()
	play := state.NewPlayState(sm, g, autopilot)
	sm.SetState(play)

	for range ticks {
		if _, over := sm.Current().(*state.GameOverState); over {
			break
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		sm.Update()
	}

	sum := g.Summary()
	logger.Info("session finished",
		"session", g.ID.String(),
		"ticks", play.Ticks(),
		"over", g.Over(),
		"score", g.Stats.Score,
		"lives", g.Stats.Lives,
		"kills", sum.Kills,
		"bosses", sum.BossesDestroyed,
		"cells", sum.CellsCleared,
		"items", sum.ItemsCollected,
		"waves", sum.Waves,
	)
	return g.Stats.HiScore, nil
}

// autopilot weaves across the lane with the trigger held and bombs once
// every 600 ticks.
func autopilot(tick int) system.Input {
	return system.Input{
		X:    math.Sin(float64(tick) * 0.02),
		Slow: (tick/100)%4 == 3,
		Shot: true,
		Bomb: tick%600 == 599,
	}
}

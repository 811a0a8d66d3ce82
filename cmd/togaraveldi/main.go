// Command togaraveldi runs the fishing-dynasty simulation headless:
// AI policies drive every seat, the game autosaves each simulated year,
// and the final standings print when the run ends.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/talgya/togaraveldi/internal/ai"
	"github.com/talgya/togaraveldi/internal/config"
	"github.com/talgya/togaraveldi/internal/engine"
	"github.com/talgya/togaraveldi/internal/persistence"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	turns := flag.Int("turns", 1452, "turns to simulate (months; 1452 reaches 2021 from 1900)")
	resume := flag.Bool("resume", false, "resume from the saved game instead of starting fresh")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	// .env is optional; the environment wins either way.
	godotenv.Load()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	db, err := persistence.Open(cfg.Database)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.Database)

	var game *engine.Game
	if *resume {
		game, err = db.LoadGame()
		if err != nil {
			slog.Error("resume failed", "error", err)
			os.Exit(1)
		}
	} else {
		game = engine.NewGame(cfg.Game, cfg.Catalog(), nil)
		slog.Info("new game",
			"seed", cfg.Game.Seed,
			"start", fmt.Sprintf("%d-%02d", game.Year, game.Month),
			"companies", len(game.Companies))
	}

	for i := 0; i < *turns && len(game.Companies) > 0; i++ {
		report := game.AdvanceTurn(ai.Provider)

		for _, e := range report.Effects {
			if e.Category == "history" || e.Category == "removal" {
				slog.Info(e.Text, "year", e.Year, "month", e.Month)
			}
		}
		if err := db.AppendEffects(report.Effects); err != nil {
			slog.Error("effect log write failed", "error", err)
		}

		// Autosave at each year boundary.
		if game.Month == 1 {
			if err := db.SaveGame(game); err != nil {
				slog.Error("autosave failed", "error", err)
			}
		}
	}

	if err := db.SaveGame(game); err != nil {
		slog.Error("final save failed", "error", err)
	}

	fmt.Printf("\n%d-%02d, final standings after %d turns:\n", game.Year, game.Month, game.Turn)
	for i, s := range game.Standings() {
		controller := s.Controller
		if controller == "" {
			controller = "Player"
		}
		fmt.Printf("  %d. %-28s %12s kr net worth  (gen %d, rep %d, fame %d, %s)\n",
			i+1, s.Name, humanize.Comma(s.NetWorth), s.Generation, s.Reputation, s.Fame, controller)
	}
	if len(game.Companies) == 0 {
		fmt.Println("  Every dynasty has fallen. The harbor stands silent.")
	}
}

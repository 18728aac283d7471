package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/prasadg/medprep/internal/app"
	"github.com/prasadg/medprep/internal/config"
	"github.com/prasadg/medprep/internal/content"
	"github.com/prasadg/medprep/internal/logger"
	"github.com/prasadg/medprep/internal/progress"
	"github.com/prasadg/medprep/internal/quiz"
	"github.com/prasadg/medprep/internal/results"
	"github.com/prasadg/medprep/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().String("deck", "", "Path to a deck file (bundled deck if omitted)")
	playCmd.Flags().String("mode", "practice", "Session mode: practice, challenge, or exam")
	playCmd.Flags().Int("limit", 0, "Time limit in seconds (0 for untimed)")
	playCmd.Flags().Int("count", 0, "Number of questions to draw (0 for the whole deck)")
	playCmd.Flags().Int64("seed", 0, "Shuffle seed for a reproducible question order")
	playCmd.Flags().Bool("resume", false, "Resume the most recently saved session")

	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

// runPlay builds the full dependency graph and hands control to the
// interactive runner. It backs both `medprep play` and the bare `medprep`
// invocation.
func runPlay(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	submitter, notifier, err := buildBackends(cfg, log)
	if err != nil {
		return err
	}

	engine := quiz.New(quiz.Options{
		Submitter: submitter,
		Notifier:  notifier,
		Events:    st.EventRepo(),
		Logger:    log,
	})

	if resume, _ := cmd.Flags().GetBool("resume"); resume {
		if err := restoreLatest(cmd.Context(), st.SnapshotRepo(), engine); err != nil {
			return err
		}
	} else {
		if err := initializeSession(cmd, engine); err != nil {
			return err
		}
	}

	return app.Run(app.Options{
		Engine:    engine,
		Snapshots: st.SnapshotRepo(),
		Logger:    log,
	})
}

// buildBackends constructs the results and progress clients. Offline mode
// (configured, or implied by a missing API token) keeps the session fully
// local.
func buildBackends(cfg *config.Config, log zerolog.Logger) (results.Submitter, progress.Notifier, error) {
	if cfg.Offline || cfg.APIToken == "" {
		log.Debug().Msg("running offline, results will not be submitted")
		return results.Discard{}, nil, nil
	}

	client, err := results.NewClient(results.ClientConfig{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.APIToken,
		Timeout: cfg.HTTPTimeout,
		Logger:  log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("build results client: %w", err)
	}
	submitter := results.WithRetry(client, results.DefaultRetryConfig())

	notifier, err := progress.NewClient(progress.ClientConfig{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.APIToken,
		Timeout: cfg.HTTPTimeout,
		Logger:  log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("build progress client: %w", err)
	}
	return submitter, notifier, nil
}

func initializeSession(cmd *cobra.Command, engine *quiz.Engine) error {
	deckPath, _ := cmd.Flags().GetString("deck")
	var (
		deck *content.Deck
		err  error
	)
	if deckPath != "" {
		deck, err = content.Load(deckPath)
	} else {
		deck, err = content.Builtin()
	}
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := quiz.ParseMode(modeFlag)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")

	return engine.Initialize(deck.Questions, quiz.Config{
		Mode:           mode,
		TimeLimit:      limit,
		SpecialtyID:    deck.SpecialtyID,
		SpecialtyName:  deck.SpecialtyName,
		TotalQuestions: count,
		Seed:           seed,
	})
}

// restoreLatest loads the most recent saved snapshot into the engine.
func restoreLatest(ctx context.Context, snapshots store.SnapshotRepo, engine *quiz.Engine) error {
	loadCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	saved, err := snapshots.Latest(loadCtx)
	if err != nil {
		return fmt.Errorf("load saved session: %w", err)
	}
	if saved == nil {
		return fmt.Errorf("no saved session to resume")
	}

	snap, err := quiz.SnapshotFromMap(saved.Data)
	if err != nil {
		return fmt.Errorf("decode saved session: %w", err)
	}
	if err := engine.Restore(snap); err != nil {
		return fmt.Errorf("restore saved session: %w", err)
	}
	return nil
}

// Package main is the entry point for StickQuest.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/stickquest/internal/assets"
	"github.com/samdwyer/stickquest/internal/config"
	"github.com/samdwyer/stickquest/internal/game"
	"github.com/samdwyer/stickquest/internal/render"
	"github.com/samdwyer/stickquest/internal/telemetry"
	"github.com/samdwyer/stickquest/internal/ui"
)

var (
	configPath string
	imagesDir  string
	seed       int64
	useTUI     bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "stickquest",
	Short: "A small stick-figure RPG",
	Long: `StickQuest is a small role-play demo: explore the field, talk to the locals,
and win the Stick of Truth in turn-based battles where a well-timed SPACE blocks
half of the enemy's blow.`,
	SilenceUsage: true,
	RunE:         runGame,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "settings file (created with defaults when missing)")
	rootCmd.Flags().StringVar(&imagesDir, "images", assets.DefaultDir, "directory holding sprite and background images")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible runs (0 picks one)")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "play in the terminal instead of a window")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log warnings and telemetry diagnostics to stderr")

	rootCmd.AddCommand(defaultsCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	setupLogging()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, telemetry.Session{Frontend: frontendName(), Seed: seed})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	settings, source := config.Load(configPath)
	log.Printf("Settings loaded from %s (%s)", configPath, source)

	g, err := game.New(game.Options{Settings: settings, Seed: seed})
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	lib := assets.NewLibrary(imagesDir)

	if useTUI {
		screen, err := ui.NewScreen()
		if err != nil {
			return err
		}
		defer screen.Close()
		return ui.Run(ctx, g, screen, lib)
	}
	return render.Run(ctx, g, lib)
}

func frontendName() string {
	if useTUI {
		return "terminal"
	}
	return "window"
}

// setupLogging keeps the log quiet unless --verbose is set.
func setupLogging() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if !verbose {
		log.SetOutput(io.Discard)
		telemetry.SetLogger(log.New(io.Discard, "", 0), 0)
		return
	}
	log.SetOutput(os.Stderr)
	telemetry.SetLogger(log.New(os.Stderr, "otel: ", log.LstdFlags), 1)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Explicit OTEL_* settings win; the Honeycomb shortcut only fills the gaps.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_STICKQUEST_API_KEY")
	if apiKey == "" {
		return
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may have an unexpanded variable reference that doesn't
	// work, so we construct the headers here
	dataset := os.Getenv("HONEYCOMB_STICKQUEST_DATASET")
	if dataset == "" {
		dataset = "stickquest" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reviewpulse/reviewpulse/internal/config"
	"github.com/reviewpulse/reviewpulse/internal/logging"
	"github.com/reviewpulse/reviewpulse/internal/pipeline"
	"github.com/reviewpulse/reviewpulse/internal/sentiment"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	dataPath   string
	cfg        *config.Config
	closeLog   func()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "reviewpulse",
	Short:   "Sentiment analysis for review files",
	Long:    "Reviewpulse classifies free-text reviews as Positive, Neutral or Negative and reports aggregate statistics, a pie chart and a CSV of per-review results.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		config.LoadEnv()
		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		level := logging.ParseLevel(cfg.Logging.Level)
		if verbose {
			level = slog.LevelDebug
		}
		closeLog, err = logging.Setup(level, cfg.LogPath())
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeLog != nil {
			closeLog()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	runCmd.Flags().StringVar(&dataPath, "data", "", "Path to the reviews file (overrides config)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("reviewpulse", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/reviewpulse/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to point at your reviews file and output directory.")
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Analyze a reviews file and report sentiment",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			cfg.Input.Path = args[0]
		} else if dataPath != "" {
			cfg.Input.Path = dataPath
		}

		p := pipeline.New(cfg, sentiment.NewVADER(), &pipeline.BarProgress{}, os.Stdout)
		result, err := p.Run(cmd.Context())
		if err != nil {
			slog.Error("Run failed", slog.String("error", err.Error()))
			return err
		}

		fmt.Printf("\nProcessed %d reviews (%d greetings, %d malformed, %d scoring errors)\n",
			result.Processed, result.Skipped, result.Malformed, result.ScoreErrors)
		fmt.Printf("Results: %s\n", result.CSVPath)
		if result.ChartPath != "" {
			fmt.Printf("Chart:   %s\n", result.ChartPath)
		}
		return nil
	},
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/studiowebux/oasview/internal/config"
	"github.com/studiowebux/oasview/internal/history"
	"github.com/studiowebux/oasview/internal/keybinds"
	"github.com/studiowebux/oasview/internal/logging"
	"github.com/studiowebux/oasview/internal/openapi"
	"github.com/studiowebux/oasview/internal/query"
	"github.com/studiowebux/oasview/internal/tui"
	ver "github.com/studiowebux/oasview/internal/version"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oasview <file-or-url>",
	Short: "OpenAPI viewer - browse API documents in the terminal",
	Long: `oasview is an interactive terminal viewer for OpenAPI documents.

Point it at a local file or URL to browse operations, request bodies and
response schemas as syntax-highlighted YAML. References are resolved
in-place, local files reload automatically when they change on disk.

Examples:
  oasview api.yaml                          # View a local document
  oasview https://example.com/openapi.json  # View a remote document
  oasview --theme dracula api.yaml          # Pick a highlight theme
  oasview check api.yaml                    # Verify every reference resolves
  oasview query api.yaml "info.title"       # Evaluate a JMESPath expression
  oasview history                           # Show recently opened documents
  oasview --help                            # Show help`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewer(cmd, args[0])
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <file-or-url>",
	Short: "Resolve every schema reference and report broken ones",
	Long: `Check loads a document and resolves every schema reachable from every
operation: parameters, request bodies and responses. Each broken
reference is printed as one line; a document with broken references
exits with status 1.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args[0])
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <file-or-url> <expression>",
	Short: "Evaluate a JMESPath expression against a document",
	Long: `Query evaluates a JMESPath expression against the document and prints
the result as YAML (or JSON with --json).

Examples:
  oasview query api.yaml "info.version"
  oasview query api.yaml "keys(paths)"
  oasview query api.yaml "paths.*.get.summary" --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(args[0], args[1])
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently opened documents and most viewed operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and check for updates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

// Flags for the root command
var (
	flagConfig    string
	flagTheme     string
	flagLogFile   string
	flagNoWatch   bool
	flagNoHistory bool
)

// Flags for check
var (
	checkConcurrency int
)

// Flags for query
var (
	queryJSON bool
)

// Flags for history
var (
	historyClear    bool
	historyLimit    int
	historyDocument string
)

func init() {
	// Root command flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default is $XDG_CONFIG_HOME/oasview/config.yaml)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "Chroma style for schema highlighting")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write a JSON debug log to this file")
	rootCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not reload when the file changes on disk")
	rootCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this session in the usage history")

	// check flags
	checkCmd.Flags().IntVar(&checkConcurrency, "concurrency", 8, "Operations checked in parallel")

	// query flags
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "Print the result as JSON instead of YAML")

	// history flags
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all recorded history")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum entries per section")
	historyCmd.Flags().StringVar(&historyDocument, "document", "", "Restrict operation stats to one document")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig wires viper: defaults, then the config file, then OASVIEW_*
// environment variables, then command-line flags on top.
func initConfig(cmd *cobra.Command) (*config.Config, error) {
	config.SetDefaults()

	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("OASVIEW")
	// Replace dots with underscores for nested keys in env vars
	// e.g., OASVIEW_VIEWER_THEME for viewer.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply. An explicit
		// --config path that cannot be read is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Flags beat the file and the environment
	if cmd.Flags().Changed("theme") {
		viper.Set("viewer.theme", flagTheme)
	}
	if cmd.Flags().Changed("log-file") {
		viper.Set("logging.file", flagLogFile)
	}
	if flagNoWatch {
		viper.Set("viewer.watch", false)
	}
	if flagNoHistory {
		viper.Set("history.enabled", false)
	}

	return config.Load()
}

// runViewer starts the interactive viewer
func runViewer(cmd *cobra.Command, source string) error {
	cfg, err := initConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer logger.Close()

	registry := keybinds.NewDefaultRegistry()
	if len(cfg.Keybinds) > 0 {
		result, err := keybinds.ApplyOverrides(registry, cfg.Keybinds)
		if err != nil {
			return err
		}
		if result.HasWarnings() {
			logger.Warn("keybind overrides", "details", result.String())
		}
	}

	// History failures never block the viewer
	var recorder *history.Recorder
	if cfg.History.Enabled {
		dbPath, err := cfg.HistoryPath()
		if err != nil {
			logger.Warn("history disabled", "error", err)
		} else if recorder, err = history.NewRecorder(dbPath); err != nil {
			logger.Warn("history disabled", "error", err)
			recorder = nil
		}
	}
	defer recorder.Close()

	return tui.Run(tui.Options{
		Source:   source,
		Config:   cfg,
		Registry: registry,
		Recorder: recorder,
		Logger:   logger,
		Watch:    cfg.Viewer.Watch,
		Version:  version,
	})
}

// runCheck validates every reference in a document
func runCheck(cmd *cobra.Command, source string) error {
	doc, err := openapi.Load(source)
	if err != nil {
		return err
	}

	problems := openapi.Check(cmd.Context(), doc, checkConcurrency)
	if len(problems) == 0 {
		fmt.Printf("%s: all references resolve (%d operations)\n", source, len(doc.Operations()))
		return nil
	}

	for _, problem := range problems {
		fmt.Println(problem)
	}
	fmt.Fprintf(os.Stderr, "%d broken reference(s) in %s\n", len(problems), source)
	os.Exit(1)

	return nil
}

// runQuery evaluates a JMESPath expression against a document
func runQuery(source, expression string) error {
	doc, err := openapi.LoadGeneric(source)
	if err != nil {
		return err
	}

	result, err := query.Run(doc, expression)
	if err != nil {
		return err
	}

	var output string
	if queryJSON {
		output, err = query.FormatJSON(result)
	} else {
		output, err = query.FormatYAML(result)
	}
	if err != nil {
		return err
	}

	fmt.Println(strings.TrimRight(output, "\n"))
	return nil
}

// runHistory prints or clears the usage history
func runHistory(cmd *cobra.Command) error {
	cfg, err := initConfig(cmd)
	if err != nil {
		return err
	}

	dbPath, err := cfg.HistoryPath()
	if err != nil {
		return err
	}

	recorder, err := history.NewRecorder(dbPath)
	if err != nil {
		return err
	}
	defer recorder.Close()

	if historyClear {
		if err := recorder.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	documents, err := recorder.RecentDocuments(historyLimit)
	if err != nil {
		return err
	}
	if len(documents) == 0 {
		fmt.Println("No history recorded yet.")
		return nil
	}

	fmt.Println("Recent documents:")
	for _, entry := range documents {
		fmt.Printf("  %4dx  %s  %s\n", entry.Opens, entry.LastOpened.Format("2006-01-02 15:04"), entry.Path)
	}

	operations, err := recorder.TopOperations(historyDocument, historyLimit)
	if err != nil {
		return err
	}
	if len(operations) > 0 {
		fmt.Println()
		fmt.Println("Most viewed operations:")
		for _, entry := range operations {
			fmt.Printf("  %4dx  %-7s %s  (%s)\n", entry.Views, entry.Method, entry.Path, entry.Document)
		}
	}

	opens, views, err := recorder.Counts()
	if err != nil {
		return err
	}
	fmt.Printf("\n%d opens and %d views recorded.\n", opens, views)

	return nil
}

// runVersion prints the version and checks GitHub for a newer release
func runVersion() error {
	fmt.Printf("oasview %s\n", version)

	available, latest, url, err := ver.CheckForUpdate(version)
	if err != nil {
		// The check needs the network; failing it is not an error state
		fmt.Fprintf(os.Stderr, "Update check failed: %v\n", err)
		return nil
	}

	if available {
		fmt.Printf("Update available: %s (%s)\n", latest, url)
	} else {
		fmt.Println("You are up to date.")
	}

	return nil
}

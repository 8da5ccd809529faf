package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmostafa/docnav/internal/config"
	"github.com/itsmostafa/docnav/internal/logging"
	"github.com/itsmostafa/docnav/internal/navigator"
	"github.com/itsmostafa/docnav/internal/outline"
	"github.com/itsmostafa/docnav/internal/version"
	"github.com/spf13/cobra"
)

var cfg = config.Load()

var logger = logging.Discard()

// loader is shared by every load in the process so unchanged content reuses
// its cached heading index.
var loader = &outline.Loader{}

var rootCmd = &cobra.Command{
	Use:   "docnav",
	Short: "Navigate the sections of a markdown document",
	Long: `docnav indexes the headings of a single markdown document and shows its
sections, paragraphs and code blocks, either through an interactive menu or
with one-shot commands.

Running docnav without a subcommand starts the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		format, err := logging.ParseFormat(cfg.LogFormat)
		if err != nil {
			return err
		}
		logger = logging.New(cmd.ErrOrStderr(), level, format)

		cache, err := outline.NewIndexCache(cfg.CacheSize)
		if err != nil {
			return err
		}
		loader = &outline.Loader{Cache: cache}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("docnav %s\n", version.String()))

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.DocPath, "doc", "d", cfg.DocPath, "Markdown document to navigate (env DOCNAV_DOC)")
	flags.StringVar(&cfg.TopicsFile, "topics", cfg.TopicsFile, "YAML file overriding the menu topics (env DOCNAV_TOPICS)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env DOCNAV_LOG_LEVEL)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json (env DOCNAV_LOG_FORMAT)")
	flags.IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "Heading index cache capacity (env DOCNAV_CACHE_SIZE)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// loadDocument reads the configured document. A load failure ends the
// command.
func loadDocument() (*outline.Document, error) {
	doc, err := loader.Load(cfg.DocPath)
	if err != nil {
		return nil, err
	}

	stats := loader.Stats()
	logger.Debug("document loaded",
		slog.String("path", doc.Path),
		slog.Int("lines", doc.Len()),
		slog.Int("headings", len(doc.Headings())),
		slog.String("hash", doc.Hash),
		slog.Bool("cache_hit", doc.CacheHit()),
		slog.Int64("cache_hits", stats.Hits),
		slog.Int64("cache_misses", stats.Misses),
		slog.Int("cache_size", stats.Size),
	)
	return doc, nil
}

// loadSession builds the navigation session: document plus topics.
func loadSession() (*navigator.Session, error) {
	topics, err := config.LoadTopics(cfg.TopicsFile)
	if err != nil {
		return nil, err
	}
	doc, err := loadDocument()
	if err != nil {
		return nil, err
	}
	return &navigator.Session{Doc: doc, Topics: topics, Logger: logger, Loader: loader}, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/devicemodels/internal/config"
	"github.com/nao1215/devicemodels/internal/fetch"
	applog "github.com/nao1215/devicemodels/internal/log"
	"github.com/nao1215/devicemodels/internal/model"
	"github.com/nao1215/devicemodels/internal/pipeline"
	"github.com/nao1215/devicemodels/internal/report"
)

// NewRootCmd creates the root command for devicemodels.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devicemodels [format]",
		Short: "Print Apple model identifiers and their marketing names",
		Long: `devicemodels downloads The iPhone Wiki "Models" page and extracts the
mapping from model identifiers (e.g. iPhone8,1) to marketing names
(e.g. iPhone 6s).

The optional format argument selects the output:
  text    identifier:name, one pair per line (default)
  json    a JSON object; duplicate identifiers keep the last name
  nsdict  an Objective-C NSDictionary literal

Any other value falls back to text.

If the wiki does not answer with HTTP 200, "Connect to url failed" is
printed and the command exits successfully.

Examples:
  # Print identifier:name lines
  devicemodels

  # Generate a JSON lookup table
  devicemodels json > models.json

  # Paste-ready Objective-C dictionary
  devicemodels nsdict

  # Fetch through a SOCKS5 proxy and also write a Markdown summary
  devicemodels --proxy 127.0.0.1:9050 -m models.md

  # Create a configuration file
  devicemodels --write-config .devicemodels`,
		Version:       getVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}
	cmd.SetVersionTemplate(versionTemplate())

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .devicemodels in current or home directory)")
	cmd.Flags().StringP("url", "u", config.DefaultURL,
		"Page to fetch")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Request timeout (0 waits indefinitely)")
	cmd.Flags().String("proxy", "",
		"SOCKS5 proxy address (e.g., 127.0.0.1:9050)")
	cmd.Flags().Bool("wikitext", false,
		"Match only the edit box contents instead of the whole page")
	cmd.Flags().StringP("markdown", "m", "",
		"Also write a Markdown summary to the specified file path")
	cmd.Flags().String("log-file", "",
		"Also write logs to the specified file (rotated by size)")
	cmd.Flags().String("write-config", "",
		"Write a configuration template to the specified path and exit")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite an existing file with --write-config")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd executes the root command.
func runRootCmd(cmd *cobra.Command, args []string) error {
	templatePath, err := cmd.Flags().GetString("write-config")
	if err != nil {
		return err
	}
	if templatePath != "" {
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return err
		}
		return writeConfigTemplate(cmd.OutOrStdout(), templatePath, force)
	}

	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, closer, err := applog.NewLogger(applog.Options{
		Output:  cmd.ErrOrStderr(),
		Verbose: cfg.Verbose,
		File:    cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, cmd.OutOrStdout(), logger)
}

// buildConfig layers defaults, the config file, the environment and flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly named config file must exist; the implicit locations
	// are optional.
	if found := config.FindConfigFile(configPath); found != "" {
		fileCfg, err := config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
		}
		cfg.Merge(fileCfg)
		cfg.ConfigFilePath = found
	} else if configPath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}

	config.LoadDotEnv()
	cfg.Merge(config.LoadEnv())

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Format = args[0]
	}

	return cfg, nil
}

// applyFlags copies explicitly set flags onto cfg.
// Flags left at their defaults do not override file or environment values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("url") {
		if cfg.URL, err = flags.GetString("url"); err != nil {
			return err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return err
		}
	}
	if flags.Changed("proxy") {
		if cfg.Proxy, err = flags.GetString("proxy"); err != nil {
			return err
		}
	}
	if flags.Changed("wikitext") {
		if cfg.Wikitext, err = flags.GetBool("wikitext"); err != nil {
			return err
		}
	}
	if flags.Changed("markdown") {
		if cfg.MarkdownFile, err = flags.GetString("markdown"); err != nil {
			return err
		}
	}
	if flags.Changed("log-file") {
		if cfg.LogFile, err = flags.GetString("log-file"); err != nil {
			return err
		}
	}
	if flags.Changed("verbose") {
		if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
			return err
		}
	}

	return nil
}

// run fetches, extracts and renders the catalog described by cfg.
func run(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	if cfg.Proxy != "" {
		status := fetch.CheckProxy(ctx, cfg.Proxy)
		logger.Debug("proxy check", "proxy", cfg.Proxy, "status", status.String())
		if err := status.Error(); err != nil {
			return fmt.Errorf("proxy %s: %w", cfg.Proxy, err)
		}
	}

	client, err := fetch.NewHTTPClient(cfg.Timeout, cfg.Proxy)
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}

	fetcher := fetch.NewFetcher(client,
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithHeaders(cfg.Headers),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithWikitext(cfg.Wikitext),
		fetch.WithLogger(logger),
	)

	writer := report.NewWriter(report.ParseFormat(cfg.Format), out)
	if cfg.MarkdownFile != "" {
		writer = report.NewMultiWriter(writer, &markdownFile{path: cfg.MarkdownFile, source: cfg.URL})
	}

	p := pipeline.New([]pipeline.Step{
		pipeline.NewFetchStep(fetcher, out, logger),
		pipeline.NewExtractStep(logger),
		pipeline.NewRenderStep(writer),
	}, pipeline.WithLogger(logger))

	logger.Debug("starting",
		"url", cfg.URL,
		"format", cfg.Format,
		"config", cfg.ConfigFilePath,
		"steps", p.StepNames(),
	)

	catalog := model.NewCatalog(cfg.URL)
	if err := p.Execute(ctx, catalog); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted: %w", err)
		}
		return err
	}

	if cfg.MarkdownFile != "" && !catalog.Halted {
		logger.Info("markdown summary written", "path", cfg.MarkdownFile)
	}

	return nil
}

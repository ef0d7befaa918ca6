package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"foodcourt/internal/analytics"
	"foodcourt/internal/config"
	"foodcourt/internal/logging"
	"foodcourt/internal/menu"
	"foodcourt/internal/menuservice"
	"foodcourt/internal/output"
	"foodcourt/ui/console"
	"foodcourt/ui/tui"
	"foodcourt/ui/tui/views"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultConfigFile = "foodcourt.yaml"

type options struct {
	configFile string
	apiURL     string
	page       string
	plain      bool
	query      string
	logFile    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "foodcourt",
		Short: "Browse a food court's menus in the terminal",
		Long: `foodcourt fetches every restaurant menu of a food court in one request
and lets you browse them by restaurant tab or search across all of them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			log, err := logging.New(cfg.LogFile, cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			client := menuservice.NewClient(cfg, log)
			log.Info("starting", zap.String("endpoint", client.URL()), zap.Bool("plain", opts.plain || opts.query != ""))

			if opts.plain || opts.query != "" {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return runPlain(ctx, cmd.OutOrStdout(), client, cfg, opts.query)
			}
			return tui.Start(client, cfg, analytics.NewLogTracker(log), log)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configFile, "config", defaultConfigFile, "config file path")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	f.StringVar(&opts.logFile, "log-file", "", "log file path (overrides config)")

	root.Flags().StringVar(&opts.apiURL, "api-url", "", "menu endpoint (overrides config)")
	root.Flags().StringVar(&opts.page, "page", "", "page path carrying the food-court id, e.g. /food-courts/dhanmondi")
	root.Flags().BoolVar(&opts.plain, "plain", false, "print the menu instead of starting the interactive UI")
	root.Flags().StringVarP(&opts.query, "query", "q", "", "print search results for a query (implies --plain)")

	root.AddCommand(newConfigCmd())
	return root
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %s\n", path)
			return nil
		},
	})
	return cmd
}

// loadConfig layers .env, the config file, FOODCOURT_* variables and
// explicitly set flags, then validates the result.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg = cfg.WithAPIURL(opts.apiURL)
	}
	if flags.Changed("page") {
		cfg = cfg.WithPagePath(opts.page)
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runPlain fetches once and prints either every restaurant or the search
// results for query.
func runPlain(ctx context.Context, w io.Writer, f output.DataFetcher, cfg config.Config, query string) error {
	data, err := output.LoadMenu(ctx, f)
	if err != nil {
		msg := cfg.APIErrorMessage
		if errors.Is(err, menu.ErrEmptyMenu) {
			msg = cfg.EmptyDataErrorMessage
		}
		console.PrintMessage(w, cfg.ErrorTitle, msg, true)
		return err
	}

	format := output.FormatFromConfig(cfg)
	title := cfg.AppTitle
	if data.Banner != "" {
		title += " (" + data.Banner + ")"
	}

	restaurants := data.Restaurants
	if q := strings.TrimSpace(query); q != "" {
		restaurants = menu.Search(restaurants, q)
		if len(restaurants) == 0 {
			console.PrintMessage(w, views.NoResultsTitle, views.NoResultsMessage(q), false)
			return nil
		}
	}

	console.Print(w, title, output.BuildMenuView(restaurants, format, nil))
	return nil
}

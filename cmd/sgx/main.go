package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/komsit37/sgx/pkg/sgx/fees"
	"github.com/komsit37/sgx/pkg/sgx/filter"
	"github.com/komsit37/sgx/pkg/sgx/pipeline"
	"github.com/komsit37/sgx/pkg/sgx/quote"
	"github.com/komsit37/sgx/pkg/sgx/render"
	"github.com/komsit37/sgx/pkg/sgx/types"
	"github.com/komsit37/sgx/pkg/sgx/watchlist"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "watchlist.yaml"
	}
	return filepath.Join(home, ".sgx", "watchlist.yaml")
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sgx",
		Short: "Screen SGX stocks against value-investing heuristics",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("verbose"); v {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	viper.SetEnvPrefix("SGX")
	viper.AutomaticEnv()
	viper.SetDefault("storage", defaultStoragePath())
	viper.SetDefault("ttl", quote.DefaultTTL)
	viper.SetDefault("timeout", 10*time.Second)

	pf := rootCmd.PersistentFlags()
	pf.String("storage", viper.GetString("storage"), "watchlist file path")
	pf.Duration("ttl", viper.GetDuration("ttl"), "quote cache freshness window")
	pf.Duration("timeout", viper.GetDuration("timeout"), "upstream fetch timeout")
	pf.Bool("json", false, "output JSON instead of a table")
	pf.Bool("pretty", false, "indent JSON output")
	pf.Bool("no-color", false, "disable color output")
	pf.BoolP("verbose", "v", false, "debug logging")
	viper.BindPFlag("storage", pf.Lookup("storage"))
	viper.BindPFlag("ttl", pf.Lookup("ttl"))
	viper.BindPFlag("timeout", pf.Lookup("timeout"))

	rootCmd.AddCommand(
		newSearchCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newClearCmd(),
		newListCmd(),
		newFeesCmd(),
	)
	return rootCmd
}

// newRunner wires the cached fetcher, the persisted watchlist, and the
// renderer selected by the output flags.
func newRunner(cmd *cobra.Command) *pipeline.Runner {
	fetcher := quote.NewCachedFetcher(
		quote.NewYahooFetcher(viper.GetDuration("timeout")),
		viper.GetDuration("ttl"), 256)
	store := watchlist.New(watchlist.NewYAMLStorage(viper.GetString("storage")))

	var renderer render.Renderer = render.NewTableRenderer()
	if ok, _ := cmd.Flags().GetBool("json"); ok {
		renderer = render.NewJSONRenderer()
	}
	if ok, _ := cmd.Flags().GetBool("syms"); ok {
		renderer = render.NewSymsRenderer()
	}
	return &pipeline.Runner{
		Fetcher:  fetcher,
		Store:    store,
		Renderer: renderer,
		Writer:   os.Stdout,
	}
}

func executeOptions(cmd *cobra.Command) pipeline.ExecuteOptions {
	noColor, _ := cmd.Flags().GetBool("no-color")
	pretty, _ := cmd.Flags().GetBool("pretty")
	width := detectTerminalWidth()
	maxCol := 0
	if width > 0 {
		maxCol = width / 3
	}
	return pipeline.ExecuteOptions{
		Color:       !noColor,
		PrettyJSON:  pretty,
		MaxColWidth: maxCol,
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <ticker>",
		Short: "Fetch and score a single ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRunner(cmd)
			row, ok := r.Lookup(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("no data for %s: ticker may be wrong or the source is busy, retry later", args[0])
			}
			opts := executeOptions(cmd)
			return r.Renderer.Render(r.Writer, []types.Row{row}, render.Options{
				Color:       opts.Color,
				PrettyJSON:  opts.PrettyJSON,
				MaxColWidth: opts.MaxColWidth,
			})
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <ticker> [name...]",
		Short: "Add a ticker to the watchlist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRunner(cmd)
			name := strings.Join(args[1:], " ")
			sym := quote.CanonicalSymbol(args[0])
			if !r.AddTicker(cmd.Context(), args[0], name) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already in the watchlist\n", sym)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", sym)
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <ticker>",
		Short: "Remove a ticker from the watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRunner(cmd)
			sym := quote.CanonicalSymbol(args[0])
			if !r.Store.Remove(args[0]) {
				return fmt.Errorf("%s is not in the watchlist", sym)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", sym)
			return nil
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the watchlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRunner(cmd)
			r.Store.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "watchlist cleared")
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Refresh scores for every watchlist entry and render them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRunner(cmd)
			opts := executeOptions(cmd)
			expr, _ := cmd.Flags().GetString("filter")
			filt, err := filter.Parse(expr)
			if err != nil {
				return fmt.Errorf("bad filter %q: %w", expr, err)
			}
			opts.Filter = filt
			return r.Execute(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("filter", "f", "", "filter rows by ticker or name (exact set, glob, /regex/, or substring)")
	cmd.Flags().Bool("syms", false, "print tickers only, comma-separated")
	return cmd
}

func newFeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fees <trade-value>",
		Short: "Total transaction cost for a trade value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("bad trade value %q: %w", args[0], err)
			}
			if v < 0 {
				return errors.New("trade value must be >= 0")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", fees.Calculate(v))
			return nil
		},
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/mcdev12/gamestats/go/clients"
	gamestats "github.com/mcdev12/gamestats/go/clients/game_stats_client"
	"github.com/mcdev12/gamestats/go/internal/config"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "gamestats",
		Short:         "Query the game statistics platform API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("GAMESTATS_CONFIG"), "path to a YAML config file")

	root.AddCommand(
		newRequestCmd(&configPath),
		newEndpointsCmd(),
		newVersionsCmd(),
	)
	return root
}

func newRequestCmd(configPath *string) *cobra.Command {
	var showMetrics bool

	cmd := &cobra.Command{
		Use:   "request <endpoint|path> [key=value ...]",
		Short: "Issue a request and print the response payload",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			zerolog.SetGlobalLevel(level)

			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			metrics, err := gamestats.NewPrometheusMetrics(registry)
			if err != nil {
				return err
			}

			options := []gamestats.Option{
				gamestats.WithDiagnostics(gamestats.NewZerologDiagnostics(log.Logger)),
				gamestats.WithMetrics(metrics),
			}
			if cfg.RateLimit > 0 {
				options = append(options, gamestats.WithRateLimit(rate.Limit(cfg.RateLimit), cfg.RateBurst))
			}

			client, err := gamestats.NewGameStatsClient(cfg.ClientOptions(), options...)
			if err != nil {
				return err
			}

			payload, err := client.Request(cmd.Context(), args[0], params)
			if showMetrics {
				logMetrics(registry)
			}
			if err != nil {
				log.Error().Err(err).Str("endpoint", args[0]).Msg("request failed")
				return err
			}

			return writePayload(cmd.OutOrStdout(), payload)
		},
	}
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "log request metrics after the call")
	return cmd
}

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the named endpoints and their path templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoints := gamestats.Endpoints()
			names := make([]string, 0, len(endpoints))
			for name := range endpoints {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", name, endpoints[name])
			}
			return nil
		},
	}
}

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the API versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			versions := clients.APIVersions()
			keys := make([]string, 0, len(versions))
			for v := range versions {
				keys = append(keys, string(v))
			}
			sort.Strings(keys)

			for _, key := range keys {
				marker := " "
				if clients.APIVersion(key) == clients.DefaultAPIVersion {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-4s %s\n", marker, key, versions[clients.APIVersion(key)])
			}
			return nil
		},
	}
}

// parseParams turns key=value arguments into request params. Repeating a key
// collects its values into a list.
func parseParams(args []string) (gamestats.Params, error) {
	params := make(gamestats.Params, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", arg)
		}

		switch existing := params[key].(type) {
		case nil:
			params[key] = value
		case string:
			params[key] = []string{existing, value}
		case []string:
			params[key] = append(existing, value)
		}
	}
	return params, nil
}

func writePayload(w io.Writer, payload json.RawMessage) error {
	if payload == nil {
		_, err := fmt.Fprintln(w, "no data")
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, payload, "", "  "); err != nil {
		return fmt.Errorf("failed to format payload: %w", err)
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return err
}

func logMetrics(registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		log.Warn().Err(err).Msg("gather metrics")
		return
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			event := log.Info().Str("metric", family.GetName())
			for _, label := range m.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				event = event.Float64("value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				event = event.Uint64("count", m.GetHistogram().GetSampleCount()).
					Float64("sum", m.GetHistogram().GetSampleSum())
			}
			event.Msg("metric")
		}
	}
}

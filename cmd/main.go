package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"scout/agentlog"
	"scout/api"
	"scout/config"
	"scout/fetch"
	"scout/insight"
	"scout/pipeline"
	"scout/planner"
	"scout/relevance"
	"scout/report"
	"scout/search"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:          "scout",
		Short:        "Research assistant: topic in, markdown report out",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config")

	root.AddCommand(newResearchCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newResearchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "research [topic]",
		Short: "Run one research report, or start an interactive loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			pipe, cfg, cleanup, err := buildPipeline(*configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) > 0 {
				return runOnce(cmd.Context(), pipe, strings.Join(args, " "))
			}
			return runInteractive(cmd.Context(), pipe, cfg)
		},
	}
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the research pipeline over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			pipe, cfg, cleanup, err := buildPipeline(*configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Printf("Listening on :%d\n", cfg.AppPort)
			// Serving timeout covers a full pipeline run, not one request.
			return api.NewServer(pipe, cfg.AppPort, 10*cfg.RequestTimeout).Start()
		},
	}
}

func runOnce(ctx context.Context, pipe *pipeline.Pipeline, topic string) error {
	_, path, err := pipe.Run(ctx, topic)
	if err != nil {
		return err
	}
	fmt.Printf("Report saved: %s\n", path)
	return nil
}

func runInteractive(ctx context.Context, pipe *pipeline.Pipeline, cfg *config.Config) error {
	fmt.Printf("Research assistant ready (%s mode). Enter a topic, or 'quit' to exit.\n", cfg.Mode)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nResearch topic: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		topic := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(topic) {
		case "quit", "exit", "q":
			return nil
		case "":
			fmt.Println("Please enter a valid topic")
			continue
		}

		if err := runOnce(ctx, pipe, topic); err != nil {
			fmt.Printf("Research failed: %v\n", err)
		}
	}
}

// buildPipeline wires the mode-specific engines into the pipeline.
// Mode is decided once, here; components receive their strategies at
// construction and never consult configuration afterwards.
func buildPipeline(configPath string) (*pipeline.Pipeline, *config.Config, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	cleanup := func() { _ = zlog.Sync() }
	alog := agentlog.New(zlog)

	offline := search.NewOfflineEngine()
	reporter := report.NewWriter(cfg.ReportsDir, alog)
	opts := []pipeline.Option{pipeline.WithScorer(relevance.NewTopicScorer())}

	var (
		provider *search.Provider
		plan     planner.Planner
		synth    insight.Synthesizer
	)

	switch cfg.Mode {
	case config.ModeOffline:
		provider = search.NewOfflineProvider(offline, cfg.MaxResults, alog)
		plan = planner.NewTemplatePlanner(alog)
		synth = insight.NewDeterministic(alog)

	case config.ModeLive:
		model, err := openai.New(
			openai.WithToken(cfg.OpenAIKey),
			openai.WithModel(cfg.Model),
		)
		if err != nil {
			cleanup()
			return nil, nil, nil, fmt.Errorf("init model client: %w", err)
		}

		live := search.NewDuckDuckGoEngine(cfg.RequestTimeout)
		provider = search.NewLiveProvider(live, offline, cfg.MaxResults,
			cfg.UseFallbackOnError, alog,
			search.WithRetryPolicy(cfg.MaxRetries, cfg.RetryBaseDelay))
		plan = planner.NewLLMPlanner(model, cfg.Temperature, 200, alog)
		synth = insight.NewLLM(model, insight.NewDeterministic(alog),
			cfg.ContentCharBudget, cfg.MaxTokens, alog)

		if cfg.EnrichContent {
			opts = append(opts, pipeline.WithEnricher(fetch.NewEnricher(cfg.RequestTimeout, alog)))
		}
	}

	pipe := pipeline.New(plan, provider, synth, reporter,
		cfg.NumQueries, cfg.MaxKeywords, alog, opts...)
	return pipe, cfg, cleanup, nil
}

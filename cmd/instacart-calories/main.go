package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/haasonsaas/instacart-calorie-scraper/config"
	"github.com/haasonsaas/instacart-calorie-scraper/internal/delivery/csvout"
	"github.com/haasonsaas/instacart-calorie-scraper/internal/domain"
	"github.com/haasonsaas/instacart-calorie-scraper/internal/infrastructure/cache"
	"github.com/haasonsaas/instacart-calorie-scraper/internal/infrastructure/fdc"
	"github.com/haasonsaas/instacart-calorie-scraper/internal/infrastructure/instacart"
	"github.com/haasonsaas/instacart-calorie-scraper/internal/infrastructure/openfoodfacts"
	"github.com/haasonsaas/instacart-calorie-scraper/internal/usecase"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var targetPath, safewayPath, costcoPath, outPath string

	cmd := &cobra.Command{
		Use:           "instacart-calories",
		Short:         "Enrich Instacart product dumps with calorie data",
		Long:          "Reads Target, Safeway and Costco product JSON dumps, looks up calories per serving for food items via OpenFoodFacts and USDA FoodData Central, and writes a unified sorted CSV.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), targetPath, safewayPath, costcoPath, outPath)
		},
	}

	cmd.Flags().StringVar(&targetPath, "target", "", "path to the Target products JSON dump")
	cmd.Flags().StringVar(&safewayPath, "safeway", "", "path to the Safeway products JSON dump")
	cmd.Flags().StringVar(&costcoPath, "costco", "", "path to the Costco products JSON dump")
	cmd.Flags().StringVar(&outPath, "out", "", "output CSV path (default \"instacart_with_calories.csv\")")

	for _, flag := range []string{"target", "safeway", "costco"} {
		cobra.CheckErr(cmd.MarkFlagRequired(flag))
	}

	return cmd
}

func run(ctx context.Context, targetPath, safewayPath, costcoPath, outPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if outPath == "" {
		outPath = cfg.Output.Path
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	primary := openfoodfacts.NewClient(cfg.OpenFoodFacts.BaseURL, cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	secondary := fdc.NewClient(cfg.FDC.APIKey, cfg.FDC.BaseURL, cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	if !secondary.Enabled() {
		logger.Info("no USDA_API_KEY configured, FDC lookups disabled")
	}

	resolver := usecase.NewResolver(primary, secondary, cache.NewMemoryCache(), logger)

	inputs := []usecase.StoreInput{
		{Store: domain.StoreTarget, Path: targetPath},
		{Store: domain.StoreSafeway, Path: safewayPath},
		{Store: domain.StoreCostco, Path: costcoPath},
	}

	pipeline := usecase.NewPipeline(
		inputs,
		outPath,
		instacart.NewLoader(),
		usecase.NewClassifier(),
		resolver,
		usecase.NewLimiterPacer(cfg.Pacing.Interval),
		csvout.NewWriter(),
		logger,
	)

	rows, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s with %d rows.\n", outPath, rows)
	return nil
}

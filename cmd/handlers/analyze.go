package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaipengyu/ppl-small-win/internal/billing"
	"github.com/kaipengyu/ppl-small-win/internal/dashboard"
	"github.com/kaipengyu/ppl-small-win/internal/logger"
	"github.com/kaipengyu/ppl-small-win/internal/render"
	"github.com/kaipengyu/ppl-small-win/internal/visual"
	"github.com/kaipengyu/ppl-small-win/internal/weather"
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <bill.pdf>",
		Short: "Analyze a utility bill PDF and print the dashboard",
		Long: `Analyze extracts structured data from the bill, derives the rebate
recommendation and household tip locally, and fetches the weather
outlook and rank imagery. Weather and imagery degrade silently when
unavailable.

Examples:
  # Render a dashboard in the terminal
  smallwin analyze july-bill.pdf

  # Emit the full dashboard as JSON
  smallwin analyze july-bill.pdf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the dashboard as JSON instead of styled text")

	return cmd
}

func runAnalyze(ctx context.Context, path string, asJSON bool) error {
	log := logger.Get()

	pdfBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	pages, err := billing.CheckPDF(pdfBytes)
	if err != nil {
		return fmt.Errorf("%s does not look like a readable PDF bill: %w", path, err)
	}
	log.Info("analyzing bill", "file", path, "pages", pages)

	svc, err := newDashboardService(ctx)
	if err != nil {
		return err
	}

	dash, err := svc.Analyze(ctx, pdfBytes, path)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", path, err)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dash)
	}

	fmt.Print(render.Dashboard(dash))
	return nil
}

// newDashboardService builds the orchestrator from configuration.
func newDashboardService(ctx context.Context) (*dashboard.Service, error) {
	gateway, err := billing.NewGateway(ctx, cfg.AI.Gemini)
	if err != nil {
		return nil, err
	}
	illustrator, err := visual.NewIllustrator(ctx, cfg.AI.Gemini, cfg.Visual.BaseImagePath)
	if err != nil {
		return nil, err
	}
	forecaster := weather.NewClient(weather.Config{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
		Timeout: cfg.Weather.Timeout,
	})
	return dashboard.NewService(gateway, illustrator, forecaster), nil
}

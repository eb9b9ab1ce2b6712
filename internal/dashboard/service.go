// Package dashboard orchestrates one bill upload into a full dashboard:
// synchronous extraction, locally derived rebate and tip, then the
// weather forecast and both illustrations fetched concurrently. Each
// follow-up call gets exactly one attempt and degrades independently.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kaipengyu/ppl-small-win/internal/core"
	"github.com/kaipengyu/ppl-small-win/internal/logger"
	"github.com/kaipengyu/ppl-small-win/internal/rank"
	"github.com/kaipengyu/ppl-small-win/internal/rebates"
)

// Extractor turns PDF bill bytes into structured bill data.
type Extractor interface {
	Extract(ctx context.Context, pdfBytes []byte) (core.BillData, error)
}

// Illustrator renders the rank badge and tip collage, returning a data
// URI or empty string on failure.
type Illustrator interface {
	RankBadge(ctx context.Context, prompt string) string
	Collage(ctx context.Context, tip string) string
}

// Forecaster fetches the 7-day energy-impact forecast for an address.
// It degrades internally and never errors.
type Forecaster interface {
	Forecast(ctx context.Context, address string) core.WeatherData
}

// Service assembles dashboards from uploaded bills.
type Service struct {
	extractor   Extractor
	illustrator Illustrator
	forecaster  Forecaster
	log         *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewService wires the three gateways into an orchestrator.
func NewService(extractor Extractor, illustrator Illustrator, forecaster Forecaster) *Service {
	return &Service{
		extractor:   extractor,
		illustrator: illustrator,
		forecaster:  forecaster,
		log:         logger.Get(),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Analyze extracts the bill and builds the full dashboard. Extraction
// failure aborts with the error; weather and illustration failures
// degrade to their zero values inside the returned dashboard.
func (s *Service) Analyze(ctx context.Context, pdfBytes []byte, fileName string) (core.Dashboard, error) {
	bill, err := s.extractor.Extract(ctx, pdfBytes)
	if err != nil {
		return core.Dashboard{}, err
	}

	dash := core.Dashboard{
		ID:           s.newID(),
		FileName:     fileName,
		Bill:         bill,
		Rebate:       rebates.BestRebate(bill),
		HouseholdTip: rebates.HouseholdTip(bill),
		// Positive reduction means usage dropped, so the displayed
		// change is its negation.
		UsageChangePercent: -rank.ReductionPercent(bill.MonthlyComparison.UsagePrevious, bill.MonthlyComparison.UsageCurrent),
		RankProgressArc:    rank.ProgressArc(bill.EnergySaverRank),
		GeneratedAt:        s.now().UTC(),
	}

	// The three follow-up calls have no ordering dependency and write
	// disjoint fields, so they run together and each fails alone.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		dash.Weather = s.forecaster.Forecast(ctx, bill.ServiceAddress)
	}()

	if bill.RankVisualPrompt != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dash.RankImage = s.illustrator.RankBadge(ctx, bill.RankVisualPrompt)
		}()
	}

	if bill.EnergyTip != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dash.CollageImage = s.illustrator.Collage(ctx, bill.EnergyTip)
		}()
	}

	wg.Wait()

	s.log.Info("dashboard assembled",
		"id", dash.ID,
		"file", fileName,
		"rank", bill.EnergySaverRank,
		"rebate", dash.Rebate.Name,
		"rankImage", dash.RankImage != "",
		"collage", dash.CollageImage != "")
	return dash, nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/haasonsaas/instacart-calorie-scraper/internal/domain"
)

// StoreInput pairs a retailer with the path of its JSON dump.
type StoreInput struct {
	Store domain.Store
	Path  string
}

// TableWriter writes the fully enriched table to its destination.
type TableWriter interface {
	WriteTable(path string, records []domain.ProductRecord) error
}

// Pipeline coordinates a full run: load every store's dump, classify and
// resolve each record with courtesy pacing, then sort and write the table.
// Any load or write failure aborts before output; there is no partial CSV.
type Pipeline struct {
	inputs     []StoreInput
	outputPath string
	loader     domain.ProductLoader
	classifier *Classifier
	resolver   *Resolver
	pacer      domain.Pacer
	writer     TableWriter
	log        *slog.Logger
}

// NewPipeline creates a pipeline over the given store inputs.
func NewPipeline(
	inputs []StoreInput,
	outputPath string,
	loader domain.ProductLoader,
	classifier *Classifier,
	resolver *Resolver,
	pacer domain.Pacer,
	writer TableWriter,
	log *slog.Logger,
) *Pipeline {
	if log == nil {
		log = slog.Default()
	}

	return &Pipeline{
		inputs:     inputs,
		outputPath: outputPath,
		loader:     loader,
		classifier: classifier,
		resolver:   resolver,
		pacer:      pacer,
		writer:     writer,
		log:        log,
	}
}

// Run executes the pipeline and returns the number of rows written.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	var records []domain.ProductRecord
	for _, in := range p.inputs {
		recs, err := p.loader.LoadProducts(in.Store, in.Path)
		if err != nil {
			return 0, err
		}
		p.log.Info("loaded products", "store", in.Store, "count", len(recs))
		records = append(records, recs...)
	}

	for i := range records {
		rec := &records[i]

		if !p.classifier.IsFood(rec.Name) {
			rec.Calories = domain.CalorieInfo{Status: domain.CalorieNotApplicable}
		} else if kcal, found := p.resolver.Resolve(ctx, rec.Name); found {
			rec.Calories = domain.CalorieInfo{Status: domain.CalorieKnown, PerServing: kcal}
		} else {
			rec.Calories = domain.CalorieInfo{Status: domain.CalorieUnknown}
		}

		// Pace after every record regardless of outcome.
		if err := p.pacer.Wait(ctx); err != nil {
			return 0, fmt.Errorf("run aborted: %w", err)
		}
	}

	if err := p.writer.WriteTable(p.outputPath, records); err != nil {
		return 0, err
	}

	p.log.Info("run complete", "rows", len(records), "output", p.outputPath)
	return len(records), nil
}

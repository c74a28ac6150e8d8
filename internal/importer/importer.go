// Package importer implements the tax batch-import pipeline: read, validate,
// map, chunk, submit, aggregate.
package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/Knetic/govaluate"
	"github.com/rs/zerolog"

	"taxsync/internal/config"
	"taxsync/internal/hubspot"
	taxio "taxsync/internal/io"
	"taxsync/internal/logging"
	"taxsync/internal/util"
)

// DefaultBatchDelay is the fixed pause inserted after every batch submission
// as a blunt rate-limit mitigation. It is not adaptive and not a backoff.
const DefaultBatchDelay = 500 * time.Millisecond

// Stats carries the running totals of one import run. Counters are never
// decremented; the struct is returned by value and owned by the caller once
// Run completes.
type Stats struct {
	Total      int
	Successful int
	Failed     int
}

// BatchCreator is the slice of the HubSpot client the importer needs.
type BatchCreator interface {
	BatchCreate(ctx context.Context, batch []hubspot.Properties) (*hubspot.BatchResponse, error)
}

// Options configures one Importer.
type Options struct {
	// Mapping is the source-column to target-property translation table.
	// Nil selects DefaultTaxMapping.
	Mapping Mapping
	// RequiredColumns must all appear in the first input record.
	// Nil selects DefaultRequiredColumns.
	RequiredColumns []string
	// BatchSize caps each submitted group. Zero selects hubspot.MaxBatchSize.
	BatchSize int
	// BatchDelay is the pause after each batch. Zero selects DefaultBatchDelay.
	BatchDelay time.Duration
	// Filter is an optional govaluate expression; records evaluating false
	// are dropped before validation.
	Filter string
	// BaseURL overrides the API host (tests point this at a local server).
	BaseURL string
	// Token, when non-empty, is used as the credential directly. Otherwise
	// the TokenProvider is consulted at the start of each run.
	Token string
}

// Importer drives one or more sequential import runs.
type Importer struct {
	opts   Options
	tokens config.TokenProvider
	logger zerolog.Logger

	// Seams for tests.
	newAPI func(baseURL, token string) BatchCreator
	sleep  func(time.Duration)
}

// New creates an Importer, filling unset options with defaults.
func New(opts Options, tokens config.TokenProvider) *Importer {
	if opts.Mapping == nil {
		opts.Mapping = DefaultTaxMapping()
	}
	if opts.RequiredColumns == nil {
		opts.RequiredColumns = DefaultRequiredColumns()
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = hubspot.MaxBatchSize
	}
	if opts.BatchDelay <= 0 {
		opts.BatchDelay = DefaultBatchDelay
	}
	return &Importer{
		opts:   opts,
		tokens: tokens,
		logger: logging.NewLogger("importer"),
		newAPI: func(baseURL, token string) BatchCreator {
			return hubspot.NewClient(baseURL, token)
		},
		sleep: time.Sleep,
	}
}

// Run executes one import: resolve credential, read, filter, validate,
// transform, chunk, submit, aggregate. A credential or read failure aborts
// with zero stats and an error. A validation failure terminates early and
// returns zero stats without an error. Submission failures are batch-scoped:
// a hard call failure marks the whole batch failed and the run continues.
func (imp *Importer) Run(ctx context.Context, source taxio.InputReader, path string) (Stats, error) {
	stats := Stats{}

	token := imp.opts.Token
	if token == "" {
		var err error
		token, err = imp.tokens.AccessToken()
		if err != nil {
			return stats, fmt.Errorf("failed to resolve API token: %w", err)
		}
		imp.logger.Info().Msg("Resolved API token from credential provider")
	}

	records, err := source.Read(path)
	if err != nil {
		return stats, fmt.Errorf("failed to read input data: %w", err)
	}
	imp.logger.Info().Int("records", len(records)).Msg("Loaded input records")

	if imp.opts.Filter != "" {
		records, err = imp.applyFilter(records)
		if err != nil {
			return stats, err
		}
	}

	if !ValidateColumns(records, imp.opts.RequiredColumns) {
		imp.logger.Error().Msg("Input validation failed, import aborted")
		return stats, nil
	}

	stats.Total = len(records)
	imp.logger.Info().Int("total", stats.Total).Msg("Starting tax import")

	mapped := make([]hubspot.Properties, 0, len(records))
	for _, rec := range records {
		props := imp.opts.Mapping.Apply(rec)
		imp.logger.Debug().Interface("record", util.MaskSensitiveData(rec)).Interface("properties", props).Msg("Mapped record")
		mapped = append(mapped, props)
	}

	batches := Chunk(mapped, imp.opts.BatchSize)
	imp.logger.Info().Int("batches", len(batches)).Msg("Input split into batches")

	api := imp.newAPI(imp.opts.BaseURL, token)
	for i, batch := range batches {
		batchNum := i + 1
		imp.logger.Info().
			Int("batch", batchNum).
			Int("of", len(batches)).
			Int("records", len(batch)).
			Msg("Submitting batch")

		resp, err := api.BatchCreate(ctx, batch)
		if err != nil {
			// A hard call failure fails the whole batch; the run continues
			// with the next one.
			imp.logger.Error().Err(err).Int("batch", batchNum).Msg("Batch submission failed")
			stats.Failed += len(batch)
		} else {
			stats.Successful += len(resp.Results)
			imp.logger.Info().
				Int("batch", batchNum).
				Int("created", len(resp.Results)).
				Msg("Batch completed")
			for _, batchErr := range resp.Errors {
				imp.logger.Error().
					Int("batch", batchNum).
					Str("category", batchErr.Category).
					Str("message", batchErr.Message).
					Msg("Error in batch response")
				stats.Failed++
			}
		}

		imp.sleep(imp.opts.BatchDelay)
	}

	imp.logger.Info().
		Int("successful", stats.Successful).
		Int("failed", stats.Failed).
		Msg("Import completed")
	return stats, nil
}

// applyFilter drops records for which the expression evaluates to anything
// but true. A record that fails evaluation is skipped with a warning.
func (imp *Importer) applyFilter(records []map[string]interface{}) ([]map[string]interface{}, error) {
	expr, err := govaluate.NewEvaluableExpression(imp.opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression '%s': %w", imp.opts.Filter, err)
	}

	kept := make([]map[string]interface{}, 0, len(records))
	skipped := 0
	for i, rec := range records {
		result, evalErr := expr.Evaluate(rec)
		if evalErr != nil {
			imp.logger.Warn().Err(evalErr).Int("record", i).Msg("Filter evaluation failed, skipping record")
			skipped++
			continue
		}
		keep, isBool := result.(bool)
		if !isBool {
			imp.logger.Warn().Int("record", i).Interface("result", result).Msg("Filter returned non-boolean, skipping record")
			skipped++
			continue
		}
		if keep {
			kept = append(kept, rec)
		} else {
			skipped++
		}
	}
	imp.logger.Info().Int("kept", len(kept)).Int("skipped", skipped).Msg("Filter applied")
	return kept, nil
}

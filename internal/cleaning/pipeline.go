package cleaning

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"deliverycli/internal/config"
	"deliverycli/internal/dataset"
)

// Issue keys recorded directly by the pipeline (stages contribute the rest
// through their stat mappings).
const (
	StatTimeOrderedMissing = ColTimeOrdered + "_clean_missing"
	StatTimePickedMissing  = ColTimePicked + "_clean_missing"
	StatOrderDateMissing   = "Order_Date_parse_missing"
)

// Pipeline runs the full cleaning sequence over a dataset.
type Pipeline struct {
	logger *slog.Logger
	cfg    config.CleaningConfig
	tracer trace.Tracer
}

// New creates a pipeline with the given heuristics. A nil logger falls back
// to the slog default.
func New(logger *slog.Logger, cfg config.CleaningConfig) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger: logger,
		cfg:    cfg,
		tracer: otel.Tracer("deliverycli/cleaning"),
	}
}

// Result carries the two output artifacts and the accumulated diagnostics.
// Cleaned and Normalized are produced side by side; the normalized dataset
// is derived from the cleaned one, not fed back into it.
type Result struct {
	Cleaned    *dataset.Dataset
	Normalized *dataset.Dataset
	Issues     *IssueLog
}

// Clean runs every stage in dependency order and returns the cleaned
// dataset, its min-max normalized companion, and the issue log. The input
// dataset is never mutated. No stage fails: anomalies become missing
// values and aggregate counts.
func (p *Pipeline) Clean(ctx context.Context, ds *dataset.Dataset) *Result {
	issues := NewIssueLog()
	p.logger.InfoContext(ctx, "starting cleaning pipeline",
		slog.Int("rows", ds.Rows()),
		slog.Int("columns", ds.NumColumns()))

	cleaned := p.runStage(ctx, "tidy_strings", ds, TidyStrings)

	for _, col := range timeOfDayColumns {
		name := col
		cleaned = p.runStage(ctx, "standardize_time_"+name, cleaned, func(ds *dataset.Dataset) *dataset.Dataset {
			return StandardizeTimeColumn(ds, name)
		})
		if clean, ok := cleaned.Column(name + cleanSuffix); ok {
			issues.Record(name+cleanSuffix+"_missing", clean.MissingCount())
		}
	}

	cleaned = p.runStage(ctx, "parse_dates", cleaned, ParseOrderDates)
	if parsed, ok := cleaned.Column(ColOrderDateClean); ok {
		issues.Record(StatOrderDateMissing, parsed.MissingCount())
	}

	cleaned = p.runStage(ctx, "enforce_ranges", cleaned, EnforceNumericRanges)
	cleaned = p.runStage(ctx, "scrub_coordinates", cleaned, ScrubCoordinates)
	cleaned = p.runStage(ctx, "derive_intervals", cleaned, DeriveTimeIntervals)

	cleaned = p.runStatStage(ctx, "standardize_units", cleaned, issues, func(ds *dataset.Dataset) (*dataset.Dataset, *IssueLog) {
		return StandardizeUnits(ds, p.cfg)
	})
	cleaned = p.runStatStage(ctx, "cap_outliers", cleaned, issues, func(ds *dataset.Dataset) (*dataset.Dataset, *IssueLog) {
		return CapOutliers(ds, p.cfg)
	})
	cleaned = p.runStatStage(ctx, "fill_missing", cleaned, issues, FillMissingValues)

	cleaned = p.runStage(ctx, "convert_categoricals", cleaned, ConvertCategoricals)
	cleaned = p.runStatStage(ctx, "remove_duplicates", cleaned, issues, RemoveDuplicates)

	normalized := p.runStage(ctx, "normalize_numeric", cleaned, NormalizeNumericColumns)

	p.logger.InfoContext(ctx, "cleaning pipeline finished",
		slog.Int("rows", cleaned.Rows()),
		slog.Int("columns", cleaned.NumColumns()))

	return &Result{Cleaned: cleaned, Normalized: normalized, Issues: issues}
}

func (p *Pipeline) runStage(ctx context.Context, name string, ds *dataset.Dataset, stage func(*dataset.Dataset) *dataset.Dataset) *dataset.Dataset {
	ctx, span := p.startSpan(ctx, name, ds)
	defer span.End()

	out := stage(ds)
	p.logger.DebugContext(ctx, "stage complete",
		slog.String("stage", name),
		slog.Int("rows", out.Rows()),
		slog.Int("columns", out.NumColumns()))
	return out
}

func (p *Pipeline) runStatStage(ctx context.Context, name string, ds *dataset.Dataset, issues *IssueLog, stage func(*dataset.Dataset) (*dataset.Dataset, *IssueLog)) *dataset.Dataset {
	ctx, span := p.startSpan(ctx, name, ds)
	defer span.End()

	out, stats := stage(ds)
	issues.Merge(stats)
	attrs := make([]slog.Attr, 0, len(stats.order)+1)
	attrs = append(attrs, slog.String("stage", name))
	for _, k := range stats.order {
		attrs = append(attrs, slog.Int(k, stats.counts[k]))
	}
	p.logger.LogAttrs(ctx, slog.LevelDebug, "stage complete", attrs...)
	return out
}

func (p *Pipeline) startSpan(ctx context.Context, name string, ds *dataset.Dataset) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, "cleaning."+name, trace.WithAttributes(
		attribute.Int("dataset.rows", ds.Rows()),
		attribute.Int("dataset.columns", ds.NumColumns()),
	))
}

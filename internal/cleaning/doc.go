// Package cleaning implements the delivery-dataset cleaning pipeline.
//
// The pipeline is a linear sequence of pure transformation stages over an
// in-memory dataset. Each stage clones its input, mutates the private copy,
// and returns it, so callers never observe partial mutation. Stages compose
// in strict dependency order because later stages consume columns produced
// by earlier ones (interval derivation needs parsed dates and time-of-day
// minutes, unit standardization needs the derived intervals, and so on).
//
// # Stages
//
//  1. TidyStrings: whitespace/NA normalization and category spelling fixes
//  2. StandardizeTimeColumn: free-form time of day to HH:MM plus minutes
//  3. ParseOrderDates: strict DD-MM-YYYY parsing
//  4. EnforceNumericRanges: domain bounds for age, rating, multi-deliveries
//  5. ScrubCoordinates: zero latitude/longitude sentinels become missing
//  6. DeriveTimeIntervals: order-to-pickup and pickup-to-delivery minutes
//  7. StandardizeUnits: seconds-vs-minutes and metres-vs-kilometres fixes
//  8. CapOutliers: Tukey-fence clipping per column
//  9. FillMissingValues: median/mean/mode imputation by column class
// 10. ConvertCategoricals: category typing for enumerated columns
// 11. RemoveDuplicates: exact then natural-key deduplication
// 12. NormalizeNumericColumns: optional min-max scaled companion dataset
//
// # Error handling
//
// The pipeline favors silent data-quality correction over failure:
// unparseable or out-of-domain values become missing, absent columns are
// skipped, and per-column anomalies surface only in aggregate through the
// issue log. Every stage is a total function over its input.
package cleaning

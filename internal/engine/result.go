package engine

import "varbench/internal/stats"

// VariantResult is the aggregated, read-only output for one variant.
type VariantResult struct {
	Name        string
	Description string
	Stats       stats.Summary
	// Repetitions is the number of samples actually measured,
	// before trimming.
	Repetitions int
	// Result is the variant's last result sample, when any trial
	// produced one.
	Result    float64
	HasResult bool
}

// GroupResult groups aggregated variant results by (algorithm, size).
type GroupResult struct {
	Algorithm string
	Size      int
	Results   []VariantResult
}

// Collect aggregates raw series into grouped results, preserving the
// original group and variant order. Series order follows group order by
// construction, so grouping is a single pass.
func Collect(series []Series, filterOutliers bool) []GroupResult {
	var groups []GroupResult
	for _, s := range series {
		n := len(groups)
		if n == 0 || groups[n-1].Algorithm != s.Algorithm || groups[n-1].Size != s.Size {
			groups = append(groups, GroupResult{Algorithm: s.Algorithm, Size: s.Size})
			n++
		}
		groups[n-1].Results = append(groups[n-1].Results, VariantResult{
			Name:        s.Variant.Name(),
			Description: s.Variant.Description(),
			Stats:       stats.Aggregate(s.Samples, filterOutliers),
			Repetitions: len(s.Samples),
			Result:      s.Result,
			HasResult:   s.HasResult,
		})
	}
	return groups
}

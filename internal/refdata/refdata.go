package refdata

import (
	"fmt"
	"sort"

	"climate-scenarios/internal/model"
)

// MissingSentinel marks "no data" in reference tables. Sentinel values are
// excluded from interpolation, never coerced to zero.
const MissingSentinel = 9999

// ConfigurationError reports a reference dataset or column that does not
// exist or has no usable data. It is always fatal to a generation pass; the
// generator never silently substitutes data.
type ConfigurationError struct {
	Dataset string
	Column  string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("reference dataset %q: %s", e.Dataset, e.Reason)
	}
	return fmt.Sprintf("reference dataset %q column %q: %s", e.Dataset, e.Column, e.Reason)
}

// Dataset is a table of named columns indexed by year offset from the start
// of the 100-year horizon. Anchors are sparse; series values between anchors
// are linearly interpolated.
type Dataset struct {
	Key         string
	Name        string
	Description string

	// AnchorYears are year offsets (0..100) at which columns are sampled.
	AnchorYears []int
	// Columns maps a pathway name to one value per anchor year, in degrees
	// above pre-industrial. MissingSentinel marks unsampled cells.
	Columns map[string][]float64
}

// Approximated decadal warming anchors for four SSP pathways, loosely based
// on IPCC AR6 assessed ranges. Illustrative, not a published model.
var sspPathways = Dataset{
	Key:         "ssp_pathways",
	Name:        "Approximated SSP warming pathways",
	Description: "Decadal warming anchors for SSP5-8.5, SSP2-4.5, SSP1-2.6 and SSP1-1.9, interpolated to yearly resolution",
	AnchorYears: []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90},
	Columns: map[string][]float64{
		"SSP5-8.5": {1.2, 1.6, 2.0, 2.4, 2.9, 3.3, 3.8, 4.2, 4.6, 5.0},
		"SSP2-4.5": {1.2, 1.5, 1.8, 2.0, 2.3, 2.5, 2.6, 2.7, 2.8, 2.9},
		"SSP1-2.6": {1.2, 1.4, 1.6, 1.7, 1.8, 1.8, 1.8, 1.8, 1.7, 1.7},
		"SSP1-1.9": {1.2, 1.4, 1.5, 1.6, 1.6, 1.5, 1.5, 1.4, 1.4, 1.4},
	},
}

// CMIP6-style warming-level anchors: sparser sampling at assessment-period
// midpoints, with sentinel cells where a pathway was not assessed.
var cmip6WarmingLevels = Dataset{
	Key:         "cmip6_warming_levels",
	Name:        "CMIP6 assessed warming levels",
	Description: "Warming at assessment-period midpoints per pathway; unassessed cells carry the 9999 sentinel",
	AnchorYears: []int{10, 30, 50, 70, 90},
	Columns: map[string][]float64{
		"SSP5-8.5": {1.6, 2.4, MissingSentinel, 4.1, 4.9},
		"SSP2-4.5": {1.5, 2.0, 2.4, MissingSentinel, 2.8},
		"SSP1-2.6": {1.4, 1.7, MissingSentinel, 1.8, 1.7},
		"SSP1-1.9": {1.4, 1.6, 1.5, MissingSentinel, 1.4},
	},
}

var datasets = map[string]Dataset{
	sspPathways.Key:        sspPathways,
	cmip6WarmingLevels.Key: cmip6WarmingLevels,
}

// Datasets returns all reference datasets sorted by key.
func Datasets() []Dataset {
	out := make([]Dataset, 0, len(datasets))
	for _, d := range datasets {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ColumnNames returns the dataset's column names sorted for stable output.
func (d Dataset) ColumnNames() []string {
	out := make([]string, 0, len(d.Columns))
	for name := range d.Columns {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LoadReferenceSeries returns a length-sample yearly series for one column of
// a named dataset. Values between anchors are linearly interpolated; sentinel
// anchors are treated as missing and skipped. Outside the first/last usable
// anchor the nearest usable value is held flat.
func LoadReferenceSeries(datasetKey, column string, length int) (model.ScenarioSeries, error) {
	d, ok := datasets[datasetKey]
	if !ok {
		return nil, &ConfigurationError{Dataset: datasetKey, Reason: "no such dataset"}
	}
	vals, ok := d.Columns[column]
	if !ok {
		return nil, &ConfigurationError{Dataset: datasetKey, Column: column, Reason: "no such column"}
	}

	if len(vals) != len(d.AnchorYears) {
		return nil, &ConfigurationError{Dataset: datasetKey, Column: column, Reason: fmt.Sprintf("%d values for %d anchor years", len(vals), len(d.AnchorYears))}
	}
	anchors := make([]anchor, 0, len(vals))
	for i, v := range vals {
		if v == MissingSentinel {
			continue
		}
		anchors = append(anchors, anchor{year: d.AnchorYears[i], value: v})
	}
	if len(anchors) == 0 {
		return nil, &ConfigurationError{Dataset: datasetKey, Column: column, Reason: "no usable anchor points (all values are the missing-data sentinel)"}
	}

	out := make(model.ScenarioSeries, length)
	for year := 0; year < length; year++ {
		out[year] = interpolate(anchors, year)
	}
	return out, nil
}

type anchor struct {
	year  int
	value float64
}

// interpolate evaluates the piecewise-linear function through the anchors at
// the given year, holding flat beyond the ends.
func interpolate(anchors []anchor, year int) float64 {
	if year <= anchors[0].year {
		return anchors[0].value
	}
	last := anchors[len(anchors)-1]
	if year >= last.year {
		return last.value
	}
	for i := 1; i < len(anchors); i++ {
		if year <= anchors[i].year {
			lo, hi := anchors[i-1], anchors[i]
			t := float64(year-lo.year) / float64(hi.year-lo.year)
			return lo.value + t*(hi.value-lo.value)
		}
	}
	return last.value
}

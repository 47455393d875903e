package scenario

import (
	"encoding/csv"
	"os"
	"strconv"

	"climate-scenarios/internal/model"
)

// WriteScenarioCSV writes the four series as a year-indexed table. Column
// names are the scenarios' snake_case keys; values keep enough precision for
// replotting.
func WriteScenarioCSV(path string, set *model.ScenarioSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"year"}
	for _, s := range model.Scenarios() {
		header = append(header, s.Key())
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for year := 0; year < model.SeriesLength; year++ {
		row := []string{strconv.Itoa(year)}
		for _, s := range model.Scenarios() {
			series := set.Series(s)
			v := 0.0
			if year < len(series) {
				v = series[year]
			}
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

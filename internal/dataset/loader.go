package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"shareofmodel/internal/models"
)

// ErrSourceMissing indicates the dataset file does not exist. Callers
// render an empty state instead of failing.
var ErrSourceMissing = errors.New("dataset source missing")

// Columns the CSV header must contain. Extra columns are ignored.
var requiredColumns = []string{"keyword", "google_top_1_brand", "llm_recs", "rank_1_survived_ai"}

// Load reads the full dataset from a CSV file into memory, coercing the
// survival column to a boolean. Rows with a missing keyword or an
// unparseable survival value are skipped with a warning; they never abort
// the load.
func Load(path string) ([]models.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads dataset records from r. Exposed separately so tests and
// alternative sources can feed readers directly.
func Parse(r io.Reader) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("dataset header missing column %q", col)
		}
	}

	var records []models.Record
	skipped := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row: %w", err)
		}

		rec, err := parseRow(row, idx)
		if err != nil {
			skipped++
			if skipped <= 5 {
				slog.Warn("skipping dataset row", "line", line, "error", err)
			}
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		slog.Warn("dataset rows skipped", "skipped", skipped, "loaded", len(records))
	}
	return records, nil
}

func parseRow(row []string, idx map[string]int) (models.Record, error) {
	field := func(col string) (string, error) {
		i := idx[col]
		if i >= len(row) {
			return "", fmt.Errorf("row too short for column %q", col)
		}
		return row[i], nil
	}

	keyword, err := field("keyword")
	if err != nil {
		return models.Record{}, err
	}
	if strings.TrimSpace(keyword) == "" {
		return models.Record{}, errors.New("empty keyword")
	}

	brand, err := field("google_top_1_brand")
	if err != nil {
		return models.Record{}, err
	}
	recs, err := field("llm_recs")
	if err != nil {
		return models.Record{}, err
	}
	rawSurvived, err := field("rank_1_survived_ai")
	if err != nil {
		return models.Record{}, err
	}
	survived, err := ParseSurvived(rawSurvived)
	if err != nil {
		return models.Record{}, err
	}

	return models.Record{
		Keyword:        keyword,
		GoogleTopBrand: brand,
		LLMRecs:        recs,
		SurvivedAI:     survived,
	}, nil
}

// ParseSurvived coerces the textual encodings the upstream export uses for
// the survival column into a strict boolean.
func ParseSurvived(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes", "y":
		return true, nil
	case "false", "f", "0", "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized boolean value %q", s)
	}
}

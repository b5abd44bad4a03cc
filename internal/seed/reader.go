package seed

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/charmap"
)

// readRecords streams a delimited source file into raw string records,
// header row first. Type detection is disabled so numeric-looking values
// reach the parsers exactly as written in the file.
func readRecords(path string, latin1 bool) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if latin1 {
		// Files exported from spreadsheets are often Windows-1252 encoded.
		reader = charmap.Windows1252.NewDecoder().Reader(file)
	}

	df := dataframe.ReadCSV(reader,
		dataframe.WithDelimiter(','),
		dataframe.WithLazyQuotes(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Error() != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, df.Error())
	}

	records := df.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("source file %s has no header row", path)
	}

	return records, nil
}

// columnIndex maps the header row to column positions, failing when any
// required column is absent.
func columnIndex(header []string, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return idx, nil
}

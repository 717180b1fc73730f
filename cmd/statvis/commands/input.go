package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vdobler/statvis"
)

// stdinName selects standard input as the input file.
const stdinName = "-"

// openSample returns a deferred sample reading the numbers in path.
func openSample(path string, stdin io.Reader) *statvis.Deferred {
	return statvis.NewDeferred(func() ([]float64, error) {
		if path == stdinName {
			return readValues(stdin)
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}

		defer f.Close()

		return readValues(f)
	})
}

// readValues parses numbers separated by whitespace or commas.
func readValues(r io.Reader) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		for _, field := range strings.Split(scanner.Text(), ",") {
			if field == "" {
				continue
			}

			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("value %d: %q: %w", len(values)+1, field, statvis.ErrInvalidInput)
			}

			values = append(values, v)
		}
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return values, nil
}

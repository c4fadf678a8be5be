package distmatrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMatrix reads a headerless, delimiter-separated numeric matrix
// (spec.md §6): either symmetric (every row has N entries) or
// lower-triangular (row i has i+1 entries). delimiter is typically ','
// or '\t', chosen by the caller's flag, never inferred from a file
// extension. Every row must use the same delimiter: a field that fails
// to parse because it contains ',' or '\t' (a second delimiter) is
// reported as ErrMatrixFormat, any other unparsable field as ErrParse.
// A matrix that fails Validate is also reported as ErrMatrixFormat.
func ParseMatrix(r io.Reader, delimiter rune) (Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var rows Matrix
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, string(delimiter))
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				if strings.ContainsAny(strings.TrimSpace(f), ",\t") {
					return nil, fmt.Errorf("ParseMatrix: line %d field %d %q: mixed delimiters: %w", lineNo, i, f, ErrMatrixFormat)
				}
				return nil, fmt.Errorf("ParseMatrix: line %d field %d %q: %w", lineNo, i, f, ErrParse)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ParseMatrix: %w", err)
	}

	if err := rows.Validate(); err != nil {
		return nil, fmt.Errorf("ParseMatrix: %w", ErrMatrixFormat)
	}
	return rows, nil
}

// ParseIdentifiers reads one identifier per line, in row order, trimming
// surrounding whitespace. Ported from original_source/src/dist.rs's
// parse_identifiers.
func ParseIdentifiers(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var ids []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ParseIdentifiers: %w", err)
	}
	return ids, nil
}

// ValidateAlignedDimensions checks that af (if non-nil) has the same
// shape as d, and that ids (if non-nil) has length d.N() — spec.md §6's
// "shape mismatch between D and AF, or between matrix size and
// identifier count" failure mode.
func ValidateAlignedDimensions(d, af Matrix, ids []string) error {
	n := d.N()
	if af != nil {
		if af.N() != n {
			return fmt.Errorf("ValidateAlignedDimensions: AF has %d rows, want %d: %w", af.N(), n, ErrInvalidDimensions)
		}
		for i := range af {
			if len(af[i]) != len(d[i]) {
				return fmt.Errorf("ValidateAlignedDimensions: AF row %d has %d entries, D row has %d: %w", i, len(af[i]), len(d[i]), ErrInvalidDimensions)
			}
		}
	}
	if ids != nil && len(ids) != n {
		return fmt.Errorf("ValidateAlignedDimensions: %d identifiers, want %d: %w", len(ids), n, ErrInvalidDimensions)
	}
	return nil
}

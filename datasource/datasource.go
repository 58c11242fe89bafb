package datasource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/barchart"
	"golang.org/x/sync/errgroup"
)

const (
	ColName     = "name"
	ColValue    = "value"
	ColCategory = "category"
)

const Stdin = "-"

type Options struct {
	// Strict rejects values that are not numbers and names that appear more
	// than once instead of loading them as they are.
	Strict bool
	Client *http.Client
	Logger *slog.Logger
}

func (o Options) client() *http.Client {
	if o.Client == nil {
		return http.DefaultClient
	}
	return o.Client
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Load reads the dataset at location: a path, a file or http(s) URL, or
// Stdin.
func Load(ctx context.Context, location string, opts Options) ([]barchart.Row, error) {
	r, err := readFrom(ctx, location, opts.client())
	if err != nil {
		return nil, &LoadError{Location: location, Err: err}
	}
	defer r.Close()
	return read(r, location, opts)
}

// LoadAll loads every location concurrently. Datasets are returned in the
// order of locations; the first failure cancels the other loads.
func LoadAll(ctx context.Context, opts Options, locations ...string) ([][]barchart.Row, error) {
	var (
		sets   = make([][]barchart.Row, len(locations))
		grp, c = errgroup.WithContext(ctx)
	)
	for i := range locations {
		i := i
		grp.Go(func() error {
			rows, err := Load(c, locations[i], opts)
			if err == nil {
				sets[i] = rows
			}
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

func Read(r io.Reader, opts Options) ([]barchart.Row, error) {
	return read(r, "input", opts)
}

func read(r io.Reader, location string, opts Options) ([]barchart.Row, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1

	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, loadError(location, err)
	}
	cols, err := columns(header)
	if err != nil {
		return nil, &LoadError{Location: location, Line: 1, Err: err}
	}
	var (
		list   []barchart.Row
		seen   = make(map[string]struct{})
		logger = opts.logger()
	)
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, loadError(location, err)
		}
		line, _ := rs.FieldPos(0)

		r := barchart.Row{
			Name:     cellOr(row, cols[ColName], "undefined"),
			Category: cellOr(row, cols[ColCategory], "undefined"),
			Value:    math.NaN(),
		}
		raw, ok := cell(row, cols[ColValue])
		if ok {
			r.Value = ParseNumber(raw)
		}
		if math.IsNaN(r.Value) {
			if opts.Strict {
				return nil, &LoadError{Location: location, Line: line, Err: fmt.Errorf("%w: %q", ErrInvalidValue, raw)}
			}
			logger.Warn("value is not a number", "location", location, "line", line, "name", r.Name, "value", raw)
		}
		if _, ok := seen[r.Name]; ok {
			if opts.Strict {
				return nil, &LoadError{Location: location, Line: line, Err: fmt.Errorf("%w: %q", ErrDuplicateName, r.Name)}
			}
			logger.Warn("name already used, last row wins", "location", location, "line", line, "name", r.Name)
		}
		seen[r.Name] = struct{}{}
		list = append(list, r)
	}
	logger.Debug("dataset loaded", "location", location, "rows", len(list))
	return list, nil
}

func columns(header []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if _, ok := cols[h]; !ok {
			cols[h] = i
		}
	}
	for _, c := range []string{ColName, ColValue, ColCategory} {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	return cols, nil
}

func cell(row []string, i int) (string, bool) {
	if i < 0 || i >= len(row) {
		return "", false
	}
	return row[i], true
}

func cellOr(row []string, i int, def string) string {
	if v, ok := cell(row, i); ok {
		return v
	}
	return def
}

func loadError(location string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &LoadError{Location: location, Line: perr.Line, Err: perr.Err}
	}
	return &LoadError{Location: location, Err: err}
}

// ParseNumber converts str to a number following the rules of the unary
// plus of a browser: surrounding spaces are ignored, an empty string is
// zero, hexadecimal, octal and binary prefixes are accepted, and anything
// else that is not a decimal number is NaN.
func ParseNumber(str string) float64 {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0
	}
	switch str {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(str) > 2 && str[0] == '0' {
		var base int
		switch str[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base > 0 {
			n, err := strconv.ParseUint(str[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}
	for _, c := range str {
		if !strings.ContainsRune("0123456789+-.eE", c) {
			return math.NaN()
		}
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && errors.Is(nerr.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

func readFrom(ctx context.Context, location string, client *http.Client) (io.ReadCloser, error) {
	if location == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	u, err := url.Parse(location)
	if err != nil {
		return os.Open(location)
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("request does not end with success result code (%s)", res.Status)
		}
		return res.Body, nil
	case "file":
		return os.Open(u.Path)
	case "":
		return os.Open(location)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}

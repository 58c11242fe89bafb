package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/midbel/barchart"
	"github.com/midbel/barchart/config"
	"github.com/midbel/barchart/datasource"
)

const defaultData = "data.csv"

type options struct {
	Config string
	Output string
	Title  string
	From   string
	Hover  string
	At     time.Duration
	HTML   bool
	Strict bool
	Debug  bool

	snapshot bool
	atSet    bool
}

func main() {
	log.SetPrefix("barchart: ")
	log.SetFlags(0)

	var opts options
	flag.StringVar(&opts.Config, "config", "", "read settings from `file`")
	flag.StringVar(&opts.Output, "o", "", "write output to `file` (default: stdout)")
	flag.StringVar(&opts.Title, "title", "", "chart title")
	flag.StringVar(&opts.From, "from", "", "previous dataset the chart transitions from")
	flag.StringVar(&opts.Hover, "hover", "", "show the tooltip of the bar `name` in a static frame")
	flag.DurationVar(&opts.At, "at", 0, "write a static frame at `duration` after the transitions start")
	flag.BoolVar(&opts.HTML, "html", false, "write an HTML page instead of an SVG document")
	flag.BoolVar(&opts.Strict, "strict", false, "reject non numeric values and duplicate names")
	flag.BoolVar(&opts.Debug, "v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [data.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "at":
			opts.atSet = true
			opts.snapshot = true
		case "hover":
			opts.snapshot = true
		}
	})

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	if opts.Title != "" {
		cfg.Title = opts.Title
	}
	location := flag.Arg(0)
	if location == "" {
		location = defaultData
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg, opts, location, logger); err != nil {
		log.Println(err)
		os.Exit(2)
	}
}

func run(ctx context.Context, cfg config.Config, opts options, location string, logger *slog.Logger) error {
	sets, err := loadData(ctx, opts, location, logger)
	if err != nil {
		return err
	}
	ch := cfg.Chart()
	ch.Logger = logger
	for _, rows := range sets {
		ch.Update(rows)
	}
	at := opts.At
	if opts.Hover != "" {
		if !opts.atSet {
			at = ch.Binder().Enter
		}
		if !ch.Hover(hoverTime(ch, at), opts.Hover) {
			return fmt.Errorf("%s: no bar with this name", opts.Hover)
		}
	}
	return renderChart(opts.Output, func(w io.Writer) error {
		switch {
		case opts.snapshot:
			return ch.Snapshot(w, at)
		case opts.HTML:
			return ch.RenderPage(w)
		default:
			return ch.Render(w)
		}
	})
}

func loadData(ctx context.Context, opts options, location string, logger *slog.Logger) ([][]barchart.Row, error) {
	locations := []string{location}
	if opts.From != "" {
		locations = []string{opts.From, location}
	}
	sets, err := datasource.LoadAll(ctx, datasource.Options{
		Strict: opts.Strict,
		Logger: logger,
	}, locations...)
	if err != nil {
		return nil, fmt.Errorf("fail loading data: %w", err)
	}
	return sets, nil
}

// hoverTime is the time the pointer enters a bar for its tooltip to be
// fully visible at.
func hoverTime(ch *barchart.Chart, at time.Duration) time.Duration {
	if ch.Tooltip == nil {
		return at
	}
	return max(at-ch.Tooltip.Fade, 0)
}

func renderChart(file string, render func(io.Writer) error) (err error) {
	if file == "" {
		return render(os.Stdout)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render(f)
}

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"astelab/astesearch/internal/app"
)

type cliOptions struct {
	configPath string
	placesPath string
	query      string
	top        int
	interact   bool

	payload  bool
	tipo     string
	prezzo   string
	metri    string
	locali   string
	localita string
	scopo    string
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "astesearch-cli: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "astesearch-cli: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json (default: ./config.json)")
	flag.StringVar(&opts.placesPath, "places", "", "CSV/TSV/text file with localities (overrides config)")
	flag.StringVar(&opts.query, "query", "", "Run a single locality lookup and exit")
	flag.IntVar(&opts.top, "top", 0, "Maximum suggestions to print (overrides config topK)")
	flag.BoolVar(&opts.interact, "interactive", false, "Read queries from STDIN, one per line")
	flag.BoolVar(&opts.payload, "payload", false, "Build a search payload from the filter flags and print it as JSON")
	flag.StringVar(&opts.tipo, "tipo", "", "Property type (appartamento, villa, garage, ufficio, negozio, terreno)")
	flag.StringVar(&opts.prezzo, "prezzo", "", "Price range as MIN-MAX, either side optional")
	flag.StringVar(&opts.metri, "superficie", "", "Surface range in m2 as MIN-MAX")
	flag.StringVar(&opts.locali, "locali", "", "Rooms range as MIN-MAX")
	flag.StringVar(&opts.localita, "localita", "", "Locality for the payload (exact name or a query resolved against the list)")
	flag.StringVar(&opts.scopo, "scopo", "", "Purpose (abitare, investire)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [--query TEXT | --interactive | --payload --localita NAME [filters]]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.placesPath = strings.TrimSpace(opts.placesPath)
	opts.query = strings.TrimSpace(opts.query)
	opts.localita = strings.TrimSpace(opts.localita)

	modes := 0
	if opts.query != "" {
		modes++
	}
	if opts.interact {
		modes++
	}
	if opts.payload {
		modes++
	}
	if modes == 0 {
		flag.Usage()
		return opts, errors.New("one of --query, --interactive or --payload is required")
	}
	if modes > 1 {
		return opts, errors.New("--query, --interactive and --payload are mutually exclusive")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	cfg, err := app.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.placesPath != "" {
		cfg.PlacesPath = opts.placesPath
	}
	if opts.top > 0 {
		cfg.TopK = opts.top
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	svc, err := app.NewService(cfg, logger)
	if err != nil {
		return err
	}

	switch {
	case opts.payload:
		return runPayload(opts, svc)
	case opts.interact:
		return runInteractive(svc)
	default:
		printSuggestions(svc, opts.query)
		return nil
	}
}

func runInteractive(svc *app.Service) error {
	fmt.Println("Type a locality, empty line to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			break
		}
		printSuggestions(svc, query)
	}
	return scanner.Err()
}

func printSuggestions(svc *app.Service, query string) {
	places := svc.Suggest(query)
	if len(places) == 0 {
		fmt.Println("no matches")
		return
	}
	for _, p := range places {
		if p.Provincia != "" {
			fmt.Printf("%s (%s)\n", p.Nome, p.Provincia)
			continue
		}
		fmt.Println(p.Nome)
	}
}

// runPayload drives the wizard with the filter flags and prints the backend
// payload, the same flow the web front end walks through.
func runPayload(opts cliOptions, svc *app.Service) error {
	prezzo, err := parseRange(opts.prezzo)
	if err != nil {
		return fmt.Errorf("--prezzo: %w", err)
	}
	metri, err := parseRange(opts.metri)
	if err != nil {
		return fmt.Errorf("--superficie: %w", err)
	}
	locali, err := parseRange(opts.locali)
	if err != nil {
		return fmt.Errorf("--locali: %w", err)
	}

	w := app.NewWizard(nil)
	if err := w.SetFilters(app.PropertyType(opts.tipo), prezzo, metri, locali); err != nil {
		return err
	}
	if err := w.Next(); err != nil {
		return err
	}

	location := opts.localita
	if location != "" {
		if matches := svc.Suggest(location); len(matches) > 0 {
			location = matches[0].Nome
		}
	}
	w.SetLocation(location)
	if err := w.Next(); err != nil {
		return err
	}

	if err := w.SetPurpose(app.Purpose(opts.scopo)); err != nil {
		return err
	}
	if err := w.Next(); err != nil {
		return err
	}

	data, err := w.Criteria().EncodePayload()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// parseRange reads "MIN-MAX" with either side optional; a bare number is a
// minimum.
func parseRange(s string) (app.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return app.Range{}, nil
	}
	lo, hi, _ := strings.Cut(s, "-")
	var r app.Range
	var err error
	if strings.TrimSpace(lo) != "" {
		if r.Min, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
			return app.Range{}, fmt.Errorf("bad minimum %q", lo)
		}
	}
	if strings.TrimSpace(hi) != "" {
		if r.Max, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
			return app.Range{}, fmt.Errorf("bad maximum %q", hi)
		}
	}
	if !r.Valid() {
		return app.Range{}, fmt.Errorf("minimum %d above maximum %d", r.Min, r.Max)
	}
	return r, nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shop-analytics/event-dashboard/internal/config"
	"github.com/shop-analytics/event-dashboard/internal/dataset"
	"github.com/shop-analytics/event-dashboard/internal/pipeline"
	"github.com/shop-analytics/event-dashboard/internal/services"
)

// TerminalApplication is the dashboard without a windowing system: the same
// pipeline driven by a simple menu loop, printing tables instead of charts.
type TerminalApplication struct {
	logger   *zap.Logger
	cfg      *config.Config
	initFile string

	pipe    *pipeline.Pipeline
	scanner *bufio.Scanner

	state    *pipeline.AppState
	snapshot *pipeline.Snapshot
}

func NewTerminalApplication(logger *zap.Logger, cfg *config.Config, initFile string) *TerminalApplication {
	return &TerminalApplication{
		logger:   logger,
		cfg:      cfg,
		initFile: initFile,
		pipe:     pipeline.New(logger, cfg),
		scanner:  bufio.NewScanner(os.Stdin),
	}
}

func (a *TerminalApplication) Run() error {
	fmt.Printf("\n")
	fmt.Printf("=========================================\n")
	fmt.Printf("  %s\n", a.cfg.Dashboard.Title)
	fmt.Printf("=========================================\n")
	fmt.Printf("Version: %s\n", a.cfg.Application.Version)
	fmt.Printf("Data dir: %s\n", a.cfg.Data.Dir)
	fmt.Printf("=========================================\n")

	state, err := a.pipe.LoadInitial(a.initFile)
	if err != nil {
		if errors.Is(err, dataset.ErrNoData) {
			fmt.Printf("\nNo data available. Place the default CSV in the data directory\n")
			fmt.Printf("or pass one with -file.\n")
		}
		return err
	}
	a.state = state

	if err := a.recompute(); err != nil {
		return err
	}

	for {
		a.displayMenu()

		if !a.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(a.scanner.Text())
		if !a.handleInput(input) {
			break
		}
	}

	a.logger.Info("Terminal dashboard stopped")
	return nil
}

func (a *TerminalApplication) recompute() error {
	snap, err := a.pipe.Recompute(a.state)
	if err != nil {
		return err
	}
	a.snapshot = snap
	return nil
}

func (a *TerminalApplication) displayMenu() {
	fmt.Printf("\n")
	fmt.Printf("Range: %s  (%d rows)\n", a.snapshot.Range.String(), a.snapshot.RowCount)

	fmt.Printf("\n")
	fmt.Printf("Available Commands:\n")
	fmt.Printf("1. Key Metrics\n")
	fmt.Printf("2. Top Brands\n")
	fmt.Printf("3. Brand Purchase Rankings\n")
	fmt.Printf("4. Events Per Day\n")
	fmt.Printf("5. Category Price Stats\n")
	fmt.Printf("6. Price Summary & Sample\n")
	fmt.Printf("7. Set Date Range\n")
	fmt.Printf("8. Load CSV File\n")
	fmt.Printf("9. Exit\n")
	fmt.Printf("\nEnter command (1-9): ")
}

func (a *TerminalApplication) handleInput(input string) bool {
	switch input {
	case "1":
		a.showMetrics()
	case "2":
		a.showTopBrands()
	case "3":
		a.showPurchaseRankings()
	case "4":
		a.showTimeline()
	case "5":
		a.showCategories()
	case "6":
		a.showPriceSummary()
	case "7":
		a.handleSetRange()
	case "8":
		a.handleLoadFile()
	case "9":
		fmt.Printf("Exiting...\n")
		return false
	default:
		fmt.Printf("Invalid command. Please enter 1-9.\n")
	}
	return true
}

func (a *TerminalApplication) showMetrics() {
	snap := a.snapshot
	fmt.Printf("\nKey Performance Metrics\n")
	fmt.Printf("Total Products: %d\n", snap.DistinctProducts)
	if snap.Prices.Valid {
		fmt.Printf("Highest Price:  $%.2f\n", snap.Prices.Max)
		fmt.Printf("Lowest Price:   $%.2f\n", snap.Prices.Min)
		fmt.Printf("Median Price:   $%.2f\n", snap.Prices.Median)
	} else {
		fmt.Printf("Prices: no data in range\n")
	}

	timing := a.pipe.Timings().Summary()
	fmt.Printf("Last recompute: %s (p50 %s, p95 %s over %d runs)\n",
		snap.Elapsed, timing.P50, timing.P95, timing.Count)
}

func (a *TerminalApplication) showTopBrands() {
	fmt.Printf("\nTop Brands by Event Count\n")
	if len(a.snapshot.TopBrands) == 0 {
		fmt.Printf("No brand data in range.\n")
		return
	}
	for i, b := range a.snapshot.TopBrands {
		fmt.Printf("%2d. %-24s %d\n", i+1, b.Brand, b.Count)
	}
}

func (a *TerminalApplication) showPurchaseRankings() {
	snap := a.snapshot

	fmt.Printf("\nTop Brands by Sales Value\n")
	if len(snap.BrandPurchaseValue) == 0 {
		fmt.Printf("No purchases in range.\n")
	}
	for i, b := range snap.BrandPurchaseValue {
		fmt.Printf("%2d. %-24s $%.2f\n", i+1, b.Brand, b.Value)
	}

	fmt.Printf("\nTop Brands by Unique Products Sold\n")
	for i, b := range snap.BrandUniqueProducts {
		fmt.Printf("%2d. %-24s %d\n", i+1, b.Brand, b.Count)
	}
}

func (a *TerminalApplication) showTimeline() {
	tl := a.snapshot.Timeline
	fmt.Printf("\nEvents Per Day by Type\n")
	if len(tl.Dates) == 0 {
		fmt.Printf("No events in range.\n")
		return
	}

	fmt.Printf("%-12s", "date")
	for _, typ := range tl.Types {
		fmt.Printf(" %12s", typ)
	}
	fmt.Printf("\n")

	for i, date := range tl.Dates {
		fmt.Printf("%-12s", date)
		for j := range tl.Types {
			fmt.Printf(" %12d", tl.Counts[i][j])
		}
		fmt.Printf("\n")
	}
}

func (a *TerminalApplication) showCategories() {
	stats := a.snapshot.CategoryPrices
	fmt.Printf("\nPrice by Category\n")
	if len(stats) == 0 {
		fmt.Printf("No category data in range.\n")
		return
	}

	fmt.Printf("%-40s %8s %10s %10s %10s\n", "category", "count", "mean", "min", "max")
	for _, s := range stats {
		fmt.Printf("%-40s %8d %10.2f %10.2f %10.2f\n", s.Category, s.Count, s.Mean, s.Min, s.Max)
	}
}

func (a *TerminalApplication) showPriceSummary() {
	desc := a.snapshot.PriceSummary
	fmt.Printf("\nBasic Statistics of Prices\n")
	if !desc.Valid {
		fmt.Printf("No data in range.\n")
		return
	}

	fmt.Printf("count  %d\n", desc.Count)
	fmt.Printf("mean   %.4f\n", desc.Mean)
	fmt.Printf("std    %.4f\n", desc.Std)
	fmt.Printf("min    %.4f\n", desc.Min)
	fmt.Printf("25%%    %.4f\n", desc.Q1)
	fmt.Printf("50%%    %.4f\n", desc.Median)
	fmt.Printf("75%%    %.4f\n", desc.Q3)
	fmt.Printf("max    %.4f\n", desc.Max)

	if len(a.snapshot.Sample) > 0 {
		fmt.Printf("\nSample of Raw Data\n")
		for _, ev := range a.snapshot.Sample {
			fmt.Printf("%s  %-10s %-12s %-20s %8.2f\n",
				ev.Time.Format(time.RFC3339), ev.Type, ev.ProductID, ev.Brand, ev.Price)
		}
	}
}

func (a *TerminalApplication) handleSetRange() {
	min := a.state.Source.MinDate()
	max := a.state.Source.MaxDate()
	fmt.Printf("\nData covers %s .. %s\n", min.Format("2006-01-02"), max.Format("2006-01-02"))

	start, ok := a.promptDate("Start date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	end, ok := a.promptDate("End date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	r := dataset.NewDateRange(start, end)
	if r.Inverted() {
		fmt.Printf("Start is after end; range rejected.\n")
		return
	}

	a.state.SetRange(r)
	if err := a.recompute(); err != nil {
		fmt.Printf("Recompute failed: %v\n", err)
		return
	}
	fmt.Printf("Range set to %s (%d rows).\n", a.snapshot.Range.String(), a.snapshot.RowCount)
}

func (a *TerminalApplication) promptDate(prompt string) (time.Time, bool) {
	fmt.Printf("%s", prompt)
	if !a.scanner.Scan() {
		return time.Time{}, false
	}
	input := strings.TrimSpace(a.scanner.Text())
	ts, err := time.Parse("2006-01-02", input)
	if err != nil {
		fmt.Printf("Invalid date %q.\n", input)
		return time.Time{}, false
	}
	return ts, true
}

func (a *TerminalApplication) handleLoadFile() {
	scanner := services.NewFileScanner(a.logger, a.cfg.Data.Dir)
	files, err := scanner.GetCSVFiles()
	if err != nil {
		fmt.Printf("Scan failed: %v\n", err)
		return
	}

	if len(files) == 0 {
		fmt.Printf("No CSV files found under %s.\n", a.cfg.Data.Dir)
		return
	}

	fmt.Printf("\nCSV Files:\n")
	for i, f := range files {
		fmt.Printf("%d. %s (%d bytes, %s)\n", i+1, f.Name, f.Size, f.ModTime.Format("2006-01-02 15:04"))
		if i >= 9 {
			fmt.Printf("... and %d more files\n", len(files)-10)
			break
		}
	}

	fmt.Printf("\nEnter file number to load (or press Enter to cancel): ")
	if !a.scanner.Scan() {
		return
	}
	input := strings.TrimSpace(a.scanner.Text())
	if input == "" {
		return
	}

	num, err := strconv.Atoi(input)
	if err != nil || num < 1 || num > len(files) {
		fmt.Printf("Invalid selection.\n")
		return
	}

	table, err := a.pipe.Loader().LoadFile(files[num-1].Path)
	if err != nil {
		fmt.Printf("Load failed: %v\n", err)
		return
	}

	a.state.SetSource(table)
	if err := a.recompute(); err != nil {
		fmt.Printf("Recompute failed: %v\n", err)
		return
	}
	fmt.Printf("Loaded %s (%d rows, %s).\n",
		files[num-1].Name, table.NumRows(), a.snapshot.Range.String())
}

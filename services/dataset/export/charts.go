// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/gitdot5/excavator-pin-dimensions/pkg/logging"
	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
)

// ErrChartsUnavailable is returned by a nil ChartGenerator, the normal
// state when the host runs without the visualization capability.
var ErrChartsUnavailable = errors.New("chart generation unavailable")

const (
	chartTopManufacturers = 15
	histogramBins         = 30
)

// ChartGenerator renders the dataset visualizations as PNG files. A nil
// generator is valid and reports ErrChartsUnavailable, so hosts can treat
// the capability as optional.
type ChartGenerator struct {
	logger *logging.Logger
}

// NewChartGenerator creates a generator logging through the given logger.
func NewChartGenerator(logger *logging.Logger) *ChartGenerator {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChartGenerator{logger: logger}
}

// Generate writes up to three charts under outDir/charts: a manufacturer
// bar chart, a pin diameter histogram, and a weight class pie chart.
// Charts whose underlying data is empty are skipped, not zero-rendered.
// Returns the paths written.
func (g *ChartGenerator) Generate(t *dataset.Table, outDir string) ([]string, error) {
	if g == nil {
		return nil, ErrChartsUnavailable
	}
	if t == nil {
		g.logger.Error("chart generation with no data loaded")
		return nil, dataset.ErrNoData
	}

	stats, err := dataset.ComputeStatistics(t)
	if err != nil {
		return nil, err
	}

	chartsDir := filepath.Join(outDir, "charts")
	if err := os.MkdirAll(chartsDir, 0755); err != nil {
		g.logger.Error("error creating charts directory", "dir", chartsDir, "error", err.Error())
		return nil, fmt.Errorf("create charts directory: %w", err)
	}

	var written []string
	renderers := []struct {
		file   string
		render func(path string) (bool, error)
	}{
		{"manufacturer_distribution.png", func(p string) (bool, error) { return renderManufacturerChart(stats, p) }},
		{"pin_diameter_distribution.png", func(p string) (bool, error) { return renderDiameterHistogram(t, p) }},
		{"weight_class_distribution.png", func(p string) (bool, error) { return renderWeightClassPie(stats, p) }},
	}
	for _, r := range renderers {
		path := filepath.Join(chartsDir, r.file)
		rendered, err := r.render(path)
		if err != nil {
			g.logger.Error("error generating chart", "chart", r.file, "error", err.Error())
			return written, fmt.Errorf("render %s: %w", r.file, err)
		}
		if rendered {
			written = append(written, path)
		}
	}

	g.logger.Info("generated visualizations", "dir", chartsDir, "charts", len(written))
	return written, nil
}

// renderManufacturerChart draws model counts for the top manufacturers.
func renderManufacturerChart(stats *dataset.Statistics, path string) (bool, error) {
	counts := sortedCounts(stats.Manufacturers)
	if len(counts) == 0 {
		return false, nil
	}
	if len(counts) > chartTopManufacturers {
		counts = counts[:chartTopManufacturers]
	}

	bars := make([]chart.Value, len(counts))
	for i, mc := range counts {
		bars[i] = chart.Value{Label: mc.name, Value: float64(mc.count)}
	}

	bc := chart.BarChart{
		Title:      "Top Manufacturers by Model Count",
		Width:      1200,
		Height:     700,
		BarWidth:   50,
		BarSpacing: 25,
		Bars:       bars,
	}
	return true, renderPNG(path, bc.Render)
}

// renderDiameterHistogram bins the non-null stick pin diameters.
func renderDiameterHistogram(t *dataset.Table, path string) (bool, error) {
	var values []float64
	for i := 0; i < t.NumRows(); i++ {
		if v, ok := t.Cell(i, dataset.ColumnStickPinDiamMM).Number(); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return false, nil
	}

	min, max := values[0], values[0]
	for _, v := range values {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}

	bins := histogramBins
	width := (max - min) / float64(bins)
	if width == 0 {
		bins, width = 1, 1
	}
	counts := make([]int, bins)
	for _, v := range values {
		b := int((v - min) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}

	bars := make([]chart.Value, bins)
	for i, c := range counts {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.0f", min+float64(i)*width),
			Value: float64(c),
		}
	}

	bc := chart.BarChart{
		Title:      "Pin Diameter Distribution (mm)",
		Width:      1280,
		Height:     600,
		BarWidth:   25,
		BarSpacing: 15,
		Bars:       bars,
	}
	return true, renderPNG(path, bc.Render)
}

// renderWeightClassPie draws the weight class share of the fleet.
func renderWeightClassPie(stats *dataset.Statistics, path string) (bool, error) {
	var values []chart.Value
	for _, label := range dataset.WeightClassLabels() {
		if count := stats.WeightClasses[label]; count > 0 {
			values = append(values, chart.Value{Label: label, Value: float64(count)})
		}
	}
	if len(values) == 0 {
		return false, nil
	}

	pc := chart.PieChart{
		Title:  "Excavator Weight Class Distribution",
		Width:  800,
		Height: 800,
		Values: values,
	}
	return true, renderPNG(path, pc.Render)
}

func renderPNG(path string, render func(chart.RendererProvider, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render(chart.PNG, f); err != nil {
		return err
	}
	return f.Close()
}

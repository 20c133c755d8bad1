package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cascade/pkg/cache"
	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/errors"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Title:      "Revenue",
		Categories: testCategories(),
		Formats:    []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.Geometry == nil {
		t.Fatal("result should carry geometry")
	}
	if result.Stats.BarCount != 3 {
		t.Errorf("BarCount = %d, want 3", result.Stats.BarCount)
	}
	if result.Stats.ConnectorCount != 2 {
		t.Errorf("ConnectorCount = %d, want 2", result.Stats.ConnectorCount)
	}
	if len(result.DataHash) != 64 {
		t.Errorf("DataHash = %q, want 64 hex chars", result.DataHash)
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !strings.HasPrefix(string(svg), "<svg") {
		t.Error("missing SVG artifact")
	}
	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("missing JSON artifact")
	}

	// NullCache never hits
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("null cache should never hit")
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, testLogger())
	defer r.Close()

	opts := Options{Categories: testCategories(), Formats: []string{FormatSVG}}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("first run should miss")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact should match the rendered one")
	}
}

func TestRunnerRefreshBypassesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, testLogger())
	defer r.Close()

	opts := Options{Categories: testCategories()}
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	opts.Refresh = true
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.LayoutHit {
		t.Error("refresh should bypass the layout cache")
	}
}

func TestRunnerDatasetChangesKey(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, testLogger())
	defer r.Close()

	if _, err := r.Execute(context.Background(), Options{Categories: testCategories()}); err != nil {
		t.Fatal(err)
	}

	changed := testCategories()
	changed[0].Stacks[0].Value = 99
	result, err := r.Execute(context.Background(), Options{Categories: changed})
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.LayoutHit {
		t.Error("changed dataset must not reuse cached geometry")
	}
}

func TestRunnerMarginsChangeKey(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, testLogger())
	defer r.Close()

	if _, err := r.Execute(context.Background(), Options{Categories: testCategories()}); err != nil {
		t.Fatal(err)
	}

	wide := chart.Margin{Top: 20, Right: 30, Bottom: 40, Left: 120}
	result, err := r.Execute(context.Background(), Options{
		Categories: testCategories(),
		Chart:      chart.Config{Margin: wide},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.LayoutHit {
		t.Error("changed margins must not reuse cached geometry")
	}
	if result.Geometry.Margin.Left != wide.Left {
		t.Errorf("Margin.Left = %g, want %g", result.Geometry.Margin.Left, wide.Left)
	}
}

func TestRunnerTitleChangesArtifactKey(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, testLogger())
	defer r.Close()

	first, err := r.Execute(context.Background(), Options{
		Title:      "Revenue 2025",
		Categories: testCategories(),
		Formats:    []string{FormatSVG},
	})
	if err != nil {
		t.Fatal(err)
	}

	second, err := r.Execute(context.Background(), Options{
		Title:      "Revenue 2026",
		Categories: testCategories(),
		Formats:    []string{FormatSVG},
	})
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheInfo.RenderHit {
		t.Error("changed title must not reuse cached artifacts")
	}
	if string(first.Artifacts[FormatSVG]) == string(second.Artifacts[FormatSVG]) {
		t.Error("retitled chart rendered identical bytes")
	}
	if !strings.Contains(string(second.Artifacts[FormatSVG]), "Revenue 2026") {
		t.Error("SVG should carry the requested title")
	}
}

func TestRunnerExecuteInvalidInput(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())
	defer r.Close()

	_, err := r.Execute(context.Background(), Options{})
	if !errors.IsValidation(err) {
		t.Errorf("got %v, want validation error", err)
	}
}

func TestComputeLayoutStandalone(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())
	defer r.Close()

	g, err := r.ComputeLayout(context.Background(), Options{Categories: testCategories()})
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Bars) != 3 {
		t.Errorf("bars = %d", len(g.Bars))
	}

	artifacts, err := r.RenderArtifacts(context.Background(), g, Options{
		Categories: testCategories(),
		Formats:    []string{FormatJSON},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := artifacts[FormatJSON]; !ok {
		t.Error("missing JSON artifact")
	}
}

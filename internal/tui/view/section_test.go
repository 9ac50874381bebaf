package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/aadhaar-sanket/sanket/internal/insights"
	"github.com/aadhaar-sanket/sanket/internal/tui/chart"
)

func testPayload() *insights.Payload {
	return &insights.Payload{
		Insight1: []insights.AdminPulse{
			{District: "Khairthal-Tijara", AdminPulse: 48.2},
			{District: "Jaipur", AdminPulse: 3.1},
		},
		Insight2: []insights.FraudScore{
			{District: "Thoubal", FraudScore: 12.5},
		},
		Insight3: []insights.ChildGap{
			{District: "Bahraich", Age5to17: 120000, BioAge5to17: 1200},
			{District: "Shrawasti", Age5to17: 54000, BioAge5to17: 900},
			{District: "Balrampur", Age5to17: 61000, BioAge5to17: 30000},
		},
	}
}

func TestBuildSections_BarCounts(t *testing.T) {
	sections := BuildSections(testPayload(), 20, "Thoubal")
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	wantBars := []int{2, 1, 6}
	for i, s := range sections {
		if s.Number != i+1 {
			t.Errorf("section %d: Number = %d", i, s.Number)
		}
		if got := s.Chart.BarCount(); got != wantBars[i] {
			t.Errorf("section %d: BarCount() = %d, want %d", s.Number, got, wantBars[i])
		}
		out := ansi.Strip(s.Chart.Render())
		if got := strings.Count(out, chart.AxisGlyph); got != wantBars[i] {
			t.Errorf("section %d: rendered %d bars, want %d\n%s", s.Number, got, wantBars[i], out)
		}
	}
}

func TestBuildSections_Titles(t *testing.T) {
	sections := BuildSections(testPayload(), 20, "Thoubal")
	want := []string{TitleAdminMigration, TitleGhostUpdates, TitleChildGap}
	for i, s := range sections {
		if s.Title != want[i] {
			t.Errorf("section %d: Title = %q, want %q", i+1, s.Title, want[i])
		}
	}
}

func TestBuildSections_ChildGapSeries(t *testing.T) {
	s := BuildSections(testPayload(), 20, "Thoubal")[2]
	if len(s.Chart.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(s.Chart.Series))
	}
	if s.Chart.Series[0].Name != "Children Enrolled" || s.Chart.Series[1].Name != "Biometrics Updated" {
		t.Errorf("unexpected series names: %q, %q", s.Chart.Series[0].Name, s.Chart.Series[1].Name)
	}
	if s.Chart.Series[0].Values[0] != 120000 || s.Chart.Series[1].Values[0] != 1200 {
		t.Errorf("Bahraich values not carried: %v %v", s.Chart.Series[0].Values, s.Chart.Series[1].Values)
	}
}

func TestBuildSections_EmptyInsight(t *testing.T) {
	p := testPayload()
	p.Insight1 = nil

	sections := BuildSections(p, 20, "Thoubal")
	if got := sections[0].Chart.BarCount(); got != 0 {
		t.Errorf("empty insight1: BarCount() = %d, want 0", got)
	}
	if out := ansi.Strip(sections[0].Chart.Render()); out != chart.EmptyText {
		t.Errorf("empty insight1 rendered %q, want %q", out, chart.EmptyText)
	}
	if got := sections[1].Chart.BarCount(); got != 1 {
		t.Errorf("insight2 should be unaffected, BarCount() = %d", got)
	}
}

func TestBuildSections_NilPayload(t *testing.T) {
	for _, s := range BuildSections(nil, 20, "Thoubal") {
		if s.Chart.BarCount() != 0 {
			t.Errorf("section %d: expected no bars for nil payload", s.Number)
		}
	}
}

func TestBuildSections_FreezeDistrictInCallout(t *testing.T) {
	s := BuildSections(testPayload(), 20, "Imphal West")[1]
	if !strings.Contains(s.Callout, "Imphal West") {
		t.Errorf("callout %q does not name the freeze district", s.Callout)
	}
}

func TestRenderSection(t *testing.T) {
	sections := BuildSections(testPayload(), 20, "Thoubal")

	for _, width := range []int{0, 80, 140} {
		for _, s := range sections {
			out := ansi.Strip(RenderSection(s, width))

			if !strings.Contains(out, s.Heading) {
				t.Errorf("width %d section %d: missing heading %q\n%s", width, s.Number, s.Heading, out)
			}
			if got := strings.Count(out, chart.AxisGlyph); got != s.Chart.BarCount() {
				t.Errorf("width %d section %d: %d bars, want %d\n%s", width, s.Number, got, s.Chart.BarCount(), out)
			}
		}
	}
}

func TestRenderSection_NaturalWidthContent(t *testing.T) {
	s := BuildSections(testPayload(), 20, "Thoubal")[0]
	out := ansi.Strip(RenderSection(s, 0))

	for _, want := range []string{
		"1. " + TitleAdminMigration,
		"Detecting mass updates caused by District Renaming.",
		"Khairthal-Tijara shows massive demographic updates vs population.",
		"Verdict: Valid Administrative Event",
		"Khairthal-Tijara",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestChartWidthFor(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		configured int
		want       int
	}{
		{"unknown width", 0, 40, 40},
		{"fits exactly", 80, 40, 40},
		{"narrow terminal shrinks", 60, 40, 20},
		{"tiny terminal floors", 20, 40, minBarWidth},
		{"wide terminal keeps configured", 200, 40, 40},
		{"side by side leaves room for narrative", SideBySideWidth, 40, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChartWidthFor(tt.width, tt.configured); got != tt.want {
				t.Errorf("ChartWidthFor(%d, %d) = %d, want %d", tt.width, tt.configured, got, tt.want)
			}
		})
	}
}

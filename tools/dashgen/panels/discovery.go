package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RankingLatency returns a timeseries panel showing p95 discovery latency
// per view, including store and places lookups.
func RankingLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Discovery Latency p95").
		Description("End-to-end ranking latency per view (discover, map, saved)").
		Datasource(DSRef()).
		Height(ChartHeight).
		Span(ChartWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(happyarz_ranking_duration_seconds_bucket{job="`+Job+`"}[5m])) by (le, view))`,
			"{{view}}",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ResultSizeDistribution returns a bar gauge of how many businesses each
// discovery response carried over the last hour.
func ResultSizeDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Result Size Distribution").
		Description("Businesses returned per discovery request").
		Datasource(DSRef()).
		Height(ChartHeight).
		Span(ChartWidth).
		WithTarget(PromQuery(
			`sum(increase(happyarz_ranked_businesses_bucket{job="`+Job+`"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// BookmarkToggles returns a timeseries panel showing bookmarks added and
// removed per hour.
func BookmarkToggles() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Bookmark Toggles / hour").
		Description("Bookmarks added and removed").
		Datasource(DSRef()).
		Height(ChartHeight).
		Span(ChartWidth).
		WithTarget(PromQuery(
			`sum(increase(happyarz_bookmark_toggles_total{job="`+Job+`"}[1h])) by (state)`,
			"{{state}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// VerifiedBusinessesStat returns a stat panel showing the size of the
// current verified set.
func VerifiedBusinessesStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Verified Venues").
		Description("Businesses in the current verified set").
		Datasource(DSRef()).
		Height(ChartHeight).
		Span(6).
		WithTarget(PromQuery(`max(happyarz_verified_businesses{job="`+Job+`"})`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// UploadsByOutcome returns a timeseries panel showing uploads per hour split
// by outcome.
func UploadsByOutcome() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Uploads / hour").
		Description("Spreadsheet uploads by outcome (ok, rejected, failed)").
		Datasource(DSRef()).
		Height(ChartHeight).
		Span(6).
		WithTarget(PromQuery(
			`sum(increase(happyarz_uploads_total{job="`+Job+`"}[1h])) by (outcome)`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// RowErrorRatio returns a timeseries panel showing the share of uploaded
// rows rejected by validation.
func RowErrorRatio() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Row Error %").
		Description("Share of spreadsheet rows rejected by validation").
		Datasource(DSRef()).
		Height(ChartHeight).
		Span(6).
		WithTarget(PromQuery(
			`happyarz:ingestion_row_errors:rate1h / (happyarz:ingestion_rows:rate1h > 0) * 100`,
			"error %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(10, 50)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// IngestionDuration returns a timeseries panel showing the p95 time to parse
// and persist an upload.
func IngestionDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Ingestion Duration (p95)").
		Description("95th percentile upload parse and persist duration").
		Datasource(DSRef()).
		Height(ChartHeight).
		Span(6).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(happyarz_ingestion_duration_seconds_bucket{job="`+Job+`"}[1h])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

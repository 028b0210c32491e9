package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PlacesCallsRate returns a timeseries panel showing nearby-places API calls
// and failures per second.
func PlacesCallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Places Calls Rate").
		Description("Nearby-places API calls and degraded lookups per second").
		Datasource(DSRef()).
		Height(ChartHeight).
		Span(ChartWidth).
		WithTarget(PromQuery(`happyarz:places_api_calls:rate5m`, "calls/s", "A")).
		WithTarget(PromQuery(`happyarz:places_errors:rate5m`, "errors/s", "B")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PlacesQuotaGauge returns a gauge showing rolling 24h places usage as a
// percentage of the daily limit.
func PlacesQuotaGauge() *gauge.PanelBuilder {
	expr := fmt.Sprintf(`max(happyarz_places_daily_usage{job="%s"}) / %d * 100`, Job, PlacesDailyLimit)
	return gauge.NewPanelBuilder().
		Title("Places Quota %").
		Description(fmt.Sprintf("Rolling 24h nearby-places usage (limit: %d)", PlacesDailyLimit)).
		Datasource(DSRef()).
		Height(ChartHeight).
		Span(ChartWidth).
		WithTarget(PromQuery(expr, "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(80, 95)).
		ColorScheme(ColorSchemeThresholds())
}

// PlacesLimitHits returns a stat panel showing the number of daily limit
// hits in the past 24 hours.
func PlacesLimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limit Hits (24h)").
		Description("Times the nearby-places daily limit was reached in the last 24 hours").
		Datasource(DSRef()).
		Height(ChartHeight).
		Span(ChartWidth).
		WithTarget(PromQuery(`increase(happyarz_places_daily_limit_hits_total{job="`+Job+`"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

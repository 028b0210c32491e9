// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/happy-arz/tools/dashgen/panels"
)

// OverviewUID is the stable dashboard UID, so re-imports replace the
// previous version.
const OverviewUID = "happyarz-overview"

// BuildOverview constructs the Happy Arz Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Happy Arz Overview").
		Uid(OverviewUID).
		Tags([]string{"happyarz"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.LiveDiscountsStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyByRoute()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Discovery").
		WithPanel(panels.RankingLatency()).
		WithPanel(panels.ResultSizeDistribution()).
		WithPanel(panels.BookmarkToggles()))

	b.WithRow(dashboard.NewRowBuilder("Ingestion").
		WithPanel(panels.VerifiedBusinessesStat()).
		WithPanel(panels.UploadsByOutcome()).
		WithPanel(panels.RowErrorRatio()).
		WithPanel(panels.IngestionDuration()))

	b.WithRow(dashboard.NewRowBuilder("Nearby Places").
		WithPanel(panels.PlacesCallsRate()).
		WithPanel(panels.PlacesQuotaGauge()).
		WithPanel(panels.PlacesLimitHits()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}

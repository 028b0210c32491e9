package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "happyarz-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "happyarz-recording",
					Rules: []Rule{
						{
							Record: "happyarz:http_requests:rate5m",
							Expr:   `sum(rate(happyarz_http_requests_total[5m]))`,
						},
						{
							Record: "happyarz:http_errors:rate5m",
							Expr:   `sum(rate(happyarz_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "happyarz:ingestion_rows:rate1h",
							Expr:   `sum(rate(happyarz_ingestion_rows_total[1h]))`,
						},
						{
							Record: "happyarz:ingestion_row_errors:rate1h",
							Expr:   `sum(rate(happyarz_ingestion_rows_total{result="error"}[1h]))`,
						},
						{
							Record: "happyarz:places_api_calls:rate5m",
							Expr:   `rate(happyarz_places_api_calls_total[5m])`,
						},
						{
							Record: "happyarz:places_errors:rate5m",
							Expr:   `rate(happyarz_places_errors_total[5m])`,
						},
					},
				},
			},
		},
	}
}

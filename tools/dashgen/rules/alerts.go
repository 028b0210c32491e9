package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// happy-arz operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "happyarz-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "happyarz-alerts",
					Rules: []Rule{
						{
							Alert: "HappyArzDown",
							Expr:  `absent(up{job="happyarz"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Happy Arz is down",
								"description": "The happyarz job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "HappyArzReadinessDown",
							Expr:  `happyarz_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Happy Arz cannot reach its store",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "HappyArzHighErrorRate",
							Expr:  `happyarz:http_errors:rate5m / happyarz:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Happy Arz",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "HappyArzUploadFailures",
							Expr:  `increase(happyarz_uploads_total{outcome="failed"}[15m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Verified spreadsheet upload failed to persist",
								"description": "An upload parsed but the store rejected the replacement or history write.",
							},
						},
						{
							Alert: "HappyArzVerifiedSetEmpty",
							Expr:  `max(happyarz_verified_businesses) == 0`,
							For:   "30m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "No verified venues loaded",
								"description": "The verified set has been empty for 30 minutes; discovery only shows nearby places.",
							},
						},
						{
							Alert: "HappyArzPlacesDegraded",
							Expr:  `happyarz:places_errors:rate5m > 0.1`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Nearby-places lookups are failing",
								"description": "Discovery has been falling back to verified-only results for 10 minutes.",
							},
						},
						{
							Alert: "HappyArzPlacesLimitReached",
							Expr:  `increase(happyarz_places_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Nearby-places daily limit has been reached",
								"description": "The places quota is exhausted; discovery shows verified venues only until reset.",
							},
						},
					},
				},
			},
		},
	}
}

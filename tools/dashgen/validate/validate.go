// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and may only reference known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/model/labels"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/happy-arz/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// MetricNames parses expr and returns the metric names it selects, sorted
// and de-duplicated.
func MetricNames(expr string) ([]string, error) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		name := vs.Name
		if name == "" {
			for _, m := range vs.LabelMatchers {
				if m.Name == labels.MetricName && m.Type == labels.MatchEqual {
					name = m.Value
				}
			}
		}
		if name != "" {
			seen[name] = struct{}{}
		}
		return nil
	})

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	names, err := MetricNames(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}
	for _, n := range names {
		if !known[n] {
			res.errorf("%s: unknown metric %q", where, n)
		}
	}
}

// Dashboard validates every Prometheus target in d, including panels nested
// in rows.
func Dashboard(d dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range d.Panels {
		if p.Panel != nil {
			checkPanel(&res, p.Panel, known)
		}
		if p.RowPanel != nil {
			for i := range p.RowPanel.Panels {
				checkPanel(&res, &p.RowPanel.Panels[i], known)
			}
		}
	}
	return res
}

func checkPanel(res *Result, p *dashboard.Panel, known map[string]bool) {
	title := "untitled panel"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		res.warnf("panel %q has no targets", title)
		return
	}
	for i, t := range p.Targets {
		expr, err := targetExpr(t)
		if err != nil {
			res.errorf("panel %q target %d: %v", title, i, err)
			continue
		}
		if expr == "" {
			res.warnf("panel %q target %d has no expression", title, i)
			continue
		}
		checkExpr(res, fmt.Sprintf("panel %q", title), expr, known)
	}
}

// targetExpr reads the expr field from a dataquery without depending on
// its concrete type.
func targetExpr(target any) (string, error) {
	data, err := json.Marshal(target)
	if err != nil {
		return "", fmt.Errorf("encoding target: %w", err)
	}
	var q struct {
		Expr string `json:"expr"`
	}
	if err := json.Unmarshal(data, &q); err != nil {
		return "", fmt.Errorf("decoding target: %w", err)
	}
	return q.Expr, nil
}

// Rules validates every expression in the rule CRs. Records defined by the
// CRs count as known for the rules that follow them.
func Rules(known map[string]bool, crs ...rules.PrometheusRule) Result {
	var res Result

	defined := make(map[string]bool, len(known))
	for k, v := range known {
		defined[k] = v
	}

	for _, cr := range crs {
		for _, g := range cr.Spec.Groups {
			for _, r := range g.Rules {
				name := r.Record
				if name == "" {
					name = r.Alert
				}
				if name == "" {
					res.errorf("group %q: rule without record or alert name", g.Name)
					continue
				}
				checkExpr(&res, fmt.Sprintf("rule %q", name), r.Expr, defined)
				if r.Record != "" {
					defined[r.Record] = true
				}
				if r.Alert != "" && r.Labels["severity"] == "" {
					res.warnf("alert %q has no severity label", r.Alert)
				}
			}
		}
	}
	return res
}

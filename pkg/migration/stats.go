package migration

// ReconSummary aggregates the reconciliation rows for the dashboard
// header: totals per status, record sums, and the overall match rate.
type ReconSummary struct {
	Rows         int     `json:"rows"`
	SourceTotal  int     `json:"sourceTotal"`
	TargetTotal  int     `json:"targetTotal"`
	NotOKTotal   int     `json:"notOkTotal"`
	ToLoadTotal  int     `json:"toLoadTotal"`
	SuccessCount int     `json:"successCount"`
	WarningCount int     `json:"warningCount"`
	FailedCount  int     `json:"failedCount"`
	MatchRate    float64 `json:"matchRate"`
}

// SummarizeRecon computes the reconciliation summary over the given rows.
func SummarizeRecon(rows []ReconRow) ReconSummary {
	var s ReconSummary
	s.Rows = len(rows)
	for _, row := range rows {
		s.SourceTotal += row.SourceCount
		s.TargetTotal += row.TargetCount
		s.NotOKTotal += row.NotOKCount
		s.ToLoadTotal += row.ToLoadCount
		switch row.Status {
		case "SUCCESS":
			s.SuccessCount++
		case "WARNING":
			s.WarningCount++
		case "FAILED":
			s.FailedCount++
		}
	}
	if s.SourceTotal > 0 {
		matched := s.SourceTotal - s.NotOKTotal
		if matched < 0 {
			matched = 0
		}
		s.MatchRate = float64(matched) / float64(s.SourceTotal) * 100
	}
	return s
}

// RuleSummary aggregates test rule results.
type RuleSummary struct {
	Rules       int `json:"rules"`
	Passed      int `json:"passed"`
	Failed      int `json:"failed"`
	NotOKTotal  int `json:"notOkTotal"`
	TotalChecks int `json:"totalChecks"`
}

// SummarizeRules computes the pass/fail summary over the given rules.
// A rule passes when it flagged no records.
func SummarizeRules(rules []TestRule) RuleSummary {
	var s RuleSummary
	s.Rules = len(rules)
	for _, r := range rules {
		s.NotOKTotal += r.NotOKCount
		s.TotalChecks += r.TotalCount
		if r.NotOKCount == 0 {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// PipelineProgress is the rollup across all lifecycle steps.
type PipelineProgress struct {
	Steps            int     `json:"steps"`
	Completed        int     `json:"completed"`
	RecordsProcessed int     `json:"recordsProcessed"`
	TotalRecords     int     `json:"totalRecords"`
	Errors           int     `json:"errors"`
	PercentComplete  float64 `json:"percentComplete"`
}

// SummarizePipeline computes overall pipeline progress. A step counts
// as completed when it finished successfully or with warnings.
func SummarizePipeline(steps []Step) PipelineProgress {
	var p PipelineProgress
	p.Steps = len(steps)
	for _, s := range steps {
		p.RecordsProcessed += s.RecordsProcessed
		p.TotalRecords += s.TotalRecords
		p.Errors += s.Errors
		if s.Status == StatusSuccess || s.Status == StatusWarning {
			p.Completed++
		}
	}
	if p.TotalRecords > 0 {
		p.PercentComplete = float64(p.RecordsProcessed) / float64(p.TotalRecords) * 100
	}
	return p
}

// ObjectSummary aggregates the object inventory.
type ObjectSummary struct {
	Objects       int            `json:"objects"`
	Active        int            `json:"active"`
	Reconciled    int            `json:"reconciled"`
	Records       int            `json:"records"`
	FailedRecords int            `json:"failedRecords"`
	ByStatus      map[Status]int `json:"byStatus"`
}

// SummarizeObjects computes the inventory rollup.
func SummarizeObjects(objects []Object) ObjectSummary {
	s := ObjectSummary{ByStatus: make(map[Status]int)}
	s.Objects = len(objects)
	for _, o := range objects {
		if o.Active {
			s.Active++
		}
		if o.Reconciled {
			s.Reconciled++
		}
		s.Records += o.Records
		s.FailedRecords += o.FailedRecords
		s.ByStatus[o.Status]++
	}
	return s
}

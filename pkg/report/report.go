package report

import "time"

// Type identifies a kind of finding. Every Type is owned by exactly one reporter module.
type Type string

// Report is the canonical, deduplicatable representation of a single finding.
// Treat it as a value: New copies AdditionalData so callers never share the map.
type Report struct {
	TopLevelTarget string            `json:"top_level_target"`
	Target         string            `json:"target"`
	ReportType     Type              `json:"report_type"`
	AdditionalData map[string]string `json:"additional_data"`
	Timestamp      time.Time         `json:"timestamp"`
}

// New builds a Report. It never fails.
func New(topLevelTarget, target string, reportType Type, additionalData map[string]string, timestamp time.Time) Report {
	data := make(map[string]string, len(additionalData))
	for k, v := range additionalData {
		data[k] = v
	}
	return Report{
		TopLevelTarget: topLevelTarget,
		Target:         target,
		ReportType:     reportType,
		AdditionalData: data,
		Timestamp:      timestamp,
	}
}

// Data returns a single additional data value, or "" when absent.
func (r Report) Data(key string) string {
	return r.AdditionalData[key]
}

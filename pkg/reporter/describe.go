package reporter

import "github.com/user/scanreport/pkg/report"

// FragmentInfo describes one template fragment of a reporter.
type FragmentInfo struct {
	Name        string        `json:"name"`
	Title       string        `json:"title"`
	Priority    int           `json:"priority"`
	ReportTypes []report.Type `json:"report_types"`
}

// Info describes a registered reporter.
type Info struct {
	Name        string         `json:"name"`
	ReportTypes []report.Type  `json:"report_types"`
	Fragments   []FragmentInfo `json:"fragments"`
}

// Describe lists the registered reporters in registration order.
func (r *Registry) Describe() []Info {
	out := make([]Info, 0, len(r.reporters))
	for _, rep := range r.reporters {
		info := Info{Name: rep.Name(), ReportTypes: rep.ReportTypes()}
		seen := make(map[string]bool)
		for _, t := range info.ReportTypes {
			for _, f := range r.types[t].fragments {
				if seen[f.Name] {
					continue
				}
				seen[f.Name] = true
				info.Fragments = append(info.Fragments, FragmentInfo{
					Name:        f.Name,
					Title:       f.Title,
					Priority:    f.Priority,
					ReportTypes: f.ReportTypes,
				})
			}
		}
		out = append(out, info)
	}
	return out
}

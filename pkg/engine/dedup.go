package engine

import (
	"sort"

	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/scoring"
)

// Candidate is a report together with the score and normal form its type's rules
// assigned to it.
type Candidate struct {
	Report     report.Report
	Score      scoring.Score
	NormalForm report.NormalForm
}

// Group is a set of candidates describing the same finding.
type Group struct {
	Representative Candidate
	Members        []Candidate // in input order, representative included

	first int // input position of the first member
}

type groupKey struct {
	reportType report.Type
	normalForm report.NormalForm
}

// better reports whether a should represent a group instead of b: higher score
// first, then the more recent timestamp. Full ties keep b, the earlier one.
func better(a, b Candidate) bool {
	if b.Score.Less(a.Score) {
		return true
	}
	if a.Score.Less(b.Score) {
		return false
	}
	return a.Report.Timestamp.After(b.Report.Timestamp)
}

// Deduplicate scores and keys every report with the given rules and groups them.
func Deduplicate(reports []report.Report, score func(report.Report) scoring.Score, normalForm func(report.Report) report.NormalForm) []Group {
	candidates := make([]Candidate, len(reports))
	for i, r := range reports {
		candidates[i] = Candidate{Report: r, Score: score(r), NormalForm: normalForm(r)}
	}
	return GroupCandidates(candidates)
}

// GroupCandidates groups candidates by report type and normal form in a single
// pass. Groups are returned in order of first appearance.
func GroupCandidates(candidates []Candidate) []Group {
	index := make(map[groupKey]int)
	var groups []Group

	for i, c := range candidates {
		key := groupKey{reportType: c.Report.ReportType, normalForm: c.NormalForm}
		gi, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, Group{Representative: c, Members: []Candidate{c}, first: i})
			continue
		}
		g := &groups[gi]
		g.Members = append(g.Members, c)
		if better(c, g.Representative) {
			g.Representative = c
		}
	}
	return groups
}

// Order sorts groups for output: most significant representative first, then the
// most recent one, then order of first appearance.
func Order(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Representative, groups[j].Representative
		if c := scoring.Compare(a.Score, b.Score); c != 0 {
			return c > 0
		}
		if !a.Report.Timestamp.Equal(b.Report.Timestamp) {
			return a.Report.Timestamp.After(b.Report.Timestamp)
		}
		return groups[i].first < groups[j].first
	})
}

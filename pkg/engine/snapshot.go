package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/scoring"
)

const DefaultSnapshotPath = ".scanreport-baseline.json"

// SnapshotEntry is the part of an entry a later run is compared against.
type SnapshotEntry struct {
	Fingerprint string        `json:"fingerprint"`
	ReportType  report.Type   `json:"report_type"`
	Target      string        `json:"target"`
	Score       scoring.Score `json:"score"`
}

// Snapshot records the findings of a previous run.
type Snapshot struct {
	ID        uuid.UUID       `json:"id"`
	RunID     uuid.UUID       `json:"run_id"`
	CreatedAt time.Time       `json:"created_at"`
	Entries   []SnapshotEntry `json:"entries"`
}

// NewSnapshot captures result.
func NewSnapshot(result *Result) Snapshot {
	s := Snapshot{
		ID:        uuid.New(),
		RunID:     result.RunID,
		CreatedAt: result.GeneratedAt,
		Entries:   make([]SnapshotEntry, 0, len(result.Entries)),
	}
	for _, e := range result.Entries {
		s.Entries = append(s.Entries, SnapshotEntry{
			Fingerprint: e.Fingerprint,
			ReportType:  e.Report.ReportType,
			Target:      e.Report.Target,
			Score:       e.Score,
		})
	}
	return s
}

// SaveSnapshot writes the findings of result to path.
func SaveSnapshot(path string, result *Result) error {
	data, err := json.MarshalIndent(NewSnapshot(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (Snapshot, error) {
	var s Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return s, nil
}

// snapshotKey mirrors the grouping key: a fingerprint only identifies a finding
// within its report type.
func snapshotKey(t report.Type, fingerprint string) string {
	return string(t) + "\x00" + fingerprint
}

func (e SnapshotEntry) key() string {
	return snapshotKey(e.ReportType, e.Fingerprint)
}

func (e Entry) key() string {
	return snapshotKey(e.Report.ReportType, e.Fingerprint)
}

func (s Snapshot) keys() map[string]bool {
	seen := make(map[string]bool, len(s.Entries))
	for _, e := range s.Entries {
		seen[e.key()] = true
	}
	return seen
}

// Diff is the outcome of comparing a run with a snapshot.
type Diff struct {
	New       []Entry
	Fixed     []SnapshotEntry
	Unchanged []Entry
}

// Compare matches the entries of result against baseline by report type and
// fingerprint. New and Unchanged keep result order; Fixed is sorted by type, then
// fingerprint.
func Compare(result *Result, baseline Snapshot) Diff {
	var d Diff
	old := baseline.keys()
	current := make(map[string]bool, len(result.Entries))
	for _, e := range result.Entries {
		current[e.key()] = true
		if old[e.key()] {
			d.Unchanged = append(d.Unchanged, e)
		} else {
			d.New = append(d.New, e)
		}
	}
	for _, e := range baseline.Entries {
		if !current[e.key()] {
			d.Fixed = append(d.Fixed, e)
		}
	}
	sort.Slice(d.Fixed, func(i, j int) bool {
		if d.Fixed[i].ReportType != d.Fixed[j].ReportType {
			return d.Fixed[i].ReportType < d.Fixed[j].ReportType
		}
		return d.Fixed[i].Fingerprint < d.Fixed[j].Fingerprint
	})
	return d
}

// FilterNew returns a copy of result without the entries already in baseline.
func FilterNew(result *Result, baseline Snapshot) *Result {
	old := baseline.keys()
	out := *result
	out.Entries = make([]Entry, 0, len(result.Entries))
	for _, e := range result.Entries {
		if !old[e.key()] {
			out.Entries = append(out.Entries, e)
		}
	}
	out.Stats.Groups = len(out.Entries)
	return &out
}

// Summary renders d as a short plain-text listing.
func (d Diff) Summary(limit int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("NEW: %d\n", len(d.New)))
	for _, e := range d.New {
		sb.WriteString(fmt.Sprintf("  [+] %s %s\n", e.Report.ReportType, e.Report.Target))
	}
	sb.WriteString(fmt.Sprintf("FIXED: %d\n", len(d.Fixed)))
	for _, e := range d.Fixed {
		sb.WriteString(fmt.Sprintf("  [-] %s %s\n", e.ReportType, e.Target))
	}
	sb.WriteString(fmt.Sprintf("UNCHANGED: %d\n", len(d.Unchanged)))
	for i, e := range d.Unchanged {
		if limit > 0 && i >= limit {
			sb.WriteString(fmt.Sprintf("  ... and %d more.\n", len(d.Unchanged)-limit))
			break
		}
		sb.WriteString(fmt.Sprintf("  [=] %s %s\n", e.Report.ReportType, e.Report.Target))
	}
	return sb.String()
}

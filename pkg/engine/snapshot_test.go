package engine

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/scanreport/pkg/report"
)

func entry(target string) Entry {
	r := finding(target, 1, base)
	nf := targetForm(r)
	return Entry{Report: r, Score: severityScore(r), NormalForm: nf, Fingerprint: nf.Fingerprint()}
}

func result(targets ...string) *Result {
	res := &Result{RunID: uuid.New(), Language: report.LanguageEnglish, GeneratedAt: base}
	for _, t := range targets {
		res.Entries = append(res.Entries, entry(t))
	}
	res.Stats.Groups = len(res.Entries)
	return res
}

func TestSnapshot_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "baseline.json")
	res := result("a.com", "b.com")

	require.NoError(t, SaveSnapshot(path, res))
	snap, err := LoadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, res.RunID, snap.RunID)
	assert.True(t, base.Equal(snap.CreatedAt))
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, res.Entries[0].Fingerprint, snap.Entries[0].Fingerprint)
	assert.Equal(t, "b.com", snap.Entries[1].Target)
}

func TestLoadSnapshot_Missing(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	baseline := NewSnapshot(result("a.com", "b.com"))
	current := result("b.com", "c.com")

	d := Compare(current, baseline)
	require.Len(t, d.New, 1)
	assert.Equal(t, "c.com", d.New[0].Report.Target)
	require.Len(t, d.Unchanged, 1)
	assert.Equal(t, "b.com", d.Unchanged[0].Report.Target)
	require.Len(t, d.Fixed, 1)
	assert.Equal(t, "a.com", d.Fixed[0].Target)

	summary := d.Summary(10)
	assert.Contains(t, summary, "NEW: 1")
	assert.Contains(t, summary, "[-] finding a.com")
}

func TestFilterNew(t *testing.T) {
	baseline := NewSnapshot(result("a.com"))
	current := result("a.com", "b.com")

	filtered := FilterNew(current, baseline)
	require.Len(t, filtered.Entries, 1)
	assert.Equal(t, "b.com", filtered.Entries[0].Report.Target)
	assert.Equal(t, 1, filtered.Stats.Groups)
	assert.Len(t, current.Entries, 2)
}

func TestCompare_SameFingerprintDifferentType(t *testing.T) {
	untyped := func(target string, typ report.Type) Entry {
		r := finding(target, 1, base)
		r.ReportType = typ
		nf := report.DictToTuple(map[string]string{"target": target})
		return Entry{Report: r, Score: severityScore(r), NormalForm: nf, Fingerprint: nf.Fingerprint()}
	}
	prev := &Result{RunID: uuid.New(), GeneratedAt: base, Entries: []Entry{untyped("a.com", "open_port")}}
	current := &Result{RunID: uuid.New(), GeneratedAt: base, Entries: []Entry{untyped("a.com", "expired_cert")}}
	require.Equal(t, prev.Entries[0].Fingerprint, current.Entries[0].Fingerprint)

	d := Compare(current, NewSnapshot(prev))
	require.Len(t, d.New, 1)
	assert.Equal(t, report.Type("expired_cert"), d.New[0].Report.ReportType)
	assert.Empty(t, d.Unchanged)
	require.Len(t, d.Fixed, 1)
	assert.Equal(t, report.Type("open_port"), d.Fixed[0].ReportType)

	assert.Len(t, FilterNew(current, NewSnapshot(prev)).Entries, 1)
}

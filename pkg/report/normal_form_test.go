package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictToTuple_OrderInsensitive(t *testing.T) {
	a := map[string]string{}
	a["type"] = "close_domain_expiration_date"
	a["target"] = "example.com"
	a["message"] = "01-01-2030"

	b := map[string]string{}
	b["message"] = "01-01-2030"
	b["target"] = "example.com"
	b["type"] = "close_domain_expiration_date"

	assert.Equal(t, DictToTuple(a), DictToTuple(b))
	assert.Equal(t, DictToTuple(a).Fingerprint(), DictToTuple(b).Fingerprint())
}

func TestDictToTuple_DistinguishesValues(t *testing.T) {
	a := DictToTuple(map[string]string{"target": "a.com", "message": "x"})
	b := DictToTuple(map[string]string{"target": "b.com", "message": "x"})
	assert.NotEqual(t, a, b)

	// Field boundaries must not be ambiguous.
	c := DictToTuple(map[string]string{"a": "b,c"})
	d := DictToTuple(map[string]string{"a,b": "c"})
	assert.NotEqual(t, c, d)
}

func TestDictToTuple_UsableAsMapKey(t *testing.T) {
	seen := map[NormalForm]int{}
	seen[DictToTuple(map[string]string{"k": "v"})]++
	seen[DictToTuple(map[string]string{"k": "v"})]++
	require.Len(t, seen, 1)
}

func TestDomainNormalForm(t *testing.T) {
	cases := map[string]string{
		"example.com":       "example.com",
		"WWW.Example.COM":   "example.com",
		"www.example.com.":  "example.com",
		" sub.example.com ": "sub.example.com",
		"bücher.example":    "xn--bcher-kva.example",
	}
	for in, want := range cases {
		assert.Equal(t, want, DomainNormalForm(in), in)
	}
}

func TestURLNormalForm(t *testing.T) {
	cases := map[string]string{
		"https://WWW.Example.com:443/admin/": "example.com/admin",
		"http://example.com":                 "example.com",
		"http://example.com:8080/x?y=1":      "example.com:8080/x?y=1",
		"example.com/login":                  "example.com/login",
	}
	for in, want := range cases {
		assert.Equal(t, want, URLNormalForm(in), in)
	}
}

func TestDomainScore_PrefersShorterAndNonWWW(t *testing.T) {
	assert.Greater(t, DomainScore("example.com"), DomainScore("sub.example.com"))
	assert.Greater(t, DomainScore("a.example.com"), DomainScore("www.example.com"))
	assert.Equal(t, DomainScore("Example.com."), DomainScore("example.com"))
}

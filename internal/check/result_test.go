package check_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/isdomain/internal/check"
	"github.com/tbckr/isdomain/internal/output"
)

func sampleResults() *check.MultiResult {
	return &check.MultiResult{Results: []*check.Result{
		{Input: "https://www.example.com", Hostname: "www.example.com", Valid: true},
		{Input: "-bad.com", Hostname: "-bad.com", Valid: false, Reason: "malformed"},
	}}
}

func TestMultiResult_Counts(t *testing.T) {
	m := sampleResults()
	assert.Equal(t, 1, m.Invalid())
	require.Len(t, m.Valid(), 1)
	assert.Equal(t, "www.example.com", m.Valid()[0].Hostname)
}

func TestMultiResult_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(sampleResults())
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"input": "https://www.example.com", "hostname": "www.example.com", "valid": true},
		{"input": "-bad.com", "hostname": "-bad.com", "valid": false, "reason": "malformed"}
	]`, string(data))

	data, err = json.Marshal(&check.MultiResult{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestMultiResult_WritePlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleResults().WritePlain(&buf))
	assert.Equal(t, "https://www.example.com\ttrue\n-bad.com\tfalse\n", buf.String())
}

func TestMultiResult_WriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleResults().WriteTable(&buf, output.NewStyler(&buf, false)))
	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "HOSTNAME")
	assert.Contains(t, out, "www.example.com")
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "malformed")
	assert.Less(t, strings.Index(out, "www.example.com"), strings.Index(out, "-bad.com"))
}

func TestMultiResult_Defanged(t *testing.T) {
	m := sampleResults()
	d := m.Defanged()
	assert.Equal(t, "hxxps://www[.]example[.]com", d.Results[0].Input)
	assert.Equal(t, "www[.]example[.]com", d.Results[0].Hostname)
	assert.True(t, d.Results[0].Valid)
	assert.Equal(t, "https://www.example.com", m.Results[0].Input, "original untouched")
}

func TestResult_WritePlain_Sanitizes(t *testing.T) {
	var buf bytes.Buffer
	r := &check.Result{Input: "\x1b[31mevil.com\x1b[0m", Valid: false}
	require.NoError(t, r.WritePlain(&buf))
	assert.Equal(t, "evil.com\tfalse\n", buf.String())
}

func TestExtractions(t *testing.T) {
	e := &check.Extractions{Items: []*check.Extraction{
		{Input: "http://a.example.com/x", Hostname: "a.example.com"},
		{Input: "http:///", Hostname: ""},
	}}

	var buf bytes.Buffer
	require.NoError(t, e.WritePlain(&buf))
	assert.Equal(t, "a.example.com\n\n", buf.String())

	data, err := json.Marshal(e.Defanged())
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"input": "hxxp://a[.]example[.]com/x", "hostname": "a[.]example[.]com"},
		{"input": "hxxp:///", "hostname": ""}
	]`, string(data))

	buf.Reset()
	require.NoError(t, e.WriteTable(&buf, nil))
	assert.Contains(t, buf.String(), "a.example.com")
}

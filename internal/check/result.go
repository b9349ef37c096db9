package check

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tbckr/isdomain/internal/output"
)

// Result is the verdict for a single input.
type Result struct {
	Input    string `json:"input"`
	Hostname string `json:"hostname"`
	Valid    bool   `json:"valid"`
	Reason   string `json:"reason,omitempty"`
}

// Defanged returns a copy of r with the input and hostname defanged.
func (r *Result) Defanged() *Result {
	c := *r
	c.Input = output.DefangURL(r.Input)
	c.Hostname = output.DefangDomain(r.Hostname)
	return &c
}

// WritePlain writes "input<TAB>true|false".
func (r *Result) WritePlain(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\t%t\n", output.Sanitize(r.Input), r.Valid)
	return err
}

// MultiResult holds the results for several inputs in input order.
type MultiResult struct {
	Results []*Result
}

// Invalid returns the number of rejected inputs.
func (m *MultiResult) Invalid() int {
	n := 0
	for _, r := range m.Results {
		if !r.Valid {
			n++
		}
	}
	return n
}

// Valid returns the results that passed validation.
func (m *MultiResult) Valid() []*Result {
	var out []*Result
	for _, r := range m.Results {
		if r.Valid {
			out = append(out, r)
		}
	}
	return out
}

// Defanged returns a copy of m with every result defanged.
func (m *MultiResult) Defanged() *MultiResult {
	out := &MultiResult{Results: make([]*Result, len(m.Results))}
	for i, r := range m.Results {
		out.Results[i] = r.Defanged()
	}
	return out
}

// MarshalJSON serializes the multi-result as a JSON array of individual results.
func (m *MultiResult) MarshalJSON() ([]byte, error) {
	if m.Results == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.Results)
}

// WritePlain writes one line per result.
func (m *MultiResult) WritePlain(w io.Writer) error {
	for _, r := range m.Results {
		if err := r.WritePlain(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders all results in a single table.
// Columns: Input / Hostname / Verdict / Reason.
func (m *MultiResult) WriteTable(w io.Writer, style *output.Styler) error {
	rows := make([][]string, 0, len(m.Results))
	for _, r := range m.Results {
		rows = append(rows, []string{
			output.Sanitize(r.Input),
			output.Sanitize(r.Hostname),
			style.Verdict(r.Valid),
			style.Dim(r.Reason),
		})
	}
	table := output.NewWrappingTable(w, 20, 40)
	table.Header([]string{"Input", "Hostname", "Verdict", "Reason"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

package check

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tbckr/isdomain/internal/output"
)

// Extraction is the hostname isolated from a single input.
type Extraction struct {
	Input    string `json:"input"`
	Hostname string `json:"hostname"`
}

// Extractions holds extraction output for several inputs.
type Extractions struct {
	Items []*Extraction
}

// Defanged returns a copy of e with inputs and hostnames defanged.
func (e *Extractions) Defanged() *Extractions {
	out := &Extractions{Items: make([]*Extraction, len(e.Items))}
	for i, it := range e.Items {
		out.Items[i] = &Extraction{Input: output.DefangURL(it.Input), Hostname: output.DefangDomain(it.Hostname)}
	}
	return out
}

// MarshalJSON serializes the extractions as a JSON array.
func (e *Extractions) MarshalJSON() ([]byte, error) {
	if e.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e.Items)
}

// WritePlain writes one hostname per line; empty hostnames produce empty lines
// so output lines stay aligned with input lines.
func (e *Extractions) WritePlain(w io.Writer) error {
	for _, it := range e.Items {
		if _, err := fmt.Fprintln(w, output.Sanitize(it.Hostname)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders Input / Hostname pairs.
func (e *Extractions) WriteTable(w io.Writer, _ *output.Styler) error {
	rows := make([][]string, 0, len(e.Items))
	for _, it := range e.Items {
		rows = append(rows, []string{output.Sanitize(it.Input), output.Sanitize(it.Hostname)})
	}
	table := output.NewWrappingTable(w, 20, 10)
	table.Header([]string{"Input", "Hostname"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

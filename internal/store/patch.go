package store

import (
	"fmt"
	"strings"
)

// Patch accumulates column assignments for a partial UPDATE. Column names
// are always compile-time constants supplied by the store methods; request
// data only ever flows into the argument list.
type Patch struct {
	cols []string
	args []any
}

// Set unconditionally adds an assignment.
func (p *Patch) Set(col string, val any) {
	p.cols = append(p.cols, col)
	p.args = append(p.args, val)
}

// SetIf adds an assignment only when the field was present and non-null
// in the request.
func SetIf[T any](p *Patch, col string, val *T) {
	if val == nil {
		return
	}
	p.Set(col, *val)
}

func (p *Patch) Empty() bool {
	return len(p.cols) == 0
}

// Build renders the SET clause with placeholders starting at first and
// returns the matching argument slice.
func (p *Patch) Build(first int) (string, []any) {
	parts := make([]string, len(p.cols))
	for i, c := range p.cols {
		parts[i] = fmt.Sprintf("%s = $%d", c, first+i)
	}
	return strings.Join(parts, ", "), p.args
}

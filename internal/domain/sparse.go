package domain

import (
	"fmt"
	"sort"
)

// TripletMatrix is a sparse matrix accumulator in coordinate (COO) form.
// It is the working representation while a matrix is being built; finished
// matrices are converted to CSR form.
type TripletMatrix struct {
	NRows int
	NCols int

	RowNames []string
	ColNames []string

	Rows []int
	Cols []int
	Vals []float64
}

// NewTripletMatrix creates an empty matrix with a fixed number of columns.
// Rows are appended as documents are consumed.
func NewTripletMatrix(ncols int, colNames []string) *TripletMatrix {
	return &TripletMatrix{NCols: ncols, ColNames: colNames}
}

// NewSquareTriplets creates an empty square matrix with both dimensions
// fixed to the given names, as used for co-occurrence counts.
func NewSquareTriplets(names []string) *TripletMatrix {
	return &TripletMatrix{
		NRows:    len(names),
		NCols:    len(names),
		RowNames: names,
		ColNames: names,
	}
}

// AppendRow adds one row with the given non-zero column values. Columns are
// recorded in ascending order so the build is deterministic.
func (m *TripletMatrix) AppendRow(name string, counts map[int]float64) {
	cols := make([]int, 0, len(counts))
	for c := range counts {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	row := m.NRows
	for _, c := range cols {
		m.Rows = append(m.Rows, row)
		m.Cols = append(m.Cols, c)
		m.Vals = append(m.Vals, counts[c])
	}
	m.RowNames = append(m.RowNames, name)
	m.NRows++
}

// Add accumulates a value at (i, j). Valid only for fixed-dimension matrices.
func (m *TripletMatrix) Add(i, j int, v float64) {
	m.Rows = append(m.Rows, i)
	m.Cols = append(m.Cols, j)
	m.Vals = append(m.Vals, v)
}

// NNZ returns the number of stored entries, including duplicates that have
// not been compacted yet.
func (m *TripletMatrix) NNZ() int {
	return len(m.Vals)
}

// Compact sorts entries by (row, col) and sums duplicates.
func (m *TripletMatrix) Compact() {
	if len(m.Vals) == 0 {
		return
	}

	idx := make([]int, len(m.Vals))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if m.Rows[ia] != m.Rows[ib] {
			return m.Rows[ia] < m.Rows[ib]
		}
		return m.Cols[ia] < m.Cols[ib]
	})

	rows := make([]int, 0, len(idx))
	cols := make([]int, 0, len(idx))
	vals := make([]float64, 0, len(idx))

	for _, i := range idx {
		n := len(rows)
		if n > 0 && rows[n-1] == m.Rows[i] && cols[n-1] == m.Cols[i] {
			vals[n-1] += m.Vals[i]
			continue
		}
		rows = append(rows, m.Rows[i])
		cols = append(cols, m.Cols[i])
		vals = append(vals, m.Vals[i])
	}

	m.Rows, m.Cols, m.Vals = rows, cols, vals
}

// ToCSR converts the accumulated triplets to compressed sparse row form.
func (m *TripletMatrix) ToCSR() *CSRMatrix {
	m.Compact()

	csr := &CSRMatrix{
		NRows:    m.NRows,
		NCols:    m.NCols,
		RowNames: m.RowNames,
		ColNames: m.ColNames,
		RowPtr:   make([]int, m.NRows+1),
		ColInd:   make([]int, len(m.Cols)),
		Vals:     make([]float64, len(m.Vals)),
	}
	copy(csr.ColInd, m.Cols)
	copy(csr.Vals, m.Vals)

	for _, r := range m.Rows {
		csr.RowPtr[r+1]++
	}
	for i := 1; i <= m.NRows; i++ {
		csr.RowPtr[i] += csr.RowPtr[i-1]
	}

	return csr
}

// MergeRowwise stacks partial matrices built over consecutive slices of the
// corpus. All parts must share the column space.
func MergeRowwise(parts ...*TripletMatrix) (*TripletMatrix, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("no partial matrices to merge")
	}

	out := NewTripletMatrix(parts[0].NCols, parts[0].ColNames)
	for _, p := range parts {
		if p.NCols != out.NCols {
			return nil, fmt.Errorf("column mismatch: %d vs %d", p.NCols, out.NCols)
		}
		offset := out.NRows
		for i := range p.Vals {
			out.Rows = append(out.Rows, p.Rows[i]+offset)
			out.Cols = append(out.Cols, p.Cols[i])
			out.Vals = append(out.Vals, p.Vals[i])
		}
		out.RowNames = append(out.RowNames, p.RowNames...)
		out.NRows += p.NRows
	}
	return out, nil
}

// MergeElementwise sums partial matrices of identical shape, as produced by
// workers accumulating co-occurrence counts over disjoint document chunks.
func MergeElementwise(parts ...*TripletMatrix) (*TripletMatrix, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("no partial matrices to merge")
	}

	first := parts[0]
	out := &TripletMatrix{
		NRows:    first.NRows,
		NCols:    first.NCols,
		RowNames: first.RowNames,
		ColNames: first.ColNames,
	}
	for _, p := range parts {
		if p.NRows != out.NRows || p.NCols != out.NCols {
			return nil, fmt.Errorf("shape mismatch: %dx%d vs %dx%d", p.NRows, p.NCols, out.NRows, out.NCols)
		}
		out.Rows = append(out.Rows, p.Rows...)
		out.Cols = append(out.Cols, p.Cols...)
		out.Vals = append(out.Vals, p.Vals...)
	}
	out.Compact()
	return out, nil
}

// CSRMatrix is a sparse matrix in compressed sparse row form. Row i's
// entries live in ColInd[RowPtr[i]:RowPtr[i+1]] and Vals[RowPtr[i]:RowPtr[i+1]].
type CSRMatrix struct {
	NRows int `json:"nrows"`
	NCols int `json:"ncols"`

	RowPtr []int     `json:"row_ptr"`
	ColInd []int     `json:"col_ind"`
	Vals   []float64 `json:"vals"`

	RowNames []string `json:"row_names,omitempty"`
	ColNames []string `json:"col_names,omitempty"`
}

// NNZ returns the number of stored entries.
func (m *CSRMatrix) NNZ() int {
	return len(m.Vals)
}

// At returns the value at (i, j), zero if not stored.
func (m *CSRMatrix) At(i, j int) float64 {
	for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
		if m.ColInd[k] == j {
			return m.Vals[k]
		}
	}
	return 0
}

// RowSum returns the sum of row i's entries.
func (m *CSRMatrix) RowSum(i int) float64 {
	var s float64
	for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
		s += m.Vals[k]
	}
	return s
}

// ColDocFreq returns, per column, the number of rows with a non-zero entry.
func (m *CSRMatrix) ColDocFreq() []int {
	df := make([]int, m.NCols)
	for i := 0; i < m.NRows; i++ {
		for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			if m.Vals[k] != 0 {
				df[m.ColInd[k]]++
			}
		}
	}
	return df
}

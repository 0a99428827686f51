package domain

import (
	"reflect"
	"testing"
)

func TestAppendRowToCSR(t *testing.T) {
	m := NewTripletMatrix(3, []string{"a", "b", "c"})
	m.AppendRow("d1", map[int]float64{0: 1, 2: 2})
	m.AppendRow("d2", map[int]float64{1: 1, 2: 1})
	m.AppendRow("d3", nil)

	csr := m.ToCSR()

	if csr.NRows != 3 || csr.NCols != 3 {
		t.Fatalf("unexpected shape %dx%d", csr.NRows, csr.NCols)
	}
	if got := csr.At(0, 2); got != 2 {
		t.Errorf("At(0,2) = %v, want 2", got)
	}
	if got := csr.At(0, 1); got != 0 {
		t.Errorf("At(0,1) = %v, want 0", got)
	}
	if got := csr.RowSum(2); got != 0 {
		t.Errorf("empty row sum = %v, want 0", got)
	}
	if csr.NNZ() != 4 {
		t.Errorf("nnz = %d, want 4", csr.NNZ())
	}
	if !reflect.DeepEqual(csr.RowNames, []string{"d1", "d2", "d3"}) {
		t.Errorf("row names %v", csr.RowNames)
	}
}

func TestCompactSumsDuplicates(t *testing.T) {
	m := NewSquareTriplets([]string{"a", "b"})
	m.Add(0, 1, 1)
	m.Add(0, 1, 0.5)
	m.Add(1, 1, 2)
	m.Compact()

	if m.NNZ() != 2 {
		t.Fatalf("nnz = %d, want 2", m.NNZ())
	}
	csr := m.ToCSR()
	if got := csr.At(0, 1); got != 1.5 {
		t.Errorf("At(0,1) = %v, want 1.5", got)
	}
}

func TestMergeRowwise(t *testing.T) {
	a := NewTripletMatrix(2, []string{"x", "y"})
	a.AppendRow("d1", map[int]float64{0: 1})
	b := NewTripletMatrix(2, []string{"x", "y"})
	b.AppendRow("d2", map[int]float64{1: 3})

	merged, err := MergeRowwise(a, b)
	if err != nil {
		t.Fatal(err)
	}

	csr := merged.ToCSR()
	if csr.NRows != 2 {
		t.Fatalf("nrows = %d, want 2", csr.NRows)
	}
	if got := csr.At(1, 1); got != 3 {
		t.Errorf("At(1,1) = %v, want 3", got)
	}
	if !reflect.DeepEqual(csr.RowNames, []string{"d1", "d2"}) {
		t.Errorf("row names %v", csr.RowNames)
	}
}

func TestMergeRowwiseShapeMismatch(t *testing.T) {
	a := NewTripletMatrix(2, nil)
	b := NewTripletMatrix(3, nil)

	if _, err := MergeRowwise(a, b); err == nil {
		t.Error("expected error for mismatched column counts")
	}
}

func TestMergeElementwise(t *testing.T) {
	a := NewSquareTriplets([]string{"a", "b"})
	a.Add(0, 1, 1)
	b := NewSquareTriplets([]string{"a", "b"})
	b.Add(0, 1, 2)
	b.Add(1, 1, 1)

	merged, err := MergeElementwise(a, b)
	if err != nil {
		t.Fatal(err)
	}

	csr := merged.ToCSR()
	if got := csr.At(0, 1); got != 3 {
		t.Errorf("At(0,1) = %v, want 3", got)
	}
	if got := csr.At(1, 1); got != 1 {
		t.Errorf("At(1,1) = %v, want 1", got)
	}
}

func TestColDocFreq(t *testing.T) {
	m := NewTripletMatrix(2, nil)
	m.AppendRow("d1", map[int]float64{0: 2})
	m.AppendRow("d2", map[int]float64{0: 1, 1: 1})

	df := m.ToCSR().ColDocFreq()
	if df[0] != 2 || df[1] != 1 {
		t.Errorf("df = %v, want [2 1]", df)
	}
}

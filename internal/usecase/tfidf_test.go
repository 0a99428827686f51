package usecase

import (
	"math"
	"testing"

	"textvec/internal/domain"
)

func TestTfIdf(t *testing.T) {
	m := domain.NewTripletMatrix(2, []string{"a", "b"})
	m.AppendRow("d1", map[int]float64{0: 2})
	m.AppendRow("d2", map[int]float64{0: 1, 1: 1})

	out := TfIdf(m.ToCSR())

	// df(a)=2, df(b)=1, N=2.
	idfA := math.Log1p(1)
	idfB := math.Log1p(2)

	if got, want := out.At(0, 0), 1.0*idfA; math.Abs(got-want) > 1e-12 {
		t.Errorf("d1 a = %v, want %v", got, want)
	}
	if got, want := out.At(1, 0), 0.5*idfA; math.Abs(got-want) > 1e-12 {
		t.Errorf("d2 a = %v, want %v", got, want)
	}
	if got, want := out.At(1, 1), 0.5*idfB; math.Abs(got-want) > 1e-12 {
		t.Errorf("d2 b = %v, want %v", got, want)
	}
}

func TestTfIdfDoesNotModifyInput(t *testing.T) {
	m := domain.NewTripletMatrix(1, []string{"a"})
	m.AppendRow("d1", map[int]float64{0: 4})
	csr := m.ToCSR()

	TfIdf(csr)

	if csr.At(0, 0) != 4 {
		t.Errorf("input matrix modified: %v", csr.At(0, 0))
	}
}

func TestTfIdfEmptyMatrix(t *testing.T) {
	csr := domain.NewTripletMatrix(2, nil).ToCSR()

	out := TfIdf(csr)
	if out.NNZ() != 0 {
		t.Errorf("expected empty output, got %d entries", out.NNZ())
	}
}

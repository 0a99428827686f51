package usecase

import (
	"math"

	"textvec/internal/domain"
)

// TfIdf reweights a document-term matrix: raw counts become term
// frequencies normalized by document length, scaled by a smoothed inverse
// document frequency log(1 + N/df). The input matrix is not modified.
func TfIdf(m *domain.CSRMatrix) *domain.CSRMatrix {
	out := &domain.CSRMatrix{
		NRows:    m.NRows,
		NCols:    m.NCols,
		RowNames: m.RowNames,
		ColNames: m.ColNames,
		RowPtr:   append([]int(nil), m.RowPtr...),
		ColInd:   append([]int(nil), m.ColInd...),
		Vals:     make([]float64, len(m.Vals)),
	}

	df := m.ColDocFreq()
	idf := make([]float64, m.NCols)
	n := float64(m.NRows)
	for j, d := range df {
		if d > 0 {
			idf[j] = math.Log1p(n / float64(d))
		}
	}

	for i := 0; i < m.NRows; i++ {
		rowSum := m.RowSum(i)
		if rowSum == 0 {
			continue
		}
		for k := m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			tf := m.Vals[k] / rowSum
			out.Vals[k] = tf * idf[m.ColInd[k]]
		}
	}

	return out
}

package forecasting

import (
	"math"
	"time"
)

// Intervalo fixo de 30 dias entre pontos futuros (aproximação de um mês)
const futureStepDays = 30

const pivotEpsilon = 1e-9

// futureDates gera as datas dos pontos futuros a partir do último mês observado
func futureDates(last time.Time, horizon int) []time.Time {
	dates := make([]time.Time, horizon)
	for i := 1; i <= horizon; i++ {
		dates[i-1] = last.AddDate(0, 0, futureStepDays*i)
	}
	return dates
}

// fitLine ajusta y = intercept + slope*x por mínimos quadrados
func fitLine(xs, ys []float64) (intercept, slope float64, err error) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	denom := n*sumXX - sumX*sumX
	if math.Abs(denom) < pivotEpsilon {
		return 0, 0, ErrSingularFit
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return intercept, slope, nil
}

// fitPolynomial ajusta os coeficientes de y = c0 + c1*x + ... + cd*x^d resolvendo as equações normais
func fitPolynomial(xs, ys []float64, degree int) ([]float64, error) {
	size := degree + 1

	// Somas das potências de x até 2*degree
	powerSums := make([]float64, 2*degree+1)
	rhs := make([]float64, size)
	for i := range xs {
		p := 1.0
		for k := 0; k <= 2*degree; k++ {
			powerSums[k] += p
			if k < size {
				rhs[k] += p * ys[i]
			}
			p *= xs[i]
		}
	}

	matrix := make([][]float64, size)
	for row := 0; row < size; row++ {
		matrix[row] = make([]float64, size+1)
		for col := 0; col < size; col++ {
			matrix[row][col] = powerSums[row+col]
		}
		matrix[row][size] = rhs[row]
	}

	return solveLinearSystem(matrix)
}

// solveLinearSystem resolve a matriz aumentada por eliminação de Gauss com pivoteamento parcial
func solveLinearSystem(matrix [][]float64) ([]float64, error) {
	size := len(matrix)

	for col := 0; col < size; col++ {
		pivot := col
		for row := col + 1; row < size; row++ {
			if math.Abs(matrix[row][col]) > math.Abs(matrix[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(matrix[pivot][col]) < pivotEpsilon {
			return nil, ErrSingularFit
		}
		matrix[col], matrix[pivot] = matrix[pivot], matrix[col]

		for row := col + 1; row < size; row++ {
			factor := matrix[row][col] / matrix[col][col]
			for k := col; k <= size; k++ {
				matrix[row][k] -= factor * matrix[col][k]
			}
		}
	}

	solution := make([]float64, size)
	for row := size - 1; row >= 0; row-- {
		sum := matrix[row][size]
		for k := row + 1; k < size; k++ {
			sum -= matrix[row][k] * solution[k]
		}
		solution[row] = sum / matrix[row][row]
	}

	return solution, nil
}

// evaluatePolynomial calcula o polinômio em x pelo método de Horner
func evaluatePolynomial(coefficients []float64, x float64) float64 {
	result := 0.0
	for i := len(coefficients) - 1; i >= 0; i-- {
		result = result*x + coefficients[i]
	}
	return result
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

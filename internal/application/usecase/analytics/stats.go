// Package analytics contains the health analytics use cases: weekly
// aggregation, trend prediction, correlation analysis, goal progress,
// alerts, and report synthesis.
package analytics

import "math"

// mean calculates the arithmetic mean of a slice of float64 values.
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

// linearFit computes an ordinary least squares fit y = slope*x + intercept.
// When x has no variance the line is flat at the mean of y.
func linearFit(xs, ys []float64) (slope, intercept float64) {
	meanX := mean(xs)
	meanY := mean(ys)

	var varX, covXY float64
	for i := range xs {
		dx := xs[i] - meanX
		varX += dx * dx
		covXY += dx * (ys[i] - meanY)
	}

	if varX == 0 {
		return 0, meanY
	}

	slope = covXY / varX
	intercept = meanY - slope*meanX
	return slope, intercept
}

// rSquared computes the coefficient of determination for a fitted line.
// A constant series scores 1 when the fit reproduces it exactly, 0 otherwise.
func rSquared(xs, ys []float64, slope, intercept float64) float64 {
	meanY := mean(ys)

	var ssRes, ssTot float64
	for i := range xs {
		predicted := slope*xs[i] + intercept
		ssRes += (ys[i] - predicted) * (ys[i] - predicted)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Zero variance in either series yields 0.
func pearson(xs, ys []float64) float64 {
	meanX := mean(xs)
	meanY := mean(ys)

	var varX, varY, covXY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		varX += dx * dx
		varY += dy * dy
		covXY += dx * dy
	}

	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return 0
	}
	return covXY / denom
}

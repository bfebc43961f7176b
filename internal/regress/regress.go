// Package regress fits the affine coefficients (coeff, offset) satisfying
// wall_ns ≈ tsc*coeff + offset over a batch of Sample observations,
// by ordinary least squares.
package regress

import "github.com/templexxx/rtsc/pkg/util"

// Sample is one TSC/wall-clock observation.
type Sample struct {
	TSC    uint64
	WallNS int64
}

// OLS computes the ordinary least-squares affine fit
//
//	coeff  = Σ(xᵢ-x̄)(yᵢ-ȳ) / Σ(xᵢ-x̄)²
//	offset = ȳ - coeff·x̄
//
// in double precision. There is no outlier rejection beyond whatever the
// sampler already provided — regression treats every observation as
// independent and identically distributed.
//
// x̄ is on the order of 1e13 (a TSC value) while xᵢ-x̄ is on the order of
// 1e8; centering before multiplying keeps each product near 1e16 instead
// of 1e26, so far less precision is lost in the sums.
func OLS(samples []Sample) (coeff, offset float64) {
	n := float64(len(samples))

	var sumX, sumY float64
	for _, s := range samples {
		sumX += float64(s.TSC)
		sumY += float64(s.WallNS)
	}
	xBar := sumX / n
	yBar := sumY / n

	var num, den float64
	for _, s := range samples {
		dx := float64(s.TSC) - xBar
		dy := float64(s.WallNS) - yBar
		num += dx * dy
		den += dx * dx
	}

	coeff = util.SafeDiv(num, den)
	offset = yBar - coeff*xBar
	return
}

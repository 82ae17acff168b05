package temporal

import (
	"github.com/mixcue/mixcue/algorithms/common"
	"github.com/mixcue/mixcue/algorithms/stats"
)

// Novelty computes a feature-distance curve from a per-frame sequence of
// learned feature vectors. High novelty marks abrupt timbral or harmonic
// change and serves as a proxy for section boundaries. The vector dimension is
// the feature extractor's contract and is treated as opaque here.
type Novelty struct {
	distance stats.DistanceFunction
}

// NewNovelty creates a novelty calculator using Euclidean feature distance
func NewNovelty() *Novelty {
	return &Novelty{
		distance: stats.EuclideanDistanceFunc,
	}
}

// NewNoveltyWithMetric creates a novelty calculator with a specific distance metric
func NewNoveltyWithMetric(metric stats.DistanceMetric) *Novelty {
	return &Novelty{
		distance: stats.GetDistanceFunction(metric),
	}
}

// ComputeCurve calculates per-frame novelty: the mean of each interior frame's
// distance to its previous and next neighbor, normalized by the track-wide
// maximum. Boundary frames get zero novelty.
func (n *Novelty) ComputeCurve(features [][]float64) []float64 {
	if len(features) == 0 {
		return []float64{}
	}

	novelty := make([]float64, len(features))
	for i := 1; i < len(features)-1; i++ {
		distPrev := n.distance(features[i], features[i-1])
		distNext := n.distance(features[i], features[i+1])
		novelty[i] = (distPrev + distNext) / 2.0
	}

	return common.NormalizeByMax(novelty)
}

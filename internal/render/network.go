package render

import (
	"math"

	"github.com/iburimskiy/breathing-sphere/internal/config"
	"github.com/iburimskiy/breathing-sphere/internal/sphere"
)

// Edge is one line of the connection network. A and B index the particle
// slice the network was built from, A < B.
type Edge struct {
	A, B  int
	Alpha float64
	Warm  bool
}

func edgeLimits(k sphere.Kind) (maxEdges int, maxDist float64) {
	if k == sphere.Core {
		return config.CoreMaxEdges, config.CoreMaxDistance
	}
	return config.InnerMaxEdges, config.InnerMaxDistance
}

// Connections links core and inner particles that sit close together on
// screen. Each particle scans forward through the remaining candidates in
// slice order and takes the first partners within reach until its cap is
// hit, so the result depends on the order of ps.
func Connections(ps []sphere.Particle, baseRadius float64) []Edge {
	cull := config.BackFaceCull * baseRadius
	fade := func(depth float64) float64 {
		return clamp01((depth + baseRadius) / (2 * baseRadius))
	}

	var idx []int
	for i := range ps {
		if ps[i].Linked() {
			idx = append(idx, i)
		}
	}

	var edges []Edge
	for n, ia := range idx {
		a := &ps[ia]
		if a.Depth < cull {
			continue
		}
		maxEdges, maxDist := edgeLimits(a.Kind)
		count := 0
		for _, ib := range idx[n+1:] {
			if count >= maxEdges {
				break
			}
			b := &ps[ib]
			if b.Depth < cull {
				continue
			}
			d := math.Hypot(a.ScreenX-b.ScreenX, a.ScreenY-b.ScreenY)
			if d >= maxDist {
				continue
			}
			depthFade := math.Min(fade(a.Depth), fade(b.Depth))
			alpha := (1 - d/maxDist) * config.EdgeAlphaScale * depthFade
			if alpha < config.MinEdgeAlpha {
				continue
			}
			edges = append(edges, Edge{
				A:     ia,
				B:     ib,
				Alpha: alpha,
				Warm:  a.Kind == sphere.Core && b.Kind == sphere.Core,
			})
			count++
		}
	}
	return edges
}

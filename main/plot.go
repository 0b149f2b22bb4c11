package main

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/galaxy/galaxy"
	"github.com/phil-mansfield/galaxy/scene"
)

var groupColors = []string{"DarkSlateBlue", "DeepPink", "DarkTurquoise"}

// plotScene saves an x-y projection of the scene to fname with each group
// drawn in its own color and the anchors drawn as large black points.
func plotScene(ps []scene.Particle, cfg *galaxy.Config, fname string) {
	d := cfg.Lattice.Dimension
	shellEnd := 1 + cfg.Shell.Count
	latticeEnd := shellEnd + 1 + d*d*d
	groups := [][]scene.Particle{
		ps[1:shellEnd], ps[shellEnd+1 : latticeEnd], ps[latticeEnd:],
	}
	anchors := []scene.Particle{ps[0], ps[shellEnd]}

	plt.Figure(plt.FigSize(8, 8))
	for i, group := range groups {
		if len(group) == 0 { continue }
		xs, ys := project(group)
		plt.Plot(xs, ys, "o", plt.C(groupColors[i]))
	}
	xs, ys := project(anchors)
	plt.Plot(xs, ys, "ok", plt.LW(3))

	plt.Title(fmt.Sprintf("%d particles", len(ps)))
	plt.XLabel(`$X$`, plt.FontSize(16))
	plt.YLabel(`$Y$`, plt.FontSize(16))
	plt.SaveFig(fname)
	plt.Execute()
}

func project(ps []scene.Particle) (xs, ys []float64) {
	xs, ys = make([]float64, len(ps)), make([]float64, len(ps))
	for i := range ps {
		xs[i], ys[i] = ps[i].Pos.X, ps[i].Pos.Y
	}
	return xs, ys
}

package main

import (
	"fmt"
	"log"
	"math"

	"github.com/netisu/flatgl"
)

const (
	gameWidth  = 1280.0
	gameHeight = 720.0
)

// Lays out a pong-style court (two paddles, a ball, a dotted net) as unit
// quads with per-object transforms, pushes everything through the vertex
// stage and prints where the geometry lands in clip space.
func main() {
	projection := flatgl.LetterboxProjection(gameWidth, gameHeight, gameWidth, gameHeight)
	dc := flatgl.NewContext(projection)

	var objects []*flatgl.Object
	objects = append(objects,
		rectObject(flatgl.NewCenteredRectangle(25, gameHeight/2, 20, 100), flatgl.White),
		rectObject(flatgl.NewCenteredRectangle(gameWidth-25, gameHeight/2, 20, 100), flatgl.White),
		rectObject(flatgl.NewCenteredRectangle(gameWidth/2, gameHeight/2, 15, 15), flatgl.White),
	)
	for y := 0.0; y < gameHeight; y += 75 {
		rect := flatgl.NewRectangle((gameWidth-8)/2, y, 8, 50)
		objects = append(objects, rectObject(rect, flatgl.HexColor("1a1a1a")))
	}

	buffers := dc.DrawObjects(objects)

	total := 0
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, buf := range buffers {
		total += len(buf)
		for _, v := range buf {
			p := v.Output.PerspectiveDivide()
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	fmt.Printf("--- COURT STATS ---\n")
	fmt.Printf("Objects: %d\n", len(objects))
	fmt.Printf("Vertices processed: %d\n", total)
	fmt.Printf("Clip-space extent: (%.3f, %.3f) to (%.3f, %.3f)\n", minX, minY, maxX, maxY)

	// The ball sits at the court center and must land at the clip origin.
	ball := buffers[2]
	center := flatgl.Vector{}
	for _, v := range ball {
		center = center.Add(v.Output.PerspectiveDivide())
	}
	center = center.DivScalar(float64(len(ball)))
	if center.Length() > 1e-9 {
		log.Fatalf("ball center off origin: %+v", center)
	}
	fmt.Printf("Ball centered at clip origin\n")
}

// rectObject builds a unit quad and a transform that carries it onto the
// rectangle, the same split of geometry and matrix a GPU caller would use.
func rectObject(r flatgl.Rectangle, c flatgl.Color) *flatgl.Object {
	transform := flatgl.Translate(r.X, r.Y, 0).Mul(flatgl.Scale(r.Width, r.Height, 1))
	return flatgl.NewObject(flatgl.UnitQuad(), transform, c)
}

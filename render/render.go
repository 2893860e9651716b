package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/nox-robotics/topograph/geom"
	"github.com/nox-robotics/topograph/topo"
)

// Sentinel errors for rendering.
var (
	// ErrInvalidPixelSize indicates Options.PixelSize was <= 0.
	ErrInvalidPixelSize = errors.New("render: pixel size must be positive")
	// ErrEmptyGraph indicates the graph has no nodes to project.
	ErrEmptyGraph = errors.New("render: graph has no nodes")
)

var (
	nodeColor = color.RGBA{G: 255, A: 255}
	edgeColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Render rasterizes g into an RGBA image. Unless opts.RoI overrides it,
// the image's size is the bounding box of every node position (extended
// by every edge's waypoints when opts.DrawWaypoints is set), scaled by
// 1/opts.PixelSize, plus opts.MarginPx of padding on each side. Feature
// nodes are drawn as single green pixels; edges are drawn either as
// straight white line segments between their endpoints or, in waypoint
// mode, as a white pixel per retained waypoint.
func Render(g *topo.Graph, opts Options) (image.Image, error) {
	if opts.PixelSize <= 0 {
		return nil, ErrInvalidPixelSize
	}

	nodeIDs := g.Nodes()
	if len(nodeIDs) == 0 {
		return nil, ErrEmptyGraph
	}

	edgeIDs := g.Edges()

	var box RoI
	if opts.RoI != nil {
		box = *opts.RoI
	} else {
		first, err := g.Node(nodeIDs[0])
		if err != nil {
			return nil, err
		}
		box = newRoI(first.Pos)
		for _, id := range nodeIDs[1:] {
			n, err := g.Node(id)
			if err != nil {
				return nil, err
			}
			box.include(n.Pos)
		}

		if opts.DrawWaypoints {
			for _, id := range edgeIDs {
				e, err := g.Edge(id)
				if err != nil {
					return nil, err
				}
				for _, wp := range e.Waypoints {
					box.include(wp)
				}
			}
		}
	}

	width := int(math.Ceil((box.Right-box.Left)/opts.PixelSize)) + 1 + 2*opts.MarginPx
	height := int(math.Ceil((box.Top-box.Bottom)/opts.PixelSize)) + 1 + 2*opts.MarginPx

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	project := func(p geom.Vector2) (int, int) {
		px := (p.X-box.Left)/opts.PixelSize + float64(opts.MarginPx)
		py := (p.Y-box.Bottom)/opts.PixelSize + float64(opts.MarginPx)
		return int(math.Round(px)), int(math.Round(py))
	}

	for _, id := range edgeIDs {
		e, err := g.Edge(id)
		if err != nil {
			return nil, err
		}
		if opts.DrawWaypoints {
			for _, wp := range e.Waypoints {
				x, y := project(wp)
				setPixel(img, x, y, edgeColor)
			}
			continue
		}

		n1, err := g.Node(e.N1)
		if err != nil {
			return nil, err
		}
		n2, err := g.Node(e.N2)
		if err != nil {
			return nil, err
		}
		x1, y1 := project(n1.Pos)
		x2, y2 := project(n2.Pos)
		drawLine(img, x1, y1, x2, y2, edgeColor)
	}

	for _, id := range nodeIDs {
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		x, y := project(n.Pos)
		setPixel(img, x, y, nodeColor)
	}

	return img, nil
}

// RenderToFile renders g per opts and encodes the result as a PNG at path.
func RenderToFile(path string, g *topo.Graph, opts Options) error {
	img, err := Render(g, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= img.Bounds().Dx() || y >= img.Bounds().Dy() {
		return
	}
	img.SetRGBA(x, y, c)
}

// drawLine rasterizes a crisp, non-antialiased segment using Bresenham's
// algorithm, so straight edges read back as exact white pixels rather than
// an antialiased gradient.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		setPixel(img, x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

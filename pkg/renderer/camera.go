package renderer

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/world"
)

// Camera maps canvas pixels to rays. The view transform positions the eye;
// the field of view and the canvas aspect ratio fix the pixel size on a
// virtual canvas one unit in front of the eye.
type Camera struct {
	HSize, VSize int
	FieldOfView  float64
	transform    core.Transform
	pixelSize    float64
	halfWidth    float64
	halfHeight   float64
}

// NewCamera builds a camera for a canvas of hsize by vsize pixels with the
// given vertical-or-horizontal field of view in radians.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		pixelSize:   halfWidth * 2 / float64(hsize),
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
	}
}

// Transform returns the world-to-camera view transform.
func (c *Camera) Transform() core.Transform { return c.transform }

// SetTransform replaces the view transform.
func (c *Camera) SetTransform(t core.Transform) { c.transform = t }

// PixelSize is the world-space edge length of one pixel on the canvas one
// unit in front of the eye.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// RayForPixel builds the world-space ray through the center of pixel
// (px, py).
func (c *Camera) RayForPixel(px, py int) (core.Ray, error) {
	// Offsets from the canvas edge to the pixel center.
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The untransformed canvas sits at z = -1 with x increasing to the
	// left, because the camera looks down -z.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv, err := c.transform.Inverse()
	if err != nil {
		return core.Ray{}, err
	}

	pixel := inv.ApplyTo(core.NewPoint(worldX, worldY, -1))
	origin := inv.ApplyTo(core.Origin())
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Options tunes a render run.
type Options struct {
	// Workers is the number of parallel row workers, defaulting to the
	// CPU count when zero or negative.
	Workers int
	// Progress, when set, is called after each finished row with the
	// number of completed rows and the total. Calls arrive from worker
	// goroutines.
	Progress func(done, total int)
}

// RenderStats summarizes a finished render.
type RenderStats struct {
	Width, Height int
	Workers       int
	PrimaryRays   int
	Duration      time.Duration
}

// Render traces every pixel of the camera's canvas through the world.
// Rows are distributed across workers; each worker writes disjoint rows, so
// the canvas needs no locking. The first error aborts the render.
func (c *Camera) Render(w *world.World, opts Options) (*Canvas, RenderStats, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	canvas := NewCanvas(c.HSize, c.VSize)

	rows := make(chan int, c.VSize)
	for y := 0; y < c.VSize; y++ {
		rows <- y
	}
	close(rows)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		done     int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				if err := c.renderRow(w, canvas, y); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				mu.Lock()
				done++
				n := done
				mu.Unlock()
				if opts.Progress != nil {
					opts.Progress(n, c.VSize)
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, RenderStats{}, firstErr
	}

	stats := RenderStats{
		Width:       c.HSize,
		Height:      c.VSize,
		Workers:     workers,
		PrimaryRays: c.HSize * c.VSize,
		Duration:    time.Since(start),
	}
	return canvas, stats, nil
}

func (c *Camera) renderRow(w *world.World, canvas *Canvas, y int) error {
	for x := 0; x < c.HSize; x++ {
		r, err := c.RayForPixel(x, y)
		if err != nil {
			return err
		}
		col, err := w.ColorAt(r)
		if err != nil {
			return err
		}
		canvas.Set(x, y, col)
	}
	return nil
}

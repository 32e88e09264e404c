// Package camera implements the pinhole camera that maps between world
// space and the image plane.
package camera

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/lmavr/go-whitted-raytracer/pkg/core"
)

// Config holds the camera construction parameters
type Config struct {
	FocalLength float32
	FovXDegrees float32
	FovYDegrees float32
	Center      core.Vec3
	Rotation    core.Mat3 // world-to-camera rotation; zero value means identity
}

// Camera is a pinhole camera. The image plane sits at z = focal length
// in the camera frame; its integer dimensions are derived from the
// field of view and double as the pixel dimensions of the output image.
type Camera struct {
	center      core.Vec3
	rot         core.Mat3
	focalLength float32
	planeWidth  int
	planeHeight int
}

// New creates a camera from a config
func New(cfg Config) *Camera {
	rot := cfg.Rotation
	if rot == (core.Mat3{}) {
		rot = core.Identity()
	}
	return &Camera{
		center:      cfg.Center,
		rot:         rot,
		focalLength: cfg.FocalLength,
		planeWidth:  planeDim(cfg.FocalLength, cfg.FovXDegrees),
		planeHeight: planeDim(cfg.FocalLength, cfg.FovYDegrees),
	}
}

// planeDim computes a plane extent from focal length and field of view
func planeDim(focalLength, fovDegrees float32) int {
	return int(2 * focalLength * math32.Tan(math32.Abs(deg2Rad(fovDegrees))/2))
}

func deg2Rad(deg float32) float32 {
	return deg * math.Pi / 180
}

// Width returns the image plane width in pixels
func (c *Camera) Width() int { return c.planeWidth }

// Height returns the image plane height in pixels
func (c *Camera) Height() int { return c.planeHeight }

// Center returns the center of projection in world coordinates
func (c *Camera) Center() core.Vec3 { return c.center }

// world2Cam transforms a world point to camera-centered, rotated
// coordinates: P_c = R(P_w - C).
func (c *Camera) world2Cam(p core.Vec3) core.Vec3 {
	return c.rot.MulVec(p.Sub(c.center))
}

// Project applies the perspective transform to a world point. The
// returned flag reports whether the point lands on the image plane;
// points behind the camera (z <= 0) are never visible.
func (c *Camera) Project(p core.Vec3) (core.Vec3i, bool) {
	pc := c.world2Cam(p)
	if pc.Z <= 0 {
		return core.Vec3i{}, false
	}
	projected := core.Vec3i{
		X: int(c.focalLength * pc.X / pc.Z),
		Y: int(c.focalLength * pc.Y / pc.Z),
	}
	visible := projected.X >= -c.planeWidth/2 && projected.X < c.planeWidth/2 &&
		projected.Y >= -c.planeHeight/2 && projected.Y < c.planeHeight/2
	return projected, visible
}

// Unproject recovers the world point of an image plane coordinate. The
// plane point is (x, y, f) in the camera frame, so no inverse
// perspective divide is needed; the inverse rotation is the transpose.
func (c *Camera) Unproject(planeX, planeY float32) core.Vec3 {
	pCam := core.NewVec3(planeX, planeY, c.focalLength)
	return c.center.Add(c.rot.Transposed().MulVec(pCam))
}

// CornersWorld returns the four corners of the image plane in world
// coordinates: top-left, top-right, bottom-left, bottom-right
// (y grows downward in image space).
func (c *Camera) CornersWorld() [4]core.Vec3 {
	hw := float32(c.planeWidth) / 2
	hh := float32(c.planeHeight) / 2
	return [4]core.Vec3{
		c.Unproject(-hw, -hh),
		c.Unproject(hw, -hh),
		c.Unproject(-hw, hh),
		c.Unproject(hw, hh),
	}
}

// AABBWorld returns the axis-aligned bounding box of the image plane
// corners in world space.
func (c *Camera) AABBWorld() (core.Vec3, core.Vec3) {
	corners := c.CornersWorld()
	mn, mx := corners[0], corners[0]
	for _, p := range corners[1:] {
		mn.X = math32.Min(mn.X, p.X)
		mn.Y = math32.Min(mn.Y, p.Y)
		mn.Z = math32.Min(mn.Z, p.Z)
		mx.X = math32.Max(mx.X, p.X)
		mx.Y = math32.Max(mx.Y, p.Y)
		mx.Z = math32.Max(mx.Z, p.Z)
	}
	return mn, mx
}

// Translate moves the center of projection by a world-space delta
func (c *Camera) Translate(delta core.Vec3) {
	c.center = c.center.Add(delta)
}

// Rotate applies an incremental Euler rotation (radians) on top of the
// current orientation.
func (c *Camera) Rotate(ax, ay, az float32) {
	c.rot = core.NewRotation(ax, ay, az).Mul(c.rot)
}

// Package renderer implements the recursive whitted-style ray tracer:
// per-pixel primary rays, nearest-hit resolution, and recursive
// reflection and refraction with Fresnel weighting.
package renderer

import (
	"github.com/chewxy/math32"

	"github.com/lmavr/go-whitted-raytracer/pkg/camera"
	"github.com/lmavr/go-whitted-raytracer/pkg/core"
	"github.com/lmavr/go-whitted-raytracer/pkg/geometry"
	"github.com/lmavr/go-whitted-raytracer/pkg/lights"
)

// TraceRecord is the transient result of tracing one ray. Obj is a
// stable index into the raytracer's object list, -1 when nothing was
// hit; T is +Inf for a miss.
type TraceRecord struct {
	Color    core.Color
	Hit      bool
	T        float32
	HitPoint core.Vec3
	Normal   core.Vec3
	Obj      int
}

// Raytracer renders a scene of spheres through a pinhole camera. The
// scene is read-only during tracing; the image buffer is written one
// disjoint cell per pixel.
type Raytracer struct {
	camera  *camera.Camera
	lights  *lights.Set
	objects []geometry.Sphere
	image   *Image
	logger  Logger
}

// NewRaytracer creates a raytracer for the given camera and lights.
// The image buffer takes its dimensions from the camera plane.
func NewRaytracer(cam *camera.Camera, ls *lights.Set, logger Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		camera: cam,
		lights: ls,
		image:  NewImage(cam.Width(), cam.Height()),
		logger: logger,
	}
}

// AddObject appends a sphere to the scene
func (rt *Raytracer) AddObject(s geometry.Sphere) {
	rt.objects = append(rt.objects, s)
}

// Image returns the render target
func (rt *Raytracer) Image() *Image {
	return rt.image
}

// Trace renders the whole image plane sequentially
func (rt *Raytracer) Trace(maxDepth int) RenderStats {
	return rt.TraceParallel(maxDepth, 1)
}

// TraceParallel renders the image plane across numWorkers workers
// (0 = one per CPU). The result is identical to sequential evaluation:
// each pixel is a pure function of the immutable scene.
func (rt *Raytracer) TraceParallel(maxDepth, numWorkers int) RenderStats {
	rt.lights.Normalize()
	pool := newWorkerPool(rt, maxDepth, numWorkers)
	stats := pool.run()
	stats.TotalPixels = rt.image.Width() * rt.image.Height()
	return stats
}

// renderRow traces every pixel of one image-plane row. The y
// coordinate is in plane space, [-H/2, H/2).
func (rt *Raytracer) renderRow(y, maxDepth int, stats *RenderStats) {
	w := rt.camera.Width()
	h := rt.camera.Height()
	for x := -w / 2; x < w/2; x++ {
		pointWorld := rt.camera.Unproject(float32(x), float32(y))
		ray := core.NewRay(rt.camera.Center(), pointWorld)
		result := rt.traceRay(ray, maxDepth, 1.0)
		stats.PrimaryRays++
		if result.Hit {
			stats.Hits++
			col := mapRange(x, -w/2, w/2, 0, w-1)
			row := mapRange(y, -h/2, h/2, 0, h-1)
			rt.image.Set(row, col, result.Color)
		}
	}
}

// nearestHit resolves the closest strictly positive intersection along
// the ray. Ties keep the first object, so insertion order breaks exact
// overlaps.
func (rt *Raytracer) nearestHit(ray core.Ray) TraceRecord {
	rec := TraceRecord{T: math32.Inf(1), Obj: -1}
	for i := range rt.objects {
		hit := rt.objects[i].Intersect(ray)
		if !hit.Hit || hit.T <= 0 {
			continue
		}
		if hit.T < rec.T {
			rec.T = hit.T
			rec.Hit = true
			rec.HitPoint = hit.Point
			rec.Obj = i
			rec.Normal = rt.objects[i].NormalAt(hit.Point)
		}
	}
	return rec
}

// surroundingIOR returns the refractive index of the medium just
// outside the surface of self at p, probed a little off the outward
// normal. When the probe sits inside several other spheres the one
// added last wins.
func (rt *Raytracer) surroundingIOR(p core.Vec3, self int, outwardNormal core.Vec3) float32 {
	probe := p.Add(outwardNormal.Mul(4 * core.Eps))
	ior := float32(1.0) // air
	for i := range rt.objects {
		if i == self {
			continue
		}
		if rt.objects[i].Contains(probe) {
			ior = rt.objects[i].Material.RefractiveIndex
		}
	}
	return ior
}

// traceRay recursively traces one ray. iorCurrent is the refractive
// index of the medium the ray travels through.
func (rt *Raytracer) traceRay(ray core.Ray, depth int, iorCurrent float32) TraceRecord {
	rec := rt.nearestHit(ray)
	if !rec.Hit {
		return rec // background, no hit
	}

	mat := rt.objects[rec.Obj].Material
	trans := clampUnit(mat.Transparency)

	// Direct surface shading from diffuse/specular lighting. Highly
	// transparent objects suppress it so they don't paint themselves.
	var direct core.Color
	if trans <= 0.5 {
		direct = rt.lights.ColorAt(rt.objects, rec.Obj, rec.HitPoint, rt.camera.Center())
	}

	refl := clampUnit(mat.Reflective)
	iorNext := mat.RefractiveIndex

	// final bounce, or nothing to reflect or refract
	if depth <= 1 || (refl < core.Eps && trans < core.Eps) {
		rec.Color = direct
		return rec
	}

	n := rec.Normal
	i := ray.Dir // incident, pointing toward the surface

	// orient the normal and determine n1 (incident medium) and n2
	// (transmitted medium)
	entering := n.Dot(i) < 0
	nOriented := n
	if !entering {
		nOriented = n.Negate()
	}
	var n1, n2 float32
	if entering {
		n1 = rt.surroundingIOR(rec.HitPoint, rec.Obj, n)
		n2 = iorNext
	} else {
		n1 = iorCurrent
		n2 = rt.surroundingIOR(rec.HitPoint, rec.Obj, n.Negate())
	}
	eta := n1 / n2
	cosI := -nOriented.Dot(i)

	fresnel := schlick(n1, n2, cosI)

	// child ray (1): reflect in the current medium
	reflDir := i.Negate().ReflectAbout(nOriented).Unit()
	hemi := nOriented
	if nOriented.Dot(reflDir) < 0 {
		hemi = nOriented.Negate()
	}
	reflRay := core.Ray{Origin: rec.HitPoint.Add(hemi.Mul(4 * core.Eps)), Dir: reflDir}
	reflColor := rt.traceRay(reflRay, depth-1, n1).Color

	transWeight := trans * (1 - fresnel)
	reflWeight := refl + fresnel*trans

	// child ray (2): refract into the next medium, unless total
	// internal reflection redirects all transmission into reflection
	var refrColor core.Color
	refrDir, tir := refract(i, nOriented, eta, cosI)
	if !tir && trans > core.Eps {
		refrRay := core.Ray{Origin: rec.HitPoint.Add(refrDir.Mul(4 * core.Eps)), Dir: refrDir}
		refrColor = rt.traceRay(refrRay, depth-1, n2).Color
		refrColor = applyTint(refrColor, mat.Color, mat.Tint*trans)
	} else if tir {
		transWeight = 0
		reflWeight = math32.Min(1, reflWeight+trans)
	}

	// blend direct, reflected and refracted colors; energy not
	// consumed by reflection/refraction falls through to direct
	total := reflWeight + transWeight
	wDirect := 1 - math32.Min(total, 1)
	rec.Color = core.Color{
		R: core.ClampChannel(float32(direct.R)*wDirect + float32(reflColor.R)*reflWeight + float32(refrColor.R)*transWeight),
		G: core.ClampChannel(float32(direct.G)*wDirect + float32(reflColor.G)*reflWeight + float32(refrColor.G)*transWeight),
		B: core.ClampChannel(float32(direct.B)*wDirect + float32(reflColor.B)*reflWeight + float32(refrColor.B)*transWeight),
	}
	return rec
}

// schlick approximates the Fresnel reflectance between media with
// indices n1 and n2 at incidence cosine cosI.
func schlick(n1, n2, cosI float32) float32 {
	r0 := (n1 - n2) / (n1 + n2)
	r0 *= r0
	return r0 + (1-r0)*math32.Pow(1-cosI, 5)
}

// refract applies Snell's law to the incident direction. The second
// return value reports total internal reflection, in which case no
// transmitted direction exists.
func refract(incident, nOriented core.Vec3, eta, cosI float32) (core.Vec3, bool) {
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec3{}, true
	}
	cosT := math32.Sqrt(k)
	dir := incident.Mul(eta).Add(nOriented.Mul(eta*cosI - cosT)).Unit()
	return dir, false
}

// applyTint biases refracted light toward the surface color by the
// tint weight.
func applyTint(refracted, surface core.Color, tintWeight float32) core.Color {
	ch := func(next, curr uint8) uint8 {
		w := (1 - tintWeight) + tintWeight*float32(curr)/255
		return core.ClampChannel(float32(next) * w)
	}
	return core.Color{
		R: ch(refracted.R, surface.R),
		G: ch(refracted.G, surface.G),
		B: ch(refracted.B, surface.B),
	}
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// mapRange linearly maps x from [a, b] to [c, d] in integer arithmetic
func mapRange(x, a, b, c, d int) int {
	if a == b || c == d {
		return x
	}
	return c + (d-c)*(x-a)/(b-a)
}

package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lmavr/go-whitted-raytracer/pkg/camera"
	"github.com/lmavr/go-whitted-raytracer/pkg/core"
	"github.com/lmavr/go-whitted-raytracer/pkg/geometry"
	"github.com/lmavr/go-whitted-raytracer/pkg/lights"
	"github.com/lmavr/go-whitted-raytracer/pkg/material"
)

// sceneConfig mirrors the YAML scene file layout
type sceneConfig struct {
	Camera   cameraConfig   `yaml:"camera"`
	MaxDepth int            `yaml:"max_depth"`
	Lights   []lightConfig  `yaml:"lights"`
	Spheres  []sphereConfig `yaml:"spheres"`
}

type cameraConfig struct {
	FocalLength float32    `yaml:"focal_length"`
	FovX        float32    `yaml:"fov_x"`
	FovY        float32    `yaml:"fov_y"`
	Center      [3]float32 `yaml:"center"`
	Rotate      [3]float32 `yaml:"rotate"` // Euler angles in radians
}

type lightConfig struct {
	Type      string     `yaml:"type"` // ambient, point or directional
	Intensity float32    `yaml:"intensity"`
	Position  [3]float32 `yaml:"position"`
	Direction [3]float32 `yaml:"direction"`
}

type sphereConfig struct {
	Center   [3]float32      `yaml:"center"`
	Radius   float32         `yaml:"radius"`
	Material *materialConfig `yaml:"material"`
}

type materialConfig struct {
	Color           [3]uint8 `yaml:"color"`
	Specular        float32  `yaml:"specular"`
	Reflective      float32  `yaml:"reflective"`
	Transparency    float32  `yaml:"transparency"`
	RefractiveIndex float32  `yaml:"refractive_index"`
	Tint            float32  `yaml:"tint"`
}

// Load reads a YAML scene file and converts it to a Scene
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Parse(data)
}

// Parse converts YAML scene data to a Scene
func Parse(data []byte) (*Scene, error) {
	var cfg sceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scene yaml: %w", err)
	}

	cam, err := convertCamera(cfg.Camera)
	if err != nil {
		return nil, err
	}

	ls := &lights.Set{}
	for i, lc := range cfg.Lights {
		if err := addLight(ls, lc); err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
	}

	objects := make([]geometry.Sphere, 0, len(cfg.Spheres))
	for _, sc := range cfg.Spheres {
		objects = append(objects, convertSphere(sc))
	}

	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 5
	}

	return &Scene{
		Camera:   cam,
		Lights:   ls,
		Objects:  objects,
		MaxDepth: maxDepth,
	}, nil
}

func convertCamera(cc cameraConfig) (*camera.Camera, error) {
	if cc.FocalLength <= 0 {
		return nil, fmt.Errorf("camera: focal_length must be positive, got %v", cc.FocalLength)
	}
	if cc.FovX <= 0 || cc.FovY <= 0 {
		return nil, fmt.Errorf("camera: fov_x and fov_y must be positive, got %v x %v", cc.FovX, cc.FovY)
	}
	return camera.New(camera.Config{
		FocalLength: cc.FocalLength,
		FovXDegrees: cc.FovX,
		FovYDegrees: cc.FovY,
		Center:      vec3(cc.Center),
		Rotation:    core.NewRotation(cc.Rotate[0], cc.Rotate[1], cc.Rotate[2]),
	}), nil
}

func addLight(ls *lights.Set, lc lightConfig) error {
	switch lc.Type {
	case "ambient":
		ls.AddAmbient(lc.Intensity)
	case "point":
		ls.AddPoint(lc.Intensity, vec3(lc.Position))
	case "directional":
		dir := vec3(lc.Direction)
		if dir == (core.Vec3{}) {
			return fmt.Errorf("directional light needs a non-zero direction")
		}
		ls.AddDirectional(lc.Intensity, dir)
	default:
		return fmt.Errorf("unsupported light type %q", lc.Type)
	}
	return nil
}

func convertSphere(sc sphereConfig) geometry.Sphere {
	mat := material.Default()
	if sc.Material != nil {
		mat = material.Material{
			Color:           core.NewColor(sc.Material.Color[0], sc.Material.Color[1], sc.Material.Color[2]),
			Specular:        sc.Material.Specular,
			Reflective:      sc.Material.Reflective,
			Transparency:    sc.Material.Transparency,
			RefractiveIndex: sc.Material.RefractiveIndex,
			Tint:            sc.Material.Tint,
		}
		if mat.RefractiveIndex == 0 {
			mat.RefractiveIndex = 1
		}
	}
	return geometry.NewSphere(vec3(sc.Center), sc.Radius, mat)
}

func vec3(v [3]float32) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

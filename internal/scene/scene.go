package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"campus-viewer/internal/campus"
	"campus-viewer/internal/geom"
	"campus-viewer/internal/scenegraph"
)

// drawable is the GPU side of one scenegraph leaf.
type drawable struct {
	mesh      rl.Mesh
	material  rl.Material
	transform rl.Matrix
	tint      rl.Color // material colour as loaded; alpha is replaced by the leaf opacity
}

// Scene draws the campus scenegraph with raylib. The graph decides what is drawn and how
// transparent; Scene only owns the GPU resources behind each leaf and the 3D camera.
// Decode and Draw must run on the goroutine that opened the window.
type Scene struct {
	Camera rl.Camera3D

	graph     *scenegraph.Graph
	models    map[string]rl.Model
	drawables map[*scenegraph.Node]drawable
	light     Light
	lit       rl.Shader
	litTried  bool

	fallback    rl.Material // shared by meshes that carry no material
	hasFallback bool

	transparent []*scenegraph.Node // reused every frame
}

// New returns a scene drawing graph with a perspective camera. Shaders load lazily on the
// first Decode or Draw so New can run before the window exists.
func New(graph *scenegraph.Graph, light Light) *Scene {
	s := &Scene{
		graph:     graph,
		models:    make(map[string]rl.Model),
		drawables: make(map[*scenegraph.Node]drawable),
		light:     light,
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 75
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SyncCamera copies the live camera pose and lens into the raylib camera. Call once per frame
// after the camera has been updated.
func (s *Scene) SyncCamera(pose campus.Pose, lens geom.Lens) {
	s.Camera.Position = toRL(pose.Eye)
	s.Camera.Target = toRL(pose.Target)
	s.Camera.Fovy = lens.FovY
}

// Draw renders every visible leaf: opaque ones first, then translucent ones without depth
// writes so dimmed rooms do not hide what is behind them.
func (s *Scene) Draw() {
	s.ensureShader()
	rl.BeginMode3D(s.Camera)
	s.setLightUniforms()

	s.transparent = s.transparent[:0]
	s.graph.Leaves(func(n *scenegraph.Node) {
		if !visible(n) {
			return
		}
		if n.Transparent {
			s.transparent = append(s.transparent, n)
			return
		}
		s.drawLeaf(n)
	})

	if len(s.transparent) > 0 {
		rl.DisableDepthMask()
		for _, n := range s.transparent {
			s.drawLeaf(n)
		}
		rl.EnableDepthMask()
	}
	rl.EndMode3D()
}

func (s *Scene) drawLeaf(n *scenegraph.Node) {
	d, ok := s.drawables[n]
	if !ok {
		return
	}
	if albedo := d.material.GetMap(rl.MapAlbedo); albedo != nil {
		c := d.tint
		c.A = uint8(float32(d.tint.A) * clamp01(n.Opacity))
		albedo.Color = c
	}
	rl.DrawMesh(d.mesh, d.material, d.transform)
}

// Unload releases every model and the lighting shader. Call before closing the window.
func (s *Scene) Unload() {
	for name, m := range s.models {
		rl.UnloadModel(m)
		delete(s.models, name)
	}
	clear(s.drawables)
	if s.hasFallback {
		rl.UnloadMaterial(s.fallback)
		s.hasFallback = false
	}
	if rl.IsShaderValid(s.lit) {
		rl.UnloadShader(s.lit)
	}
}

// visible reports whether n and all of its ancestors are visible.
func visible(n *scenegraph.Node) bool {
	for ; n != nil; n = n.Parent {
		if !n.Visible {
			return false
		}
	}
	return true
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toRL(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

func fromRL(v rl.Vector3) geom.Vec3 {
	return geom.V(v.X, v.Y, v.Z)
}

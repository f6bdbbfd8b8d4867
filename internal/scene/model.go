package scene

import (
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"campus-viewer/internal/geom"
	"campus-viewer/internal/scenegraph"
)

// Decode loads the model file at path (glTF/GLB, OBJ, IQM, VOX, M3D) and returns a node named
// name with one leaf per mesh. Leaf geometry is stored in world space for picking; the GPU
// mesh is kept for drawing. Implements assets.Decoder.
func (s *Scene) Decode(name, path string) (*scenegraph.Node, error) {
	s.ensureShader()
	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) {
		return nil, fmt.Errorf("raylib could not load %s", path)
	}
	if old, ok := s.models[name]; ok {
		s.forget(name)
		rl.UnloadModel(old)
	}
	s.models[name] = model

	meshes := unsafe.Slice(model.Meshes, model.MeshCount)
	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	var meshMaterial []int32
	if model.MeshMaterial != nil {
		meshMaterial = unsafe.Slice(model.MeshMaterial, model.MeshCount)
	}

	root := scenegraph.NewGroup(name)
	for i, mesh := range meshes {
		leaf := scenegraph.NewLeaf(fmt.Sprintf("%s/mesh.%d", name, i), worldMesh(mesh, model.Transform))
		root.Add(leaf)

		var mat rl.Material
		if m, ok := materialIndex(meshMaterial, i, len(materials)); ok {
			mat = materials[m]
		} else {
			mat = s.fallbackMaterial()
		}
		if rl.IsShaderValid(s.lit) {
			mat.Shader = s.lit
		}
		tint := rl.White
		if albedo := mat.GetMap(rl.MapAlbedo); albedo != nil {
			tint = albedo.Color
		}
		s.drawables[leaf] = drawable{mesh: mesh, material: mat, transform: model.Transform, tint: tint}
	}
	return root, nil
}

// materialIndex returns the model material used by mesh i, if the model assigns one
// within its count materials.
func materialIndex(meshMaterial []int32, i, count int) (int, bool) {
	if i < 0 || i >= len(meshMaterial) {
		return 0, false
	}
	m := int(meshMaterial[i])
	if m < 0 || m >= count {
		return 0, false
	}
	return m, true
}

// fallbackMaterial returns the scene's shared default material for meshes without one,
// loading it on first use. Unload frees it.
func (s *Scene) fallbackMaterial() rl.Material {
	if !s.hasFallback {
		s.fallback = rl.LoadMaterialDefault()
		s.hasFallback = true
	}
	return s.fallback
}

// forget drops the drawables of the model previously loaded under name.
func (s *Scene) forget(name string) {
	old, ok := s.graph.Lookup(name)
	if !ok {
		return
	}
	old.Walk(func(n *scenegraph.Node) {
		delete(s.drawables, n)
	})
}

// worldMesh copies mesh positions (and indices, if any) out of raylib memory, transformed to world space.
func worldMesh(mesh rl.Mesh, transform rl.Matrix) *scenegraph.Mesh {
	if mesh.Vertices == nil || mesh.VertexCount == 0 {
		return scenegraph.NewMesh(nil, nil)
	}
	raw := unsafe.Slice(mesh.Vertices, int(mesh.VertexCount)*3)
	positions := make([]geom.Vec3, mesh.VertexCount)
	for i := range positions {
		v := rl.NewVector3(raw[3*i], raw[3*i+1], raw[3*i+2])
		positions[i] = fromRL(rl.Vector3Transform(v, transform))
	}

	var indices []uint32
	if mesh.Indices != nil && mesh.TriangleCount > 0 {
		rawIdx := unsafe.Slice(mesh.Indices, int(mesh.TriangleCount)*3)
		indices = make([]uint32, len(rawIdx))
		for i, ix := range rawIdx {
			indices[i] = uint32(ix)
		}
	}
	return scenegraph.NewMesh(positions, indices)
}

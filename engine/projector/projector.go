// package projector is the CPU-side projection path: it walks a scene,
// pushes vertices through projection * view * world, and produces a flat,
// depth-sorted list of renderable faces, lines, and particles in
// normalized device coordinates, for software rasterization and picking.
package projector

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/scene"
)

// RenderableVertex is one projected vertex: its world position and its
// clip-space position after perspective divide.
type RenderableVertex struct {
	// PositionWorld is the vertex in world space.
	PositionWorld math3.Vector3

	// PositionScreen is the vertex in normalized device coordinates.
	PositionScreen math3.Vector3

	// Visible reports whether the vertex landed inside the view volume.
	Visible bool
}

// RenderableFace is one projected triangle.
type RenderableFace struct {
	V1, V2, V3 RenderableVertex

	// NormalModel is the face normal in world space.
	NormalModel math3.Vector3

	// Color is the face color when the geometry carries one.
	Color math3.Color

	// Material resolves shading for software rasterization.
	Material material.Material

	// Object is the mesh this face came from; FaceIndex its position.
	Object    scene.Node
	FaceIndex int

	// Z is the sort depth: the mean NDC depth of the corners.
	Z float32
}

// RenderableLine is one projected line segment.
type RenderableLine struct {
	V1, V2 RenderableVertex

	Material material.Material

	Object scene.Node

	Z float32
}

// RenderableParticle is one projected point or sprite.
type RenderableParticle struct {
	// X, Y are NDC coordinates; Z the sort depth.
	X, Y, Z float32

	// Rotation and Scale carry sprite orientation and size.
	Rotation float32
	Scale    math3.Vector2

	Material material.Material

	Object scene.Node
}

// RenderList is the flat output of a scene projection, sorted back to
// front when sorting is requested.
type RenderList struct {
	Faces     []RenderableFace
	Lines     []RenderableLine
	Particles []RenderableParticle
}

// Projector projects scenes and vectors through a camera.
type Projector interface {
	// ProjectVector maps a world-space point to normalized device
	// coordinates through the camera.
	//
	// Parameters:
	//   - v: world-space point
	//   - camera: the viewing camera, with current matrices
	//
	// Returns:
	//   - math3.Vector3: the point in NDC
	ProjectVector(v math3.Vector3, camera scene.CameraNode) math3.Vector3

	// UnprojectVector maps a point in normalized device coordinates back
	// to world space.
	//
	// Parameters:
	//   - v: NDC point (z in [-1, 1] selects depth)
	//   - camera: the viewing camera, with current matrices
	//
	// Returns:
	//   - math3.Vector3: the point in world space
	UnprojectVector(v math3.Vector3, camera scene.CameraNode) math3.Vector3

	// PickingRay builds a world-space ray from the camera through a point
	// on the near plane given in NDC.
	//
	// Parameters:
	//   - x, y: NDC coordinates in [-1, 1]
	//   - camera: the viewing camera, with current matrices
	//
	// Returns:
	//   - math3.Ray: origin at the camera, direction through (x, y)
	PickingRay(x, y float32, camera scene.CameraNode) math3.Ray

	// ProjectScene projects every visible renderable of s and returns the
	// flat render list, back-to-front sorted when sortElements is set.
	//
	// Parameters:
	//   - s: the scene to project
	//   - camera: the viewing camera
	//   - sortElements: sort the lists by depth
	//
	// Returns:
	//   - *RenderList: projected faces, lines, and particles
	ProjectScene(s *scene.Scene, camera scene.CameraNode, sortElements bool) *RenderList
}

type projectorImpl struct {
	pool    worker.DynamicWorkerPool
	workers int
}

var _ Projector = (*projectorImpl)(nil)

// ProjectorBuilderOption configures a Projector during construction.
type ProjectorBuilderOption func(*projectorImpl)

// WithWorkers sets the size of the projection worker pool.
//
// Parameters:
//   - n: worker count, minimum 1
func WithWorkers(n int) ProjectorBuilderOption {
	return func(p *projectorImpl) {
		if n > 0 {
			p.workers = n
		}
	}
}

// NewProjector creates a Projector with a worker pool sized to the
// machine's cores.
//
// Parameters:
//   - options: functional options to configure the projector
//
// Returns:
//   - Projector: the configured projector
func NewProjector(options ...ProjectorBuilderOption) Projector {
	p := &projectorImpl{
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(p)
	}
	p.pool = worker.NewDynamicWorkerPool(p.workers, 256, 1*time.Second)
	return p
}

func (p *projectorImpl) ProjectVector(v math3.Vector3, camera scene.CameraNode) math3.Vector3 {
	cam := camera.CameraBase()
	var projScreen math3.Matrix4
	projScreen.MulMatrices(&cam.ProjectionMatrix, &cam.MatrixWorldInverse)
	return v.ApplyProjection(&projScreen)
}

func (p *projectorImpl) UnprojectVector(v math3.Vector3, camera scene.CameraNode) math3.Vector3 {
	cam := camera.CameraBase()
	projInverse, _ := cam.ProjectionMatrix.Inverse()
	var m math3.Matrix4
	m.MulMatrices(&cam.MatrixWorld, &projInverse)
	return v.ApplyProjection(&m)
}

func (p *projectorImpl) PickingRay(x, y float32, camera scene.CameraNode) math3.Ray {
	cam := camera.CameraBase()
	origin := cam.MatrixWorld.Position()
	end := p.UnprojectVector(math3.V3(x, y, 0.5), camera)
	return math3.NewRay(origin, end.Sub(origin).Normalize())
}

// projectedObject carries one object's projected vertex array from the
// worker pool back to the assembly pass.
type projectedObject struct {
	node     scene.Node
	vertices []RenderableVertex
}

func (p *projectorImpl) ProjectScene(s *scene.Scene, camera scene.CameraNode, sortElements bool) *RenderList {
	cam := camera.CameraBase()

	s.UpdateMatrixWorld(false)
	if cam.Parent == nil {
		camera.Base().UpdateMatrixWorld(false)
	}
	if !cam.MatrixWorldInverse.SetInverseOf(&cam.MatrixWorld) {
		cam.MatrixWorldInverse.SetIdentity()
	}

	var projScreen math3.Matrix4
	projScreen.MulMatrices(&cam.ProjectionMatrix, &cam.MatrixWorldInverse)

	var frustum math3.Frustum
	frustum.SetFromMatrix(&projScreen)

	// Fan the per-object vertex projection out to the worker pool; the
	// wait keeps the call synchronous.
	var wg sync.WaitGroup
	projected := make([]projectedObject, 0, len(s.Objects))
	taskID := 0
	for _, node := range s.Objects {
		base := node.Base()
		if !base.Visible {
			continue
		}

		var vertices []math3.Vector3
		switch n := node.(type) {
		case *scene.Mesh:
			if n.Geometry == nil {
				continue
			}
			if base.FrustumCulled && n.Geometry.BoundingSphere != nil {
				world := n.Geometry.BoundingSphere.ApplyMatrix4(&base.MatrixWorld)
				if !frustum.IntersectsSphere(world) {
					continue
				}
			}
			vertices = n.Geometry.Vertices
		case *scene.Line:
			if n.Geometry == nil {
				continue
			}
			vertices = n.Geometry.Vertices
		case *scene.ParticleSystem:
			if n.Geometry == nil {
				continue
			}
			vertices = n.Geometry.Vertices
		case *scene.Particle, *scene.Sprite:
			// Projected inline below; single position.
		default:
			continue
		}

		entry := projectedObject{node: node}
		if len(vertices) > 0 {
			entry.vertices = make([]RenderableVertex, len(vertices))
			src := vertices
			dst := entry.vertices
			world := base.MatrixWorld

			wg.Add(1)
			id := taskID
			taskID++
			p.pool.SubmitTask(worker.Task{
				ID: id,
				Do: func() (any, error) {
					defer wg.Done()
					for i, v := range src {
						dst[i] = projectVertex(v, &world, &projScreen)
					}
					return nil, nil
				},
			})
		}
		projected = append(projected, entry)
	}
	wg.Wait()

	// Assemble the render list serially, in scene order.
	list := &RenderList{}
	for _, entry := range projected {
		switch n := entry.node.(type) {
		case *scene.Mesh:
			p.assembleMesh(list, n, entry.vertices)
		case *scene.Line:
			p.assembleLine(list, n, entry.vertices)
		case *scene.ParticleSystem:
			p.assembleParticles(list, n, entry.vertices, n.Material)
		case *scene.Particle:
			p.assemblePoint(list, n, n.Material, 0, &projScreen)
		case *scene.Sprite:
			p.assemblePoint(list, n, n.Material, n.SpriteRotation, &projScreen)
		}
	}

	if sortElements {
		sort.SliceStable(list.Faces, func(a, b int) bool { return list.Faces[a].Z > list.Faces[b].Z })
		sort.SliceStable(list.Lines, func(a, b int) bool { return list.Lines[a].Z > list.Lines[b].Z })
		sort.SliceStable(list.Particles, func(a, b int) bool { return list.Particles[a].Z > list.Particles[b].Z })
	}
	return list
}

func projectVertex(v math3.Vector3, world, projScreen *math3.Matrix4) RenderableVertex {
	positionWorld := v.ApplyMatrix4(world)
	positionScreen := positionWorld.ApplyProjection(projScreen)
	visible := positionScreen.X >= -1 && positionScreen.X <= 1 &&
		positionScreen.Y >= -1 && positionScreen.Y <= 1 &&
		positionScreen.Z >= -1 && positionScreen.Z <= 1
	return RenderableVertex{
		PositionWorld:  positionWorld,
		PositionScreen: positionScreen,
		Visible:        visible,
	}
}

func (p *projectorImpl) assembleMesh(list *RenderList, mesh *scene.Mesh, vertices []RenderableVertex) {
	geo := mesh.Geometry
	var normalMatrix math3.Matrix3
	normalMatrix.SetNormalMatrix(&mesh.MatrixWorld)

	for i := range geo.Faces {
		face := &geo.Faces[i]
		if face.A >= len(vertices) || face.B >= len(vertices) || face.C >= len(vertices) {
			continue
		}
		v1, v2, v3 := vertices[face.A], vertices[face.B], vertices[face.C]
		if !v1.Visible && !v2.Visible && !v3.Visible {
			continue
		}

		mat := mesh.Material
		if fm, ok := mat.(*material.MeshFaceMaterial); ok {
			if face.MaterialIndex < 0 || face.MaterialIndex >= len(fm.Materials) {
				continue
			}
			mat = fm.Materials[face.MaterialIndex]
		}
		if mat == nil || !mat.Base().Visible {
			continue
		}

		// Screen-space winding decides facing; single-sided materials cull
		// the wrong side.
		area := (v3.PositionScreen.X-v1.PositionScreen.X)*(v2.PositionScreen.Y-v1.PositionScreen.Y) -
			(v3.PositionScreen.Y-v1.PositionScreen.Y)*(v2.PositionScreen.X-v1.PositionScreen.X)
		switch mat.Base().Side {
		case material.SideFront:
			if area >= 0 {
				continue
			}
		case material.SideBack:
			if area < 0 {
				continue
			}
		}

		list.Faces = append(list.Faces, RenderableFace{
			V1:          v1,
			V2:          v2,
			V3:          v3,
			NormalModel: face.Normal.ApplyMatrix3(&normalMatrix).Normalize(),
			Color:       face.Color,
			Material:    mat,
			Object:      mesh,
			FaceIndex:   i,
			Z:           (v1.PositionScreen.Z + v2.PositionScreen.Z + v3.PositionScreen.Z) / 3,
		})
	}
}

func (p *projectorImpl) assembleLine(list *RenderList, line *scene.Line, vertices []RenderableVertex) {
	step := 1
	if line.Type == scene.LinePieces {
		step = 2
	}
	for i := 0; i+1 < len(vertices); i += step {
		v1, v2 := vertices[i], vertices[i+1]
		if !v1.Visible && !v2.Visible {
			continue
		}
		list.Lines = append(list.Lines, RenderableLine{
			V1:       v1,
			V2:       v2,
			Material: line.Material,
			Object:   line,
			Z:        math3.Max(v1.PositionScreen.Z, v2.PositionScreen.Z),
		})
	}
}

func (p *projectorImpl) assembleParticles(list *RenderList, ps *scene.ParticleSystem, vertices []RenderableVertex, mat material.Material) {
	for _, v := range vertices {
		if !v.Visible {
			continue
		}
		list.Particles = append(list.Particles, RenderableParticle{
			X:        v.PositionScreen.X,
			Y:        v.PositionScreen.Y,
			Z:        v.PositionScreen.Z,
			Scale:    math3.V2(1, 1),
			Material: mat,
			Object:   ps,
		})
	}
}

func (p *projectorImpl) assemblePoint(list *RenderList, node scene.Node, mat material.Material, rotation float32, projScreen *math3.Matrix4) {
	base := node.Base()
	pos := base.MatrixWorld.Position().ApplyProjection(projScreen)
	if pos.Z < -1 || pos.Z > 1 {
		return
	}
	list.Particles = append(list.Particles, RenderableParticle{
		X:        pos.X,
		Y:        pos.Y,
		Z:        pos.Z,
		Rotation: rotation,
		Scale:    math3.V2(base.Scale.X, base.Scale.Y),
		Material: mat,
		Object:   node,
	})
}

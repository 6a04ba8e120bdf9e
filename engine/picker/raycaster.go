// package picker intersects world-space rays with scene objects: a
// bounding-sphere reject followed by per-triangle tests for meshes, and a
// distance test for particles.
package picker

import (
	"sort"

	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/scene"
)

// Hit is one ray intersection, in world space.
type Hit struct {
	// Distance from the ray origin to the intersection point.
	Distance float32

	// Point is the world-space intersection position.
	Point math3.Vector3

	// Face is the intersected face for mesh hits, nil otherwise.
	Face *geometry.Face3

	// FaceIndex is the face's position in its geometry, -1 otherwise.
	FaceIndex int

	// Object is the node that was hit.
	Object scene.Node
}

// Raycaster casts one ray against objects, keeping hits whose distance
// falls within [Near, Far].
type Raycaster struct {
	// Ray is the world-space ray; Direction must be normalized.
	Ray math3.Ray

	// Near and Far clamp accepted hit distances.
	Near float32
	Far  float32
}

// NewRaycaster creates a raycaster over an origin and normalized
// direction, accepting hits at any distance.
func NewRaycaster(origin, direction math3.Vector3) *Raycaster {
	return &Raycaster{
		Ray: math3.NewRay(origin, direction),
		Far: math3.Inf(),
	}
}

// IntersectObject collects intersections with node (and, when recursive,
// its descendants), sorted ascending by distance. World matrices must be
// current.
//
// Parameters:
//   - node: the subtree root to test
//   - recursive: test descendants too
//
// Returns:
//   - []Hit: intersections sorted nearest first
func (rc *Raycaster) IntersectObject(node scene.Node, recursive bool) []Hit {
	var hits []Hit
	if recursive {
		node.Base().Traverse(func(n scene.Node) {
			hits = append(hits, rc.intersect(n)...)
		})
	} else {
		hits = rc.intersect(node)
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Distance < hits[b].Distance })
	return hits
}

// IntersectObjects collects intersections across several subtree roots,
// sorted ascending by distance.
//
// Parameters:
//   - nodes: the subtree roots to test
//   - recursive: test descendants too
//
// Returns:
//   - []Hit: intersections sorted nearest first
func (rc *Raycaster) IntersectObjects(nodes []scene.Node, recursive bool) []Hit {
	var hits []Hit
	for _, n := range nodes {
		hits = append(hits, rc.IntersectObject(n, recursive)...)
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Distance < hits[b].Distance })
	return hits
}

func (rc *Raycaster) intersect(node scene.Node) []Hit {
	switch n := node.(type) {
	case *scene.Particle:
		return rc.intersectParticle(n)
	case *scene.Mesh:
		return rc.intersectMesh(n)
	}
	return nil
}

func (rc *Raycaster) intersectParticle(p *scene.Particle) []Hit {
	position := p.MatrixWorld.Position()
	scale := math3.Max(p.Scale.X, math3.Max(p.Scale.Y, p.Scale.Z))
	if rc.Ray.DistanceToPoint(position) > scale {
		return nil
	}
	distance := rc.Ray.Origin.DistanceTo(position)
	if distance < rc.Near || distance > rc.Far {
		return nil
	}
	return []Hit{{
		Distance:  distance,
		Point:     position,
		FaceIndex: -1,
		Object:    p,
	}}
}

func (rc *Raycaster) intersectMesh(mesh *scene.Mesh) []Hit {
	geo := mesh.Geometry
	if geo == nil || mesh.Material == nil {
		return nil
	}

	// Bounding-sphere reject in world space, radius scaled by the largest
	// axis scale.
	if geo.BoundingSphere == nil {
		geo.ComputeBoundingSphere()
	}
	worldSphere := geo.BoundingSphere.ApplyMatrix4(&mesh.MatrixWorld)
	if _, ok := rc.Ray.IntersectSphere(worldSphere); !ok {
		return nil
	}

	var hits []Hit
	for i := range geo.Faces {
		face := &geo.Faces[i]

		mat := mesh.Material
		if fm, ok := mat.(*material.MeshFaceMaterial); ok {
			if face.MaterialIndex < 0 || face.MaterialIndex >= len(fm.Materials) {
				continue
			}
			mat = fm.Materials[face.MaterialIndex]
		}
		if mat == nil {
			continue
		}

		a := geo.Vertices[face.A].ApplyMatrix4(&mesh.MatrixWorld)
		b := geo.Vertices[face.B].ApplyMatrix4(&mesh.MatrixWorld)
		c := geo.Vertices[face.C].ApplyMatrix4(&mesh.MatrixWorld)

		var t float32
		var ok bool
		switch mat.Base().Side {
		case material.SideFront:
			t, ok = rc.Ray.IntersectTriangle(a, b, c, true)
		case material.SideBack:
			t, ok = rc.Ray.IntersectTriangle(c, b, a, true)
		default:
			t, ok = rc.Ray.IntersectTriangle(a, b, c, false)
		}
		if !ok || t < rc.Near || t > rc.Far {
			continue
		}

		hits = append(hits, Hit{
			Distance:  t,
			Point:     rc.Ray.At(t),
			Face:      face,
			FaceIndex: i,
			Object:    mesh,
		})
	}
	return hits
}

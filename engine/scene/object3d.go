// package scene implements the retained scene graph: a tree of
// transformable Object3D nodes (meshes, lines, particles, sprites, bones,
// cameras, lights) rooted at a Scene that tracks membership and queues
// add/remove events for the renderer.
//
// The set of node kinds is closed; consumers type-switch on the concrete
// types reached through the Node interface.
package scene

import (
	"log"
	"sync/atomic"

	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/google/uuid"
)

// objectCount is an atomic counter used to assign unique object ids.
var objectCount atomic.Uint64

// Node is implemented by every scene-graph node kind. Base exposes the
// shared Object3D payload; everything kind-specific is reached by
// type-switching on the concrete node.
type Node interface {
	// Base returns the node's shared Object3D payload.
	//
	// Returns:
	//   - *Object3D: the shared transform/hierarchy state
	Base() *Object3D
}

// Object3D is the payload shared by every scene-graph node: identity, the
// parent/children links, the local TRS with its quaternion/Euler mirror,
// the derived local and world matrices, and the render-facing flags.
type Object3D struct {
	// ID is the unique numeric id assigned at creation.
	ID uint64

	// UUID is the stable string identifier assigned at creation.
	UUID string

	// Name is an optional label; GetObjectByName searches it.
	Name string

	// Parent is the owning node, nil for roots. Non-owning back-reference;
	// ownership runs parent to child.
	Parent Node

	// Children are the owned child nodes in insertion order.
	Children []Node

	// Up is the reference up direction used by LookAt.
	Up math3.Vector3

	// Position is the local translation.
	Position math3.Vector3

	// Scale is the local scale.
	Scale math3.Vector3

	// quaternion and rotation mirror one another: every setter updates the
	// other side so they always agree.
	quaternion math3.Quaternion
	rotation   math3.Euler

	// RotationAutoUpdate lets LookAt refresh the rotation mirror.
	RotationAutoUpdate bool

	// Matrix is the local transform, composed from position, quaternion,
	// and scale whenever MatrixAutoUpdate is set.
	Matrix math3.Matrix4

	// MatrixWorld is parent.MatrixWorld * Matrix, maintained by
	// UpdateMatrixWorld.
	MatrixWorld math3.Matrix4

	// MatrixAutoUpdate recomposes Matrix each UpdateMatrixWorld pass.
	MatrixAutoUpdate bool

	// MatrixWorldNeedsUpdate marks MatrixWorld stale; set by UpdateMatrix.
	MatrixWorldNeedsUpdate bool

	// Visible excludes the node (not its children) from rendering.
	Visible bool

	// CastShadow and ReceiveShadow feed the shader feature flags.
	CastShadow    bool
	ReceiveShadow bool

	// FrustumCulled lets the renderer skip the node when its bounding
	// sphere leaves the view frustum.
	FrustumCulled bool

	// RenderDepth overrides eye-space depth sorting when RenderDepthSet.
	RenderDepth    float32
	RenderDepthSet bool

	// self is the concrete node embedding this payload, recorded at
	// construction so hierarchy links carry the full node type.
	self Node
}

// initObject3D fills the shared payload with defaults and records the
// embedding node. Every node constructor calls this exactly once.
func initObject3D(self Node, o *Object3D) {
	o.ID = objectCount.Add(1)
	o.UUID = uuid.NewString()
	o.Up = math3.V3(0, 1, 0)
	o.Scale = math3.V3(1, 1, 1)
	o.quaternion = math3.QuaternionIdentity()
	o.RotationAutoUpdate = true
	o.Matrix = math3.Identity4()
	o.MatrixWorld = math3.Identity4()
	o.MatrixAutoUpdate = true
	o.Visible = true
	o.FrustumCulled = true
	o.self = self
}

// Rotation returns the node's Euler rotation mirror.
func (o *Object3D) Rotation() math3.Euler {
	return o.rotation
}

// Quaternion returns the node's quaternion rotation mirror.
func (o *Object3D) Quaternion() math3.Quaternion {
	return o.quaternion
}

// SetRotation assigns the Euler rotation and refreshes the quaternion
// mirror.
func (o *Object3D) SetRotation(e math3.Euler) {
	o.rotation = e
	o.quaternion.SetFromEuler(e)
}

// SetQuaternion assigns the quaternion rotation and refreshes the Euler
// mirror under its current order.
func (o *Object3D) SetQuaternion(q math3.Quaternion) {
	o.quaternion = q
	o.rotation.SetFromQuaternion(q, o.rotation.Order)
}

// SetRotationOrder changes the Euler order, re-deriving the angles from the
// quaternion so the rotation itself is unchanged.
func (o *Object3D) SetRotationOrder(order math3.RotationOrder) {
	o.rotation.SetFromQuaternion(o.quaternion, order)
}

// Add attaches child to this node, detaching it from any prior parent
// first. A self-add is rejected with a log and no state change. The
// enclosing Scene, if any, records the subtree in its added queue.
func (o *Object3D) Add(child Node) {
	if child == nil || child.Base() == o {
		log.Printf("[scene] Object3D.Add: object %d can't be added as a child of itself", o.ID)
		return
	}

	cb := child.Base()
	if cb.Parent != nil {
		cb.Parent.Base().Remove(child)
	}
	cb.Parent = o.self
	o.Children = append(o.Children, child)

	if s := o.enclosingScene(); s != nil {
		s.addObject(child)
	}
}

// Remove detaches child from this node. Removing a non-child is a no-op.
// The enclosing Scene, if any, records the subtree in its removed queue.
func (o *Object3D) Remove(child Node) {
	idx := -1
	for i, c := range o.Children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	child.Base().Parent = nil
	o.Children = append(o.Children[:idx], o.Children[idx+1:]...)

	if s := o.enclosingScene(); s != nil {
		s.removeObject(child)
	}
}

// enclosingScene walks the parent chain and returns the Scene at the root,
// or nil when the subtree is detached.
func (o *Object3D) enclosingScene() *Scene {
	root := o.self
	for root.Base().Parent != nil {
		root = root.Base().Parent
	}
	if s, ok := root.(*Scene); ok {
		return s
	}
	return nil
}

// Traverse visits the node and every descendant in pre-order.
func (o *Object3D) Traverse(fn func(Node)) {
	fn(o.self)
	for _, c := range o.Children {
		c.Base().Traverse(fn)
	}
}

// GetObjectByID returns the first node in pre-order whose id matches, with
// recursive search, or nil.
func (o *Object3D) GetObjectByID(id uint64) Node {
	if o.ID == id {
		return o.self
	}
	for _, c := range o.Children {
		if found := c.Base().GetObjectByID(id); found != nil {
			return found
		}
	}
	return nil
}

// GetObjectByName returns the first node in pre-order whose name matches,
// with recursive search, or nil.
func (o *Object3D) GetObjectByName(name string) Node {
	if o.Name == name {
		return o.self
	}
	for _, c := range o.Children {
		if found := c.Base().GetObjectByName(name); found != nil {
			return found
		}
	}
	return nil
}

// UpdateMatrix recomposes the local matrix from position, quaternion, and
// scale, and marks the world matrix stale.
func (o *Object3D) UpdateMatrix() {
	o.Matrix.Compose(o.Position, o.quaternion, o.Scale)
	o.MatrixWorldNeedsUpdate = true
}

// UpdateMatrixWorld refreshes this node's world matrix and, when it
// changed (or force is set), every descendant's. After it returns, every
// node in the subtree has a current MatrixWorld.
func (o *Object3D) UpdateMatrixWorld(force bool) {
	if o.MatrixAutoUpdate {
		o.UpdateMatrix()
	}

	if o.MatrixWorldNeedsUpdate || force {
		if o.Parent == nil {
			o.MatrixWorld = o.Matrix
		} else {
			o.MatrixWorld.MulMatrices(&o.Parent.Base().MatrixWorld, &o.Matrix)
		}
		o.MatrixWorldNeedsUpdate = false
		force = true
	}

	for _, c := range o.Children {
		c.Base().UpdateMatrixWorld(force)
	}
}

// LocalToWorld transforms a point from this node's local space to world
// space using the current world matrix.
func (o *Object3D) LocalToWorld(v math3.Vector3) math3.Vector3 {
	return v.ApplyMatrix4(&o.MatrixWorld)
}

// WorldToLocal transforms a point from world space to this node's local
// space using the current world matrix.
func (o *Object3D) WorldToLocal(v math3.Vector3) math3.Vector3 {
	inv, _ := o.MatrixWorld.Inverse()
	return v.ApplyMatrix4(&inv)
}

// LookAt rotates the node so its +Z axis points at target, with Up
// projected out. Only valid for nodes whose rotation mirrors auto-update.
func (o *Object3D) LookAt(target math3.Vector3) {
	var m math3.Matrix4
	m.SetIdentity()
	m.SetLookAt(target, o.Position, o.Up)

	if o.RotationAutoUpdate {
		var q math3.Quaternion
		q.SetFromRotationMatrix(&m)
		o.SetQuaternion(q)
	}
}

// RotateOnAxis rotates the node by angle radians around a normalized axis
// in local space.
func (o *Object3D) RotateOnAxis(axis math3.Vector3, angle float32) {
	var q math3.Quaternion
	q.SetFromAxisAngle(axis, angle)
	o.SetQuaternion(math3.MulQuaternions(o.quaternion, q))
}

// TranslateOnAxis moves the node by distance along a normalized axis in
// local space (the axis is rotated by the node's current orientation).
func (o *Object3D) TranslateOnAxis(axis math3.Vector3, distance float32) {
	o.Position = o.Position.Add(axis.ApplyQuaternion(o.quaternion).MulScalar(distance))
}

// TranslateX moves the node along its local X axis.
func (o *Object3D) TranslateX(distance float32) {
	o.TranslateOnAxis(math3.V3(1, 0, 0), distance)
}

// TranslateY moves the node along its local Y axis.
func (o *Object3D) TranslateY(distance float32) {
	o.TranslateOnAxis(math3.V3(0, 1, 0), distance)
}

// TranslateZ moves the node along its local Z axis.
func (o *Object3D) TranslateZ(distance float32) {
	o.TranslateOnAxis(math3.V3(0, 0, 1), distance)
}

// ApplyMatrix pre-multiplies the local matrix by m and re-derives position,
// rotation, and scale from the result.
func (o *Object3D) ApplyMatrix(m *math3.Matrix4) {
	o.UpdateMatrix()
	o.Matrix.MulMatrices(m, &o.Matrix)
	pos, q, scl := o.Matrix.Decompose()
	o.Position = pos
	o.Scale = scl
	o.SetQuaternion(q)
}

// WorldPosition returns the node's position in world space from the current
// world matrix.
func (o *Object3D) WorldPosition() math3.Vector3 {
	return o.MatrixWorld.Position()
}

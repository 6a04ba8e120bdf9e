package scene

import (
	"github.com/Carmen-Shannon/trigl/engine/math3"
)

// CameraNode is implemented by both camera kinds; the renderer and
// projector accept any of them.
type CameraNode interface {
	Node

	// CameraBase returns the shared camera payload.
	//
	// Returns:
	//   - *Camera: the shared projection/view state
	CameraBase() *Camera

	// UpdateProjectionMatrix rebuilds the projection matrix from the
	// camera's current parameters.
	UpdateProjectionMatrix()
}

// Camera is the payload shared by the perspective and orthographic
// cameras: the projection matrix and the cached inverse world (view)
// matrix the renderer refreshes each frame.
type Camera struct {
	Object3D

	// ProjectionMatrix is rebuilt by UpdateProjectionMatrix.
	ProjectionMatrix math3.Matrix4

	// MatrixWorldInverse is the view matrix, refreshed by the renderer at
	// the start of every frame.
	MatrixWorldInverse math3.Matrix4
}

func (c *Camera) CameraBase() *Camera { return c }

// LookAt rotates the camera so it looks at target down its local -Z axis.
// This is the reverse of Object3D.LookAt, which faces +Z toward the
// target.
func (c *Camera) LookAt(target math3.Vector3) {
	var m math3.Matrix4
	m.SetIdentity()
	m.SetLookAt(c.Position, target, c.Up)

	if c.RotationAutoUpdate {
		var q math3.Quaternion
		q.SetFromRotationMatrix(&m)
		c.SetQuaternion(q)
	}
}

// PerspectiveCamera projects with a symmetric vertical field of view.
type PerspectiveCamera struct {
	Camera

	// Fov is the vertical field of view in degrees.
	Fov float32

	// Aspect is width over height.
	Aspect float32

	// Near and Far bound the view volume depth.
	Near float32
	Far  float32
}

// NewPerspectiveCamera creates a perspective camera and builds its
// projection matrix.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{Fov: fov, Aspect: aspect, Near: near, Far: far}
	initObject3D(c, &c.Object3D)
	c.MatrixWorldInverse = math3.Identity4()
	c.UpdateProjectionMatrix()
	return c
}

func (c *PerspectiveCamera) Base() *Object3D { return &c.Object3D }

// UpdateProjectionMatrix rebuilds the projection from fov/aspect/near/far.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.ProjectionMatrix.SetPerspective(c.Fov, c.Aspect, c.Near, c.Far)
}

// OrthographicCamera projects with a parallel view volume.
type OrthographicCamera struct {
	Camera

	Left   float32
	Right  float32
	Top    float32
	Bottom float32
	Near   float32
	Far    float32
}

// NewOrthographicCamera creates an orthographic camera and builds its
// projection matrix.
func NewOrthographicCamera(left, right, top, bottom, near, far float32) *OrthographicCamera {
	c := &OrthographicCamera{Left: left, Right: right, Top: top, Bottom: bottom, Near: near, Far: far}
	initObject3D(c, &c.Object3D)
	c.MatrixWorldInverse = math3.Identity4()
	c.UpdateProjectionMatrix()
	return c
}

func (c *OrthographicCamera) Base() *Object3D { return &c.Object3D }

// UpdateProjectionMatrix rebuilds the projection from the volume bounds.
func (c *OrthographicCamera) UpdateProjectionMatrix() {
	c.ProjectionMatrix.SetOrthographic(c.Left, c.Right, c.Top, c.Bottom, c.Near, c.Far)
}

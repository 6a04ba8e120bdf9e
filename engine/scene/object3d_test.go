package scene

import (
	"testing"

	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDetachesFromPriorParent(t *testing.T) {
	a := NewGroup()
	b := NewGroup()
	child := NewGroup()

	a.Add(child)
	assert.Equal(t, Node(a), child.Parent)
	assert.Len(t, a.Children, 1)

	// Reparenting detaches first; a child is never in two parents.
	b.Add(child)
	assert.Equal(t, Node(b), child.Parent)
	assert.Empty(t, a.Children)
	assert.Len(t, b.Children, 1)
}

func TestAddRejectsSelf(t *testing.T) {
	g := NewGroup()
	g.Add(g)
	assert.Empty(t, g.Children)
	assert.Nil(t, g.Parent)
}

func TestRemoveNonChildIsNoOp(t *testing.T) {
	a := NewGroup()
	b := NewGroup()
	a.Remove(b)
	assert.Nil(t, b.Parent)
}

func TestUpdateMatrixWorldNestedTransform(t *testing.T) {
	parent := NewGroup()
	parent.Position = math3.V3(1, 0, 0)
	parent.SetRotation(math3.Euler{Y: math3.DegToRad(90)})

	child := NewGroup()
	child.Position = math3.V3(0, 1, 0)
	parent.Add(child)

	parent.UpdateMatrixWorld(false)

	world := child.MatrixWorld.Position()
	assert.True(t, world.ApproxEqual(math3.V3(1, 1, 0), 1e-5))

	// Invariant: child.matrixWorld = parent.matrixWorld * child.matrix.
	var expected math3.Matrix4
	expected.MulMatrices(&parent.MatrixWorld, &child.Matrix)
	assert.True(t, child.MatrixWorld.ApproxEqual(&expected, 1e-6))
}

func TestUpdateMatrixWorldPropagatesForce(t *testing.T) {
	root := NewGroup()
	mid := NewGroup()
	leaf := NewGroup()
	root.Add(mid)
	mid.Add(leaf)
	root.UpdateMatrixWorld(false)

	// Moving the root must reach the leaf on the next pass even though
	// the leaf itself is clean.
	root.Position = math3.V3(0, 5, 0)
	root.UpdateMatrixWorld(false)
	assert.True(t, leaf.MatrixWorld.Position().ApproxEqual(math3.V3(0, 5, 0), 1e-5))
}

func TestRotationMirrors(t *testing.T) {
	g := NewGroup()

	e := math3.Euler{X: 0.3, Y: -0.6, Z: 1.0, Order: math3.RotationOrderYXZ}
	g.SetRotation(e)

	var q math3.Quaternion
	q.SetFromEuler(e)
	assert.True(t, g.Quaternion().ApproxEqual(q, 1e-6))

	// Setting the quaternion re-derives the Euler under its order.
	var q2 math3.Quaternion
	q2.SetFromAxisAngle(math3.V3(0, 1, 0), 0.5)
	g.SetQuaternion(q2)
	back := g.Rotation()
	var q3 math3.Quaternion
	q3.SetFromEuler(back)
	assert.True(t, q3.ApproxEqual(q2, 1e-4))
}

func TestLookAtFacesTarget(t *testing.T) {
	g := NewGroup()
	g.Position = math3.V3(0, 0, 0)
	g.LookAt(math3.V3(10, 0, 0))
	g.UpdateMatrixWorld(false)

	// +Z points toward the target.
	forward := math3.V3(0, 0, 1).ApplyQuaternion(g.Quaternion())
	assert.True(t, forward.ApproxEqual(math3.V3(1, 0, 0), 1e-5))
}

func TestTraversePreOrder(t *testing.T) {
	root := NewGroup()
	root.Name = "root"
	a := NewGroup()
	a.Name = "a"
	b := NewGroup()
	b.Name = "b"
	aa := NewGroup()
	aa.Name = "aa"
	root.Add(a)
	root.Add(b)
	a.Add(aa)

	var names []string
	root.Traverse(func(n Node) { names = append(names, n.Base().Name) })
	assert.Equal(t, []string{"root", "a", "aa", "b"}, names)
}

func TestGetObjectByNameAndID(t *testing.T) {
	root := NewGroup()
	child := NewGroup()
	child.Name = "wanted"
	grand := NewGroup()
	grand.Name = "wanted"
	root.Add(child)
	child.Add(grand)

	// First match in pre-order wins.
	found := root.GetObjectByName("wanted")
	require.NotNil(t, found)
	assert.Equal(t, child.ID, found.Base().ID)

	assert.Nil(t, root.GetObjectByName("missing"))

	byID := root.GetObjectByID(grand.ID)
	require.NotNil(t, byID)
	assert.Equal(t, grand.ID, byID.Base().ID)
}

func TestLocalToWorldRoundTrip(t *testing.T) {
	g := NewGroup()
	g.Position = math3.V3(3, 0, 0)
	g.Scale = math3.V3(2, 2, 2)
	g.UpdateMatrixWorld(false)

	p := math3.V3(1, 1, 1)
	world := g.LocalToWorld(p)
	assert.True(t, world.ApproxEqual(math3.V3(5, 2, 2), 1e-5))
	back := g.WorldToLocal(world)
	assert.True(t, back.ApproxEqual(p, 1e-5))
}

func TestTranslateAndRotateOnAxis(t *testing.T) {
	g := NewGroup()
	g.SetRotation(math3.Euler{Y: math3.DegToRad(90)})
	g.TranslateZ(2)
	// Local +Z rotated 90 degrees about Y lands on world +X.
	assert.True(t, g.Position.ApproxEqual(math3.V3(2, 0, 0), 1e-5))

	h := NewGroup()
	h.RotateOnAxis(math3.V3(0, 1, 0), math3.DegToRad(90))
	forward := math3.V3(0, 0, 1).ApplyQuaternion(h.Quaternion())
	assert.True(t, forward.ApproxEqual(math3.V3(1, 0, 0), 1e-5))
}

func TestUniqueIDs(t *testing.T) {
	a := NewGroup()
	b := NewGroup()
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEmpty(t, a.UUID)
	assert.NotEqual(t, a.UUID, b.UUID)
}

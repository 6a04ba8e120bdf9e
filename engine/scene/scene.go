package scene

import (
	"github.com/Carmen-Shannon/trigl/engine/material"
)

// Scene is the scene-graph root. It owns its subtree, tracks the live
// renderable leaves and lights, and queues membership changes for the
// renderer to drain before the next frame's draws.
type Scene struct {
	Object3D

	// Objects are the live renderable leaf nodes currently in the graph.
	Objects []Node

	// Lights are the live lights currently in the graph.
	Lights []LightNode

	// ObjectsAdded queues nodes added since the renderer's last init pass,
	// in FIFO order.
	ObjectsAdded []Node

	// ObjectsRemoved queues nodes removed since the renderer's last init
	// pass, in FIFO order.
	ObjectsRemoved []Node

	// Fog is optional linear or exponential fog applied scene-wide.
	Fog FogSpec

	// OverrideMaterial, when set, replaces every object's material for the
	// whole frame.
	OverrideMaterial material.Material

	// AutoUpdate lets the renderer refresh the scene's world matrices each
	// frame.
	AutoUpdate bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	s := &Scene{AutoUpdate: true}
	initObject3D(s, &s.Object3D)
	return s
}

func (s *Scene) Base() *Object3D { return &s.Object3D }

// addObject records node and its descendants as scene members: lights join
// the light set, cameras and bones only join the hierarchy, and every
// other node joins the render list via the added queue.
func (s *Scene) addObject(node Node) {
	switch n := node.(type) {
	case LightNode:
		if !containsLight(s.Lights, n) {
			s.Lights = append(s.Lights, n)
		}
		if dl, ok := node.(*DirectionalLight); ok && dl.Target != nil && dl.Target.Base().Parent == nil {
			s.Add(dl.Target)
		}
		if sl, ok := node.(*SpotLight); ok && sl.Target != nil && sl.Target.Base().Parent == nil {
			s.Add(sl.Target)
		}
	case CameraNode, *Bone:
		// Tracked through the hierarchy only.
	default:
		if !containsNode(s.Objects, node) {
			s.Objects = append(s.Objects, node)
			s.ObjectsAdded = append(s.ObjectsAdded, node)
			s.ObjectsRemoved = removeNode(s.ObjectsRemoved, node)
		}
	}

	for _, c := range node.Base().Children {
		s.addObject(c)
	}
}

// removeObject symmetrically un-records node and its descendants.
func (s *Scene) removeObject(node Node) {
	switch n := node.(type) {
	case LightNode:
		s.Lights = removeLight(s.Lights, n)
	case CameraNode, *Bone:
		// Tracked through the hierarchy only.
	default:
		if containsNode(s.Objects, node) {
			s.Objects = removeNode(s.Objects, node)
			s.ObjectsRemoved = append(s.ObjectsRemoved, node)
			s.ObjectsAdded = removeNode(s.ObjectsAdded, node)
		}
	}

	for _, c := range node.Base().Children {
		s.removeObject(c)
	}
}

func containsNode(list []Node, n Node) bool {
	for _, x := range list {
		if x == n {
			return true
		}
	}
	return false
}

func removeNode(list []Node, n Node) []Node {
	for i, x := range list {
		if x == n {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func containsLight(list []LightNode, n LightNode) bool {
	for _, x := range list {
		if x == n {
			return true
		}
	}
	return false
}

func removeLight(list []LightNode, n LightNode) []LightNode {
	for i, x := range list {
		if x == n {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Package scene is a small transform hierarchy: every Node has a local
// position, a rotation about the vertical axis and a uniform scale, and is
// placed relative to its parent.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind tells what a node stands for.
type Kind int

const (
	KindRoot Kind = iota
	KindStar
	KindPlanet
	KindMoon
)

// NodeID identifies a node within its Graph.
type NodeID uint32

// Material is the opaque surface description handed to renderers.
// Texture is an asset key; Color (0xRRGGBB) is used when the texture is
// unavailable. Unlit surfaces ignore scene lighting.
type Material struct {
	Texture string
	Color   uint32
	Unlit   bool
}

// Node is one transform in the hierarchy. Only Position and Rotation are
// expected to change after the graph is built.
type Node struct {
	ID       NodeID
	Name     string
	Kind     Kind
	Position mgl64.Vec3
	// Rotation is the accumulated angle, in radians, about the +Y axis.
	Rotation float64
	Scale    float64
	Material Material

	parent   *Node
	children []*Node
}

// Parent returns the owning node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the owned nodes in insertion order. The slice is shared
// with the node and must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) add(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Local returns the node's transform relative to its parent:
// translate, then rotate about Y, then scale.
func (n *Node) Local() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := mgl64.HomogRotate3DY(n.Rotation)
	s := mgl64.Scale3D(n.Scale, n.Scale, n.Scale)
	return t.Mul4(r).Mul4(s)
}

// World returns the node's transform in root space. Children inherit the
// parent's translation, rotation and scale.
func (n *Node) World() mgl64.Mat4 {
	if n.parent == nil {
		return n.Local()
	}
	return n.parent.World().Mul4(n.Local())
}

// WorldPosition returns the node's origin in root space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, n.World())
}

// WorldScale returns the node's accumulated uniform scale.
func (n *Node) WorldScale() float64 {
	s := n.Scale
	for p := n.parent; p != nil; p = p.parent {
		s *= p.Scale
	}
	return s
}

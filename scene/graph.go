package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/kamstrup/intmap"
)

// Graph owns a node hierarchy and indexes every node by ID.
type Graph struct {
	Root *Node
	Star *Node

	nodes  *intmap.Map[NodeID, *Node]
	nextID NodeID
}

func newGraph(capacity int) *Graph {
	g := &Graph{
		nodes: intmap.New[NodeID, *Node](capacity),
	}
	g.Root = g.newNode("root", KindRoot)
	g.Root.Scale = 1
	return g
}

func (g *Graph) newNode(name string, kind Kind) *Node {
	g.nextID++
	n := &Node{
		ID:   g.nextID,
		Name: name,
		Kind: kind,
	}
	g.nodes.Put(n.ID, n)
	return n
}

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	return g.nodes.Get(id)
}

// Len returns the number of nodes including the root container.
func (g *Graph) Len() int {
	return g.nodes.Len()
}

// BodyCount returns the number of body nodes: the star, planets and moons.
func (g *Graph) BodyCount() int {
	return g.Len() - 1
}

// Bodies returns every body node, parents before children.
func (g *Graph) Bodies() []*Node {
	bodies := make([]*Node, 0, g.BodyCount())
	g.Root.Walk(func(n *Node) bool {
		if n.Kind != KindRoot {
			bodies = append(bodies, n)
		}
		return true
	})
	return bodies
}

// Shape is a structural snapshot of one node.
type Shape struct {
	ID       NodeID
	Parent   NodeID
	Name     string
	Kind     Kind
	Position mgl64.Vec3
	Rotation float64
	Scale    float64
}

// Topology returns the structure of the graph in walk order: who owns whom,
// with each node's name and kind. Transforms are left zero so snapshots taken
// at different animation times compare equal.
func (g *Graph) Topology() []Shape {
	shapes := make([]Shape, 0, g.Len())
	g.Root.Walk(func(n *Node) bool {
		s := Shape{ID: n.ID, Name: n.Name, Kind: n.Kind}
		if n.parent != nil {
			s.Parent = n.parent.ID
		}
		shapes = append(shapes, s)
		return true
	})
	return shapes
}

// Snapshot returns Topology plus the current transform of every node.
func (g *Graph) Snapshot() []Shape {
	shapes := g.Topology()
	for i := range shapes {
		n, _ := g.Node(shapes[i].ID)
		shapes[i].Position = n.Position
		shapes[i].Rotation = n.Rotation
		shapes[i].Scale = n.Scale
	}
	return shapes
}

package skatescene

import "github.com/go-gl/mathgl/mgl32"

// part is a child owned by a Group, along with the color (if any) written to UniformColor right before it renders.
type part struct {
	node    INode
	color   mgl32.Vec3
	colored bool
}

// Group is a Node that owns other Nodes and renders them as a unit. It has no geometry of its own; a skateboard
// or a block letter is a Group of Models. Owning a Node means the Group renders it and destroys it, which is
// separate from the parent link that drives the Node's transform: a Group may own a Node that is parented to
// one of its siblings.
type Group struct {
	*Node
	parts      []part
	untextured bool
}

// NewGroup returns a new, empty Group.
func NewGroup(name string) *Group {
	return &Group{
		Node: NewNode(name),
	}
}

// Type returns the NodeType for this object.
func (group *Group) Type() NodeType {
	return NodeTypeGroup
}

// AddChildren makes the Group the owner and the parent of the provided children. Children already owned by
// another Group are released from it first, which is how a finished subtree (say, a rider) is attached to
// another assembly. Children render in the order they were added.
func (group *Group) AddChildren(children ...INode) {
	for _, child := range children {
		b := child.base()
		if b.owner != nil {
			b.owner.release(b)
		}
		b.owner = group
		child.SetParent(group)
		group.parts = append(group.parts, part{node: child})
	}
}

// RemoveChildren gives up ownership of the provided children and unparents them. Children the Group doesn't
// own are ignored. Removed children are not destroyed.
func (group *Group) RemoveChildren(children ...INode) {
	for _, child := range children {
		b := child.base()
		if b.owner != group {
			continue
		}
		group.release(b)
		b.owner = nil
		child.SetParent(nil)
	}
}

// Tint sets the color written to UniformColor right before each of the provided (owned) children renders.
func (group *Group) Tint(color mgl32.Vec3, children ...INode) {
	for _, child := range children {
		for i := range group.parts {
			if group.parts[i].node == child {
				group.parts[i].color = color
				group.parts[i].colored = true
			}
		}
	}
}

// ChildColor returns the color the Group writes before rendering the given child, and whether it writes one at all.
func (group *Group) ChildColor(child INode) (mgl32.Vec3, bool) {
	for _, p := range group.parts {
		if p.node == child {
			return p.color, p.colored
		}
	}
	return mgl32.Vec3{}, false
}

// SetUntextured sets whether the Group tells the Context that nothing is textured before it renders its children.
func (group *Group) SetUntextured(untextured bool) {
	group.untextured = untextured
}

// Untextured returns whether the Group clears UniformTexturePresent before rendering its children.
func (group *Group) Untextured() bool {
	return group.untextured
}

// Children returns the Nodes the Group owns, in render order.
func (group *Group) Children() []INode {
	children := make([]INode, 0, len(group.parts))
	for _, p := range group.parts {
		children = append(children, p.node)
	}
	return children
}

// Render renders each owned child in order, writing the child's color first if it has one. Color writes are
// not undone afterwards, so a child without a color of its own picks up whatever was written last.
func (group *Group) Render(ctx Context) {

	if group.destroyed {
		return
	}

	if group.untextured {
		ctx.SetInt(UniformTexturePresent, 0)
	}

	for _, p := range group.parts {
		if p.colored {
			ctx.SetVec3(UniformColor, p.color)
		}
		p.node.Render(ctx)
	}

}

// Destroy destroys every owned child exactly once, then the Group itself.
func (group *Group) Destroy() {

	if group.destroyed {
		return
	}

	parts := group.parts
	group.parts = nil

	for _, p := range parts {
		p.node.base().owner = nil
		p.node.Destroy()
	}

	group.Node.Destroy()

}

// release drops the given Node from the Group's owned children without destroying it.
func (group *Group) release(node *Node) {
	for i, p := range group.parts {
		if p.node.base() == node {
			last := len(group.parts) - 1
			copy(group.parts[i:], group.parts[i+1:])
			group.parts[last] = part{}
			group.parts = group.parts[:last]
			return
		}
	}
}

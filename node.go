package skatescene

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// NodeType represents a Node's type. Node types are categorized, and can be said to extend or "be of" more general types.
// For example, a Model has a type of NodeTypeModel, and that type can also be said to be NodeTypeNode.
type NodeType string

const (
	NodeTypeNode  NodeType = "Node"      // NodeTypeNode represents any generic node
	NodeTypeGroup NodeType = "NodeGroup" // NodeTypeGroup represents specifically a Group
	NodeTypeModel NodeType = "NodeModel" // NodeTypeModel represents specifically a Model
)

// Is returns true if a NodeType satisfies another NodeType category. A specific node type can be said to
// contain a more general one, but not vice-versa.
func (nt NodeType) Is(other NodeType) bool {
	if nt == other {
		return true
	}
	return strings.Contains(string(nt), string(other))
}

// INode represents an object that exists in 3D space and can be positioned relative to a parent. By default
// the origin point is {0, 0, 0}; parenting a Node to another makes its transform relative to the parent's.
// Group and Model fully implement INode by embedding Node.
type INode interface {
	// Name returns the object's name.
	Name() string
	// SetName sets the object's name.
	SetName(name string)
	// Type returns the NodeType for this object.
	Type() NodeType

	// Parent returns the Node's parent. If the Node has no parent, this will return nil.
	Parent() INode
	// SetParent links the Node to a new parent without changing which Group owns it.
	SetParent(parent INode)
	// Root returns the topmost ancestor of the Node, or nil if the Node has no parent.
	Root() INode

	LocalPosition() mgl32.Vec3
	SetLocalPosition(x, y, z float32)
	SetLocalPositionVec(position mgl32.Vec3)
	LocalAngles() mgl32.Vec3
	SetLocalAngles(x, y, z float32)
	SetLocalAnglesVec(angles mgl32.Vec3)
	LocalScale() mgl32.Vec3
	SetLocalScale(x, y, z float32)
	SetLocalScaleVec(scale mgl32.Vec3)

	// Move moves a Node in local space by the x, y, and z values provided.
	Move(x, y, z float32)
	// Rotate adds the x, y, and z values provided (in radians) to the Node's Euler angles.
	Rotate(x, y, z float32)
	// Grow scales the object additively (i.e. calling Node.Grow(1, 0, 0) will scale it +1 on the X-axis).
	Grow(x, y, z float32)
	// ResetLocalTransform resets position, angles and scale back to their defaults.
	ResetLocalTransform()

	LocalTranslation() mgl32.Mat4
	LocalRotation() mgl32.Mat4
	LocalScaling() mgl32.Mat4
	// LocalTransform returns the Node's transform relative to its parent.
	LocalTransform() mgl32.Mat4
	// WorldTransform returns the Node's transform relative to the world, composed through all of its parents.
	WorldTransform() mgl32.Mat4
	// WorldPosition returns the Node's world position, taking into account its parenting hierarchy.
	WorldPosition() mgl32.Vec3

	Texture() Texture
	SetTexture(texture Texture)
	Textured() bool

	// Children returns the Nodes this Node owns, in render order.
	Children() []INode
	// Render writes the Node's state into the Context and issues its draw calls, recursing into owned children.
	Render(ctx Context)
	// Destroy releases the Node and everything it owns. Destroying a Node twice does nothing.
	Destroy()
	// Destroyed returns whether the Node has been destroyed.
	Destroyed() bool

	base() *Node
}

// Node is a plain transform in the hierarchy. It draws nothing itself; Group and Model embed it to
// get its transform handling.
type Node struct {
	name     string
	position mgl32.Vec3
	angles   mgl32.Vec3 // Euler angles in radians, applied Z, then Y, then X
	scale    mgl32.Vec3
	parent   INode

	texture  Texture
	textured bool

	owner     *Group // The Group responsible for destroying this Node, if any
	destroyed bool
}

// NewNode returns a new Node.
func NewNode(name string) *Node {
	return &Node{
		name:  name,
		scale: mgl32.Vec3{1, 1, 1},
	}
}

func (node *Node) base() *Node {
	return node
}

// NodeOf returns the Node at the core of any INode. Types that embed a Group or a Model (like a skateboard)
// share their Node with the embedded value, so NodeOf identifies them both the same way.
func NodeOf(node INode) *Node {
	if node == nil {
		return nil
	}
	return node.base()
}

// Name returns the object's name.
func (node *Node) Name() string {
	return node.name
}

// SetName sets the object's name.
func (node *Node) SetName(name string) {
	node.name = name
}

// Type returns the NodeType for this object.
func (node *Node) Type() NodeType {
	return NodeTypeNode
}

// Parent returns the Node's parent. If the Node has no parent, this will return nil.
func (node *Node) Parent() INode {
	return node.parent
}

// SetParent links the Node to a new parent. Only the transform link changes; the Group that owns the Node
// (and so renders and destroys it) stays the same. Passing nil makes the Node a root.
// Parent chains must not form a cycle.
func (node *Node) SetParent(parent INode) {
	node.parent = parent
}

// Root returns the topmost ancestor of the Node. If the Node has no parent (and so is a root itself), Root returns nil.
func (node *Node) Root() INode {
	if node.parent == nil {
		return nil
	}
	root := node.parent
	for root.Parent() != nil {
		root = root.Parent()
	}
	return root
}

// LocalPosition returns the Node's position relative to its parent.
func (node *Node) LocalPosition() mgl32.Vec3 {
	return node.position
}

// SetLocalPosition sets the object's local position (position relative to its parent).
func (node *Node) SetLocalPosition(x, y, z float32) {
	node.position = mgl32.Vec3{x, y, z}
}

func (node *Node) SetLocalPositionVec(position mgl32.Vec3) {
	node.position = position
}

// LocalAngles returns the Node's Euler angles, in radians.
func (node *Node) LocalAngles() mgl32.Vec3 {
	return node.angles
}

func (node *Node) SetLocalAngles(x, y, z float32) {
	node.angles = mgl32.Vec3{x, y, z}
}

func (node *Node) SetLocalAnglesVec(angles mgl32.Vec3) {
	node.angles = angles
}

// LocalScale returns the object's local scale (scale relative to its parent).
func (node *Node) LocalScale() mgl32.Vec3 {
	return node.scale
}

func (node *Node) SetLocalScale(x, y, z float32) {
	node.scale = mgl32.Vec3{x, y, z}
}

func (node *Node) SetLocalScaleVec(scale mgl32.Vec3) {
	node.scale = scale
}

// Move moves a Node in local space by the x, y, and z values provided.
func (node *Node) Move(x, y, z float32) {
	node.position = node.position.Add(mgl32.Vec3{x, y, z})
}

// Rotate adds the x, y, and z values provided (in radians) to the Node's Euler angles.
func (node *Node) Rotate(x, y, z float32) {
	node.angles = node.angles.Add(mgl32.Vec3{x, y, z})
}

// Grow scales the object additively using the x, y, and z arguments provided (i.e. calling
// Node.Grow(1, 0, 0) will scale it +1 on the X-axis).
func (node *Node) Grow(x, y, z float32) {
	node.scale = node.scale.Add(mgl32.Vec3{x, y, z})
}

// ResetLocalTransform resets the local transform properties (position, angles, and scale) for the Node.
func (node *Node) ResetLocalTransform() {
	node.position = mgl32.Vec3{}
	node.angles = mgl32.Vec3{}
	node.scale = mgl32.Vec3{1, 1, 1}
}

// LocalTranslation returns the translation matrix for the Node's local position.
func (node *Node) LocalTranslation() mgl32.Mat4 {
	return mgl32.Translate3D(node.position.X(), node.position.Y(), node.position.Z())
}

// LocalRotation returns the rotation matrix for the Node's Euler angles, composed as Rz * Ry * Rx.
func (node *Node) LocalRotation() mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(node.angles.X())
	ry := mgl32.HomogRotate3DY(node.angles.Y())
	rz := mgl32.HomogRotate3DZ(node.angles.Z())
	return rz.Mul4(ry).Mul4(rx)
}

// LocalScaling returns the scaling matrix for the Node's local scale.
func (node *Node) LocalScaling() mgl32.Mat4 {
	return mgl32.Scale3D(node.scale.X(), node.scale.Y(), node.scale.Z())
}

// LocalTransform returns T * R * S; applied to a column vector, it scales first, then rotates, then translates.
func (node *Node) LocalTransform() mgl32.Mat4 {
	return node.LocalTranslation().Mul4(node.LocalRotation()).Mul4(node.LocalScaling())
}

// WorldTransform returns the Node's transform relative to the world origin, built by walking up the parent
// chain and premultiplying each ancestor's local transform. Nothing is cached, so changes to any ancestor
// (including reparenting) show up on the next call.
func (node *Node) WorldTransform() mgl32.Mat4 {

	// World(n) = World(parent(n)) * Local(n)

	transform := node.LocalTransform()

	for parent := node.parent; parent != nil; parent = parent.Parent() {
		transform = parent.LocalTransform().Mul4(transform)
	}

	return transform

}

// WorldPosition returns the Node's world position (the translation column of its world transform).
func (node *Node) WorldPosition() mgl32.Vec3 {
	return node.WorldTransform().Col(3).Vec3()
}

// Texture returns the texture handle assigned to the Node.
func (node *Node) Texture() Texture {
	return node.texture
}

// SetTexture assigns a texture to the Node and marks it as textured.
func (node *Node) SetTexture(texture Texture) {
	node.texture = texture
	node.textured = true
}

// Textured returns whether a texture has been assigned to the Node.
func (node *Node) Textured() bool {
	return node.textured
}

// Children returns nil; a plain Node owns nothing.
func (node *Node) Children() []INode {
	return nil
}

// Render does nothing for a plain Node.
func (node *Node) Render(ctx Context) {}

// Destroy marks the Node as destroyed and removes it from its owning Group.
func (node *Node) Destroy() {
	if node.destroyed {
		return
	}
	node.destroyed = true
	if node.owner != nil {
		node.owner.release(node)
		node.owner = nil
	}
}

// Destroyed returns whether the Node has been destroyed.
func (node *Node) Destroyed() bool {
	return node.destroyed
}

// HierarchyAsString returns a string displaying the ownership hierarchy under the given Node. Each entry shows the
// Node's type, name, and world position truncated to two decimals. This is a useful function to debug the layout
// of a node tree.
func HierarchyAsString(node INode) string {

	var printNode func(node INode, level int) string

	printNode = func(node INode, level int) string {

		prefix := "NODE"

		if level == 0 {
			prefix = "ROOT"
		} else if node.Type().Is(NodeTypeModel) {
			prefix = "MODEL"
		} else if node.Type().Is(NodeTypeGroup) {
			prefix = "GROUP"
		}

		str := ""

		for i := 0; i < level; i++ {
			str += "    |"
		}

		wp := node.WorldPosition()
		floatTruncation := 2
		wpStr := "[" + strconv.FormatFloat(float64(wp.X()), 'f', floatTruncation, 32) + ", " +
			strconv.FormatFloat(float64(wp.Y()), 'f', floatTruncation, 32) + ", " +
			strconv.FormatFloat(float64(wp.Z()), 'f', floatTruncation, 32) + "]"

		if level > 0 {
			str += "-"
		}
		str += " [" + prefix + "] " + node.Name() + " : " + wpStr + "\n"

		for _, child := range node.Children() {
			str += printNode(child, level+1)
		}

		return str
	}

	return printNode(node, 0)

}

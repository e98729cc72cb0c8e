package skatescene

// Model represents a singular visual instantiation of a Drawable. The Drawable holds the geometry (what to draw);
// the Model places it with a specific position, rotation, and scale (where and how to draw), and owns it.
type Model struct {
	*Node
	drawable Drawable
}

// NewModel creates a new Model wrapping the provided Drawable. The Model takes ownership of the Drawable.
func NewModel(name string, drawable Drawable) *Model {
	return &Model{
		Node:     NewNode(name),
		drawable: drawable,
	}
}

// Type returns the NodeType for this object.
func (model *Model) Type() NodeType {
	return NodeTypeModel
}

// Drawable returns the Drawable the Model owns, or nil once the Model has been destroyed.
func (model *Model) Drawable() Drawable {
	return model.drawable
}

// Render writes the Model's world transform and texture state into the Context and then draws the Drawable.
// The Context is left as the Model set it.
func (model *Model) Render(ctx Context) {

	if model.destroyed || model.drawable == nil {
		return
	}

	ctx.SetMat4(UniformModel, model.WorldTransform())

	if model.textured {
		ctx.BindTexture(0, model.texture)
		ctx.SetInt(UniformTextureMap, 0)
		ctx.SetInt(UniformTexturePresent, 1)
	} else {
		ctx.SetInt(UniformTexturePresent, 0)
	}

	model.drawable.Draw()

}

// Destroy disposes of the Drawable (if it needs disposing) and destroys the Model.
func (model *Model) Destroy() {

	if model.destroyed {
		return
	}

	if disposer, ok := model.drawable.(Disposer); ok {
		disposer.Dispose()
	}
	model.drawable = nil

	model.Node.Destroy()

}

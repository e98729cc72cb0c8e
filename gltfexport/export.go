// Package gltfexport writes a scene graph out as a glTF document, so an assembled scene can be inspected in
// other tools.
package gltfexport

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/solarlune/skatescene"
	"go.uber.org/zap"
)

type meshKey struct {
	box      skatescene.Box
	material int
}

type exporter struct {
	doc       *gltf.Document
	logger    *zap.Logger
	nodes     map[*skatescene.Node]int
	order     []skatescene.INode
	color     mgl32.Vec3
	materials map[mgl32.Vec3]int
	meshes    map[meshKey]int
	boxes     map[skatescene.Box][3]int // position, normal, and texcoord accessors
	indices   int
	hasIndex  bool
	skipped   int
}

// Export converts the tree under root into a glTF document. Nodes are gathered the way rendering walks the
// tree (through the parts each Group owns), while the glTF node hierarchy follows parent links. Colors are
// tracked the way rendering would apply them and become materials. Only Models whose Drawable is BoxShaped
// get a mesh; other Models export as empty nodes.
func Export(root skatescene.INode, logger *zap.Logger) (*gltf.Document, error) {

	if root == nil {
		return nil, errors.New("no root node to export")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	e := &exporter{
		doc:       gltf.NewDocument(),
		logger:    logger,
		nodes:     map[*skatescene.Node]int{},
		color:     mgl32.Vec3{1, 1, 1},
		materials: map[mgl32.Vec3]int{},
		meshes:    map[meshKey]int{},
		boxes:     map[skatescene.Box][3]int{},
	}

	e.gather(root)

	if len(e.order) == 0 {
		return nil, errors.Errorf("node %q is destroyed; nothing to export", root.Name())
	}

	e.link()

	logger.Debug("exported scene",
		zap.String("root", root.Name()),
		zap.Int("nodes", len(e.doc.Nodes)),
		zap.Int("meshes", len(e.doc.Meshes)),
		zap.Int("materials", len(e.doc.Materials)),
		zap.Int("skipped", e.skipped),
	)

	return e.doc, nil

}

// gather walks the owned tree depth-first in render order, creating a glTF node per live scene node.
func (e *exporter) gather(node skatescene.INode) {

	if node.Destroyed() {
		return
	}

	gltfNode := &gltf.Node{
		Name:     node.Name(),
		Rotation: [4]float64{0, 0, 0, 1},
		Scale:    [3]float64{1, 1, 1},
	}

	if model, ok := node.(*skatescene.Model); ok {
		if mesh, ok := e.mesh(model); ok {
			gltfNode.Mesh = gltf.Index(mesh)
		}
	}

	e.nodes[skatescene.NodeOf(node)] = len(e.doc.Nodes)
	e.order = append(e.order, node)
	e.doc.Nodes = append(e.doc.Nodes, gltfNode)

	group, ok := node.(interface {
		Children() []skatescene.INode
		ChildColor(child skatescene.INode) (mgl32.Vec3, bool)
	})
	if !ok {
		return
	}

	for _, child := range group.Children() {
		if color, ok := group.ChildColor(child); ok {
			e.color = color
		}
		e.gather(child)
	}

}

// link sets up the glTF node hierarchy and transforms once every node is known.
func (e *exporter) link() {

	scene := e.doc.Scenes[0]

	for _, node := range e.order {

		index := e.nodes[skatescene.NodeOf(node)]
		gltfNode := e.doc.Nodes[index]

		transform := node.WorldTransform()

		parentIndex, parentExported := -1, false
		if parent := node.Parent(); parent != nil {
			parentIndex, parentExported = e.nodes[skatescene.NodeOf(parent)]
		}

		if parentExported {
			transform = node.LocalTransform()
			e.doc.Nodes[parentIndex].Children = append(e.doc.Nodes[parentIndex].Children, index)
		} else {
			scene.Nodes = append(scene.Nodes, index)
		}

		for i, v := range transform {
			gltfNode.Matrix[i] = float64(v)
		}

	}

}

func (e *exporter) material(color mgl32.Vec3) int {

	if index, ok := e.materials[color]; ok {
		return index
	}

	metallic, roughness := 0.0, 1.0

	index := len(e.doc.Materials)
	e.doc.Materials = append(e.doc.Materials, &gltf.Material{
		Name: fmt.Sprintf("Color%d", index),
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(color[0]), float64(color[1]), float64(color[2]), 1},
			MetallicFactor:  &metallic,
			RoughnessFactor: &roughness,
		},
	})
	e.materials[color] = index

	return index

}

func (e *exporter) mesh(model *skatescene.Model) (int, bool) {

	shaped, ok := model.Drawable().(skatescene.BoxShaped)
	if !ok {
		e.skipped++
		e.logger.Debug("model has no box geometry; exporting it without a mesh", zap.String("model", model.Name()))
		return 0, false
	}

	box := shaped.Box()
	key := meshKey{box: box, material: e.material(e.color)}

	if index, ok := e.meshes[key]; ok {
		return index, true
	}

	accessors, ok := e.boxes[box]
	if !ok {

		vertices := box.Vertices()
		positions := make([][3]float32, len(vertices))
		normals := make([][3]float32, len(vertices))
		uvs := make([][2]float32, len(vertices))

		for i, v := range vertices {
			positions[i] = v.Position
			normals[i] = v.Normal
			uvs[i] = v.UV
		}

		accessors = [3]int{
			modeler.WritePosition(e.doc, positions),
			modeler.WriteNormal(e.doc, normals),
			modeler.WriteTextureCoord(e.doc, uvs),
		}
		e.boxes[box] = accessors

	}

	if !e.hasIndex {
		e.indices = modeler.WriteIndices(e.doc, skatescene.BoxIndices)
		e.hasIndex = true
	}

	index := len(e.doc.Meshes)
	e.doc.Meshes = append(e.doc.Meshes, &gltf.Mesh{
		Name: fmt.Sprintf("Cuboid%d", index),
		Primitives: []*gltf.Primitive{
			{
				Indices: gltf.Index(e.indices),
				Attributes: map[string]int{
					gltf.POSITION:   accessors[0],
					gltf.NORMAL:     accessors[1],
					gltf.TEXCOORD_0: accessors[2],
				},
				Material: gltf.Index(key.material),
			},
		},
	})
	e.meshes[key] = index

	return index, true

}

// Write encodes the document as binary glTF (.glb).
func Write(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return errors.Wrap(encoder.Encode(doc), "encoding glTF")
}

// Save writes the document to a .glb file.
func Save(path string, doc *gltf.Document) error {
	return errors.Wrapf(gltf.SaveBinary(doc, path), "saving glTF to %s", path)
}

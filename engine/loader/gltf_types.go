package loader

// glTF 2.0 JSON schema, reduced to what scene bounds and pick geometry need.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html

// GLB container constants.
const (
	gltfGLBMagic     uint32 = 0x46546C67 // "glTF"
	gltfGLBVersion   uint32 = 2
	gltfGLBChunkJSON uint32 = 0x4E4F534A // "JSON"
	gltfGLBChunkBIN  uint32 = 0x004E4942 // "BIN\0"
)

// Accessor component types.
const (
	gltfComponentTypeUnsignedByte  = 5121
	gltfComponentTypeUnsignedShort = 5123
	gltfComponentTypeUnsignedInt   = 5125
	gltfComponentTypeFloat         = 5126
)

// Accessor element types.
const (
	gltfAccessorTypeScalar = "SCALAR"
	gltfAccessorTypeVec3   = "VEC3"
)

// gltfPrimitiveModeTriangles is the default primitive topology.
const gltfPrimitiveModeTriangles = 4

// gltfGLBHeader is the 12-byte header of a GLB file.
type gltfGLBHeader struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

// gltfGLBChunkHeader precedes every GLB chunk.
type gltfGLBChunkHeader struct {
	ChunkLength uint32
	ChunkType   uint32
}

// gltfDocument is the root object of a glTF file.
type gltfDocument struct {
	Asset       gltfAsset        `json:"asset"`
	Scene       *int             `json:"scene,omitempty"`
	Scenes      []gltfScene      `json:"scenes,omitempty"`
	Nodes       []gltfNode       `json:"nodes,omitempty"`
	Meshes      []gltfMesh       `json:"meshes,omitempty"`
	Accessors   []gltfAccessor   `json:"accessors,omitempty"`
	BufferViews []gltfBufferView `json:"bufferViews,omitempty"`
	Buffers     []gltfBuffer     `json:"buffers,omitempty"`
}

// gltfAsset carries version metadata.
type gltfAsset struct {
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}

// gltfScene lists the root nodes of a scene.
type gltfScene struct {
	Name  string `json:"name,omitempty"`
	Nodes []int  `json:"nodes,omitempty"`
}

// gltfNode is one entry of the node hierarchy. Matrix takes precedence over TRS when present.
type gltfNode struct {
	Name        string       `json:"name,omitempty"`
	Children    []int        `json:"children,omitempty"`
	Mesh        *int         `json:"mesh,omitempty"`
	Matrix      *[16]float32 `json:"matrix,omitempty"`
	Translation *[3]float32  `json:"translation,omitempty"`
	// Rotation is a unit quaternion in x, y, z, w order.
	Rotation *[4]float32 `json:"rotation,omitempty"`
	Scale    *[3]float32 `json:"scale,omitempty"`
}

// gltfMesh is a set of primitives drawn together.
type gltfMesh struct {
	Name       string          `json:"name,omitempty"`
	Primitives []gltfPrimitive `json:"primitives"`
}

// gltfPrimitive is one draw call's geometry.
type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices,omitempty"`
	Mode       *int           `json:"mode,omitempty"`
}

// gltfAccessor describes a typed view into a buffer view.
type gltfAccessor struct {
	BufferView    *int      `json:"bufferView,omitempty"`
	ByteOffset    int       `json:"byteOffset,omitempty"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}

// gltfBufferView is a slice of a buffer.
type gltfBufferView struct {
	Buffer     int  `json:"buffer"`
	ByteOffset int  `json:"byteOffset,omitempty"`
	ByteLength int  `json:"byteLength"`
	ByteStride *int `json:"byteStride,omitempty"`
}

// gltfBuffer is raw binary data, loaded from a URI or the GLB BIN chunk.
type gltfBuffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`

	// Data is populated after loading and is not part of the JSON.
	Data []byte `json:"-"`
}

// gltfComponentTypeSize returns the byte size of a component type, or 0 if unknown.
func gltfComponentTypeSize(componentType int) int {
	switch componentType {
	case gltfComponentTypeUnsignedByte:
		return 1
	case gltfComponentTypeUnsignedShort:
		return 2
	case gltfComponentTypeUnsignedInt, gltfComponentTypeFloat:
		return 4
	}
	return 0
}

// gltfAccessorTypeComponentCount returns the component count of an element type, or 0 if unsupported.
func gltfAccessorTypeComponentCount(accessorType string) int {
	switch accessorType {
	case gltfAccessorTypeScalar:
		return 1
	case gltfAccessorTypeVec3:
		return 3
	}
	return 0
}

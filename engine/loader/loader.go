// Package loader imports glTF 2.0 scenes as camera targets: a node hierarchy with world
// transforms and POSITION bounds for frame requests, plus world-space triangles for picking.
package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/raycast"
	"github.com/Carmen-Shannon/oxy-cameras/engine/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/unixpickle/model3d/model3d"
)

var (
	errNodeOutOfRange = errors.New("node index out of range")
	errMeshOutOfRange = errors.New("mesh index out of range")
	errNodeRevisited  = errors.New("node has more than one parent")
)

// Scene is an imported glTF scene.
type Scene struct {
	// Registry holds one node per reachable glTF node. Node IDs are the glTF node index plus one.
	Registry *scene.Registry
	// Roots lists the nodes of the displayed scene.
	Roots []scene.NodeID
	// Names maps named nodes to their IDs.
	Names map[string]scene.NodeID
	// Mesh holds every triangle in world space, or nil when triangle import is disabled.
	Mesh *model3d.Mesh
}

// Find looks up a node by its glTF name.
func (s *Scene) Find(name string) (scene.NodeID, bool) {
	id, ok := s.Names[name]
	return id, ok
}

// Raycaster returns a scene query over the imported triangles. Without triangles it falls back
// to the node bounding boxes.
//
// Parameters:
//   - options: variadic list of raycast.RaycasterOption functions
//
// Returns:
//   - *raycast.ColliderRaycaster: the raycaster
func (s *Scene) Raycaster(options ...raycast.RaycasterOption) *raycast.ColliderRaycaster {
	if s.Mesh != nil {
		return raycast.NewMeshRaycaster(s.Mesh, options...)
	}
	return raycast.FromGraph(s.Registry, s.Roots, true, options...)
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	baseDir   string
	triangles bool

	sceneCache map[string]*Scene
}

// Loader imports glTF/GLB files and caches the resulting scenes.
type Loader interface {
	// Load imports a .gltf or .glb file and caches the result by its cleaned path.
	// A cached scene is returned without rereading the file.
	//
	// Parameters:
	//   - path: the file path to the scene file
	//
	// Returns:
	//   - *Scene: the imported scene
	//   - error: error if loading fails
	Load(path string) (*Scene, error)

	// LoadReader imports a scene from a reader stream and caches it by name.
	// External buffers resolve against the directory set with WithBaseDir.
	//
	// Parameters:
	//   - name: the cache key for the scene
	//   - r: the reader providing scene data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - *Scene: the imported scene
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader, isGLB bool) (*Scene, error)

	// Get returns a cached scene.
	Get(key string) (*Scene, bool)

	// Unload removes a scene from the cache.
	Unload(key string)

	// Clear empties the cache.
	Clear()
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with the provided options.
//
// Parameters:
//   - options: variadic list of LoaderBuilderOption functions
//
// Returns:
//   - Loader: the newly created loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		triangles:  true,
		sceneCache: make(map[string]*Scene),
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *loader) Load(path string) (*Scene, error) {
	key := filepath.Clean(path)
	if s, ok := l.Get(key); ok {
		return s, nil
	}

	ext := strings.ToLower(filepath.Ext(key))
	if ext != ".gltf" && ext != ".glb" {
		return nil, fmt.Errorf("unsupported scene format %q", ext)
	}

	p := newGLTFParser()
	if err := p.Parse(key); err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return l.store(key, p)
}

func (l *loader) LoadReader(name string, r io.Reader, isGLB bool) (*Scene, error) {
	if s, ok := l.Get(name); ok {
		return s, nil
	}

	p := newGLTFParser()
	if err := p.ParseReader(r, isGLB, l.baseDir); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return l.store(name, p)
}

func (l *loader) Get(key string) (*Scene, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.sceneCache[key]
	return s, ok
}

func (l *loader) Unload(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sceneCache, key)
}

func (l *loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sceneCache = make(map[string]*Scene)
}

// store builds the scene from a parsed document and caches it.
func (l *loader) store(key string, p gltfParser) (*Scene, error) {
	s, err := buildScene(p, l.triangles)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.sceneCache[key] = s
	return s, nil
}

// nodeID maps a glTF node index to its registry ID.
func nodeID(index int) scene.NodeID {
	return scene.NodeID(index + 1)
}

// buildScene walks the displayed scene from its roots, accumulating world transforms.
// Nodes not reachable from a root are skipped.
func buildScene(p gltfParser, triangles bool) (*Scene, error) {
	doc := p.Document()
	s := &Scene{
		Registry: scene.NewRegistry(),
		Names:    make(map[string]scene.NodeID),
	}
	if triangles {
		s.Mesh = model3d.NewMesh()
	}

	visited := make([]bool, len(doc.Nodes))
	var visit func(index int, parent mgl32.Mat4) error
	visit = func(index int, parent mgl32.Mat4) error {
		if index < 0 || index >= len(doc.Nodes) {
			return fmt.Errorf("node %d: %w", index, errNodeOutOfRange)
		}
		if visited[index] {
			return fmt.Errorf("node %d: %w", index, errNodeRevisited)
		}
		visited[index] = true

		n := &doc.Nodes[index]
		world := parent.Mul4(localTransform(n))
		node := scene.Node{WorldTransform: world}
		for _, c := range n.Children {
			node.Children = append(node.Children, nodeID(c))
		}

		if n.Mesh != nil {
			bounds, tris, err := meshGeometry(p, *n.Mesh, triangles)
			if err != nil {
				return fmt.Errorf("node %d: %w", index, err)
			}
			node.Bounds = bounds
			for _, t := range tris {
				s.Mesh.Add(&model3d.Triangle{
					worldCoord(world, t[0]),
					worldCoord(world, t[1]),
					worldCoord(world, t[2]),
				})
			}
		}

		s.Registry.Set(nodeID(index), node)
		if n.Name != "" {
			if _, taken := s.Names[n.Name]; !taken {
				s.Names[n.Name] = nodeID(index)
			}
		}

		for _, c := range n.Children {
			if err := visit(c, world); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range sceneRoots(doc) {
		if err := visit(root, mgl32.Ident4()); err != nil {
			return nil, err
		}
		s.Roots = append(s.Roots, nodeID(root))
	}
	return s, nil
}

// sceneRoots returns the root node indices of the default scene. Without scenes every node that
// no other node lists as a child is a root.
func sceneRoots(doc *gltfDocument) []int {
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	if len(doc.Scenes) > 0 {
		return doc.Scenes[0].Nodes
	}

	child := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(child) {
				child[c] = true
			}
		}
	}
	var roots []int
	for i, isChild := range child {
		if !isChild {
			roots = append(roots, i)
		}
	}
	return roots
}

// localTransform returns the node's matrix, or T * R * S from its components.
func localTransform(n *gltfNode) mgl32.Mat4 {
	if n.Matrix != nil {
		return mgl32.Mat4(*n.Matrix)
	}

	m := mgl32.Ident4()
	if t := n.Translation; t != nil {
		m = mgl32.Translate3D(t[0], t[1], t[2])
	}
	if r := n.Rotation; r != nil {
		q := mgl32.Quat{W: r[3], V: mgl32.Vec3{r[0], r[1], r[2]}}
		if q.Len() > 0 {
			m = m.Mul4(q.Normalize().Mat4())
		}
	}
	if s := n.Scale; s != nil {
		m = m.Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
	}
	return m
}

// meshGeometry returns the local bounds of a mesh and, when requested, its triangles.
// Bounds use the accessor min/max when present and the vertex data otherwise.
func meshGeometry(p gltfParser, meshIndex int, triangles bool) (*common.AABB, [][3]mgl32.Vec3, error) {
	doc := p.Document()
	if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
		return nil, nil, fmt.Errorf("mesh %d: %w", meshIndex, errMeshOutOfRange)
	}

	bounds := common.EmptyAABB()
	found := false
	var tris [][3]mgl32.Vec3

	for i, prim := range doc.Meshes[meshIndex].Primitives {
		posIndex, ok := prim.Attributes["POSITION"]
		if !ok {
			continue
		}
		if posIndex < 0 || posIndex >= len(doc.Accessors) {
			return nil, nil, fmt.Errorf("mesh %d primitive %d: accessor index %d out of range", meshIndex, i, posIndex)
		}
		acc := doc.Accessors[posIndex]

		var positions []mgl32.Vec3
		fromAccessor := len(acc.Min) == 3 && len(acc.Max) == 3
		if !fromAccessor || triangles {
			var err error
			positions, err = p.ReadVec3Accessor(posIndex)
			if err != nil {
				return nil, nil, fmt.Errorf("mesh %d primitive %d positions: %w", meshIndex, i, err)
			}
		}

		if fromAccessor {
			bounds = bounds.Union(common.AABB{
				Min: mgl32.Vec3{acc.Min[0], acc.Min[1], acc.Min[2]},
				Max: mgl32.Vec3{acc.Max[0], acc.Max[1], acc.Max[2]},
			})
			found = true
		} else if len(positions) > 0 {
			for _, v := range positions {
				bounds = bounds.Union(common.AABB{Min: v, Max: v})
			}
			found = true
		}

		if !triangles || (prim.Mode != nil && *prim.Mode != gltfPrimitiveModeTriangles) {
			continue
		}
		primTris, err := primitiveTriangles(p, prim, positions)
		if err != nil {
			return nil, nil, fmt.Errorf("mesh %d primitive %d: %w", meshIndex, i, err)
		}
		tris = append(tris, primTris...)
	}

	if !found {
		return nil, tris, nil
	}
	return &bounds, tris, nil
}

// primitiveTriangles assembles the triangle list of an indexed or non-indexed primitive.
// Zero-area triangles are dropped.
func primitiveTriangles(p gltfParser, prim gltfPrimitive, positions []mgl32.Vec3) ([][3]mgl32.Vec3, error) {
	var indices []uint32
	if prim.Indices != nil {
		var err error
		indices, err = p.ReadIndicesAccessor(*prim.Indices)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	var tris [][3]mgl32.Vec3
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
			return nil, fmt.Errorf("index %d out of range", i)
		}
		t := [3]mgl32.Vec3{positions[a], positions[b], positions[c]}
		if t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Len() == 0 {
			continue
		}
		tris = append(tris, t)
	}
	return tris, nil
}

// worldCoord transforms a local position by m.
func worldCoord(m mgl32.Mat4, v mgl32.Vec3) model3d.Coord3D {
	w := mgl32.TransformCoordinate(v, m)
	return model3d.XYZ(float64(w.X()), float64(w.Y()), float64(w.Z()))
}

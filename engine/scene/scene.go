// Package scene is the read-only entity surface the camera engine needs for frame-to-bounds:
// per entity a world transform, an optional local bounding box and an optional child list.
package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/go-gl/mathgl/mgl32"
)

// NodeID identifies a scene entity.
type NodeID uint64

// Node is the frame-to-bounds view of one entity.
type Node struct {
	// WorldTransform maps the node's local space to world space.
	WorldTransform mgl32.Mat4
	// Bounds is the local-space bounding box, or nil if the node has no volume.
	Bounds *common.AABB
	// Children lists direct child entities.
	Children []NodeID
}

// WorldBounds returns the node's bounds in world space.
//
// Returns:
//   - common.AABB: the world-space box enclosing all eight transformed corners
//   - bool: false if the node has no bounds
func (n Node) WorldBounds() (common.AABB, bool) {
	if n.Bounds == nil {
		return common.AABB{}, false
	}
	return n.Bounds.Transformed(n.WorldTransform), true
}

// Graph resolves entity identities to nodes. Hosts adapt their own scene representation to it.
type Graph interface {
	// Node looks up an entity.
	//
	// Parameters:
	//   - id: the entity identity
	//
	// Returns:
	//   - Node: the entity's frame-to-bounds view
	//   - bool: false if the entity does not exist
	Node(id NodeID) (Node, bool)
}

// Registry is an in-memory Graph. It is safe for concurrent access.
type Registry struct {
	mu     *sync.RWMutex
	nodes  map[NodeID]Node
	nextID NodeID
}

var _ Graph = &Registry{}

// NewRegistry creates an empty registry configured by options.
//
// Parameters:
//   - options: variadic list of RegistryOption functions
//
// Returns:
//   - *Registry: the registry
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{
		mu:     &sync.RWMutex{},
		nodes:  make(map[NodeID]Node),
		nextID: 1,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Add stores a node under a fresh identity.
//
// Parameters:
//   - n: the node
//
// Returns:
//   - NodeID: the assigned identity
func (r *Registry) Add(n Node) NodeID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.nodes[id] = n
	return id
}

// Set stores a node under id, replacing any previous node.
func (r *Registry) Set(id NodeID, n Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[id] = n
	if id >= r.nextID {
		r.nextID = id + 1
	}
}

// Node implements Graph.
func (r *Registry) Node(id NodeID) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[id]
	return n, ok
}

// Remove deletes the node with id. Children are not removed.
//
// Returns:
//   - bool: false if the node did not exist
func (r *Registry) Remove(id NodeID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.nodes[id]; !ok {
		return false
	}
	delete(r.nodes, id)
	return true
}

// SetChildren replaces the child list of id.
//
// Returns:
//   - bool: false if the node does not exist
func (r *Registry) SetChildren(id NodeID, children ...NodeID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nodes[id]
	if !ok {
		return false
	}
	n.Children = append([]NodeID(nil), children...)
	r.nodes[id] = n
	return true
}

// Count returns the number of stored nodes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// Each calls fn for every stored node in unspecified order. fn must not modify the registry.
func (r *Registry) Each(fn func(id NodeID, n Node)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, n := range r.nodes {
		fn(id, n)
	}
}

// UnionBounds returns the world-space box enclosing the named entities. Entities that do not
// exist or carry no bounds contribute nothing. With includeChildren the child lists are followed
// recursively; each entity is visited at most once.
//
// Parameters:
//   - g: the scene graph
//   - ids: the entities to enclose
//   - includeChildren: whether to descend into child lists
//
// Returns:
//   - common.AABB: the enclosing box, empty (degenerate) when nothing contributed
func UnionBounds(g Graph, ids []NodeID, includeChildren bool) common.AABB {
	out := common.EmptyAABB()
	seen := make(map[NodeID]struct{}, len(ids))
	var visit func(id NodeID)
	visit = func(id NodeID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		n, ok := g.Node(id)
		if !ok {
			return
		}
		if b, ok := n.WorldBounds(); ok {
			out = out.Union(b)
		}
		if includeChildren {
			for _, c := range n.Children {
				visit(c)
			}
		}
	}
	for _, id := range ids {
		visit(id)
	}
	return out
}

package scene

// RegistryOption is a functional option for configuring a Registry.
// Use the With* functions to create options.
type RegistryOption func(r *Registry)

// WithNodes seeds the registry with nodes under fresh identities, in order.
//
// Parameters:
//   - nodes: the nodes to add
//
// Returns:
//   - RegistryOption: option function to apply
func WithNodes(nodes ...Node) RegistryOption {
	return func(r *Registry) {
		for _, n := range nodes {
			r.nodes[r.nextID] = n
			r.nextID++
		}
	}
}

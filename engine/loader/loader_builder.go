package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithBaseDir sets the directory LoadReader resolves external buffer URIs against.
//
// Parameters:
//   - dir: the base directory
//
// Returns:
//   - LoaderBuilderOption: a function that applies the base directory option to a loader
func WithBaseDir(dir string) LoaderBuilderOption {
	return func(l *loader) {
		l.baseDir = dir
	}
}

// WithTriangles controls whether world-space triangles are imported for picking.
// When disabled only node bounds are read. Defaults to true.
//
// Parameters:
//   - enabled: whether to import triangles
//
// Returns:
//   - LoaderBuilderOption: a function that applies the triangles option to a loader
func WithTriangles(enabled bool) LoaderBuilderOption {
	return func(l *loader) {
		l.triangles = enabled
	}
}

// WithScene is an option builder that pre-populates the scene cache.
//
// Parameters:
//   - key: the cache key for the scene
//   - s: the scene to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the scene option to a loader
func WithScene(key string, s *Scene) LoaderBuilderOption {
	return func(l *loader) {
		l.sceneCache[key] = s
	}
}

package ports

import "osgi-mock/internal/types"

// ClassLoaderPort is a resource loader that can also bind class names.
type ClassLoaderPort interface {
	types.ResourceLoader
	LoadClass(name string) types.Class
	ListResources(dir string) ([]string, error)
	Close() error
}

// ClasspathPort builds class loaders from classpath entries and discovers
// the components they ship.
type ClasspathPort interface {
	// Open creates a loader over directories and jar/zip archives, searched
	// in the given order.
	Open(entries []string) (ClassLoaderPort, error)

	// FindDescriptors lists the class names of every descriptor visible
	// through the loader, sorted.
	FindDescriptors(loader ClassLoaderPort) ([]string, error)
}

package types

import (
	"io"
	"path"
	"strings"
)

// ResourceLoader opens named resources the way a class loader does.
// Names are slash separated and never start with "/". A missing
// resource is reported with an error satisfying errors.Is(err, fs.ErrNotExist).
type ResourceLoader interface {
	OpenResource(name string) (io.ReadCloser, error)
}

// Class identifies a component implementation class together with the
// loader that defined it. Resources belonging to the class are resolved
// through that loader only.
type Class struct {
	Name   string
	Loader ResourceLoader
}

// PackagePath returns the slash separated package directory of the class,
// e.g. "com/acme" for "com.acme.Foo".
func (c Class) PackagePath() string {
	idx := strings.LastIndex(c.Name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ReplaceAll(c.Name[:idx], ".", "/")
}

// ResourceName resolves a resource name relative to the class. Names with
// a leading "/" are absolute; anything else is relative to the package.
func (c Class) ResourceName(name string) string {
	if strings.HasPrefix(name, "/") {
		return strings.TrimLeft(name, "/")
	}
	pkg := c.PackagePath()
	if pkg == "" {
		return name
	}
	return path.Join(pkg, name)
}

// OpenResource opens a resource relative to the class using its loader.
func (c Class) OpenResource(name string) (io.ReadCloser, error) {
	return c.Loader.OpenResource(c.ResourceName(name))
}

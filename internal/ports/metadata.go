package ports

import "osgi-mock/internal/types"

// MetadataPort reads declarative component descriptors shipped next to
// component classes.
type MetadataPort interface {
	// Document locates and parses the descriptor of a class.  Returns
	// (nil, nil) when the class ships no descriptor.
	Document(class types.Class) (*types.Document, error)

	// ServiceInterfaces returns the interfaces provided by the first
	// component of the document.  A nil document yields an empty set.
	ServiceInterfaces(doc *types.Document) (types.ServiceInterfaces, error)

	// Properties returns the typed default properties of the first
	// component of the document.  A nil document yields an empty map.
	Properties(doc *types.Document) (types.Properties, error)
}

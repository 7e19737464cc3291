package adapters

import (
	"sort"

	"osgi-mock/internal/types"
)

// SCRNamespaceURI is the component description schema namespace.
const SCRNamespaceURI = "http://www.osgi.org/xmlns/scr/v1.1.0"

// SCRNamespaces resolves the "scr" prefix used in descriptor queries.
// It is never modified after package initialisation.
var SCRNamespaces = NewNamespaceContext(types.NamespaceBinding{Prefix: "scr", URI: SCRNamespaceURI})

// NamespaceContext is a fixed bidirectional prefix <-> URI mapping.
type NamespaceContext struct {
	uris     map[string]string
	prefixes map[string]string
}

// NewNamespaceContext builds a context from bindings. A later binding
// replaces any earlier one sharing its prefix or its URI, so both
// directions stay one-to-one.
func NewNamespaceContext(bindings ...types.NamespaceBinding) NamespaceContext {
	ctx := NamespaceContext{
		uris:     make(map[string]string, len(bindings)),
		prefixes: make(map[string]string, len(bindings)),
	}
	for _, binding := range bindings {
		if oldURI, ok := ctx.uris[binding.Prefix]; ok {
			delete(ctx.prefixes, oldURI)
		}
		if oldPrefix, ok := ctx.prefixes[binding.URI]; ok {
			delete(ctx.uris, oldPrefix)
		}
		ctx.uris[binding.Prefix] = binding.URI
		ctx.prefixes[binding.URI] = binding.Prefix
	}
	return ctx
}

func (c NamespaceContext) NamespaceURI(prefix string) (string, bool) {
	uri, ok := c.uris[prefix]
	return uri, ok
}

func (c NamespaceContext) Prefix(uri string) (string, bool) {
	prefix, ok := c.prefixes[uri]
	return prefix, ok
}

// Prefixes returns every bound prefix in lexical order.
func (c NamespaceContext) Prefixes() []string {
	out := make([]string, 0, len(c.uris))
	for prefix := range c.uris {
		out = append(out, prefix)
	}
	sort.Strings(out)
	return out
}

// Bindings returns a copy of the prefix -> URI table, in the shape the
// XPath compiler expects.
func (c NamespaceContext) Bindings() map[string]string {
	out := make(map[string]string, len(c.uris))
	for prefix, uri := range c.uris {
		out[prefix] = uri
	}
	return out
}

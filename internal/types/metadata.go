package types

import (
	"sort"
	"strconv"

	"github.com/antchfx/xmlquery"
)

// Document is a parsed component description. A nil *Document means the
// class ships no descriptor.
type Document struct {
	// Path is the resource path the document was read from.
	Path string
	Root *xmlquery.Node
}

// NamespaceBinding pairs a query prefix with its XML namespace URI.
type NamespaceBinding struct {
	Prefix string
	URI    string
}

// ServiceInterfaces is the set of interface names a component provides.
type ServiceInterfaces map[string]struct{}

func NewServiceInterfaces(names ...string) ServiceInterfaces {
	set := ServiceInterfaces{}
	for _, name := range names {
		set.Add(name)
	}
	return set
}

func (s ServiceInterfaces) Add(name string) {
	s[name] = struct{}{}
}

func (s ServiceInterfaces) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the interface names in lexical order.
func (s ServiceInterfaces) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropertyValue is a typed component property value: either a string or
// an integer, never both.
type PropertyValue struct {
	Kind ValueKind
	str  string
	num  int
}

func StringValue(value string) PropertyValue {
	return PropertyValue{Kind: ValueKindString, str: value}
}

func IntegerValue(value int) PropertyValue {
	return PropertyValue{Kind: ValueKindInteger, num: value}
}

func (v PropertyValue) IsInteger() bool {
	return v.Kind == ValueKindInteger
}

// Str returns the string member and whether the value is a string.
func (v PropertyValue) Str() (string, bool) {
	return v.str, v.Kind == ValueKindString
}

// Int returns the integer member and whether the value is an integer.
func (v PropertyValue) Int() (int, bool) {
	return v.num, v.Kind == ValueKindInteger
}

// Any returns the value as a plain Go value (string or int).
func (v PropertyValue) Any() any {
	if v.IsInteger() {
		return v.num
	}
	return v.str
}

// Equal reports whether both values have the same kind and member.
func (v PropertyValue) Equal(other PropertyValue) bool {
	return v.Kind == other.Kind && v.str == other.str && v.num == other.num
}

// String renders the value the way it appears in a descriptor.
func (v PropertyValue) String() string {
	if v.IsInteger() {
		return strconv.Itoa(v.num)
	}
	return v.str
}

// Properties maps property names to typed values.
type Properties map[string]PropertyValue

// Names returns the property names in lexical order.
func (p Properties) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy; a nil receiver yields an empty map.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for name, value := range p {
		out[name] = value
	}
	return out
}

// ComponentMetadata is everything extracted for one component class.
type ComponentMetadata struct {
	Class          string
	DescriptorPath string
	Found          bool
	Interfaces     ServiceInterfaces
	Properties     Properties
}

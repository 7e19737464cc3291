package adapters

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/rs/zerolog/log"

	"osgi-mock/internal/ports"
	"osgi-mock/internal/types"
)

// MetadataRoot is the classpath directory holding component descriptors.
const MetadataRoot = "OSGI-INF"

const integerType = "Integer"

// The first component is either a child of a <components> root or the
// root element itself, qualified with the SCR namespace or not.
const (
	componentQuery  = "/components/*[self::component or self::scr:component] | /*[self::component or self::scr:component]"
	interfacesQuery = "service/provide[@interface!='']"
	propertiesQuery = "property[@name!='' and @value!='']"
)

var (
	componentExpr  = compileQuery(componentQuery)
	interfacesExpr = compileQuery(interfacesQuery)
	propertiesExpr = compileQuery(propertiesQuery)
)

func compileQuery(expr string) func() (*xpath.Expr, error) {
	return sync.OnceValues(func() (*xpath.Expr, error) {
		return xpath.CompileWithNS(expr, SCRNamespaces.Bindings())
	})
}

// DescriptorPath returns the absolute resource path of a class descriptor.
func DescriptorPath(className string) string {
	return "/" + MetadataRoot + "/" + className + ".xml"
}

// MetadataXMLAdapter reads component descriptors from a class's own
// resources. It holds no state; every call reopens and reparses.
type MetadataXMLAdapter struct{}

func NewMetadataXMLAdapter() MetadataXMLAdapter {
	return MetadataXMLAdapter{}
}

func (a MetadataXMLAdapter) Document(class types.Class) (*types.Document, error) {
	name := strings.TrimSpace(class.Name)
	if name == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("class name is required")
	}
	if class.Loader == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("class " + name + " has no resource loader")
	}
	path := DescriptorPath(name)
	stream, err := class.OpenResource(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("class", name).Str("path", path).Msg("no component descriptor")
		} else {
			log.Warn().Err(err).Str("class", name).Str("path", path).Msg("component descriptor not readable")
		}
		return nil, nil
	}
	if stream == nil {
		return nil, nil
	}
	defer closeResource(stream, path)

	root, err := xmlquery.Parse(stream)
	if err == nil {
		err = checkDocumentShape(root)
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unable to read classpath resource: " + path).
			WithCause(err)
	}
	log.Debug().Str("class", name).Str("path", path).Msg("component descriptor parsed")
	return &types.Document{Path: path, Root: root}, nil
}

func (a MetadataXMLAdapter) ServiceInterfaces(doc *types.Document) (types.ServiceInterfaces, error) {
	interfaces := types.ServiceInterfaces{}
	if doc == nil {
		return interfaces, nil
	}
	nodes, err := selectFromComponent(doc, interfacesExpr)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("error evaluating service interface query").
			WithCause(err)
	}
	for _, node := range nodes {
		value := node.SelectAttr("interface")
		if strings.TrimSpace(value) == "" {
			continue
		}
		interfaces.Add(value)
	}
	return interfaces, nil
}

func (a MetadataXMLAdapter) Properties(doc *types.Document) (types.Properties, error) {
	props := types.Properties{}
	if doc == nil {
		return props, nil
	}
	nodes, err := selectFromComponent(doc, propertiesExpr)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("error evaluating property query").
			WithCause(err)
	}
	for _, node := range nodes {
		name := node.SelectAttr("name")
		value := node.SelectAttr("value")
		if node.SelectAttr("type") != integerType {
			props[name] = types.StringValue(value)
			continue
		}
		parsed, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("property %q in %s is not a valid Integer: %q", name, doc.Path, value)).
				WithCause(err)
		}
		props[name] = types.IntegerValue(int(parsed))
	}
	return props, nil
}

// selectFromComponent evaluates expr relative to the first component of
// the document. Engine panics surface as errors.
func selectFromComponent(doc *types.Document, expr func() (*xpath.Expr, error)) (nodes []*xmlquery.Node, err error) {
	if doc.Root == nil {
		return nil, nil
	}
	components, err := componentExpr()
	if err != nil {
		return nil, err
	}
	selector, err := expr()
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			nodes = nil
			err = fmt.Errorf("xpath evaluation panicked: %v", r)
		}
	}()
	component := xmlquery.QuerySelector(doc.Root, components)
	if component == nil {
		return nil, nil
	}
	return xmlquery.QuerySelectorAll(component, selector), nil
}

// checkDocumentShape rejects what the parser tolerates but XML forbids at
// the top level: zero or several root elements, and character data.
func checkDocumentShape(root *xmlquery.Node) error {
	elements := 0
	for node := root.FirstChild; node != nil; node = node.NextSibling {
		switch node.Type {
		case xmlquery.ElementNode:
			elements++
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(node.Data) != "" {
				return fmt.Errorf("content is not allowed outside the root element: %q", strings.TrimSpace(node.Data))
			}
		}
	}
	switch elements {
	case 0:
		return errors.New("document has no root element")
	case 1:
		return nil
	default:
		return fmt.Errorf("document has %d root elements", elements)
	}
}

func closeResource(stream io.Closer, path string) {
	if err := stream.Close(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to close classpath resource")
	}
}

var _ ports.MetadataPort = MetadataXMLAdapter{}

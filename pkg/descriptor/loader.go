package descriptor

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/honeybbq/syscallgen/pkg/scerrors"
)

const (
	elementAPI     = "api"
	elementDebug   = "debug"
	elementConfig  = "config"
	elementSyscall = "syscall"

	attrName      = "name"
	attrCondition = "condition"
)

// element is a minimal DOM node; only what the descriptor needs.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
}

func (e *element) attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (e *element) children(local string) []*element {
	var out []*element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == local {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// descendants returns every element named local at or below e, in
// document order.
func (e *element) descendants(local string) []*element {
	var out []*element
	var walk func(n *element)
	walk = func(n *element) {
		if n.XMLName.Local == local {
			out = append(out, n)
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(e)
	return out
}

// LoadFile opens path and loads the descriptor from it.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, scerrors.New(scerrors.KindIO, errors.Wrapf(err, "open descriptor %s", path))
	}
	defer f.Close()

	return Load(f)
}

// Load parses a descriptor document. The reader is not closed.
func Load(r io.Reader) (*Catalog, error) {
	root, err := parseDocument(r)
	if err != nil {
		return nil, scerrors.New(scerrors.KindMalformed, errors.Wrap(err, "invalid xml file"))
	}

	apis := root.descendants(elementAPI)
	if len(apis) != 1 {
		return nil, malformed("only one api element allowed, found %d", len(apis))
	}
	api := apis[0]
	if nested := api.descendants(elementDebug); len(nested) > 0 {
		return nil, malformed("debug element not allowed inside api element")
	}

	configs := api.children(elementConfig)
	if len(configs) != 1 {
		return nil, malformed("api element only supports 1 config element, found %d", len(configs))
	}
	if name := configs[0].attr(attrName); name != "" {
		return nil, malformed("api element config only supports an empty name, got %q", name)
	}

	cat := &Catalog{}
	if cat.API, err = parseGroups(api); err != nil {
		return nil, err
	}
	if cat.APICount() == 0 {
		return nil, scerrors.New(scerrors.KindEmpty, scerrors.ErrEmptyCatalog)
	}

	// debug 元素是可选的
	switch debugs := root.descendants(elementDebug); len(debugs) {
	case 0:
	case 1:
		if cat.Debug, err = parseGroups(debugs[0]); err != nil {
			return nil, err
		}
	default:
		return nil, malformed("at most one debug element allowed, found %d", len(debugs))
	}

	return cat, nil
}

// parseGroups turns every config element below parent into a group holding
// the names of its direct syscall children. Configs without syscalls are
// skipped.
func parseGroups(parent *element) ([]Group, error) {
	var groups []Group
	for _, cfg := range parent.descendants(elementConfig) {
		syscalls := cfg.children(elementSyscall)
		if len(syscalls) == 0 {
			continue
		}
		group := Group{
			Condition: strings.TrimSpace(cfg.attr(attrCondition)),
			Names:     make([]string, 0, len(syscalls)),
		}
		for _, sc := range syscalls {
			name := strings.TrimSpace(sc.attr(attrName))
			if name == "" {
				return nil, malformed("%s element inside %s has an empty name", elementSyscall, parent.XMLName.Local)
			}
			group.Names = append(group.Names, name)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// parseDocument decodes the root element and rejects anything but
// whitespace, comments and processing instructions after it.
func parseDocument(r io.Reader) (*element, error) {
	dec := xml.NewDecoder(r)
	var root element
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, errors.New("document has no root element")
		}
		return nil, err
	}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return &root, nil
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return nil, errors.Errorf("unexpected element <%s> after document root", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, errors.New("unexpected text after document root")
			}
		}
	}
}

func malformed(format string, args ...any) error {
	return scerrors.New(scerrors.KindMalformed, errors.Errorf("malformed xml: "+format, args...))
}

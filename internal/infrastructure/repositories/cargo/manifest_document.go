package cargo

import (
	"bytes"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
)

const dependenciesSection = "dependencies"

// versionSpan locates a version string literal inside the manifest bytes.
type versionSpan struct {
	offset  int
	length  int
	literal bool // single-quoted TOML literal string
}

// manifestDocument is a format-preserving view of a manifest: the original bytes
// plus the location of every version string declared under [dependencies].
// Edits are spliced into the original bytes; all other bytes are written back
// unchanged.
type manifestDocument struct {
	data     []byte
	versions map[string]versionSpan
	edits    map[string]string
}

// parseManifestDocument walks the TOML expressions of data and records the
// version strings of the dependencies section, whatever shape they take:
//
//	foo = "1.0"                      # bare scalar
//	foo = { version = "1.0", ... }   # inline table
//	foo.version = "1.0"              # dotted key
//	[dependencies.foo]               # standard table
//	version = "1.0"
func parseManifestDocument(data []byte) (*manifestDocument, error) {
	doc := &manifestDocument{
		data:     data,
		versions: make(map[string]versionSpan),
		edits:    make(map[string]string),
	}

	var parser unstable.Parser
	parser.Reset(data)

	var table []string
	inArrayTable := false

	for parser.NextExpression() {
		expr := parser.Expression()

		switch expr.Kind {
		case unstable.Table:
			table = keyPath(expr.Key())
			inArrayTable = false
		case unstable.ArrayTable:
			table = keyPath(expr.Key())
			inArrayTable = true
		case unstable.KeyValue:
			if inArrayTable {
				continue
			}
			path := append(slices.Clone(table), keyPath(expr.Key())...)
			doc.collect(path, expr.Value())
		}
	}

	if err := parser.Error(); err != nil {
		return nil, err
	}
	return doc, nil
}

// collect records value when path points at a dependency version, descending
// into inline tables.
func (it *manifestDocument) collect(path []string, value *unstable.Node) {
	if len(path) < 1 || path[0] != dependenciesSection || len(path) > 3 {
		return
	}

	switch value.Kind {
	case unstable.String:
		if len(path) == 2 || (len(path) == 3 && path[2] == "version") {
			it.versions[path[1]] = versionSpan{
				offset:  int(value.Raw.Offset),
				length:  int(value.Raw.Length),
				literal: bytes.HasPrefix(it.data[value.Raw.Offset:], []byte("'")),
			}
		}
	case unstable.InlineTable:
		children := value.Children()
		for children.Next() {
			child := children.Node()
			if child.Kind != unstable.KeyValue {
				continue
			}
			childPath := append(slices.Clone(path), keyPath(child.Key())...)
			it.collect(childPath, child.Value())
		}
	default:
	}
}

// HasVersion reports whether the dependency declares a version string in the
// dependencies section.
func (it *manifestDocument) HasVersion(key string) bool {
	_, ok := it.versions[key]
	return ok
}

// SetVersion replaces the version string of a dependency. It returns false when
// the dependency has no version string in the dependencies section.
func (it *manifestDocument) SetVersion(key, version string) bool {
	if !it.HasVersion(key) {
		return false
	}
	it.edits[key] = version
	return true
}

// Bytes renders the document with all edits applied.
func (it *manifestDocument) Bytes() []byte {
	keys := make([]string, 0, len(it.edits))
	for key := range it.edits {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return it.versions[keys[i]].offset < it.versions[keys[j]].offset
	})

	var out bytes.Buffer
	out.Grow(len(it.data))

	last := 0
	for _, key := range keys {
		span := it.versions[key]
		out.Write(it.data[last:span.offset])
		out.WriteString(quoteVersion(it.edits[key], span.literal))
		last = span.offset + span.length
	}
	out.Write(it.data[last:])

	return out.Bytes()
}

// quoteVersion renders version as a TOML string, keeping the literal style
// when the original used it.
func quoteVersion(version string, literal bool) string {
	if literal && !strings.ContainsAny(version, "'\n") {
		return "'" + version + "'"
	}
	return strconv.Quote(version)
}

func keyPath(parts unstable.Iterator) []string {
	var path []string
	for parts.Next() {
		path = append(path, string(parts.Node().Data))
	}
	return path
}

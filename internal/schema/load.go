package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML schema file and returns a registry of its named types.
//
// The file declares records and enumerations under a top-level "types" map.
// Field types are either a scalar (a primitive alias or the name of another
// declared type) or a single-key mapping for compound types:
//
//	type: string
//	type: {list: string}
//	type: {map: {key: string, value: Server}}
//	type: {union: [string, int]}
//	type: {literal: [fast, safe]}
//
// Named types may reference each other in any declaration order. Every
// mention of a declared name resolves to the same descriptor.
func Load(r io.Reader) (*Registry, error) {
	var file struct {
		Types map[string]typeDef `yaml:"types"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if len(file.Types) == 0 {
		return nil, fmt.Errorf("schema declares no types")
	}

	// Declare all named types first so fields can reference them in any
	// order, then fill in the fields.
	named := make(map[string]Descriptor, len(file.Types))
	for name, def := range file.Types {
		switch def.Kind {
		case "record", "":
			named[name] = &Record{Name: name, Doc: def.Doc}
		case "enum":
			named[name] = &Enum{Name: name, Doc: def.Doc, Values: def.Values}
		default:
			return nil, fmt.Errorf("type %q: unknown kind %q", name, def.Kind)
		}
	}

	reg := NewRegistry()
	for name, def := range file.Types {
		rec, ok := named[name].(*Record)
		if ok {
			for _, fd := range def.Fields {
				if fd.Name == "" {
					return nil, fmt.Errorf("type %q: field without a name", name)
				}
				field := &Field{
					Name:     fd.Name,
					Doc:      fd.Doc,
					Required: fd.Required,
					Default:  fd.Default,
				}
				if fd.Type.Kind != 0 {
					t, err := resolveType(&fd.Type, named)
					if err != nil {
						return nil, fmt.Errorf("type %q, field %q: %w", name, fd.Name, err)
					}
					field.Type = t
				}
				rec.Fields = append(rec.Fields, field)
			}
		} else if len(def.Fields) > 0 {
			return nil, fmt.Errorf("type %q: only records have fields", name)
		}
		if err := reg.Register(name, named[name]); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// LoadFile is Load for a file path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()
	reg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

type typeDef struct {
	Kind   string     `yaml:"kind"`
	Doc    string     `yaml:"doc"`
	Fields []fieldDef `yaml:"fields"`
	Values []any      `yaml:"values"`
}

type fieldDef struct {
	Name     string    `yaml:"name"`
	Doc      string    `yaml:"doc"`
	Type     yaml.Node `yaml:"type"`
	Required bool      `yaml:"required"`
	Default  string    `yaml:"default"`
}

// primitiveAliases maps schema-file type names to the primitive singletons.
var primitiveAliases = map[string]*Primitive{
	"string":   String,
	"str":      String,
	"int":      Int,
	"integer":  Int,
	"float":    Float,
	"number":   Float,
	"bool":     Bool,
	"boolean":  Bool,
	"null":     Null,
	"none":     Null,
	"path":     Path,
	"datetime": Datetime,
	"duration": Duration,
	"url":      URL,
}

func resolveType(n *yaml.Node, named map[string]Descriptor) (Descriptor, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var name string
		if err := n.Decode(&name); err != nil {
			return nil, err
		}
		if p, ok := primitiveAliases[name]; ok {
			return p, nil
		}
		if d, ok := named[name]; ok {
			return d, nil
		}
		return nil, fmt.Errorf("unknown type %q", name)

	case yaml.MappingNode:
		var c struct {
			List    *yaml.Node  `yaml:"list"`
			Set     *yaml.Node  `yaml:"set"`
			Map     *mapDef     `yaml:"map"`
			Union   []yaml.Node `yaml:"union"`
			Tuple   []yaml.Node `yaml:"tuple"`
			Literal []any       `yaml:"literal"`
		}
		if err := n.Decode(&c); err != nil {
			return nil, err
		}
		switch {
		case c.List != nil:
			elem, err := resolveType(c.List, named)
			if err != nil {
				return nil, err
			}
			return &List{Elem: elem}, nil
		case c.Set != nil:
			elem, err := resolveType(c.Set, named)
			if err != nil {
				return nil, err
			}
			return &Set{Elem: elem}, nil
		case c.Map != nil:
			key, err := resolveType(&c.Map.Key, named)
			if err != nil {
				return nil, err
			}
			value, err := resolveType(&c.Map.Value, named)
			if err != nil {
				return nil, err
			}
			return &Map{Key: key, Value: value}, nil
		case len(c.Union) > 0:
			members, err := resolveTypes(c.Union, named)
			if err != nil {
				return nil, err
			}
			return &Union{Members: members}, nil
		case len(c.Tuple) > 0:
			elems, err := resolveTypes(c.Tuple, named)
			if err != nil {
				return nil, err
			}
			return &Tuple{Elems: elems}, nil
		case len(c.Literal) > 0:
			return &Literal{Values: c.Literal}, nil
		default:
			return nil, fmt.Errorf("compound type needs one of list, set, map, union, tuple, literal")
		}

	default:
		return nil, fmt.Errorf("malformed type declaration")
	}
}

type mapDef struct {
	Key   yaml.Node `yaml:"key"`
	Value yaml.Node `yaml:"value"`
}

func resolveTypes(nodes []yaml.Node, named map[string]Descriptor) ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(nodes))
	for i := range nodes {
		d, err := resolveType(&nodes[i], named)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

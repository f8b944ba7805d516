package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Enumerated lets a Go type present itself as an enumeration when a schema
// is derived from it.
type Enumerated interface {
	EnumValues() []any
}

// Documented supplies the documentation text for a derived record or
// enumeration.
type Documented interface {
	TypeDoc() string
}

// Derive builds a descriptor graph from a Go value by reflection. Struct
// fields read the `doc`, `default` and `required` tags; a pointer field is
// optional, everything else defaults to required unless it carries a
// default. Field names follow the json tag when present.
//
// The same Go type always derives to the same descriptor within one call,
// so a struct mentioned from several places resolves to a single section.
func Derive(v any) (Descriptor, error) {
	d := &deriver{seen: make(map[reflect.Type]Descriptor)}
	return d.descriptor(reflect.TypeOf(v))
}

type deriver struct {
	seen map[reflect.Type]Descriptor
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

func (d *deriver) descriptor(t reflect.Type) (Descriptor, error) {
	if t == nil {
		return nil, &UnsupportedTypeError{}
	}
	if cached, ok := d.seen[t]; ok {
		return cached, nil
	}

	switch t {
	case timeType:
		return Datetime, nil
	case durationType:
		return Duration, nil
	}

	if enum, ok := zeroValue(t).(Enumerated); ok {
		e := &Enum{Name: t.Name(), Values: enum.EnumValues()}
		if doc, ok := zeroValue(t).(Documented); ok {
			e.Doc = doc.TypeDoc()
		}
		d.seen[t] = e
		return e, nil
	}

	switch t.Kind() {
	case reflect.String:
		return String, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int, nil
	case reflect.Float32, reflect.Float64:
		return Float, nil
	case reflect.Bool:
		return Bool, nil
	case reflect.Pointer:
		return d.descriptor(t.Elem())
	case reflect.Slice, reflect.Array:
		elem, err := d.descriptor(t.Elem())
		if err != nil {
			return nil, err
		}
		return &List{Elem: elem}, nil
	case reflect.Map:
		key, err := d.descriptor(t.Key())
		if err != nil {
			return nil, err
		}
		value, err := d.descriptor(t.Elem())
		if err != nil {
			return nil, err
		}
		return &Map{Key: key, Value: value}, nil
	case reflect.Struct:
		return d.record(t)
	default:
		return nil, &UnsupportedTypeError{Descriptor: &Primitive{Name: t.String()}}
	}
}

func (d *deriver) record(t reflect.Type) (Descriptor, error) {
	rec := &Record{Name: t.Name()}
	if doc, ok := zeroValue(t).(Documented); ok {
		rec.Doc = doc.TypeDoc()
	}
	// Register before walking fields: a struct that mentions itself derives
	// to a cyclic graph, which the tree builder then rejects.
	d.seen[t] = rec

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		inner, err := d.descriptor(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), sf.Name, err)
		}
		field := &Field{
			Name:     fieldName(sf),
			Doc:      sf.Tag.Get("doc"),
			Type:     inner,
			Default:  sf.Tag.Get("default"),
			Required: sf.Type.Kind() != reflect.Pointer && sf.Tag.Get("default") == "",
		}
		if req := sf.Tag.Get("required"); req != "" {
			field.Required = req == "true"
		}
		rec.Fields = append(rec.Fields, field)
	}
	return rec, nil
}

func fieldName(sf reflect.StructField) string {
	if tag := sf.Tag.Get("json"); tag != "" {
		if name := strings.Split(tag, ",")[0]; name != "" && name != "-" {
			return name
		}
	}
	return sf.Name
}

func zeroValue(t reflect.Type) any {
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Chan ||
		t.Kind() == reflect.Func || t.Kind() == reflect.Interface {
		return nil
	}
	return reflect.Zero(t).Interface()
}

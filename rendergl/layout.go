package rendergl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
)

var attributeType = reflect.TypeOf((*Attribute)(nil)).Elem()

// VertexLayout is the attribute layout of a vertex record type.
type VertexLayout struct {
	Stride     int32
	Attributes []AttribLayout
}

// VertexLayoutOf derives the layout of the struct type of vertex. Fields
// tagged `location:"N"` become attributes bound to location N and must
// implement Attribute; untagged fields still take up room in the record.
// Records are tightly packed, in field order.
func VertexLayoutOf(vertex any) (VertexLayout, error) {
	t := reflect.TypeOf(vertex)
	if t == nil || t.Kind() != reflect.Struct {
		return VertexLayout{}, fmt.Errorf("vertex must be a struct, got %v", t)
	}

	type pending struct {
		attr     Attribute
		location uint32
		offset   int
	}
	var fields []pending
	offset := 0

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		size := binary.Size(reflect.Zero(field.Type).Interface())
		if size < 0 {
			return VertexLayout{}, fmt.Errorf("vertex field %s: type %v has no fixed size", field.Name, field.Type)
		}

		if tag, ok := field.Tag.Lookup("location"); ok {
			location, err := strconv.ParseUint(tag, 10, 32)
			if err != nil {
				return VertexLayout{}, fmt.Errorf("vertex field %s: bad location %q: %w", field.Name, tag, err)
			}
			if !field.Type.Implements(attributeType) {
				return VertexLayout{}, fmt.Errorf("vertex field %s: type %v is not an attribute", field.Name, field.Type)
			}
			attr := reflect.Zero(field.Type).Interface().(Attribute)
			fields = append(fields, pending{attr: attr, location: uint32(location), offset: offset})
		}

		offset += size
	}

	layout := VertexLayout{Stride: int32(offset)}
	for _, f := range fields {
		layout.Attributes = append(layout.Attributes, DescribeLayout(f.attr, f.location, layout.Stride, f.offset))
	}
	return layout, nil
}

// EncodeVertices serializes vertices tightly packed in native byte order,
// matching the offsets reported by VertexLayoutOf.
func EncodeVertices[V any](vertices []V) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.NativeEndian, vertices); err != nil {
		return nil, fmt.Errorf("encode vertices: %w", err)
	}
	return buf.Bytes(), nil
}

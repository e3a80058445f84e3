// Package schema defines collection schemas and their conversion to the
// Milvus wire format.
package schema

import (
	"fmt"
	"strconv"

	"github.com/milvus-io/milvus-proto/go-api/v2/commonpb"
	"github.com/milvus-io/milvus-proto/go-api/v2/schemapb"
	"google.golang.org/protobuf/proto"
)

// DataType identifies the type of values a field holds.
type DataType = schemapb.DataType

// Field data types accepted by the service.
const (
	Bool         = schemapb.DataType_Bool
	Int8         = schemapb.DataType_Int8
	Int16        = schemapb.DataType_Int16
	Int32        = schemapb.DataType_Int32
	Int64        = schemapb.DataType_Int64
	Float        = schemapb.DataType_Float
	Double       = schemapb.DataType_Double
	VarChar      = schemapb.DataType_VarChar
	JSON         = schemapb.DataType_JSON
	BinaryVector = schemapb.DataType_BinaryVector
	FloatVector  = schemapb.DataType_FloatVector
)

// Type param keys recognized by the server.
const (
	TypeParamDim       = "dim"
	TypeParamMaxLength = "max_length"
)

// Field describes a single column of a collection.
type Field struct {
	Name        string
	Description string
	DataType    DataType
	PrimaryKey  bool
	AutoID      bool
	TypeParams  map[string]string
}

// NewField creates a field with the given name and data type.
func NewField(name string, dataType DataType) *Field {
	return &Field{Name: name, DataType: dataType}
}

// WithDescription sets the field description.
func (f *Field) WithDescription(desc string) *Field {
	f.Description = desc
	return f
}

// AsPrimaryKey marks the field as the collection's primary key.
func (f *Field) AsPrimaryKey() *Field {
	f.PrimaryKey = true
	return f
}

// WithAutoID lets the server assign values for the field.
func (f *Field) WithAutoID() *Field {
	f.AutoID = true
	return f
}

// WithTypeParam attaches an arbitrary type param to the field.
func (f *Field) WithTypeParam(key, value string) *Field {
	if f.TypeParams == nil {
		f.TypeParams = make(map[string]string)
	}
	f.TypeParams[key] = value
	return f
}

// WithDim sets the vector dimension type param.
func (f *Field) WithDim(dim int) *Field {
	return f.WithTypeParam(TypeParamDim, strconv.Itoa(dim))
}

// WithMaxLength sets the maximum length type param for VarChar fields.
func (f *Field) WithMaxLength(n int) *Field {
	return f.WithTypeParam(TypeParamMaxLength, strconv.Itoa(n))
}

// isVector reports whether the field holds vector data.
func (f *Field) isVector() bool {
	return f.DataType == FloatVector || f.DataType == BinaryVector
}

// CollectionSchema describes the fields of a collection. The collection name
// and description are supplied at create time, not stored here.
type CollectionSchema struct {
	// AutoID is a collection-level hint mirroring the primary key's AutoID.
	AutoID bool
	Fields []*Field
}

// Validate checks that the schema is well formed: at least one field, unique
// non-empty field names, exactly one primary key of an allowed type, and a
// dimension param on every vector field.
func (s *CollectionSchema) Validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema has no fields")
	}

	seen := make(map[string]bool, len(s.Fields))
	primaryKeys := 0

	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema has a field with an empty name")
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate field name: %s", f.Name)
		}
		seen[f.Name] = true

		if f.PrimaryKey {
			primaryKeys++
			if f.DataType != Int64 && f.DataType != VarChar {
				return fmt.Errorf("primary key %s must be Int64 or VarChar", f.Name)
			}
		}
		if f.AutoID && !f.PrimaryKey {
			return fmt.Errorf("field %s: auto ID is only valid on the primary key", f.Name)
		}
		if f.isVector() {
			if _, ok := f.TypeParams[TypeParamDim]; !ok {
				return fmt.Errorf("vector field %s is missing the %s type param", f.Name, TypeParamDim)
			}
		}
	}

	if primaryKeys != 1 {
		return fmt.Errorf("schema must have exactly one primary key, found %d", primaryKeys)
	}

	return nil
}

// Proto validates the schema and converts it to the wire representation,
// tagged with the given collection name and description.
func (s *CollectionSchema) Proto(name, description string) (*schemapb.CollectionSchema, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validating schema: %w", err)
	}

	fields := make([]*schemapb.FieldSchema, 0, len(s.Fields))
	for _, f := range s.Fields {
		params := make([]*commonpb.KeyValuePair, 0, len(f.TypeParams))
		for k, v := range f.TypeParams {
			params = append(params, &commonpb.KeyValuePair{Key: k, Value: v})
		}

		fields = append(fields, &schemapb.FieldSchema{
			Name:         f.Name,
			Description:  f.Description,
			DataType:     f.DataType,
			IsPrimaryKey: f.PrimaryKey,
			AutoID:       f.AutoID,
			TypeParams:   params,
		})
	}

	return &schemapb.CollectionSchema{
		Name:        name,
		Description: description,
		AutoID:      s.AutoID,
		Fields:      fields,
	}, nil
}

// Marshal converts the schema to its serialized wire form.
func (s *CollectionSchema) Marshal(name, description string) ([]byte, error) {
	converted, err := s.Proto(name, description)
	if err != nil {
		return nil, err
	}

	data, err := proto.Marshal(converted)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return data, nil
}

// Package parsers provides parsing of schema definition files.
package parsers

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/devanpat/milvago/schema"
)

// rawSchema mirrors the YAML shape of a schema definition file.
type rawSchema struct {
	AutoID bool       `yaml:"auto_id"`
	Fields []rawField `yaml:"fields"`
}

// rawField represents a field entry before type resolution.
type rawField struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Type        string            `yaml:"type"`
	PrimaryKey  bool              `yaml:"primary_key"`
	AutoID      bool              `yaml:"auto_id"`
	Dim         int               `yaml:"dim"`
	MaxLength   int               `yaml:"max_length"`
	Params      map[string]string `yaml:"params"`
}

// fieldTypes maps schema file type names to wire data types.
var fieldTypes = map[string]schema.DataType{
	"bool":          schema.Bool,
	"int8":          schema.Int8,
	"int16":         schema.Int16,
	"int32":         schema.Int32,
	"int64":         schema.Int64,
	"float":         schema.Float,
	"double":        schema.Double,
	"varchar":       schema.VarChar,
	"json":          schema.JSON,
	"float_vector":  schema.FloatVector,
	"binary_vector": schema.BinaryVector,
}

// ParseSchema reads a YAML schema definition. The result is structurally
// converted only; validation happens when the schema is used.
func ParseSchema(r io.Reader) (*schema.CollectionSchema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading schema definition: %w", err)
	}

	var raw rawSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing schema definition: %w", err)
	}

	sch := &schema.CollectionSchema{AutoID: raw.AutoID}
	for _, rf := range raw.Fields {
		dataType, ok := fieldTypes[rf.Type]
		if !ok {
			return nil, fmt.Errorf("field %s: unsupported type %q", rf.Name, rf.Type)
		}

		field := schema.NewField(rf.Name, dataType).WithDescription(rf.Description)
		if rf.PrimaryKey {
			field = field.AsPrimaryKey()
		}
		if rf.AutoID {
			field = field.WithAutoID()
		}
		if rf.Dim > 0 {
			field = field.WithDim(rf.Dim)
		}
		if rf.MaxLength > 0 {
			field = field.WithMaxLength(rf.MaxLength)
		}
		for k, v := range rf.Params {
			field = field.WithTypeParam(k, v)
		}

		sch.Fields = append(sch.Fields, field)
	}

	return sch, nil
}

// LoadSchemaFile parses the schema definition at path.
func LoadSchemaFile(path string) (*schema.CollectionSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schema file: %w", err)
	}
	defer f.Close()

	return ParseSchema(f)
}

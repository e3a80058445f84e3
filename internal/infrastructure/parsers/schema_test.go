package parsers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devanpat/milvago/schema"
)

const sampleSchemaYAML = `
auto_id: true
fields:
  - name: id
    type: int64
    primary_key: true
    auto_id: true
  - name: title
    type: varchar
    description: document title
    max_length: 256
  - name: embedding
    type: float_vector
    dim: 768
    params:
      metric: cosine
`

func TestParseSchema(t *testing.T) {
	sch, err := ParseSchema(strings.NewReader(sampleSchemaYAML))
	require.NoError(t, err)

	assert.True(t, sch.AutoID)
	require.Len(t, sch.Fields, 3)

	id := sch.Fields[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, schema.Int64, id.DataType)
	assert.True(t, id.PrimaryKey)
	assert.True(t, id.AutoID)

	title := sch.Fields[1]
	assert.Equal(t, "document title", title.Description)
	assert.Equal(t, "256", title.TypeParams[schema.TypeParamMaxLength])

	embedding := sch.Fields[2]
	assert.Equal(t, schema.FloatVector, embedding.DataType)
	assert.Equal(t, "768", embedding.TypeParams[schema.TypeParamDim])
	assert.Equal(t, "cosine", embedding.TypeParams["metric"])

	// The parsed schema must pass validation as-is.
	assert.NoError(t, sch.Validate())
}

func TestParseSchemaUnsupportedType(t *testing.T) {
	input := "fields:\n  - name: id\n    type: decimal\n"

	_, err := ParseSchema(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported type "decimal"`)
}

func TestParseSchemaInvalidYAML(t *testing.T) {
	_, err := ParseSchema(strings.NewReader("fields: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing schema definition")
}

func TestLoadSchemaFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSchemaYAML), 0644))

	sch, err := LoadSchemaFile(path)
	require.NoError(t, err)
	assert.Len(t, sch.Fields, 3)
}

func TestLoadSchemaFileMissing(t *testing.T) {
	_, err := LoadSchemaFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening schema file")
}

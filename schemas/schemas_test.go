package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"word_list.schema.json",
		"segment_results.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var v map[string]any
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
			assert.Equal(t, schemaFile, v["$id"])
		})
	}
}

func TestEmbeddedSchemasMatchFiles(t *testing.T) {
	data, err := os.ReadFile("word_list.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), WordList)

	data, err = os.ReadFile("segment_results.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), SegmentResults)
}

package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDoc_EsJSONValido(t *testing.T) {
	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	assert.Equal(t, "Catalog API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/api/categories/{categoryId}/products/{productId}")
	assert.Contains(t, doc.Paths, "/api/products/category/{categoryId}")
}

package sanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryURL(t *testing.T) {
	c := NewClient("hekto123", "production", "2024-01-01", "")

	u := c.QueryURL(`*[_type == "customer"]{name}`)

	assert.Contains(t, u, "https://hekto123.api.sanity.io/v2024-01-01/data/query/production?query=")
	// GROQ는 반드시 URL 인코딩되어야 합니다.
	assert.NotContains(t, u, `"`)
	assert.Contains(t, u, "%2A%5B_type+%3D%3D+%22customer%22%5D")
}

func TestDecodeResult(t *testing.T) {
	t.Run("result 배열 디코딩", func(t *testing.T) {
		body := []byte(`{"ms": 7, "query": "*", "result": [{"name": "Ali"}, {"name": "Sara"}]}`)

		var out []map[string]string
		require.NoError(t, decodeResult(body, &out))
		require.Len(t, out, 2)
		assert.Equal(t, "Ali", out[0]["name"])
	})

	t.Run("result가 null이면 out을 건드리지 않음", func(t *testing.T) {
		body := []byte(`{"ms": 1, "query": "*", "result": null}`)

		var out []map[string]string
		require.NoError(t, decodeResult(body, &out))
		assert.Nil(t, out)
	})

	t.Run("result 필드가 아예 없어도 에러 아님", func(t *testing.T) {
		body := []byte(`{"ms": 1, "query": "*"}`)

		var out []map[string]string
		require.NoError(t, decodeResult(body, &out))
		assert.Nil(t, out)
	})

	t.Run("깨진 응답은 에러", func(t *testing.T) {
		var out []map[string]string
		assert.Error(t, decodeResult([]byte(`not-json`), &out))
	})

	t.Run("result 타입 불일치는 에러", func(t *testing.T) {
		body := []byte(`{"ms": 1, "query": "*", "result": {"name": "Ali"}}`)

		var out []map[string]string
		assert.Error(t, decodeResult(body, &out))
	})
}

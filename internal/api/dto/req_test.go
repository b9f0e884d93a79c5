package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCreateAccountBody_KeepsMissingAndNullDistinct(t *testing.T) {
	body, failure := DecodeCreateAccountBody([]byte(`{"name": null, "website": "www.example.com", "extra": 1}`))
	require.Nil(t, failure)

	name, ok := body["name"]
	assert.True(t, ok)
	assert.Nil(t, name)

	require.NotNil(t, body["website"])
	assert.Equal(t, "www.example.com", *body["website"])

	_, ok = body["comment"]
	assert.False(t, ok)
	_, ok = body["extra"]
	assert.False(t, ok)
}

func TestDecodeCreateAccountBody_RejectsNonObject(t *testing.T) {
	for _, raw := range []string{`null`, `[]`, `"name"`, `{`, ``} {
		_, failure := DecodeCreateAccountBody([]byte(raw))
		require.NotNil(t, failure, raw)
		assert.Equal(t, 400, failure.StatusCode)
		assert.Equal(t, "request body must be a JSON object", failure.Message)
	}
}

func TestDecodeCreateAccountBody_RejectsNonStringFields(t *testing.T) {
	_, failure := DecodeCreateAccountBody([]byte(`{"name": 42, "website": "www.example.com", "comment": {"a": 1}}`))
	require.NotNil(t, failure)
	assert.Equal(t, 400, failure.StatusCode)
	assert.Equal(t, "name must be a string; comment must be a string", failure.Message)
}

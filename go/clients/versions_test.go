package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAPIVersion(t *testing.T) {
	assert.True(t, ValidateAPIVersion(APIVersionV1))
	assert.True(t, ValidateAPIVersion(APIVersionV2))
	assert.True(t, ValidateAPIVersion(DefaultAPIVersion))
	assert.False(t, ValidateAPIVersion("v3"))
	assert.False(t, ValidateAPIVersion(""))
}

func TestAPIPathRoot(t *testing.T) {
	root, ok := APIPathRoot(APIVersionV1)
	assert.True(t, ok)
	assert.Equal(t, "/Platform/Destiny", root)

	root, ok = APIPathRoot(APIVersionV2)
	assert.True(t, ok)
	assert.Equal(t, "/Platform/Destiny2", root)

	_, ok = APIPathRoot("v0")
	assert.False(t, ok)
}

func TestAPIVersionsReturnsCopy(t *testing.T) {
	versions := APIVersions()
	assert.Len(t, versions, 2)

	versions[APIVersionV2] = "/changed"
	root, _ := APIPathRoot(APIVersionV2)
	assert.Equal(t, "/Platform/Destiny2", root)
}

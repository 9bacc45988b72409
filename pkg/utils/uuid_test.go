package utils_test

import (
	"strings"
	"testing"

	"github.com/storekeep/backoffice-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNo(t *testing.T) {
	orderNo := utils.GenerateOrderNo("ORD-")

	assert.True(t, strings.HasPrefix(orderNo, "ORD-"))
	assert.Len(t, orderNo, len("ORD-")+8)
	assert.Equal(t, strings.ToUpper(orderNo), orderNo)

	// Practically unique
	assert.NotEqual(t, orderNo, utils.GenerateOrderNo("ORD-"))
}

func TestParseUUID(t *testing.T) {
	id := utils.NewUUID()

	parsed, err := utils.ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = utils.ParseUUID("not-a-uuid")
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my-logo.png", utils.SanitizeFilename("my logo.png"))
	assert.Equal(t, "a-b-c", utils.SanitizeFilename("  a \t b \n c "))
	assert.Equal(t, "plain.png", utils.SanitizeFilename("plain.png"))
}

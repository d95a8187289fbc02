package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareCmd_VCard(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("card", "save", "--name", "Grace Hopper", "--email", "grace@example.com")
	require.NoError(t, err)
	resetFlags()

	out, err := execute("share")

	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCARD")
	assert.Contains(t, out, "FN:Grace Hopper")
	assert.Contains(t, out, "END:VCARD")
}

func TestShareCmd_Text(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("card", "save", "--name", "Grace Hopper", "--company", "US Navy")
	require.NoError(t, err)
	resetFlags()

	out, err := execute("share", "--format", "text")

	require.NoError(t, err)
	assert.Contains(t, out, "Grace Hopper")
	assert.Contains(t, out, "US Navy")
	assert.NotContains(t, out, "BEGIN:VCARD")
}

func TestShareCmd_Link(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("card", "save", "--name", "Grace Hopper")
	require.NoError(t, err)
	id := savedID(t, out)
	resetFlags()

	out, err = execute("share", "--format", "link")

	require.NoError(t, err)
	assert.Contains(t, out, "dropcard://card/"+id)
}

func TestShareCmd_UnknownFormat(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("card", "save", "--name", "Grace Hopper")
	require.NoError(t, err)
	resetFlags()

	_, err = execute("share", "--format", "carrier-pigeon")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestShareCmd_ToFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("card", "save", "--name", "Grace Hopper")
	require.NoError(t, err)
	resetFlags()

	path := filepath.Join(t.TempDir(), "card.vcf")
	out, err := execute("share", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FN:Grace Hopper")
}

func TestShareCmd_NoCards(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("share")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no cards yet")
}

func TestShareCmd_SpecificCard(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("card", "save", "--name", "First Card")
	require.NoError(t, err)
	resetFlags()
	out, err := execute("card", "save", "--name", "Second Card")
	require.NoError(t, err)
	second := savedID(t, out)
	resetFlags()

	out, err = execute("share", second)

	require.NoError(t, err)
	assert.Contains(t, out, "FN:Second Card")
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestContact(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(append([]string{"contact", "add"}, args...)...)
	require.NoError(t, err)
	resetFlags()
	return savedID(t, out)
}

func TestContactAddCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("contact", "add",
		"--name", "Grace Hopper",
		"--company", "US Navy",
		"--tag", "compilers",
		"--context", "conference keynote")

	require.NoError(t, err)
	assert.Contains(t, out, "Saved contact")
	assert.Contains(t, out, "Grace Hopper")
}

func TestContactAddCmd_RequiresName(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("contact", "add", "--notes", "met at a meetup")

	assert.Error(t, err)
}

func TestContactListCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	addTestContact(t, "--name", "Grace Hopper", "--company", "US Navy", "--tag", "compilers")
	addTestContact(t, "--name", "Ada Lovelace")

	out, err := execute("contact", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Grace Hopper @ US Navy")
	assert.Contains(t, out, "[compilers]")
	assert.Contains(t, out, "Ada Lovelace")
}

func TestContactListCmd_TagFilter(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	addTestContact(t, "--name", "Grace Hopper", "--tag", "compilers")
	addTestContact(t, "--name", "Ada Lovelace", "--tag", "analysis")

	out, err := execute("contact", "list", "--tag", "COMPILERS")
	require.NoError(t, err)
	assert.Contains(t, out, "Grace Hopper")
	assert.NotContains(t, out, "Ada Lovelace")
}

func TestContactListCmd_TagDoesNotLeakIntoSearch(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	addTestContact(t, "--name", "Grace Hopper", "--company", "US Navy", "--tag", "compilers")
	addTestContact(t, "--name", "Ada Lovelace", "--notes", "navy blue notebook")

	out, err := execute("contact", "list", "--tag", "compilers")
	require.NoError(t, err)
	assert.NotContains(t, out, "Ada Lovelace")

	// A plain search right after a tag-filtered list must not inherit
	// the list's tag filter.
	out, err = execute("contact", "search", "navy")
	require.NoError(t, err)
	assert.Contains(t, out, "Grace Hopper")
	assert.Contains(t, out, "Ada Lovelace")
}

func TestContactShowCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := addTestContact(t, "--name", "Grace Hopper",
		"--notes", "ask about COBOL",
		"--tag", "compilers",
		"--context", "conference keynote")

	out, err := execute("contact", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Grace Hopper")
	assert.Contains(t, out, "Met: conference keynote")
	assert.Contains(t, out, "Tags: compilers")
	assert.Contains(t, out, "Notes: ask about COBOL")
}

func TestContactDeleteCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := addTestContact(t, "--name", "Grace Hopper")

	out, err := execute("contact", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted contact "+id)

	_, err = execute("contact", "show", id)
	assert.Error(t, err)
}

func TestContactSearchCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	addTestContact(t, "--name", "Grace Hopper", "--company", "US Navy", "--tag", "compilers")
	addTestContact(t, "--name", "Ada Lovelace", "--notes", "navy blue notebook")

	out, err := execute("contact", "search", "navy")
	require.NoError(t, err)
	assert.Contains(t, out, "Grace Hopper")
	assert.Contains(t, out, "Ada Lovelace")

	resetFlags()
	out, err = execute("contact", "search", "navy", "--tag", "compilers")
	require.NoError(t, err)
	assert.Contains(t, out, "Grace Hopper")
	assert.NotContains(t, out, "Ada Lovelace")
}

func TestContactSearchCmd_NoMatches(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("contact", "search", "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "No contacts found")
}

func TestContactExportCmd_Stdout(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	addTestContact(t, "--name", "Grace Hopper", "--email", "grace@example.com")

	out, err := execute("contact", "export")
	require.NoError(t, err)
	assert.Contains(t, out, "Name,Title,Company,Email,Phone,Website,Notes,Meeting Context,Created Date")
	assert.Contains(t, out, "grace@example.com")
}

func TestContactExportCmd_ToFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	addTestContact(t, "--name", "Grace Hopper")

	path := filepath.Join(t.TempDir(), "contacts.csv")
	out, err := execute("contact", "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Grace Hopper")
}

func TestContactCmd_ServiceNotConfigured(t *testing.T) {
	SetServices(Services{})

	_, err := execute("contact", "list")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "contact service not configured")
}

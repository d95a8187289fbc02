package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirakinb/drop-card/internal/adapters/driven/storage/memory"
	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/services"
)

const sampleVCard = "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Grace Hopper\r\nEMAIL:grace@example.com\r\nEND:VCARD\r\n"

func TestImportFile(t *testing.T) {
	svc := services.NewContactService(memory.NewKVStore())
	path := filepath.Join(t.TempDir(), "grace.vcf")
	require.NoError(t, os.WriteFile(path, []byte(sampleVCard), 0600))

	contact, err := ImportFile(context.Background(), svc, path)
	require.NoError(t, err)

	assert.Equal(t, "Grace Hopper", contact.CardData.Name)
	assert.Equal(t, "grace@example.com", contact.CardData.Email)
	assert.Equal(t, "Imported from grace.vcf", contact.MeetingContext)
}

func TestImportFile_Malformed(t *testing.T) {
	svc := services.NewContactService(memory.NewKVStore())
	path := filepath.Join(t.TempDir(), "junk.vcf")
	require.NoError(t, os.WriteFile(path, []byte("not a vcard"), 0600))

	_, err := ImportFile(context.Background(), svc, path)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestImportFile_Missing(t *testing.T) {
	svc := services.NewContactService(memory.NewKVStore())

	_, err := ImportFile(context.Background(), svc, filepath.Join(t.TempDir(), "missing.vcf"))
	assert.Error(t, err)
}

func TestImportable(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"contact.vcf", true},
		{"CONTACT.VCF", true},
		{"/drop/dir/contact.vcf", true},
		{".hidden.vcf", false},
		{"contact.txt", false},
		{"contact.vcf.tmp", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, importable(tt.path))
		})
	}
}

func TestHandleEvent(t *testing.T) {
	kv := memory.NewKVStore()
	svc := services.NewContactService(kv)
	dir := t.TempDir()
	watcher := NewWatcher(svc, dir)
	ctx := context.Background()

	path := filepath.Join(dir, "grace.vcf")
	require.NoError(t, os.WriteFile(path, []byte(sampleVCard), 0600))

	watcher.handleEvent(ctx, fsnotify.Event{Name: path, Op: fsnotify.Create})

	contacts, err := svc.AllContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Grace Hopper", contacts[0].CardData.Name)
}

func TestHandleEvent_IgnoresIrrelevant(t *testing.T) {
	svc := services.NewContactService(memory.NewKVStore())
	dir := t.TempDir()
	watcher := NewWatcher(svc, dir)
	ctx := context.Background()

	notVCard := filepath.Join(dir, "readme.txt")
	require.NoError(t, os.WriteFile(notVCard, []byte("hello"), 0600))
	watcher.handleEvent(ctx, fsnotify.Event{Name: notVCard, Op: fsnotify.Create})

	vcf := filepath.Join(dir, "grace.vcf")
	require.NoError(t, os.WriteFile(vcf, []byte(sampleVCard), 0600))
	watcher.handleEvent(ctx, fsnotify.Event{Name: vcf, Op: fsnotify.Chmod})

	contacts, err := svc.AllContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestImportExisting(t *testing.T) {
	svc := services.NewContactService(memory.NewKVStore())
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.vcf"), []byte(sampleVCard), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.vcf"), []byte("not a vcard"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0600))

	watcher := NewWatcher(svc, dir)
	require.NoError(t, watcher.importExisting(context.Background()))

	contacts, err := svc.AllContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Grace Hopper", contacts[0].CardData.Name)
}

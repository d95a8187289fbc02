// Package watch implements a drop-directory import watcher.
// Every .vcf file created in the watched directory is decoded and saved
// as a contact, so exports from other devices can be picked up without
// running an import command per file.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/sirakinb/drop-card/internal/core/domain"
	"github.com/sirakinb/drop-card/internal/core/ports/driving"
	"github.com/sirakinb/drop-card/internal/logger"
	"github.com/sirakinb/drop-card/internal/vcard"
)

// Watcher imports vCard files dropped into a directory.
type Watcher struct {
	contacts driving.ContactService
	dir      string
}

// NewWatcher creates a watcher over the given directory.
func NewWatcher(contacts driving.ContactService, dir string) *Watcher {
	return &Watcher{contacts: contacts, dir: dir}
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run watches the directory until the context is cancelled.
// Files present before the watch starts are imported first, so a
// directory filled while the watcher was down is not missed.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	if err := w.importExisting(ctx); err != nil {
		return err
	}

	logger.Info("watching %s for .vcf files", w.dir)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// importExisting imports .vcf files already present in the directory.
func (w *Watcher) importExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", w.dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.dir, entry.Name())
		if !importable(path) {
			continue
		}
		if _, err := ImportFile(ctx, w.contacts, path); err != nil {
			logger.Warn("skipping %s: %v", path, err)
		}
	}
	return nil
}

// handleEvent imports a newly created or rewritten .vcf file.
// Malformed files are logged and skipped; the watch keeps running.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}
	if !importable(event.Name) {
		return
	}

	contact, err := ImportFile(ctx, w.contacts, event.Name)
	if err != nil {
		logger.Warn("skipping %s: %v", event.Name, err)
		return
	}
	logger.Info("imported %s as contact %s", filepath.Base(event.Name), contact.ID)
}

// importable reports whether a path looks like a vCard file worth
// importing. Hidden files are skipped so editor temp files don't get
// picked up.
func importable(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".vcf")
}

// ImportFile decodes a single vCard file and saves it as a contact.
// The file name (without extension) is recorded as meeting context so
// imported contacts remain traceable to their source.
func ImportFile(ctx context.Context, contacts driving.ContactService, path string) (*domain.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	card, err := vcard.Decode(string(data))
	if err != nil {
		return nil, err
	}

	return contacts.SaveContact(ctx, domain.Contact{
		CardData:       *card,
		MeetingContext: "Imported from " + filepath.Base(path),
	})
}

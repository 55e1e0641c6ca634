package watch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// SourceChangedHandler is called when a linked source file changes.
type SourceChangedHandler func(elementID string, content string)

// Watcher keeps code elements linked to files on disk in sync. A code
// element may point at a source file; when an external editor saves it,
// the watcher fires and pushes the new content into the element.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange SourceChangedHandler
	mu       sync.RWMutex
	watching map[string]string // filePath -> elementID
	dirRefs  map[string]int    // directory -> linked files inside it
}

// New creates a source file watcher.
func New(onChange SourceChangedHandler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		watching: make(map[string]string),
		dirRefs:  make(map[string]int),
	}

	go w.watchLoop()

	return w, nil
}

// LinkFile starts watching filePath for the given element. Relinking an
// element to a new file drops its old link first.
func (w *Watcher) LinkFile(elementID, filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.unlinkLocked(elementID)
	if _, known := w.watching[absPath]; !known {
		// fsnotify watches directories for file events; share one watch
		// per directory and count the files that need it.
		dir := filepath.Dir(absPath)
		if w.dirRefs[dir] == 0 {
			if err := w.fsw.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
		}
		w.dirRefs[dir]++
	}
	w.watching[absPath] = elementID
	return nil
}

// UnlinkElement stops watching the element's file.
func (w *Watcher) UnlinkElement(elementID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.unlinkLocked(elementID)
}

func (w *Watcher) unlinkLocked(elementID string) {
	for path, id := range w.watching {
		if id != elementID {
			continue
		}
		delete(w.watching, path)
		dir := filepath.Dir(path)
		if w.dirRefs[dir]--; w.dirRefs[dir] <= 0 {
			delete(w.dirRefs, dir)
			w.fsw.Remove(dir)
		}
		return
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) {
				absPath, _ := filepath.Abs(event.Name)
				w.mu.RLock()
				elementID, watched := w.watching[absPath]
				w.mu.RUnlock()

				if watched {
					content, err := os.ReadFile(absPath)
					if err != nil {
						log.Printf("watch: read file %s: %v", absPath, err)
						continue
					}
					if w.onChange != nil {
						w.onChange(elementID, strings.TrimSpace(string(content)))
					}
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watch: watcher error: %v", err)
		}
	}
}

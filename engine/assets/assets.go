package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ovenlight/turnbake/engine/assets/loaders"
	"github.com/ovenlight/turnbake/engine/containers"
	"github.com/ovenlight/turnbake/engine/core"
	"github.com/ovenlight/turnbake/engine/scene"
)

// Room for meshes dropped into the input directory while a run is active.
const pendingCapacity = 1024

type MeshInfo struct {
	Path      string
	IndexedAt time.Time
}

type Loader interface {
	Load(path string) (*scene.Mesh, error)
}

/**
 * @brief Library indexes the mesh files under an input directory and keeps
 * the index current through a recursive fsnotify watcher. Files that appear
 * while a run is active are queued for pickup by the batch loop.
 */
type Library struct {
	meshes  map[string]MeshInfo
	loaders map[string]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	pending  *containers.RingQueue
}

func NewLibrary() (*Library, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Library{
		meshes:   make(map[string]MeshInfo),
		loaders:  make(map[string]Loader),
		fsnotify: fsWatch,
		pending:  containers.NewRingQueue(pendingCapacity),
		done:     make(chan struct{}),
	}, nil
}

func (l *Library) Initialize(meshDir string) error {
	// Register loaders
	l.registerLoader(".obj", &loaders.OBJLoader{})

	go l.start()

	if err := l.addRecursive(meshDir); err != nil {
		return err
	}
	return nil
}

// Register a loader for a file extension
func (l *Library) registerLoader(ext string, loader Loader) {
	l.loaders[ext] = loader
}

// addRecursive starts watching the named directory and all sub-directories,
// indexing the mesh files already present.
func (l *Library) addRecursive(name string) error {
	if l.isClosed {
		return core.ErrLibraryClosed
	}
	return filepath.Walk(name, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return l.fsnotify.Add(walkPath)
		}
		l.indexFile(walkPath, false)
		return nil
	})
}

// Meshes returns the indexed mesh paths in a stable order.
func (l *Library) Meshes() []string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	paths := make([]string, 0, len(l.meshes))
	for path := range l.meshes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Load parses the mesh file at path with the loader registered for its
// extension.
func (l *Library) Load(path string) (*scene.Mesh, error) {
	loader, ok := l.loaders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("no loader registered for %q", filepath.Ext(path))
	}
	return loader.Load(path)
}

// NextPending pops the next mesh file discovered by the watcher since the
// run started, if any.
func (l *Library) NextPending() (string, bool) {
	return l.pending.Dequeue()
}

func (l *Library) Close() error {
	if l.isClosed {
		return nil
	}
	l.isClosed = true
	close(l.done)
	return nil
}

func (l *Library) start() {
	for {
		select {
		case e := <-l.fsnotify.Events:
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if addErr := l.addRecursive(e.Name); addErr != nil {
						core.LogWarn("failed to watch new directory %s: %s", e.Name, addErr)
					}
				}
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				l.indexFile(e.Name, true)
			}
			if e.Op&fsnotify.Remove != 0 {
				l.removeFile(e.Name)
				l.fsnotify.Remove(e.Name)
			}

		case e := <-l.fsnotify.Errors:
			core.LogError(e.Error())

		case <-l.done:
			l.fsnotify.Close()
			return
		}
	}
}

// Index a created or modified file. Files arriving through watch events are
// also queued for the running batch loop.
func (l *Library) indexFile(path string, fromWatch bool) {
	if _, ok := l.loaders[strings.ToLower(filepath.Ext(path))]; !ok {
		return
	}

	l.mutex.Lock()
	_, known := l.meshes[path]
	l.meshes[path] = MeshInfo{
		Path:      path,
		IndexedAt: time.Now(),
	}
	l.mutex.Unlock()

	if fromWatch && !known {
		if err := l.pending.Enqueue(path); err != nil {
			core.LogWarn("pending mesh queue full, dropping %s", path)
		}
	}
}

// Remove the mesh from the index if it was deleted
func (l *Library) removeFile(path string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	delete(l.meshes, path)
}

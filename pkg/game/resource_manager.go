package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"log"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// ReadFileFunc reads a resource by path (e.g., embedded.ReadFile).
type ReadFileFunc func(path string) ([]byte, error)

// ResourceManager loads the sprites declared in the resource manifest.
//
// Decoding happens on background goroutines. Decoded images are kept as
// image.Image and converted to *ebiten.Image lazily by GetImage, which must
// be called from the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager(embedded.ReadFile)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Printf("Failed to load resource config: %v", err)
//	}
//	future := rm.LoadAll()
//	...
//	if future.Ready() {
//	    img := rm.GetImage("player")
//	}
type ResourceManager struct {
	readFile ReadFileFunc
	config   *ResourceConfig

	mu      sync.RWMutex
	decoded map[string]image.Image // ID -> decoded image (written by loaders)

	images map[string]*ebiten.Image // ID -> GPU image (game loop only)
	future *LoadFuture
}

// NewResourceManager creates a ResourceManager that reads files with readFile.
func NewResourceManager(readFile ReadFileFunc) *ResourceManager {
	return &ResourceManager{
		readFile: readFile,
		decoded:  make(map[string]image.Image),
		images:   make(map[string]*ebiten.Image),
	}
}

// LoadResourceConfig reads and parses the manifest at configPath.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := rm.readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("resource config %s: %w", configPath, err)
	}

	rm.config = cfg
	return nil
}

// LoadAll starts decoding every image in the manifest and returns a future
// that resolves once all of them have finished, successfully or not.
//
// Calling LoadAll again returns the same future.
func (rm *ResourceManager) LoadAll() *LoadFuture {
	if rm.future != nil {
		return rm.future
	}

	paths := map[string]string{}
	if rm.config != nil {
		paths = rm.config.ImagePaths()
	}

	ids := make([]string, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rm.future = NewLoadFuture(len(ids), func(id string, err error) {
		if err != nil {
			log.Printf("[ResourceManager] Warning: Failed to load image %s: %v", id, err)
			return
		}
		log.Printf("[ResourceManager] Loaded image %s", id)
	})

	for _, id := range ids {
		go rm.loadImage(id, paths[id])
	}

	return rm.future
}

// loadImage decodes one image and reports to the future.
func (rm *ResourceManager) loadImage(id, path string) {
	data, err := rm.readFile(path)
	if err != nil {
		rm.future.Complete(id, fmt.Errorf("failed to read %s: %w", path, err))
		return
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		rm.future.Complete(id, fmt.Errorf("failed to decode %s: %w", path, err))
		return
	}

	rm.mu.Lock()
	rm.decoded[id] = img
	rm.mu.Unlock()

	rm.future.Complete(id, nil)
}

// Decoded returns the decoded source image for id.
func (rm *ResourceManager) Decoded(id string) (image.Image, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	img, ok := rm.decoded[id]
	return img, ok
}

// GetImage returns the GPU image for id, or nil if it has not loaded (or failed).
func (rm *ResourceManager) GetImage(id string) *ebiten.Image {
	if img, ok := rm.images[id]; ok {
		return img
	}

	src, ok := rm.Decoded(id)
	if !ok {
		return nil
	}

	img := ebiten.NewImageFromImage(src)
	rm.images[id] = img
	return img
}

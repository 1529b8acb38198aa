// Package asset loads textures, the skybox and the sound track from an asset
// directory. Missing or broken files are logged and reported as nil so the
// scene can still be built and animated without them.
package asset

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Directory layout under the asset root.
const (
	TextureDir = "textures"
	SkyboxDir  = "textures/cubeMap"
	Soundtrack = "textures/low-spaceship-rumble-195722.ogg"
)

// SkyboxFaces lists the cube faces in load order.
var SkyboxFaces = [6]string{"px.png", "nx.png", "py.png", "ny.png", "pz.png", "nz.png"}

// Skybox holds the six cube faces. A face that failed to load is nil.
type Skybox struct {
	Faces [6]image.Image
}

// Complete reports whether every face loaded.
func (s *Skybox) Complete() bool {
	for _, f := range s.Faces {
		if f == nil {
			return false
		}
	}
	return true
}

// Library loads assets relative to Root, caching decoded images.
type Library struct {
	Root string

	mu     sync.Mutex
	images map[string]image.Image
}

// NewLibrary returns a library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{
		Root:   dir,
		images: make(map[string]image.Image),
	}
}

// Image decodes the file at name, relative to Root. Results, including
// failures, are cached so each file is read at most once.
func (l *Library) Image(name string) image.Image {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.images[name]; ok {
		return img
	}

	img, err := l.decode(name)
	if err != nil {
		log.Printf("asset: %v", err)
	}
	l.images[name] = img
	return img
}

// Texture returns the body texture called file from the texture directory.
// An empty file name means the body has none and yields nil without logging.
func (l *Library) Texture(file string) image.Image {
	if file == "" {
		return nil
	}
	return l.Image(filepath.Join(TextureDir, file))
}

// Skybox loads the six cube faces.
func (l *Library) Skybox() *Skybox {
	var sky Skybox
	for i, face := range SkyboxFaces {
		sky.Faces[i] = l.Image(filepath.Join(SkyboxDir, face))
	}
	return &sky
}

// Open opens the named file for streaming.
func (l *Library) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(l.path(name))
	if err != nil {
		return nil, fmt.Errorf("open asset: %w", err)
	}
	return f, nil
}

// Loaded returns the number of cached images that decoded successfully.
func (l *Library) Loaded() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, img := range l.images {
		if img != nil {
			n++
		}
	}
	return n
}

func (l *Library) path(name string) string {
	return filepath.Join(l.Root, filepath.FromSlash(name))
}

func (l *Library) decode(name string) (image.Image, error) {
	f, err := os.Open(l.path(name))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

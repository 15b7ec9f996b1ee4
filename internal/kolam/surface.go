package kolam

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
)

// MaxImageSize caps the raster edge so a bad config cannot exhaust memory.
const MaxImageSize = 8192

// Surface is a square drawing surface backed by a reusable pixel buffer.
type Surface struct {
	*gg.Context
	img *image.RGBA
}

// Size returns the edge length in pixels.
func (s *Surface) Size() int {
	return s.img.Bounds().Dx()
}

// SurfaceProvider hands out surfaces and takes them back.
// Every successful Acquire must be paired with exactly one Release.
type SurfaceProvider interface {
	Acquire(size int) (*Surface, error)
	Release(s *Surface)
}

// SurfacePool recycles pixel buffers between renders of the same size.
type SurfacePool struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

// NewSurfacePool returns an empty pool.
func NewSurfacePool() *SurfacePool {
	return &SurfacePool{pools: make(map[int]*sync.Pool)}
}

// Acquire returns a surface of the given size with a fresh drawing context.
func (p *SurfacePool) Acquire(size int) (*Surface, error) {
	if size <= 0 || size > MaxImageSize {
		return nil, &Error{
			Op:   "kolam.Acquire",
			Kind: KindResource,
			Err:  fmt.Errorf("image size %d outside (0, %d]", size, MaxImageSize),
		}
	}
	img, _ := p.pool(size).Get().(*image.RGBA)
	return &Surface{Context: gg.NewContextForRGBA(img), img: img}, nil
}

// Release returns the buffer to the pool. The surface must not be used again.
func (p *SurfacePool) Release(s *Surface) {
	if s == nil || s.img == nil {
		return
	}
	img := s.img
	s.img = nil
	s.Context = nil
	p.pool(img.Bounds().Dx()).Put(img)
}

func (p *SurfacePool) pool(size int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, ok := p.pools[size]
	if !ok {
		sp = &sync.Pool{New: func() any {
			return image.NewRGBA(image.Rect(0, 0, size, size))
		}}
		p.pools[size] = sp
	}
	return sp
}

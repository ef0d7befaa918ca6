package menuservice

import (
	"context"

	"foodcourt/internal/menu"

	"golang.org/x/sync/semaphore"
)

// ImageProber throttles best-effort image probes so a large menu does not
// open one connection per card at once.
type ImageProber struct {
	fetcher Fetcher
	sem     *semaphore.Weighted
}

// NewImageProber allows at most limit probes in flight.
func NewImageProber(f Fetcher, limit int) *ImageProber {
	if limit <= 0 {
		limit = 1
	}
	return &ImageProber{fetcher: f, sem: semaphore.NewWeighted(int64(limit))}
}

// Probe waits for a free slot and probes url.
func (p *ImageProber) Probe(ctx context.Context, url string) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)
	return p.fetcher.ProbeImage(ctx, url)
}

// ImageURLs lists the distinct, non-empty item images in display order.
func ImageURLs(restaurants []menu.Restaurant) []string {
	seen := make(map[string]struct{})
	var urls []string
	for _, r := range restaurants {
		for _, it := range r.Items {
			if it.Image == "" {
				continue
			}
			if _, ok := seen[it.Image]; ok {
				continue
			}
			seen[it.Image] = struct{}{}
			urls = append(urls, it.Image)
		}
	}
	return urls
}

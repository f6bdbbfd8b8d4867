package assets

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"campus-viewer/internal/scenegraph"
)

// DefaultParallelism bounds concurrent fetches.
const DefaultParallelism = 4

// FetchFunc returns a local file path for an asset URI.
type FetchFunc func(ctx context.Context, uri string) (string, error)

// Decoder turns a fetched file into a scene node. It is only called from Poll, on the
// goroutine that owns the renderer.
type Decoder interface {
	Decode(name, path string) (*scenegraph.Node, error)
}

// Logger receives per-asset failures.
type Logger interface {
	Log(line string)
}

type fetched struct {
	name string
	path string
	err  error
}

// Loader fetches assets independently in the background and attaches them to a scene
// graph as they are polled. A failed asset is logged and skipped; the others are unaffected.
type Loader struct {
	fetch       FetchFunc
	log         Logger
	parallelism int

	results chan fetched
	done    chan struct{}
	pending int
}

// NewLoader returns a Loader that runs at most parallelism fetches at once.
// A non-positive parallelism uses DefaultParallelism.
func NewLoader(fetch FetchFunc, log Logger, parallelism int) *Loader {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	return &Loader{fetch: fetch, log: log, parallelism: parallelism}
}

// Start begins fetching every asset (name → URI) and returns immediately. Call it once.
func (l *Loader) Start(ctx context.Context, assets map[string]string) {
	names := make([]string, 0, len(assets))
	for name := range assets {
		names = append(names, name)
	}
	sort.Strings(names)

	l.results = make(chan fetched, len(names))
	l.done = make(chan struct{})
	l.pending = len(names)

	go func() {
		defer close(l.done)
		var g errgroup.Group
		g.SetLimit(l.parallelism)
		for _, name := range names {
			uri := assets[name]
			g.Go(func() error {
				path, err := l.fetch(ctx, uri)
				l.results <- fetched{name: name, path: path, err: err}
				return nil
			})
		}
		_ = g.Wait()
	}()
}

// Done is closed once every fetch has finished. Decoding still requires Poll.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Pending returns how many assets have not been attached or given up on yet.
func (l *Loader) Pending() int {
	return l.pending
}

// Poll decodes and attaches every asset fetched since the last call, without blocking,
// and returns how many were attached.
func (l *Loader) Poll(g *scenegraph.Graph, d Decoder) int {
	attached := 0
	for {
		select {
		case r := <-l.results:
			l.pending--
			if err := l.attach(g, d, r); err != nil {
				l.log.Log(fmt.Sprintf("Error loading model %s: %v", r.name, err))
				continue
			}
			attached++
		default:
			return attached
		}
	}
}

func (l *Loader) attach(g *scenegraph.Graph, d Decoder, r fetched) error {
	if r.err != nil {
		return r.err
	}
	node, err := d.Decode(r.name, r.path)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", r.path, err)
	}
	g.Attach(r.name, node)
	return nil
}

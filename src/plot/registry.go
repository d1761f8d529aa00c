package plot

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fabianboesiger/debug-plotter/src/config"
	"github.com/fabianboesiger/debug-plotter/src/render"
)

// flushParallelism bounds how many charts are rasterized at once
// during teardown.
const flushParallelism = 4

// registry maps call sites to their records for one process. It is
// created lazily on the first Plot call and torn down exactly once by
// Flush; afterwards every operation on it is a no-op.
type registry struct {
	mu      sync.RWMutex
	records map[Location]*record
	dead    bool

	cfg  config.Config
	rend render.Renderer
	surf SurfaceProvider
	log  zerolog.Logger
	now  func() time.Time
}

func newRegistry(cfg config.Config) *registry {
	return &registry{
		records: make(map[Location]*record),
		cfg:     cfg,
		rend:    render.New(),
		log:     newLogger(cfg.Log),
		now:     time.Now,
	}
}

func (g *registry) plot(loc Location, args []Arg) {
	if g.cfg.Disabled {
		return
	}
	var c call
	for _, a := range args {
		a.apply(&c)
	}
	if len(c.samples) == 0 {
		panic("plot: at least one Value or XY argument is required")
	}

	g.mu.RLock()
	dead := g.dead
	rec := g.records[loc]
	rend := g.rend
	g.mu.RUnlock()
	if dead {
		return
	}
	if rec == nil {
		rec = g.create(loc, &c)
		if rec == nil {
			return
		}
	}
	rec.insert(c.samples)
	rec.maybeRenderLive(rend, g.now())
}

// create adds the record for loc, capturing series names and options
// from the first call at that site. Concurrent callers re-check under
// the write lock so exactly one record per location wins; later calls
// reuse it and their option arguments are ignored.
func (g *registry) create(loc Location, c *call) *record {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dead {
		return nil
	}
	if rec, ok := g.records[loc]; ok {
		return rec
	}

	opts := resolveOptions(loc, c.opts, g.cfg)
	names := make([]string, len(c.samples))
	for i, s := range c.samples {
		names[i] = s.name
	}
	rec := newRecord(loc, opts, names, g.log)
	if opts.Live {
		g.attachSurfaceLocked(rec)
	}
	g.records[loc] = rec
	return rec
}

// attachSurfaceLocked opens the live window for rec. When no provider
// is installed or opening fails, the record falls back to buffered
// file output. Caller holds g.mu.
func (g *registry) attachSurfaceLocked(rec *record) {
	if g.surf == nil {
		g.log.Warn().
			Str("plot", rec.opts.Caption).
			Msg("live mode requested but no surface provider installed, buffering to file instead")
		return
	}
	s, err := g.surf.NewSurface(rec.opts.Caption, rec.opts.Width, rec.opts.Height)
	if err != nil {
		g.log.Warn().Err(err).
			Str("plot", rec.opts.Caption).
			Msg("opening live surface failed, buffering to file instead")
		return
	}
	fps := g.cfg.LiveFPS
	if fps <= 0 {
		fps = 30
	}
	rec.live = true
	rec.surface = s
	rec.frameGap = time.Second / time.Duration(fps)
}

// flush renders every buffered non-live record to its file and shuts
// the registry down. It runs at most once; records are rendered in
// call-site order with bounded parallelism. One record's failure is
// logged and reported but never blocks the others.
func (g *registry) flush() error {
	g.mu.Lock()
	if g.dead {
		g.mu.Unlock()
		return nil
	}
	g.dead = true
	recs := make([]*record, 0, len(g.records))
	for _, rec := range g.records {
		recs = append(recs, rec)
	}
	g.records = nil
	rend := g.rend
	log := g.log
	g.mu.Unlock()

	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i].loc, recs[j].loc
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Col < b.Col
	})

	var eg errgroup.Group
	eg.SetLimit(flushParallelism)
	errs := make([]error, len(recs))
	for i, rec := range recs {
		eg.Go(func() error {
			ch, path, live := rec.snapshot()
			if live {
				return nil
			}
			log.Info().Str("plot", ch.Caption).Str("path", path).Msg("saving plot")
			if err := rend.WriteFile(ch, path); err != nil {
				log.Error().Err(err).Str("plot", ch.Caption).Msg("saving plot failed")
				errs[i] = err
			}
			return nil
		})
	}
	_ = eg.Wait()
	return errors.Join(errs...)
}

func (g *registry) setLogger(l zerolog.Logger) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.log = l
}

func (g *registry) setRenderer(r render.Renderer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rend = r
}

func (g *registry) setSurfaceProvider(p SurfaceProvider) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.surf = p
}

package primer

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// A Runner plays lessons from a catalog to a writer, logging as it
// goes. Build one per command invocation.
type Runner struct {
	catalog *Catalog
	config  *Config
	log     *zap.Logger
	out     io.Writer
	barOut  io.Writer
}

// A RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithProgressWriter redirects the progress bar, which defaults to
// io.Discard. The primer command points it at stderr.
func WithProgressWriter(w io.Writer) RunnerOption {
	return func(r *Runner) { r.barOut = w }
}

// NewRunner wires a runner. A nil config means defaults; a nil logger
// means no logging.
func NewRunner(catalog *Catalog, config *Config, log *zap.Logger, out io.Writer, opts ...RunnerOption) (*Runner, error) {
	if catalog == nil {
		return nil, errors.New("primer: nil catalog")
	}
	if out == nil {
		return nil, errors.New("primer: nil output writer")
	}
	if config == nil {
		config = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}

	r := &Runner{
		catalog: catalog,
		config:  config,
		log:     log,
		out:     out,
		barOut:  io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run plays the named lessons in order.
func (r *Runner) Run(codes ...string) error {
	log := r.log.With(zap.String("session", uuid.NewString()))

	pace, err := r.config.PaceDelay()
	if err != nil {
		return err
	}

	log.Info("session started", zap.Int("lessons", len(codes)))

	for _, code := range codes {
		l, err := r.catalog.Get(code)
		if err != nil {
			log.Error("lesson lookup failed", zap.String("code", code), zap.Error(err))
			return err
		}
		if err := r.play(l, pace, log); err != nil {
			return err
		}
	}

	log.Info("session finished")
	return nil
}

// RunAll plays every lesson in catalog order, with a progress bar
// when the config asks for one.
func (r *Runner) RunAll() error {
	log := r.log.With(zap.String("session", uuid.NewString()))

	pace, err := r.config.PaceDelay()
	if err != nil {
		return err
	}

	lessons := r.catalog.All()

	log.Info("session started", zap.Int("lessons", len(lessons)))

	var bar *progressbar.ProgressBar
	if r.config.Progress {
		bar = progressbar.NewOptions(len(lessons),
			progressbar.OptionSetWriter(r.barOut),
			progressbar.OptionSetDescription("course"),
			progressbar.OptionShowCount(),
		)
	}

	for _, l := range lessons {
		if err := r.play(l, pace, log); err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(r.barOut)
	}

	log.Info("session finished")
	return nil
}

func (r *Runner) play(l Lesson, pace time.Duration, log *zap.Logger) error {
	c := NewConsole(r.out, WithColor(r.config.Color), WithPace(pace))
	c.Head(l.Title)

	start := time.Now()
	err := l.Demo(c)
	took := time.Since(start)

	if err != nil {
		log.Error("lesson failed", zap.String("code", l.Code), zap.Duration("took", took), zap.Error(err))
		return fmt.Errorf("primer: lesson %s: %w", l.Code, err)
	}

	log.Info("lesson played", zap.String("code", l.Code), zap.Duration("took", took))
	return nil
}

package primer

import (
	"bytes"
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// A VerifyResult reports one lesson's determinism check.
type VerifyResult struct {
	Code    string
	Drifted bool  // The two transcripts differed.
	Err     error // The first demo error, if any.
}

// Verify plays every lesson twice into buffers, concurrently across
// lessons, and flags any lesson whose two transcripts differ. Demo
// errors land in the results; the returned error only reports a
// canceled context.
func (r *Runner) Verify(ctx context.Context) ([]VerifyResult, error) {
	lessons := r.catalog.All()
	results := make([]VerifyResult, len(lessons))

	r.log.Info("verify started", zap.Int("lessons", len(lessons)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, l := range lessons {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = verifyLesson(l)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.log.Info("verify finished")
	return results, nil
}

// verifyLesson runs one demo twice into plain consoles and compares
// the bytes.
func verifyLesson(l Lesson) VerifyResult {
	res := VerifyResult{Code: l.Code}

	var first, second bytes.Buffer

	if err := l.Demo(NewConsole(&first)); err != nil {
		res.Err = err
		return res
	}
	if err := l.Demo(NewConsole(&second)); err != nil {
		res.Err = err
		return res
	}

	res.Drifted = !bytes.Equal(first.Bytes(), second.Bytes())
	return res
}

package main

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/tsp"
)

// batchRunner optimizes independent requests concurrently on an ants pool.
type batchRunner struct {
	opt      *tsp.Optimizer
	log      logrus.FieldLogger
	workers  int
	speedKmh float64
	timeout  time.Duration // per request; 0 = none
}

// run returns one Response per request, in input order.
func (b *batchRunner) run(ctx context.Context, reqs []Request) ([]Response, error) {
	pool, err := ants.NewPool(b.workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var (
		out = make([]Response, len(reqs))
		wg  sync.WaitGroup
	)
	for i := range reqs {
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			out[i] = b.one(ctx, reqs[i])
		}); err != nil {
			wg.Done()
			out[i] = Response{ID: reqs[i].ID, Error: err.Error()}
		}
	}
	wg.Wait()

	return out, nil
}

// one processes a single request; failures become Response.Error.
func (b *batchRunner) one(ctx context.Context, req Request) Response {
	entry := b.log.WithField("request_id", req.ID)

	cm, err := req.costMatrix(b.speedKmh)
	if err != nil {
		entry.Warnf("rejected request: %v", err)

		return Response{ID: req.ID, Error: err.Error()}
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	res, err := b.opt.Optimize(ctx, cm, req.ReturnToStart)
	if err != nil {
		entry.Warnf("optimization failed: %v", err)

		return Response{ID: req.ID, Error: err.Error()}
	}

	resp, err := buildResponse(req, cm, res)
	if err != nil {
		return Response{ID: req.ID, Error: err.Error()}
	}
	entry.WithFields(logrus.Fields{
		"n":        cm.Size(),
		"strategy": res.Strategy,
		"fallback": res.Fallback,
		"distance": resp.TotalDistance,
	}).Info("route optimized")

	return resp
}

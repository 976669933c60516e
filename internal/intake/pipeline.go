package intake

import (
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/brightcoat/showcase/internal/domain"
	"github.com/brightcoat/showcase/internal/notify"
	"github.com/brightcoat/showcase/internal/store"
)

// Pipeline validates enquiries, appends the resulting lead and forwards a
// copy through the notifier. The forward runs on a bounded worker pool and
// never rolls the lead back: intake is at-least-once, notify best-effort.
type Pipeline struct {
	store    *store.Store
	notifier notify.Notifier
	pool     *ants.Pool
}

func NewPipeline(s *store.Store, n notify.Notifier, workers int) (*Pipeline, error) {
	if workers <= 0 {
		workers = 4
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &Pipeline{store: s, notifier: n, pool: pool}, nil
}

// Submit runs the full intake flow for a raw request body. On a validation
// failure nothing is recorded.
func (p *Pipeline) Submit(body map[string]interface{}) (domain.Lead, *ValidationError) {
	sub, verr := ParseSubmission(body)
	if verr != nil {
		return domain.Lead{}, verr
	}
	if verr := sub.Validate(); verr != nil {
		return domain.Lead{}, verr
	}

	lead := p.store.AddLead(sub.Lead(time.Now()))

	copied := lead
	if err := p.pool.Submit(func() {
		if err := p.notifier.Forward(copied); err != nil {
			zap.L().Warn("lead forward failed",
				zap.String("lead_id", copied.ID), zap.Error(err))
		}
	}); err != nil {
		// pool saturated or released; the lead is already recorded
		zap.L().Warn("lead forward not scheduled", zap.String("lead_id", lead.ID), zap.Error(err))
	}

	return lead, nil
}

func (p *Pipeline) Release() {
	p.pool.Release()
}

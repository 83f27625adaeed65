// README: Workflow orchestrator; chains the guarded nodes over one state snapshot per turn.
package planner

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"tripmate/internal/ai"
)

// Workflow runs one user turn through the node chain:
// collect_info -> search_flights -> search_hotels -> plan_itinerary ->
// generate_response. Collection halts the turn until all slots are set;
// after that the four remaining nodes run back to back. Every node is a
// no-op once its output exists, so re-invoking a turn on the same state
// is safe.
type Workflow struct {
	rng *rand.Rand
	now func() time.Time
	ai  ai.SlotExtractor
	log *zap.Logger
}

type Option func(*Workflow)

// WithClock substitutes the time source (tests, fixed departure dates).
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

// WithRand substitutes the sampling source so tests can seed it.
func WithRand(rng *rand.Rand) Option {
	return func(w *Workflow) { w.rng = rng }
}

// WithFallbackExtractor enables a model-backed extraction pass for turns
// the rule tables cannot parse.
func WithFallbackExtractor(e ai.SlotExtractor) Option {
	return func(w *Workflow) { w.ai = e }
}

func WithLogger(log *zap.Logger) Option {
	return func(w *Workflow) { w.log = log }
}

func New(opts ...Option) *Workflow {
	w := &Workflow{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ProcessTurn executes one turn against a snapshot of st and returns the
// accumulated patch. The caller appends the user message beforehand and
// merges + persists the patch afterwards; st itself is never mutated.
func (w *Workflow) ProcessTurn(ctx context.Context, st *TripState) Patch {
	work := st.Clone()
	var total Patch

	step := func(p Patch) {
		work.Apply(p, w.now())
		total.merge(p)
	}

	step(w.collectInfo(ctx, work))
	if !work.InfoCollected {
		return total
	}

	step(w.searchFlights(work))
	step(w.searchHotels(work))
	step(w.planItinerary(work))
	step(w.generateResponse(work))

	return total
}

// defaultStartDate anchors flight and itinerary dates when the user gave
// no departure date: 30 days out. Flights and itinerary share it so their
// dates agree.
func (w *Workflow) defaultStartDate() time.Time {
	return w.now().AddDate(0, 0, 30)
}

// pick chooses one entry from a non-empty pool.
func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

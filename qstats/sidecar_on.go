//go:build qmetrics

package qstats

import (
	"sync"
	ratomic "sync/atomic"

	"github.com/NVIDIA/aisqueue/cmn/cos"
	"github.com/OneOfOne/xxhash"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// promSidecar exports every slot as a label value on a single Prometheus
// counter vector, and keeps its own atomic mirror so GetResult doesn't
// have to walk Prometheus's internal collector state.
type promSidecar struct {
	mu      sync.Mutex
	counter *prometheus.CounterVec
	values  map[uint64]*int64
	names   map[uint64]string
}

var (
	regOnce  sync.Once
	sharedCV *prometheus.CounterVec
	regErrs  cos.Errs
)

// New registers the package's counter vector exactly once: every qchan
// channel in a process shares one "qchan_items_total" metric,
// distinguished by the "slot" label, instead of each Sidecar fighting
// over its own registration.
func New() Sidecar {
	regOnce.Do(func() {
		sharedCV = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qchan_items_total",
			Help: "Cumulative item count per qchan instrumentation slot.",
		}, []string{"slot"})
		if err := prometheus.Register(sharedCV); err != nil {
			regErrs.Add(errors.Wrap(err, "registering qchan_items_total"))
		}
	})
	return &promSidecar{counter: sharedCV, values: make(map[uint64]*int64), names: make(map[uint64]string)}
}

// RegistrationErrors reports any errors accumulated while registering the
// shared counter vector with Prometheus (idempotent: only the first
// New() call can fail this way).
func RegistrationErrors() (int, error) { return regErrs.JoinErr() }

// NewSlot keys slots by the xxhash of their name so repeated calls with
// the same name share one counter instead of double-registering.
func (s *promSidecar) NewSlot(name string) *Slot {
	id := xxhash.ChecksumString64(name)
	s.mu.Lock()
	if _, ok := s.values[id]; !ok {
		var v int64
		s.values[id] = &v
		s.names[id] = name
	}
	s.mu.Unlock()
	return &Slot{Name: name, id: id}
}

func (s *promSidecar) Record(slot *Slot, delta int64) {
	s.mu.Lock()
	v, ok := s.values[slot.id]
	s.mu.Unlock()
	if !ok {
		return
	}
	ratomic.AddInt64(v, delta)
	s.counter.WithLabelValues(slot.Name).Add(float64(delta))
}

func (s *promSidecar) GetResult(clear bool) (*Result, error) {
	s.mu.Lock()
	counters := make(map[string]int64, len(s.values))
	for id, v := range s.values {
		if clear {
			counters[s.names[id]] = ratomic.SwapInt64(v, 0)
		} else {
			counters[s.names[id]] = ratomic.LoadInt64(v)
		}
	}
	s.mu.Unlock()

	// round-trip through jsoniter so a caller serializing Result gets the
	// same encoder the rest of the stack uses; also catches a non-finite
	// counter map early rather than at the caller's marshal site.
	if _, err := jsoniter.Marshal(counters); err != nil {
		return nil, err
	}
	return &Result{Counters: counters}, nil
}

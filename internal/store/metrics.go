package store

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
)

// instrumentedUserStore records RED metrics around every UserStore call.
type instrumentedUserStore struct {
	reqs *prometheus.CounterVec
	errs *prometheus.CounterVec
	durs *prometheus.HistogramVec

	next UserStore
}

var _ UserStore = (*instrumentedUserStore)(nil)

// NewInstrumentedUserStore wraps next with request, error and duration
// metrics registered on reg. Not-found results are counted as requests but
// not as errors.
func NewInstrumentedUserStore(next UserStore, reg prometheus.Registerer) UserStore {
	const namespace = "users_api"
	const subsystem = "store"

	reqs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "call_total",
		Help:      "Number of calls to the user store",
	}, []string{"method"})

	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "error_total",
		Help:      "Number of storage faults returned by the user store",
	}, []string{"method"})

	durs := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "duration_seconds",
		Help:      "Duration of user store calls",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	reg.MustRegister(reqs, errs, durs)

	return &instrumentedUserStore{
		reqs: reqs,
		errs: errs,
		durs: durs,
		next: next,
	}
}

func (s *instrumentedUserStore) List(ctx context.Context) ([]*domain.User, error) {
	m := s.record("list")
	users, err := s.next.List(ctx)
	return users, m(err)
}

func (s *instrumentedUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m := s.record("get_by_id")
	user, err := s.next.GetByID(ctx, id)
	return user, m(err)
}

func (s *instrumentedUserStore) Create(ctx context.Context, fields domain.UserFields) (*domain.User, error) {
	m := s.record("create")
	user, err := s.next.Create(ctx, fields)
	return user, m(err)
}

func (s *instrumentedUserStore) Update(
	ctx context.Context,
	id string,
	fields domain.UserFields,
) (*domain.User, error) {
	m := s.record("update")
	user, err := s.next.Update(ctx, id, fields)
	return user, m(err)
}

func (s *instrumentedUserStore) Delete(ctx context.Context, id string) (*domain.User, error) {
	m := s.record("delete")
	user, err := s.next.Delete(ctx, id)
	return user, m(err)
}

func (s *instrumentedUserStore) record(method string) func(error) error {
	start := time.Now()

	return func(err error) error {
		s.reqs.WithLabelValues(method).Inc()
		if err != nil && !IsNotFoundError(err) {
			s.errs.WithLabelValues(method).Inc()
		}
		s.durs.WithLabelValues(method).Observe(time.Since(start).Seconds())
		return err
	}
}

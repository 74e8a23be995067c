package usecase

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"

	"solidarity-campaign/internal/core/domain"
	"solidarity-campaign/internal/core/port"
)

// DefaultProgressKey is the storage key holding the total raised.
const DefaultProgressKey = "totalRaised"

// ProgressStore owns the in-memory total raised and mirrors every change
// to a ProgressStorage (write-through). Storage failures never escape: a
// failed read counts as an absent value and a failed write is logged.
type ProgressStore struct {
	storage port.ProgressStorage
	key     string
	goal    int64
	logger  *slog.Logger

	mu    sync.Mutex
	total int64
}

// NewProgressStore creates a store over storage. An empty key falls back to
// DefaultProgressKey. The store starts at zero; call Load to read the
// persisted value.
func NewProgressStore(storage port.ProgressStorage, key string, goal int64, logger *slog.Logger) *ProgressStore {
	if key == "" {
		key = DefaultProgressKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressStore{storage: storage, key: key, goal: goal, logger: logger}
}

// Load reads the persisted total and makes it the current value. An absent
// key, a value that is not plain decimal digits, or an unavailable backend
// all yield 0.
func (s *ProgressStore) Load(ctx context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total = s.read(ctx)
	return s.total
}

func (s *ProgressStore) read(ctx context.Context) int64 {
	raw, ok, err := s.storage.Read(ctx, s.key)
	if err != nil {
		s.logger.Warn("progress storage read failed", slog.String("key", s.key), slog.Any("error", err))
		return 0
	}
	if !ok {
		return 0
	}
	v, err := ParseTotal(raw)
	if err != nil {
		s.logger.Debug("ignoring unparsable progress value", slog.String("key", s.key), slog.String("value", raw))
		return 0
	}
	return v
}

// Get returns the current in-memory total.
func (s *ProgressStore) Get() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Add increments the total by delta, persists it and returns the new total.
// The in-memory value advances even if the write is rejected. A negative
// delta or one that would overflow the total leaves it unchanged.
func (s *ProgressStore) Add(ctx context.Context, delta int64) (int64, error) {
	if delta < 0 {
		return s.Get(), domain.ErrNegativeDelta
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if delta > math.MaxInt64-s.total {
		return s.total, domain.ErrTotalOverflow
	}
	s.total += delta
	if err := s.storage.Write(ctx, s.key, strconv.FormatInt(s.total, 10)); err != nil {
		s.logger.Warn("progress storage write failed",
			slog.String("key", s.key),
			slog.Int64("total", s.total),
			slog.Any("error", err))
	}
	return s.total, nil
}

// Progress returns the current total together with the campaign goal.
func (s *ProgressStore) Progress() domain.CampaignProgress {
	return domain.NewCampaignProgress(s.Get(), s.goal)
}

// ParseTotal parses a persisted total. Only plain ASCII digits are
// accepted: no sign, separators or surrounding whitespace.
func ParseTotal(raw string) (int64, error) {
	if raw == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseInt(raw, 10, 64)
}

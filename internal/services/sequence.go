package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"office-inventory/internal/repositories"
	"office-inventory/pkg/metrics"
)

const (
	IssueUIDPrefix  = "UID-"
	sequenceWidth   = 3
	counterKeySpace = "sequence:"
)

var errMalformedIdentifier = errors.New("latest identifier has no numeric suffix")

// Sequence names one identifier series. Identifiers are Prefix followed by
// a zero-padded counter; Source yields the latest one issued so far.
type Sequence struct {
	Name   string
	Prefix string
	Source repositories.IdentifierSource
}

// EquipmentSequence is the per-bucket series, e.g. OFN/ITC/INV/PC-001.
func EquipmentSequence(orgPrefix, bucket string, source repositories.IdentifierSource) Sequence {
	return Sequence{Name: bucket, Prefix: orgPrefix + "/" + bucket + "-", Source: source}
}

// IssueSequence is the global UID-001 series.
func IssueSequence(source repositories.IdentifierSource) Sequence {
	return Sequence{Name: "issue", Prefix: IssueUIDPrefix, Source: source}
}

// Sequencer hands out the next identifier of a sequence. It never fails:
// when the store cannot be read a timestamp identifier is returned.
type Sequencer interface {
	Next(ctx context.Context, seq Sequence) string
}

func formatIdentifier(prefix string, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, sequenceWidth, n)
}

// timestampFallback yields <prefix><unix millis>, strictly increasing
// within the process.
type timestampFallback struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func (f *timestampFallback) next(prefix string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.now().UnixMilli()
	if v <= f.last {
		v = f.last + 1
	}
	f.last = v
	return prefix + strconv.FormatInt(v, 10)
}

// ScanSequencer reads the newest identifier of the sequence and adds one.
// Two concurrent callers can read the same row and get the same value;
// nothing here serialises them.
type ScanSequencer struct {
	fallback *timestampFallback
	patterns sync.Map
	logger   *zap.Logger
}

func NewScanSequencer(logger *zap.Logger) *ScanSequencer {
	return &ScanSequencer{
		fallback: &timestampFallback{now: time.Now},
		logger:   logger,
	}
}

func (s *ScanSequencer) Next(ctx context.Context, seq Sequence) string {
	n, err := s.nextValue(ctx, seq)
	if err != nil {
		return s.fallbackIdentifier(seq, err)
	}
	metrics.ObserveIdentifier(seq.Name, metrics.ResultScan)
	return formatIdentifier(seq.Prefix, n)
}

func (s *ScanSequencer) fallbackIdentifier(seq Sequence, cause error) string {
	id := s.fallback.next(seq.Prefix)
	s.logger.Warn("Sequencer: falling back to timestamp identifier",
		zap.String("sequence", seq.Name),
		zap.String("identifier", id),
		zap.Error(cause),
	)
	metrics.ObserveIdentifier(seq.Name, metrics.ResultFallback)
	return id
}

// nextValue returns the counter the next identifier should carry.
func (s *ScanSequencer) nextValue(ctx context.Context, seq Sequence) (int64, error) {
	latest, err := seq.Source.LatestIdentifier(ctx, seq.Prefix)
	if err != nil {
		return 0, err
	}
	if latest == "" {
		return 1, nil
	}

	m := s.pattern(seq.Prefix).FindStringSubmatch(latest)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", errMalformedIdentifier, latest)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", errMalformedIdentifier, latest, err)
	}
	return n + 1, nil
}

func (s *ScanSequencer) pattern(prefix string) *regexp.Regexp {
	if re, ok := s.patterns.Load(prefix); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `(\d+)$`)
	s.patterns.Store(prefix, re)
	return re
}

// CounterSequencer keeps one atomic counter per sequence in the KV store,
// seeded once from the scanned maximum. KV failures degrade to scan.
type CounterSequencer struct {
	cache  repositories.CacheRepositoryInterface
	scan   *ScanSequencer
	logger *zap.Logger
}

func NewCounterSequencer(cache repositories.CacheRepositoryInterface, scan *ScanSequencer, logger *zap.Logger) *CounterSequencer {
	return &CounterSequencer{cache: cache, scan: scan, logger: logger}
}

func (s *CounterSequencer) Next(ctx context.Context, seq Sequence) string {
	key := counterKeySpace + seq.Prefix

	exists, err := s.cache.Exists(ctx, key)
	if err != nil {
		s.logger.Warn("Sequencer: counter unavailable, using scan", zap.String("sequence", seq.Name), zap.Error(err))
		return s.scan.Next(ctx, seq)
	}
	if !exists {
		start, err := s.scan.nextValue(ctx, seq)
		if err != nil {
			return s.scan.fallbackIdentifier(seq, err)
		}
		// another instance may have seeded it first; SetNX keeps theirs
		if _, err := s.cache.SetNX(ctx, key, start-1, 0); err != nil {
			s.logger.Warn("Sequencer: seeding counter failed, using scan", zap.String("sequence", seq.Name), zap.Error(err))
			return s.scan.Next(ctx, seq)
		}
	}

	n, err := s.cache.Incr(ctx, key)
	if err != nil {
		s.logger.Warn("Sequencer: counter increment failed, using scan", zap.String("sequence", seq.Name), zap.Error(err))
		return s.scan.Next(ctx, seq)
	}
	metrics.ObserveIdentifier(seq.Name, metrics.ResultCounter)
	return formatIdentifier(seq.Prefix, n)
}

// NewSequencer picks the strategy named by ID_STRATEGY.
func NewSequencer(strategy string, cache repositories.CacheRepositoryInterface, logger *zap.Logger) Sequencer {
	scan := NewScanSequencer(logger)
	if strategy == "counter" && cache != nil {
		return NewCounterSequencer(cache, scan, logger)
	}
	return scan
}

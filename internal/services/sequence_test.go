package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"office-inventory/internal/entities"
	"office-inventory/internal/repositories/memory"
)

type stubSource struct {
	latest string
	err    error
	calls  int
}

func (s *stubSource) LatestIdentifier(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.latest, s.err
}

type failingCache struct{ *memory.Cache }

func (failingCache) Exists(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestScanSequencer_EmptyBucketStartsAtOne(t *testing.T) {
	seq := NewScanSequencer(zap.NewNop())
	got := seq.Next(context.Background(), EquipmentSequence("OFN/ITC/INV", "PC", &stubSource{}))
	assert.Equal(t, "OFN/ITC/INV/PC-001", got)
}

func TestScanSequencer_Increments(t *testing.T) {
	seq := NewScanSequencer(zap.NewNop())
	cases := map[string]string{
		"UID-001":  "UID-002",
		"UID-009":  "UID-010",
		"UID-099":  "UID-100",
		"UID-999":  "UID-1000",
		"UID-1000": "UID-1001",
	}
	for latest, want := range cases {
		got := seq.Next(context.Background(), IssueSequence(&stubSource{latest: latest}))
		assert.Equal(t, want, got, "after %s", latest)
	}
}

func TestScanSequencer_ContiguousPerBucket(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Equipment()
	seq := NewScanSequencer(zap.NewNop())

	register := func(bucket string) string {
		id := seq.Next(ctx, EquipmentSequence("OFN/ITC/INV", bucket, repo))
		require.NoError(t, repo.CreateEquipment(ctx, entities.Equipment{
			ID: uuid.New(), UniqueID: id, InventoryType: bucket, CreatedAt: time.Now(),
		}))
		return id
	}

	for i := 1; i <= 12; i++ {
		assert.Equal(t, "OFN/ITC/INV/PC-"+pad3(i), register("PC"))
		if i%4 == 0 {
			// other buckets never affect PC numbering
			assert.Equal(t, "OFN/ITC/INV/UPS-"+pad3(i/4), register("UPS"))
		}
	}
	assert.Equal(t, "OFN/ITC/INV/Printer-001", register("Printer"))
}

func TestScanSequencer_StoreErrorFallsBack(t *testing.T) {
	seq := NewScanSequencer(zap.NewNop())
	src := &stubSource{err: errors.New("connection reset")}

	before := time.Now().UnixMilli()
	first := seq.Next(context.Background(), IssueSequence(src))
	second := seq.Next(context.Background(), IssueSequence(src))

	require.True(t, strings.HasPrefix(first, "UID-"))
	a, err := strconv.ParseInt(strings.TrimPrefix(first, "UID-"), 10, 64)
	require.NoError(t, err)
	b, err := strconv.ParseInt(strings.TrimPrefix(second, "UID-"), 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, a, before)
	assert.Greater(t, b, a, "fallback identifiers stay unique")
}

func TestScanSequencer_MalformedFallsBack(t *testing.T) {
	seq := NewScanSequencer(zap.NewNop())
	got := seq.Next(context.Background(), IssueSequence(&stubSource{latest: "UID-abc"}))
	assert.NotEqual(t, "UID-001", got)
	assert.Regexp(t, `^UID-\d{13,}$`, got)
}

func TestCounterSequencer_ContinuesFromScan(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache()
	src := &stubSource{latest: "OFN/ITC/INV/PC-041"}
	seq := NewCounterSequencer(cache, NewScanSequencer(zap.NewNop()), zap.NewNop())

	assert.Equal(t, "OFN/ITC/INV/PC-042", seq.Next(ctx, EquipmentSequence("OFN/ITC/INV", "PC", src)))
	assert.Equal(t, "OFN/ITC/INV/PC-043", seq.Next(ctx, EquipmentSequence("OFN/ITC/INV", "PC", src)))
	assert.Equal(t, 1, src.calls, "store is scanned only to seed the counter")

	assert.Equal(t, "UID-001", seq.Next(ctx, IssueSequence(&stubSource{})))
}

func TestCounterSequencer_CacheDownUsesScan(t *testing.T) {
	seq := NewCounterSequencer(failingCache{memory.NewCache()}, NewScanSequencer(zap.NewNop()), zap.NewNop())
	got := seq.Next(context.Background(), IssueSequence(&stubSource{latest: "UID-007"}))
	assert.Equal(t, "UID-008", got)
}

func TestNewSequencer(t *testing.T) {
	assert.IsType(t, &ScanSequencer{}, NewSequencer("scan", memory.NewCache(), zap.NewNop()))
	assert.IsType(t, &CounterSequencer{}, NewSequencer("counter", memory.NewCache(), zap.NewNop()))
	assert.IsType(t, &ScanSequencer{}, NewSequencer("counter", nil, zap.NewNop()))
}

func pad3(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

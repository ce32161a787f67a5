package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshForMatch_JitterWithinBounds(t *testing.T) {
	repo := NewSeedRepository()
	svc := NewOddsService(repo, time.Millisecond, 0.05)

	base := repo.BookmakerOdds()

	// 多轮刷新：扰动始终以基准报价为中心，不累积
	for round := 0; round < 20; round++ {
		refreshed, err := svc.RefreshForMatch(context.Background(), "1")
		require.NoError(t, err)
		require.Len(t, refreshed, len(base))

		for i, b := range refreshed {
			assert.Equal(t, base[i].ID, b.ID)
			assert.LessOrEqual(t, math.Abs(b.Odds-base[i].Odds), 0.05,
				"bookmaker %s odds drifted beyond jitter", b.ID)

			// 刷新不改可用性和注额
			assert.Equal(t, base[i].Available, b.Available)
			assert.Equal(t, base[i].Stake, b.Stake)
		}
	}
}

func TestRefreshForMatch_UnknownMatch(t *testing.T) {
	svc := NewOddsService(NewSeedRepository(), time.Millisecond, 0.05)

	_, err := svc.RefreshForMatch(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRefreshForMatch_ContextCancel(t *testing.T) {
	svc := NewOddsService(NewSeedRepository(), time.Second, 0.05)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.RefreshForMatch(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRefreshForMatch_DoesNotMutateBase(t *testing.T) {
	repo := NewSeedRepository()
	svc := NewOddsService(repo, time.Millisecond, 0.05)

	_, err := svc.RefreshForMatch(context.Background(), "1")
	require.NoError(t, err)

	// 仓库里的基准报价保持种子值
	base := repo.BookmakerOdds()
	assert.Equal(t, 2.35, base[0].Odds)
	assert.Equal(t, "eurobet", base[0].ID)
}

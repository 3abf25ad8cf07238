package service

import (
	"context"
	"math"
	"testing"

	"StockDLC/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsExpiringWithin_Window(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, in := range []NewItem{
		{Name: "Demain", Category: "Fruits", Perishable: true, DLC: dayOffset(1), Location: "Cuisine"},
		{Name: "Aujourdhui", Category: "Fruits", Perishable: true, DLC: dayOffset(0), Location: "Cuisine"},
		{Name: "Plus tard", Category: "Fruits", Perishable: true, DLC: dayOffset(8), Location: "Cuisine"},
		{Name: "Hier", Category: "Fruits", Perishable: true, DLC: dayOffset(-1), Location: "Cuisine"},
		{Name: "Conserve", Category: "Épicerie", Perishable: false, DLC: dayOffset(0), Location: "Cellier"},
	} {
		_, err := svc.CreateItem(ctx, in)
		require.NoError(t, err)
	}

	got, err := svc.ItemsExpiringWithin(ctx, 7)
	require.NoError(t, err)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "Aujourdhui", got[0].Name)
		assert.Equal(t, dayOffset(0), got[0].DLC.String())
		assert.Equal(t, "Demain", got[1].Name)
	}

	// граница включительно
	got, err = svc.ItemsExpiringWithin(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = svc.ItemsExpiringWithin(ctx, 0)
	require.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Aujourdhui", got[0].Name)
	}
}

func TestItemsExpiringWithin_NegativeDays(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.ItemsExpiringWithin(context.Background(), -1)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestItemsExpiringWithin_WindowUpperBound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, NewItem{Name: "Demain", Category: "Viandes", Perishable: true, DLC: "2025-10-26", Location: "Frigo"})
	require.NoError(t, err)

	got, err := svc.ItemsExpiringWithin(ctx, MaxExpiryWindowDays)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	for _, days := range []int{MaxExpiryWindowDays + 1, math.MaxInt64} {
		_, err := svc.ItemsExpiringWithin(ctx, days)
		assert.True(t, apperr.IsCode(err, apperr.CodeValidation), "days=%d: %v", days, err)
	}
}

func TestItemsExpiringWithin_EmptyStore(t *testing.T) {
	svc, _ := newTestService(t)
	got, err := svc.ItemsExpiringWithin(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "2025-10-25", svc.Today().String())
}

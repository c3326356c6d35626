package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductPricePerUnit(t *testing.T) {
	p := Product{Price: 10, PackageQuantity: 0.5}
	ppu, ok := p.PricePerUnit()
	require.True(t, ok)
	assert.Equal(t, 20.0, ppu)

	_, ok = Product{Price: 10}.PricePerUnit()
	assert.False(t, ok)
}

func TestProductApplyDiscount(t *testing.T) {
	p := Product{Price: 5}
	assert.Equal(t, 5.0, p.EffectivePrice())
	assert.False(t, p.HasDiscount())

	p.ApplyDiscount(20)
	require.NotNil(t, p.DiscountPercentage)
	require.NotNil(t, p.DiscountedPrice)
	assert.Equal(t, 20, *p.DiscountPercentage)
	assert.InDelta(t, 4.0, p.EffectivePrice(), 1e-9)
	assert.LessOrEqual(t, *p.DiscountedPrice, p.Price)
	assert.True(t, p.HasDiscount())

	z := Product{Price: 3}
	z.ApplyDiscount(0)
	assert.Equal(t, 3.0, z.EffectivePrice())
	assert.False(t, z.HasDiscount())
}

func TestProductCloneDoesNotShare(t *testing.T) {
	p := Product{Price: 10}
	p.ApplyDiscount(10)
	c := p.Clone()
	*c.DiscountPercentage = 99
	*c.DiscountedPrice = 0
	assert.Equal(t, 10, *p.DiscountPercentage)
	assert.InDelta(t, 9.0, *p.DiscountedPrice, 1e-9)
}

func TestDiscountIsActiveOn(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse(DateLayout, s)
		require.NoError(t, err)
		return d
	}
	d := Discount{FromDate: day("2024-01-01"), ToDate: day("2024-01-03")}

	assert.False(t, d.IsActiveOn(day("2023-12-31")))
	assert.True(t, d.IsActiveOn(day("2024-01-01")))
	assert.True(t, d.IsActiveOn(day("2024-01-02")))
	assert.True(t, d.IsActiveOn(day("2024-01-03")))
	assert.False(t, d.IsActiveOn(day("2024-01-04")))
	assert.False(t, d.IsActiveOn(time.Time{}))

	open := Discount{FromDate: day("2024-01-01")}
	assert.False(t, open.IsActiveOn(day("2024-01-02")))
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 1e-9

func TestCalculatePrizesSplitsPoolAfterHouseCut(t *testing.T) {
	info := CalculatePrizes(1000, 2, 0.10)

	assert.InDelta(t, 100.0, info.HouseCut, delta)
	assert.InDelta(t, 900.0, info.TotalPrize, delta)
	assert.InDelta(t, 450.0, info.PrizePerWinner, delta)
	assert.InDelta(t, 1000.0, info.TotalPool, delta)
}

func TestCalculatePrizesSingleWinnerTakesWholePrizePool(t *testing.T) {
	info := CalculatePrizes(200, 1, 0.10)

	assert.InDelta(t, 20.0, info.HouseCut, delta)
	assert.InDelta(t, 180.0, info.TotalPrize, delta)
	assert.InDelta(t, 180.0, info.PrizePerWinner, delta)
}

func TestCalculatePrizesZeroWinners(t *testing.T) {
	info := CalculatePrizes(1000, 0, 0.10)

	assert.InDelta(t, 100.0, info.HouseCut, delta)
	assert.InDelta(t, 900.0, info.TotalPrize, delta)
	assert.Zero(t, info.PrizePerWinner)
}

func TestCalculatePrizesEmptyPoolIsAllZeros(t *testing.T) {
	for _, winners := range []int{0, 1, 5} {
		info := CalculatePrizes(0, winners, 0.10)

		assert.Zero(t, info.HouseCut)
		assert.Zero(t, info.TotalPrize)
		assert.Zero(t, info.PrizePerWinner)
		assert.Zero(t, info.TotalPool)
	}
}

func TestCalculatePrizesHonorsConfiguredPercentage(t *testing.T) {
	info := CalculatePrizes(1000, 4, 0.25)

	assert.InDelta(t, 250.0, info.HouseCut, delta)
	assert.InDelta(t, 750.0, info.TotalPrize, delta)
	assert.InDelta(t, 187.5, info.PrizePerWinner, delta)
}

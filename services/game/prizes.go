package game

import game_models "github.com/edevAr/Bingo-backend/models/game"

// CalculatePrizes splits a pool among winnerCount winners after retaining
// the house percentage. Pure: an empty pool yields all zeros regardless of
// winner count.
func CalculatePrizes(poolTotal float64, winnerCount int, housePercentage float64) game_models.PrizeInfo {
	if poolTotal == 0 {
		return game_models.PrizeInfo{}
	}

	houseCut := poolTotal * housePercentage
	prizePool := poolTotal - houseCut

	perWinner := 0.0
	if winnerCount > 0 {
		perWinner = prizePool / float64(winnerCount)
	}

	return game_models.PrizeInfo{
		TotalPrize:     prizePool,
		PrizePerWinner: perWinner,
		HouseCut:       houseCut,
		TotalPool:      poolTotal,
	}
}

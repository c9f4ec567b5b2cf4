package game

import (
	"log"

	game_constants "github.com/edevAr/Bingo-backend/constants/game"
)

// drawNumber produces the next unique number for a room within
// [cfg.MinNumber, cfg.MaxNumber] and records it into the room's drawn
// set/sequence. When the range is exhausted the cycle is cleared and
// drawing continues (a wraparound, not an error). Caller holds c.mu.
func (c *Coordinator) drawNumber(st *roomState) int {
	min, max := c.cfg.MinNumber, c.cfg.MaxNumber
	total := max - min + 1

	if len(st.drawn) >= total {
		st.drawn = make(map[int]struct{}, total)
		st.sequence = st.sequence[:0]
		log.Printf("[DRAW] Todos los números han sido generados en sala %d. Reiniciando ciclo...", st.id)
	}

	// Near exhaustion, enumerate the undrawn values and pick uniformly:
	// rejection sampling degrades as the undrawn set shrinks.
	remaining := total - len(st.drawn)
	if remaining <= game_constants.LOW_REMAINING_THRESHOLD {
		available := make([]int, 0, remaining)
		for i := min; i <= max; i++ {
			if _, taken := st.drawn[i]; !taken {
				available = append(available, i)
			}
		}
		number := available[c.rng.Intn(len(available))]
		st.record(number)
		return number
	}

	// Common case: rejection-sample with a retry bound, then fall back to
	// a linear scan for the first undrawn value so the draw always
	// terminates.
	var number int
	for attempts := 0; ; attempts++ {
		if attempts >= game_constants.MAX_DRAW_ATTEMPTS {
			for i := min; i <= max; i++ {
				if _, taken := st.drawn[i]; !taken {
					number = i
					break
				}
			}
			break
		}
		number = c.rng.Intn(total) + min
		if _, taken := st.drawn[number]; !taken {
			break
		}
	}

	st.record(number)
	return number
}

func (st *roomState) record(number int) {
	st.drawn[number] = struct{}{}
	st.sequence = append(st.sequence, number)
}

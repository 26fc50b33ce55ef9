package poker

import "pokerrooms-server/pkg/deck"

// wheel is A-5-4-3-2, the only straight where the ace plays low
var wheel = []int{deck.Ace, 5, 4, 3, 2}

// isStraight checks unique ranks sorted high-to-low for five in a row
func isStraight(uniqueRanks []int) bool {
	if len(uniqueRanks) < 5 {
		return false
	}

	for i := 0; i < len(uniqueRanks)-4; i++ {
		if uniqueRanks[i]-uniqueRanks[i+4] == 4 {
			return true
		}
	}

	return isWheel(uniqueRanks)
}

func isWheel(uniqueRanks []int) bool {
	for _, want := range wheel {
		found := false
		for _, rank := range uniqueRanks {
			if rank == want {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

package deck

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// BlackjackScore returns the best blackjack score for the hand.
// Aces start at 11 and are demoted to 1, one at a time, while the total
// is over 21. A hand that cannot score 21 or less is a bust and the
// busted total is returned.
func (h Hand) BlackjackScore() int {
	score := 0
	aces := 0
	for _, c := range h {
		score += c.BlackjackValue()
		if c.Rank == Ace {
			aces++
		}
	}

	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

package doublelife

import "doublelife-server/internal/rng"

// InteractionOption is one excuse the player can offer during an
// interrogation. Risk is the suspicion added on failure; SuccessChance is
// the probability the excuse holds.
type InteractionOption struct {
	Text          string  `json:"text"`
	Risk          int     `json:"risk"`
	SuccessChance float64 `json:"successChance"`
}

// InteractionEvent is an evening interrogation from Sarah or Leo
type InteractionEvent struct {
	ID      string               `json:"id"`
	Speaker string               `json:"speaker"`
	Text    string               `json:"text"`
	Options []*InteractionOption `json:"options"`
}

var eveningEvents = []*InteractionEvent{
	{
		ID:      "sarah_withdrawals",
		Speaker: "Sarah",
		Text:    "I checked the account. Why are we withdrawing cash so often?",
		Options: []*InteractionOption{
			{Text: "Identity theft scare. I moved it to a secure account.", Risk: 10, SuccessChance: 0.7},
			{Text: "I'm planning a surprise for your birthday.", Risk: 30, SuccessChance: 0.4},
			{Text: "Just mind your own business, Sarah.", Risk: 50, SuccessChance: 0.1},
		},
	},
	{
		ID:      "leo_crying",
		Speaker: "Leo",
		Text:    "Daddy, why were you crying in the car when you picked me up?",
		Options: []*InteractionOption{
			{Text: "It was just hay fever, buddy. Dust in my eyes.", Risk: 5, SuccessChance: 0.9},
			{Text: "I was listening to a sad song on the radio.", Risk: 10, SuccessChance: 0.8},
			{Text: "Daddy's just tired. Go to your room.", Risk: 20, SuccessChance: 0.3},
		},
	},
	{
		ID:      "sarah_smell",
		Speaker: "Sarah",
		Text:    "You smell like that dive bar downtown. Please tell me you aren't gambling again.",
		Options: []*InteractionOption{
			{Text: "I just stopped to use the bathroom.", Risk: 25, SuccessChance: 0.5},
			{Text: "A client meeting ran late. He picked the place.", Risk: 15, SuccessChance: 0.7},
			{Text: "You're imagining things.", Risk: 40, SuccessChance: 0.2},
		},
	},
	{
		ID:      "leo_park",
		Speaker: "Leo",
		Text:    "Can we go to the park tomorrow? You're never home anymore.",
		Options: []*InteractionOption{
			{Text: "I promise, this weekend.", Risk: 5, SuccessChance: 0.8},
			{Text: "I have to work to buy you toys, Leo.", Risk: 10, SuccessChance: 0.6},
			{Text: "Maybe. Ask your mother.", Risk: 15, SuccessChance: 0.4},
		},
	},
	{
		ID:      "sarah_lighter",
		Speaker: "Sarah",
		Text:    "I found a lighter in your pocket. You don't smoke.",
		Options: []*InteractionOption{
			{Text: "Found it on the sidewalk. Thought it was cool.", Risk: 20, SuccessChance: 0.6},
			{Text: "Holding it for a coworker.", Risk: 10, SuccessChance: 0.8},
			{Text: "It's not mine.", Risk: 30, SuccessChance: 0.3},
		},
	},
	{
		ID:      "sarah_phone",
		Speaker: "Sarah",
		Text:    "Who is 'V' in your phone contacts? They keep calling.",
		Options: []*InteractionOption{
			{Text: "Spam caller. I just saved it to block it.", Risk: 15, SuccessChance: 0.7},
			{Text: "New vendor from work.", Risk: 10, SuccessChance: 0.8},
			{Text: "Nobody.", Risk: 40, SuccessChance: 0.1},
		},
	},
	{
		ID:      "leo_drawing",
		Speaker: "Leo",
		Text:    "I drew a picture of us. Why do you look sad in it?",
		Options: []*InteractionOption{
			{Text: "I'm not sad, I'm just focused.", Risk: 5, SuccessChance: 0.9},
			{Text: "That's just how Daddy's face looks.", Risk: 10, SuccessChance: 0.7},
			{Text: "Draw something else.", Risk: 25, SuccessChance: 0.2},
		},
	},
	{
		ID:      "sarah_hands",
		Speaker: "Sarah",
		Text:    "Why are your hands shaking?",
		Options: []*InteractionOption{
			{Text: "Too much coffee.", Risk: 5, SuccessChance: 0.8},
			{Text: "Low blood sugar. I need to eat.", Risk: 5, SuccessChance: 0.9},
			{Text: "I'm fine. Stop staring.", Risk: 30, SuccessChance: 0.2},
		},
	},
}

// pickEvent returns a random evening interrogation
func pickEvent(r rng.Generator) *InteractionEvent {
	return eveningEvents[r.Intn(len(eveningEvents))]
}

// resolveOption rolls an excuse. Success relieves a little suspicion; a
// failed excuse charges the option's full risk.
func resolveOption(option *InteractionOption, roll float64) (success bool, suspicionDelta int) {
	if roll < option.SuccessChance {
		return true, -suspicionReductionCall
	}

	return false, option.Risk
}

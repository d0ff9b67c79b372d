package schedule

import "math/rand"

// Feedback is a motivational blurb chosen from the tier matching the
// user's success rate.
type Feedback struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type feedbackTier struct {
	title    string
	messages []string
}

var feedbackTiers = []struct {
	below int
	tier  feedbackTier
}{
	{25, feedbackTier{
		title: "Needs Improvement",
		messages: []string{
			"Every great journey starts with a single step. Missed a few? That's okay! Today is a fresh start!",
			"Progress isn't about being perfect, it's about showing up. Let's turn things around, one step at a time!",
			"Failure is just a lesson in disguise. You've got this! Pick up where you left off and keep going!",
		},
	}},
	{50, feedbackTier{
		title: "Keep Going",
		messages: []string{
			"You're on the right track! A little more consistency and you'll be unstoppable!",
			"Small steps still lead to big destinations. Keep pushing forward!",
			"You're getting there! Every effort counts, and your progress is already showing!",
		},
	}},
	{75, feedbackTier{
		title: "Great Work",
		messages: []string{
			"Great job! A little more effort and you'll be at the top of your game!",
			"Consistency is key, and you're proving it! Keep going, you're closer than you think!",
			"Your hard work is paying off! Stay focused and keep up the momentum!",
		},
	}},
	{101, feedbackTier{
		title: "Outstanding",
		messages: []string{
			"Wow! You're on fire! Keep this energy up and the sky's the limit!",
			"Perfection is a habit, and you're proving it every day! Keep shining!",
			"You're setting a new standard for excellence! Keep up the amazing work!",
		},
	}},
}

// FeedbackFor picks the tier for a success rate and one of its messages at
// random from the given source.
func FeedbackFor(successRate int, rng *rand.Rand) Feedback {
	for _, entry := range feedbackTiers {
		if successRate < entry.below {
			return Feedback{
				Title:   entry.tier.title,
				Message: entry.tier.messages[rng.Intn(len(entry.tier.messages))],
			}
		}
	}
	// successRate above 100 is clamped into the top tier
	top := feedbackTiers[len(feedbackTiers)-1].tier
	return Feedback{Title: top.title, Message: top.messages[rng.Intn(len(top.messages))]}
}

package chat

// The classification and crisis tables below are deliberately plain data
// so they can be audited and tested without reading control flow.

// systemPrompt is the fixed system prompt sent with every upstream call.
const systemPrompt = `You are MindMate, a compassionate mental wellbeing companion designed to support young adults.

Core Principles:
- Respond with empathy, kindness, and genuine care
- Offer practical coping strategies and emotional support
- Never provide medical advice or diagnose conditions
- If someone mentions crisis, self-harm, or suicidal thoughts, immediately suggest emergency resources
- Keep responses warm, supportive, and age-appropriate for young adults
- Encourage healthy habits like journaling, breathing exercises, and self-care

Emergency Resources to Share When Needed:
- Crisis Text Line: Text HOME to 741741
- National Suicide Prevention Lifeline: 988
- International Association for Suicide Prevention: https://www.iasp.info/resources/Crisis_Centres/

Your responses should be:
- Supportive and validating
- 2-3 paragraphs maximum
- Include actionable suggestions when appropriate
- Encourage the user's strengths and resilience`

// crisisKeywords are matched case-insensitively as substrings of the raw
// user message. Any hit sets the crisis flag and appends crisisResources
// to the reply.
var crisisKeywords = []string{
	"suicide",
	"kill myself",
	"end it all",
	"hurt myself",
	"self-harm",
	"self harm",
	"want to die",
	"crisis",
}

// crisisResources is the fixed emergency-resources text appended to any
// reply whose triggering message matched a crisis keyword.
const crisisResources = `

I'm really concerned about you and want you to know that you're not alone. Please reach out for immediate help:

Emergency Resources:
- Crisis Text Line: Text HOME to 741741
- National Suicide Prevention Lifeline: Call or text 988
- Emergency: Call 911

You matter, and there are people who want to help you through this difficult time.`

// fallbackCategory maps a set of trigger keywords to a list of canned
// responses. Categories are checked in order; the first keyword hit wins.
type fallbackCategory struct {
	Name      string
	Keywords  []string
	Responses []string
}

var fallbackCategories = []fallbackCategory{
	{
		Name:     "stressed",
		Keywords: []string{"stressed", "stress", "overwhelmed", "pressure"},
		Responses: []string{
			"I understand you're feeling stressed. Try taking three deep breaths with me: inhale for 4 counts, hold for 7, exhale for 8. Stress is temporary, and you have the strength to work through this. What's one small thing you could do right now to feel a bit better?",
			"Stress has a way of making everything feel urgent at once. Could you pick just one thing to set down for the next hour? The breathing exercise on the Breathe tab is a good companion for moments like this.",
		},
	},
	{
		Name:     "anxious",
		Keywords: []string{"anxious", "anxiety", "nervous", "worried", "panic"},
		Responses: []string{
			"Anxiety can feel overwhelming, but you're not alone in this. Ground yourself by naming 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste. Would you like to try some breathing exercises or talk about what's making you anxious?",
			"When anxiety spikes, your body is trying to protect you, even if the alarm is louder than it needs to be. A slow exhale tells it the danger has passed. Want to tell me what's been on your mind?",
		},
	},
	{
		Name:     "sad",
		Keywords: []string{"sad", "down", "depressed", "lonely", "unhappy"},
		Responses: []string{
			"I'm sorry you're feeling sad. It's okay to feel this way - your emotions are valid. Sometimes sadness helps us process important experiences. Would journaling help? Writing down your thoughts can sometimes bring clarity and relief.",
			"Thank you for telling me. Sadness deserves room, not a deadline. If it helps, write a few lines in your journal about what today has felt like - naming a feeling often softens it a little.",
		},
	},
	{
		Name:     "happy",
		Keywords: []string{"happy", "glad", "joy", "excited", "grateful"},
		Responses: []string{
			"I'm so glad to hear you're feeling good! It's wonderful when we can appreciate positive moments. What's bringing you joy today? Celebrating these feelings can help us remember them during tougher times.",
			"That's lovely to hear! Moments like this are worth keeping - maybe log this mood so future-you can look back on it on a harder day.",
		},
	},
	{
		Name:     "tired",
		Keywords: []string{"tired", "exhausted", "fatigued", "sleepy", "drained"},
		Responses: []string{
			"Being tired can affect everything - your mood, thoughts, and energy. Are you getting enough sleep? Sometimes tiredness is our body's way of asking for rest or self-care. What would help you feel more energized?",
			"Rest is not a reward you have to earn. If your body is asking for it, that's information worth listening to. Is there anything keeping you from sleeping well lately?",
		},
	},
}

// defaultResponses are used when no category keyword matches.
var defaultResponses = []string{
	"Thank you for sharing with me. I'm here to listen and support you. Sometimes it helps to talk through what we're experiencing. Would you like to tell me more about how you're feeling today?",
	"I'm here with you. Whatever you're carrying today, you don't have to sort it out alone. What would feel most helpful right now - talking it through, journaling, or a short breathing exercise?",
}

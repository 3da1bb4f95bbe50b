package prompt

// Template is a loaded horoscope prompt template.
type Template string

// DefaultTemplate is used whenever no template can be loaded from the configured source.
const DefaultTemplate Template = `You are a professional astrologer. Generate a daily horoscope for {zodiac_sign}.

User Profile:
- Zodiac Sign: {zodiac_sign}
- Element: {element}
- Key Traits: {traits}
- Focus Areas: {focus_areas}
- Today's Date: {current_date}
- User Name: {user_name}

Generate a personalized, encouraging daily horoscope (2 paragraphs, 4-6 sentences each) that:
- Feels personal and relevant
- Addresses relationships, career, or personal growth
- Uses a warm, mystical tone
- Provides actionable advice
- Is written for American audience

Make it inspiring and positive while being specific to {zodiac_sign} traits.
`

package zodiac

import "time"

// Sign is one of the twelve tropical zodiac signs.
type Sign string

const (
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
)

// Range is the calendar window assigned to a sign. Every range starts in one month
// and ends in the following one.
type Range struct {
	Sign       Sign
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// Traits is the static prompt context attached to a sign.
type Traits struct {
	Element    string   `json:"element"`
	Traits     []string `json:"traits"`
	FocusAreas []string `json:"focus_areas"`
}

// Ranges lists the sign windows in evaluation order.
var Ranges = []Range{
	{Capricorn, time.December, 22, time.January, 19},
	{Aquarius, time.January, 20, time.February, 18},
	{Pisces, time.February, 19, time.March, 20},
	{Aries, time.March, 21, time.April, 19},
	{Taurus, time.April, 20, time.May, 20},
	{Gemini, time.May, 21, time.June, 20},
	{Cancer, time.June, 21, time.July, 22},
	{Leo, time.July, 23, time.August, 22},
	{Virgo, time.August, 23, time.September, 22},
	{Libra, time.September, 23, time.October, 22},
	{Scorpio, time.October, 23, time.November, 21},
	{Sagittarius, time.November, 22, time.December, 21},
}

var traitsBySign = map[Sign]Traits{
	Aries: {
		Element:    "Fire",
		Traits:     []string{"energetic", "ambitious", "independent", "confident"},
		FocusAreas: []string{"career", "leadership", "new beginnings"},
	},
	Taurus: {
		Element:    "Earth",
		Traits:     []string{"reliable", "practical", "determined", "loyal"},
		FocusAreas: []string{"finances", "stability", "relationships"},
	},
	Gemini: {
		Element:    "Air",
		Traits:     []string{"curious", "adaptable", "communicative", "witty"},
		FocusAreas: []string{"communication", "learning", "social connections"},
	},
	Cancer: {
		Element:    "Water",
		Traits:     []string{"nurturing", "intuitive", "emotional", "protective"},
		FocusAreas: []string{"family", "home", "emotions", "security"},
	},
	Leo: {
		Element:    "Fire",
		Traits:     []string{"confident", "generous", "creative", "dramatic"},
		FocusAreas: []string{"creativity", "romance", "self-expression", "recognition"},
	},
	Virgo: {
		Element:    "Earth",
		Traits:     []string{"analytical", "practical", "helpful", "perfectionist"},
		FocusAreas: []string{"health", "work", "organization", "service"},
	},
	Libra: {
		Element:    "Air",
		Traits:     []string{"diplomatic", "balanced", "social", "artistic"},
		FocusAreas: []string{"relationships", "harmony", "beauty", "justice"},
	},
	Scorpio: {
		Element:    "Water",
		Traits:     []string{"intense", "passionate", "mysterious", "transformative"},
		FocusAreas: []string{"transformation", "intimacy", "power", "psychology"},
	},
	Sagittarius: {
		Element:    "Fire",
		Traits:     []string{"adventurous", "optimistic", "philosophical", "free-spirited"},
		FocusAreas: []string{"travel", "education", "philosophy", "freedom"},
	},
	Capricorn: {
		Element:    "Earth",
		Traits:     []string{"ambitious", "disciplined", "responsible", "practical"},
		FocusAreas: []string{"career", "goals", "authority", "structure"},
	},
	Aquarius: {
		Element:    "Air",
		Traits:     []string{"innovative", "independent", "humanitarian", "eccentric"},
		FocusAreas: []string{"friendships", "innovation", "social causes", "future"},
	},
	Pisces: {
		Element:    "Water",
		Traits:     []string{"intuitive", "compassionate", "artistic", "spiritual"},
		FocusAreas: []string{"spirituality", "creativity", "compassion", "dreams"},
	},
}

// DefaultTraits is returned for signs missing from the traits table.
func DefaultTraits() Traits {
	return Traits{
		Element:    "Unknown",
		Traits:     []string{"unique"},
		FocusAreas: []string{"general life"},
	}
}

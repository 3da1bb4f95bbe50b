package zodiac

import (
	"log/slog"
	"slices"
	"time"

	apperrors "github.com/yanqian/ai-horoscope/pkg/errors"
	"github.com/yanqian/ai-horoscope/pkg/util"
)

// DateLayout is the only accepted birth date format.
const DateLayout = "2006-01-02"

const minBirthYear = 1900

// Validation messages, returned as invalid_input AppErrors.
const (
	MsgInvalidFormat = "Invalid date format. Use YYYY-MM-DD"
	MsgFutureDate    = "Birth date cannot be in the future"
	MsgBefore1900    = "Birth date must be after 1900"
)

// Classifier derives zodiac signs from birth dates. It holds no mutable state and is
// safe for concurrent use.
type Classifier struct {
	logger *slog.Logger
	now    util.Clock
}

// NewClassifier builds a classifier that compares birth dates against the server clock.
func NewClassifier(logger *slog.Logger) *Classifier {
	return NewClassifierWithClock(logger, time.Now)
}

// NewClassifierWithClock is NewClassifier with an injectable clock.
func NewClassifierWithClock(logger *slog.Logger, now util.Clock) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{logger: logger.With("component", "zodiac.classifier"), now: now}
}

// Validate parses raw and applies the format, future and minimum year checks in that order.
func (c *Classifier) Validate(raw string) (time.Time, error) {
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		c.logger.Warn("invalid birth date format", "birth_date", raw)
		return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgInvalidFormat, nil)
	}
	if date.After(util.DateOnly(c.now())) {
		return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgFutureDate, nil)
	}
	if date.Year() < minBirthYear {
		return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgBefore1900, nil)
	}
	return date, nil
}

// Classify validates raw and returns its sign together with the sign's traits.
func (c *Classifier) Classify(raw string) (Sign, Traits, error) {
	date, err := c.Validate(raw)
	if err != nil {
		return "", Traits{}, err
	}
	sign := c.SignFor(date.Month(), date.Day())
	c.logger.Debug("calculated zodiac sign", "sign", sign, "birth_date", raw)
	return sign, TraitsFor(sign), nil
}

// SignFor maps a calendar day to its sign. The end-month check relies on every range
// spanning exactly two adjacent months.
func (c *Classifier) SignFor(month time.Month, day int) Sign {
	if sign, ok := lookup(month, day); ok {
		return sign
	}
	c.logger.Warn("could not determine zodiac sign, defaulting to Capricorn", "month", int(month), "day", day)
	return Capricorn
}

func lookup(month time.Month, day int) (Sign, bool) {
	for _, r := range Ranges {
		if r.Sign == Capricorn {
			if (month == time.December && day >= 22) || (month == time.January && day <= 19) {
				return Capricorn, true
			}
			continue
		}
		if (month == r.StartMonth && day >= r.StartDay) || (month == r.EndMonth && day <= r.EndDay) {
			return r.Sign, true
		}
	}
	return "", false
}

// TraitsFor returns the traits of sign, or DefaultTraits for unknown signs.
func TraitsFor(sign Sign) Traits {
	traits, ok := traitsBySign[sign]
	if !ok {
		return DefaultTraits()
	}
	return Traits{
		Element:    traits.Element,
		Traits:     slices.Clone(traits.Traits),
		FocusAreas: slices.Clone(traits.FocusAreas),
	}
}

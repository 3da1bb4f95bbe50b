package zodiac

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/ai-horoscope/pkg/errors"
)

func newTestClassifier() *Classifier {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClassifierWithClock(logger, func() time.Time {
		return time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	})
}

func TestClassifyKnownDates(t *testing.T) {
	c := newTestClassifier()
	cases := map[string]Sign{
		"2024-01-15": Capricorn,
		"2024-01-20": Aquarius,
		"2000-12-22": Capricorn,
		"2000-12-21": Sagittarius,
		"1990-06-15": Gemini,
		"1988-02-29": Pisces,
		"1975-07-23": Leo,
		"1975-07-22": Cancer,
	}
	for date, want := range cases {
		t.Run(date, func(t *testing.T) {
			sign, traits, err := c.Classify(date)
			require.NoError(t, err)
			require.Equal(t, want, sign)
			require.NotEqual(t, "Unknown", traits.Element)
		})
	}
}

func TestSignForPartitionsEveryCalendarDay(t *testing.T) {
	c := newTestClassifier()
	counts := make(map[Sign]int)

	// 2024 is a leap year, so this walks all 366 (month, day) pairs.
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == 2024 {
		sign, ok := lookup(day.Month(), day.Day())
		require.True(t, ok, "no sign for %s", day.Format(DateLayout))

		matches := 0
		for _, r := range Ranges {
			if inRange(r, day.Month(), day.Day()) {
				matches++
				require.Equal(t, r.Sign, sign, "day %s", day.Format(DateLayout))
			}
		}
		require.Equal(t, 1, matches, "day %s must fall in exactly one range", day.Format(DateLayout))

		require.Equal(t, sign, c.SignFor(day.Month(), day.Day()))
		counts[sign]++
		day = day.AddDate(0, 0, 1)
	}

	require.Len(t, counts, 12)
	total := 0
	for _, n := range counts {
		total += n
	}
	require.Equal(t, 366, total)
}

// The two-branch day check in lookup is only correct while every range starts in one
// month and ends in the next. Editing the table so that a range spans three months
// must fail here instead of silently misclassifying days.
func TestRangesSpanAdjacentMonths(t *testing.T) {
	require.Len(t, Ranges, 12)
	for _, r := range Ranges {
		next := r.StartMonth%12 + 1
		require.Equal(t, next, r.EndMonth, "range for %s", r.Sign)
	}
}

func TestValidateErrorsInOrder(t *testing.T) {
	c := newTestClassifier()
	cases := []struct {
		input string
		msg   string
	}{
		{"15-01-1990", MsgInvalidFormat},
		{"1990/01/15", MsgInvalidFormat},
		{"2023-02-30", MsgInvalidFormat},
		{"", MsgInvalidFormat},
		{" 2000-03-10", MsgInvalidFormat},
		{"2000-03-10 ", MsgInvalidFormat},
		{"2999-01-01", MsgFutureDate},
		{"2025-03-11", MsgFutureDate},
		{"1850-01-01", MsgBefore1900},
		{"1899-12-31", MsgBefore1900},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := c.Validate(tc.input)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
			require.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestValidateAcceptsToday(t *testing.T) {
	c := newTestClassifier()
	date, err := c.Validate("2025-03-10")
	require.NoError(t, err)
	require.Equal(t, 2025, date.Year())

	_, err = c.Validate("1900-01-01")
	require.NoError(t, err)
}

func TestTraitsFor(t *testing.T) {
	leo := TraitsFor(Leo)
	require.Equal(t, "Fire", leo.Element)
	require.Equal(t, []string{"confident", "generous", "creative", "dramatic"}, leo.Traits)

	leo.Traits[0] = "mutated"
	require.Equal(t, "confident", TraitsFor(Leo).Traits[0])

	require.Equal(t, DefaultTraits(), TraitsFor(Sign("Ophiuchus")))
}

func inRange(r Range, month time.Month, day int) bool {
	start := int(r.StartMonth)*100 + r.StartDay
	end := int(r.EndMonth)*100 + r.EndDay
	v := int(month)*100 + day
	if start <= end {
		return v >= start && v <= end
	}
	return v >= start || v <= end
}

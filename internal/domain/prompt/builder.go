package prompt

import (
	"strings"
	"time"

	"github.com/yanqian/ai-horoscope/internal/domain/zodiac"
	"github.com/yanqian/ai-horoscope/pkg/util"
)

// DateFormat renders the current date the way the prompt expects it, e.g. "January 05, 2024".
const DateFormat = "January 02, 2006"

// DefaultUserName substitutes for a missing user name.
const DefaultUserName = "dear friend"

// Input carries everything a template can reference.
type Input struct {
	Sign     zodiac.Sign
	Traits   zodiac.Traits
	UserName string
	Now      time.Time
}

// Render substitutes in into tmpl. It is a pure function of its arguments.
func Render(tmpl string, in Input) (string, error) {
	segments, err := parse(tmpl)
	if err != nil {
		return "", err
	}
	values := map[string]string{
		KeyZodiacSign:  string(in.Sign),
		KeyElement:     firstNonEmpty(in.Traits.Element, "Unknown"),
		KeyTraits:      strings.Join(in.Traits.Traits, ", "),
		KeyFocusAreas:  strings.Join(in.Traits.FocusAreas, ", "),
		KeyCurrentDate: in.Now.Format(DateFormat),
		KeyUserName:    firstNonEmpty(in.UserName, DefaultUserName),
	}

	var b strings.Builder
	b.Grow(len(tmpl) + 128)
	for _, seg := range segments {
		if seg.key == "" {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(values[seg.key])
	}
	return b.String(), nil
}

// Builder renders the process wide template loaded at startup. The template is never
// modified after construction.
type Builder struct {
	template string
	now      util.Clock
}

// NewBuilder returns a Builder for tmpl using the server clock.
func NewBuilder(tmpl Template) *Builder {
	return &Builder{template: string(tmpl), now: time.Now}
}

// NewBuilderWithClock is NewBuilder with an injectable clock.
func NewBuilderWithClock(tmpl Template, now util.Clock) *Builder {
	return &Builder{template: string(tmpl), now: now}
}

// Build renders the template for one request.
func (b *Builder) Build(sign zodiac.Sign, traits zodiac.Traits, userName string) (string, error) {
	return Render(b.template, Input{
		Sign:     sign,
		Traits:   traits,
		UserName: userName,
		Now:      b.now(),
	})
}

// Template returns the raw template text.
func (b *Builder) Template() string {
	return b.template
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

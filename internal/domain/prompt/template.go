package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder names recognised in horoscope templates.
const (
	KeyZodiacSign  = "zodiac_sign"
	KeyElement     = "element"
	KeyTraits      = "traits"
	KeyFocusAreas  = "focus_areas"
	KeyCurrentDate = "current_date"
	KeyUserName    = "user_name"
)

var knownKeys = map[string]struct{}{
	KeyZodiacSign:  {},
	KeyElement:     {},
	KeyTraits:      {},
	KeyFocusAreas:  {},
	KeyCurrentDate: {},
	KeyUserName:    {},
}

// ErrTemplate marks templates that cannot be rendered.
var ErrTemplate = errors.New("invalid prompt template")

// segment is either literal text or a placeholder key.
type segment struct {
	text string
	key  string
}

// parse splits tmpl into literal and placeholder segments. "{{" and "}}" are literal
// braces; "{name}" is a placeholder and name must be a known key.
func parse(tmpl string) ([]segment, error) {
	var (
		segments []segment
		literal  strings.Builder
	)
	for i := 0; i < len(tmpl); i++ {
		ch := tmpl[i]
		switch {
		case ch == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			literal.WriteByte('{')
			i++
		case ch == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			literal.WriteByte('}')
			i++
		case ch == '{':
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed '{' at offset %d", ErrTemplate, i)
			}
			key := strings.TrimSpace(tmpl[i+1 : i+1+end])
			if _, ok := knownKeys[key]; !ok {
				return nil, fmt.Errorf("%w: unknown placeholder %q", ErrTemplate, key)
			}
			if literal.Len() > 0 {
				segments = append(segments, segment{text: literal.String()})
				literal.Reset()
			}
			segments = append(segments, segment{key: key})
			i += end + 1
		case ch == '}':
			return nil, fmt.Errorf("%w: single '}' at offset %d", ErrTemplate, i)
		default:
			literal.WriteByte(ch)
		}
	}
	if literal.Len() > 0 {
		segments = append(segments, segment{text: literal.String()})
	}
	return segments, nil
}

// Check reports whether tmpl only references known placeholders.
func Check(tmpl string) error {
	_, err := parse(tmpl)
	return err
}

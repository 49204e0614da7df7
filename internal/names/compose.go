// Package names generates plausible Windows artifact names. Each generator
// composes one of a fixed set of templates over immutable vocabulary tables;
// all randomness flows through an injected pick.Source so callers control
// seeding.
package names

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"artifactgen/internal/pick"
)

// ErrConfiguration reports a defect in static templates or vocabularies: an
// empty template list, a placeholder with no binding, or a format specifier
// applied to a value it cannot render.
var ErrConfiguration = errors.New("generator configuration error")

// Supplier produces one sampled value for a placeholder. Within a single
// composition each supplier is invoked at most once; repeated occurrences of
// the same placeholder reuse the first sample.
type Supplier func() any

// Compose picks one template uniformly and substitutes its placeholders from
// bindings. Placeholders are written {name} or {name:04d}; the only supported
// format specifier is zero-padded fixed-width decimal, which requires an
// integer-valued supplier.
func Compose(rng pick.Source, templates []string, bindings map[string]Supplier) (string, error) {
	if len(templates) == 0 {
		return "", fmt.Errorf("%w: empty template list", ErrConfiguration)
	}
	tmpl := templates[rng.IntN(len(templates))]

	var out strings.Builder
	sampled := make(map[string]any)

	for i := 0; i < len(tmpl); {
		ch := tmpl[i]
		if ch != '{' {
			out.WriteByte(ch)
			i++
			continue
		}
		end := strings.IndexByte(tmpl[i:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated placeholder in %q", ErrConfiguration, tmpl)
		}
		inner := tmpl[i+1 : i+end]
		i += end + 1

		name, spec := inner, ""
		if colon := strings.IndexByte(inner, ':'); colon >= 0 {
			name, spec = inner[:colon], inner[colon+1:]
		}

		value, ok := sampled[name]
		if !ok {
			supply, bound := bindings[name]
			if !bound {
				return "", fmt.Errorf("%w: template %q references unbound placeholder %q", ErrConfiguration, tmpl, name)
			}
			value = supply()
			sampled[name] = value
		}

		rendered, err := render(value, spec)
		if err != nil {
			return "", fmt.Errorf("%w: placeholder %q in %q: %v", ErrConfiguration, name, tmpl, err)
		}
		out.WriteString(rendered)
	}
	return out.String(), nil
}

func render(value any, spec string) (string, error) {
	if spec == "" {
		return fmt.Sprint(value), nil
	}
	width, err := parsePaddedDecimal(spec)
	if err != nil {
		return "", err
	}
	n, ok := asInt(value)
	if !ok {
		return "", fmt.Errorf("specifier %q needs an integer, got %T", spec, value)
	}
	return fmt.Sprintf("%0*d", width, n), nil
}

// parsePaddedDecimal accepts exactly the form 0<width>d, e.g. "04d".
func parsePaddedDecimal(spec string) (int, error) {
	if len(spec) < 3 || spec[0] != '0' || spec[len(spec)-1] != 'd' {
		return 0, fmt.Errorf("unsupported specifier %q", spec)
	}
	width, err := strconv.Atoi(spec[1 : len(spec)-1])
	if err != nil || width <= 0 {
		return 0, fmt.Errorf("unsupported specifier %q", spec)
	}
	return width, nil
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}

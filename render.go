package maskable

import (
	"errors"
	"strings"
)

// render substitutes every configured token in template.
//
// Tokens without a mask are copied verbatim, braces included. Each token
// occurrence is resolved on its own. The first resolver failure aborts the
// render and no partial output is returned. It also reports how many
// tokens were substituted.
func render(template string, masks Masks, invoke invoker, attribute string) (string, int, error) {
	if template == "" {
		return "", 0, nil
	}

	var b strings.Builder
	last, count := 0, 0
	for tok := range Scan(template) {
		r, ok := masks.lookup(tok.Name)
		if !ok {
			continue
		}
		value, err := r.resolve(invoke)
		if err != nil {
			return "", 0, wrapResolveError(attribute, tok.Name, err)
		}
		if count == 0 {
			b.Grow(len(template))
		}
		b.WriteString(template[last:tok.Start])
		b.WriteString(value)
		last = tok.End
		count++
	}

	if count == 0 {
		return template, 0, nil
	}
	b.WriteString(template[last:])
	return b.String(), count, nil
}

// Expand renders template against masks without a host.
// Func resolvers are invoked; Method resolvers fail with ErrUnboundMethod.
// Masks are validated as a declaration would be, so a malformed set fails
// with a ConfigError before anything is rendered. No masks leaves the
// template as is.
func Expand(template string, masks ...Mask) (string, error) {
	if len(masks) > 0 {
		if err := Masks(masks).validate("", ""); err != nil {
			return "", err
		}
	}
	out, _, err := render(template, masks, nil, "")
	return out, err
}

func wrapResolveError(attribute, token string, err error) error {
	var re *ResolutionError
	if errors.As(err, &re) {
		return err
	}
	for _, target := range []error{ErrUnknownMethod, ErrUnboundMethod} {
		if errors.Is(err, target) {
			var cause error
			if err != target {
				cause = err
			}
			return newResolutionError(target, attribute, token, cause)
		}
	}
	return newResolutionError(ErrResolve, attribute, token, err)
}

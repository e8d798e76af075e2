package maskable

import (
	"strings"

	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag(maskTag)
}

// maskTag is the struct tag that declares a maskable attribute:
//
//	Qux string `mask:"foo,bar,baz"` // tokens resolve same-named members
//	Bar string `mask:"qux=Quux"`    // token qux resolves method Quux
const maskTag = "mask"

// parseMaskTag turns a mask tag value into masks.
func parseMaskTag(typ, attribute, tag string) (Masks, error) {
	var masks Masks
	if strings.TrimSpace(tag) == "" {
		return masks, nil
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, newConfigError(ErrInvalidTag, typ, attribute, "")
		}

		token, method, mapped := strings.Cut(part, "=")
		token = strings.TrimSpace(token)
		if !mapped {
			masks = append(masks, Map(token, Method(token)))
			continue
		}

		method = strings.TrimSpace(method)
		if token == "" || method == "" {
			return nil, newConfigError(ErrInvalidTag, typ, attribute, token)
		}
		masks = append(masks, Map(token, Method(method)))
	}
	return masks, nil
}

// tagDeclarations reads mask tags declared directly on T's fields.
// Tags on embedded structs belong to the embedded type's own schema.
func (p *typePlan) tagDeclarations() ([]Declaration, error) {
	if len(p.mistagged) > 0 {
		return nil, newConfigError(ErrInvalidAttribute, p.typeName, p.mistagged[0], "")
	}

	var decls []Declaration
	for _, name := range p.order {
		af, ok := p.attributes[name]
		if !ok || af.promoted || !af.tagged {
			continue
		}
		masks, err := parseMaskTag(p.typeName, name, af.tag)
		if err != nil {
			return nil, err
		}
		decls = append(decls, Declaration{attribute: name, masks: masks})
	}
	return decls, nil
}

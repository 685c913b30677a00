package deskconf

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var localeRegex = regexp.MustCompile(`^[a-z]{2,3}([_-][A-Z]{2})?$`)

// IsValidLocale checks a profile language code such as "en", "fi_FI" or "pt-BR".
func IsValidLocale(s string) bool {
	return localeRegex.MatchString(s)
}

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		return IsValidLocale(fl.Field().String())
	})
	return v
}

// checker walks a decoded value against a schema node and collects
// every violation it finds.
type checker struct {
	validate *validator.Validate
	strict   bool
	errs     []error
}

// Validate checks raw against the schema and returns every violation
// joined, or nil. In lenient mode unrecognized keys are skipped.
func (s *Schema) Validate(raw any, strict bool) error {
	c := &checker{validate: newValidate(), strict: strict}
	val := normalize(raw)
	if val == nil {
		val = map[string]any{}
	}
	c.check(RootPath, s.root, val)
	return errors.Join(c.errs...)
}

func (c *checker) fail(path, expected string, got any) {
	c.errs = append(c.errs, &FieldError{Path: path, Expected: expected, Got: describe(got)})
}

func (c *checker) unrecognized(path string) {
	c.errs = append(c.errs, &FieldError{Path: path, Expected: "unrecognized key"})
}

func (c *checker) check(path string, n *Node, val any) {
	switch n.Kind {
	case KindString:
		s, ok := val.(string)
		if !ok {
			c.fail(path, "string", val)
			return
		}
		c.rule(path, "string", n.Rule, s, val)

	case KindBool:
		if _, ok := val.(bool); !ok {
			c.fail(path, "boolean", val)
		}

	case KindInt:
		i, ok := asInt(val)
		if !ok {
			if isWhole(val) {
				c.errs = append(c.errs, &FieldError{Path: path, Expected: "integer", Got: describe(val) + " (out of range)"})
				return
			}
			c.fail(path, "integer", val)
			return
		}
		c.rule(path, "integer", n.Rule, i, val)

	case KindEnum:
		s, ok := val.(string)
		if !ok || !slices.Contains(n.Enum, s) {
			c.fail(path, "one of "+strings.Join(n.Enum, ", "), val)
		}

	case KindStringList:
		list, ok := val.([]any)
		if !ok {
			c.fail(path, "list of strings", val)
			return
		}
		for i, e := range list {
			elemPath := indexPath(path, i)
			s, ok := e.(string)
			if !ok {
				c.fail(elemPath, "string", e)
				continue
			}
			c.rule(elemPath, "string", n.Rule, s, e)
		}

	case KindRecord:
		m, ok := val.(map[string]any)
		if !ok {
			c.fail(path, "mapping", val)
			return
		}
		c.record(path, n, m)

	case KindMap:
		m, ok := val.(map[string]any)
		if !ok {
			c.fail(path, "mapping", val)
			return
		}
		for _, key := range slices.Sorted(maps.Keys(m)) {
			keyPath := joinPath(path, key)
			if key == "" {
				c.errs = append(c.errs, &FieldError{Path: keyPath, Expected: "non-empty key"})
				continue
			}
			if n.Elem != nil {
				c.check(keyPath, n.Elem, m[key])
			}
		}

	case KindToggle:
		switch t := val.(type) {
		case bool:
		case map[string]any:
			if n.Options != nil {
				c.record(path, n.Options, t)
			}
		default:
			c.fail(path, "boolean or options record", val)
		}

	default:
		c.errs = append(c.errs, &FieldError{Path: path, Expected: fmt.Sprintf("known schema kind, schema has %d", n.Kind)})
	}
}

func (c *checker) record(path string, n *Node, m map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		keyPath := joinPath(path, key)
		field, known := n.Fields[key]
		if !known {
			if c.strict {
				c.unrecognized(keyPath)
			}
			continue
		}
		c.check(keyPath, field, m[key])
	}
}

// rule applies the node's validator tag to an already type-checked value.
func (c *checker) rule(path, kind, rule string, typed, raw any) {
	if rule == "" {
		return
	}
	if err := c.validate.Var(typed, rule); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			tag := verrs[0].Tag()
			if p := verrs[0].Param(); p != "" {
				tag += "=" + p
			}
			c.fail(path, fmt.Sprintf("%s satisfying %q", kind, tag), raw)
			return
		}
		c.fail(path, fmt.Sprintf("%s satisfying %q", kind, rule), raw)
	}
}

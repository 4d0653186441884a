package rules

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/adanyl0v/checklist/internal/models"
)

var ErrInvalidTable = errors.New("invalid rule table")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Categories are validated by their stored string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if c, ok := field.Interface().(models.Category); ok {
			return c.String()
		}
		return nil
	}, models.Category{})
	return v
}

// ValidateTable checks a table at authoring time: every rule has a unique
// name, a predicate and at least one well-formed template, and every
// template carries a canonical or labelled custom category.
func ValidateTable(t Table) error {
	var errs []error
	if err := validate.Struct(t); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool, len(t.Rules))
	for _, r := range t.Rules {
		if r.Name != "" && seen[r.Name] {
			errs = append(errs, fmt.Errorf("rule %q declared twice", r.Name))
		}
		seen[r.Name] = true

		if r.When.match == nil {
			errs = append(errs, fmt.Errorf("rule %q has no predicate", r.Name))
		}
		for _, tmpl := range r.Tasks {
			if !tmpl.Category.Valid() {
				errs = append(errs, fmt.Errorf("rule %q: task %q has a blank custom category", r.Name, tmpl.Title))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidTable, t.Flow, errors.Join(errs...))
	}
	return nil
}

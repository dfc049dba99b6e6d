// Package forms shapes raw dialog input into typed drafts for the entity services.
// A dialog is opened for an existing entity (edit mode) or none (create mode); on
// submit it trims, coerces and defaults the fields and hands the draft to a save callback.
package forms

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Fields is the raw dialog payload, one string per input as typed.
type Fields map[string]string

func (f Fields) get(key string) string {
	return strings.TrimSpace(f[key])
}

func (f Fields) has(key string) bool {
	_, ok := f[key]
	return ok
}

// Draft is what a dialog emits: a full create request, or the id and a partial update in edit mode.
type Draft[C, U any] struct {
	ID     string
	Create *C
	Update *U
}

// Editing reports whether the draft updates an existing record.
func (d Draft[C, U]) Editing() bool {
	return d.Update != nil
}

// SaveFunc receives the shaped draft.
type SaveFunc[C, U any] func(ctx context.Context, draft Draft[C, U]) error

// submitDraft hands draft to save. An edit that changes nothing is not saved.
func submitDraft[C, U any](ctx context.Context, draft Draft[C, U], unchanged func(U) bool, save SaveFunc[C, U]) error {
	if draft.Editing() && unchanged(*draft.Update) {
		return nil
	}
	return save(ctx, draft)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("form"); name != "" {
				return name
			}
			return fld.Name
		})
	})
	return validate
}

// check runs struct validation and reports every failing field as one validation error.
func check(input any) error {
	err := formValidator().Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "numeric":
		return fe.Field() + " must be a number"
	case "datetime":
		return fe.Field() + " must be a date (YYYY-MM-DD)"
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}

// optional turns a blank value into nil.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// changed returns v when it differs from the current value.
func changed(v, current string) *string {
	if v == current {
		return nil
	}
	return &v
}

// changedOptional compares against a nullable value; clearing it yields a pointer to "".
func changedOptional(v string, current *string) *string {
	cur := ""
	if current != nil {
		cur = *current
	}
	return changed(v, cur)
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", apperrors.ErrValidation, raw)
	}
	return d, nil
}

func changedAmount(raw string, current decimal.Decimal) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := parseAmount(raw)
	if err != nil {
		return nil, err
	}
	if d.Equal(current) {
		return nil, nil
	}
	return &d, nil
}

// enumOr returns raw as T, or def when raw is blank.
func enumOr[T ~string](raw string, def T) T {
	if raw == "" {
		return def
	}
	return T(raw)
}

// changedEnum returns raw as T when it is set and differs from current.
func changedEnum[T ~string](raw string, current T) *T {
	if raw == "" || T(raw) == current {
		return nil
	}
	v := T(raw)
	return &v
}

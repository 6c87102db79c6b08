package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateGame, GameConfig{})
	return v
}

// validateGame rejects a layout that does not place on a board of the
// configured size. Field tags have already checked Size and Layout.
func validateGame(sl validator.StructLevel) {
	g := sl.Current().Interface().(GameConfig)
	if g.Layout == "" || g.Size < 5 || g.Size > chess.StandardSize {
		return
	}
	pos, err := g.NewPosition()
	if err != nil {
		sl.ReportError(g.Layout, "Layout", "Layout", "layout", err.Error())
		return
	}
	for _, side := range []chess.Side{chess.First, chess.Second} {
		if _, ok := pos.SquareOf(chess.King, side); !ok {
			sl.ReportError(g.Layout, "Layout", "Layout", "king", side.String())
		}
	}
}

// check validates s and folds every field failure into one
// ErrInvalidConfig error.
func check(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		details.WriteString(describe(fe))
	}
	return errors.Wrap(errors.ErrInvalidConfig, details.String())
}

// describe renders one field failure, naming the field by its path below
// the validated struct (e.g. "First.Depth").
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s, got %v", field, fe.Param(), fe.Value())
	case "layout":
		return fmt.Sprintf("%s does not fit the board: %s", field, fe.Param())
	case "king":
		return fmt.Sprintf("%s has no %s king", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

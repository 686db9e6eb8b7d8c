package errresponse

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// ErrMalformedInput wraps every request body that fails to decode or
// validate.
var ErrMalformedInput = errors.New("malformed input")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Bind decodes the request body into v, runs its Bind hook and validates
// its struct tags. An empty body is decoded as an empty object.
func Bind(r *http.Request, v render.Binder) error {
	err := render.Bind(r, v)
	if errors.Is(err, io.EOF) {
		err = v.Bind(r)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return nil
}

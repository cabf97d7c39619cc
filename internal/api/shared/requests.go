package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
)

// maxBodyBytes caps request bodies; user payloads are a few dozen bytes.
const maxBodyBytes = 1 << 20

// Global validator instance for reuse
var validate = newValidator()

// newValidator returns a validator that sees through domain.Optional: an
// absent value validates as missing, a present one as its value. Present
// numbers are exposed by pointer so that zero still counts as supplied.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch o := field.Interface().(type) {
		case domain.Optional[string]:
			if o.Set {
				return o.Value
			}
		case domain.Optional[float64]:
			if o.Set {
				return o.Ptr()
			}
		}
		return nil
	}, domain.Optional[string]{}, domain.Optional[float64]{})
	return v
}

// DecodeJSON decodes the request body into the given struct.
// An empty body leaves v untouched, as if "{}" had been sent.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	return nil
}

// ValidateRequest validates the given struct. Types implementing
// Validate() error validate themselves; everything else is checked against
// its `validate` struct tags. Failures wrap domain.ErrValidation.
func ValidateRequest(v interface{}) error {
	if selfValidating, ok := v.(interface{ Validate() error }); ok {
		if err := selfValidating.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return nil
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

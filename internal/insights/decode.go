package insights

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/aadhaar-sanket/sanket/internal/errors"
)

// MaxPayloadBytes caps how much of a response body is read.
const MaxPayloadBytes = 16 << 20

// DecodeOptions controls Decode.
type DecodeOptions struct {
	// Strict validates every row after decoding: district is required and
	// insight3 counts must be non-negative.
	Strict bool
}

// Decode reads one JSON payload from r.
//
// Syntax errors, trailing data, and fields of the wrong JSON kind fail with
// an error matching errors.ErrMalformedPayload. In strict mode, row
// violations are returned joined, each an *errors.ValidationError.
func Decode(r io.Reader, opts DecodeOptions) (*Payload, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", errors.ErrMalformedPayload, err)
	}
	if len(data) > MaxPayloadBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", errors.ErrMalformedPayload, MaxPayloadBytes)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrMalformedPayload, err)
	}

	if opts.Strict {
		if err := Validate(&p); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func payloadValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report JSON names (insight3[0].age_5_17) rather than Go names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks every row of p. It returns nil or the joined
// *errors.ValidationError values, one per violation.
func Validate(p *Payload) error {
	err := payloadValidator().Struct(p)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("payload could not be validated").WithCause(err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, errors.NewValidationError(ruleMessage(fe)).
			WithField(fieldPath(fe.Namespace())).
			WithValue(fe.Value()))
	}
	return errors.Join(errs...)
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be >= " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

package shared

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Single validator instance; it caches struct metadata across requests.
var validate = validator.New()

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// ValidateRequest checks v against its validate struct tags. A type that
// implements its own Validate method is checked by that method instead.
func ValidateRequest(v any) error {
	if custom, ok := v.(interface{ Validate() error }); ok {
		return custom.Validate()
	}
	return validate.Struct(v)
}

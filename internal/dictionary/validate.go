package dictionary

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks decoded entries against the struct tags of the schema.
// Only the shape is enforced; optional fields with odd values pass and
// are dealt with when rows and audio URLs are derived.
func Validate(results []LookupResult) error {
	for i := range results {
		if err := validate.Struct(results[i]); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

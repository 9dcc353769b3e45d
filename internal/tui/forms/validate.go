package forms

import (
	"fmt"
	"strings"
)

// requiredText rejects empty or whitespace-only input, mirroring the
// required fields of the create and login dialogs.
func requiredText(label string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

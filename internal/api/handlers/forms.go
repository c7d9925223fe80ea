package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// MissingFieldError reports a required form field that was absent or blank.
// It is a user error, never a crash: callers turn it into a flash + redirect.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// requireFields extracts the named form fields in order, failing on the first
// one that is absent or blank. Each submission workflow declares its required
// fields as an explicit list at the call site.
func requireFields(c *gin.Context, names ...string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		value := strings.TrimSpace(c.PostForm(name))
		if value == "" {
			return nil, &MissingFieldError{Field: name}
		}
		values[name] = value
	}
	return values, nil
}

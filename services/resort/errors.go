package resort

import (
	"errors"
	"fmt"
)

var (
	ErrResortNotFound = errors.New("resort not found")
	ErrSlugTaken      = errors.New("a resort with this slug already exists")
)

// InputError lists the invalid fields of a resort request.
type InputError struct {
	Fields map[string]string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("resort has %d invalid field(s)", len(e.Fields))
}

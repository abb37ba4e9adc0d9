package proc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidReturn reports a processor output that is neither nil, content
// nor a mapping.
var ErrInvalidReturn = errors.New("invalid processor return type")

// ReturnTypeError identifies the processor that broke the return contract.
type ReturnTypeError struct {
	// Position is the declared index of the processor in Compose, or -1.
	Position int
	Name     string
	Type     string
	// Field and FieldType are set when a partial record carried a malformed
	// metadata value.
	Field     string
	FieldType string
}

func (e *ReturnTypeError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalidReturn.Error())
	b.WriteString(": ")
	if e.Field != "" {
		fmt.Fprintf(&b, "%s field %q is %s", e.Type, e.Field, e.FieldType)
	} else {
		b.WriteString(e.Type)
	}
	switch {
	case e.Name != "" && e.Position >= 0:
		fmt.Fprintf(&b, " (processor %q at position %d)", e.Name, e.Position)
	case e.Name != "":
		fmt.Fprintf(&b, " (processor %q)", e.Name)
	case e.Position >= 0:
		fmt.Fprintf(&b, " (processor at position %d)", e.Position)
	}
	return b.String()
}

func (e *ReturnTypeError) Is(target error) bool {
	return target == ErrInvalidReturn
}

package errors

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// FunctionError is returned by a complex function when its result can not
// be returned to HCL
type FunctionError struct {
	Function string
	Message  string
}

// NewFunctionError creates a FunctionError for the named function
func NewFunctionError(function, message string) *FunctionError {
	return &FunctionError{
		Function: function,
		Message:  message,
	}
}

// Error pretty prints the error message as a string
func (f *FunctionError) Error() string {
	err := strings.Builder{}
	err.WriteString(fmt.Sprintf("Error in function %s:\n", f.Function))

	for _, l := range strings.Split(wordwrap.WrapString(f.Message, 80), "\n") {
		err.WriteString("  " + l + "\n")
	}

	return strings.TrimSuffix(err.String(), "\n")
}

// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// Multi combines multiple errors into one:
//
//   - If all errors are nil, it returns nil.
//
//   - If there is one non-nil error, it is returned.
//
//   - Otherwise, the return value is an error whose Error method contains all
//     the messages of all non-nil arguments, one per line.
//
// Errors returned by Multi are flattened when passed to Multi again.
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			if multi, ok := err.(multiError); ok {
				nonNil = append(nonNil, multi...)
			} else {
				nonNil = append(nonNil, err)
			}
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return multiError(nonNil)
	}
}

type multiError []error

func (me multiError) Error() string {
	var sb strings.Builder
	for i, e := range me {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap supports errors.Is and errors.As.
func (me multiError) Unwrap() []error { return me }

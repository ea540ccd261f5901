// Package tt supports table-driven tests with little boilerplate.
//
// A typical use of this package looks like this:
//
//	// Function being tested
//	func neg(i int) int { return -i }
//
//	func TestNeg(t *testing.T) {
//		tt.Test(t, neg,
//			// Unlike in the real code, these test cases should be indented
//			tt.Args(1).Rets(-1),
//			tt.Args(2).Rets(-2))
//	}
package tt

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself; those calls can be chained like
// Args(...).Rets(...).
type Case struct {
	desc         string
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// It returns a new Case with the given description. Arguments are set with
// the Args method.
func It(desc string) *Case {
	return &Case{desc: desc}
}

// Args sets the arguments of the test case and returns the receiver.
func (c *Case) Args(args ...any) *Case {
	c.args = args
	return c
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, reflect.DeepEqual is used to determine matches.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnDescriptor describes a function to test.
type FnDescriptor struct {
	name    string
	body    any
	argsFmt string
	retsFmt string
}

// Fn makes a new FnDescriptor with the given function body. The name is
// derived from the function itself unless set with Named.
func Fn(body any) *FnDescriptor {
	return &FnDescriptor{body: body}
}

// Named sets the name used in test error messages, and returns fn itself.
func (fn *FnDescriptor) Named(name string) *FnDescriptor {
	fn.name = name
	return fn
}

// ArgsFmt sets the string for formatting arguments in test error messages, and
// returns fn itself.
func (fn *FnDescriptor) ArgsFmt(s string) *FnDescriptor {
	fn.argsFmt = s
	return fn
}

// RetsFmt sets the string for formatting return values in test error messages,
// and returns fn itself.
func (fn *FnDescriptor) RetsFmt(s string) *FnDescriptor {
	fn.retsFmt = s
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases. The function may be a plain Go
// function or a *FnDescriptor.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	fd, ok := fn.(*FnDescriptor)
	if !ok {
		fd = Fn(fn)
	}
	name := fd.name
	if name == "" {
		name = funcName(fd.body)
	}
	for _, test := range tests {
		rets := call(fd.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if match(retsMatcher, rets) {
				continue
			}
			var args string
			if fd.argsFmt == "" {
				args = sprintCommaDelimited(test.args...)
			} else {
				args = fmt.Sprintf(fd.argsFmt, test.args...)
			}
			var diff string
			if fd.retsFmt == "" {
				diff = cmp.Diff(describeMatchers(retsMatcher), rets, exportAll)
			} else {
				diff = cmp.Diff(
					fmt.Sprintf(fd.retsFmt, retsMatcher...),
					fmt.Sprintf(fd.retsFmt, rets...))
			}
			if test.desc == "" {
				t.Errorf("%s(%s) returns (-Wanted +Actual):\n%s", name, args, diff)
			} else {
				t.Errorf("%s: %s(%s) returns (-Wanted +Actual):\n%s", test.desc, name, args, diff)
			}
		}
	}
}

// Return values such as errors often have unexported fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }
func (anyMatcher) String() string      { return "<any>" }

func match(matchers, actual []any) bool {
	if len(matchers) != len(actual) {
		return false
	}
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return reflect.DeepEqual(m, a)
}

// Replaces matchers with their string representations, so that go-cmp never
// needs to look into their internals.
func describeMatchers(matchers []any) []any {
	described := make([]any, len(matchers))
	for i, m := range matchers {
		if _, ok := m.(Matcher); ok {
			described[i] = fmt.Sprint(m)
		} else {
			described[i] = m
		}
	}
	return described
}

func sprintCommaDelimited(args ...any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v", arg)
	}
	return b.String()
}

func funcName(f any) string {
	fn := runtime.FuncForPC(reflect.ValueOf(f).Pointer())
	if fn == nil {
		return "<unknown>"
	}
	name := fn.Name()
	// Strip the import path, keeping the package name.
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		name = name[i+1:]
	}
	// Strip the package name.
	if i := strings.IndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	return name
}

func call(fn any, args []any) []any {
	argsReflect := make([]reflect.Value, len(args))
	fnType := reflect.TypeOf(fn)
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value, which can't be passed
			// to Call. Use the zero value of the parameter type instead.
			var t reflect.Type
			if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
				t = fnType.In(fnType.NumIn() - 1).Elem()
			} else {
				t = fnType.In(i)
			}
			argsReflect[i] = reflect.Zero(t)
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}

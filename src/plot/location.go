package plot

import (
	"fmt"
	"runtime"
	"strings"
)

// Location identifies one call site. It is the registry key: every
// invocation at the same file, line and column shares one record.
// Col is zero for locations derived from the runtime call stack; it
// exists for callers that generate locations themselves.
type Location struct {
	File string
	Line int
	Col  int
}

// String renders the location as file:line or file:line:col.
func (l Location) String() string {
	if l.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Here returns the Location of the caller. skip counts additional
// stack frames to walk up: 0 is the direct caller of Here.
func Here(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "unknown"}
	}
	return Location{File: file, Line: line}
}

// shortFile trims a runtime file path to its last two segments so
// captions and default file names stay readable.
func shortFile(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}
	j := strings.LastIndexByte(path[:i], '/')
	return path[j+1:]
}

// defaultCaption names a chart after its call site.
func defaultCaption(loc Location) string {
	if loc.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", shortFile(loc.File), loc.Line, loc.Col)
	}
	return fmt.Sprintf("%s:%d", shortFile(loc.File), loc.Line)
}

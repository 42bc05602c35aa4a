package conlog

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

var pkgPath = reflect.TypeOf(Scope{}).PkgPath()

// callerTag walks the call stack outward and formats the first frame that
// does not belong to this package as "[Owner.func()]:line", where Owner is
// the method receiver type or, for plain functions, the package name.
// Returns "" when no such frame is found; emission never fails over this.
func callerTag() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && funcPkgPath(frame.Function) != pkgPath {
			return formatFrame(frame)
		}
		if !more {
			return ""
		}
	}
}

// funcPkgPath extracts the import path from a fully qualified function name
// as reported by the runtime, e.g. "example.com/pkg.(*T).m" -> "example.com/pkg".
func funcPkgPath(fn string) string {
	slash := strings.LastIndex(fn, "/")
	dot := strings.Index(fn[slash+1:], ".")
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}

func formatFrame(frame runtime.Frame) string {
	fn := frame.Function
	if slash := strings.LastIndex(fn, "/"); slash >= 0 {
		fn = fn[slash+1:]
	}

	parts := strings.Split(fn, ".")
	var owner, name string
	switch {
	case len(parts) >= 3:
		// "pkg.(*T).m" or "pkg.T.m"; the receiver wins over the package.
		owner = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(parts[len(parts)-2], "("), "*"), ")")
		name = parts[len(parts)-1]
	case len(parts) == 2:
		owner = parts[0]
		name = parts[1]
	default:
		return fmt.Sprintf("[%s()]:%d", fn, frame.Line)
	}

	return fmt.Sprintf("[%s.%s()]:%d", owner, name, frame.Line)
}

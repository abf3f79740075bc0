package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxCallDepth = 3

type functionHooker struct {
	innerLogger *Logger
}

// callers returns the frames above the logging machinery, innermost first.
func callers(n int) []runtime.Frame {
	pcs := make([]uintptr, 32)
	cnt := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:cnt])
	var out []runtime.Frame
	for {
		f, more := frames.Next()
		if !isLoggingFrame(f) {
			out = append(out, f)
			if len(out) == n {
				break
			}
		}
		if !more {
			break
		}
	}
	return out
}

// pkgDir is the source directory of this package.
var pkgDir = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}()

func isLoggingFrame(f runtime.Frame) bool {
	if strings.Contains(f.Function, "github.com/sirupsen/logrus") {
		return true
	}
	return filepath.Dir(f.File) == pkgDir && !strings.HasSuffix(f.File, "_test.go")
}

func shortFuncName(fname string) string {
	if index := strings.LastIndex(fname, "/"); index >= 0 {
		return fname[index+1:]
	}
	return fname
}

func (h *functionHooker) fire(entry *logrus.Entry) {
	frames := callers(1)
	if len(frames) == 0 {
		return
	}
	f := frames[0]
	entry.Data["func"] = shortFuncName(f.Function)
	entry.Data["line"] = f.Line
	entry.Data["file"] = filepath.Base(f.File)
}

func (h *functionHooker) fires(entry *logrus.Entry) {
	for i, f := range callers(maxCallDepth) {
		entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}", filepath.Base(f.File), shortFuncName(f.Function), f.Line)
	}
}

func (h *functionHooker) Fire(entry *logrus.Entry) error {
	switch h.innerLogger.callRelation() {
	case MsgFormatMulti:
		h.fires(entry)
	case MsgFormatSingle:
		h.fire(entry)
	}
	return nil
}

func (h *functionHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

// LoadFunctionHooker loads a function hooker to the logger
func LoadFunctionHooker(logger *Logger) {
	logger.Hooks.Add(&functionHooker{innerLogger: logger})
}

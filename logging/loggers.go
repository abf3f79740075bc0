package logging

import (
	"io"
	"io/ioutil"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)

const (
	//PANIC log level
	PANIC uint32 = iota
	//FATAL has list msg
	FATAL
	//ERROR has list msg
	ERROR
	//WARN only log
	WARN
	//INFO only log
	INFO
	//DEBUG only log
	DEBUG
	//TRACE only log
	TRACE
)

const (
	//MsgFormatSingle records the calling function only
	MsgFormatSingle uint32 = iota
	//MsgFormatMulti records a short call chain
	MsgFormatMulti
)

// LogFormat is to log format
type LogFormat = map[string]interface{}

type Logger struct {
	*logrus.Logger
	//CallRelation selects how much of the call stack to record
	CallRelation uint32
}

func NewLogger(out io.Writer, level string) *Logger {
	l := &Logger{
		Logger: logrus.New(),
	}
	l.Out = out
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = convertLevel(level)
	return l
}

// SetCallRelation to set CallRelation
func (logger *Logger) SetCallRelation(button uint32) {
	atomic.StoreUint32(&logger.CallRelation, button)
}

func (logger *Logger) callRelation() uint32 {
	return atomic.LoadUint32(&logger.CallRelation)
}

var (
	mu sync.Mutex
	// clog writes to the console (stderr) and the log file.
	clog *Logger
	// vlog writes to the log file only.
	vlog *Logger
)

func convertLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	case TraceLevel:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

// Init loggers. Console output goes to stderr, stdout is left to the
// caller. age is the number of days rotated files are kept, 0 keeps
// them forever.
func Init(path, filename string, level string, age uint32, disableCPrint bool) {
	fileHooker := NewFileRotateHooker(path, filename, age, nil)

	v := NewLogger(ioutil.Discard, level)
	LoadFunctionHooker(v)
	v.Hooks.Add(fileHooker)

	c := v
	if !disableCPrint {
		c = NewLogger(os.Stderr, level)
		LoadFunctionHooker(c)
		c.Hooks.Add(fileHooker)
	}

	mu.Lock()
	vlog, clog = v, c
	mu.Unlock()

	v.WithFields(logrus.Fields{
		"path":  path,
		"level": level,
	}).Info("Logger Configuration.")
}

// InitConsole sets up console-only logging without a log file. VPrint
// output is dropped since there is no file to receive it.
func InitConsole(out io.Writer, level string) {
	c := NewLogger(out, level)
	LoadFunctionHooker(c)
	v := NewLogger(ioutil.Discard, level)
	mu.Lock()
	vlog, clog = v, c
	mu.Unlock()
}

func loggers() (*Logger, *Logger) {
	mu.Lock()
	defer mu.Unlock()
	if clog == nil {
		c := NewLogger(os.Stderr, InfoLevel)
		LoadFunctionHooker(c)
		clog, vlog = c, NewLogger(ioutil.Discard, InfoLevel)
	}
	return clog, vlog
}

// CPrint into stderr + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	c, _ := loggers()
	logAt(c, level, msg, formats...)
}

// VPrint into log
func VPrint(level uint32, msg string, formats ...LogFormat) {
	_, v := loggers()
	logAt(v, level, msg, formats...)
}

func logAt(l *Logger, level uint32, msg string, formats ...LogFormat) {
	entry := l.WithFields(mergeLogFormats(formats...))
	switch level {
	case PANIC:
		l.SetCallRelation(MsgFormatMulti)
		entry.Panic(msg)
	case FATAL:
		l.SetCallRelation(MsgFormatMulti)
		entry.Fatal(msg)
	case ERROR:
		l.SetCallRelation(MsgFormatMulti)
		entry.Error(msg)
	case WARN:
		l.SetCallRelation(MsgFormatSingle)
		entry.Warn(msg)
	case INFO:
		l.SetCallRelation(MsgFormatSingle)
		entry.Info(msg)
	case DEBUG:
		l.SetCallRelation(MsgFormatSingle)
		entry.Debug(msg)
	case TRACE:
		l.SetCallRelation(MsgFormatSingle)
		entry.Trace(msg)
	default:
		l.SetCallRelation(MsgFormatMulti)
		entry.Error(msg)
	}
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) LogFormat {
	format := LogFormat{}
	for _, data := range formats {
		for k, v := range data {
			format[k] = v
		}
	}
	return format
}

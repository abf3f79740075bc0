package logging

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "hexsum-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	Init(dir, "test", WarnLevel, 1, true)
	CPrint(WARN, "The group's number increased tremendously!",
		LogFormat{
			"omg":    true,
			"number": 122,
		})
	CPrint(INFO, "filtered by level", nil)
	VPrint(ERROR, "A group of walrus emerges from the ocean",
		LogFormat{
			"animal": "walrus",
			"size":   10,
		})

	data, err := ioutil.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "increased tremendously")
	assert.Contains(t, out, "animal=walrus")
	assert.NotContains(t, out, "filtered by level")
}

func TestConsoleCaller(t *testing.T) {
	var buf bytes.Buffer
	InitConsole(&buf, DebugLevel)
	CPrint(DEBUG, "debug message", LogFormat{"k": "v"})
	CPrint(TRACE, "trace message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "k=v")
	assert.Contains(t, out, "func=logging.TestConsoleCaller")
	assert.Contains(t, out, "file=loggers_test.go")
	assert.False(t, strings.Contains(out, "trace message"))
}

func TestMergeLogFormats(t *testing.T) {
	merged := mergeLogFormats(LogFormat{"a": 1, "b": 1}, nil, LogFormat{"b": 2})
	assert.Equal(t, LogFormat{"a": 1, "b": 2}, merged)
}

func TestConvertLevel(t *testing.T) {
	assert.Equal(t, "warning", convertLevel(WarnLevel).String())
	assert.Equal(t, "info", convertLevel("bogus").String())
}

func TestInitConsoleDropsVPrint(t *testing.T) {
	var buf bytes.Buffer
	InitConsole(&buf, TraceLevel)
	VPrint(WARN, "file only message", LogFormat{"line": 2})
	assert.Empty(t, buf.String())

	CPrint(WARN, "console message")
	assert.Contains(t, buf.String(), "console message")
}

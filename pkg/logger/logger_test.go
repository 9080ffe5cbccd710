package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBufferedRecords(t *testing.T) {
	log := New()
	log.Info("[v] started", zap.Int("sites", 3))
	log.Debug("[v-site] hidden at info level")

	out := log.String()
	assert.Contains(t, out, "[v] started")
	assert.Contains(t, out, "sites")
	assert.NotContains(t, out, "hidden at info level")
}

func TestDebugLevel(t *testing.T) {
	log := New(WithLevel(zapcore.DebugLevel))
	log.Debug("[v-site] visible")

	assert.Contains(t, log.String(), "[v-site] visible")
}

func TestConsoleTee(t *testing.T) {
	var console bytes.Buffer
	log := New(WithConsole(&console))
	log.Warn("careful")

	assert.Contains(t, console.String(), "careful")
	// not a terminal: plain level names
	assert.Contains(t, console.String(), "WARN")
	assert.NotContains(t, console.String(), "\033[")
	assert.Contains(t, log.String(), "careful")
}

func TestClearLogs(t *testing.T) {
	log := New()
	log.Info("one")
	log.ClearLogs()

	assert.Empty(t, log.String())
	assert.Equal(t, "<pre></pre>", log.HTML())
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Info("dropped")
	log.Error("dropped too")

	assert.Empty(t, log.String())
}

func TestAnsiToHTML(t *testing.T) {
	cases := []struct {
		Name   string
		Input  string
		Expect string
	}{
		{
			Name:   "plain text",
			Input:  "hello",
			Expect: "<pre>hello</pre>",
		},
		{
			Name:   "colored level",
			Input:  "\033[32minfo\033[0m msg",
			Expect: `<pre><span style="color: green;">info</span> msg</pre>`,
		},
		{
			Name:   "unclosed color",
			Input:  "\033[31merror",
			Expect: `<pre><span style="color: red;">error</span></pre>`,
		},
		{
			Name:   "markup is escaped",
			Input:  "a<b>&c",
			Expect: "<pre>a&lt;b&gt;&amp;c</pre>",
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, ansiToHTML(c.Input))
		})
	}
}

func TestHTMLColorsLevels(t *testing.T) {
	log := New()
	log.Info("colored")

	html := log.HTML()
	assert.True(t, strings.HasPrefix(html, "<pre>"))
	assert.Contains(t, html, `<span style="color: green;">info</span>`)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintState_Success(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintState(tailor.Success{Result: &types.TailorResult{
		TailoredResume:               "Jane Doe\nSenior Engineer",
		MatchedKeywords:              []string{"Go", "Kubernetes"},
		MissingButReferencedKeywords: []string{},
		ATSTips:                      []string{"Use standard section headings"},
	}})
	output := buf.String()

	assert.Contains(t, output, "TAILORED RESUME (ATS-friendly)")
	assert.Contains(t, output, "Jane Doe\nSenior Engineer\n")
	assert.Contains(t, output, "Go · Kubernetes")
	assert.Contains(t, output, "MISSING KEYWORDS")
	assert.Contains(t, output, "(none)")
	assert.Contains(t, output, "• Use standard section headings")
}

func TestPrintState_SuccessWithMissingFields(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintState(tailor.Success{Result: &types.TailorResult{}})
	output := buf.String()

	assert.Equal(t, 3, strings.Count(output, "(none)"))
}

func TestPrintState_Failed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintState(tailor.Failed{Message: "Request failed: 500"})

	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "Request failed: 500")
}

func TestPrintState_IdleAndLoading(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintState(tailor.Idle{})
	assert.Empty(t, buf.String())

	p.PrintState(tailor.Loading{})
	assert.Equal(t, "Tailoring…\n", buf.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	require.NoError(t, p.PrintJSON(tailor.Failed{Message: "timeout"}))

	var view tailor.View
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, tailor.StatusFailed, view.Status)
	assert.Equal(t, "timeout", view.Error)
}

func TestPrintBox_WrapsLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("word ", 40))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"short"}, wrap("short", 10))
	assert.Equal(t, []string{"aaa bbb", "ccc"}, wrap("aaa bbb ccc", 7))
	assert.Equal(t, []string{"abcde", "fgh"}, wrap("abcdefgh", 5))
	assert.Equal(t, []string{"é", "abcde", "f"}, wrap("é abcdef", 5))
}

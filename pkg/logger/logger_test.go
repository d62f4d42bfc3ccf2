package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aayushsoam1/cogni-mind/pkg/logger/console"
)

type recorder struct {
	lines []string
}

func (r *recorder) record(level, message string) { r.lines = append(r.lines, level+" "+message) }

func (r *recorder) Log(message string, keyvals ...any)   { r.record("LOG", message) }
func (r *recorder) Debug(message string, keyvals ...any) { r.record("DEBUG", message) }
func (r *recorder) Info(message string, keyvals ...any)  { r.record("INFO", message) }
func (r *recorder) Warn(message string, keyvals ...any)  { r.record("WARN", message) }
func (r *recorder) Error(message string, keyvals ...any) { r.record("ERROR", message) }
func (r *recorder) Fatal(message string, keyvals ...any) { r.record("FATAL", message) }

func TestDispatch(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	Init(first)
	Add(second)
	t.Cleanup(func() { Init() })

	Info("hello", "k", "v")
	Warn("careful")

	for _, r := range []*recorder{first, second} {
		if got := strings.Join(r.lines, "|"); got != "INFO hello|WARN careful" {
			t.Fatalf("unexpected lines %q", got)
		}
	}
}

func TestNoBackends(t *testing.T) {
	Init()
	Error("dropped")
}

func TestConsoleBackend(t *testing.T) {
	var buf bytes.Buffer
	Init(console.NewConsoleLogger(console.ConsoleLoggerParams{Output: &buf, Prefix: "test"}))
	t.Cleanup(func() { Init() })

	Debug("hidden")
	Info("[Generate] Mind map generated", "nodes", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written without debug level: %q", out)
	}
	if !strings.Contains(out, "Mind map generated") || !strings.Contains(out, "nodes=3") {
		t.Fatalf("unexpected output %q", out)
	}
}

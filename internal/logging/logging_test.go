package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/calvinalkan/wedlinker/internal/logging"
)

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := logging.New(&buf, "info", "json")
	log.Info("data file saved", "path", "/tmp/x.json")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json handler should produce valid JSON: %v", err)
	}

	if got, want := m["path"], "/tmp/x.json"; got != want {
		t.Fatalf("path=%v, want %v", got, want)
	}
}

func TestNew_Level_Filters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := logging.New(&buf, "WARN", "text")
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record logged at warn level:\n%s", out)
	}

	if !strings.Contains(out, "msg=shown") {
		t.Errorf("warn record missing:\n%s", out)
	}
}

func TestNew_Unknown_Level_Defaults_To_Warn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := logging.New(&buf, "chatty", "text")
	log.Info("hidden")

	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

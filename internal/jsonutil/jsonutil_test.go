package jsonutil

import "testing"

func TestParse_ObjectAndArray(t *testing.T) {
	t.Parallel()
	v := Parse(`{"status":"green","nodes":2}`)
	m, ok := v.(map[string]any)
	if !ok || m["status"] != "green" || m["nodes"] != float64(2) {
		t.Fatalf("unexpected value: %#v", v)
	}
	if arr, ok := Parse(`[1,2]`).([]any); !ok || len(arr) != 2 {
		t.Fatalf("array not decoded")
	}
}

func TestParse_MalformedDegradesToRawText(t *testing.T) {
	t.Parallel()
	raw := `epoch timestamp cluster status`
	if got := Parse(raw); got != raw {
		t.Fatalf("expected raw passthrough, got %#v", got)
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()
	if s := Stringify(map[string]any{"type": "x"}); s != `{"type":"x"}` {
		t.Fatalf("stringify %q", s)
	}
	// unmarshalable values degrade instead of failing
	if s := Stringify(func() {}); s != "" {
		t.Fatalf("expected empty string, got %q", s)
	}
}

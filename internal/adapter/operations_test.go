package adapter

import "testing"

func TestFanOutPlansPreserveOrder(t *testing.T) {
	t.Parallel()
	reqs := DeleteIndices{Indices: []string{"x", "y"}}.plan()
	if len(reqs) != 2 {
		t.Fatalf("expected one request per index, got %d", len(reqs))
	}
	if reqs[0].path != "/x" || reqs[1].path != "/y" || reqs[0].method != "DELETE" {
		t.Fatalf("unexpected plan: %+v", reqs)
	}
}

func TestIndexNamesAreEscaped(t *testing.T) {
	t.Parallel()
	reqs := GetIndex{Index: "logs/2024"}.plan()
	if reqs[0].path != "/logs%2F2024" {
		t.Fatalf("path %q", reqs[0].path)
	}
}

func TestSearchPlansClusterWideWhenIndexEmpty(t *testing.T) {
	t.Parallel()
	if p := (Search{}).plan()[0].path; p != "/_search" {
		t.Fatalf("path %q", p)
	}
	if p := (Search{Index: "logs"}).plan()[0].path; p != "/logs/_search" {
		t.Fatalf("path %q", p)
	}
	// empty query still sends a JSON object body
	if (Search{}).plan()[0].body == nil {
		t.Fatalf("search must always carry a body")
	}
}

func TestPutClusterSettingsBodySections(t *testing.T) {
	t.Parallel()
	op := PutClusterSettings{Transient: map[string]any{"cluster.routing.allocation.enable": "none"}}
	body := op.plan()[0].body.(map[string]any)
	if _, ok := body["transient"]; !ok {
		t.Fatalf("transient section missing: %#v", body)
	}
	if _, ok := body["persistent"]; ok {
		t.Fatalf("empty persistent section should be omitted")
	}
}

func TestCatListingsRequestJSON(t *testing.T) {
	t.Parallel()
	q := CatIndices{}.plan()[0].query
	if q.Get("format") != "json" {
		t.Fatalf("cat listings must request JSON, got %v", q)
	}
}

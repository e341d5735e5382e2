package adapter

import (
	"fmt"
	"net/url"
)

// Operation is one call of the search-engine admin API. The set is closed:
// every supported call has a concrete struct here carrying its own typed
// parameters, and the adapter plans the HTTP requests from it. Operations
// that act on several indices fan out to one request per index.
type Operation interface {
	// Name identifies the operation in metrics and logs, e.g. "index.delete".
	Name() string

	plan() []restReq
}

// restReq is a single planned HTTP request.
type restReq struct {
	method string
	path   string
	query  url.Values
	body   any
}

func jsonQuery() url.Values {
	return url.Values{"format": []string{"json"}}
}

func indexPath(index string) string {
	return "/" + url.PathEscape(index)
}

// ------------------------------
// Cluster operations
// ------------------------------

// ClusterInfo fetches the engine banner (name, version, cluster name).
type ClusterInfo struct{}

func (ClusterInfo) Name() string    { return "cluster.info" }
func (ClusterInfo) plan() []restReq { return []restReq{{method: "GET", path: "/"}} }

// ClusterHealth fetches cluster health.
type ClusterHealth struct{}

func (ClusterHealth) Name() string { return "cluster.health" }
func (ClusterHealth) plan() []restReq {
	return []restReq{{method: "GET", path: "/_cluster/health"}}
}

// ClusterStats fetches cluster-wide statistics.
type ClusterStats struct{}

func (ClusterStats) Name() string { return "cluster.stats" }
func (ClusterStats) plan() []restReq {
	return []restReq{{method: "GET", path: "/_cluster/stats"}}
}

// ClusterSettings fetches current cluster settings.
type ClusterSettings struct {
	IncludeDefaults bool
}

func (ClusterSettings) Name() string { return "cluster.settings" }
func (op ClusterSettings) plan() []restReq {
	q := url.Values{}
	if op.IncludeDefaults {
		q.Set("include_defaults", "true")
	}
	return []restReq{{method: "GET", path: "/_cluster/settings", query: q}}
}

// PutClusterSettings updates transient and/or persistent cluster settings.
type PutClusterSettings struct {
	Transient  map[string]any
	Persistent map[string]any
}

func (PutClusterSettings) Name() string { return "cluster.settings.update" }
func (op PutClusterSettings) plan() []restReq {
	body := map[string]any{}
	if len(op.Transient) > 0 {
		body["transient"] = op.Transient
	}
	if len(op.Persistent) > 0 {
		body["persistent"] = op.Persistent
	}
	return []restReq{{method: "PUT", path: "/_cluster/settings", body: body}}
}

// ------------------------------
// Cat listings
// ------------------------------

// CatIndices lists indices with their health, size and doc counts.
type CatIndices struct{}

func (CatIndices) Name() string { return "cat.indices" }
func (CatIndices) plan() []restReq {
	return []restReq{{method: "GET", path: "/_cat/indices", query: jsonQuery()}}
}

// CatAliases lists alias-to-index bindings.
type CatAliases struct{}

func (CatAliases) Name() string { return "cat.aliases" }
func (CatAliases) plan() []restReq {
	return []restReq{{method: "GET", path: "/_cat/aliases", query: jsonQuery()}}
}

// CatShards lists shard allocation across nodes.
type CatShards struct{}

func (CatShards) Name() string { return "cat.shards" }
func (CatShards) plan() []restReq {
	return []restReq{{method: "GET", path: "/_cat/shards", query: jsonQuery()}}
}

// ------------------------------
// Index operations
// ------------------------------

// GetIndex fetches settings and mappings for one index.
type GetIndex struct {
	Index string
}

func (GetIndex) Name() string       { return "index.get" }
func (op GetIndex) plan() []restReq { return []restReq{{method: "GET", path: indexPath(op.Index)}} }

// GetMapping fetches the mapping of one index.
type GetMapping struct {
	Index string
}

func (GetMapping) Name() string { return "index.mapping" }
func (op GetMapping) plan() []restReq {
	return []restReq{{method: "GET", path: indexPath(op.Index) + "/_mapping"}}
}

// CreateIndex creates an index. Body optionally carries settings/mappings.
type CreateIndex struct {
	Index string
	Body  map[string]any
}

func (CreateIndex) Name() string { return "index.create" }
func (op CreateIndex) plan() []restReq {
	return []restReq{{method: "PUT", path: indexPath(op.Index), body: op.Body}}
}

// DeleteIndices deletes the given indices, one request per index.
type DeleteIndices struct {
	Indices []string
}

func (DeleteIndices) Name() string { return "index.delete" }
func (op DeleteIndices) plan() []restReq {
	return fanOut("DELETE", op.Indices, "")
}

// OpenIndices opens the given indices, one request per index.
type OpenIndices struct {
	Indices []string
}

func (OpenIndices) Name() string { return "index.open" }
func (op OpenIndices) plan() []restReq {
	return fanOut("POST", op.Indices, "/_open")
}

// CloseIndices closes the given indices, one request per index.
type CloseIndices struct {
	Indices []string
}

func (CloseIndices) Name() string { return "index.close" }
func (op CloseIndices) plan() []restReq {
	return fanOut("POST", op.Indices, "/_close")
}

// RefreshIndex refreshes one index.
type RefreshIndex struct {
	Index string
}

func (RefreshIndex) Name() string { return "index.refresh" }
func (op RefreshIndex) plan() []restReq {
	return []restReq{{method: "POST", path: indexPath(op.Index) + "/_refresh"}}
}

// FlushIndex flushes one index.
type FlushIndex struct {
	Index string
}

func (FlushIndex) Name() string { return "index.flush" }
func (op FlushIndex) plan() []restReq {
	return []restReq{{method: "POST", path: indexPath(op.Index) + "/_flush"}}
}

// ForcemergeIndex force-merges the segments of one index.
type ForcemergeIndex struct {
	Index string
}

func (ForcemergeIndex) Name() string { return "index.forcemerge" }
func (op ForcemergeIndex) plan() []restReq {
	return []restReq{{method: "POST", path: indexPath(op.Index) + "/_forcemerge"}}
}

// ClearCache clears the caches of one index.
type ClearCache struct {
	Index string
}

func (ClearCache) Name() string { return "index.clear_cache" }
func (op ClearCache) plan() []restReq {
	return []restReq{{method: "POST", path: indexPath(op.Index) + "/_cache/clear"}}
}

// fanOut plans one request per index name, preserving argument order.
func fanOut(method string, indices []string, suffix string) []restReq {
	reqs := make([]restReq, 0, len(indices))
	for _, idx := range indices {
		reqs = append(reqs, restReq{method: method, path: indexPath(idx) + suffix})
	}
	return reqs
}

// ------------------------------
// Alias operations
// ------------------------------

// PutAlias points alias at index.
type PutAlias struct {
	Index string
	Alias string
}

func (PutAlias) Name() string { return "alias.put" }
func (op PutAlias) plan() []restReq {
	path := fmt.Sprintf("%s/_alias/%s", indexPath(op.Index), url.PathEscape(op.Alias))
	return []restReq{{method: "PUT", path: path}}
}

// DeleteAlias removes alias from index.
type DeleteAlias struct {
	Index string
	Alias string
}

func (DeleteAlias) Name() string { return "alias.delete" }
func (op DeleteAlias) plan() []restReq {
	path := fmt.Sprintf("%s/_alias/%s", indexPath(op.Index), url.PathEscape(op.Alias))
	return []restReq{{method: "DELETE", path: path}}
}

// ------------------------------
// Document and search operations
// ------------------------------

// GetDocument fetches one document by ID.
type GetDocument struct {
	Index string
	ID    string
}

func (GetDocument) Name() string { return "doc.get" }
func (op GetDocument) plan() []restReq {
	path := fmt.Sprintf("%s/_doc/%s", indexPath(op.Index), url.PathEscape(op.ID))
	return []restReq{{method: "GET", path: path}}
}

// DeleteDocument deletes one document by ID.
type DeleteDocument struct {
	Index string
	ID    string
}

func (DeleteDocument) Name() string { return "doc.delete" }
func (op DeleteDocument) plan() []restReq {
	path := fmt.Sprintf("%s/_doc/%s", indexPath(op.Index), url.PathEscape(op.ID))
	return []restReq{{method: "DELETE", path: path}}
}

// Search runs a query body against an index, or the whole cluster when
// Index is empty.
type Search struct {
	Index string
	Query map[string]any
}

func (Search) Name() string { return "search" }
func (op Search) plan() []restReq {
	path := "/_search"
	if op.Index != "" {
		path = indexPath(op.Index) + "/_search"
	}
	body := op.Query
	if body == nil {
		body = map[string]any{}
	}
	return []restReq{{method: "POST", path: path, body: body}}
}

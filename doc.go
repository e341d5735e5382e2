// Package esadmin is a client SDK for administering an
// Elasticsearch-compatible search cluster from a front-end.
//
// Every call runs through an Invoker that tracks a RequestState snapshot
// (loading, error flags, HTTP status) the UI can bind against. Two helpers
// cover the common call shapes: Loader for read-only load-on-display
// queries, and Runner for user-triggered mutations with optional
// confirmation and result notification. The supported API calls form a
// closed set of typed operations; see the aliases in public_types.go.
//
// Cluster endpoints are registered in a ConnectionStore and selected
// explicitly. When nothing is selected, invokes are silent no-ops, matching
// a UI whose connection picker is empty.
package esadmin

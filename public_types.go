package esadmin

import (
	"github.com/rs/zerolog"

	"github.com/clusterlens/esadmin/internal/adapter"
	"github.com/clusterlens/esadmin/internal/conn"
)

// Public type aliases so SDK consumers can import only the esadmin package.

// Operations (closed set — see internal/adapter).
type (
	Operation = adapter.Operation

	ClusterInfo        = adapter.ClusterInfo
	ClusterHealth      = adapter.ClusterHealth
	ClusterStats       = adapter.ClusterStats
	ClusterSettings    = adapter.ClusterSettings
	PutClusterSettings = adapter.PutClusterSettings

	CatIndices = adapter.CatIndices
	CatAliases = adapter.CatAliases
	CatShards  = adapter.CatShards

	GetIndex        = adapter.GetIndex
	GetMapping      = adapter.GetMapping
	CreateIndex     = adapter.CreateIndex
	DeleteIndices   = adapter.DeleteIndices
	OpenIndices     = adapter.OpenIndices
	CloseIndices    = adapter.CloseIndices
	RefreshIndex    = adapter.RefreshIndex
	FlushIndex      = adapter.FlushIndex
	ForcemergeIndex = adapter.ForcemergeIndex
	ClearCache      = adapter.ClearCache

	PutAlias    = adapter.PutAlias
	DeleteAlias = adapter.DeleteAlias

	GetDocument    = adapter.GetDocument
	DeleteDocument = adapter.DeleteDocument
	Search         = adapter.Search
)

// Connection management.
type (
	ConnectionStore = conn.Store
	Config          = conn.Config
	AdapterOption   = adapter.Option
)

// Adapter construction knobs, re-exported for ConnectionStore.Add.
var (
	WithHTTPTimeout   = adapter.WithHTTPTimeout
	WithBasicAuth     = adapter.WithBasicAuth
	WithDebugLogging  = adapter.WithDebugLogging
	WithAdapterLogger = adapter.WithLogger
)

// ErrUnknownCluster is returned by store operations naming an unregistered
// cluster.
var ErrUnknownCluster = conn.ErrUnknownCluster

// NewConnectionStore returns an empty cluster registry.
func NewConnectionStore(log zerolog.Logger) *ConnectionStore { return conn.NewStore(log) }

// ConnectionStoreFromEnv builds a store from ESADMIN_* environment
// variables with the configured cluster selected.
func ConnectionStoreFromEnv(log zerolog.Logger) (*ConnectionStore, error) {
	return conn.FromEnv(log)
}

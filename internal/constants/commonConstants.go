package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusSuccess APIStatus = "success"
	APIStatusError   APIStatus = "error"

	CachePrefixSyncStats CachePrefix = "SYNC_STATS_"
	CachePrefixExportXML CachePrefix = "EXPORT_XML_"
)

// MaxSyncLogMessage bounds the free-text message column; anything longer is
// truncated before the log entry is written.
const MaxSyncLogMessage = 2000

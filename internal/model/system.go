package model

// VersionInfo describes the running application and its storage backend.
type VersionInfo struct {
	AppVersion   string
	StoreBackend string
	// SchemaVersion is the applied migration version; 0 for the memory store.
	SchemaVersion int64
}

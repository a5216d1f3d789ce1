package persistence

// Default document names and storage locations.
const (
	DefaultDataName      = "data.json"
	DefaultGraphDataName = "graphData.json"

	DefaultDir         = "./store"
	DefaultSQLitePath  = "./kakeibo.db"
	DefaultLevelDBPath = "./kakeibo.ldb"
)

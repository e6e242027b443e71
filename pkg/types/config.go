package types

// Transport selects how the MCP server is exposed to clients.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config represents the configuration for the leavedesk server
type Config struct {
	DBPath    string `json:"db_path"`
	LogLevel  string `json:"log_level,omitempty"`
	Transport string `json:"transport,omitempty"`
	HTTPAddr  string `json:"http_addr,omitempty"`
	Seed      bool   `json:"seed"`
}

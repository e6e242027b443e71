package project

// Name identifies the server during the MCP handshake.
const Name = "leavedesk"

// Version is stamped by the Makefile at build time.
var Version = "0.3.0"

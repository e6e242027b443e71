package main

import (
	"log"

	"github.com/leavedesk/leavedesk-mcp/cmd/leavedesk-mcp/cmd"
)

func main() {
	root := cmd.RootCmd()
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

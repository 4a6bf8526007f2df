// Genesis: concept development and execution-mode recommendation.
//
// Genesis takes a project idea through stakeholder storytelling,
// challenge stress-testing, and enhancement exploration, then analyzes
// the resulting concept for complexity and recommends how to build it.
//
// Usage:
//
//	genesis concept new "my-idea"   # Interactive concept development
//	genesis analyze concept.json    # Complexity analysis
//	genesis recommend concept.json  # Execution mode recommendation
//	genesis prd concept.json        # Generate a requirements document
//	genesis serve                   # Start MCP server (stdio transport)
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

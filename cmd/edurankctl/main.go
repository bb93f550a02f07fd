// Command edurankctl is the operator tool for the EduRank API: it seeds
// MongoDB, runs smoke checks against a deployment and previews rankings.
package main

import (
	"os"

	"github.com/edurank-nepal/api/cmd/edurankctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

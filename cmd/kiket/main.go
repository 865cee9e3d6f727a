package main

import (
	"github.com/kiket/kiket/pkg/cli/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/robotalks/tic.go/pkg/cli/sh"
	"github.com/robotalks/tic.go/pkg/env"

	_ "github.com/robotalks/tic.go/pkg/cli/cmds/device"
)

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}

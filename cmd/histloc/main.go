// Command histloc runs histogram-filter localization scenarios.
//
//	histloc run                       # built-in red/green corridor
//	histloc run --trace world.yaml    # print every intermediate belief
//	histloc run --check world.yaml    # fail when the result drifts from "expected"
//	histloc validate *.yaml
package main

import "github.com/katalvlaran/histloc/internal/cli"

func main() {
	cli.Execute()
}

package main

import (
	"os"

	prover "github.com/BakerStreetPhantom/zk-sha512/provers"
	"github.com/BakerStreetPhantom/zk-sha512/provers/types"
)

func main() {
	prover.ProverMain(types.NewConfig(os.Args...))
}

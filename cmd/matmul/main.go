package main

import (
	"fmt"
	"io"
	"os"

	"github.com/danmuck/matmul/internal/logging"
	"github.com/danmuck/matmul/internal/matrix"
	"github.com/danmuck/matmul/internal/report"
	"github.com/rs/zerolog/log"
)

const envConfigPath = "MATMUL_CONFIG"

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "matmul: %v\n", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer) error {
	overrides, err := loadLogOverrides(os.Getenv(envConfigPath))
	if err != nil {
		return err
	}
	if err := logging.Configure(logging.ProfileRuntime, overrides); err != nil {
		return err
	}

	a, b := matrix.Fixture(), matrix.Fixture()
	c := matrix.Multiply(a, b)
	log.Debug().
		Interface("a", a).
		Interface("b", b).
		Interface("product", c).
		Msg("matrix product computed")

	return report.Write(stdout, c)
}

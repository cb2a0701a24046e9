package data

import (
	_ "embed"
)

// SeedJSON is the sample data set loaded by the seed operation
//
//go:embed seed.json
var SeedJSON []byte

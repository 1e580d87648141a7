//go:build tools

package tools

// Tool dependencies pinned in go.mod. `go generate ./internal/api` runs
// oapi-codegen; the goose CLI works against the same migrations directory.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)

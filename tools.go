//go:build tools

package main

// Pinned code generators. Run with:
//
//	go run github.com/sqlc-dev/sqlc/cmd/sqlc generate

import (
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
)

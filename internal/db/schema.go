package db

import _ "embed"

// Schema is idempotent and safe to apply on every start.
//
//go:embed schema.sql
var Schema string

// Package configs provides the embedded configuration templates
// printed by `corncraft config`.
package configs

import _ "embed"

//go:embed corncraft.yml
var DefaultConfigBytes []byte

//go:embed corncraft-minimal.yml
var MinimalConfigBytes []byte

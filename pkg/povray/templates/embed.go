// Package templates provides the embedded default POV-Ray scene
// script template.
package templates

import _ "embed"

// Script is the default scene script template used when no custom
// template file is configured. Square-bracket markers are substituted
// at script export time.
//
//go:embed template.pov
var Script string

package config

import "strings"

// COLORCUBE_SCRAMBLE_TIMES maps to the scramble-times key.
var envKeyReplacer = strings.NewReplacer("-", "_")

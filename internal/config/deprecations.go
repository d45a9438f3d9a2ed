package config

import "github.com/BurntSushi/toml"

// DeprecatedConfigWarnings reports warnings for legacy config settings.
func DeprecatedConfigWarnings(content string) []string {
	type marker struct{}
	var decoded marker
	md, err := toml.Decode(content, &decoded)
	if err != nil {
		return nil
	}

	var warnings []string
	if md.IsDefined("split", "middle") {
		warnings = append(warnings, "split.middle is deprecated; use split.pivot instead")
	}
	if md.IsDefined("split", "minimum_height") {
		warnings = append(warnings, "split.minimum_height is no longer supported; use split.minimum_bottom_height")
	}
	return warnings
}

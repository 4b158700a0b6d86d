package configloader

import "github.com/yaklabco/gospell/pkg/config"

// merge combines two settings layers, with override taking precedence over
// base. List fields are additive: each layer contributes its entries on top
// of the previous ones, deduplicated in first-seen order, so a project config
// extends the user's word list instead of replacing it. Scalars overwrite
// when set.
func merge(base, override config.Settings) config.Settings {
	result := base

	result.Dictionaries = appendUnique(base.Dictionaries, override.Dictionaries)
	result.Words = appendUnique(base.Words, override.Words)
	result.FlagWords = appendUnique(base.FlagWords, override.FlagWords)
	result.IgnorePatterns = appendUnique(base.IgnorePatterns, override.IgnorePatterns)
	result.IgnorePaths = appendUnique(base.IgnorePaths, override.IgnorePaths)

	if override.MinWordLength != 0 {
		result.MinWordLength = override.MinWordLength
	}
	if override.UseGlobal != nil {
		result.UseGlobal = override.UseGlobal
	}

	return result
}

// MergeAll merges settings layers in order, with later layers taking
// precedence.
func MergeAll(layers ...config.Settings) config.Settings {
	if len(layers) == 0 {
		return config.DefaultSettings()
	}

	result := layers[0]
	for i := 1; i < len(layers); i++ {
		result = merge(result, layers[i])
	}
	return result
}

// appendUnique appends extra onto base, skipping entries already present.
func appendUnique(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}

	seen := make(map[string]struct{}, len(base)+len(extra))
	result := make([]string, 0, len(base)+len(extra))
	for _, lists := range [][]string{base, extra} {
		for _, entry := range lists {
			if _, dup := seen[entry]; dup {
				continue
			}
			seen[entry] = struct{}{}
			result = append(result, entry)
		}
	}
	return result
}

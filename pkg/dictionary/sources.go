package dictionary

// Source describes where a non-builtin dictionary comes from.
type Source struct {
	// ID is the dictionary identifier used in configuration.
	ID string

	// URL is a remote newline-delimited wordlist, fetched through the
	// download cache.
	URL string

	// Path is a local wordlist file. Takes precedence over URL.
	Path string
}

// wordlistBase hosts the maintained remote wordlists.
const wordlistBase = "https://raw.githubusercontent.com/yaklabco/gospell-dictionaries/main"

// defaultSources are the remote dictionaries known out of the box. User
// configuration can register additional sources by ID.
//
//nolint:gochecknoglobals // Read-only source table.
var defaultSources = map[string]Source{
	"en_us": {ID: "en_us", URL: wordlistBase + "/en_us.txt"},
	"en_gb": {ID: "en_gb", URL: wordlistBase + "/en_gb.txt"},
	"de":    {ID: "de", URL: wordlistBase + "/de.txt"},
	"es":    {ID: "es", URL: wordlistBase + "/es.txt"},
	"fr":    {ID: "fr", URL: wordlistBase + "/fr.txt"},

	// Per-language term dictionaries (keywords, stdlib names, common
	// identifiers). Activated through the language table, not user config.
	"bash":       {ID: "bash", URL: wordlistBase + "/lang/bash.txt"},
	"c":          {ID: "c", URL: wordlistBase + "/lang/c.txt"},
	"cpp":        {ID: "cpp", URL: wordlistBase + "/lang/cpp.txt"},
	"csharp":     {ID: "csharp", URL: wordlistBase + "/lang/csharp.txt"},
	"elixir":     {ID: "elixir", URL: wordlistBase + "/lang/elixir.txt"},
	"go":         {ID: "go", URL: wordlistBase + "/lang/go.txt"},
	"javascript": {ID: "javascript", URL: wordlistBase + "/lang/javascript.txt"},
	"lua":        {ID: "lua", URL: wordlistBase + "/lang/lua.txt"},
	"php":        {ID: "php", URL: wordlistBase + "/lang/php.txt"},
	"python":     {ID: "python", URL: wordlistBase + "/lang/python.txt"},
	"ruby":       {ID: "ruby", URL: wordlistBase + "/lang/ruby.txt"},
	"rust":       {ID: "rust", URL: wordlistBase + "/lang/rust.txt"},
	"typescript": {ID: "typescript", URL: wordlistBase + "/lang/typescript.txt"},
}

// KnownSource reports whether id resolves against the default source table.
func KnownSource(id string) bool {
	_, ok := defaultSources[id]
	return ok
}

// lookupSource resolves id against custom sources first, then the default
// table. A miss returns ok == false; the manager logs and skips the ID.
func lookupSource(id string, custom map[string]Source) (Source, bool) {
	if src, ok := custom[id]; ok {
		return src, true
	}
	src, ok := defaultSources[id]
	return src, ok
}

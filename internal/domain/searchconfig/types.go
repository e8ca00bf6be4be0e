package searchconfig

const (
	// DefaultAPIURL is the Serper search endpoint used when the config file does not set one.
	DefaultAPIURL = "https://google.serper.dev/search"
	// DefaultMaxResults is reported when the config file does not set max_results.
	DefaultMaxResults = 10
	// PlaceholderAPIKey means no key was configured anywhere.
	PlaceholderAPIKey = "your-api-key-here"
	// APIKeyEnvVar is consulted when the config file has no api key.
	APIKeyEnvVar = "SERPER_API_KEY"
)

// Source records where the api key of a SearchConfig came from.
type Source string

const (
	SourceDefault     Source = "default"
	SourceConfigFile  Source = "config file"
	SourceEnvironment Source = "environment variable"
)

// SearchConfig is the resolved Serper API configuration.
type SearchConfig struct {
	APIKey     string `json:"api_key"`
	APIURL     string `json:"api_url"`
	MaxResults int    `json:"max_results"`
	Source     Source `json:"-"`
}

// HasAPIKey reports whether a real key (not blank, not the placeholder) is present.
func (c SearchConfig) HasAPIKey() bool {
	return c.APIKey != "" && c.APIKey != PlaceholderAPIKey
}

// File is the on-disk shape of the config file. JSON and YAML are both accepted.
type File struct {
	Serper *SerperSection `json:"serper,omitempty" yaml:"serper,omitempty" jsonschema:"description=Serper.dev search API settings"`
}

// SerperSection holds the optional Serper settings of a config file.
type SerperSection struct {
	APIKey     *string `json:"api_key,omitempty" yaml:"api_key,omitempty" jsonschema:"description=Serper.dev API key"`
	APIURL     *string `json:"api_url,omitempty" yaml:"api_url,omitempty" jsonschema:"description=Search endpoint,default=https://google.serper.dev/search"`
	MaxResults *int    `json:"max_results,omitempty" yaml:"max_results,omitempty" jsonschema:"description=Advertised result limit,default=10"`
}

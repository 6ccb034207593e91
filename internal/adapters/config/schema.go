package config

// parkfile is the structure of the park.yaml configuration file. Durations
// are strings in time.ParseDuration form.
type parkfile struct {
	Resolver resolverSection `yaml:"resolver"`
	Cache    cacheSection    `yaml:"cache"`
	Catalog  catalogSection  `yaml:"catalog"`
	Launch   launchSection   `yaml:"launch"`
}

type resolverSection struct {
	URL         string `yaml:"url"`
	Timeout     string `yaml:"timeout"`
	Retries     *int   `yaml:"retries"`
	Backoff     string `yaml:"backoff"`
	Parallelism int    `yaml:"parallelism"`
}

type cacheSection struct {
	TTL string `yaml:"ttl"`
}

type catalogSection struct {
	Root string `yaml:"root"`
}

type launchSection struct {
	Inherit []string `yaml:"inherit"`
}

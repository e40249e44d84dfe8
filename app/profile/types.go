package profile

// Profile is one user's interest profile, loaded from a yaml file in the
// profiles directory. Keywords may be given as an explicit weight mapping,
// as an ordered list (rank implies weight) or as a newline-delimited file;
// whichever form is used, it is resolved once at load time into the
// canonical Weights mapping.
type Profile struct {
	Name        string          // Derived from filename (without .yml extension)
	Recipient   string          `yaml:"recipient"`
	Alias       string          `yaml:"alias"`
	Categories  []string        `yaml:"categories"`
	Keywords    map[string]int  `yaml:"keywords"`
	KeywordList []string        `yaml:"keyword_list"`
	KeywordFile string          `yaml:"keyword_file"`
	Settings    ProfileSettings `yaml:"settings"`

	// Weights is the canonical keyword->weight mapping resolved at load
	// time; it is the only keyword field the pipeline reads.
	Weights map[string]int `yaml:"-"`
}

type ProfileSettings struct {
	Enabled           bool   `yaml:"enabled"`
	Headline          string `yaml:"headline"`
	TokenSetThreshold int    `yaml:"token_set_threshold"`
	PartialThreshold  int    `yaml:"partial_threshold"`
}

package cfg

type Cfg struct {
	// Storage configuration
	DBPath string

	// Application configuration
	ProfilesDir       string
	Port              string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string

	// Source configuration
	Source        string
	ListingMode   string
	SameDateCheck bool
	MaxResults    int

	// Matching thresholds (0-100 fuzzy scale)
	TokenSetThreshold int
	PartialThreshold  int

	// Tag pipeline configuration
	TagScoreThreshold  float64
	TagCap             int
	TagDedupeThreshold int
	ShowTagThreshold   float64
	ShowTagCap         int

	// Mail delivery
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPAlias    string
	SMTPPassword string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}

package env

import (
	"os"
)

const (
	batThemeVar            = "BAT_THEME"
	colorTermVar           = "COLORTERM"
	gitConfigParametersVar = "GIT_CONFIG_PARAMETERS"
	gitPrefixVar           = "GIT_PREFIX"
	featuresVar            = "PRISM_FEATURES"
	navigateVar            = "PRISM_NAVIGATE"
	maxLineDistanceVar     = "PRISM_EXPERIMENTAL_MAX_LINE_DISTANCE_FOR_NAIVELY_PAIRED_LINES"
	prismPagerVar          = "PRISM_PAGER"
)

// Pagers holds the two pager commands a snapshot carries. Primary is the
// raw value of PRISM_PAGER, stored verbatim when set. Fallback is the
// resolved general-purpose pager command and is always populated.
type Pagers struct {
	Primary  *string
	Fallback string
}

// Snapshot is an immutable capture of the process environment taken once at
// startup. Every field is optional; a nil pointer means the variable was not
// set or the lookup failed. Consumers must treat the value as read-only.
type Snapshot struct {
	BatTheme            *string
	ColorTerm           *string
	CurrentDir          *string
	MaxLineDistance     *string
	Features            *string
	GitConfigParameters *string
	GitPrefix           *string
	Hostname            *string
	Navigate            *string
	Pagers              Pagers
}

// Init reads the environment variables prism cares about, plus the working
// directory and hostname, exactly once. It never fails: missing variables
// and failed lookups yield nil fields. The fallback pager is resolved here
// so that later stages never have to consult the live environment again.
func Init() Snapshot {
	return Snapshot{
		BatTheme:            lookup(batThemeVar),
		ColorTerm:           lookup(colorTermVar),
		CurrentDir:          currentDir(),
		MaxLineDistance:     lookup(maxLineDistanceVar),
		Features:            lookup(featuresVar),
		GitConfigParameters: lookup(gitConfigParametersVar),
		GitPrefix:           lookup(gitPrefixVar),
		Hostname:            hostname(),
		Navigate:            lookup(navigateVar),
		Pagers: Pagers{
			Primary:  lookup(prismPagerVar),
			Fallback: resolvePager(lookup(batPagerVar), lookup(generalPagerVar), os.Args[0]),
		},
	}
}

func lookup(key string) *string {
	if v, ok := os.LookupEnv(key); ok {
		return &v
	}
	return nil
}

func currentDir() *string {
	dir, err := os.Getwd()
	if err != nil {
		return nil
	}
	return &dir
}

func hostname() *string {
	name, err := os.Hostname()
	if err != nil {
		return nil
	}
	return &name
}

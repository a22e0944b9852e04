package env

import (
	"path/filepath"
	"strings"

	"github.com/google/shlex"

	"github.com/prism-view/prism/internal/dbg"
)

const (
	batPagerVar     = "BAT_PAGER"
	generalPagerVar = "PAGER"

	defaultPager = "less"
)

// resolvePager computes the general-purpose pager command. BAT_PAGER takes
// precedence over PAGER, and "less" is the default when neither is set.
//
// The candidate is split with shell quoting rules only to inspect its
// executable; the returned string is always the original candidate, never a
// rejoin of the tokens. Splitting and rejoining would corrupt compound
// commands such as `/bin/sh -c "head -10000 | cat"`, which must round-trip
// untouched.
//
// Two classes of candidate are rejected in favor of "less": any command
// whose executable is prism itself (paging prism through prism recurses),
// and, for PAGER-sourced candidates only, the pagers known to mangle
// colored output. BAT_PAGER is an explicit choice and is trusted with the
// latter.
func resolvePager(batPager, pager *string, selfPath string) string {
	cmd := defaultPager
	fromGeneral := false
	switch {
	case batPager != nil && *batPager != "":
		cmd = *batPager
	case pager != nil:
		cmd = *pager
		fromGeneral = true
	}

	parts, err := shlex.Split(cmd)
	if err != nil || len(parts) == 0 {
		return defaultPager
	}

	bin := fileStem(parts[0])
	if bin == fileStem(selfPath) {
		dbg.Debugf("pager %q would invoke this binary, using %q instead", cmd, defaultPager)
		return defaultPager
	}
	if fromGeneral && (bin == "more" || bin == "most") {
		dbg.Debugf("replacing pager %q with %q", cmd, defaultPager)
		return defaultPager
	}

	return cmd
}

// fileStem returns the base name of a path without its extension, so that
// "/usr/bin/less" and `C:\tools\less.exe` both identify as "less".
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

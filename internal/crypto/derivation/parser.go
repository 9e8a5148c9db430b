package derivation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedPath is returned when a secret URI does not match the grammar.
var ErrMalformedPath = errors.New("malformed derivation path")

// Path is a parsed secret URI: the base secret source, the ordered junction
// list and an optional password embedded after "///".
type Path struct {
	// Phrase is the base secret source: a mnemonic, a 0x-prefixed hex seed,
	// or empty for the well-known dev phrase.
	Phrase string
	// Junctions are applied left to right, outermost segment first.
	Junctions []Junction
	// Password is the "///" suffix, if any. It only affects mnemonic bases.
	Password string
}

// HasPassword reports whether the URI carried a "///" suffix.
func (p *Path) HasPassword() bool {
	return p.Password != ""
}

// Grammar: <base> ( "/" <soft> | "//" <hard> )* ( "///" <password> )?
// Junction bodies cannot contain '/', so the first "///" always starts the
// password.
var (
	secretURIPattern = regexp.MustCompile(`^(?P<phrase>[\d\w ]+)?(?P<path>(//?[^/]+)*)(///(?P<password>.*))?$`)
	junctionPattern  = regexp.MustCompile(`/(/?[^/]+)`)
)

// ParseURI parses a secret URI of the form
//
//	phrase/soft-junction//hard-junction///password
//
// into its parts. The phrase may be empty (dev phrase), a mnemonic, or a
// 0x-prefixed hex seed. It fails with ErrMalformedPath on anything the
// grammar does not cover.
func ParseURI(uri string) (*Path, error) {
	m := secretURIPattern.FindStringSubmatch(uri)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedPath, uri)
	}

	phrase := m[secretURIPattern.SubexpIndex("phrase")]
	rawPath := m[secretURIPattern.SubexpIndex("path")]
	password := m[secretURIPattern.SubexpIndex("password")]

	var junctions []Junction
	for _, jm := range junctionPattern.FindAllStringSubmatch(rawPath, -1) {
		body := jm[1]
		if rest, ok := strings.CutPrefix(body, "/"); ok {
			junctions = append(junctions, Hard(rest))
		} else {
			junctions = append(junctions, Soft(body))
		}
	}

	return &Path{
		Phrase:    phrase,
		Junctions: junctions,
		Password:  password,
	}, nil
}

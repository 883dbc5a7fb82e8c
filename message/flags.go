package message

import "strings"

// Flags is an IMAP flag bitset over the six system flags.
type Flags uint8

const (
	FlagAnswered Flags = 1 << iota
	FlagDeleted
	FlagDraft
	FlagFlagged
	FlagRecent
	FlagSeen
)

var systemFlags = map[string]Flags{
	"\\answered": FlagAnswered,
	"\\deleted":  FlagDeleted,
	"\\draft":    FlagDraft,
	"\\flagged":  FlagFlagged,
	"\\recent":   FlagRecent,
	"\\seen":     FlagSeen,
}

// Has reports whether all bits of want are set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// ParseFlags splits s on spaces and matches each lower-cased token
// against the IMAP system flags, OR-ing recognised ones into the
// returned bitset. Every raw token (original case, including empty
// strings from repeated spaces) is also collected into raw. flagCount
// is always len(strings.Split(s, " ")), matching every token including
// ones that don't name a system flag.
func ParseFlags(s string) (flags Flags, raw []string, flagCount int) {
	tokens := strings.Split(s, " ")
	flagCount = len(tokens)
	for _, tok := range tokens {
		raw = append(raw, tok)
		if bit, ok := systemFlags[strings.ToLower(tok)]; ok {
			flags |= bit
		}
	}
	return flags, raw, flagCount
}

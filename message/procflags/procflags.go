// Package procflags defines the bitset of options that control which
// optional, normally-suppressed data a parse run retains.
package procflags

// Flags is a bitset of ProcessingFlags members. The zero value retains
// none of the optional data below.
type Flags uint

const (
	// IncludeRawHeaders retains the raw header block on ParsedMessage.
	IncludeRawHeaders Flags = 1 << iota
	// IncludeRawBody retains the raw body block on ParsedMessage.
	IncludeRawBody
	// IncludeSmimeSignedData keeps application/pkcs7-signature parts as
	// attachments instead of silently dropping them.
	IncludeSmimeSignedData
	// IncludeSmimeEncryptedEnvelopeData keeps the opaque
	// application/pkcs7-mime envelope part as an attachment named
	// smime.p7m, in addition to its decrypted inner parts.
	IncludeSmimeEncryptedEnvelopeData
	// IncludeWinMailData keeps the synthetic winmail.dat part produced
	// from a TNEF attachment's decoded body.
	IncludeWinMailData
)

// Has reports whether all bits of want are set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

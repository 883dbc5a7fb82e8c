package message

import "github.com/mailchannels/msgparse/message/procflags"

// Config is the JSON-serializable form of Options: a plain struct of
// named booleans, JSON-tagged so a host can load it from its own config
// file rather than building a procflags.Flags bitset by hand.
type Config struct {
	IncludeRawHeaders                 bool `json:"include_raw_headers,omitempty"`
	IncludeRawBody                     bool `json:"include_raw_body,omitempty"`
	IncludeSmimeSignedData             bool `json:"include_smime_signed_data,omitempty"`
	IncludeSmimeEncryptedEnvelopeData bool `json:"include_smime_encrypted_envelope_data,omitempty"`
	IncludeWinMailData                 bool `json:"include_winmail_data,omitempty"`
	ParseExtended                      bool `json:"parse_extended_headers,omitempty"`
}

// Flags folds c's booleans into a procflags.Flags bitset.
func (c Config) Flags() procflags.Flags {
	var f procflags.Flags
	if c.IncludeRawHeaders {
		f |= procflags.IncludeRawHeaders
	}
	if c.IncludeRawBody {
		f |= procflags.IncludeRawBody
	}
	if c.IncludeSmimeSignedData {
		f |= procflags.IncludeSmimeSignedData
	}
	if c.IncludeSmimeEncryptedEnvelopeData {
		f |= procflags.IncludeSmimeEncryptedEnvelopeData
	}
	if c.IncludeWinMailData {
		f |= procflags.IncludeWinMailData
	}
	return f
}

// Options builds an Options value from c, leaving the Cms/Tnef/Logger
// capability fields unset - those are runtime collaborators, not
// JSON-serializable configuration.
func (c Config) Options() Options {
	return Options{Flags: c.Flags(), ParseExtended: c.ParseExtended}
}

// ConfigFromFlags is the inverse of Config.Flags, used when a caller
// already has a procflags.Flags value (e.g. constructed in code) and
// wants to serialize the equivalent Config out to JSON.
func ConfigFromFlags(f procflags.Flags, parseExtended bool) Config {
	return Config{
		IncludeRawHeaders:                 f.Has(procflags.IncludeRawHeaders),
		IncludeRawBody:                     f.Has(procflags.IncludeRawBody),
		IncludeSmimeSignedData:             f.Has(procflags.IncludeSmimeSignedData),
		IncludeSmimeEncryptedEnvelopeData: f.Has(procflags.IncludeSmimeEncryptedEnvelopeData),
		IncludeWinMailData:                 f.Has(procflags.IncludeWinMailData),
		ParseExtended:                      parseExtended,
	}
}

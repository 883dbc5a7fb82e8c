// Package messagefile provides the file-I/O convenience collaborators
// that sit outside the core parser: loading a raw message from disk and
// parsing it, and saving a parsed message's raw headers/body back out.
package messagefile

import (
	"fmt"
	"io/ioutil"

	"github.com/mailchannels/msgparse/message"
)

// Load reads path and parses its contents with opt. Its only error is a
// file that can't be read; parsing itself never fails.
func Load(path string, opt message.Options) (*message.ParsedMessage, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("messagefile: reading %s: %w", path, err)
	}
	return message.Parse(raw, opt), nil
}

// Save writes pm's raw headers and body back out, joined by the
// canonical blank-line delimiter. pm must have been parsed with
// IncludeRawHeaders and IncludeRawBody set; a part that was not retained
// is written as an empty string, leaving little more than the delimiter.
func Save(path string, pm *message.ParsedMessage) error {
	data := pm.RawHeaders + "\r\n\r\n" + pm.RawBody
	if err := ioutil.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("messagefile: writing %s: %w", path, err)
	}
	return nil
}

// Package tnef abstracts the external TNEF (Transport-Neutral
// Encapsulation Format, "winmail.dat") decoder the message parser
// delegates to. TNEF decoding internals are a black box to the parser:
// it only ever sees a body and a flattened attachment list.
package tnef

import "github.com/teamwork/tnef"

// Attachment is one file extracted from a TNEF blob.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Result is what a Decoder extracts from a TNEF blob.
type Result struct {
	Body        string
	HasBody     bool
	ContentType string
	Attachments []Attachment
}

// Decoder is the injected TNEF capability.
type Decoder interface {
	Decode(data []byte) (Result, bool)
}

// TeamworkDecoder is the default Decoder, backed by
// github.com/teamwork/tnef.
type TeamworkDecoder struct{}

// Decode implements Decoder.
func (TeamworkDecoder) Decode(data []byte) (Result, bool) {
	d, err := tnef.Decode(data)
	if err != nil {
		return Result{}, false
	}

	res := Result{}
	switch {
	case len(d.BodyHTML) > 0:
		res.Body = string(d.BodyHTML)
		res.HasBody = true
		res.ContentType = "text/html"
	case len(d.Body) > 0:
		res.Body = string(d.Body)
		res.HasBody = true
		res.ContentType = "text/plain"
	}

	for _, a := range d.Attachments {
		res.Attachments = append(res.Attachments, Attachment{
			Name:        a.Title,
			ContentType: "application/octet-stream",
			Data:        a.Data,
		})
	}
	return res, true
}

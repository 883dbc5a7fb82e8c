package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mailchannels/msgparse/log"
	"github.com/mailchannels/msgparse/message"
	"github.com/mailchannels/msgparse/message/smime"
	"github.com/mailchannels/msgparse/message/tnef"
	"github.com/mailchannels/msgparse/messagefile"
)

var (
	includeRawHeaders bool
	includeRawBody    bool
	includeSmimeSig   bool
	includeSmimeMime  bool
	includeWinMail    bool
	parseExtended     bool
	withDefaultCms    bool
	withDefaultTnef   bool

	parseCmd = &cobra.Command{
		Use:   "parse [file]",
		Short: "parse a raw message file and print its ParsedMessage as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
)

func init() {
	fs := pflag.NewFlagSet("parse-flags", pflag.ContinueOnError)
	fs.BoolVar(&includeRawHeaders, "include-raw-headers", false, "retain raw_headers on the result")
	fs.BoolVar(&includeRawBody, "include-raw-body", false, "retain raw_body on the result")
	fs.BoolVar(&includeSmimeSig, "include-smime-signed", false, "keep pkcs7-signature parts as attachments")
	fs.BoolVar(&includeSmimeMime, "include-smime-envelope", false, "keep the opaque smime.p7m part as an attachment")
	fs.BoolVar(&includeWinMail, "include-winmail", false, "keep the synthetic winmail.dat part")
	fs.BoolVar(&parseExtended, "extended", false, "capture ExtendedProperties")
	fs.BoolVar(&withDefaultCms, "with-cms", false, "use the default go.mozilla.org/pkcs7 CmsProvider")
	fs.BoolVar(&withDefaultTnef, "with-tnef", true, "use the default github.com/teamwork/tnef Decoder")
	parseCmd.Flags().AddFlagSet(fs)

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := message.Config{
		IncludeRawHeaders:                 includeRawHeaders,
		IncludeRawBody:                     includeRawBody,
		IncludeSmimeSignedData:            includeSmimeSig,
		IncludeSmimeEncryptedEnvelopeData: includeSmimeMime,
		IncludeWinMailData:                includeWinMail,
		ParseExtended:                     parseExtended,
	}
	opt := cfg.Options()
	if verbose {
		if l, err := log.GetLogger("stderr"); err == nil {
			l.SetLevel("debug")
			opt.Logger = l
		}
	}
	if withDefaultCms {
		opt.Cms = smime.PKCS7Provider{}
	}
	if withDefaultTnef {
		opt.Tnef = tnef.TeamworkDecoder{}
	}

	pm, err := messagefile.Load(args[0], opt)
	if err != nil {
		return fmt.Errorf("msgparse: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(pm)
}

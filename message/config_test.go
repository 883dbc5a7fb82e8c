package message

import (
	"encoding/json"
	"testing"

	"github.com/mailchannels/msgparse/message/procflags"
)

func TestConfigFlagsRoundTrip(t *testing.T) {
	cfg := Config{IncludeRawHeaders: true, IncludeWinMailData: true, ParseExtended: true}
	f := cfg.Flags()

	if !f.Has(procflags.IncludeRawHeaders) || !f.Has(procflags.IncludeWinMailData) {
		t.Errorf("flags = %v, want RawHeaders|WinMailData set", f)
	}
	if f.Has(procflags.IncludeRawBody) {
		t.Error("flags has IncludeRawBody set, want not")
	}

	back := ConfigFromFlags(f, cfg.ParseExtended)
	if back != cfg {
		t.Errorf("round trip = %+v, want %+v", back, cfg)
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := Config{IncludeRawBody: true, ParseExtended: true}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Config
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != cfg {
		t.Errorf("got = %+v, want %+v", got, cfg)
	}
}

func TestConfigOptionsLeavesCapabilitiesUnset(t *testing.T) {
	opt := Config{IncludeRawHeaders: true}.Options()
	if opt.Cms != nil || opt.Tnef != nil || opt.Logger != nil {
		t.Error("Options() from Config set a capability field, want all nil")
	}
}

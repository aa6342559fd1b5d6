package cli

import (
	"strings"
	"testing"
)

func TestServeKeyerEmptyPrefix(t *testing.T) {
	if k := serveKeyer(""); k != nil {
		t.Errorf("serveKeyer(\"\") = %v, want nil for default keying", k)
	}
}

func TestServeKeyerPrefixesKeys(t *testing.T) {
	k := serveKeyer("prod:")
	if k == nil {
		t.Fatal("serveKeyer returned nil for a non-empty prefix")
	}
	key := k.SeriesKey("https://example.com/data.json")
	if !strings.HasPrefix(key, "prod:") {
		t.Errorf("series key %q missing deployment prefix", key)
	}
}

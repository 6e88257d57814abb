package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dm-vev/megatrunk/server"
)

func TestGrowReport(t *testing.T) {
	conf, err := server.DefaultConfig().Config(nil)
	if err != nil {
		t.Fatalf("convert config: %v", err)
	}
	var out bytes.Buffer
	if err := grow(&out, conf, 3, 6); err != nil {
		t.Fatalf("grow: %v", err)
	}
	report := out.String()
	for _, want := range []string{"shape: ", "anchors:", "blocks: ", "quarter_log: "} {
		if !strings.Contains(report, want) {
			t.Fatalf("expected report to contain %q, got:\n%s", want, report)
		}
	}
	if strings.Contains(report, "soil: ") {
		t.Fatalf("expected grass to be kept under the trunk, got:\n%s", report)
	}
}

func TestGrowRejectsInvalidHeight(t *testing.T) {
	conf, err := server.DefaultConfig().Config(nil)
	if err != nil {
		t.Fatalf("convert config: %v", err)
	}
	if err := grow(&bytes.Buffer{}, conf, 3, 0); err == nil {
		t.Fatal("expected height 0 to fail")
	}
}

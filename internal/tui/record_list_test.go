package tui

import (
	"testing"

	"github.com/wjwat/porkpy/internal/porkbun"

	"github.com/google/go-cmp/cmp"
)

func TestFilterRecords(t *testing.T) {
	records := []porkbun.Record{
		{ID: "1", Name: "example.com", Type: "A", Content: "1.2.3.4"},
		{ID: "2", Name: "www.example.com", Type: "CNAME", Content: "example.com"},
		{ID: "3", Name: "example.com", Type: "MX", Content: "mail.example.com"},
		{ID: "4", Name: "api.example.com", Type: "A", Content: "5.6.7.8"},
	}

	t.Run("no filter returns everything", func(t *testing.T) {
		got := filterRecords(records, "")
		if diff := cmp.Diff(records, got); diff != "" {
			t.Errorf("filtered records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("type filter keeps only matching records", func(t *testing.T) {
		got := filterRecords(records, "A")
		want := []porkbun.Record{records[0], records[3]}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("filtered records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("filter with no matches", func(t *testing.T) {
		if got := filterRecords(records, "TXT"); len(got) != 0 {
			t.Errorf("expected no records, got %d", len(got))
		}
	})
}

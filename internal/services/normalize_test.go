package services

import (
	"testing"
)

func TestNormalizeSubmissionDates(t *testing.T) {
	cases := []struct {
		name  string
		field string
		in    string
		want  string
	}{
		{name: "valid date round-trips", field: "given_date", in: "05-03-2024", want: "05-03-2024"},
		{name: "padded date is trimmed", field: "purchase_date", in: " 01-12-2023 ", want: "01-12-2023"},
		{name: "malformed date kept verbatim", field: "collected_date", in: "not-a-date", want: "not-a-date"},
		{name: "wrong layout kept verbatim", field: "prev_given_date", in: "2024-03-05", want: "2024-03-05"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := NormalizeSubmission(map[string]string{tc.field: tc.in})
			if got := out[tc.field]; got != tc.want {
				t.Fatalf("%s: want=%q got=%q", tc.field, tc.want, got)
			}
		})
	}
}

func TestNormalizeSubmissionCurrency(t *testing.T) {
	out := NormalizeSubmission(map[string]string{
		"amount": "₹1,23,000",
		"total":  "₹1,45,140",
	})
	if out["amount"] != "123000" {
		t.Fatalf("amount: want=123000 got=%q", out["amount"])
	}
	if out["total"] != "145140" {
		t.Fatalf("total: want=145140 got=%q", out["total"])
	}
}

func TestNormalizeSubmissionLegacyFields(t *testing.T) {
	out := NormalizeSubmission(map[string]string{
		"name":     "  office router  ",
		"category": "Router",
		"owner":    "  priya  ",
		"status":   "Available",
	})
	if out["name"] != "Office Router" {
		t.Fatalf("name: got=%q", out["name"])
	}
	if out["category"] != "router" {
		t.Fatalf("category: got=%q", out["category"])
	}
	if out["owner"] != "priya" {
		t.Fatalf("owner: got=%q", out["owner"])
	}
	if out["status"] != "available" {
		t.Fatalf("status: got=%q", out["status"])
	}
}

func TestNormalizeLegacyFieldsOnlyPresentKeys(t *testing.T) {
	out := NormalizeLegacyFields(map[string]string{"owner": "sam"})
	if len(out) != 1 {
		t.Fatalf("expected only owner, got %v", out)
	}
	if out["owner"] != "sam" {
		t.Fatalf("owner: got=%q", out["owner"])
	}
}

func TestNormalizeSubmissionPassesUnknownKeysThrough(t *testing.T) {
	raw := map[string]string{"serial_no": "SN-001", "free_space": "120 GB"}
	out := NormalizeSubmission(raw)
	if out["serial_no"] != "SN-001" || out["free_space"] != "120 GB" {
		t.Fatalf("unknown keys mutated: %v", out)
	}
	// the input map stays untouched
	raw["amount"] = "₹500"
	if _, ok := out["amount"]; ok {
		t.Fatal("output aliases input map")
	}
}

func TestParseStoredDate(t *testing.T) {
	if _, ok := ParseStoredDate("31-02-2024"); ok {
		t.Fatal("expected impossible date to fail")
	}
	d, ok := ParseStoredDate("29-02-2024")
	if !ok {
		t.Fatal("expected leap day to parse")
	}
	if d.Day() != 29 || int(d.Month()) != 2 || d.Year() != 2024 {
		t.Fatalf("parsed wrong date: %v", d)
	}
}

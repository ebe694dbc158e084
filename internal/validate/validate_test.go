package validate

import (
	"strings"
	"testing"
)

func TestRequiredRejectsWhitespace(t *testing.T) {
	var errs Errors
	v := "   "
	Required(&errs, "name", &v, MinLen(2))

	if len(errs) != 1 {
		t.Fatalf("errors = %v, want 1", errs)
	}
	if errs[0].Field != "name" || errs[0].Message != "is required" {
		t.Errorf("unexpected error %+v", errs[0])
	}
}

func TestRequiredTrimsAndNormalizes(t *testing.T) {
	var errs Errors
	v := " 98-765-432-10 "
	Required(&errs, "mobile", &v, Mobile())

	if err := errs.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "9876543210" {
		t.Errorf("mobile = %q, want 9876543210", v)
	}
}

func TestMobileRejectsShortAndLeadingDigit(t *testing.T) {
	var errs Errors
	short := "12345"
	Required(&errs, "mobile", &short, Mobile())
	if len(errs) != 1 || errs[0].Field != "mobile" {
		t.Fatalf("short mobile: errors = %v", errs)
	}

	errs = nil
	leading := "0876543210"
	Required(&errs, "mobile", &leading, Mobile())
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "must not start with 0 or 1") {
		t.Fatalf("leading-zero mobile: errors = %v", errs)
	}
}

func TestEmailLowercased(t *testing.T) {
	var errs Errors
	v := "User@Example.COM"
	Required(&errs, "email", &v, Email())

	if err := errs.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "user@example.com" {
		t.Errorf("email = %q, want user@example.com", v)
	}

	errs = nil
	bad := "not-an-email"
	Required(&errs, "email", &bad, Email())
	if len(errs) != 1 || errs[0].Field != "email" {
		t.Fatalf("bad email: errors = %v", errs)
	}
}

func TestOneOfEnumeratesSortedSet(t *testing.T) {
	var errs Errors
	v := "Silk"
	Required(&errs, "bagMaterial", &v, OneOf("Paper", "Jute", "Cotton"))

	if len(errs) != 1 {
		t.Fatalf("errors = %v", errs)
	}
	if errs[0].Message != "must be one of: Cotton, Jute, Paper" {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestOptionalTreatsEmptyAsAbsent(t *testing.T) {
	var errs Errors
	empty := "  "
	v := &empty
	Optional(&errs, "city", &v, MinLen(2))

	if err := errs.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("whitespace-only optional should become nil, got %q", *v)
	}

	var nilv *string
	Optional(&errs, "city", &nilv, MinLen(2))
	if err := errs.Err(); err != nil {
		t.Fatalf("nil optional: %v", err)
	}
}

func TestNumberRules(t *testing.T) {
	var errs Errors
	Number(&errs, "rate", 0, Positive(1000000))
	Number(&errs, "quantity", -1, NonNegative(10000000))
	Number(&errs, "rate2", 1000001, Positive(1000000))
	Number(&errs, "amount", 10.999, Currency())

	if len(errs) != 4 {
		t.Fatalf("errors = %v, want 4", errs)
	}

	errs = nil
	Number(&errs, "amount", 10.99, Currency())
	Number(&errs, "rate", 12.5, Positive(1000000))
	if err := errs.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOneOfValuesMessage(t *testing.T) {
	var errs Errors
	Number(&errs, "sheetGSM", 45, OneOfValues(80, 40, 60))

	if len(errs) != 1 {
		t.Fatalf("errors = %v", errs)
	}
	if errs[0].Message != "must be one of: 40, 60, 80" {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestAccumulatesAcrossFields(t *testing.T) {
	var errs Errors
	name := ""
	mobile := "12345"
	Required(&errs, "name", &name, MinLen(2))
	Required(&errs, "mobile", &mobile, Mobile())

	if len(errs) != 2 {
		t.Fatalf("errors = %v, want 2", errs)
	}
}

func TestErrReturnsNilWhenClean(t *testing.T) {
	var errs Errors
	if err := errs.Err(); err != nil {
		t.Fatalf("empty Errors should yield nil, got %v", err)
	}
}

func TestDateRule(t *testing.T) {
	var errs Errors
	good := "2026-01-31"
	Required(&errs, "orderDate", &good, Date())
	if err := errs.Err(); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}

	errs = nil
	bad := "31/01/2026"
	Required(&errs, "orderDate", &bad, Date())
	if len(errs) != 1 {
		t.Fatalf("invalid date accepted")
	}
}

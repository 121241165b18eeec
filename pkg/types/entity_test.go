package types

import (
	"errors"
	"testing"
)

func TestEntityRefValidate(t *testing.T) {
	if err := (EntityRef{Type: EntityCanvas, ID: "c1"}).Validate(); err != nil {
		t.Fatal(err)
	}
	if err := (EntityRef{Type: EntityCanvas}).Validate(); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := (EntityRef{Type: "widget", ID: "w1"}).Validate(); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
}

func TestTableFor(t *testing.T) {
	table, ok := TableFor(EntityStory)
	if !ok || table != TableStories {
		t.Fatalf("expected stories table, got %q ok=%v", table, ok)
	}
	if _, ok := TableFor("widget"); ok {
		t.Fatal("unexpected table for unknown type")
	}
}

func TestValidationErrorIs(t *testing.T) {
	var err error = &ValidationError{Field: "content", Message: "must not be empty"}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("ValidationError should match ErrValidation")
	}
	if err.Error() != "content: must not be empty" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{}).Validate(); !errors.Is(err, ErrBackendEmpty) {
		t.Fatalf("expected ErrBackendEmpty, got %v", err)
	}
	if err := (Config{Backend: "postgres"}).Validate(); !errors.Is(err, ErrBackendUnknown) {
		t.Fatalf("expected ErrBackendUnknown, got %v", err)
	}
	if err := (Config{Backend: BackendSQLite}).Validate(); err != nil {
		t.Fatal(err)
	}
}

package openapi_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/openapi"
)

const inlineDocument = `{
  "openapi": "3.0.0",
  "info": { "title": "Inline", "version": "1.0.0" },
  "paths": {
    "/newsletter": {
      "get": {
        "operationId": "listNewsletters",
        "responses": { "200": { "description": "ok" } }
      },
      "post": {
        "operationId": "subscribe",
        "summary": "Subscribe",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["email"],
                "properties": {
                  "zip": { "type": "string", "x-formgen-mask": "phone", "x-formgen-group": "address" },
                  "email": { "type": "string", "format": "email", "title": "E-mail" },
                  "name": { "type": "string", "x-formgen": { "order": 1 } }
                }
              }
            }
          }
        },
        "responses": { "204": { "description": "ok" } }
      }
    }
  }
}`

func TestParse_InlineDocument(t *testing.T) {
	form, err := openapi.Parse(context.Background(), []byte(inlineDocument), "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := model.FormModel{
		ID:          "subscribe",
		Title:       "Subscribe",
		Endpoint:    "/newsletter",
		Method:      "POST",
		SubmitLabel: openapi.DefaultSubmitLabel,
		Fields: []model.Field{
			{Name: "name"},
			{
				Name:      "email",
				Label:     "E-mail",
				InputType: model.InputEmail,
				Required:  true,
				Validations: []model.ValidationRule{
					{Kind: model.ValidationRuleRequired},
				},
			},
			{Name: "zip", Mask: "phone", Metadata: map[string]string{"group": "address"}},
		},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_ContactDefinition(t *testing.T) {
	doc, err := openapi.NewLoader().Load(context.Background(), openapi.SourceFromFile("../../definitions/contact.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	form, err := openapi.NewParser().Form(context.Background(), doc, "submitContact")
	if err != nil {
		t.Fatalf("form: %v", err)
	}

	if form.Title != "Contact Us!" || form.SubmitLabel != "Submit" || form.Method != "POST" {
		t.Fatalf("unexpected form header %+v", form)
	}
	if diff := cmp.Diff([]string{"firstName", "lastName", "phoneNumber", "email", "airFryerCost", "spidrPin"}, form.Names()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	pin, _ := form.Field("spidrPin")
	wantPin := model.Field{
		Name:        "spidrPin",
		Label:       "Very, Very Secret 16-digit Spidr PIN",
		Placeholder: "####-####-####-####",
		MaxLength:   19,
		Mask:        "pin",
		Secret:      true,
		Required:    true,
		Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleRequired, Params: map[string]string{"message": "Spidr PIN is required"}},
			{Kind: model.ValidationRuleDigits, Params: map[string]string{"value": "16", "message": "PIN must be exactly 16 digits"}},
		},
	}
	if diff := cmp.Diff(wantPin, pin); diff != "" {
		t.Fatalf("pin field mismatch (-want +got):\n%s", diff)
	}

	email, _ := form.Field("email")
	pattern, ok := email.Rule(model.ValidationRulePattern)
	if !ok {
		t.Fatalf("expected email pattern rule")
	}
	wantPattern := map[string]string{
		"pattern": `^\S+@\S+\.\S{2,}$`,
		"flags":   "i",
		"message": "Invalid email address",
	}
	if diff := cmp.Diff(wantPattern, pattern.Params); diff != "" {
		t.Fatalf("pattern mismatch (-want +got):\n%s", diff)
	}
	if email.InputType != model.InputEmail {
		t.Fatalf("expected email input type, got %q", email.InputType)
	}
}

func TestParser_OperationsAndErrors(t *testing.T) {
	raw, err := os.ReadFile("../../definitions/contact.yaml")
	if err != nil {
		t.Fatalf("read definition: %v", err)
	}
	loader := openapi.NewLoader(openapi.WithFileSystem(fstest.MapFS{
		"contact.yaml": {Data: raw},
	}))
	doc, err := loader.Load(context.Background(), openapi.SourceFromFS("contact.yaml"))
	if err != nil {
		t.Fatalf("load from fs: %v", err)
	}

	parser := openapi.NewParser()
	ids, err := parser.Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	if diff := cmp.Diff([]string{"submitContact"}, ids); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}

	if _, err := parser.Form(context.Background(), doc, "missing"); !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	if _, err := loader.Load(context.Background(), openapi.SourceFromFS("absent.yaml")); err == nil {
		t.Fatalf("expected missing file error")
	}
	if _, err := openapi.NewLoader().Load(context.Background(), openapi.SourceFromFS("contact.yaml")); err == nil {
		t.Fatalf("expected error without filesystem")
	}
}

func TestParser_RejectsInvalidHints(t *testing.T) {
	const doc = `{
  "openapi": "3.0.0",
  "info": { "title": "Bad", "version": "1.0.0" },
  "paths": {
    "/x": {
      "post": {
        "operationId": "bad",
        "requestBody": { "content": { "application/json": { "schema": {
          "type": "object",
          "properties": { "pin": { "type": "string", "x-formgen": { "digits": "many" } } }
        } } } },
        "responses": { "204": { "description": "ok" } }
      }
    }
  }
}`
	if _, err := openapi.Parse(context.Background(), []byte(doc), "bad"); err == nil {
		t.Fatalf("expected invalid digits hint to fail")
	}
}

func TestCanonicalizeExtensionValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
		ok   bool
	}{
		{"label", "label", true},
		{"", "", false},
		{true, "true", true},
		{float64(16), "16", true},
		{map[string]any{"a": 1}, `{"a":1}`, true},
		{nil, "", false},
	}
	for _, tc := range cases {
		got, ok := openapi.CanonicalizeExtensionValue(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("CanonicalizeExtensionValue(%v) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

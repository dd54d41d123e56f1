// Package testsupport holds fixtures shared by package tests.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/openapi"
)

// LoadDocument reads a fixture into an openapi.Document using a file source.
func LoadDocument(t *testing.T, path string) openapi.Document {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	doc, err := openapi.NewDocument(openapi.SourceFromFile(path), data)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

// ContactModel returns the contact form as the embedded definition describes
// it, so renderer tests do not depend on the parser.
func ContactModel() model.FormModel {
	required := func(msg string) model.ValidationRule {
		return model.ValidationRule{Kind: model.ValidationRuleRequired, Params: map[string]string{"message": msg}}
	}
	digits := func(n, msg string) model.ValidationRule {
		return model.ValidationRule{Kind: model.ValidationRuleDigits, Params: map[string]string{"value": n, "message": msg}}
	}

	return model.FormModel{
		ID:          "submitContact",
		Title:       "Contact Us!",
		Endpoint:    "/contact",
		Method:      "POST",
		SubmitLabel: "Submit",
		Fields: []model.Field{
			{
				Name: "firstName", Label: "First Name", Required: true,
				Validations: []model.ValidationRule{required("First name is required")},
			},
			{
				Name: "lastName", Label: "Last Name", Required: true,
				Validations: []model.ValidationRule{required("Last name is required")},
			},
			{
				Name: "phoneNumber", Label: "Phone Number", Placeholder: "(xxx) xxx-xxxx",
				InputType: model.InputTel, Mask: "phone", Required: true,
				Validations: []model.ValidationRule{
					required("Phone number is required"),
					digits("10", "Phone number must be exactly 10 digits"),
				},
			},
			{
				Name: "email", Label: "Email Address", InputType: model.InputEmail, Required: true,
				Validations: []model.ValidationRule{
					required("Email is required"),
					{Kind: model.ValidationRulePattern, Params: map[string]string{
						"pattern": `^\S+@\S+\.\S{2,}$`,
						"flags":   "i",
						"message": "Invalid email address",
					}},
				},
			},
			{
				Name: "airFryerCost", Label: "Guess the Air Fryer's Cost", Placeholder: "$0.00",
				Mask: "currency", Required: true,
				Validations: []model.ValidationRule{required("Air fryer cost is required")},
			},
			{
				Name: "spidrPin", Label: "Very, Very Secret 16-digit Spidr PIN", Placeholder: "####-####-####-####",
				MaxLength: 19, Mask: "pin", Secret: true, Required: true,
				Validations: []model.ValidationRule{
					required("Spidr PIN is required"),
					digits("16", "PIN must be exactly 16 digits"),
				},
			},
		},
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}

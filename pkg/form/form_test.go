package form_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-contactform/pkg/form"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/validation"
)

func required(msg string) model.ValidationRule {
	return model.ValidationRule{Kind: model.ValidationRuleRequired, Params: map[string]string{"message": msg}}
}

func digits(n, msg string) model.ValidationRule {
	return model.ValidationRule{Kind: model.ValidationRuleDigits, Params: map[string]string{"value": n, "message": msg}}
}

func testModel() model.FormModel {
	return model.FormModel{
		ID: "submitContact",
		Fields: []model.Field{
			{Name: "firstName", Required: true, Validations: []model.ValidationRule{required("First name is required")}},
			{Name: "phoneNumber", Mask: "phone", Required: true, Validations: []model.ValidationRule{
				required("Phone number is required"),
				digits("10", "Phone number must be exactly 10 digits"),
			}},
			{Name: "airFryerCost", Mask: "currency", Required: true, Validations: []model.ValidationRule{required("Air fryer cost is required")}},
			{Name: "spidrPin", Mask: "pin", Secret: true, Required: true, Validations: []model.ValidationRule{
				required("Spidr PIN is required"),
				digits("16", "PIN must be exactly 16 digits"),
			}},
		},
	}
}

func newForm(t *testing.T, opts ...form.Option) *form.Form {
	t.Helper()
	f, err := form.New(testModel(), opts...)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return f
}

func TestForm_MasksValuesThroughEditors(t *testing.T) {
	f := newForm(t)

	mustSet(t, f, "phoneNumber", "555.123.4567 x9")
	mustSet(t, f, "airFryerCost", "12345.6789")
	mustSet(t, f, "spidrPin", "12345678901234567")

	want := map[string]string{
		"firstName":    "",
		"phoneNumber":  "(555) 123-4567",
		"airFryerCost": "$12,345.67",
		"spidrPin":     "1234-5678-9012-3456",
	}
	if diff := cmp.Diff(want, f.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if len(f.Errors()) != 0 {
		t.Fatalf("onSubmit mode must not validate before submit, got %v", f.Errors())
	}
}

func TestForm_HandleSubmitRejectsAndFocusesFirstError(t *testing.T) {
	f := newForm(t)
	mustSet(t, f, "firstName", "Ada")
	mustSet(t, f, "phoneNumber", "555123")

	called := false
	err := f.HandleSubmit(context.Background(), func(context.Context, form.Submission) error {
		called = true
		return nil
	})

	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if called {
		t.Fatalf("onValid must not run for invalid forms")
	}

	want := validation.Errors{
		"phoneNumber":  "Phone number must be exactly 10 digits",
		"airFryerCost": "Air fryer cost is required",
		"spidrPin":     "Spidr PIN is required",
	}
	if diff := cmp.Diff(want, verr.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), "phoneNumber, airFryerCost, spidrPin") {
		t.Fatalf("unexpected error text %q", err.Error())
	}

	phone, _ := f.Editor("phoneNumber")
	if !phone.Focused() || phone.VisibleError() != "Phone number must be exactly 10 digits" {
		t.Fatalf("expected first invalid field focused with visible error")
	}
	cost, _ := f.Editor("airFryerCost")
	if cost.VisibleError() != "" {
		t.Fatalf("errors of unfocused fields stay hidden")
	}
}

func TestForm_RevalidatesOnChangeAfterSubmit(t *testing.T) {
	f := newForm(t)
	_ = f.HandleSubmit(context.Background(), nil)

	mustSet(t, f, "phoneNumber", "5551234567")
	if _, ok := f.Errors()["phoneNumber"]; ok {
		t.Fatalf("expected phone error cleared after valid change")
	}

	mustSet(t, f, "phoneNumber", "555")
	if got := f.Errors()["phoneNumber"]; got != "Phone number must be exactly 10 digits" {
		t.Fatalf("expected digit error after invalid change, got %q", got)
	}
}

func TestForm_ModeOnBlur(t *testing.T) {
	f := newForm(t, form.WithMode(form.ModeOnBlur))
	editor, err := f.Editor("spidrPin")
	if err != nil {
		t.Fatalf("editor: %v", err)
	}

	editor.Focus()
	editor.Insert("1234")
	if len(f.Errors()) != 0 {
		t.Fatalf("no validation before blur")
	}
	editor.Blur()
	if got := f.Errors()["spidrPin"]; got != "PIN must be exactly 16 digits" {
		t.Fatalf("expected PIN error on blur, got %q", got)
	}
}

func TestForm_ModeOnChange(t *testing.T) {
	f := newForm(t, form.WithMode(form.ModeOnChange))
	mustSet(t, f, "firstName", "")
	if got := f.Errors()["firstName"]; got != "First name is required" {
		t.Fatalf("expected required error on change, got %q", got)
	}
	if f.Trigger("phoneNumber") {
		t.Fatalf("expected empty phone to fail trigger")
	}
}

func TestForm_SubmitSuccessAndEncoding(t *testing.T) {
	var logs bytes.Buffer
	f := newForm(t,
		form.WithLogger(zerolog.New(&logs)),
		form.WithValues(map[string]string{"firstName": "Ada"}),
	)
	mustSet(t, f, "phoneNumber", "5551234567")
	mustSet(t, f, "airFryerCost", "89.99")
	mustSet(t, f, "spidrPin", "1234567890123456")

	var got form.Submission
	err := f.HandleSubmit(context.Background(), func(_ context.Context, s form.Submission) error {
		got = s
		return nil
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.FormID != "submitContact" || len(got.Entries) != 4 {
		t.Fatalf("unexpected submission %+v", got)
	}

	jsonOut, err := got.Encode(form.FormatJSON)
	if err != nil {
		t.Fatalf("encode json: %v", err)
	}
	wantJSON := `{"airFryerCost":"$89.99","firstName":"Ada","phoneNumber":"(555) 123-4567","spidrPin":"1234-5678-9012-3456"}`
	if string(jsonOut) != wantJSON {
		t.Fatalf("json mismatch\nwant: %s\n got: %s", wantJSON, jsonOut)
	}

	pretty, _ := got.Encode(form.FormatPrettyText)
	if !strings.HasPrefix(string(pretty), "firstName=Ada\nphoneNumber=(555) 123-4567\n") {
		t.Fatalf("pretty output not in field order: %q", pretty)
	}

	encoded, _ := got.Encode(form.FormatFormURLEncoded)
	if !strings.Contains(string(encoded), "airFryerCost=%2489.99") {
		t.Fatalf("unexpected urlencoded payload %q", encoded)
	}

	if strings.Contains(logs.String(), "1234-5678-9012-3456") {
		t.Fatalf("secret value leaked into logs: %s", logs.String())
	}
	if !strings.Contains(logs.String(), "****-****-****-3456") {
		t.Fatalf("expected redacted PIN in logs: %s", logs.String())
	}
}

func TestForm_SetErrorsAndReset(t *testing.T) {
	f := newForm(t, form.WithValues(map[string]string{"phoneNumber": "5551234567"}))
	if got := f.Value("phoneNumber"); got != "(555) 123-4567" {
		t.Fatalf("expected formatted default, got %q", got)
	}

	f.SetErrors(map[string][]string{
		"/body/phoneNumber": {"Number already registered"},
		"form":              {"Please retry"},
	})
	if got := f.Errors()["phoneNumber"]; got != "Number already registered" {
		t.Fatalf("expected mapped field error, got %q", got)
	}
	if diff := cmp.Diff([]string{"Please retry"}, f.FormErrors()); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}

	mustSet(t, f, "phoneNumber", "1")
	_ = f.HandleSubmit(context.Background(), nil)
	f.Reset()

	if f.Submitted() || len(f.Errors()) != 0 || f.FormErrors() != nil {
		t.Fatalf("reset should clear submit state and errors")
	}
	if got := f.Value("phoneNumber"); got != "(555) 123-4567" {
		t.Fatalf("reset should restore defaults, got %q", got)
	}
}

func TestForm_Errors(t *testing.T) {
	f := newForm(t)
	if err := f.SetValue("nope", "x"); !errors.Is(err, form.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.HandleSubmit(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}

	_, err := form.New(model.FormModel{Fields: []model.Field{{Name: "zip", Mask: "zip"}}})
	if err == nil {
		t.Fatalf("expected unknown mask to fail")
	}

	if _, err := form.ParseFormat("xml"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func mustSet(t *testing.T, f *form.Form, name, value string) {
	t.Helper()
	if err := f.SetValue(name, value); err != nil {
		t.Fatalf("set %s: %v", name, err)
	}
}

package openapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-contactform/pkg/model"
)

// ErrOperationNotFound is returned when the requested operation is missing or
// has no request body.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// DefaultSubmitLabel is used when an operation carries no submitLabel hint.
const DefaultSubmitLabel = "Submit"

var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithValidation toggles kin-openapi document validation. Enabled by default.
func WithValidation(enabled bool) ParserOption {
	return func(p *Parser) {
		p.validate = enabled
	}
}

// Parser converts operations of an OpenAPI document into form models.
type Parser struct {
	validate bool
}

// NewParser constructs a Parser.
func NewParser(options ...ParserOption) *Parser {
	p := &Parser{validate: true}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Parse is a shortcut for NewParser().Form on raw bytes.
func Parse(ctx context.Context, data []byte, operationID string) (model.FormModel, error) {
	doc, err := NewDocument(SourceFromFS("inline"), data)
	if err != nil {
		return model.FormModel{}, err
	}
	return NewParser().Form(ctx, doc, operationID)
}

// Operations lists the ids of operations that declare a request body, sorted.
func (p *Parser) Operations(ctx context.Context, doc Document) ([]string, error) {
	spec, err := p.load(ctx, doc)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, op := range collect(spec) {
		ids = append(ids, op.id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Form builds the form model of operationID. An empty id selects the first
// operation with a request body, ordered by path then method.
func (p *Parser) Form(ctx context.Context, doc Document, operationID string) (model.FormModel, error) {
	spec, err := p.load(ctx, doc)
	if err != nil {
		return model.FormModel{}, err
	}

	ops := collect(spec)
	for _, op := range ops {
		if operationID != "" && op.id != operationID {
			continue
		}
		form, err := buildForm(op)
		if err != nil {
			return model.FormModel{}, fmt.Errorf("openapi parser: %s: %w", op.id, err)
		}
		return form, nil
	}
	if operationID == "" {
		return model.FormModel{}, fmt.Errorf("%w: document has no operation with a request body", ErrOperationNotFound)
	}
	return model.FormModel{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
}

func (p *Parser) load(ctx context.Context, doc Document) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi parser: document does not contain any paths")
	}
	if p.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}
	return spec, nil
}

type operation struct {
	id     string
	method string
	path   string
	op     *openapi3.Operation
	body   *openapi3.Schema
}

func collect(spec *openapi3.T) []operation {
	paths := spec.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	var out []operation
	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		methods := item.Operations()
		names := make([]string, 0, len(methods))
		for method := range methods {
			names = append(names, method)
		}
		sort.Strings(names)
		for _, method := range names {
			op := methods[method]
			body := requestSchema(op.RequestBody)
			if body == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			out = append(out, operation{id: id, method: method, path: path, op: op, body: body})
		}
	}
	return out
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func buildForm(op operation) (model.FormModel, error) {
	opHints := hints(op.op.Extensions)
	form := model.FormModel{
		ID:          op.id,
		Title:       firstNonEmpty(popHint(opHints, hintTitle), op.op.Summary, op.body.Title),
		Description: op.op.Description,
		Endpoint:    op.path,
		Method:      strings.ToUpper(op.method),
		SubmitLabel: firstNonEmpty(popHint(opHints, hintSubmitLabel), DefaultSubmitLabel),
	}
	if len(opHints) > 0 {
		form.Metadata = opHints
	}

	required := make(map[string]struct{}, len(op.body.Required))
	for _, name := range op.body.Required {
		required[name] = struct{}{}
	}

	type ordered struct {
		field model.Field
		order int
	}
	fields := make([]ordered, 0, len(op.body.Properties))
	for name, ref := range op.body.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		field, order, err := buildField(name, ref.Value, isRequired)
		if err != nil {
			return model.FormModel{}, err
		}
		fields = append(fields, ordered{field: field, order: order})
	}
	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].order != fields[j].order {
			return fields[i].order < fields[j].order
		}
		return fields[i].field.Name < fields[j].field.Name
	})

	form.Fields = make([]model.Field, 0, len(fields))
	for _, entry := range fields {
		form.Fields = append(form.Fields, entry.field)
	}
	return form, nil
}

func buildField(name string, schema *openapi3.Schema, required bool) (model.Field, int, error) {
	h := hints(schema.Extensions)
	if h == nil {
		h = map[string]string{}
	}

	order := math.MaxInt
	if raw := popHint(h, hintOrder); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return model.Field{}, 0, fmt.Errorf("field %q: order must be an integer, got %q", name, raw)
		}
		order = n
	}

	field := model.Field{
		Name:        name,
		Label:       firstNonEmpty(popHint(h, hintLabel), schema.Title),
		Placeholder: popHint(h, hintPlaceholder),
		Description: schema.Description,
		InputType:   firstNonEmpty(popHint(h, hintInputType), inputTypeForFormat(schema.Format)),
		Mask:        strings.ToLower(popHint(h, hintMask)),
		Required:    required,
	}
	if schema.MaxLength != nil && *schema.MaxLength <= math.MaxInt32 {
		field.MaxLength = int(*schema.MaxLength)
	}
	if raw := popHint(h, hintSecret); raw != "" {
		secret, err := strconv.ParseBool(raw)
		if err != nil {
			return model.Field{}, 0, fmt.Errorf("field %q: secret must be a boolean, got %q", name, raw)
		}
		field.Secret = secret
	}

	if required {
		field.Validations = append(field.Validations, rule(model.ValidationRuleRequired, map[string]string{
			"message": popHint(h, hintRequiredMessage),
		}))
	}
	if schema.Pattern != "" {
		field.Validations = append(field.Validations, rule(model.ValidationRulePattern, map[string]string{
			"pattern": schema.Pattern,
			"flags":   popHint(h, hintPatternFlags),
			"message": popHint(h, hintPatternMessage),
		}))
	}
	if raw := popHint(h, hintDigits); raw != "" {
		if _, err := strconv.Atoi(raw); err != nil {
			return model.Field{}, 0, fmt.Errorf("field %q: digits must be an integer, got %q", name, raw)
		}
		field.Validations = append(field.Validations, rule(model.ValidationRuleDigits, map[string]string{
			"value":   raw,
			"message": popHint(h, hintDigitsMessage),
		}))
	}

	if len(h) > 0 {
		field.Metadata = h
	}
	return field, order, nil
}

func rule(kind string, params map[string]string) model.ValidationRule {
	for key, value := range params {
		if value == "" {
			delete(params, key)
		}
	}
	if len(params) == 0 {
		params = nil
	}
	return model.ValidationRule{Kind: kind, Params: params}
}

func inputTypeForFormat(format string) string {
	switch strings.ToLower(format) {
	case "email":
		return model.InputEmail
	case "password":
		return model.InputPassword
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

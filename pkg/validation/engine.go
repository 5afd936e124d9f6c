package validation

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/style"
)

const largeValueThreshold = 10000

// unitlessProperties are rendered as pixels when given a bare number.
var unitlessProperties = []string{"width", "height", "fontSize"}

// Rule is a predicate over a single property value.
// Property is only consulted for global rules.
type Rule struct {
	Property  string
	Validator func(value any) bool
	Message   string
}

// Engine manages validation rules.
type Engine struct {
	rules       map[string][]Rule
	globalRules []Rule
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*engineConfig)

type engineConfig struct {
	skipDefaults bool
	logger       *slog.Logger
}

// WithoutDefaults starts the engine with no rules.
func WithoutDefaults() Option {
	return func(c *engineConfig) {
		c.skipDefaults = true
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// New creates an engine loaded with DefaultRules unless WithoutDefaults is given.
func New(opts ...Option) *Engine {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{
		rules:  make(map[string][]Rule),
		logger: cfg.logger,
	}
	if !cfg.skipDefaults {
		for _, r := range DefaultRules() {
			e.AddGlobalRule(r)
		}
	}
	return e
}

// AddRule appends a rule for a specific property.
func (e *Engine) AddRule(property string, rule Rule) {
	e.rules[property] = append(e.rules[property], rule)
}

// AddGlobalRule appends a global rule. It applies to rule.Property.
func (e *Engine) AddGlobalRule(rule Rule) {
	e.globalRules = append(e.globalRules, rule)
}

// RemoveRule deletes the rule at index for property. Out of range is a no-op.
func (e *Engine) RemoveRule(property string, index int) {
	rules := e.rules[property]
	if index < 0 || index >= len(rules) {
		return
	}
	e.rules[property] = slices.Delete(rules, index, index+1)
}

// RemoveGlobalRule deletes the global rule at index. Out of range is a no-op.
func (e *Engine) RemoveGlobalRule(index int) {
	if index < 0 || index >= len(e.globalRules) {
		return
	}
	e.globalRules = slices.Delete(e.globalRules, index, index+1)
}

// Rules returns a copy of the rules registered for property.
func (e *Engine) Rules(property string) []Rule {
	return slices.Clone(e.rules[property])
}

// GlobalRules returns a copy of the global rules.
func (e *Engine) GlobalRules() []Rule {
	return slices.Clone(e.globalRules)
}

// ClearRules removes every property and global rule, defaults included.
func (e *Engine) ClearRules() {
	e.rules = make(map[string][]Rule)
	e.globalRules = nil
}

// ClearPropertyRules removes the property-specific rules for property.
// Global rules naming the property are kept.
func (e *Engine) ClearPropertyRules(property string) {
	delete(e.rules, property)
}

// Validate checks every property of s. Properties are visited in sorted order.
func (e *Engine) Validate(s domain.Style) domain.ValidationResult {
	var errs []error
	warnings := []string{}
	for _, property := range s.Keys() {
		value := s[property]
		errs = append(errs, e.check(property, value)...)
		warnings = appendWarnings(warnings, property, value)
	}
	return e.result(errs, warnings)
}

// ValidateProperty checks a single property value.
func (e *Engine) ValidateProperty(property string, value any) domain.ValidationResult {
	return e.result(e.check(property, value), appendWarnings([]string{}, property, value))
}

// Err validates s and returns an *AggregateError of RuleErrors, or nil.
func (e *Engine) Err(s domain.Style) error {
	var errs []error
	for _, property := range s.Keys() {
		errs = append(errs, e.check(property, s[property])...)
	}
	if len(errs) == 0 {
		return nil
	}
	return &AggregateError{Errors: errs}
}

func (e *Engine) check(property string, value any) []error {
	var errs []error
	for _, rule := range e.rules[property] {
		if !rule.Validator(value) {
			errs = append(errs, &RuleError{Property: property, Message: rule.Message, Value: value})
		}
	}
	for _, rule := range e.globalRules {
		if rule.Property == property && !rule.Validator(value) {
			errs = append(errs, &RuleError{Property: property, Message: rule.Message, Value: value})
		}
	}
	return errs
}

func (e *Engine) result(errs []error, warnings []string) domain.ValidationResult {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	if len(messages) > 0 {
		e.logger.Debug("style validation failed", "errors", len(messages))
	}
	return domain.ValidationResult{
		IsValid:  len(messages) == 0,
		Errors:   messages,
		Warnings: warnings,
	}
}

func appendWarnings(warnings []string, property string, value any) []string {
	f, ok := style.Number(value)
	if !ok {
		return warnings
	}
	if f > largeValueThreshold {
		warnings = append(warnings, fmt.Sprintf("%s: Very large value (%v) may cause performance issues", property, value))
	}
	if property == "margin" && f < 0 {
		warnings = append(warnings, fmt.Sprintf("%s: Negative margin (%v) may cause layout issues", property, value))
	}
	if slices.Contains(unitlessProperties, property) {
		warnings = append(warnings, fmt.Sprintf("%s: Numeric value (%v) without unit will be treated as pixels", property, value))
	}
	return warnings
}

package options

import (
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

type OptionType string

const (
	String OptionType = "string"
	Bool   OptionType = "bool"
	Int    OptionType = "int"
)

// Option describes one CLI flag. The same descriptor drives flag registration and
// validation of the parsed value.
type Option struct {
	Name        string
	Short       string
	Description string
	Required    bool
	Type        OptionType
	Value       string
	ValueFormat *regexp.Regexp
	ValueList   []string
}

func GetOptionByName(name string, options []*Option) *Option {
	for _, option := range options {
		if option.Name == name {
			return option
		}
	}
	return nil
}

func WithRequired(option Option, required bool) *Option {
	option.Required = required
	return &option
}

// ValidateOption checks a parsed option against its descriptor: presence when required,
// ValueFormat, ValueList (case-insensitive) and the value's type.
func ValidateOption(opt Option) error {
	if opt.Value == "" {
		if opt.Required {
			return errors.New(opt.Name + " is required")
		}
		return nil
	}

	if opt.ValueFormat != nil && !opt.ValueFormat.MatchString(opt.Value) {
		return errors.New(opt.Name + " is an invalid format")
	}

	if opt.ValueList != nil {
		if !slices.ContainsFunc(opt.ValueList, func(v string) bool { return strings.EqualFold(v, opt.Value) }) {
			return errors.New(opt.Name + " is not a valid option. Valid options are: " + strings.Join(opt.ValueList, ", "))
		}
	}

	switch opt.Type {
	case Bool:
		if _, err := strconv.ParseBool(opt.Value); err != nil {
			return errors.New(opt.Name + " must be a boolean")
		}
	case Int:
		if _, err := strconv.Atoi(opt.Value); err != nil {
			return errors.New(opt.Name + " must be an integer")
		}
	}

	return nil
}

// ValidateOptions validates every option and joins the failures.
func ValidateOptions(opts []*Option) error {
	var errs []error
	for _, opt := range opts {
		if err := ValidateOption(*opt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

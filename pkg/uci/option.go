package uci

import (
	"fmt"
	"strconv"
	"strings"
)

type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

// IntOption is a spin option bound to an int field, usually one of the
// engine options.
type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) UciName() string {
	return opt.Name
}

func (opt *IntOption) UciString() string {
	return fmt.Sprintf("option name %v type spin default %v min %v max %v",
		opt.Name, *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("option %v: %w", opt.Name, err)
	}
	if v < opt.Min || v > opt.Max {
		return fmt.Errorf("option %v: %v out of range [%v, %v]", opt.Name, v, opt.Min, opt.Max)
	}
	*opt.Value = v
	return nil
}

// ComboOption selects one of Vars. OnChange runs after a successful Set.
type ComboOption struct {
	Name     string
	Vars     []string
	Value    *string
	OnChange func(string)
}

func (opt *ComboOption) UciName() string {
	return opt.Name
}

func (opt *ComboOption) UciString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "option name %v type combo default %v", opt.Name, *opt.Value)
	for _, v := range opt.Vars {
		sb.WriteString(" var ")
		sb.WriteString(v)
	}
	return sb.String()
}

func (opt *ComboOption) Set(s string) error {
	for _, v := range opt.Vars {
		if strings.EqualFold(v, s) {
			*opt.Value = v
			if opt.OnChange != nil {
				opt.OnChange(v)
			}
			return nil
		}
	}
	return fmt.Errorf("option %v: unknown value %q", opt.Name, s)
}

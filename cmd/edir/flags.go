package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

// setting is one config key driven by one or more flags. Paired flags
// such as -i/-I share a setting, so the last one on the command line wins.
type setting struct {
	key   string
	value interface{}
	set   bool
}

// presetValue is a pflag.Value that stores a fixed value in its setting
// when the flag appears. It takes no argument.
type presetValue struct {
	s     *setting
	value interface{}
}

func (v *presetValue) String() string   { return "" }
func (v *presetValue) Type() string     { return "bool" }
func (v *presetValue) IsBoolFlag() bool { return true }

func (v *presetValue) Set(string) error {
	v.s.value = v.value
	v.s.set = true
	return nil
}

// settings collects the flags that map onto config keys
type settings struct {
	list  []*setting
	byKey map[string]*setting
}

func newSettings() *settings {
	return &settings{byKey: make(map[string]*setting)}
}

func (s *settings) get(key string) *setting {
	if st, ok := s.byKey[key]; ok {
		return st
	}
	st := &setting{key: key}
	s.byKey[key] = st
	s.list = append(s.list, st)
	return st
}

// preset registers a flag that sets key to value
func (s *settings) preset(fs *pflag.FlagSet, key string, value interface{}, name, shorthand, usage string) {
	f := fs.VarPF(&presetValue{s: s.get(key), value: value}, name, shorthand, usage)
	f.NoOptDefVal = "true"
}

// toggle registers a boolean key with a flag and its negation
func (s *settings) toggle(fs *pflag.FlagSet, key, name, shorthand, usage, negShorthand, negUsage string) {
	s.preset(fs, key, true, name, shorthand, usage)
	s.preset(fs, key, false, "no-"+name, negShorthand, negUsage)
}

// str registers a string key taking an argument
func (s *settings) str(fs *pflag.FlagSet, key, name, usage string) {
	fs.Var(&stringValue{s: s.get(key)}, name, usage)
}

type stringValue struct{ s *setting }

func (v *stringValue) String() string {
	if v.s.value == nil {
		return ""
	}
	return fmt.Sprint(v.s.value)
}
func (v *stringValue) Type() string { return "string" }

func (v *stringValue) Set(value string) error {
	v.s.value = value
	v.s.set = true
	return nil
}

// Changed returns the values of the keys the command line touched, in
// the form config.LoadOptions expects
func (s *settings) Changed() map[string]interface{} {
	out := make(map[string]interface{})
	for _, st := range s.list {
		if st.set {
			out[st.key] = st.value
		}
	}
	return out
}

package config

import (
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

type Registry struct {
	k  *koanf.Koanf
	fs *pflag.FlagSet
}

func NewRegistry(k *koanf.Koanf, fs *pflag.FlagSet) *Registry {
	return &Registry{
		k:  k,
		fs: fs,
	}
}

func (r *Registry) Koanf() *koanf.Koanf {
	return r.k
}

func (r *Registry) FlagSet() *pflag.FlagSet {
	return r.fs
}

func (r *Registry) BoolP(name, shorthand string, defaultValue bool, help string) func() bool {
	return defineParamP(
		name,
		shorthand,
		defaultValue,
		help,
		r.fs.BoolP,
		r.k.Bool,
	)
}

func (r *Registry) Bool(name string, defaultValue bool, help string) func() bool {
	return defineParam(
		name,
		defaultValue,
		help,
		r.fs.Bool,
		r.k.Bool,
	)
}

func (r *Registry) StringP(name, shorthand, defaultValue, help string) func() string {
	return defineParamP(
		name,
		shorthand,
		defaultValue,
		help,
		r.fs.StringP,
		r.k.String,
	)
}

func defineParam[T any](
	name string,
	defaultValue T,
	help string,
	implFlag func(name string, defaultValue T, help string) *T,
	implConf func(name string) T) func() T {
	implFlag(
		name,
		defaultValue,
		help)
	return func() T {
		return implConf(name)
	}
}

func defineParamP[T any](
	name, shorthand string,
	defaultValue T,
	help string,
	implFlag func(name, shorthand string, defaultValue T, help string) *T,
	implConf func(name string) T) func() T {
	implFlag(
		name,
		shorthand,
		defaultValue,
		help)
	return func() T {
		return implConf(name)
	}
}

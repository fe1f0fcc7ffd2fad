package configuration

import (
	flag "github.com/spf13/pflag"
)

// NewUnsortedFlagSet returns a FlagSet that prints its flags in the order of their definition.
func NewUnsortedFlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	flagSet := flag.NewFlagSet(name, errorHandling)
	flagSet.SortFlags = false

	return flagSet
}

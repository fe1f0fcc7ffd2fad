// Package nonzero provides unsigned integers that are known to not equal zero.
//
// NonZero covers the fixed-width domains up to 64 bits, U128 and U256 the wide fixed-width domains and Big the
// arbitrary-precision domain. Constructors that validate their input report a zero value with a false flag. Operations
// that would have to produce zero (subtracting a value from itself or a bigger one, dividing by a bigger value) or that
// overflow the domain are programming errors and panic with an assertion failure.
package nonzero

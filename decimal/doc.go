// Package decimal parses caller supplied numbers into an exact base 10 form.
//
// Inputs
//
// Callers hand numbers over as an Input, a tagged union built with one of
// Int, Uint, Float, String or Big. Floats are rendered to their shortest
// plain decimal text before parsing so no binary rounding leaks into the
// result.
//
// Values
//
// Parse produces a Value which is one of two variants:
//
//  Integral   a signed integer (sign and magnitude)
//  Fractional whole . fraction, with the fraction digit count kept
//
// The number represented by a Fractional is:
//
//  number = ±(whole + fraction * 10^-digits)
//
// Digits is the length of the fractional text, not of the fraction
// magnitude. Leading zeros matter:
//
//  0.05   = 0 + 5 * 10^-2    (whole=0, fraction=5, digits=2)
//  -1.69  = -(1 + 69 * 10^-2) (whole=1, fraction=69, digits=2, negative)
//
// The sign is always a separate flag. Magnitudes are never negative.
//
// Strings
//
// A string made of an optional sign, digits and dots is decimal. So is a
// scientific literal such as 1.5e3, which is expanded to plain digits
// first. Exactly one dot makes the value Fractional. More than one dot is an
// error.
//
// Any other string is read as hex:
//
//  | Text (lowercased)                | Result                     |
//  |----------------------------------|----------------------------|
//  | "0x" prefix or any of a-f        | base 16 magnitude          |
//  | the above, but not parseable     | zero                       |
//  | empty                            | zero                       |
//  | anything else                    | invalid hex input error    |
//  |----------------------------------|----------------------------|
//
// A leading minus sign is honoured on hex text as well ("-0x12" is -18).
// Unparseable hex collapsing to zero is deliberate leniency kept for
// compatibility with existing callers. Nothing else in this module treats
// bad input that way.
package decimal

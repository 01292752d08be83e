/*
Package baseconv converts signed integer literals between numeric bases 2 through 36.

Values are carried as arbitrary-precision integers, so literals of any length
convert exactly. Digits are 0-9 followed by A-Z; input is matched case-insensitively
and output is always upper case.

	s, err := baseconv.Convert("-7FF", 16, 10) // "-2047"

*/
package baseconv

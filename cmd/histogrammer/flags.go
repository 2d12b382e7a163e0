package histogrammer

import (
	"errors"
	"strconv"
)

var errNotDigits = errors.New("only decimal digits are allowed")

// positiveInt is a flag value that accepts plain decimal digits only: no
// sign, no base prefix, no trailing characters. Zero is accepted here and
// rejected later by layout validation.
type positiveInt int

func (p *positiveInt) String() string {
	return strconv.Itoa(int(*p))
}

func (p *positiveInt) Set(s string) error {
	if s == "" {
		return errNotDigits
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return errNotDigits
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	*p = positiveInt(v)

	return nil
}

func (p *positiveInt) Type() string {
	return "int"
}

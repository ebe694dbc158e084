// Package numeric converts between the store's arbitrary-precision decimal
// representation and the API's native numeric types.
//
// DynamoDB numbers travel as decimal strings. Encoding always goes through
// the float's shortest decimal string so that a payload value of 12.1 is
// stored as "12.1", never as the binary expansion 12.0999999999999996...
package numeric

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// EncodeFloat encodes a float as a decimal number attribute.
func EncodeFloat(v float64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: decimal.NewFromFloat(v).String()}
}

// EncodeInt encodes an integer as a number attribute.
func EncodeInt(v int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: decimal.NewFromInt(int64(v)).String()}
}

// DecodeFloat decodes a number attribute to a float. Absent or non-numeric
// attributes report ok=false; they never panic.
func DecodeFloat(av types.AttributeValue) (float64, bool) {
	d, ok := parse(av)
	if !ok {
		return 0, false
	}
	f, _ := d.Float64()
	return f, true
}

// DecodeInt decodes a number attribute to an integer, truncating any
// fractional part. Identifier fields stored as decimals decode through here.
func DecodeInt(av types.AttributeValue) (int, bool) {
	d, ok := parse(av)
	if !ok {
		return 0, false
	}
	return int(d.IntPart()), true
}

// IsWhole reports whether a number attribute holds a whole value, i.e. one
// that collapses to an integer with no fractional part.
func IsWhole(av types.AttributeValue) bool {
	d, ok := parse(av)
	return ok && d.IsInteger()
}

// DecodeDigits decodes presentation fields such as mobile numbers, pincodes
// and aadhar numbers. They are not arithmetic quantities: a string attribute
// passes through unchanged, and a number attribute renders as its exact
// digit string (a legacy pincode stored as a decimal decodes to "560001",
// not 560001.0).
func DecodeDigits(av types.AttributeValue) (string, bool) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value, true
	case *types.AttributeValueMemberN:
		d, err := decimal.NewFromString(v.Value)
		if err != nil {
			return "", false
		}
		if d.IsInteger() {
			return strconv.FormatInt(d.IntPart(), 10), true
		}
		return d.String(), true
	default:
		return "", false
	}
}

func parse(av types.AttributeValue) (decimal.Decimal, bool) {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		d, err := decimal.NewFromString(v.Value)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case *types.AttributeValueMemberS:
		// Legacy rows occasionally hold numbers in string attributes.
		d, err := decimal.NewFromString(v.Value)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}

// FractionDigits returns the number of decimal digits in the float's
// shortest representation. Used for currency precision checks.
func FractionDigits(v float64) int {
	exp := decimal.NewFromFloat(v).Exponent()
	if exp >= 0 {
		return 0
	}
	return int(-exp)
}

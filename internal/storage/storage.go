// Package storage implements the record repositories on top of kv.Table.
// Each store owns one collection, handles the attribute-level encoding, and
// assigns identifiers: string-keyed collections (orders, accounts) generate
// prefixed random keys, numeric collections (agents, parties, products) take
// the next sequential ID.
package storage

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/numeric"
)

// ErrNotFound reports that no record exists under the requested key.
var ErrNotFound = errors.New("record not found")

// randomSuffix returns eight uppercase hex characters for generated keys.
func randomSuffix() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:4]))
}

// Attribute helpers -----------------------------------------------------------

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func boolAttr(v bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: v}
}

// setStr writes an optional string attribute; nil stays absent.
func setStr(item kv.Item, name string, v *string) {
	if v != nil {
		item[name] = str(*v)
	}
}

func getStr(item kv.Item, name string) *string {
	if av, ok := item[name].(*types.AttributeValueMemberS); ok {
		v := av.Value
		return &v
	}
	return nil
}

// getDigits reads a presentation field that legacy rows may hold as a
// number attribute instead of a string.
func getDigits(item kv.Item, name string) *string {
	if v, ok := numeric.DecodeDigits(item[name]); ok {
		return &v
	}
	return nil
}

func getFloat(item kv.Item, name string) *float64 {
	if v, ok := numeric.DecodeFloat(item[name]); ok {
		return &v
	}
	return nil
}

func getInt(item kv.Item, name string) *int {
	if v, ok := numeric.DecodeInt(item[name]); ok {
		return &v
	}
	return nil
}

func getBool(item kv.Item, name string) bool {
	if av, ok := item[name].(*types.AttributeValueMemberBOOL); ok {
		return av.Value
	}
	return false
}

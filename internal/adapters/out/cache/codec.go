// Package cache implements ports.Cache on top of an in-process store and on
// top of Redis. Both backends keep values JSON-encoded, so a cached value never
// aliases memory owned by the caller.
package cache

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

func decode(data []byte, dest any) error {
	return json.Unmarshal(data, dest)
}

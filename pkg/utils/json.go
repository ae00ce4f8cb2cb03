package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson renders in as indented JSON. Raw bytes are re-indented as is.
func PrettyJson(in any) (string, error) {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return "", err
		}
		in = decoded
	}

	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}

	return string(buffer), nil
}

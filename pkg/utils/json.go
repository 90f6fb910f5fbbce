package utils

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson indenta com tabs. jsoniter só indenta com espaços, então a
// indentação fica com json.Indent sobre os bytes já serializados.
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = jsonAPI.Marshal(in)
		if err != nil {
			fmt.Println(err)
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		fmt.Println(err)
		return string(buffer)
	}

	return out.String()
}

// SPDX-License-Identifier: MIT

package loader

import (
	"encoding/json"
	"reflect"
)

// jsonNumberHook converts json.Number into the numeric or string kind the
// target field expects; the JSON decoder keeps numbers as json.Number so
// integer rule values are not rendered as "1e+00".
func jsonNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from != reflect.TypeOf(json.Number("")) {
		return data, nil
	}
	n := data.(json.Number)
	switch to.Kind() {
	case reflect.Float32, reflect.Float64:
		return n.Float64()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return n.Int64()
	case reflect.Interface:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		return n.Float64()
	default:
		return n.String(), nil
	}
}

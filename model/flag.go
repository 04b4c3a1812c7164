package model

import (
	"encoding/json"
	"fmt"
)

// Flag is a bool that tolerates the loose encodings the client has sent over
// time: true/false, 0/1, and the strings "0", "1", "true", "false". It always
// marshals back to a plain JSON boolean.
type Flag bool

func (f Flag) Bool() bool {
	return bool(f)
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case bool:
		*f = Flag(t)
	case float64:
		switch t {
		case 0:
			*f = false
		case 1:
			*f = true
		default:
			return fmt.Errorf("cannot interpret %v as a flag", t)
		}
	case string:
		switch t {
		case "0", "false":
			*f = false
		case "1", "true":
			*f = true
		default:
			return fmt.Errorf("cannot interpret %q as a flag", t)
		}
	default:
		return fmt.Errorf("cannot interpret %T as a flag", v)
	}
	return nil
}

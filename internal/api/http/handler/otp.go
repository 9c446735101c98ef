package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OTPCode accepts a passcode sent as a JSON string or a JSON number.
// Numbers are kept digit for digit, so 012345 must be sent as a string.
type OTPCode string

func (o *OTPCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*o = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = OTPCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("otp must be a string or a number: %w", err)
	}
	*o = OTPCode(n.String())
	return nil
}

package parser

import (
	"encoding/json"
	"fmt"
)

// Clock is a time of day. Values are kept as spoken; hour 37 stays 37.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the clock as minutes after midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String formats the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalJSON encodes the clock as "HH:MM".
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes "HH:MM".
func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return fmt.Errorf("invalid clock %q: %w", s, err)
	}
	c.Hour, c.Minute = h, m
	return nil
}

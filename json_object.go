package skybonds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObject builds a JSON object whose keys keep the order they were
// written in. The zero value is an empty object.
type jsonObject struct {
	buf bytes.Buffer
	err error
}

// Append writes key with value marshaled by json.Marshal.
func (o *jsonObject) Append(key string, value any) *jsonObject {
	if o.err != nil {
		return o
	}
	raw, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("cannot marshal %q: %w", key, err)
		return o
	}
	o.write(fmt.Appendf(nil, "%q:%s", key, raw))
	return o
}

// Optional writes key only when value is not the zero value of its type.
func (o *jsonObject) Optional(key string, value any) *jsonObject {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return o
	}
	return o.Append(key, value)
}

// Embed marshals v, that must marshal to a JSON object, and merges its keys
// into o.
func (o *jsonObject) Embed(v any) *jsonObject {
	if o.err != nil {
		return o
	}
	raw, err := json.Marshal(v)
	if err != nil {
		o.err = fmt.Errorf("cannot marshal embedded %T: %w", v, err)
		return o
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		o.err = fmt.Errorf("cannot embed %T: not a JSON object", v)
		return o
	}
	if inner := bytes.TrimSpace(raw[1 : len(raw)-1]); len(inner) > 0 {
		o.write(inner)
	}
	return o
}

func (o *jsonObject) write(member []byte) {
	if o.buf.Len() > 0 {
		o.buf.WriteByte(',')
	}
	o.buf.Write(member)
}

// MarshalJSON returns the object, or the first error met while building it.
func (o *jsonObject) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	out := make([]byte, 0, o.buf.Len()+2)
	out = append(out, '{')
	out = append(out, o.buf.Bytes()...)
	return append(out, '}'), nil
}

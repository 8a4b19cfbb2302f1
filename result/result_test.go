package result

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/obtkit/errors"
	"github.com/kbukum/obtkit/logger"
)

type details struct {
	Attempts int
	Source   string
}

type stringResult = OperationResult[int, string, details]

func TestEmpty(t *testing.T) {
	r := Empty[int, string, details]()

	assert.False(t, r.Succeeded())
	_, ok := r.Details()
	assert.False(t, ok)
	_, ok = r.Payload()
	assert.False(t, ok)
	_, ok = r.Status()
	assert.False(t, ok)
	assert.NoError(t, r.Err())
}

func TestZeroValueMatchesEmpty(t *testing.T) {
	var r stringResult
	assert.Equal(t, Empty[int, string, details]().String(), r.String())
}

func TestNew(t *testing.T) {
	cause := errors.New("partial write")
	r := New(false, details{Attempts: 3, Source: "disk"}, "half", error(cause), 7)

	assert.False(t, r.Succeeded())
	d, ok := r.Details()
	require.True(t, ok)
	assert.Equal(t, 3, d.Attempts)
	p, ok := r.Payload()
	require.True(t, ok)
	assert.Equal(t, "half", p)
	s, ok := r.Status()
	require.True(t, ok)
	assert.Equal(t, 7, s)
	assert.Same(t, cause, r.Err())
}

func TestNew_NilErrorIsAbsent(t *testing.T) {
	r := New(true, details{}, "", nil, 0)
	assert.NoError(t, r.Err())
	_, ok := r.Status()
	assert.True(t, ok, "zero status passed explicitly is present")
}

func TestSuccessAndFailure(t *testing.T) {
	ok := Success[int, string, details]("done")
	assert.True(t, ok.Succeeded())
	p, present := ok.Payload()
	assert.True(t, present)
	assert.Equal(t, "done", p)
	_, present = ok.Status()
	assert.False(t, present)

	cause := errors.Newf("code=%d", 42)
	fail := Failure[int, string, details](cause, 42)
	assert.False(t, fail.Succeeded())
	s, present := fail.Status()
	assert.True(t, present)
	assert.Equal(t, 42, s)
	_, present = fail.Payload()
	assert.False(t, present)
	assert.Equal(t, "code=42", fail.Err().Error())
}

func TestSettersAndClear(t *testing.T) {
	r := Empty[int, string, details]()

	r.SetSucceeded(true)
	r.SetDetails(details{Source: "cache"})
	r.SetPayload("value")
	r.SetStatus(200)
	r.SetErr(errors.New("stale"))

	assert.True(t, r.Succeeded())
	d, _ := r.Details()
	assert.Equal(t, "cache", d.Source)
	p, _ := r.Payload()
	assert.Equal(t, "value", p)
	s, _ := r.Status()
	assert.Equal(t, 200, s)
	assert.EqualError(t, r.Err(), "stale")

	r.ClearDetails()
	r.ClearPayload()
	r.ClearStatus()
	r.SetErr(nil)

	_, ok := r.Details()
	assert.False(t, ok)
	_, ok = r.Payload()
	assert.False(t, ok)
	_, ok = r.Status()
	assert.False(t, ok)
	assert.NoError(t, r.Err())
	assert.True(t, r.Succeeded(), "clearing optional fields keeps the flag")
}

func TestSetPayload_CopiesValue(t *testing.T) {
	r := Empty[int, []int, details]()
	v := []int{1}
	r.SetPayload(v)
	v = append(v, 2)
	p, _ := r.Payload()
	assert.Len(t, p, 1)
	assert.Len(t, v, 2)
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		r    *stringResult
		want string
	}{
		{
			name: "empty",
			r:    Empty[int, string, details](),
			want: "[Operation succeded: false, Additional details: <nil>, Result: <nil>, Error code: <nil>, Error information: None]",
		},
		{
			name: "success",
			r: func() *stringResult {
				r := Success[int, string, details]("ok")
				r.SetStatus(0)
				return r
			}(),
			want: "[Operation succeded: true, Additional details: <nil>, Result: ok, Error code: 0, Error information: None]",
		},
		{
			name: "failure with details",
			r:    New(false, details{Attempts: 2, Source: "db"}, "", error(errors.Wrap(errors.New("timeout"), "query failed")), 504),
			want: "[Operation succeded: false, Additional details: {2 db}, Result: , Error code: 504, Error information: query failed: timeout]",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.String())
		})
	}
}

func TestString_StatusAndError(t *testing.T) {
	r := Success[int, string, details]("ok")
	r.SetStatus(0)
	out := r.String()
	assert.Contains(t, out, "Operation succeded: true")
	assert.Contains(t, out, "None")
}

func TestFields(t *testing.T) {
	r := Failure[int, string, details](errors.New("boom"), 3)
	f := r.Fields()

	assert.Equal(t, false, f[logger.FieldSucceeded])
	assert.Equal(t, 3, f[logger.FieldStatus])
	assert.Equal(t, "boom", f[logger.FieldError])
	assert.NotContains(t, f, logger.FieldPayload)
	assert.NotContains(t, f, logger.FieldDetails)
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&logger.Config{Level: "info", Format: logger.FormatJSON}, "obtkit", &buf)

	Success[int, string, details]("ok").Log(l, "saved")
	entry := decode(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "saved", entry["message"])
	assert.Equal(t, "ok", entry[logger.FieldPayload])

	buf.Reset()
	Failure[int, string, details](errors.New("boom"), 9).Log(l, "save failed")
	entry = decode(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry[logger.FieldError])
	assert.EqualValues(t, 9, entry[logger.FieldStatus])
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&logger.Config{Level: "info", Format: logger.FormatJSON}, "obtkit", &buf)

	r := New(true, details{Attempts: 1, Source: "api"}, "v", nil, 0)
	l.InfoObject("done", "result", r)

	entry := decode(t, &buf)
	obj, ok := entry["result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, obj[logger.FieldSucceeded])
	assert.Equal(t, "v", obj[logger.FieldPayload])
	assert.NotContains(t, obj, logger.FieldError)
	d, ok := obj[logger.FieldDetails].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "api", d["Source"])
}

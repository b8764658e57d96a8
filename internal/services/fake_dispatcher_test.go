package services

import (
	"context"
	"encoding/json"
	"io"
)

// dispatchCall records one request seen by the fake dispatcher.
type dispatchCall struct {
	Method string
	Path   string
	Body   any
}

// fakeDispatcher is a scriptable Dispatcher test double. The respond hook
// inspects the call and fills out; recorded calls let tests assert on what
// went over the wire.
type fakeDispatcher struct {
	calls   []dispatchCall
	rearmed int
	respond func(call dispatchCall, out any) error
}

func (f *fakeDispatcher) Do(_ context.Context, method, path string, body, out any) error {
	call := dispatchCall{Method: method, Path: path, Body: body}
	f.calls = append(f.calls, call)
	if f.respond == nil {
		return nil
	}
	return f.respond(call, out)
}

func (f *fakeDispatcher) Upload(_ context.Context, path, field, filename string, file io.Reader, out any) error {
	call := dispatchCall{Method: "UPLOAD", Path: path, Body: filename}
	f.calls = append(f.calls, call)
	if f.respond == nil {
		return nil
	}
	return f.respond(call, out)
}

func (f *fakeDispatcher) Rearm() {
	f.rearmed++
}

func (f *fakeDispatcher) lastCall() dispatchCall {
	return f.calls[len(f.calls)-1]
}

// fill decodes a JSON value into out, mimicking the envelope data decode.
func fill(out any, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

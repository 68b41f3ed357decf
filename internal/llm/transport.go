package llm

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// contentTransport restores "content":"" on outgoing chat messages.
// go-openai drops an empty Content field, and the service rejects a message
// without one, so an empty prompt would otherwise not be sent as given.
type contentTransport struct {
	base http.RoundTripper
}

func (t contentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body == nil || req.Method != http.MethodPost {
		return t.base.RoundTrip(req)
	}

	body, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, err
	}

	if fixed, ok := fillEmptyContent(body); ok {
		body = fixed
	}

	out := req.Clone(req.Context())
	out.Body = io.NopCloser(bytes.NewReader(body))
	out.ContentLength = int64(len(body))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	return t.base.RoundTrip(out)
}

// fillEmptyContent adds an empty content field to every message that has
// none. It reports false when body is not a chat request or needs no change.
func fillEmptyContent(body []byte) ([]byte, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, false
	}
	raw, ok := fields["messages"]
	if !ok {
		return nil, false
	}
	var messages []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, false
	}

	changed := false
	for _, msg := range messages {
		_, hasContent := msg["content"]
		_, hasToolCalls := msg["tool_calls"]
		if !hasContent && !hasToolCalls {
			msg["content"] = json.RawMessage(`""`)
			changed = true
		}
	}
	if !changed {
		return nil, false
	}

	encoded, err := json.Marshal(messages)
	if err != nil {
		return nil, false
	}
	fields["messages"] = encoded
	fixed, err := json.Marshal(fields)
	if err != nil {
		return nil, false
	}
	return fixed, true
}

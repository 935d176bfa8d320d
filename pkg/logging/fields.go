package logging

import "log/slog"

// Domain identifiers

func User(id string) slog.Attr {
	return slog.String("user_id", id)
}

func Peer(id string) slog.Attr {
	return slog.String("peer_id", id)
}

func Message(id string) slog.Attr {
	return slog.String("message_id", id)
}

func Email(email string) slog.Attr {
	return slog.String("email", email)
}

func SignUp(id string) slog.Attr {
	return slog.String("signup_id", id)
}

func Verification(sessionID string) slog.Attr {
	return slog.String("verification_session_id", sessionID)
}

func Client(id string) slog.Attr {
	return slog.String("client_id", id)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Request / tracing

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

func TraceID(id string) slog.Attr {
	return slog.String("trace_id", id)
}

func SpanID(id string) slog.Attr {
	return slog.String("span_id", id)
}

// Error handling

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

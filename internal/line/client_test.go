package line

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPClientReply(t *testing.T) {
	t.Run("sends text message with reply token", func(t *testing.T) {
		var (
			gotPath string
			gotAuth string
			gotBody replyRequest
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("decode request: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, "channel-token", time.Second)
		if err := client.Reply(context.Background(), "token-123", "こんにちは！"); err != nil {
			t.Fatalf("reply: %v", err)
		}

		if gotPath != "/v2/bot/message/reply" {
			t.Fatalf("unexpected path %q", gotPath)
		}
		if gotAuth != "Bearer channel-token" {
			t.Fatalf("unexpected auth header %q", gotAuth)
		}
		if gotBody.ReplyToken != "token-123" {
			t.Fatalf("unexpected reply token %q", gotBody.ReplyToken)
		}
		if len(gotBody.Messages) != 1 || gotBody.Messages[0].Type != "text" || gotBody.Messages[0].Text != "こんにちは！" {
			t.Fatalf("unexpected messages %+v", gotBody.Messages)
		}
	})

	t.Run("error status surfaces as error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Invalid reply token"}`))
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, "channel-token", time.Second)
		if err := client.Reply(context.Background(), "used-token", "texto"); err == nil {
			t.Fatalf("expected error on 400 response")
		}
	})
}

package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/infrastructure/ai"
)

func TestAnthropicService_Answer(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":" El corte es el martes. "}]}`))
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("test-key", "claude-test").WithURL(srv.URL)
	answer, err := svc.AnswerResidentQuestion(context.Background(), "¿Cuándo cortan el agua?", []string{"Agua: corte el martes"})
	require.NoError(t, err)
	assert.Equal(t, "El corte es el martes.", answer)
	assert.Equal(t, "claude-test", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Contains(t, got.Messages[0].Content, "Agua: corte el martes")
	assert.Contains(t, got.Messages[0].Content, "¿Cuándo cortan el agua?")
}

func TestAnthropicService_Errores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	_, err := ai.NewAnthropicService("k", "m").WithURL(srv.URL).AnswerResidentQuestion(context.Background(), "hola", nil)
	assert.ErrorIs(t, err, domain.ErrTransport)

	_, err = ai.NewAnthropicService("", "m").AnswerResidentQuestion(context.Background(), "hola", nil)
	assert.ErrorIs(t, err, domain.ErrTransport)

	_, err = ai.NewAnthropicService("k", "m").WithURL("http://127.0.0.1:1").AnswerResidentQuestion(context.Background(), "hola", nil)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

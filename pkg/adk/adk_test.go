package adk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/scanreport/pkg/report"
)

type fakeProvider struct {
	calls   [][]Message
	respond func(batch []string) string
	err     error
}

func (f *fakeProvider) GenerateResponse(_ context.Context, history []Message) (string, error) {
	f.calls = append(f.calls, history)
	if f.err != nil {
		return "", f.err
	}
	var batch []string
	if err := json.Unmarshal([]byte(history[len(history)-1].Content), &batch); err != nil {
		return "", err
	}
	return f.respond(batch), nil
}

func (f *fakeProvider) ListModels(context.Context) ([]string, error) { return nil, nil }
func (f *fakeProvider) Close() error                                 { return nil }

func TestDrafter_Batches(t *testing.T) {
	fake := &fakeProvider{respond: func(batch []string) string {
		out := map[string]string{"unrequested": "x"}
		for _, m := range batch {
			out[m] = "PL " + m
		}
		data, _ := json.Marshal(out)
		return "```json\n" + string(data) + "\n```"
	}}

	var progress []int
	table, err := NewDrafter(fake, 2).Draft(context.Background(), report.LanguagePolish,
		[]string{"a", "b", "c"}, func(done, _ int) { progress = append(progress, done) })
	require.NoError(t, err)

	assert.Len(t, fake.calls, 2)
	assert.Equal(t, "system", fake.calls[0][0].Role)
	assert.Contains(t, fake.calls[0][0].Content, "Polish")
	assert.Equal(t, map[string]string{"a": "PL a", "b": "PL b", "c": "PL c"}, map[string]string(table))
	assert.Equal(t, []int{2, 3}, progress)
}

func TestDrafter_SkipsEmptyAnswers(t *testing.T) {
	fake := &fakeProvider{respond: func([]string) string { return `{"a": "  ", "b": "bee"}` }}

	table, err := NewDrafter(fake, 0).Draft(context.Background(), report.LanguagePolish, []string{"a", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "bee"}, map[string]string(table))
}

func TestDrafter_Errors(t *testing.T) {
	_, err := NewDrafter(&fakeProvider{}, 1).Draft(context.Background(), report.LanguageEnglish, []string{"a"}, nil)
	assert.Error(t, err)

	_, err = NewDrafter(&fakeProvider{err: errors.New("quota")}, 1).Draft(context.Background(), report.LanguagePolish, []string{"a"}, nil)
	assert.ErrorContains(t, err, "quota")

	bad := &fakeProvider{respond: func([]string) string { return "Sure! Here you go." }}
	_, err = NewDrafter(bad, 1).Draft(context.Background(), report.LanguagePolish, []string{"a"}, nil)
	assert.ErrorContains(t, err, "not a JSON object")
}

func TestOpenAIProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/models":
			_, _ = w.Write([]byte(`{"data": [{"id": "gpt-4o"}, {"id": "whisper-1"}]}`))
		case "/chat/completions":
			var body struct {
				Messages []openAIMessage `json:"messages"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "assistant", body.Messages[1].Role)
			_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "{\"a\": \"b\"}"}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	p := NewOpenAIProvider("key", "")
	p.BaseURL = srv.URL

	models, err := p.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gpt-4o"}, models)

	resp, err := p.GenerateResponse(context.Background(), []Message{
		{Role: "system", Content: "s"}, {Role: "model", Content: "m"}, {Role: "user", Content: "u"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a": "b"}`, resp)
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), "openai", "", "")
	assert.Error(t, err)

	_, err = NewProvider(context.Background(), "mystery", "key", "")
	assert.Error(t, err)

	p, err := NewProvider(context.Background(), "openai", "key", "gpt-4o")
	require.NoError(t, err)
	assert.IsType(t, &OpenAIProvider{}, p)
}

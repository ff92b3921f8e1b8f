package watson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestTTS builds a TextToSpeech client against a fake service.
func newTestTTS(t *testing.T, handler http.HandlerFunc) *TextToSpeech {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTextToSpeech(NewBearerToken("test-token"), srv.URL)
}

func TestVoices_List(t *testing.T) {
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/voices" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		if r.Header.Get("X-Global-Transaction-Id") == "" {
			t.Error("missing transaction id header")
		}
		fmt.Fprint(w, `{"voices":[{"name":"en-GB_KateV3Voice","language":"en-GB","gender":"female",
			"url":"https://example/v1/voices/en-GB_KateV3Voice","description":"Kate",
			"customizable":true,"supported_features":{"custom_pronunciation":true,"voice_transformation":false}}]}`)
	})

	voices, err := tts.Voices.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(voices) != 1 {
		t.Fatalf("expected 1 voice, got %d", len(voices))
	}
	if voices[0].Name != "en-GB_KateV3Voice" || !voices[0].SupportedFeatures.CustomPronunciation {
		t.Fatalf("unexpected voice %+v", voices[0])
	}
}

func TestVoices_Get(t *testing.T) {
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/voices/en-GB_KateV3Voice" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("customization_id"); got != "guid-1" {
			t.Errorf("unexpected customization_id %q", got)
		}
		fmt.Fprint(w, `{"name":"en-GB_KateV3Voice","language":"en-GB"}`)
	})

	v, err := tts.Voices.Get(context.Background(), VoiceEnGbKateV3, "guid-1")
	if err != nil {
		t.Fatal(err)
	}
	if v.Language != "en-GB" {
		t.Fatalf("unexpected voice %+v", v)
	}
}

func TestSynthesize(t *testing.T) {
	audio := []byte{0x4f, 0x67, 0x67, 0x53} // OggS
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/synthesize" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("voice"); got != string(DefaultVoice) {
			t.Errorf("unexpected voice %q", got)
		}
		if got := r.Header.Get("Accept"); got != "audio/mp3;rate=22050" {
			t.Errorf("unexpected accept %q", got)
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text != "Hey there" {
			t.Errorf("unexpected body: %+v err=%v", body, err)
		}
		w.Header().Set("Content-Type", "audio/mp3")
		w.Write(audio)
	})

	got, err := tts.Synthesis.Synthesize(context.Background(), &SynthesizeRequest{
		Text:   "Hey there",
		Format: FormatMp3(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, audio) {
		t.Fatalf("audio mismatch: %v", got)
	}
}

func TestSynthesizeStream(t *testing.T) {
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("chunked audio"))
	})

	body, err := tts.Synthesis.SynthesizeStream(context.Background(), &SynthesizeRequest{Text: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "chunked audio" {
		t.Fatalf("unexpected stream %q", data)
	}
}

func TestPronunciation(t *testing.T) {
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("text") != "IEEE" || q.Get("format") != "ibm" {
			t.Errorf("unexpected query %v", q)
		}
		fmt.Fprint(w, `{"pronunciation":"`+"`"+`1Y `+"`"+`1E `+"`"+`1E `+"`"+`1E"}`)
	})

	p, err := tts.Synthesis.Pronunciation(context.Background(), "IEEE", VoiceEnUsMichaelV3, PhonemeIBM, "")
	if err != nil {
		t.Fatal(err)
	}
	if p.Pronunciation == "" {
		t.Fatal("empty pronunciation")
	}
}

func TestCustomization_ModelLifecycle(t *testing.T) {
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/customizations":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["name"] != "dictionary" || body["language"] != "en-US" {
				t.Errorf("unexpected create body %v", body)
			}
			fmt.Fprint(w, `{"customization_id":"guid-1"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/customizations":
			fmt.Fprint(w, `{"customizations":[{"customization_id":"guid-1","name":"dictionary","language":"en-US"}]}`)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/customizations/guid-1":
			fmt.Fprint(w, `{"customization_id":"guid-1","name":"dictionary","words":[{"word":"IEEE","translation":"I triple E"}]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/v1/customizations/guid-1":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodDelete && r.URL.Path == "/v1/customizations/guid-1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()
	m, err := tts.Customization.CreateModel(ctx, "dictionary", LangEnUs, "")
	if err != nil {
		t.Fatal(err)
	}
	if m.CustomizationID != "guid-1" {
		t.Fatalf("unexpected model %+v", m)
	}

	models, err := tts.Customization.ListModels(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 1 {
		t.Fatalf("expected 1 model, got %d", len(models))
	}

	got, err := tts.Customization.GetModel(ctx, "guid-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Words) != 1 || got.Words[0].Word != "IEEE" {
		t.Fatalf("unexpected model %+v", got)
	}

	if err := tts.Customization.UpdateModel(ctx, "guid-1", &UpdateModelRequest{Description: "updated"}); err != nil {
		t.Fatal(err)
	}
	if err := tts.Customization.DeleteModel(ctx, "guid-1"); err != nil {
		t.Fatal(err)
	}
}

func TestCustomization_Words(t *testing.T) {
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/customizations/guid-1/words":
			var body struct {
				Words []Word `json:"words"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if len(body.Words) != 2 {
				t.Errorf("expected 2 words, got %+v", body.Words)
			}
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPut && r.URL.Path == "/v1/customizations/guid-1/words/IEEE":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/customizations/guid-1/words/IEEE":
			fmt.Fprint(w, `{"translation":"I triple E"}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/v1/customizations/guid-1/words/IEEE":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	ctx := context.Background()
	err := tts.Customization.AddWords(ctx, "guid-1", []Word{
		{Word: "IEEE", Translation: "I triple E"},
		{Word: "NCAA", Translation: "N C double A"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := tts.Customization.AddWord(ctx, "guid-1", Word{Word: "IEEE", Translation: "I triple E"}); err != nil {
		t.Fatal(err)
	}
	word, err := tts.Customization.GetWord(ctx, "guid-1", "IEEE")
	if err != nil {
		t.Fatal(err)
	}
	if word.Word != "IEEE" || word.Translation != "I triple E" {
		t.Fatalf("unexpected word %+v", word)
	}
	if err := tts.Customization.DeleteWord(ctx, "guid-1", "IEEE"); err != nil {
		t.Fatal(err)
	}
}

func TestSpeakers(t *testing.T) {
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/speaker_models":
			fmt.Fprint(w, `{"speakers":[{"speaker_id":"sp-1","name":"alice"}]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/v1/speaker_models":
			if got := r.Header.Get("Content-Type"); got != "audio/wav" {
				t.Errorf("unexpected content type %q", got)
			}
			if got := r.URL.Query().Get("speaker_name"); got != "alice" {
				t.Errorf("unexpected speaker_name %q", got)
			}
			fmt.Fprint(w, `{"speaker_id":"sp-1"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/speaker_models/sp-1":
			fmt.Fprint(w, `{"customizations":[{"customization_id":"guid-1","prompts":[]}]}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/v1/speaker_models/sp-1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	ctx := context.Background()
	speakers, err := tts.Speakers.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(speakers) != 1 || speakers[0].SpeakerID != "sp-1" {
		t.Fatalf("unexpected speakers %+v", speakers)
	}

	sp, err := tts.Speakers.Create(ctx, "alice", strings.NewReader("RIFFwav"))
	if err != nil {
		t.Fatal(err)
	}
	if sp.SpeakerID != "sp-1" || sp.Name != "alice" {
		t.Fatalf("unexpected speaker %+v", sp)
	}

	custs, err := tts.Speakers.Get(ctx, "sp-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(custs) != 1 {
		t.Fatalf("unexpected customizations %+v", custs)
	}
	if err := tts.Speakers.Delete(ctx, "sp-1"); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteUserData(t *testing.T) {
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/v1/user_data" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("customer_id"); got != "cust-1" {
			t.Errorf("unexpected customer_id %q", got)
		}
		w.WriteHeader(http.StatusOK)
	})
	if err := tts.DeleteUserData(context.Background(), "cust-1"); err != nil {
		t.Fatal(err)
	}
}

// Every operation must surface a typed *APIError on 401, never panic.
func TestTTS_Unauthorized(t *testing.T) {
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Global-Transaction-Id", "txn-401")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"code":401,"error":"Unauthorized"}`)
	})

	ctx := context.Background()
	ops := map[string]func() error{
		"list voices": func() error { _, err := tts.Voices.List(ctx); return err },
		"get voice":   func() error { _, err := tts.Voices.Get(ctx, DefaultVoice, ""); return err },
		"synthesize": func() error {
			_, err := tts.Synthesis.Synthesize(ctx, &SynthesizeRequest{Text: "x"})
			return err
		},
		"pronunciation": func() error {
			_, err := tts.Synthesis.Pronunciation(ctx, "x", "", "", "")
			return err
		},
		"create model": func() error { _, err := tts.Customization.CreateModel(ctx, "m", LangEnUs, ""); return err },
		"list models":  func() error { _, err := tts.Customization.ListModels(ctx, ""); return err },
		"list words":   func() error { _, err := tts.Customization.ListWords(ctx, "guid-1"); return err },
		"speakers":     func() error { _, err := tts.Speakers.List(ctx); return err },
		"user data":    func() error { return tts.DeleteUserData(ctx, "cust-1") },
	}
	for name, op := range ops {
		err := op()
		apiErr, ok := AsAPIError(err)
		if !ok {
			t.Fatalf("%s: expected *APIError, got %v", name, err)
		}
		if !apiErr.IsUnauthorized() {
			t.Fatalf("%s: expected unauthorized, got %+v", name, apiErr)
		}
		if apiErr.GlobalTransactionID != "txn-401" {
			t.Fatalf("%s: missing transaction id: %+v", name, apiErr)
		}
	}
}

func TestTTS_MalformedResponse(t *testing.T) {
	tts := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"voices": not-json`)
	})
	_, err := tts.Voices.List(context.Background())
	if _, ok := AsDecodeError(err); !ok {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
}

func TestAPIError_Predicates(t *testing.T) {
	cases := []struct {
		status    int
		retryable bool
	}{
		{http.StatusUnauthorized, false},
		{http.StatusNotFound, false},
		{http.StatusNotAcceptable, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusServiceUnavailable, true},
	}
	for _, c := range cases {
		e := &APIError{HTTPStatus: c.status}
		if e.Retryable() != c.retryable {
			t.Errorf("status %d: Retryable() = %v, want %v", c.status, e.Retryable(), c.retryable)
		}
	}
}

package watson

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// TextToSpeech is the client for the Watson Text to Speech service.
type TextToSpeech struct {
	// Voices provides voice listing and lookup.
	Voices *VoiceService

	// Synthesis provides speech synthesis and pronunciation lookups.
	Synthesis *SynthesisService

	// Customization provides custom model and custom word management.
	Customization *CustomizationService

	// Speakers provides speaker model management.
	Speakers *SpeakerService

	tr *transport
}

// NewTextToSpeech creates a Text to Speech client for the service instance
// at serviceURL, authenticating every request through auth.
//
// Example:
//
//	auth, err := watson.NewIAM(ctx, apiKey)
//	if err != nil { ... }
//	tts := watson.NewTextToSpeech(auth, serviceURL)
//	audio, err := tts.Synthesis.Synthesize(ctx, &watson.SynthesizeRequest{Text: "Hello"})
func NewTextToSpeech(auth Authenticator, serviceURL string, opts ...Option) *TextToSpeech {
	tr := newTransport(auth, serviceURL, opts)
	c := &TextToSpeech{tr: tr}
	c.Voices = &VoiceService{tr: tr}
	c.Synthesis = &SynthesisService{tr: tr}
	c.Customization = &CustomizationService{tr: tr}
	c.Speakers = &SpeakerService{tr: tr}
	return c
}

// DeleteUserData deletes all data associated with a customer ID that was
// passed with requests via the X-Watson-Metadata header.
func (c *TextToSpeech) DeleteUserData(ctx context.Context, customerID string) error {
	query := url.Values{}
	query.Set("customer_id", customerID)
	return c.tr.doJSON(ctx, "delete user data", http.MethodDelete, "/v1/user_data", query, nil, nil)
}

// VoiceService provides voice listing and lookup.
type VoiceService struct {
	tr *transport
}

// List returns all voices available for synthesis.
func (s *VoiceService) List(ctx context.Context) ([]Voice, error) {
	var root struct {
		Voices []Voice `json:"voices"`
	}
	if err := s.tr.doJSON(ctx, "list voices", http.MethodGet, "/v1/voices", nil, nil, &root); err != nil {
		return nil, err
	}
	return root.Voices, nil
}

// Get returns one voice. Pass a customization ID to include information
// about that custom model in the result; requires credentials that own the
// model.
func (s *VoiceService) Get(ctx context.Context, voice VoiceID, customizationID string) (*Voice, error) {
	var query url.Values
	if customizationID != "" {
		query = url.Values{}
		query.Set("customization_id", customizationID)
	}
	var v Voice
	if err := s.tr.doJSON(ctx, "get voice", http.MethodGet, "/v1/voices/"+string(voice), query, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// SynthesisService provides speech synthesis and pronunciation lookups.
type SynthesisService struct {
	tr *transport
}

// SynthesizeRequest describes one synthesis call.
type SynthesizeRequest struct {
	// Text is the text to synthesize. Required.
	Text string `json:"text"`

	// Voice selects the voice. Defaults to DefaultVoice.
	Voice VoiceID `json:"-"`

	// Format is the requested audio format. The zero value requests
	// Ogg/Opus at 48000 Hz.
	Format AudioFormat `json:"-"`

	// CustomizationID names a custom model to apply. The model must
	// match the language of the voice and be owned by the credentials
	// making the request.
	CustomizationID string `json:"-"`
}

// Synthesize converts text to audio spoken in the requested voice and
// returns the encoded audio bytes.
func (s *SynthesisService) Synthesize(ctx context.Context, req *SynthesizeRequest) ([]byte, error) {
	body, err := s.SynthesizeStream(ctx, req)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	audio, err := io.ReadAll(body)
	if err != nil {
		return nil, wrapError(err, "read audio")
	}
	return audio, nil
}

// SynthesizeStream is like Synthesize but hands back the response body so
// large audio can be consumed without buffering. The caller must close it.
func (s *SynthesisService) SynthesizeStream(ctx context.Context, req *SynthesizeRequest) (io.ReadCloser, error) {
	query := url.Values{}
	voice := req.Voice
	if voice == "" {
		voice = DefaultVoice
	}
	query.Set("voice", string(voice))
	if req.CustomizationID != "" {
		query.Set("customization_id", req.CustomizationID)
	}

	payload, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	return s.tr.doBinary(ctx, http.MethodPost, "/v1/synthesize", query, "application/json", req.Format.MIME(), payload)
}

// Pronunciation returns the phonetic pronunciation of text. The voice
// determines the language; pass an empty format for the service default
// (IPA), and a customization ID to use the pronunciation rules of a custom
// model.
func (s *SynthesisService) Pronunciation(ctx context.Context, text string, voice VoiceID, format PhonemeFormat, customizationID string) (*Pronunciation, error) {
	query := url.Values{}
	query.Set("text", text)
	if voice == "" {
		voice = DefaultVoice
	}
	query.Set("voice", string(voice))
	if format != "" {
		query.Set("format", string(format))
	}
	if customizationID != "" {
		query.Set("customization_id", customizationID)
	}
	var p Pronunciation
	if err := s.tr.doJSON(ctx, "pronunciation", http.MethodGet, "/v1/pronunciation", query, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

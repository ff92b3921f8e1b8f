package watson

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Speaker identifies a speaker model defined for the service instance.
type Speaker struct {
	SpeakerID string `json:"speaker_id"`
	Name      string `json:"name"`
}

// SpeakerCustomModel lists the prompts a speaker has recorded for one
// custom model.
type SpeakerCustomModel struct {
	CustomizationID string   `json:"customization_id"`
	Prompts         []Prompt `json:"prompts"`
}

// SpeakerService manages speaker models. Speaker models and the custom
// prompts they record are supported only for US English models and voices.
type SpeakerService struct {
	tr *transport
}

// List returns the speaker models defined for the service instance.
func (s *SpeakerService) List(ctx context.Context) ([]Speaker, error) {
	var root struct {
		Speakers []Speaker `json:"speakers"`
	}
	if err := s.tr.doJSON(ctx, "list speaker models", http.MethodGet, "/v1/speaker_models", nil, nil, &root); err != nil {
		return nil, err
	}
	return root.Speakers, nil
}

// Create defines a new speaker model from an audio enrollment sample. The
// audio must be WAV; the service trains the model asynchronously and the
// returned speaker ID can be used immediately when creating prompts.
func (s *SpeakerService) Create(ctx context.Context, name string, audio io.Reader) (*Speaker, error) {
	query := url.Values{}
	query.Set("speaker_name", name)

	body, err := s.tr.doBinary(ctx, http.MethodPost, "/v1/speaker_models", query, "audio/wav", "application/json", audio)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	sp := Speaker{Name: name}
	if err := decodeJSON(body, "create speaker model", &sp); err != nil {
		return nil, err
	}
	return &sp, nil
}

// Get returns the custom models and prompts associated with a speaker.
func (s *SpeakerService) Get(ctx context.Context, speakerID string) ([]SpeakerCustomModel, error) {
	var root struct {
		Customizations []SpeakerCustomModel `json:"customizations"`
	}
	if err := s.tr.doJSON(ctx, "get speaker model", http.MethodGet, "/v1/speaker_models/"+speakerID, nil, nil, &root); err != nil {
		return nil, err
	}
	return root.Customizations, nil
}

// Delete removes a speaker model. The speaker's prompts remain in the
// custom models for which they were defined.
func (s *SpeakerService) Delete(ctx context.Context, speakerID string) error {
	return s.tr.doJSON(ctx, "delete speaker model", http.MethodDelete, "/v1/speaker_models/"+speakerID, nil, nil, nil)
}

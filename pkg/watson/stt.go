package watson

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// SpeechToText is the client for the Watson Speech to Text service.
type SpeechToText struct {
	// Models provides base language model listing and lookup.
	Models *ModelService

	// Recognition provides audio transcription, both single-shot and
	// streaming over WebSocket.
	Recognition *RecognitionService

	tr *transport
}

// NewSpeechToText creates a Speech to Text client for the service instance
// at serviceURL, authenticating every request through auth.
func NewSpeechToText(auth Authenticator, serviceURL string, opts ...Option) *SpeechToText {
	tr := newTransport(auth, serviceURL, opts)
	c := &SpeechToText{tr: tr}
	c.Models = &ModelService{tr: tr}
	c.Recognition = &RecognitionService{tr: tr}
	return c
}

// DeleteUserData deletes all data associated with a customer ID that was
// passed with requests via the X-Watson-Metadata header.
func (c *SpeechToText) DeleteUserData(ctx context.Context, customerID string) error {
	query := url.Values{}
	query.Set("customer_id", customerID)
	return c.tr.doJSON(ctx, "delete user data", http.MethodDelete, "/v1/user_data", query, nil, nil)
}

// ModelService provides base language model listing and lookup.
type ModelService struct {
	tr *transport
}

// List returns the language models available for transcription.
func (s *ModelService) List(ctx context.Context) ([]Model, error) {
	var root struct {
		Models []Model `json:"models"`
	}
	if err := s.tr.doJSON(ctx, "list models", http.MethodGet, "/v1/models", nil, nil, &root); err != nil {
		return nil, err
	}
	return root.Models, nil
}

// Get returns one language model by its name, e.g.
// "en-US_BroadbandModel".
func (s *ModelService) Get(ctx context.Context, modelID string) (*Model, error) {
	var m Model
	if err := s.tr.doJSON(ctx, "get model", http.MethodGet, "/v1/models/"+modelID, nil, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecognizeRequest describes one transcription call.
type RecognizeRequest struct {
	// Audio supplies the audio to transcribe. Required.
	Audio io.Reader

	// Format is the format of the audio. Required for raw formats;
	// the zero value lets the service detect container formats.
	Format AudioFormat

	// Model selects the language model. Empty uses the service default.
	Model string

	// LanguageCustomizationID applies a custom language model.
	LanguageCustomizationID string

	// AcousticCustomizationID applies a custom acoustic model.
	AcousticCustomizationID string

	// Timestamps requests per-word timing information.
	Timestamps bool

	// WordConfidence requests per-word confidence scores.
	WordConfidence bool

	// SmartFormatting converts dates, times, numbers and the like into
	// conventional representations.
	SmartFormatting bool

	// SpeakerLabels requests speaker diarization where the model
	// supports it.
	SpeakerLabels bool

	// MaxAlternatives caps the number of alternative transcripts.
	// Zero uses the service default of 1.
	MaxAlternatives int
}

// RecognitionResults is the outcome of a transcription.
type RecognitionResults struct {
	Results       []RecognitionResult `json:"results"`
	ResultIndex   int                 `json:"result_index"`
	SpeakerLabels []SpeakerLabel      `json:"speaker_labels,omitempty"`
	Warnings      []string            `json:"warnings,omitempty"`
}

// RecognitionResult is one segment of transcribed audio.
type RecognitionResult struct {
	Final        bool                     `json:"final"`
	Alternatives []RecognitionAlternative `json:"alternatives"`
}

// RecognitionAlternative is one candidate transcript for a segment.
type RecognitionAlternative struct {
	Transcript string `json:"transcript"`
	Confidence float64 `json:"confidence,omitempty"`
	// Timestamps holds [word, start, end] triples when requested.
	Timestamps [][3]any `json:"timestamps,omitempty"`
	// WordConfidence holds [word, confidence] pairs when requested.
	WordConfidence [][2]any `json:"word_confidence,omitempty"`
}

// SpeakerLabel attributes a span of audio to a speaker.
type SpeakerLabel struct {
	From       float64 `json:"from"`
	To         float64 `json:"to"`
	Speaker    int     `json:"speaker"`
	Confidence float64 `json:"confidence"`
	Final      bool    `json:"final"`
}

// Transcript concatenates the best alternative of every final result.
func (r *RecognitionResults) Transcript() string {
	var s string
	for _, res := range r.Results {
		if len(res.Alternatives) == 0 {
			continue
		}
		s += res.Alternatives[0].Transcript
	}
	return s
}

// RecognitionService provides audio transcription.
type RecognitionService struct {
	tr *transport
}

// Recognize transcribes a complete audio stream in one call. The request
// body is the raw audio; parameters travel as query values.
func (s *RecognitionService) Recognize(ctx context.Context, req *RecognizeRequest) (*RecognitionResults, error) {
	query := recognizeQuery(req)

	contentType := ""
	if !req.Format.IsZero() {
		contentType = req.Format.MIME()
	}
	body, err := s.tr.doBinary(ctx, http.MethodPost, "/v1/recognize", query, contentType, "application/json", req.Audio)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var results RecognitionResults
	if err := decodeJSON(body, "recognize", &results); err != nil {
		return nil, err
	}
	return &results, nil
}

func recognizeQuery(req *RecognizeRequest) url.Values {
	query := url.Values{}
	if req.Model != "" {
		query.Set("model", req.Model)
	}
	if req.LanguageCustomizationID != "" {
		query.Set("language_customization_id", req.LanguageCustomizationID)
	}
	if req.AcousticCustomizationID != "" {
		query.Set("acoustic_customization_id", req.AcousticCustomizationID)
	}
	if req.Timestamps {
		query.Set("timestamps", "true")
	}
	if req.WordConfidence {
		query.Set("word_confidence", "true")
	}
	if req.SmartFormatting {
		query.Set("smart_formatting", "true")
	}
	if req.SpeakerLabels {
		query.Set("speaker_labels", "true")
	}
	if req.MaxAlternatives > 0 {
		query.Set("max_alternatives", strconv.Itoa(req.MaxAlternatives))
	}
	return query
}

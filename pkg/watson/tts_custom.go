package watson

import (
	"context"
	"net/http"
	"net/url"
)

// Language identifies the language of a custom model, e.g. "en-US".
type Language string

// Languages supported for custom models.
const (
	LangArMs Language = "ar-MS"
	LangCsCz Language = "cs-CZ"
	LangDeDe Language = "de-DE"
	LangEnAu Language = "en-AU"
	LangEnGb Language = "en-GB"
	LangEnUs Language = "en-US"
	LangEsEs Language = "es-ES"
	LangEsLa Language = "es-LA"
	LangEsUs Language = "es-US"
	LangFrCa Language = "fr-CA"
	LangFrFr Language = "fr-FR"
	LangItIt Language = "it-IT"
	LangJaJp Language = "ja-JP"
	LangKoKr Language = "ko-KR"
	LangNlBe Language = "nl-BE"
	LangNlNl Language = "nl-NL"
	LangPtBr Language = "pt-BR"
	LangSvSe Language = "sv-SE"
	LangZhCn Language = "zh-CN"
)

// CustomModel is a custom synthesis model. Create returns only the
// CustomizationID; Get fills in the words and prompts.
type CustomModel struct {
	CustomizationID string   `json:"customization_id"`
	Name            string   `json:"name,omitempty"`
	Language        Language `json:"language,omitempty"`
	Owner           string   `json:"owner,omitempty"`
	Created         string   `json:"created,omitempty"`
	LastModified    string   `json:"last_modified,omitempty"`
	Description     string   `json:"description,omitempty"`
	Words           []Word   `json:"words,omitempty"`
	Prompts         []Prompt `json:"prompts,omitempty"`
}

// Word is a custom pronunciation entry. Translation is either a phonetic
// string (IPA or IBM SPR) or a sounds-like spelling. PartOfSpeech applies
// to Japanese only.
type Word struct {
	Word         string `json:"word"`
	Translation  string `json:"translation"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
}

// Prompt describes a custom prompt recorded for a custom model.
type Prompt struct {
	Prompt    string `json:"prompt"`
	PromptID  string `json:"prompt_id"`
	Status    string `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
	SpeakerID string `json:"speaker_id,omitempty"`
}

// CustomizationService manages custom models and their words.
type CustomizationService struct {
	tr *transport
}

// CreateModel creates a new, empty custom model for the given language and
// returns its customization ID.
func (s *CustomizationService) CreateModel(ctx context.Context, name string, language Language, description string) (*CustomModel, error) {
	body := map[string]string{"name": name}
	if language != "" {
		body["language"] = string(language)
	}
	if description != "" {
		body["description"] = description
	}
	var m CustomModel
	if err := s.tr.doJSON(ctx, "create custom model", http.MethodPost, "/v1/customizations", nil, body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListModels lists the custom models owned by the requesting credentials,
// optionally restricted to one language.
func (s *CustomizationService) ListModels(ctx context.Context, language Language) ([]CustomModel, error) {
	var query url.Values
	if language != "" {
		query = url.Values{}
		query.Set("language", string(language))
	}
	var root struct {
		Customizations []CustomModel `json:"customizations"`
	}
	if err := s.tr.doJSON(ctx, "list custom models", http.MethodGet, "/v1/customizations", query, nil, &root); err != nil {
		return nil, err
	}
	return root.Customizations, nil
}

// GetModel returns all information about a custom model, including its
// words and prompts.
func (s *CustomizationService) GetModel(ctx context.Context, customizationID string) (*CustomModel, error) {
	var m CustomModel
	if err := s.tr.doJSON(ctx, "get custom model", http.MethodGet, "/v1/customizations/"+customizationID, nil, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateModelRequest carries the fields of an update. Empty fields are left
// unchanged; Words, when present, are added to or updated in the model.
type UpdateModelRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Words       []Word `json:"words,omitempty"`
}

// UpdateModel updates the metadata or words of a custom model.
func (s *CustomizationService) UpdateModel(ctx context.Context, customizationID string, req *UpdateModelRequest) error {
	return s.tr.doJSON(ctx, "update custom model", http.MethodPost, "/v1/customizations/"+customizationID, nil, req, nil)
}

// DeleteModel deletes a custom model.
func (s *CustomizationService) DeleteModel(ctx context.Context, customizationID string) error {
	return s.tr.doJSON(ctx, "delete custom model", http.MethodDelete, "/v1/customizations/"+customizationID, nil, nil, nil)
}

// AddWords adds one or more words with their translations to a custom
// model, replacing existing entries for the same words.
func (s *CustomizationService) AddWords(ctx context.Context, customizationID string, words []Word) error {
	body := map[string][]Word{"words": words}
	return s.tr.doJSON(ctx, "add custom words", http.MethodPost, "/v1/customizations/"+customizationID+"/words", nil, body, nil)
}

// ListWords lists the words defined for a custom model.
func (s *CustomizationService) ListWords(ctx context.Context, customizationID string) ([]Word, error) {
	var root struct {
		Words []Word `json:"words"`
	}
	if err := s.tr.doJSON(ctx, "list custom words", http.MethodGet, "/v1/customizations/"+customizationID+"/words", nil, nil, &root); err != nil {
		return nil, err
	}
	return root.Words, nil
}

// AddWord adds or updates a single word in a custom model.
func (s *CustomizationService) AddWord(ctx context.Context, customizationID string, word Word) error {
	body := map[string]string{"translation": word.Translation}
	if word.PartOfSpeech != "" {
		body["part_of_speech"] = word.PartOfSpeech
	}
	return s.tr.doJSON(ctx, "add custom word", http.MethodPut, "/v1/customizations/"+customizationID+"/words/"+url.PathEscape(word.Word), nil, body, nil)
}

// GetWord returns the translation of one word from a custom model.
func (s *CustomizationService) GetWord(ctx context.Context, customizationID, word string) (*Word, error) {
	var w Word
	if err := s.tr.doJSON(ctx, "get custom word", http.MethodGet, "/v1/customizations/"+customizationID+"/words/"+url.PathEscape(word), nil, nil, &w); err != nil {
		return nil, err
	}
	if w.Word == "" {
		w.Word = word
	}
	return &w, nil
}

// DeleteWord removes one word from a custom model.
func (s *CustomizationService) DeleteWord(ctx context.Context, customizationID, word string) error {
	return s.tr.doJSON(ctx, "delete custom word", http.MethodDelete, "/v1/customizations/"+customizationID+"/words/"+url.PathEscape(word), nil, nil, nil)
}

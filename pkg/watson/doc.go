// Package watson provides Go clients for IBM Watson speech services.
//
// # Authentication
//
// Watson services authenticate with short-lived bearer tokens minted by
// the IBM Cloud IAM service from an API key. NewIAM performs the initial
// exchange and the returned authenticator refreshes the token
// transparently when it nears expiry:
//
//	auth, err := watson.NewIAM(ctx, apiKey)
//	if err != nil {
//	    // *watson.AuthError: bad key or IAM failure
//	}
//
// Concurrent requests share one cached token; at most one refresh call is
// in flight at any time. Callers that manage tokens themselves can use
// NewBearerToken instead.
//
// # Service clients
//
// Each service client wraps one regional service instance URL plus an
// Authenticator, with operations grouped into services:
//
//	tts := watson.NewTextToSpeech(auth, ttsURL)
//	voices, err := tts.Voices.List(ctx)
//	audio, err := tts.Synthesis.Synthesize(ctx, &watson.SynthesizeRequest{
//	    Text:   "Hello world",
//	    Voice:  watson.VoiceEnGbKateV3,
//	    Format: watson.FormatMp3(0),
//	})
//
//	stt := watson.NewSpeechToText(auth, sttURL)
//	results, err := stt.Recognition.Recognize(ctx, &watson.RecognizeRequest{
//	    Audio:  audioFile,
//	    Format: watson.FormatFlac(0),
//	})
//
// # Errors
//
// Failures are typed: *AuthError for token exchanges, *APIError for
// non-2xx service responses, *DecodeError for malformed payloads. Nothing
// is retried internally; *APIError.Retryable tells callers whether a retry
// could help.
package watson

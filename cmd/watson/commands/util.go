package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/kawaki-san/ibm-watson-go/pkg/cli"
	"github.com/kawaki-san/ibm-watson-go/pkg/watson"
)

// loadRequest loads a request from a YAML or JSON file
func loadRequest(path string, v any) error {
	return cli.LoadRequest(path, v)
}

// outputBytes outputs binary data to a file
func outputBytes(data []byte, outputPath string) error {
	return cli.OutputBytes(data, outputPath)
}

// requireInputFile checks if input file is provided
func requireInputFile() error {
	if getInputFile() == "" {
		return fmt.Errorf("input file is required, use -f flag")
	}
	return nil
}

// requestTimeout returns the per-call timeout for the context configuration.
func requestTimeout(ctx *cli.Context) time.Duration {
	if ctx.Timeout > 0 {
		return time.Duration(ctx.Timeout) * time.Second
	}
	return 120 * time.Second
}

// createAuthenticator exchanges the context's API key for an IAM token.
func createAuthenticator(ctx context.Context, cfgCtx *cli.Context) (watson.Authenticator, error) {
	var opts []watson.IAMOption
	if cfgCtx.AuthURL != "" {
		opts = append(opts, watson.WithAuthURL(cfgCtx.AuthURL))
	}
	if cfgCtx.Timeout > 0 {
		opts = append(opts, watson.WithIAMHTTPClient(&http.Client{
			Timeout: time.Duration(cfgCtx.Timeout) * time.Second,
		}))
	}
	auth, err := watson.NewIAM(ctx, cfgCtx.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("IAM authentication failed: %w", err)
	}
	return auth, nil
}

// createTTS creates a Text to Speech client from context configuration
func createTTS(ctx context.Context, cfgCtx *cli.Context) (*watson.TextToSpeech, error) {
	if cfgCtx.TTSURL == "" {
		return nil, fmt.Errorf("context %q has no tts_url configured", cfgCtx.Name)
	}
	auth, err := createAuthenticator(ctx, cfgCtx)
	if err != nil {
		return nil, err
	}
	var opts []watson.Option
	if cfgCtx.Timeout > 0 {
		opts = append(opts, watson.WithTimeout(time.Duration(cfgCtx.Timeout)*time.Second))
	}
	return watson.NewTextToSpeech(auth, cfgCtx.TTSURL, opts...), nil
}

// createSTT creates a Speech to Text client from context configuration
func createSTT(ctx context.Context, cfgCtx *cli.Context) (*watson.SpeechToText, error) {
	if cfgCtx.STTURL == "" {
		return nil, fmt.Errorf("context %q has no stt_url configured", cfgCtx.Name)
	}
	auth, err := createAuthenticator(ctx, cfgCtx)
	if err != nil {
		return nil, err
	}
	var opts []watson.Option
	if cfgCtx.Timeout > 0 {
		opts = append(opts, watson.WithTimeout(time.Duration(cfgCtx.Timeout)*time.Second))
	}
	return watson.NewSpeechToText(auth, cfgCtx.STTURL, opts...), nil
}

// openAudioFile opens an audio file and wraps it with an upload progress
// bar on stderr so piped stdout stays clean.
func openAudioFile(path string) (io.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open audio file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat audio file: %w", err)
	}

	bar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("uploading"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)

	reader := io.TeeReader(f, bar)
	closer := func() error {
		bar.Finish()
		return f.Close()
	}
	return reader, closer, nil
}

// parseFormatFlags reads the shared --format and --rate flags.
func parseFormatFlags(format string, rate int) (watson.AudioFormat, error) {
	f, err := watson.ParseFormat(format, rate)
	if err != nil {
		return watson.AudioFormat{}, fmt.Errorf("invalid --format: %w", err)
	}
	return f, nil
}

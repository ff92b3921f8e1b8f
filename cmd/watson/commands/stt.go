package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kawaki-san/ibm-watson-go/pkg/cli"
	"github.com/kawaki-san/ibm-watson-go/pkg/watson"
)

var sttCmd = &cobra.Command{
	Use:   "stt",
	Short: "Speech to Text service",
	Long: `Speech to Text service.

Transcribes audio into text, lists available language models, and
streams live recognition results over WebSocket.`,
}

var sttModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available language models",
	Long: `List all language models available for recognition.

Examples:
  watson -c myctx stt models
  watson -c myctx stt models --json | jq '.[].name'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createSTT(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		models, err := client.Models.List(reqCtx)
		if err != nil {
			return fmt.Errorf("list models failed: %w", err)
		}

		if isJSONOutput() || getOutputFile() != "" {
			return outputResult(models, getOutputFile(), isJSONOutput())
		}

		styles := cli.DefaultStyles
		fmt.Println(styles.RenderHeader("Models (%d)", len(models)))
		for _, m := range models {
			detail := fmt.Sprintf("%s  %d Hz  %s", m.Language, m.Rate, m.Description)
			fmt.Println(styles.RenderRow(m.Name, detail, 32))
		}
		return nil
	},
}

var sttModelCmd = &cobra.Command{
	Use:   "model <model-id>",
	Short: "Show one language model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createSTT(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		model, err := client.Models.Get(reqCtx, args[0])
		if err != nil {
			return fmt.Errorf("get model failed: %w", err)
		}

		return outputResult(model, getOutputFile(), isJSONOutput())
	},
}

var sttRecognizeCmd = &cobra.Command{
	Use:   "recognize <audio-file>",
	Short: "Transcribe an audio file",
	Long: `Transcribe an audio file.

The whole file is uploaded and transcribed in one request. Use
'stt stream' for incremental results.

Examples:
  watson -c myctx stt recognize recording.flac
  watson -c myctx stt recognize audio.raw --format l16 --rate 16000
  watson -c myctx stt recognize call.wav --speaker-labels --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		rate, _ := cmd.Flags().GetInt("rate")
		model, _ := cmd.Flags().GetString("model")
		timestamps, _ := cmd.Flags().GetBool("timestamps")
		wordConfidence, _ := cmd.Flags().GetBool("word-confidence")
		smartFormatting, _ := cmd.Flags().GetBool("smart-formatting")
		speakerLabels, _ := cmd.Flags().GetBool("speaker-labels")
		maxAlternatives, _ := cmd.Flags().GetInt("max-alternatives")
		languageCustomizationID, _ := cmd.Flags().GetString("language-customization-id")
		transcriptOnly, _ := cmd.Flags().GetBool("transcript")

		format, err := parseFormatFlags(formatName, rate)
		if err != nil {
			return err
		}

		audio, closeAudio, err := openAudioFile(args[0])
		if err != nil {
			return err
		}
		defer closeAudio()

		printVerbose("Using context: %s", cfgCtx.Name)
		printVerbose("Audio file: %s", args[0])

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createSTT(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		start := time.Now()
		results, err := client.Recognition.Recognize(reqCtx, &watson.RecognizeRequest{
			Audio:                   audio,
			Format:                  format,
			Model:                   model,
			LanguageCustomizationID: languageCustomizationID,
			Timestamps:              timestamps,
			WordConfidence:          wordConfidence,
			SmartFormatting:         smartFormatting,
			SpeakerLabels:           speakerLabels,
			MaxAlternatives:         maxAlternatives,
		})
		if err != nil {
			return fmt.Errorf("recognition failed: %w", err)
		}
		printVerbose("Recognition took %s", cli.FormatDuration(time.Since(start)))

		if transcriptOnly {
			fmt.Println(results.Transcript())
			return nil
		}
		return outputResult(results, getOutputFile(), isJSONOutput())
	},
}

var sttStreamCmd = &cobra.Command{
	Use:   "stream <audio-file>",
	Short: "Stream an audio file for live transcription",
	Long: `Stream an audio file over WebSocket and print hypotheses as they
arrive. Interim hypotheses are printed to stderr; the final transcript
goes to stdout.

Examples:
  watson -c myctx stt stream recording.raw --format l16 --rate 16000
  watson -c myctx stt stream talk.flac --interim`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		rate, _ := cmd.Flags().GetInt("rate")
		model, _ := cmd.Flags().GetString("model")
		interim, _ := cmd.Flags().GetBool("interim")
		chunkSize, _ := cmd.Flags().GetInt("chunk-size")

		format, err := parseFormatFlags(formatName, rate)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open audio file: %w", err)
		}
		defer f.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createSTT(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		session, err := client.Recognition.OpenStream(reqCtx, &watson.StreamConfig{
			Format:         format,
			Model:          model,
			InterimResults: interim,
		})
		if err != nil {
			return fmt.Errorf("open stream failed: %w", err)
		}
		defer session.Close()

		// Feed audio frames in the background while results arrive.
		sendErr := make(chan error, 1)
		go func() {
			defer close(sendErr)
			buf := make([]byte, chunkSize)
			for {
				n, err := f.Read(buf)
				if n > 0 {
					if werr := session.SendAudio(reqCtx, buf[:n], false); werr != nil {
						sendErr <- werr
						return
					}
				}
				if err == io.EOF {
					sendErr <- session.SendAudio(reqCtx, nil, true)
					return
				}
				if err != nil {
					sendErr <- err
					return
				}
			}
		}()

		for chunk, err := range session.Recv() {
			if err != nil {
				return fmt.Errorf("stream failed: %w", err)
			}
			for _, r := range chunk.Results {
				if len(r.Alternatives) == 0 {
					continue
				}
				text := r.Alternatives[0].Transcript
				if r.Final {
					fmt.Println(text)
				} else if interim {
					fmt.Fprintf(os.Stderr, "... %s\n", text)
				}
			}
		}

		if err := <-sendErr; err != nil {
			return fmt.Errorf("send audio failed: %w", err)
		}
		return nil
	},
}

func init() {
	sttRecognizeCmd.Flags().String("format", "", "Audio format: flac, wav, mp3, l16, ... (default: detect)")
	sttRecognizeCmd.Flags().Int("rate", 0, "Sampling rate in Hz (required for raw formats)")
	sttRecognizeCmd.Flags().String("model", "", "Language model, e.g. en-US_BroadbandModel")
	sttRecognizeCmd.Flags().Bool("timestamps", false, "Include per-word timestamps")
	sttRecognizeCmd.Flags().Bool("word-confidence", false, "Include per-word confidence")
	sttRecognizeCmd.Flags().Bool("smart-formatting", false, "Format dates, times and numbers")
	sttRecognizeCmd.Flags().Bool("speaker-labels", false, "Label which speaker said what")
	sttRecognizeCmd.Flags().Int("max-alternatives", 0, "Maximum alternative transcripts")
	sttRecognizeCmd.Flags().String("language-customization-id", "", "Custom language model to apply")
	sttRecognizeCmd.Flags().Bool("transcript", false, "Print only the combined transcript text")

	sttStreamCmd.Flags().String("format", "", "Audio format of the stream")
	sttStreamCmd.Flags().Int("rate", 0, "Sampling rate in Hz")
	sttStreamCmd.Flags().String("model", "", "Language model")
	sttStreamCmd.Flags().Bool("interim", false, "Print interim hypotheses to stderr")
	sttStreamCmd.Flags().Int("chunk-size", 8192, "Audio frame size in bytes")

	sttCmd.AddCommand(sttModelsCmd)
	sttCmd.AddCommand(sttModelCmd)
	sttCmd.AddCommand(sttRecognizeCmd)
	sttCmd.AddCommand(sttStreamCmd)
}

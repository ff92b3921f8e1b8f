package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kawaki-san/ibm-watson-go/pkg/cli"
	"github.com/kawaki-san/ibm-watson-go/pkg/watson"
)

var ttsCmd = &cobra.Command{
	Use:   "tts",
	Short: "Text to Speech service",
	Long: `Text to Speech service.

Synthesizes written text into spoken audio, lists available voices,
returns pronunciations, and manages customization word models.

Example request file (speak.yaml):
  text: Hello, this is a test message.
  voice: en-GB_KateV3Voice
  format: ogg-opus
  rate: 48000`,
}

var ttsVoicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List available voices",
	Long: `List all voices available for synthesis.

Examples:
  watson -c myctx tts voices
  watson -c myctx tts voices --json | jq '.[].name'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		voices, err := client.Voices.List(reqCtx)
		if err != nil {
			return fmt.Errorf("list voices failed: %w", err)
		}

		if isJSONOutput() || getOutputFile() != "" {
			return outputResult(voices, getOutputFile(), isJSONOutput())
		}

		// Terminal listing
		styles := cli.DefaultStyles
		fmt.Println(styles.RenderHeader("Voices (%d)", len(voices)))
		for _, v := range voices {
			detail := fmt.Sprintf("%s %s  %s", v.Language, v.Gender, v.Description)
			fmt.Println(styles.RenderRow(v.Name, detail, 28))
		}
		return nil
	},
}

var ttsVoiceCmd = &cobra.Command{
	Use:   "voice <voice-id>",
	Short: "Show one voice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}
		customizationID, _ := cmd.Flags().GetString("customization-id")

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		voice, err := client.Voices.Get(reqCtx, watson.VoiceID(args[0]), customizationID)
		if err != nil {
			return fmt.Errorf("get voice failed: %w", err)
		}

		return outputResult(voice, getOutputFile(), isJSONOutput())
	},
}

// synthesizeFile is the request-file shape for tts synthesize.
type synthesizeFile struct {
	Text            string `yaml:"text" json:"text"`
	Voice           string `yaml:"voice" json:"voice"`
	Format          string `yaml:"format" json:"format"`
	Rate            int    `yaml:"rate" json:"rate"`
	CustomizationID string `yaml:"customization_id" json:"customization_id"`
}

var ttsSynthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Synthesize speech from text",
	Long: `Synthesize speech from text.

The audio output is written to the -o file, or to stdout when no
output file is given.

Examples:
  watson -c myctx tts synthesize --text "hello world" -o hello.ogg
  watson -c myctx tts synthesize -f speak.yaml -o out.mp3
  echo '{"text":"hi"}' | watson -c myctx tts synthesize -f - > hi.ogg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		var reqFile synthesizeFile
		if getInputFile() != "" {
			if err := loadRequest(getInputFile(), &reqFile); err != nil {
				return err
			}
		}
		if text, _ := cmd.Flags().GetString("text"); text != "" {
			reqFile.Text = text
		}
		if voice, _ := cmd.Flags().GetString("voice"); voice != "" {
			reqFile.Voice = voice
		}
		if format, _ := cmd.Flags().GetString("format"); format != "" {
			reqFile.Format = format
		}
		if rate, _ := cmd.Flags().GetInt("rate"); rate != 0 {
			reqFile.Rate = rate
		}
		if id, _ := cmd.Flags().GetString("customization-id"); id != "" {
			reqFile.CustomizationID = id
		}
		if reqFile.Text == "" {
			return fmt.Errorf("no text to synthesize, use --text or -f")
		}
		if reqFile.Voice == "" {
			reqFile.Voice = cfgCtx.DefaultVoice
		}

		format, err := parseFormatFlags(reqFile.Format, reqFile.Rate)
		if err != nil {
			return err
		}

		printVerbose("Using context: %s", cfgCtx.Name)
		printVerbose("Voice: %s", reqFile.Voice)
		printVerbose("Text length: %d characters", len(reqFile.Text))

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		audio, err := client.Synthesis.Synthesize(reqCtx, &watson.SynthesizeRequest{
			Text:            reqFile.Text,
			Voice:           watson.VoiceID(reqFile.Voice),
			Format:          format,
			CustomizationID: reqFile.CustomizationID,
		})
		if err != nil {
			return fmt.Errorf("synthesis failed: %w", err)
		}

		if err := outputBytes(audio, getOutputFile()); err != nil {
			return fmt.Errorf("failed to write audio: %w", err)
		}
		if getOutputFile() != "" {
			printVerbose("Audio saved to: %s (%s)", getOutputFile(), cli.FormatBytes(int64(len(audio))))
		}
		return nil
	},
}

var ttsPronunciationCmd = &cobra.Command{
	Use:   "pronunciation <text>",
	Short: "Get the pronunciation of a word",
	Long: `Get the phonetic pronunciation of a word.

Examples:
  watson -c myctx tts pronunciation tomato
  watson -c myctx tts pronunciation tomato --phoneme-format ibm`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}
		voice, _ := cmd.Flags().GetString("voice")
		phonemeFormat, _ := cmd.Flags().GetString("phoneme-format")
		customizationID, _ := cmd.Flags().GetString("customization-id")
		if voice == "" {
			voice = cfgCtx.DefaultVoice
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		pron, err := client.Synthesis.Pronunciation(reqCtx, args[0],
			watson.VoiceID(voice), watson.PhonemeFormat(phonemeFormat), customizationID)
		if err != nil {
			return fmt.Errorf("pronunciation failed: %w", err)
		}

		return outputResult(pron, getOutputFile(), isJSONOutput())
	},
}

var ttsModelCmd = &cobra.Command{
	Use:   "model",
	Short: "Manage customization word models",
}

var ttsModelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom models",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}
		language, _ := cmd.Flags().GetString("language")

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		models, err := client.Customization.ListModels(reqCtx, watson.Language(language))
		if err != nil {
			return fmt.Errorf("list models failed: %w", err)
		}

		return outputResult(models, getOutputFile(), isJSONOutput())
	},
}

var ttsModelCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a custom model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}
		language, _ := cmd.Flags().GetString("language")
		description, _ := cmd.Flags().GetString("description")

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		model, err := client.Customization.CreateModel(reqCtx, args[0], watson.Language(language), description)
		if err != nil {
			return fmt.Errorf("create model failed: %w", err)
		}

		cli.PrintSuccess("Model %q created", model.CustomizationID)
		return outputResult(model, getOutputFile(), isJSONOutput())
	},
}

var ttsModelGetCmd = &cobra.Command{
	Use:   "get <customization-id>",
	Short: "Show a custom model and its words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		model, err := client.Customization.GetModel(reqCtx, args[0])
		if err != nil {
			return fmt.Errorf("get model failed: %w", err)
		}

		return outputResult(model, getOutputFile(), isJSONOutput())
	},
}

var ttsModelDeleteCmd = &cobra.Command{
	Use:   "delete <customization-id>",
	Short: "Delete a custom model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		if err := client.Customization.DeleteModel(reqCtx, args[0]); err != nil {
			return fmt.Errorf("delete model failed: %w", err)
		}

		cli.PrintSuccess("Model %q deleted", args[0])
		return nil
	},
}

var ttsWordAddCmd = &cobra.Command{
	Use:   "add-word <customization-id> <word> <translation>",
	Short: "Add a word translation to a custom model",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		word := watson.Word{Word: args[1], Translation: args[2]}
		if err := client.Customization.AddWord(reqCtx, args[0], word); err != nil {
			return fmt.Errorf("add word failed: %w", err)
		}

		cli.PrintSuccess("Word %q added", args[1])
		return nil
	},
}

var ttsWordListCmd = &cobra.Command{
	Use:   "words <customization-id>",
	Short: "List the words of a custom model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		words, err := client.Customization.ListWords(reqCtx, args[0])
		if err != nil {
			return fmt.Errorf("list words failed: %w", err)
		}

		return outputResult(words, getOutputFile(), isJSONOutput())
	},
}

var ttsWordDeleteCmd = &cobra.Command{
	Use:   "delete-word <customization-id> <word>",
	Short: "Delete a word from a custom model",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		if err := client.Customization.DeleteWord(reqCtx, args[0], args[1]); err != nil {
			return fmt.Errorf("delete word failed: %w", err)
		}

		cli.PrintSuccess("Word %q deleted", args[1])
		return nil
	},
}

var ttsSpeakerCmd = &cobra.Command{
	Use:   "speaker",
	Short: "Manage speaker models",
}

var ttsSpeakerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List speaker models",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		speakers, err := client.Speakers.List(reqCtx)
		if err != nil {
			return fmt.Errorf("list speakers failed: %w", err)
		}

		return outputResult(speakers, getOutputFile(), isJSONOutput())
	},
}

var ttsSpeakerCreateCmd = &cobra.Command{
	Use:   "create <name> <audio-file>",
	Short: "Create a speaker model from a WAV enrollment sample",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		audio, closeAudio, err := openAudioFile(args[1])
		if err != nil {
			return err
		}
		defer closeAudio()

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		speaker, err := client.Speakers.Create(reqCtx, args[0], audio)
		if err != nil {
			return fmt.Errorf("create speaker failed: %w", err)
		}

		cli.PrintSuccess("Speaker %q created", speaker.SpeakerID)
		return outputResult(speaker, getOutputFile(), isJSONOutput())
	},
}

var ttsSpeakerDeleteCmd = &cobra.Command{
	Use:   "delete <speaker-id>",
	Short: "Delete a speaker model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgCtx, err := getContext()
		if err != nil {
			return err
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), requestTimeout(cfgCtx))
		defer cancel()

		client, err := createTTS(reqCtx, cfgCtx)
		if err != nil {
			return err
		}

		if err := client.Speakers.Delete(reqCtx, args[0]); err != nil {
			return fmt.Errorf("delete speaker failed: %w", err)
		}

		cli.PrintSuccess("Speaker %q deleted", args[0])
		return nil
	},
}

func init() {
	ttsVoiceCmd.Flags().String("customization-id", "", "Custom model to include in the voice details")

	ttsSynthesizeCmd.Flags().String("text", "", "Text to synthesize")
	ttsSynthesizeCmd.Flags().String("voice", "", "Voice ID (default: context default voice)")
	ttsSynthesizeCmd.Flags().String("format", "", "Audio format: ogg-opus, mp3, wav, flac, ... (default: ogg-opus)")
	ttsSynthesizeCmd.Flags().Int("rate", 0, "Sampling rate in Hz (default: format default)")
	ttsSynthesizeCmd.Flags().String("customization-id", "", "Custom model to apply")

	ttsPronunciationCmd.Flags().String("voice", "", "Voice whose language the pronunciation is for")
	ttsPronunciationCmd.Flags().String("phoneme-format", "", "Phoneme alphabet: ipa or ibm (default: ipa)")
	ttsPronunciationCmd.Flags().String("customization-id", "", "Custom model to consult")

	ttsModelListCmd.Flags().String("language", "", "Only list models for this language, e.g. en-US")
	ttsModelCreateCmd.Flags().String("language", "", "Model language, e.g. en-US (default: en-US)")
	ttsModelCreateCmd.Flags().String("description", "", "Model description")

	ttsModelCmd.AddCommand(ttsModelListCmd)
	ttsModelCmd.AddCommand(ttsModelCreateCmd)
	ttsModelCmd.AddCommand(ttsModelGetCmd)
	ttsModelCmd.AddCommand(ttsModelDeleteCmd)
	ttsModelCmd.AddCommand(ttsWordAddCmd)
	ttsModelCmd.AddCommand(ttsWordListCmd)
	ttsModelCmd.AddCommand(ttsWordDeleteCmd)

	ttsSpeakerCmd.AddCommand(ttsSpeakerListCmd)
	ttsSpeakerCmd.AddCommand(ttsSpeakerCreateCmd)
	ttsSpeakerCmd.AddCommand(ttsSpeakerDeleteCmd)

	ttsCmd.AddCommand(ttsVoicesCmd)
	ttsCmd.AddCommand(ttsVoiceCmd)
	ttsCmd.AddCommand(ttsSynthesizeCmd)
	ttsCmd.AddCommand(ttsPronunciationCmd)
	ttsCmd.AddCommand(ttsModelCmd)
	ttsCmd.AddCommand(ttsSpeakerCmd)
}

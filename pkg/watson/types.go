package watson

import "fmt"

// VoiceID identifies one of the voices offered by the Text to Speech
// service, in the exact form the service expects.
type VoiceID string

// Voices documented for the Text to Speech service.
const (
	VoiceArMsOmar        VoiceID = "ar-MS_OmarVoice"
	VoiceCsCzAlena       VoiceID = "cs-CZ_AlenaVoice"
	VoiceDeDeBirgitV3    VoiceID = "de-DE_BirgitV3Voice"
	VoiceDeDeDieterV3    VoiceID = "de-DE_DieterV3Voice"
	VoiceDeDeErikaV3     VoiceID = "de-DE_ErikaV3Voice"
	VoiceEnAuCraig       VoiceID = "en-AU_CraigVoice"
	VoiceEnAuMadison     VoiceID = "en-AU_MadisonVoice"
	VoiceEnAuSteve       VoiceID = "en-AU_SteveVoice"
	VoiceEnGbCharlotteV3 VoiceID = "en-GB_CharlotteV3Voice"
	VoiceEnGbJamesV3     VoiceID = "en-GB_JamesV3Voice"
	VoiceEnGbKateV3      VoiceID = "en-GB_KateV3Voice"
	VoiceEnUsAllisonV3   VoiceID = "en-US_AllisonV3Voice"
	VoiceEnUsEmilyV3     VoiceID = "en-US_EmilyV3Voice"
	VoiceEnUsHenryV3     VoiceID = "en-US_HenryV3Voice"
	VoiceEnUsKevinV3     VoiceID = "en-US_KevinV3Voice"
	VoiceEnUsLisaV3      VoiceID = "en-US_LisaV3Voice"
	VoiceEnUsMichaelV3   VoiceID = "en-US_MichaelV3Voice"
	VoiceEnUsOliviaV3    VoiceID = "en-US_OliviaV3Voice"
	VoiceEsEsEnriqueV3   VoiceID = "es-ES_EnriqueV3Voice"
	VoiceEsEsLauraV3     VoiceID = "es-ES_LauraV3Voice"
	VoiceEsLaSofiaV3     VoiceID = "es-LA_SofiaV3Voice"
	VoiceEsUsSofiaV3     VoiceID = "es-US_SofiaV3Voice"
	VoiceFrCaLouiseV3    VoiceID = "fr-CA_LouiseV3Voice"
	VoiceFrFrNicolasV3   VoiceID = "fr-FR_NicolasV3Voice"
	VoiceFrFrReneeV3     VoiceID = "fr-FR_ReneeV3Voice"
	VoiceItItFrancescaV3 VoiceID = "it-IT_FrancescaV3Voice"
	VoiceJaJpEmiV3       VoiceID = "ja-JP_EmiV3Voice"
	VoiceKoKrHyunjun     VoiceID = "ko-KR_HyunjunVoice"
	VoiceKoKrSiWoo       VoiceID = "ko-KR_SiWooVoice"
	VoiceKoKrYoungmi     VoiceID = "ko-KR_YoungmiVoice"
	VoiceKoKrYuna        VoiceID = "ko-KR_YunaVoice"
	VoiceNlBeAdele       VoiceID = "nl-BE_AdeleVoice"
	VoiceNlBeBram        VoiceID = "nl-BE_BramVoice"
	VoiceNlNlEmma        VoiceID = "nl-NL_EmmaVoice"
	VoiceNlNlLiam        VoiceID = "nl-NL_LiamVoice"
	VoicePtBrIsabelaV3   VoiceID = "pt-BR_IsabelaV3Voice"
	VoiceSvSeIngrid      VoiceID = "sv-SE_IngridVoice"
	VoiceZhCnLiNa        VoiceID = "zh-CN_LiNaVoice"
	VoiceZhCnWangWei     VoiceID = "zh-CN_WangWeiVoice"
	VoiceZhCnZhangJing   VoiceID = "zh-CN_ZhangJingVoice"

	// DefaultVoice is used when a request does not name a voice.
	DefaultVoice = VoiceEnUsMichaelV3
)

// Endianness of raw L16 audio.
type Endianness string

const (
	BigEndian    Endianness = "big-endian"
	LittleEndian Endianness = "little-endian"
)

// AudioFormat describes an audio MIME type accepted or produced by the
// speech services, with its optional parameters. Use the constructors
// below; the zero value renders as Ogg/Opus at the service default rate.
type AudioFormat struct {
	mime       string
	codec      string
	rate       int
	endianness Endianness
}

// FormatAlaw is A-law audio. The sampling rate is required.
func FormatAlaw(rate int) AudioFormat {
	return AudioFormat{mime: "audio/alaw", rate: rate}
}

// FormatBasic is basic audio, always 8000 Hz.
func FormatBasic() AudioFormat {
	return AudioFormat{mime: "audio/basic"}
}

// FormatFlac is FLAC audio. Pass 0 for the service default rate (22050 Hz).
func FormatFlac(rate int) AudioFormat {
	return AudioFormat{mime: "audio/flac", rate: orDefaultRate(rate)}
}

// FormatL16 is raw 16-bit linear PCM. The sampling rate is required; pass
// an empty endianness for the service default (little-endian).
func FormatL16(rate int, endianness Endianness) AudioFormat {
	return AudioFormat{mime: "audio/l16", rate: rate, endianness: endianness}
}

// FormatOgg is Ogg audio with the service-chosen codec. Pass 0 for the
// default rate.
func FormatOgg(rate int) AudioFormat {
	return AudioFormat{mime: "audio/ogg", rate: orDefaultRate(rate)}
}

// FormatOggOpus is Ogg/Opus audio. Pass 0 for the default 48000 Hz.
func FormatOggOpus(rate int) AudioFormat {
	if rate == 0 {
		rate = 48000
	}
	return AudioFormat{mime: "audio/ogg", codec: "opus", rate: rate}
}

// FormatOggVorbis is Ogg/Vorbis audio. Pass 0 for the default rate.
func FormatOggVorbis(rate int) AudioFormat {
	return AudioFormat{mime: "audio/ogg", codec: "vorbis", rate: orDefaultRate(rate)}
}

// FormatMp3 is MP3 audio. Pass 0 for the default rate.
func FormatMp3(rate int) AudioFormat {
	return AudioFormat{mime: "audio/mp3", rate: orDefaultRate(rate)}
}

// FormatMpeg is MPEG audio. Pass 0 for the default rate.
func FormatMpeg(rate int) AudioFormat {
	return AudioFormat{mime: "audio/mpeg", rate: orDefaultRate(rate)}
}

// FormatMulaw is mu-law audio. The sampling rate is required.
func FormatMulaw(rate int) AudioFormat {
	return AudioFormat{mime: "audio/mulaw", rate: rate}
}

// FormatWav is WAV audio. Pass 0 for the default rate.
func FormatWav(rate int) AudioFormat {
	return AudioFormat{mime: "audio/wav", rate: orDefaultRate(rate)}
}

// FormatWebm is WebM audio with the Opus codec at 48000 Hz.
func FormatWebm() AudioFormat {
	return AudioFormat{mime: "audio/webm"}
}

// FormatWebmOpus is WebM/Opus audio, always 48000 Hz.
func FormatWebmOpus() AudioFormat {
	return AudioFormat{mime: "audio/webm", codec: "opus"}
}

// FormatWebmVorbis is WebM/Vorbis audio. Pass 0 for the default rate.
func FormatWebmVorbis(rate int) AudioFormat {
	return AudioFormat{mime: "audio/webm", codec: "vorbis", rate: orDefaultRate(rate)}
}

func orDefaultRate(rate int) int {
	if rate == 0 {
		return 22050
	}
	return rate
}

// ParseFormat resolves a short format name such as "mp3" or "ogg-opus"
// into an AudioFormat. Pass rate 0 for the format's default rate. An
// empty name yields the zero format (the service default).
func ParseFormat(name string, rate int) (AudioFormat, error) {
	switch name {
	case "":
		return AudioFormat{}, nil
	case "alaw":
		return FormatAlaw(rate), nil
	case "basic":
		return FormatBasic(), nil
	case "flac":
		return FormatFlac(rate), nil
	case "l16":
		return FormatL16(rate, ""), nil
	case "ogg":
		return FormatOgg(rate), nil
	case "opus", "ogg-opus":
		return FormatOggOpus(rate), nil
	case "vorbis", "ogg-vorbis":
		return FormatOggVorbis(rate), nil
	case "mp3":
		return FormatMp3(rate), nil
	case "mpeg":
		return FormatMpeg(rate), nil
	case "mulaw":
		return FormatMulaw(rate), nil
	case "wav":
		return FormatWav(rate), nil
	case "webm":
		return FormatWebm(), nil
	case "webm-opus":
		return FormatWebmOpus(), nil
	case "webm-vorbis":
		return FormatWebmVorbis(rate), nil
	default:
		return AudioFormat{}, fmt.Errorf("unknown audio format %q", name)
	}
}

// IsZero reports whether f is the zero format.
func (f AudioFormat) IsZero() bool {
	return f.mime == ""
}

// MIME renders the format exactly as the service documents it, e.g.
// "audio/ogg;codecs=opus;rate=48000".
func (f AudioFormat) MIME() string {
	if f.IsZero() {
		return FormatOggOpus(0).MIME()
	}
	s := f.mime
	if f.codec != "" {
		s += ";codecs=" + f.codec
	}
	if f.rate > 0 {
		s += fmt.Sprintf(";rate=%d", f.rate)
	}
	if f.endianness != "" {
		s += ";endianness=" + string(f.endianness)
	}
	return s
}

// String implements fmt.Stringer.
func (f AudioFormat) String() string {
	return f.MIME()
}

// PhonemeFormat selects the phoneme alphabet for pronunciation requests.
type PhonemeFormat string

const (
	// PhonemeIPA is the International Phonetic Alphabet. Service default.
	PhonemeIPA PhonemeFormat = "ipa"
	// PhonemeIBM is IBM's Symbolic Phonetic Representation.
	PhonemeIBM PhonemeFormat = "ibm"
)

// Voice describes a voice available for synthesis.
type Voice struct {
	URL               string                  `json:"url"`
	Gender            string                  `json:"gender"`
	Name              string                  `json:"name"`
	Language          string                  `json:"language"`
	Description       string                  `json:"description"`
	Customizable      bool                    `json:"customizable"`
	SupportedFeatures VoiceSupportedFeatures  `json:"supported_features"`
	Customization     *CustomModel            `json:"customization,omitempty"`
}

// VoiceSupportedFeatures lists optional capabilities of a voice.
type VoiceSupportedFeatures struct {
	CustomPronunciation bool `json:"custom_pronunciation"`
	VoiceTransformation bool `json:"voice_transformation"`
}

// Pronunciation is the phonetic rendering of a word.
type Pronunciation struct {
	Pronunciation string `json:"pronunciation"`
}

// Model describes a Speech to Text base language model.
type Model struct {
	Name              string                 `json:"name"`
	Language          string                 `json:"language"`
	URL               string                 `json:"url"`
	Rate              int64                  `json:"rate"`
	SupportedFeatures ModelSupportedFeatures `json:"supported_features"`
	Description       string                 `json:"description"`
}

// ModelSupportedFeatures lists optional capabilities of a language model.
type ModelSupportedFeatures struct {
	CustomLanguageModel bool `json:"custom_language_model"`
	CustomAcousticModel bool `json:"custom_acoustic_model"`
	SpeakerLabels       bool `json:"speaker_labels"`
}

package watson

import "testing"

func TestAudioFormat_MIME(t *testing.T) {
	cases := []struct {
		format AudioFormat
		want   string
	}{
		{FormatAlaw(8000), "audio/alaw;rate=8000"},
		{FormatBasic(), "audio/basic"},
		{FormatFlac(0), "audio/flac;rate=22050"},
		{FormatFlac(44100), "audio/flac;rate=44100"},
		{FormatL16(16000, ""), "audio/l16;rate=16000"},
		{FormatL16(16000, BigEndian), "audio/l16;rate=16000;endianness=big-endian"},
		{FormatOgg(0), "audio/ogg;rate=22050"},
		{FormatOggOpus(0), "audio/ogg;codecs=opus;rate=48000"},
		{FormatOggOpus(24000), "audio/ogg;codecs=opus;rate=24000"},
		{FormatOggVorbis(0), "audio/ogg;codecs=vorbis;rate=22050"},
		{FormatMp3(0), "audio/mp3;rate=22050"},
		{FormatMpeg(0), "audio/mpeg;rate=22050"},
		{FormatMulaw(8000), "audio/mulaw;rate=8000"},
		{FormatWav(0), "audio/wav;rate=22050"},
		{FormatWebm(), "audio/webm"},
		{FormatWebmOpus(), "audio/webm;codecs=opus"},
		{FormatWebmVorbis(0), "audio/webm;codecs=vorbis;rate=22050"},
	}
	for _, c := range cases {
		if got := c.format.MIME(); got != c.want {
			t.Errorf("MIME() = %q, want %q", got, c.want)
		}
	}
}

func TestAudioFormat_ZeroValue(t *testing.T) {
	var f AudioFormat
	if !f.IsZero() {
		t.Fatal("zero format must report IsZero")
	}
	if got := f.MIME(); got != "audio/ogg;codecs=opus;rate=48000" {
		t.Fatalf("zero format must render the default, got %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		name string
		rate int
		want string
	}{
		{"", 0, "audio/ogg;codecs=opus;rate=48000"},
		{"mp3", 0, "audio/mp3;rate=22050"},
		{"ogg-opus", 24000, "audio/ogg;codecs=opus;rate=24000"},
		{"opus", 0, "audio/ogg;codecs=opus;rate=48000"},
		{"l16", 16000, "audio/l16;rate=16000"},
		{"wav", 44100, "audio/wav;rate=44100"},
		{"webm-opus", 0, "audio/webm;codecs=opus"},
	}
	for _, c := range cases {
		f, err := ParseFormat(c.name, c.rate)
		if err != nil {
			t.Fatalf("ParseFormat(%q, %d): %v", c.name, c.rate, err)
		}
		if got := f.MIME(); got != c.want {
			t.Errorf("ParseFormat(%q, %d) = %q, want %q", c.name, c.rate, got, c.want)
		}
	}

	if _, err := ParseFormat("wma", 0); err == nil {
		t.Fatal("expected error for unknown format name")
	}
}

func TestDefaultVoice(t *testing.T) {
	if DefaultVoice != VoiceEnUsMichaelV3 {
		t.Fatalf("unexpected default voice %q", DefaultVoice)
	}
	if string(VoiceEnGbKateV3) != "en-GB_KateV3Voice" {
		t.Fatalf("voice id mismatch: %q", VoiceEnGbKateV3)
	}
}

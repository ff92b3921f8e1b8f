package watson

import (
	"context"
	"encoding/json"
	"iter"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// StreamConfig configures a streaming recognition session.
type StreamConfig struct {
	// Format is the format of the audio frames. Required for raw
	// formats such as L16.
	Format AudioFormat

	// Model selects the language model. Empty uses the service default.
	Model string

	// LanguageCustomizationID applies a custom language model.
	LanguageCustomizationID string

	// InterimResults asks the service to emit partial hypotheses while
	// a segment is still being spoken.
	InterimResults bool

	// Timestamps requests per-word timing information.
	Timestamps bool

	// SmartFormatting converts dates, times, numbers and the like into
	// conventional representations.
	SmartFormatting bool

	// InactivityTimeout is the seconds of non-speech audio after which
	// the service closes the session. Zero uses the service default.
	InactivityTimeout int
}

// RecognitionChunk is one results message from a streaming session.
type RecognitionChunk struct {
	// Results carries the (possibly interim) hypotheses.
	Results []RecognitionResult `json:"results"`

	// ResultIndex is the index of the earliest result in Results.
	ResultIndex int `json:"result_index"`

	// SpeakerLabels carries diarization output when requested.
	SpeakerLabels []SpeakerLabel `json:"speaker_labels,omitempty"`

	// Final reports whether every result in the chunk is final.
	Final bool `json:"-"`
}

// startMessage opens a recognition request on the socket.
type startMessage struct {
	Action            string `json:"action"`
	ContentType       string `json:"content-type,omitempty"`
	InterimResults    bool   `json:"interim_results,omitempty"`
	Timestamps        bool   `json:"timestamps,omitempty"`
	SmartFormatting   bool   `json:"smart_formatting,omitempty"`
	InactivityTimeout int    `json:"inactivity_timeout,omitempty"`
}

// OpenStream connects to the recognition WebSocket endpoint and starts a
// session. Audio is pushed with SendAudio and transcripts consumed from
// Recv; the session must be closed when done.
//
// Example:
//
//	session, err := stt.Recognition.OpenStream(ctx, &watson.StreamConfig{
//	    Format:         watson.FormatL16(16000, ""),
//	    InterimResults: true,
//	})
//	if err != nil { ... }
//	defer session.Close()
func (s *RecognitionService) OpenStream(ctx context.Context, config *StreamConfig) (*StreamSession, error) {
	query := recognizeQuery(&RecognizeRequest{
		Model:                   config.Model,
		LanguageCustomizationID: config.LanguageCustomizationID,
	})
	endpoint, err := s.tr.wsURL(ctx, "/v1/recognize", query)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, wrapError(err, "connect websocket")
	}

	session := &StreamSession{
		conn:      conn,
		recvChan:  make(chan *RecognitionChunk, 16),
		errChan:   make(chan error, 1),
		closeChan: make(chan struct{}),
	}

	start := startMessage{
		Action:            "start",
		InterimResults:    config.InterimResults,
		Timestamps:        config.Timestamps,
		SmartFormatting:   config.SmartFormatting,
		InactivityTimeout: config.InactivityTimeout,
	}
	if !config.Format.IsZero() {
		start.ContentType = config.Format.MIME()
	}
	if err := conn.WriteJSON(start); err != nil {
		conn.Close()
		return nil, wrapError(err, "send start message")
	}

	go session.receiveLoop()

	return session, nil
}

// StreamSession is an active streaming recognition session.
type StreamSession struct {
	conn      *websocket.Conn
	recvChan  chan *RecognitionChunk
	errChan   chan error
	closeChan chan struct{}
	closeOnce sync.Once

	writeMu sync.Mutex
}

// SendAudio pushes one frame of audio. When last is true the stop message
// is sent after it and the service flushes the final results.
func (s *StreamSession) SendAudio(ctx context.Context, audio []byte, last bool) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if len(audio) > 0 {
		if err := s.conn.WriteMessage(websocket.BinaryMessage, audio); err != nil {
			return wrapError(err, "send audio")
		}
	}
	if last {
		if err := s.conn.WriteJSON(startMessage{Action: "stop"}); err != nil {
			return wrapError(err, "send stop message")
		}
	}
	return nil
}

// Recv yields transcript chunks until the final chunk, an error, or Close.
func (s *StreamSession) Recv() iter.Seq2[*RecognitionChunk, error] {
	return func(yield func(*RecognitionChunk, error) bool) {
		for {
			select {
			case chunk, ok := <-s.recvChan:
				if !ok {
					return
				}
				if !yield(chunk, nil) {
					return
				}
				if chunk.Final {
					return
				}
			case err := <-s.errChan:
				yield(nil, err)
				return
			case <-s.closeChan:
				return
			}
		}
	}
}

// Close terminates the session and its underlying connection.
func (s *StreamSession) Close() error {
	s.closeOnce.Do(func() {
		close(s.closeChan)
		s.conn.Close()
	})
	return nil
}

func (s *StreamSession) receiveLoop() {
	defer close(s.recvChan)

	for {
		select {
		case <-s.closeChan:
			return
		default:
		}

		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				select {
				case s.errChan <- wrapError(err, "read message"):
				default:
				}
			}
			return
		}

		var msg struct {
			RecognitionChunk
			State string `json:"state,omitempty"`
			Error string `json:"error,omitempty"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Debug("watson: skipping unparseable frame", "err", err)
			continue
		}

		if msg.Error != "" {
			select {
			case s.errChan <- &APIError{Message: msg.Error}:
			default:
			}
			return
		}
		// State transitions ("listening") carry no transcript.
		if msg.State != "" && len(msg.Results) == 0 {
			continue
		}
		if len(msg.Results) == 0 && len(msg.SpeakerLabels) == 0 {
			continue
		}

		chunk := msg.RecognitionChunk
		chunk.Final = len(chunk.Results) > 0
		for _, r := range chunk.Results {
			if !r.Final {
				chunk.Final = false
				break
			}
		}

		select {
		case s.recvChan <- &chunk:
		case <-s.closeChan:
			return
		}
	}
}

package speech

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/medscan/medscan-api/internal/utils"
)

type recordingEngine struct {
	utterance string
	tag       language.Tag
	rate      float64
	err       error
}

func (e *recordingEngine) Speak(_ context.Context, utterance string, tag language.Tag, rate float64) error {
	e.utterance = utterance
	e.tag = tag
	e.rate = rate
	return e.err
}

type blockingEngine struct {
	started chan struct{}
	release chan struct{}
}

func (e *blockingEngine) Speak(context.Context, string, language.Tag, float64) error {
	close(e.started)
	<-e.release
	return nil
}

func TestSpeakerSpeaks(t *testing.T) {
	engine := &recordingEngine{}
	speaker := NewSpeaker(engine, utils.NewTestLogger())

	summary := Summarize("", "Aspirin", language.AmericanEnglish)
	err := speaker.Speak(context.Background(), summary, 0.75)

	require.NoError(t, err)
	assert.Equal(t, "Medicine name: Aspirin.", engine.utterance)
	assert.Equal(t, language.AmericanEnglish, engine.tag)
	assert.Equal(t, 0.75, engine.rate)
	assert.Equal(t, StateIdle, speaker.State())
}

func TestSpeakerRejectsConcurrentSpeak(t *testing.T) {
	engine := &blockingEngine{started: make(chan struct{}), release: make(chan struct{})}
	speaker := NewSpeaker(engine, utils.NewTestLogger())

	summary := Summarize("", "Aspirin", language.AmericanEnglish)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = speaker.Speak(context.Background(), summary, 1.0)
	}()

	<-engine.started
	assert.Equal(t, StateSpeaking, speaker.State())

	err := speaker.Speak(context.Background(), summary, 1.0)
	assert.ErrorIs(t, err, ErrBusy)

	close(engine.release)
	wg.Wait()
	assert.Equal(t, StateIdle, speaker.State())
}

func TestSpeakerRecordsEngineError(t *testing.T) {
	engine := &recordingEngine{err: errors.New("engine gone")}
	speaker := NewSpeaker(engine, utils.NewTestLogger())

	summary := Summarize("", "Aspirin", language.AmericanEnglish)
	err := speaker.Speak(context.Background(), summary, 1.0)

	require.Error(t, err)
	assert.Equal(t, StateErrored, speaker.State())

	// A failed speaker can try again.
	engine.err = nil
	require.NoError(t, speaker.Speak(context.Background(), summary, 1.0))
	assert.Equal(t, StateIdle, speaker.State())
}

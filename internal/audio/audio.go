package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/fft"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

var logger = logging.GetLogger("audio")

// Sonifier plays a short tone for every visible step. The pitch follows the
// value written at the step's J index, low values low.
type Sonifier struct {
	stream *portaudio.Stream

	volume   float64
	minFreq  float64
	maxFreq  float64
	maxValue int

	mu     sync.Mutex
	freq   float64
	gate   float64
	phase  float64
	filter float64
	done   bool

	analysis []complex128
	pitch    float64

	Active bool
}

// NewSonifier maps values in [0, maxValue) onto the configured frequency
// range.
func NewSonifier(cfg config.AudioConfig, maxValue int) *Sonifier {
	if cfg.MaxFreq <= cfg.MinFreq {
		cfg.MinFreq, cfg.MaxFreq = 120, 1200
	}
	if maxValue < 1 {
		maxValue = 1
	}
	return &Sonifier{
		volume:   cfg.Volume,
		minFreq:  cfg.MinFreq,
		maxFreq:  cfg.MaxFreq,
		maxValue: maxValue,
		freq:     cfg.MinFreq,
		analysis: make([]complex128, BufferSize),
	}
}

func (s *Sonifier) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.ProcessAudio)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	logger.Debugf("output stream started at %d Hz", SampleRate)
	s.stream = stream
	s.Active = true
	return nil
}

func (s *Sonifier) Stop() {
	if s.stream != nil {
		if err := s.stream.Stop(); err != nil {
			logger.WithFields(logrus.Fields{"err": err}).Warn("stop stream")
		}
		s.stream.Close()
		s.stream = nil
	}
	if s.Active {
		portaudio.Terminate()
	}
	s.Active = false
}

// Frequency maps an array value to a tone.
func (s *Sonifier) Frequency(value int) float64 {
	t := float64(value) / float64(s.maxValue)
	t = math.Max(0, math.Min(1, t))
	return s.minFreq + t*(s.maxFreq-s.minFreq)
}

func (s *Sonifier) OnStart(sorting.Algorithm, []int) {
	s.mu.Lock()
	s.done = false
	s.mu.Unlock()
}

func (s *Sonifier) OnStep(step sorting.Step, values []int) {
	f := s.Frequency(values[step.J])
	s.mu.Lock()
	s.freq = f
	s.gate = 1
	s.mu.Unlock()
}

// OnFinish holds the highest tone until it decays.
func (s *Sonifier) OnFinish(sorting.Stats, []int) {
	s.mu.Lock()
	s.freq = s.maxFreq
	s.gate = 1
	s.done = true
	s.mu.Unlock()
}

func (s *Sonifier) ProcessAudio(out [][]float32) {
	s.Render(out)
}

// Render synthesizes one buffer. It is the stream callback and needs no
// device, so it can be driven directly.
func (s *Sonifier) Render(out [][]float32) {
	if len(out) == 0 {
		return
	}
	dt := 1.0 / float64(SampleRate)

	s.mu.Lock()
	defer s.mu.Unlock()

	decay := 0.9992
	if s.done {
		decay = 0.99985
	}

	for i := range out[0] {
		s.phase += s.freq * dt
		s.phase -= math.Floor(s.phase)

		sample := triangle(s.phase) * s.gate * s.volume
		s.filter = lpf(sample, 2*s.maxFreq, dt, s.filter)
		s.gate *= decay

		for ch := range out {
			out[ch][i] = float32(s.filter)
		}
		if i < BufferSize {
			s.analysis[i] = complex(s.filter, 0)
		}
	}
	s.pitch = DominantFrequency(s.analysis, SampleRate)
}

// Pitch is the dominant frequency of the last rendered buffer.
func (s *Sonifier) Pitch() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pitch
}

func triangle(phase float64) float64 {
	return 4.0*math.Abs(phase-0.5) - 1.0
}

// one-pole low pass
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// DominantFrequency returns the frequency of the strongest FFT bin below
// Nyquist. Silence yields 0.
func DominantFrequency(samples []complex128, sampleRate int) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}
	windowed := make([]complex128, n)
	for i, v := range samples {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowed[i] = v * complex(w, 0)
	}
	spectrum := fft.FFT(windowed)

	best, bestMag := 0, 1e-9
	for i := 1; i < n/2; i++ {
		if mag := cmplx.Abs(spectrum[i]); mag > bestMag {
			best, bestMag = i, mag
		}
	}
	return float64(best) * float64(sampleRate) / float64(n)
}

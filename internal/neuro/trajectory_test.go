package neuro_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurosim/internal/neuro"
)

var _ = Describe("Trajectory generation", func() {
	var (
		gen   *neuro.Generator
		start neuro.Pose
		end   neuro.Pose
	)

	BeforeEach(func() {
		gen = neuro.New(neuro.DefaultSamplePeriod)
		start = neuro.Pose{}
		end = neuro.Pose{X: 10, Y: 20, Z: 30, RotX: math.Pi / 2, RotY: math.Pi / 4, Duration: 1, Flag: 1}
	})

	It("counts samples from the duration window", func() {
		n, err := gen.SampleCount(start, end)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(2))

		wide := neuro.Pose{Duration: 5.5}
		n, err = gen.SampleCount(start, wide)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(6))
	})

	It("counts a single sample for equal durations", func() {
		n, err := gen.SampleCount(neuro.Pose{Duration: 2}, neuro.Pose{Duration: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(1))
	})

	It("fails when the end pose predates the start pose", func() {
		_, err := gen.GenerateTrajectory(neuro.Pose{Duration: 5}, neuro.Pose{Duration: 3}, neuro.DefaultTrajectoryConfig())
		Expect(err).To(MatchError(neuro.ErrDuration))
	})

	It("produces the requested number of signals", func() {
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.Seed = 7
		batch, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(batch).To(HaveLen(neuro.DefaultNumSignals))
	})

	It("lands the reach midpoint on the clean position channels", func() {
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.NumSignals = 8
		cfg.Amplitude = 0
		cfg.Seed = 3
		batch, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		// Two samples span the window, so the terminal step sits halfway:
		// (5, 10, 15) scaled by PoseScale.
		for _, sig := range batch {
			Expect(sig[3]).To(Equal(5 * neuro.PoseScale))
			Expect(sig[4]).To(Equal(10 * neuro.PoseScale))
			Expect(sig[5]).To(Equal(15 * neuro.PoseScale))
		}
	})

	It("matches noisy and clean channels when amplitude is zero", func() {
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.NumSignals = 64
		cfg.Amplitude = 0
		cfg.Seed = 21
		batch, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, sig := range batch {
			Expect(sig[0]).To(Equal(sig[3]))
			Expect(sig[1]).To(Equal(sig[4]))
			Expect(sig[2]).To(Equal(sig[5]))
		}
	})

	It("perturbs only the noisy position channels", func() {
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.NumSignals = 128
		cfg.Amplitude = 2.0
		cfg.Seed = 21
		batch, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		perturbed := false
		for _, sig := range batch {
			Expect(sig[3]).To(Equal(5 * neuro.PoseScale))
			Expect(sig[4]).To(Equal(10 * neuro.PoseScale))
			Expect(sig[5]).To(Equal(15 * neuro.PoseScale))
			if sig[0] != sig[3] || sig[1] != sig[4] || sig[2] != sig[5] {
				perturbed = true
			}
		}
		Expect(perturbed).To(BeTrue())
	})

	It("freezes the orientation snapshot on channels 6-11", func() {
		from := neuro.Pose{X: 1, Y: 2, Z: 3, RotX: math.Pi / 2, RotY: math.Pi / 4, RotZ: 1.5, Flag: 1}
		to := neuro.Pose{X: 4, Y: 5, Z: 6, Duration: 2}
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.NumSignals = 32
		cfg.Seed = 9
		batch, err := gen.GenerateTrajectory(from, to, cfg)
		Expect(err).NotTo(HaveOccurred())
		want := []int{3072, 1608, 804, 1536, 0, 1024}
		for _, sig := range batch {
			for j, w := range want {
				Expect(sig[6+j]).To(Equal(w))
			}
		}
	})

	It("keeps the baseline when the window closes before the first step", func() {
		from := neuro.Pose{Z: 2, RotZ: 1, Duration: 0.25}
		to := neuro.Pose{X: 9, Duration: 0.75}
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.NumSignals = 16
		cfg.Seed = 9
		batch, err := gen.GenerateTrajectory(from, to, cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, sig := range batch {
			Expect(sig[0]).To(Equal(2 * neuro.PoseScale))
			Expect(sig[3]).To(Equal(1 * neuro.PoseScale))
			Expect(sig[4]).To(Equal(256))
			Expect(sig[6]).To(Equal(2 * neuro.PoseScale))
		}
	})

	It("reproduces a batch from the same seed", func() {
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.NumSignals = 256
		cfg.Seed = 77
		first, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		second, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(Equal(second))
	})

	It("draws distinct noise per model", func() {
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.NumSignals = 128
		cfg.Seed = 77
		gaussian, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		cfg.Noise = neuro.NoiseUniform
		uniform, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(gaussian).NotTo(Equal(uniform))
	})

	It("rejects a non-positive signal count", func() {
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.NumSignals = -1
		_, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).To(MatchError(neuro.ErrSignalCount))
	})

	It("rejects a negative noise amplitude", func() {
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.Amplitude = -0.5
		_, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).To(MatchError(neuro.ErrNoiseAmplitude))
	})

	It("rejects an unknown noise model", func() {
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.Noise = neuro.NoiseType(9)
		_, err := gen.GenerateTrajectory(start, end, cfg)
		Expect(err).To(MatchError(neuro.ErrNoiseType))
	})
})

var _ = Describe("Noise types", func() {
	It("parses the supported names", func() {
		n, err := neuro.ParseNoiseType("gaussian")
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(neuro.NoiseGaussian))

		n, err = neuro.ParseNoiseType("uniform")
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(neuro.NoiseUniform))
	})

	It("rejects anything else", func() {
		_, err := neuro.ParseNoiseType("perlin")
		Expect(err).To(MatchError(neuro.ErrNoiseType))
		_, err = neuro.ParseNoiseType("")
		Expect(err).To(MatchError(neuro.ErrNoiseType))
	})

	It("round-trips through String", func() {
		Expect(neuro.NoiseGaussian.String()).To(Equal("gaussian"))
		Expect(neuro.NoiseUniform.String()).To(Equal("uniform"))
	})
})

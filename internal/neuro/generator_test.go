package neuro_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurosim/internal/neuro"
)

func batchMean(b neuro.Batch) float64 {
	sum := 0
	for _, sig := range b {
		for _, v := range sig {
			sum += v
		}
	}
	return float64(sum) / float64(len(b)*neuro.NumChannels)
}

var _ = Describe("Cluster generation", func() {
	var (
		gen   *neuro.Generator
		start neuro.Pose
		end   neuro.Pose
	)

	BeforeEach(func() {
		gen = neuro.New(neuro.DefaultSamplePeriod)
		start = neuro.Pose{}
		end = neuro.Pose{X: 10, Y: 20, Z: 30, Duration: 1, Flag: 1}
	})

	It("produces the requested number of signals", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.Seed = 7
		batch, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(batch).To(HaveLen(neuro.DefaultNumSignals))
	})

	It("keeps every channel inside the noisy clamp range", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 2048
		cfg.Seed = 11
		batch, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, sig := range batch {
			for _, v := range sig {
				Expect(v).To(BeNumerically(">=", -25))
				Expect(v).To(BeNumerically("<=", neuro.MaxAmplitude+25))
			}
		}
	})

	It("reproduces a batch from the same seed", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 256
		cfg.Seed = 99
		first, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		second, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(Equal(second))
	})

	It("diverges across different seeds", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 256
		cfg.Seed = 1
		first, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		cfg.Seed = 2
		second, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(first).NotTo(Equal(second))
	})

	It("ignores the pose pair", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 128
		cfg.Seed = 5
		here, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		elsewhere, err := gen.GenerateCluster(neuro.Pose{X: -50, Z: 9}, neuro.Pose{Y: 3, Duration: 42}, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(here).To(Equal(elsewhere))
	})

	It("tracks the sine term when strength is one", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 4096
		cfg.Strength = 1.0
		cfg.Seed = 42
		batch, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		// E[sin^2(U)] * E[amp] with U ~ U(0,1) is about 27.3.
		Expect(batchMean(batch)).To(BeNumerically("~", 27.3, 8))
	})

	It("tracks the cosine term when strength is zero", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 4096
		cfg.Strength = 0.0
		cfg.Seed = 42
		batch, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(batchMean(batch)).To(BeNumerically("~", 72.7, 8))
	})

	It("shifts channel means as strength moves between the terms", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 2048
		cfg.Seed = 13
		cfg.Strength = 1.0
		sine, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		cfg.Strength = 0.0
		cosine, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(batchMean(sine)).To(BeNumerically("<", batchMean(cosine)))
	})

	It("rejects a non-positive signal count", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 0
		_, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).To(MatchError(neuro.ErrSignalCount))
	})

	It("rejects a generator with a non-positive sample period", func() {
		bad := neuro.New(0)
		_, err := bad.GenerateCluster(start, end, neuro.DefaultClusterConfig())
		Expect(err).To(MatchError(neuro.ErrSamplePeriod))
	})

	It("rejects a cluster layout that is not a partition", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.Clusters = []neuro.Cluster{
			{Name: "a", Channels: []int{0, 1, 2, 3, 4, 5}},
			{Name: "b", Channels: []int{5, 6, 7, 8, 9, 10, 11}},
		}
		_, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).To(MatchError(neuro.ErrClusterLayout))
	})

	It("accepts a custom partition", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 64
		cfg.Seed = 3
		cfg.Clusters = []neuro.Cluster{
			{Name: "low", Channels: []int{0, 1, 2, 3, 4, 5}},
			{Name: "high", Channels: []int{6, 7, 8, 9, 10, 11}},
		}
		batch, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(batch).To(HaveLen(64))
	})
})

package neuro_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurosim/internal/neuro"
)

var _ = Describe("Ensemble generation", func() {
	var (
		gen   *neuro.Generator
		start neuro.Pose
		end   neuro.Pose
	)

	BeforeEach(func() {
		gen = neuro.New(1.0)
		start = neuro.Pose{}
		end = neuro.Pose{X: 10, Y: 20, Z: 30, Duration: 8}
	})

	It("produces one batch per seed", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 64

		batches, err := neuro.NewEnsemble(gen, 4, 1).RunCluster(context.Background(), start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(batches).To(HaveLen(4))
		for _, b := range batches {
			Expect(b).To(HaveLen(64))
		}
	})

	It("gives each run a distinct seed", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 64

		batches, err := neuro.NewEnsemble(gen, 3, 7).RunCluster(context.Background(), start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(batches[0]).NotTo(Equal(batches[1]))
		Expect(batches[1]).NotTo(Equal(batches[2]))
	})

	It("matches single-batch output for the same seeds", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = 32

		batches, err := neuro.NewEnsemble(gen, 2, 5).RunCluster(context.Background(), start, end, cfg)
		Expect(err).NotTo(HaveOccurred())

		cfg.Seed = 5
		direct, err := gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(batches[0]).To(Equal(direct))

		cfg.Seed = 6
		direct, err = gen.GenerateCluster(start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(batches[1]).To(Equal(direct))
	})

	It("runs trajectory sweeps", func() {
		cfg := neuro.DefaultTrajectoryConfig()
		cfg.NumSignals = 16

		batches, err := neuro.NewEnsemble(gen, 2, 1).RunTrajectory(context.Background(), start, end, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(batches).To(HaveLen(2))
		Expect(batches[0]).To(HaveLen(16))
	})

	It("propagates generation errors", func() {
		cfg := neuro.DefaultClusterConfig()
		cfg.NumSignals = -1

		_, err := neuro.NewEnsemble(gen, 2, 1).RunCluster(context.Background(), start, end, cfg)
		Expect(err).To(MatchError(neuro.ErrSignalCount))
	})

	It("stops when the context is already canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := neuro.DefaultClusterConfig()
		_, err := neuro.NewEnsemble(gen, 2, 1).RunCluster(ctx, start, end, cfg)
		Expect(err).To(MatchError(context.Canceled))
	})
})

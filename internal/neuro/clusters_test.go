package neuro_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurosim/internal/neuro"
)

var _ = Describe("Cluster layout", func() {
	It("partitions every channel exactly once", func() {
		clusters := neuro.DefaultClusters()
		Expect(clusters).To(HaveLen(neuro.NumClusters))

		seen := make(map[int]int)
		for _, cl := range clusters {
			for _, ch := range cl.Channels {
				seen[ch]++
			}
		}
		Expect(seen).To(HaveLen(neuro.NumChannels))
		for ch := 0; ch < neuro.NumChannels; ch++ {
			Expect(seen[ch]).To(Equal(1))
		}
	})

	It("orders the populations largest first", func() {
		sizes := []int{}
		for _, cl := range neuro.DefaultClusters() {
			sizes = append(sizes, len(cl.Channels))
		}
		Expect(sizes).To(Equal([]int{4, 3, 2, 2, 1}))
	})

	It("validates its own default", func() {
		Expect(neuro.ValidateClusters(neuro.DefaultClusters())).To(Succeed())
	})

	It("rejects duplicated channels", func() {
		bad := []neuro.Cluster{
			{Name: "a", Channels: []int{0, 1, 2, 3, 4, 5, 6}},
			{Name: "b", Channels: []int{6, 7, 8, 9, 10, 11}},
		}
		Expect(neuro.ValidateClusters(bad)).To(MatchError(neuro.ErrClusterLayout))
	})

	It("rejects uncovered channels", func() {
		bad := []neuro.Cluster{
			{Name: "a", Channels: []int{0, 1, 2, 3, 4}},
			{Name: "b", Channels: []int{5, 6, 7, 8, 9, 10}},
		}
		Expect(neuro.ValidateClusters(bad)).To(MatchError(neuro.ErrClusterLayout))
	})

	It("rejects out-of-range channels", func() {
		bad := []neuro.Cluster{
			{Name: "a", Channels: []int{0, 1, 2, 3, 4, 5}},
			{Name: "b", Channels: []int{6, 7, 8, 9, 10, 12}},
		}
		Expect(neuro.ValidateClusters(bad)).To(MatchError(neuro.ErrClusterLayout))
	})
})

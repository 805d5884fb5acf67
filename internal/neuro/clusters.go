package neuro

import "fmt"

const NumClusters = 5

// Cluster names a group of channels that fire together, mimicking a
// correlated electrode population.
type Cluster struct {
	Name     string
	Channels []int
}

// DefaultClusters returns the standard electrode grouping: five motor
// populations of sizes 4, 3, 2, 2 and 1 covering all twelve channels.
func DefaultClusters() []Cluster {
	return []Cluster{
		{Name: "proximal", Channels: []int{0, 1, 2, 3}},
		{Name: "distal", Channels: []int{4, 5, 6}},
		{Name: "wrist", Channels: []int{7, 8}},
		{Name: "digits", Channels: []int{9, 10}},
		{Name: "reference", Channels: []int{11}},
	}
}

// ValidateClusters checks that the layout covers every channel exactly once.
func ValidateClusters(clusters []Cluster) error {
	seen := make(map[int]bool, NumChannels)
	for _, cl := range clusters {
		for _, ch := range cl.Channels {
			if ch < 0 || ch >= NumChannels {
				return fmt.Errorf("%w: channel %d in %q out of range", ErrClusterLayout, ch, cl.Name)
			}
			if seen[ch] {
				return fmt.Errorf("%w: channel %d grouped twice", ErrClusterLayout, ch)
			}
			seen[ch] = true
		}
	}
	if len(seen) != NumChannels {
		return fmt.Errorf("%w: only %d of %d channels grouped", ErrClusterLayout, len(seen), NumChannels)
	}
	return nil
}

package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/neurosim/internal/neuro"
)

// One hue per default cluster, so channels that fire together share a color.
var clusterColors = []string{"#00ff88", "#00ccff", "#ffcc00", "#ff66cc", "#8888ff"}

// BatchToSVG renders every channel of a batch as a polyline trace over the
// signal index, colored by cluster membership
func BatchToSVG(batch neuro.Batch, width, height int) string {
	if len(batch) < 2 {
		return ""
	}

	minV, rangeV := batchBounds(batch)
	colors := channelColors()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for ch := 0; ch < neuro.NumChannels; ch++ {
		writeTrace(&sb, batch.Channel(ch), minV, rangeV, width, height, colors[ch])
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ChannelToSVG renders a single channel trace
func ChannelToSVG(batch neuro.Batch, ch, width, height int, strokeColor string) string {
	if len(batch) < 2 || ch < 0 || ch >= neuro.NumChannels {
		return ""
	}

	values := batch.Channel(ch)
	minV, rangeV := seriesBounds(values)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	writeTrace(&sb, values, minV, rangeV, width, height, strokeColor)

	sb.WriteString("</svg>")
	return sb.String()
}

func writeTrace(sb *strings.Builder, values []float64, minV, rangeV float64, width, height int, strokeColor string) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))

	span := float64(len(values) - 1)
	for i, v := range values {
		x := float64(i) / span * float64(width)
		y := float64(height) - (v-minV)/rangeV*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString("\"/>\n")
}

func batchBounds(batch neuro.Batch) (minV, rangeV float64) {
	minV = float64(batch[0][0])
	maxV := minV
	for _, sig := range batch {
		for _, v := range sig {
			f := float64(v)
			if f < minV {
				minV = f
			}
			if f > maxV {
				maxV = f
			}
		}
	}
	return pad(minV, maxV)
}

func seriesBounds(values []float64) (minV, rangeV float64) {
	minV = values[0]
	maxV := minV
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return pad(minV, maxV)
}

func pad(minV, maxV float64) (float64, float64) {
	r := maxV - minV
	if r == 0 {
		r = 1
	}
	minV -= r * 0.1
	maxV += r * 0.1
	return minV, maxV - minV
}

func channelColors() [neuro.NumChannels]string {
	var colors [neuro.NumChannels]string
	for i, cluster := range neuro.DefaultClusters() {
		for _, ch := range cluster.Channels {
			colors[ch] = clusterColors[i%len(clusterColors)]
		}
	}
	return colors
}

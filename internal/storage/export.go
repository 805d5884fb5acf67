package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/neurosim/internal/neuro"
)

type ExportData struct {
	Mode           string     `json:"mode"`
	Seed           int64      `json:"seed"`
	NumSignals     int        `json:"num_signals"`
	SamplePeriod   float64    `json:"sample_period"`
	Strength       float64    `json:"cluster_strength,omitempty"`
	Noise          string     `json:"noise,omitempty"`
	NoiseAmplitude float64    `json:"noise_amplitude,omitempty"`
	Start          PoseRecord `json:"start"`
	End            PoseRecord `json:"end"`
	Signals        [][]int    `json:"signals"`
}

func exportData(meta RunMetadata, batch neuro.Batch) ExportData {
	data := ExportData{
		Mode:           meta.Mode,
		Seed:           meta.Seed,
		NumSignals:     len(batch),
		SamplePeriod:   meta.SamplePeriod,
		Strength:       meta.Strength,
		Noise:          meta.Noise,
		NoiseAmplitude: meta.NoiseAmplitude,
		Start:          meta.Start,
		End:            meta.End,
		Signals:        make([][]int, len(batch)),
	}
	for i, sig := range batch {
		row := make([]int, neuro.NumChannels)
		copy(row, sig[:])
		data.Signals[i] = row
	}
	return data
}

func WriteJSON(w io.Writer, meta RunMetadata, batch neuro.Batch) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, batch))
}

func ExportJSON(path string, meta RunMetadata, batch neuro.Batch) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, meta, batch)
}

func ExportJSONStdout(meta RunMetadata, batch neuro.Batch) error {
	return WriteJSON(os.Stdout, meta, batch)
}

func WriteCSV(w io.Writer, batch neuro.Batch) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(signalHeader()); err != nil {
		return err
	}
	for i, sig := range batch {
		if err := cw.Write(signalRow(i, sig)); err != nil {
			return err
		}
	}
	return nil
}

func ExportCSV(path string, batch neuro.Batch) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, batch)
}

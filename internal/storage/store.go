package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/neurosim/internal/neuro"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type PoseRecord struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	RotX     float64 `json:"rot_x"`
	RotY     float64 `json:"rot_y"`
	RotZ     float64 `json:"rot_z"`
	Duration float64 `json:"duration"`
	Flag     float64 `json:"flag"`
}

func NewPoseRecord(p neuro.Pose) PoseRecord {
	return PoseRecord{
		X: p.X, Y: p.Y, Z: p.Z,
		RotX: p.RotX, RotY: p.RotY, RotZ: p.RotZ,
		Duration: p.Duration, Flag: p.Flag,
	}
}

func (r PoseRecord) Pose() neuro.Pose {
	return neuro.Pose{
		X: r.X, Y: r.Y, Z: r.Z,
		RotX: r.RotX, RotY: r.RotY, RotZ: r.RotZ,
		Duration: r.Duration, Flag: r.Flag,
	}
}

type RunMetadata struct {
	ID             string     `json:"id"`
	Mode           string     `json:"mode"`
	Timestamp      time.Time  `json:"timestamp"`
	Seed           int64      `json:"seed"`
	NumSignals     int        `json:"num_signals"`
	SamplePeriod   float64    `json:"sample_period"`
	Strength       float64    `json:"cluster_strength,omitempty"`
	Noise          string     `json:"noise,omitempty"`
	NoiseAmplitude float64    `json:"noise_amplitude,omitempty"`
	Start          PoseRecord `json:"start"`
	End            PoseRecord `json:"end"`
}

func (s *Store) Save(meta RunMetadata, batch neuro.Batch) (string, error) {
	runID := fmt.Sprintf("%s_%s", meta.Mode, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "signals.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(signalHeader()); err != nil {
		return "", err
	}
	for i, sig := range batch {
		if err := w.Write(signalRow(i, sig)); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func signalHeader() []string {
	header := []string{"signal"}
	for i := 0; i < neuro.NumChannels; i++ {
		header = append(header, fmt.Sprintf("c%d", i))
	}
	return header
}

func signalRow(index int, sig neuro.Signal) []string {
	row := []string{strconv.Itoa(index)}
	for _, v := range sig {
		row = append(row, strconv.Itoa(v))
	}
	return row
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSignals(runID string) (neuro.Batch, error) {
	csvPath := filepath.Join(s.baseDir, runID, "signals.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	batch := make(neuro.Batch, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != neuro.NumChannels+1 {
			continue
		}

		var sig neuro.Signal
		ok := true
		for j := 0; j < neuro.NumChannels; j++ {
			v, err := strconv.Atoi(record[j+1])
			if err != nil {
				ok = false
				break
			}
			sig[j] = v
		}
		if ok {
			batch = append(batch, sig)
		}
	}

	return batch, nil
}

package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ryannerby/jobnest/internal/job"
)

const backupVersion = "1.0"

var ErrInvalidBackup = errors.New("invalid backup file format")

// Settings are the auxiliary blobs persisted alongside the job collection.
// They are explicit values handed to the codec, not ambient state.
type Settings struct {
	GlobalResume    string          `json:"globalResume"`
	DashboardLayout json.RawMessage `json:"dashboardLayout,omitempty"`
}

type BackupData struct {
	Jobs     []job.Job `json:"jobs"`
	Settings Settings  `json:"settings"`
}

// envelope is the versioned wrapper around an exported snapshot.
type envelope struct {
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      *BackupData `json:"data"`
}

func ExportBackup(w io.Writer, jobs []job.Job, settings Settings) error {
	env := envelope{
		Version:   backupVersion,
		Timestamp: time.Now().UTC(),
		Data:      &BackupData{Jobs: jobs, Settings: settings},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	return nil
}

// ImportBackup fails with ErrInvalidBackup when the envelope lacks a version
// or payload field.
func ImportBackup(r io.Reader) (*BackupData, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if env.Version == "" || env.Data == nil {
		return nil, ErrInvalidBackup
	}
	return env.Data, nil
}

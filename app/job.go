package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/pixelforge/cloudpix"
	"github.com/pixelforge/cloudpix/types"
	"github.com/pixelforge/cloudpix/utils"
	"github.com/pixelforge/cloudpix/worker"
)

// Job is the top-level CLI configuration. In upload mode items are local
// glob patterns or remote URLs; in delete mode they are public ids (or id
// prefixes when type is "prefix").
type Job struct {
	Mode    string         `json:"mode"`
	Items   []string       `json:"items"`
	Type    string         `json:"type,omitempty"`
	Ignore  []string       `json:"ignore,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

// LoadJob reads a JSON job file, unmarshals into Job and validates it.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing config JSON: %w", err)
	}

	if err := job.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &job, nil
}

// validate enforces required fields and mode-specific constraints.
func (j *Job) validate() error {
	if len(j.Items) == 0 {
		return errors.New("field 'items' is required")
	}
	switch j.Mode {
	case "upload":
		if j.Type != "" {
			return errors.New("field 'type' only applies to mode 'delete'")
		}
	case "delete":
		switch j.Type {
		case "", string(types.DeleteByPublicID), string(types.DeleteByPrefix):
		default:
			return fmt.Errorf("delete type %q unknown", j.Type)
		}
	default:
		return errors.New("mode unknown")
	}
	return nil
}

// Run executes the job against the API, keeping the ledger in step when
// one is configured.
func (j *Job) Run(client *cloudpix.Client, cloudName string) error {
	ledger := openLedger()

	if j.Mode == "delete" {
		return j.runDelete(client, ledger, cloudName)
	}
	return j.runUpload(client, ledger, cloudName)
}

// openLedger connects when the D1 environment variables are present.
// Without them bulk runs still work, they just re-upload unchanged files.
func openLedger() *worker.Ledger {
	accountID := os.Getenv("CLOUDPIX_D1_ACCOUNT_ID")
	apiToken := os.Getenv("CLOUDPIX_D1_API_TOKEN")
	databaseID := os.Getenv("CLOUDPIX_D1_DATABASE_ID")
	if accountID == "" || apiToken == "" || databaseID == "" {
		return nil
	}

	ledger, err := worker.Connect(accountID, apiToken, databaseID)
	if err != nil {
		slog.Warn("ledger unavailable, continuing without dedup", "err", err)
		return nil
	}
	return ledger
}

func (j *Job) runUpload(client *cloudpix.Client, ledger *worker.Ledger, cloudName string) error {
	// Remote URLs skip scanning; everything else goes through the glob
	// expander.
	var urls, globs []string
	for _, item := range j.Items {
		if strings.HasPrefix(item, "http://") || strings.HasPrefix(item, "https://") {
			urls = append(urls, item)
		} else {
			globs = append(globs, item)
		}
	}

	var files []types.LocalFile
	if len(globs) > 0 {
		scanned, err := utils.Scan(globs, j.Ignore)
		if err != nil {
			return err
		}
		files = scanned
	}

	known := map[string]worker.Asset{}
	if ledger != nil {
		hashes := make([]string, len(files))
		for i, f := range files {
			hashes[i] = f.Hash
		}
		if k, err := ledger.KnownHashes(cloudName, hashes); err == nil {
			known = k
		} else {
			slog.Warn("ledger lookup failed", "err", err)
		}
	}

	batchID := uuid.NewString()
	var recorded []worker.Asset
	uploaded, skipped := 0, 0

	for _, f := range files {
		if prior, ok := known[f.Hash]; ok {
			slog.Info("skipping, content already uploaded", "file", f.Path, "public_id", prior.PublicID)
			skipped++
			continue
		}

		result, err := client.Upload(f.Path, j.Options)
		if err != nil {
			return fmt.Errorf("uploading %q: %w", f.Path, err)
		}
		slog.Info("uploaded", "file", f.Path, "public_id", result.PublicID, "bytes", result.Bytes)
		uploaded++

		recorded = append(recorded, worker.Asset{
			PublicID:  result.PublicID,
			Source:    result.Source,
			Hash:      f.Hash,
			Format:    result.Format,
			Bytes:     result.Bytes,
			BatchID:   batchID,
			CloudName: cloudName,
		})
	}

	for _, u := range urls {
		result, err := client.Upload(u, j.Options)
		if err != nil {
			return fmt.Errorf("uploading %q: %w", u, err)
		}
		slog.Info("uploaded", "url", u, "public_id", result.PublicID)
		uploaded++

		recorded = append(recorded, worker.Asset{
			PublicID:  result.PublicID,
			Source:    result.Source,
			Format:    result.Format,
			Bytes:     result.Bytes,
			BatchID:   batchID,
			CloudName: cloudName,
		})
	}

	if ledger != nil {
		if err := ledger.RecordAssets(recorded); err != nil {
			slog.Warn("ledger update failed, future runs may re-upload", "err", err)
		}
	}

	fmt.Printf("Done: %d uploaded, %d skipped\n", uploaded, skipped)
	return nil
}

func (j *Job) runDelete(client *cloudpix.Client, ledger *worker.Ledger, cloudName string) error {
	opts := map[string]any{}
	if j.Type != "" {
		opts["type"] = j.Type
	}

	for _, item := range j.Items {
		result, err := client.Delete(item, opts)
		if err != nil {
			return fmt.Errorf("deleting %q: %w", item, err)
		}
		slog.Info("deleted", "target", item)

		if ledger == nil {
			continue
		}
		var lerr error
		if result.Prefix != "" {
			lerr = ledger.RemoveByPrefix(cloudName, result.Prefix)
		} else {
			lerr = ledger.RemoveByPublicIDs(cloudName, []string{result.PublicID})
		}
		if lerr != nil {
			slog.Warn("ledger cleanup failed", "err", lerr)
		}
	}

	fmt.Printf("Done: %d delete calls issued\n", len(j.Items))
	return nil
}

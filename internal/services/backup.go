package services

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

// BackupConfig carries everything needed to drive the external dump and
// restore tools.
type BackupConfig struct {
	Dir           string
	DBName        string
	Host          string
	Port          string
	User          string
	Password      string
	PgDumpPath    string
	PgRestorePath string
}

type BackupService interface {
	// Dump writes a directory-format dump into a timestamped folder and
	// returns its path.
	Dump(ctx context.Context) (string, error)
	// Restore replays the lexicographically-latest dump with a destructive
	// drop-and-replace.
	Restore(ctx context.Context) (string, error)
}

type backupService struct {
	log *logger.Logger
	cfg BackupConfig
}

func NewBackupService(baseLog *logger.Logger, cfg BackupConfig) BackupService {
	serviceLog := baseLog.With("service", "BackupService")
	return &backupService{log: serviceLog, cfg: cfg}
}

func (s *backupService) Dump(ctx context.Context) (string, error) {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup folder: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	target := filepath.Join(s.cfg.Dir, fmt.Sprintf("%s_%s", s.cfg.DBName, timestamp))
	if err := os.RemoveAll(target); err != nil {
		return "", fmt.Errorf("clean stale dump folder: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.cfg.PgDumpPath,
		"--format=directory",
		"--no-password",
		"-h", s.cfg.Host,
		"-p", s.cfg.Port,
		"-U", s.cfg.User,
		"--file", target,
		s.cfg.DBName,
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+s.cfg.Password)

	if output, err := cmd.CombinedOutput(); err != nil {
		s.log.Error("Database dump failed", "error", err, "output", string(output))
		return "", fmt.Errorf("pg_dump: %w", err)
	}
	s.log.Info("Database dump completed", "path", target)
	return target, nil
}

func (s *backupService) Restore(ctx context.Context) (string, error) {
	latest, err := s.latestDump()
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, s.cfg.PgRestorePath,
		"--clean",
		"--if-exists",
		"--no-password",
		"-h", s.cfg.Host,
		"-p", s.cfg.Port,
		"-U", s.cfg.User,
		"-d", s.cfg.DBName,
		latest,
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+s.cfg.Password)

	if output, err := cmd.CombinedOutput(); err != nil {
		s.log.Error("Database restore failed", "error", err, "output", string(output))
		return "", fmt.Errorf("pg_restore: %w", err)
	}
	s.log.Info("Database restore completed", "path", latest)
	return latest, nil
}

// latestDump picks the lexicographically-latest timestamped folder; the
// timestamp layout makes that the most recent one.
func (s *backupService) latestDump() (string, error) {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no backup folders found: %w", errs.ErrNotFound)
		}
		return "", err
	}

	prefix := s.cfg.DBName + "_"
	candidates := []string{}
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			candidates = append(candidates, entry.Name())
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no backup folders found: %w", errs.ErrNotFound)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(candidates)))
	return filepath.Join(s.cfg.Dir, candidates[0]), nil
}

package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opsdeck/ams-backend/internal/data/repos/testutil"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
)

func TestLatestDumpPicksNewestFolder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"ams_20240101_090000",
		"ams_20240301_090000",
		"ams_20240215_120000",
		"other_20240401_090000",
		"ams_notadir.txt",
	} {
		if filepath.Ext(name) == "" {
			require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
		} else {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
		}
	}

	svc := &backupService{
		log: testutil.Logger(t),
		cfg: BackupConfig{Dir: dir, DBName: "ams"},
	}

	latest, err := svc.latestDump()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "ams_20240301_090000"), latest)
}

func TestLatestDumpNoCandidates(t *testing.T) {
	svc := &backupService{
		log: testutil.Logger(t),
		cfg: BackupConfig{Dir: t.TempDir(), DBName: "ams"},
	}
	_, err := svc.latestDump()
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestLatestDumpMissingDir(t *testing.T) {
	svc := &backupService{
		log: testutil.Logger(t),
		cfg: BackupConfig{Dir: filepath.Join(t.TempDir(), "nope"), DBName: "ams"},
	}
	_, err := svc.latestDump()
	require.ErrorIs(t, err, errs.ErrNotFound)
}

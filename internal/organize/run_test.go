package organize_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"handlesort/internal/config"
	"handlesort/internal/logging"
	"handlesort/internal/organize"
	"handlesort/internal/testsupport"
)

func seedPhotos(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testsupport.TouchFiles(t, dir,
		"cool_user_11111.jpg",
		"cool_user_22222.jpg",
		"cool_user_20250101.jpg",
		"other_gal_54321.jpg",
		"IMG_0001.jpg",
		"notes.txt",
	)
	return dir
}

func TestRunOrganizesDirectory(t *testing.T) {
	dir := seedPhotos(t)
	cfg := config.Default()

	report, err := organize.Run(context.Background(), &cfg, organize.Options{Folder: dir}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Scanned != 5 {
		t.Fatalf("scanned = %d, want 5", report.Scanned)
	}
	if report.Moved != 3 || report.Skipped != 0 {
		t.Fatalf("moved = %d skipped = %d", report.Moved, report.Skipped)
	}
	if report.Ungrouped != 1 {
		t.Fatalf("ungrouped = %d, want 1", report.Ungrouped)
	}

	grouped := testsupport.ListNames(t, filepath.Join(dir, "cool_user"))
	sort.Strings(grouped)
	want := []string{"cool_user_11111.jpg", "cool_user_20250101.jpg", "cool_user_22222.jpg"}
	if len(grouped) != len(want) {
		t.Fatalf("cool_user dir holds %v", grouped)
	}
	for i := range want {
		if grouped[i] != want[i] {
			t.Fatalf("cool_user dir holds %v, want %v", grouped, want)
		}
	}

	// other_gal is a singleton below the default minimum, IMG_0001 has no
	// handle, notes.txt is not an image. All stay at the root.
	for _, name := range []string{"other_gal_54321.jpg", "IMG_0001.jpg", "notes.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s moved unexpectedly: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "other_gal")); !os.IsNotExist(err) {
		t.Fatal("directory created for group below minimum")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	dir := seedPhotos(t)
	cfg := config.Default()

	if _, err := organize.Run(context.Background(), &cfg, organize.Options{Folder: dir}, logging.NewNop()); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	report, err := organize.Run(context.Background(), &cfg, organize.Options{Folder: dir}, logging.NewNop())
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if report.Moved != 0 {
		t.Fatalf("second run moved %d files", report.Moved)
	}
	if report.Scanned != 2 {
		t.Fatalf("second run scanned %d files, want 2", report.Scanned)
	}
}

func TestRunDryRunLeavesTreeUntouched(t *testing.T) {
	dir := seedPhotos(t)
	cfg := config.Default()
	logPath := filepath.Join(t.TempDir(), "moves.csv")

	before := testsupport.ListNames(t, dir)

	report, err := organize.Run(context.Background(), &cfg, organize.Options{
		Folder:  dir,
		DryRun:  true,
		LogPath: logPath,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.DryRun || report.Moved != 3 {
		t.Fatalf("report = %+v", report)
	}

	after := testsupport.ListNames(t, dir)
	if len(before) != len(after) {
		t.Fatalf("tree changed: before %v after %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("tree changed: before %v after %v", before, after)
		}
	}

	rows := readAudit(t, logPath)
	if len(rows) != 4 {
		t.Fatalf("audit rows = %v", rows)
	}
	for _, row := range rows[1:] {
		if row[0] != "DRY-RUN-MOVE" {
			t.Fatalf("audit action = %q", row[0])
		}
	}
}

func TestRunWritesAuditLog(t *testing.T) {
	dir := seedPhotos(t)
	cfg := config.Default()
	logPath := filepath.Join(t.TempDir(), "logs", "moves.csv")

	if _, err := organize.Run(context.Background(), &cfg, organize.Options{
		Folder:  dir,
		LogPath: logPath,
	}, logging.NewNop()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	rows := readAudit(t, logPath)
	if len(rows) != 4 {
		t.Fatalf("audit rows = %v", rows)
	}
	for _, row := range rows[1:] {
		if row[0] != "MOVED" || row[1] != "cool_user" {
			t.Fatalf("audit row = %v", row)
		}
		if filepath.Dir(row[3]) != filepath.Join(dir, "cool_user") {
			t.Fatalf("audit dst = %q", row[3])
		}
	}
}

func TestRunUnwritableAuditPathFailsBeforeMoves(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := seedPhotos(t)
	cfg := config.Default()
	logDir := filepath.Join(t.TempDir(), "readonly")
	if err := os.MkdirAll(logDir, 0o555); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(logDir, 0o755) })

	_, err := organize.Run(context.Background(), &cfg, organize.Options{
		Folder:  dir,
		LogPath: filepath.Join(logDir, "moves.csv"),
	}, logging.NewNop())
	if err == nil {
		t.Fatal("expected audit log preflight error")
	}

	if _, statErr := os.Stat(filepath.Join(dir, "cool_user_11111.jpg")); statErr != nil {
		t.Fatalf("files moved despite audit failure: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "cool_user")); !os.IsNotExist(statErr) {
		t.Fatal("group directory created despite audit failure")
	}
}

func TestRunIncludeSingletons(t *testing.T) {
	dir := seedPhotos(t)
	cfg := config.Default()

	report, err := organize.Run(context.Background(), &cfg, organize.Options{
		Folder:            dir,
		IncludeSingletons: true,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Moved != 4 {
		t.Fatalf("moved = %d, want 4", report.Moved)
	}
	if _, err := os.Stat(filepath.Join(dir, "other_gal", "other_gal_54321.jpg")); err != nil {
		t.Fatalf("singleton not organized: %v", err)
	}
}

func TestRunMissingFolderIsUsageError(t *testing.T) {
	cfg := config.Default()

	_, err := organize.Run(context.Background(), &cfg, organize.Options{
		Folder: filepath.Join(t.TempDir(), "absent"),
	}, logging.NewNop())
	if err == nil {
		t.Fatal("expected error for missing folder")
	}
	if !errors.Is(err, organize.ErrUsage) {
		t.Fatalf("error %v not classified as usage", err)
	}
}

func readAudit(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open audit log: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("parse audit log: %v", err)
	}
	return rows
}
